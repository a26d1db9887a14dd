package utils

import (
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Logger с уровнями info и error поверх logrus
type Logger struct {
	entry *log.Logger
}

// Создаём глобальный экземпляр
var Log = NewLogger(os.Stdout)

func NewLogger(out io.Writer) *Logger {
	l := log.New()
	l.SetOutput(out)
	l.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	l.SetLevel(log.InfoLevel)
	return &Logger{entry: l}
}

// Setup настраивает уровень и формат глобального логгера
func Setup(level, format string) {
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = log.InfoLevel
	}
	Log.entry.SetLevel(lvl)
	log.SetLevel(lvl)

	if strings.EqualFold(format, "json") {
		Log.entry.SetFormatter(&log.JSONFormatter{})
		log.SetFormatter(&log.JSONFormatter{})
	}
}

func (l *Logger) SetOutput(out io.Writer) {
	l.entry.SetOutput(out)
}

func (l *Logger) Info(msg string) {
	l.entry.Info(msg)
}

func (l *Logger) Error(msg string) {
	l.entry.Error(msg)
}

func (l *Logger) Debug(msg string) {
	l.entry.Debug(msg)
}

// With возвращает запись с полями для структурированного логирования
func (l *Logger) With(fields log.Fields) *log.Entry {
	return l.entry.WithFields(fields)
}
