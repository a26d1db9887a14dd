package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App      AppConfig      `yaml:"app"`
	Telegram TelegramConfig `yaml:"telegram"`
	HTTP     HTTPConfig     `yaml:"http"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Session  SessionConfig  `yaml:"session"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type AppConfig struct {
	Name        string `yaml:"name"`
	Environment string `yaml:"environment"`
	UserID      string `yaml:"user_id"` // пользователь экрана профиля
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token"`
	AdminIDs string `yaml:"admin_ids"` // "123,456"
	Timeout  int    `yaml:"timeout"`
	Debug    bool   `yaml:"debug"`
}

type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

// MetricsConfig: адрес /metrics бота, пустой - не поднимаем
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// DatabaseConfig: пустой DSN - каталог в памяти
type DatabaseConfig struct {
	DSN             string `yaml:"dsn"`
	ConnectAttempts int    `yaml:"connect_attempts"`
}

// RedisConfig: пустой адрес - сеансы в памяти
type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
}

type SessionConfig struct {
	TTL time.Duration `yaml:"ttl"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default - значения для отсутствующих полей
func Default() *Config {
	return &Config{
		App:      AppConfig{Name: "fitness-app", Environment: "development", UserID: "1"},
		Telegram: TelegramConfig{Timeout: 60},
		HTTP:     HTTPConfig{Addr: ":8080"},
		Metrics:  MetricsConfig{Addr: ":9090"},
		Database: DatabaseConfig{ConnectAttempts: 15},
		Redis:    RedisConfig{PoolSize: 10},
		Session:  SessionConfig{TTL: 24 * time.Hour},
		Logging:  LoggingConfig{Level: "info", Format: "text"},
	}
}

// Load читает YAML поверх значений по умолчанию. Отсутствие файла не ошибка.
// ${VAR} в файле раскрываются после загрузки .env
func Load(path string) (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		expanded := []byte(os.ExpandEnv(string(data)))
		if err := yaml.Unmarshal(expanded, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

// applyEnv - переменные окружения имеют приоритет над файлом
func applyEnv(cfg *Config) {
	if v := os.Getenv("TELEGRAM_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("ADMIN_IDS"); v != "" {
		cfg.Telegram.AdminIDs = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Address = v
	}
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.HTTP.Addr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// Path возвращает путь к конфигу из CONFIG_PATH
func Path() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return "configs/config.yaml"
}

// ParseAdminIDs преобразует строку вида "123,456,789" в срез int64
func ParseAdminIDs(ids string) []int64 {
	var result []int64
	if ids == "" {
		return result
	}
	for _, s := range strings.Split(ids, ",") {
		if id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
			result = append(result, id)
		}
	}
	return result
}

func (c *Config) ValidateBot() error {
	if c.Telegram.BotToken == "" {
		return errors.New("telegram bot token not set (telegram.bot_token or TELEGRAM_TOKEN)")
	}
	return nil
}
