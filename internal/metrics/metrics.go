package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics структура для метрик Prometheus
type Metrics struct {
	MessagesProcessed    prometheus.Counter
	CommandsProcessed    *prometheus.CounterVec
	CalculationsTotal    *prometheus.CounterVec
	ScreenViews          *prometheus.CounterVec
	ErrorsTotal          prometheus.Counter
	UpdateProcessingTime prometheus.Histogram
	RequestDuration      *prometheus.HistogramVec
}

// New создает метрики и регистрирует их в reg
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		MessagesProcessed: f.NewCounter(prometheus.CounterOpts{
			Name: "fitness_bot_messages_processed_total",
			Help: "Total number of processed bot messages",
		}),

		CommandsProcessed: f.NewCounterVec(prometheus.CounterOpts{
			Name: "fitness_bot_commands_processed_total",
			Help: "Total number of processed bot commands",
		}, []string{"command"}),

		CalculationsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "fitness_calculations_total",
			Help: "Calculator button presses by calculator and outcome",
		}, []string{"calculator", "outcome"}),

		ScreenViews: f.NewCounterVec(prometheus.CounterOpts{
			Name: "fitness_screen_views_total",
			Help: "Rendered screens by tab and front end",
		}, []string{"tab", "frontend"}),

		ErrorsTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "fitness_errors_total",
			Help: "Total number of errors",
		}),

		UpdateProcessingTime: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "fitness_bot_update_processing_time_seconds",
			Help:    "Time spent processing bot updates",
			Buckets: prometheus.DefBuckets,
		}),

		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fitness_http_request_duration_seconds",
			Help:    "Duration of HTTP API requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

// Calculation учитывает нажатие кнопки калькулятора
func (m *Metrics) Calculation(calculator string, updated bool) {
	outcome := "updated"
	if !updated {
		outcome = "invalid_input"
	}
	m.CalculationsTotal.WithLabelValues(calculator, outcome).Inc()
}

func (m *Metrics) ScreenView(tab, frontend string) {
	m.ScreenViews.WithLabelValues(tab, frontend).Inc()
}
