package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

const (
	namespace = "consensus_service"
)

// Metrics holds all application metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	APIErrorsTotal      *prometheus.CounterVec

	// Database metrics
	DBConnectionsOpen        prometheus.Gauge
	DBConnectionsInUse       prometheus.Gauge
	DBConnectionsIdle        prometheus.Gauge
	DBConnectionsMax         prometheus.Gauge
	DBConnectionWaitTotal    prometheus.Gauge
	DBConnectionWaitDuration prometheus.Gauge
	DBQueryDuration          *prometheus.HistogramVec
	DBQueryErrors            *prometheus.CounterVec

	// External API metrics (text generation, object storage)
	ExternalAPIRequestDuration *prometheus.HistogramVec
	ExternalAPIRequestsTotal   *prometheus.CounterVec
	ExternalAPIErrors          *prometheus.CounterVec

	// Round lifecycle
	FormsTotal          prometheus.Gauge
	ActiveRoundsTotal   prometheus.Gauge
	RoundsOpenedTotal   prometheus.Counter
	RoundsClosedTotal   prometheus.Counter
	RoundsRepairedTotal prometheus.Counter

	// Submissions and membership
	ResponsesSubmittedTotal  *prometheus.CounterVec
	MembershipsRedeemedTotal *prometheus.CounterVec
	FeedbackSubmittedTotal   prometheus.Counter

	// Synthesis
	SynthesisPushedTotal    *prometheus.CounterVec
	SynthesisGeneratedTotal *prometheus.CounterVec

	// Notification bus
	NotificationSubscribers   prometheus.Gauge
	NotificationEventsTotal   *prometheus.CounterVec
	NotificationDroppedTotal  prometheus.Counter
	NotificationPublishErrors prometheus.Counter

	logger *zap.Logger
}

// New creates and registers all metrics with the default registry
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, nil)
}

// NewWithLogger creates and registers all metrics with the default registry and a logger
func NewWithLogger(logger *zap.Logger) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, logger)
}

// NewWithRegistry creates and registers all metrics with a custom registry
func NewWithRegistry(registerer prometheus.Registerer, logger *zap.Logger) *Metrics {
	factory := promauto.With(registerer)
	if logger == nil {
		logger = zap.NewNop()
	}

	gauge := func(name, help string) prometheus.Gauge {
		return factory.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: name, Help: help})
	}
	counter := func(name, help string) prometheus.Counter {
		return factory.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: name, Help: help})
	}
	counterVec := func(name, help string, labels ...string) *prometheus.CounterVec {
		return factory.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: name, Help: help}, labels)
	}
	histogramVec := func(name, help string, buckets []float64, labels ...string) *prometheus.HistogramVec {
		return factory.NewHistogramVec(prometheus.HistogramOpts{Namespace: namespace, Name: name, Help: help, Buckets: buckets}, labels)
	}

	return &Metrics{
		HTTPRequestsTotal: counterVec("http_requests_total", "Total number of HTTP requests", "method", "endpoint", "status"),
		HTTPRequestDuration: histogramVec("http_request_duration_seconds", "HTTP request duration in seconds",
			[]float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}, "method", "endpoint"),
		APIErrorsTotal: counterVec("api_errors_total", "Total number of error envelopes returned, by error code", "endpoint", "code"),

		DBConnectionsOpen:        gauge("db_connections_open", "Current number of open database connections"),
		DBConnectionsInUse:       gauge("db_connections_in_use", "Current number of in-use database connections"),
		DBConnectionsIdle:        gauge("db_connections_idle", "Current number of idle database connections"),
		DBConnectionsMax:         gauge("db_connections_max", "Maximum number of open database connections configured"),
		DBConnectionWaitTotal:    gauge("db_connection_wait_count", "Cumulative number of waits for a database connection"),
		DBConnectionWaitDuration: gauge("db_connection_wait_duration_seconds", "Cumulative time spent waiting for database connections"),
		DBQueryDuration: histogramVec("db_query_duration_seconds", "Database query duration in seconds",
			[]float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5}, "operation", "table"),
		DBQueryErrors: counterVec("db_query_errors_total", "Total number of database query errors", "operation", "table"),

		ExternalAPIRequestDuration: histogramVec("external_api_request_duration_seconds", "External API request duration in seconds",
			[]float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60}, "endpoint", "status"),
		ExternalAPIRequestsTotal: counterVec("external_api_requests_total", "Total number of external API requests", "endpoint", "method", "status"),
		ExternalAPIErrors:        counterVec("external_api_errors_total", "Total number of external API errors", "endpoint", "error_type"),

		FormsTotal:          gauge("forms_total", "Total number of forms"),
		ActiveRoundsTotal:   gauge("active_rounds_total", "Number of forms with an active round"),
		RoundsOpenedTotal:   counter("rounds_opened_total", "Total number of rounds opened"),
		RoundsClosedTotal:   counter("rounds_closed_total", "Total number of rounds closed"),
		RoundsRepairedTotal: counter("rounds_repaired_total", "Total number of duplicate active rounds deactivated by repair"),

		ResponsesSubmittedTotal:  counterVec("responses_submitted_total", "Total number of submit calls", "result"),
		MembershipsRedeemedTotal: counterVec("memberships_redeemed_total", "Total number of join code redemptions", "result"),
		FeedbackSubmittedTotal:   counter("feedback_submitted_total", "Total number of feedback submissions"),

		SynthesisPushedTotal:    counterVec("synthesis_pushed_total", "Total number of synthesis pushes", "kind"),
		SynthesisGeneratedTotal: counterVec("synthesis_generated_total", "Total number of synthesis drafts requested", "status"),

		NotificationSubscribers:   gauge("notification_subscribers", "Currently connected notification subscribers"),
		NotificationEventsTotal:   counterVec("notification_events_total", "Total number of notification events delivered to the local hub", "type"),
		NotificationDroppedTotal:  counter("notification_dropped_total", "Total number of subscribers dropped for being too slow"),
		NotificationPublishErrors: counter("notification_publish_errors_total", "Total number of failed relay publishes"),

		logger: logger,
	}
}

// safeExecute wraps metric operations with panic recovery
func (m *Metrics) safeExecute(operation string, fn func()) {
	if m == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("Panic in metrics operation",
				zap.String("operation", operation),
				zap.Any("panic", r),
			)
		}
	}()
	fn()
}
