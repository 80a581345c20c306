package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the HTTP surface
// and the language-model gateway.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	gatewayDuration prometheus.Observer
	gatewayFailures prometheus.Counter
	questionsTotal  *prometheus.CounterVec
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	gatewayDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "gateway_request_duration_seconds",
		Help:    "Latency of generative model calls",
		Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 30, 60},
	})

	gatewayFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gateway_failures_total",
		Help: "Total generative model calls converted to fail-soft answers",
	})

	questionsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chat_questions_total",
		Help: "Total questions answered, by caller role",
	}, []string{"role"})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, gatewayDuration, gatewayFailures, questionsTotal, goroutines)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return &MetricsService{
		registry:        registry,
		handler:         handler,
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		gatewayDuration: gatewayDuration,
		gatewayFailures: gatewayFailures,
		questionsTotal:  questionsTotal,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// ObserveGateway records a model call, failed meaning the answer was a
// fail-soft error string.
func (m *MetricsService) ObserveGateway(duration time.Duration, failed bool) {
	if m == nil {
		return
	}
	m.gatewayDuration.Observe(duration.Seconds())
	if failed {
		m.gatewayFailures.Inc()
	}
}

// RecordQuestion counts an answered question by caller role.
func (m *MetricsService) RecordQuestion(role string) {
	if m == nil {
		return
	}
	m.questionsTotal.WithLabelValues(role).Inc()
}
