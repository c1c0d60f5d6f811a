// Package metrics exposes Prometheus collectors for the HTTP surface,
// notifications and document exports.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/sensorfactory/nexus/internal/notify"
)

const (
	metricPrefix = "nexus_"

	resultSuccess = "success"
	resultError   = "error"
)

// Metrics holds the registered collectors.
type Metrics struct {
	httpRequests  *prometheus.CounterVec
	httpLatency   *prometheus.HistogramVec
	notifications *prometheus.CounterVec
	exports       *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "http_requests_total",
				Help: "Total HTTP requests by method, route and status code",
			},
			[]string{"method", "route", "code"},
		),
		httpLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
			},
			[]string{"method", "route"},
		),
		notifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "notifications_total",
				Help: "Total user notifications by title and variant",
			},
			[]string{"title", "variant"},
		),
		exports: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "exports_total",
				Help: "Total document exports by kind and result",
			},
			[]string{"kind", "result"},
		),
	}
	reg.MustRegister(m.httpRequests, m.httpLatency, m.notifications, m.exports)
	return m
}

// Middleware records request counts and latency. The route label is the
// matched ServeMux pattern, or "unmatched".
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		m.httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		m.httpLatency.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// Notify counts a notification. Metrics satisfies notify.Notifier.
func (m *Metrics) Notify(_ context.Context, n notify.Notification) {
	m.notifications.WithLabelValues(n.Title, string(n.Variant)).Inc()
}

// RecordExport counts one export attempt of kind.
func (m *Metrics) RecordExport(kind string, err error) {
	result := resultSuccess
	if err != nil {
		result = resultError
	}
	m.exports.WithLabelValues(kind, result).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(code int) {
	if !r.wroteHeader {
		r.status = code
		r.wroteHeader = true
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
