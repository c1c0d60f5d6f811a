package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/sensorfactory/nexus/internal/notify"
)

func TestMiddleware_CountsByRouteAndStatus(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	m := New(reg)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/sensors/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") == "S999" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("ok"))
	})
	h := m.Middleware(mux)

	for _, path := range []string{"/api/sensors/S001", "/api/sensors/S002", "/api/sensors/S999", "/nope"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "GET /api/sensors/{id}", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "GET /api/sensors/{id}", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "unmatched", "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.httpLatency))
}

func TestNotify_CountsByTitleAndVariant(t *testing.T) {
	t.Parallel()
	m := New(prometheus.NewRegistry())
	ctx := context.Background()

	var n notify.Notifier = m
	n.Notify(ctx, notify.Success("Sensor Added", "x"))
	n.Notify(ctx, notify.Failure("Update Failed", "Sensor not found."))
	n.Notify(ctx, notify.Failure("Update Failed", "Sensor not found."))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.notifications.WithLabelValues("Sensor Added", "default")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.notifications.WithLabelValues("Update Failed", "destructive")))
}

func TestRecordExport(t *testing.T) {
	t.Parallel()
	m := New(prometheus.NewRegistry())

	m.RecordExport("sensors", nil)
	m.RecordExport("invoice", errors.New("render"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.exports.WithLabelValues("sensors", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.exports.WithLabelValues("invoice", "error")))
}

func TestNew_DoubleRegistrationPanics(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}
