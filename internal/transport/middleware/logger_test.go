package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sensorfactory/nexus/internal/domain"
	"github.com/sensorfactory/nexus/pkg/ctxutil"
)

func serveLogged(t *testing.T, req *http.Request, handler http.HandlerFunc) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	Logger(logger)(handler).ServeHTTP(httptest.NewRecorder(), req)

	if buf.Len() == 0 {
		return nil
	}
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		path      string
		status    int
		wantLevel string
	}{
		{"/api/sensors", http.StatusOK, "INFO"},
		{"/api/sensors/S999", http.StatusNotFound, "WARN"},
		{"/api/orders/export", http.StatusInternalServerError, "ERROR"},
		{"/ready", http.StatusServiceUnavailable, "ERROR"},
		{"/live", http.StatusOK, ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			entry := serveLogged(t, httptest.NewRequest(http.MethodGet, tt.path, nil), func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})
			if tt.wantLevel == "" {
				assert.Nil(t, entry, "successful probes log at debug")
				return
			}
			require.NotNil(t, entry)
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, float64(tt.status), entry["status"])
		})
	}
}

func TestLogger_RequestAttrs(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/clients", nil)
	req = req.WithContext(ctxutil.WithRequestID(req.Context(), "req-7"))

	entry := serveLogged(t, req, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"C005"}`))
	})

	require.NotNil(t, entry)
	assert.Equal(t, "http.request", entry["msg"])
	assert.Equal(t, "POST", entry["method"])
	assert.Equal(t, "/api/clients", entry["path"])
	assert.Equal(t, float64(200), entry["status"])
	assert.Equal(t, float64(13), entry["bytes"])
	assert.Equal(t, "req-7", entry["request_id"])
	assert.Contains(t, entry, "duration")
	assert.NotContains(t, entry, "user_id")
}

func TestLogger_IncludesSession(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	req = req.WithContext(ctxutil.WithSession(req.Context(), domain.Session{ID: "U002", Role: domain.RoleEmployee}))

	entry := serveLogged(t, req, func(w http.ResponseWriter, r *http.Request) {})

	require.NotNil(t, entry)
	assert.Equal(t, "U002", entry["user_id"])
	assert.Equal(t, "employee", entry["role"])
}
