package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sensorfactory/nexus/internal/config"
)

var dashboardCORS = config.CORSConfig{
	AllowedOrigins:   "https://dashboard.sensorfactory.com, https://staging.sensorfactory.com",
	AllowedMethods:   "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	AllowedHeaders:   "Authorization,Content-Type",
	AllowCredentials: true,
	MaxAge:           600,
}

func TestCORS_Preflight(t *testing.T) {
	handler := CORS(dashboardCORS)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called for preflight")
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/sensors/S001", nil)
	req.Header.Set("Origin", "https://staging.sensorfactory.com")
	req.Header.Set("Access-Control-Request-Method", "PATCH")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	h := rec.Header()
	assert.Equal(t, "https://staging.sensorfactory.com", h.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET,POST,PUT,PATCH,DELETE,OPTIONS", h.Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Authorization,Content-Type", h.Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "true", h.Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, "600", h.Get("Access-Control-Max-Age"))
	assert.Equal(t, "Origin", h.Get("Vary"))
}

func TestCORS_SimpleRequests(t *testing.T) {
	tests := []struct {
		name        string
		cfg         config.CORSConfig
		method      string
		origin      string
		wantAllowed string
		wantVary    bool
	}{
		{"listed origin", dashboardCORS, http.MethodGet, "https://dashboard.sensorfactory.com", "https://dashboard.sensorfactory.com", true},
		{"unlisted origin", dashboardCORS, http.MethodGet, "https://evil.example", "", true},
		{"no origin", dashboardCORS, http.MethodGet, "", "", false},
		{"wildcard echoes origin", config.CORSConfig{AllowedOrigins: "*"}, http.MethodGet, "http://localhost:5173", "http://localhost:5173", true},
		{"plain OPTIONS is not a preflight", dashboardCORS, http.MethodOptions, "https://dashboard.sensorfactory.com", "https://dashboard.sensorfactory.com", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := CORS(tt.cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(tt.method, "/api/fleet", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.True(t, called)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantAllowed, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantVary, rec.Header().Get("Vary") == "Origin")
			assert.Empty(t, rec.Header().Get("Access-Control-Allow-Methods"))
		})
	}
}

func TestCORS_CredentialsOff(t *testing.T) {
	cfg := dashboardCORS
	cfg.AllowCredentials = false
	handler := CORS(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
	req.Header.Set("Origin", "https://dashboard.sensorfactory.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "https://dashboard.sensorfactory.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a, ,b ,"))
	assert.Nil(t, splitList(""))
}
