package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sensorfactory/nexus/internal/domain"
	"github.com/sensorfactory/nexus/pkg/ctxutil"
)

//go:generate moq -out token_validator_mock_test.go -pkg middleware . tokenValidator

var adminSession = domain.Session{ID: "U001", Username: "admin", Role: domain.RoleAdmin}

func validatorFor(valid string) *tokenValidatorMock {
	return &tokenValidatorMock{
		ValidateTokenFunc: func(ctx context.Context, token string) (domain.Session, error) {
			if token == valid {
				return adminSession, nil
			}
			return domain.Session{}, domain.ErrUnauthorized
		},
	}
}

func TestAuth_ValidToken(t *testing.T) {
	validator := validatorFor("valid-token")

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok := ctxutil.SessionFromCtx(r.Context())
		if !ok {
			t.Error("expected session in context")
			return
		}
		if got != adminSession {
			t.Errorf("expected session %+v, got %+v", adminSession, got)
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()

	Auth(validator)(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	validator := validatorFor("valid-token")

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called for invalid token")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer forged")
	rec := httptest.NewRecorder()

	Auth(validator)(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected JSON error, got content type %q", ct)
	}
	if got := rec.Header().Get("WWW-Authenticate"); got != `Bearer realm="nexus", error="invalid_token"` {
		t.Errorf("unexpected challenge %q", got)
	}
}

func TestAuth_Anonymous(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"basic scheme", "Basic dXNlcjpwYXNz"},
		{"bearer without token", "Bearer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator := validatorFor("valid-token")

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if _, ok := ctxutil.SessionFromCtx(r.Context()); ok {
					t.Error("expected no session for anonymous request")
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			Auth(validator)(handler).ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
			}
			if n := len(validator.ValidateTokenCalls()); n != 0 {
				t.Errorf("expected no ValidateToken calls, got %d", n)
			}
		})
	}
}

func TestAuth_SchemeIsCaseInsensitive(t *testing.T) {
	validator := validatorFor("valid-token")

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer valid-token")
	rec := httptest.NewRecorder()

	Auth(validator)(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	calls := validator.ValidateTokenCalls()
	if len(calls) != 1 || calls[0].Token != "valid-token" {
		t.Errorf("unexpected ValidateToken calls: %+v", calls)
	}
}

func TestRequireSession(t *testing.T) {
	handler := RequireSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous: expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
	if got := rec.Header().Get("WWW-Authenticate"); got != `Bearer realm="nexus"` {
		t.Errorf("unexpected challenge %q", got)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(ctxutil.WithSession(req.Context(), adminSession))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Errorf("authenticated: expected status %d, got %d", http.StatusNoContent, rec.Code)
	}
}
