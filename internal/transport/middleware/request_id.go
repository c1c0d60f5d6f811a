package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/sensorfactory/nexus/pkg/ctxutil"
)

const requestIDHeader = "X-Request-Id"

// maxRequestIDLen bounds client-supplied ids echoed into logs.
const maxRequestIDLen = 128

// RequestID propagates the caller's X-Request-Id or generates a UUID when the
// header is missing or unusable.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if !usableRequestID(id) {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
	})
}

// usableRequestID accepts short printable ASCII ids.
func usableRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
