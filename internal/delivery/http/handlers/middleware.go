package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/LavaJover/shvark-pawn-service/internal/usecase/scope"
)

const (
	HeaderUserID  = "X-User-ID"
	HeaderStoreID = "X-Store-ID"
)

// ScopeMiddleware trusts the identity headers set by the upstream gateway.
func ScopeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := scope.Scope{
			UserID:  strings.TrimSpace(r.Header.Get(HeaderUserID)),
			StoreID: strings.TrimSpace(r.Header.Get(HeaderStoreID)),
		}
		next.ServeHTTP(w, r.WithContext(scope.WithScope(r.Context(), s)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		slog.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(started).String(),
		)
	})
}
