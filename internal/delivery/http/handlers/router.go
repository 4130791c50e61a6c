package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/LavaJover/shvark-pawn-service/internal/delivery/http/dto/response"
	"github.com/gorilla/mux"
)

const healthTimeout = 2 * time.Second

type RouterOptions struct {
	// Metrics is served on MetricsPath, "/metrics" by default, when set.
	Metrics     http.Handler
	MetricsPath string
	// Health reports storage reachability for /health.
	Health func(ctx context.Context) error
}

type Registrar interface {
	Register(r *mux.Router)
}

// NewRouter mounts the handlers behind the logging and scope middleware.
func NewRouter(opts RouterOptions, handlers ...Registrar) *mux.Router {
	router := mux.NewRouter()
	router.Use(LoggingMiddleware, ScopeMiddleware)

	router.HandleFunc("/health", healthHandler(opts.Health)).Methods(http.MethodGet)
	if opts.Metrics != nil {
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		router.Handle(path, opts.Metrics).Methods(http.MethodGet)
	}

	for _, h := range handlers {
		h.Register(router)
	}
	return router
}

func healthHandler(check func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
			defer cancel()
			if err := check(ctx); err != nil {
				writeJSON(w, http.StatusServiceUnavailable, response.ErrorResponse{Error: err.Error()})
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
