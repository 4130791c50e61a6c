package setup

import (
	"net/http"

	"github.com/LavaJover/shvark-pawn-service/internal/delivery/http/handlers"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewHTTPHandler assembles the HTTP edge over the usecases.
func NewHTTPHandler(deps *Dependencies, ucs *UseCases) http.Handler {
	loc := deps.Clock.Location()

	opts := handlers.RouterOptions{Health: deps.Ping}
	if deps.Config.Metrics.Enabled {
		opts.Metrics = promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})
		opts.MetricsPath = deps.Config.Metrics.Path
	}

	return handlers.NewRouter(opts,
		handlers.NewContractHandler(ucs.ContractUsecase, loc),
		handlers.NewCustomerHandler(ucs.CustomerUsecase),
		handlers.NewStoreHandler(ucs.StoreUsecase),
		handlers.NewStatsHandler(ucs.StatsUsecase, loc),
	)
}
