package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sensorfactory/nexus/internal/config"
	"github.com/sensorfactory/nexus/internal/observability/metrics"
	"github.com/sensorfactory/nexus/internal/transport/middleware"
	"github.com/sensorfactory/nexus/internal/transport/rest"
)

// newHandler builds the HTTP surface over b. The returned stop func releases
// background resources of the middleware.
func newHandler(
	b *Backend,
	cfg config.Config,
	logger *slog.Logger,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
) (http.Handler, func()) {
	var recorder interface{ RecordExport(string, error) }
	if m != nil {
		recorder = m
	}

	handlers := rest.Handlers{
		Health:    rest.NewHealthHandler(b, b.Driver, BuildVersion()),
		Auth:      rest.NewAuthHandler(b.Auth, logger),
		Inventory: rest.NewInventoryHandler(b.Inventory, recorder, logger),
		Clients:   rest.NewClientHandler(b.Clients, b.Sales, logger),
		Sales:     rest.NewSalesHandler(b.Sales, recorder, logger),
		Fleet:     rest.NewFleetHandler(b.Fleet, logger),
		Overview:  rest.NewOverviewHandler(b.Dashboard, b.Feed, logger),
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit)
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	go limiter.Run(sweepCtx)

	opts := rest.RouterOptions{
		Logger:     logger,
		Auth:       middleware.Auth(b.Auth),
		CORS:       middleware.CORS(cfg.CORS),
		LoginLimit: limiter.Middleware,
	}
	if m != nil && cfg.Metrics.Enabled {
		opts.Instrument = m.Middleware
		opts.Metrics = promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
		opts.MetricsPath = cfg.Metrics.Path
	}

	return rest.NewRouter(handlers, opts), stopSweep
}
