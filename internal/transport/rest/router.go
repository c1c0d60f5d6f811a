package rest

import (
	"log/slog"
	"net/http"

	"github.com/sensorfactory/nexus/internal/transport/middleware"
)

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Health    *HealthHandler
	Auth      *AuthHandler
	Inventory *InventoryHandler
	Clients   *ClientHandler
	Sales     *SalesHandler
	Fleet     *FleetHandler
	Overview  *OverviewHandler
}

// RouterOptions configures the middleware stack around the routes.
type RouterOptions struct {
	Logger *slog.Logger
	// Auth resolves bearer tokens into sessions.
	Auth middleware.Middleware
	// CORS is applied to every request when set.
	CORS middleware.Middleware
	// LoginLimit guards POST /api/auth/login when set.
	LoginLimit middleware.Middleware
	// Instrument wraps the mux directly so it sees the matched pattern.
	Instrument middleware.Middleware
	// Metrics is served at MetricsPath when set.
	Metrics     http.Handler
	MetricsPath string
}

// NewRouter mounts every route and wraps them in the middleware chain.
// Everything under /api except login requires a session.
func NewRouter(h Handlers, opts RouterOptions) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	if opts.Metrics != nil {
		mux.Handle("GET "+opts.MetricsPath, opts.Metrics)
	}

	login := http.Handler(http.HandlerFunc(h.Auth.Login))
	if opts.LoginLimit != nil {
		login = opts.LoginLimit(login)
	}
	mux.Handle("POST /api/auth/login", login)

	private := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, middleware.RequireSession(fn))
	}

	private("POST /api/auth/logout", h.Auth.Logout)
	private("GET /api/auth/me", h.Auth.Me)

	private("GET /api/sensors", h.Inventory.List)
	private("POST /api/sensors", h.Inventory.Create)
	private("GET /api/sensors/export", h.Inventory.Export)
	private("GET /api/sensors/{id}", h.Inventory.Get)
	private("PATCH /api/sensors/{id}", h.Inventory.Update)
	private("DELETE /api/sensors/{id}", h.Inventory.Delete)
	private("GET /api/sensor-types", h.Inventory.Types)

	private("GET /api/clients", h.Clients.List)
	private("POST /api/clients", h.Clients.Create)
	private("GET /api/clients/{id}", h.Clients.Get)
	private("PATCH /api/clients/{id}", h.Clients.Update)
	private("DELETE /api/clients/{id}", h.Clients.Delete)
	private("GET /api/clients/{id}/orders", h.Clients.Orders)

	private("GET /api/orders", h.Sales.List)
	private("GET /api/orders/details", h.Sales.Details)
	private("GET /api/orders/export", h.Sales.Export)
	private("GET /api/orders/{id}", h.Sales.Get)
	private("GET /api/orders/{id}/invoice", h.Sales.Invoice)
	private("GET /api/sales", h.Sales.Sales)

	private("GET /api/fleet", h.Fleet.List)
	private("GET /api/fleet/{id}", h.Fleet.Get)
	private("PUT /api/fleet/{id}/status", h.Fleet.UpdateStatus)
	private("GET /api/alerts", h.Fleet.Alerts)
	private("POST /api/alerts/{id}/resolve", h.Fleet.ResolveAlert)

	private("GET /api/dashboard", h.Overview.Dashboard)
	private("GET /api/notifications", h.Overview.Notifications)

	var handler http.Handler = mux
	if opts.Instrument != nil {
		handler = opts.Instrument(handler)
	}

	return middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(opts.Logger),
		opts.CORS,
		opts.Auth,
		middleware.Logger(opts.Logger),
	)(handler)
}
