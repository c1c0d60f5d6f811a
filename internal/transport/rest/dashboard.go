package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/sensorfactory/nexus/internal/domain"
	"github.com/sensorfactory/nexus/internal/notify"
)

type dashboardService interface {
	Summary(ctx context.Context) (domain.Dashboard, error)
}

type notificationFeed interface {
	Recent(limit int) []notify.Notification
}

// OverviewHandler serves the dashboard summary and the notification feed.
type OverviewHandler struct {
	dashboard dashboardService
	feed      notificationFeed
	log       *slog.Logger
}

func NewOverviewHandler(dashboard dashboardService, feed notificationFeed, logger *slog.Logger) *OverviewHandler {
	return &OverviewHandler{dashboard: dashboard, feed: feed, log: logger.With("handler", "overview")}
}

// Dashboard handles GET /api/dashboard.
func (h *OverviewHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.dashboard.Summary(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// Notifications handles GET /api/notifications?limit=N, newest first.
func (h *OverviewHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}
	writeJSON(w, http.StatusOK, h.feed.Recent(limit))
}
