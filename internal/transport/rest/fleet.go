package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/sensorfactory/nexus/internal/domain"
	"github.com/sensorfactory/nexus/internal/service/fleet"
)

type fleetService interface {
	ListDeployed(ctx context.Context, filter domain.DeployedSensorFilter) ([]domain.DeployedSensor, error)
	GetDeployed(ctx context.Context, id string) (*domain.DeployedSensor, error)
	UpdateStatus(ctx context.Context, input fleet.UpdateStatusInput) (*domain.DeployedSensor, error)
	ListAlerts(ctx context.Context, filter fleet.AlertFilter) ([]domain.MaintenanceAlert, error)
	ResolveAlert(ctx context.Context, id string) (*domain.MaintenanceAlert, error)
}

// FleetHandler serves deployed sensors and maintenance alerts.
type FleetHandler struct {
	svc fleetService
	log *slog.Logger
}

func NewFleetHandler(svc fleetService, logger *slog.Logger) *FleetHandler {
	return &FleetHandler{svc: svc, log: logger.With("handler", "fleet")}
}

type statusRequest struct {
	Status domain.SensorStatus `json:"status"`
}

// List handles GET /api/fleet.
func (h *FleetHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sensors, err := h.svc.ListDeployed(r.Context(), domain.DeployedSensorFilter{
		Search: q.Get("search"),
		Status: q.Get("status"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sensors)
}

// Get handles GET /api/fleet/{id}.
func (h *FleetHandler) Get(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.GetDeployed(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if d == nil {
		writeNotFound(w, "sensor")
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// UpdateStatus handles PUT /api/fleet/{id}/status.
func (h *FleetHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	d, err := h.svc.UpdateStatus(r.Context(), fleet.UpdateStatusInput{ID: r.PathValue("id"), Status: req.Status})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if d == nil {
		writeNotFound(w, "sensor")
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// Alerts handles GET /api/alerts?sensorId=&all=true.
func (h *FleetHandler) Alerts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	all, _ := strconv.ParseBool(q.Get("all"))

	alerts, err := h.svc.ListAlerts(r.Context(), fleet.AlertFilter{
		SensorID:        q.Get("sensorId"),
		IncludeResolved: all,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, alerts)
}

// ResolveAlert handles POST /api/alerts/{id}/resolve.
func (h *FleetHandler) ResolveAlert(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.ResolveAlert(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if a == nil {
		writeNotFound(w, "alert")
		return
	}
	writeJSON(w, http.StatusOK, a)
}
