package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/sensorfactory/nexus/internal/domain"
	"github.com/sensorfactory/nexus/internal/export"
	"github.com/sensorfactory/nexus/internal/service/inventory"
)

type inventoryService interface {
	ListSensors(ctx context.Context, filter domain.SensorFilter) ([]domain.Sensor, error)
	GetSensor(ctx context.Context, id string) (*domain.Sensor, error)
	ListSensorTypes(ctx context.Context) ([]domain.SensorType, error)
	CreateSensor(ctx context.Context, input inventory.CreateSensorInput) (*domain.Sensor, error)
	UpdateSensor(ctx context.Context, input inventory.UpdateSensorInput) (*domain.Sensor, error)
	DeleteSensor(ctx context.Context, id string) (bool, error)
	ExportSensors(ctx context.Context, filter domain.SensorFilter) ([]byte, error)
}

// InventoryHandler serves the sensor catalog.
type InventoryHandler struct {
	svc     inventoryService
	exports exportRecorder
	log     *slog.Logger
}

func NewInventoryHandler(svc inventoryService, exports exportRecorder, logger *slog.Logger) *InventoryHandler {
	if exports == nil {
		exports = discardExports{}
	}
	return &InventoryHandler{svc: svc, exports: exports, log: logger.With("handler", "inventory")}
}

type sensorRequest struct {
	Name        *string            `json:"name"`
	Type        *domain.SensorType `json:"type"`
	Price       *float64           `json:"price"`
	Stock       *int               `json:"stock"`
	Description *string            `json:"description"`
}

func sensorFilterFrom(r *http.Request) domain.SensorFilter {
	q := r.URL.Query()
	return domain.SensorFilter{Search: q.Get("search"), Type: q.Get("type")}
}

// List handles GET /api/sensors.
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	sensors, err := h.svc.ListSensors(r.Context(), sensorFilterFrom(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sensors)
}

// Get handles GET /api/sensors/{id}.
func (h *InventoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.GetSensor(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if s == nil {
		writeNotFound(w, "sensor")
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// Types handles GET /api/sensor-types.
func (h *InventoryHandler) Types(w http.ResponseWriter, r *http.Request) {
	types, err := h.svc.ListSensorTypes(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types)
}

// Create handles POST /api/sensors.
func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req sensorRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	in := inventory.CreateSensorInput{}
	if req.Name != nil {
		in.Name = *req.Name
	}
	if req.Type != nil {
		in.Type = *req.Type
	}
	if req.Price != nil {
		in.Price = *req.Price
	}
	if req.Stock != nil {
		in.Stock = *req.Stock
	}
	if req.Description != nil {
		in.Description = *req.Description
	}

	s, err := h.svc.CreateSensor(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, s)
}

// Update handles PATCH /api/sensors/{id}.
func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req sensorRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	s, err := h.svc.UpdateSensor(r.Context(), inventory.UpdateSensorInput{
		ID:          r.PathValue("id"),
		Name:        req.Name,
		Type:        req.Type,
		Price:       req.Price,
		Stock:       req.Stock,
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if s == nil {
		writeNotFound(w, "sensor")
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// Delete handles DELETE /api/sensors/{id}.
func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ok, err := h.svc.DeleteSensor(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if !ok {
		writeNotFound(w, "sensor")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Export handles GET /api/sensors/export.
func (h *InventoryHandler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.ExportSensors(r.Context(), sensorFilterFrom(r))
	h.exports.RecordExport("sensors", err)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeFile(w, export.ContentTypeXLSX, "sensors.xlsx", data)
}
