package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/sensorfactory/nexus/internal/domain"
	"github.com/sensorfactory/nexus/internal/export"
)

type salesService interface {
	ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrderDetails(ctx context.Context, filter domain.OrderFilter) ([]domain.OrderDetail, error)
	GetSalesData(ctx context.Context) ([]domain.SalesDataPoint, error)
	ExportOrders(ctx context.Context, filter domain.OrderFilter) ([]byte, error)
	OrderInvoice(ctx context.Context, id string) ([]byte, error)
}

// SalesHandler serves orders and monthly sales. All routes are read-only.
type SalesHandler struct {
	svc     salesService
	exports exportRecorder
	log     *slog.Logger
}

func NewSalesHandler(svc salesService, exports exportRecorder, logger *slog.Logger) *SalesHandler {
	if exports == nil {
		exports = discardExports{}
	}
	return &SalesHandler{svc: svc, exports: exports, log: logger.With("handler", "sales")}
}

func orderFilterFrom(r *http.Request) domain.OrderFilter {
	q := r.URL.Query()
	return domain.OrderFilter{
		Search:   q.Get("search"),
		Status:   q.Get("status"),
		ClientID: q.Get("clientId"),
	}
}

// List handles GET /api/orders.
func (h *SalesHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.ListOrders(r.Context(), orderFilterFrom(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

// Details handles GET /api/orders/details.
func (h *SalesHandler) Details(w http.ResponseWriter, r *http.Request) {
	details, err := h.svc.ListOrderDetails(r.Context(), orderFilterFrom(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

// Get handles GET /api/orders/{id}.
func (h *SalesHandler) Get(w http.ResponseWriter, r *http.Request) {
	o, err := h.svc.GetOrder(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if o == nil {
		writeNotFound(w, "order")
		return
	}
	writeJSON(w, http.StatusOK, o)
}

// Sales handles GET /api/sales.
func (h *SalesHandler) Sales(w http.ResponseWriter, r *http.Request) {
	points, err := h.svc.GetSalesData(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, points)
}

// Export handles GET /api/orders/export.
func (h *SalesHandler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.ExportOrders(r.Context(), orderFilterFrom(r))
	h.exports.RecordExport("orders", err)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeFile(w, export.ContentTypeXLSX, "orders.xlsx", data)
}

// Invoice handles GET /api/orders/{id}/invoice.
func (h *SalesHandler) Invoice(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	data, err := h.svc.OrderInvoice(r.Context(), id)
	if err != nil {
		h.exports.RecordExport("invoice", err)
		handleError(h.log, w, r, err)
		return
	}
	if data == nil {
		writeNotFound(w, "order")
		return
	}
	h.exports.RecordExport("invoice", nil)
	writeFile(w, export.ContentTypePDF, "invoice-"+id+".pdf", data)
}
