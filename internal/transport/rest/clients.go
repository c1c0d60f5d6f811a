package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/sensorfactory/nexus/internal/domain"
	"github.com/sensorfactory/nexus/internal/service/client"
)

type clientService interface {
	ListClients(ctx context.Context, filter domain.ClientFilter) ([]domain.Client, error)
	GetClient(ctx context.Context, id string) (*domain.Client, error)
	CreateClient(ctx context.Context, input client.CreateClientInput) (*domain.Client, error)
	UpdateClient(ctx context.Context, input client.UpdateClientInput) (*domain.Client, error)
	DeleteClient(ctx context.Context, id string) (bool, error)
}

type clientOrders interface {
	ListOrdersByClient(ctx context.Context, clientID string) ([]domain.Order, error)
}

// ClientHandler serves client records and their order history.
type ClientHandler struct {
	svc    clientService
	orders clientOrders
	log    *slog.Logger
}

func NewClientHandler(svc clientService, orders clientOrders, logger *slog.Logger) *ClientHandler {
	return &ClientHandler{svc: svc, orders: orders, log: logger.With("handler", "client")}
}

type clientRequest struct {
	Name    *string `json:"name"`
	Contact *string `json:"contact"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// List handles GET /api/clients.
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.svc.ListClients(r.Context(), domain.ClientFilter{Search: r.URL.Query().Get("search")})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, clients)
}

// Get handles GET /api/clients/{id}.
func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.GetClient(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if c == nil {
		writeNotFound(w, "client")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Create handles POST /api/clients.
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.CreateClient(r.Context(), client.CreateClientInput{
		Name:    deref(req.Name),
		Contact: deref(req.Contact),
		Email:   deref(req.Email),
		Phone:   deref(req.Phone),
		Address: deref(req.Address),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// Update handles PATCH /api/clients/{id}.
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.UpdateClient(r.Context(), client.UpdateClientInput{
		ID:      r.PathValue("id"),
		Name:    req.Name,
		Contact: req.Contact,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if c == nil {
		writeNotFound(w, "client")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Delete handles DELETE /api/clients/{id}.
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ok, err := h.svc.DeleteClient(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if !ok {
		writeNotFound(w, "client")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Orders handles GET /api/clients/{id}/orders.
func (h *ClientHandler) Orders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListOrdersByClient(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}
