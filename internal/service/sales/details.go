package sales

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/sensorfactory/nexus/internal/domain"
	"github.com/sensorfactory/nexus/internal/export"
)

// ListOrderDetails returns the filtered orders joined with their clients'
// names. Client lookups are batched; orders of deleted clients keep an
// empty name.
func (s *Service) ListOrderDetails(ctx context.Context, filter domain.OrderFilter) ([]domain.OrderDetail, error) {
	if err := s.delay.Read(ctx); err != nil {
		return nil, err
	}
	return s.orderDetails(ctx, filter)
}

func (s *Service) orderDetails(ctx context.Context, filter domain.OrderFilter) ([]domain.OrderDetail, error) {
	orders, err := s.listOrders(ctx, filter)
	if err != nil {
		return nil, err
	}

	loader := newClientLoader(s.clients)
	thunks := make([]dataloader.Thunk[*domain.Client], len(orders))
	for i, o := range orders {
		thunks[i] = loader.Load(ctx, o.ClientID)
	}

	out := make([]domain.OrderDetail, len(orders))
	for i, o := range orders {
		c, err := thunks[i]()
		if err != nil {
			return nil, fmt.Errorf("sales.ListOrderDetails load client %s: %w", o.ClientID, err)
		}
		var name string
		if c != nil {
			name = c.Name
		}
		out[i] = domain.DetailOf(o, name)
	}
	return out, nil
}

// ExportOrders renders the filtered order details as an XLSX workbook.
func (s *Service) ExportOrders(ctx context.Context, filter domain.OrderFilter) ([]byte, error) {
	details, err := s.ListOrderDetails(ctx, filter)
	if err != nil {
		return nil, err
	}

	data, err := export.OrdersXLSX(details)
	if err != nil {
		return nil, fmt.Errorf("sales.ExportOrders: %w", err)
	}

	s.log.InfoContext(ctx, "orders exported",
		slog.Int("count", len(details)),
		slog.Int("bytes", len(data)),
	)
	return data, nil
}

// OrderInvoice renders a PDF invoice for the order with id. It returns nil
// data and no error when the order does not exist.
func (s *Service) OrderInvoice(ctx context.Context, id string) ([]byte, error) {
	if err := s.delay.Read(ctx); err != nil {
		return nil, err
	}

	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("sales.OrderInvoice: %w", err)
	}

	c, err := s.clients.GetByID(ctx, o.ClientID)
	if err != nil && !isNotFound(err) {
		return nil, fmt.Errorf("sales.OrderInvoice get client: %w", err)
	}

	var name string
	if c != nil {
		name = c.Name
	}

	data, err := export.InvoicePDF(domain.DetailOf(*o, name), c)
	if err != nil {
		return nil, fmt.Errorf("sales.OrderInvoice: %w", err)
	}

	s.log.InfoContext(ctx, "invoice rendered", slog.String("order_id", id))
	return data, nil
}
