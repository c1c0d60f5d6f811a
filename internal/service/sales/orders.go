package sales

import (
	"context"
	"fmt"

	"github.com/sensorfactory/nexus/internal/domain"
)

// ListOrders returns the orders narrowed by filter, in collection order.
func (s *Service) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	if err := s.delay.Read(ctx); err != nil {
		return nil, err
	}
	return s.listOrders(ctx, filter)
}

func (s *Service) listOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	all, err := s.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("sales.ListOrders: %w", err)
	}
	return domain.Filter(all, filter.Match), nil
}

// GetOrder returns the order with id, or nil when there is none.
func (s *Service) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	if err := s.delay.Read(ctx); err != nil {
		return nil, err
	}

	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("sales.GetOrder: %w", err)
	}
	return o, nil
}

// ListOrdersByClient returns the orders placed by clientID. An unknown
// client yields an empty list.
func (s *Service) ListOrdersByClient(ctx context.Context, clientID string) ([]domain.Order, error) {
	if err := s.delay.Read(ctx); err != nil {
		return nil, err
	}

	orders, err := s.orders.ListByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("sales.ListOrdersByClient: %w", err)
	}
	return orders, nil
}

// GetSalesData returns the monthly revenue series in calendar order.
func (s *Service) GetSalesData(ctx context.Context) ([]domain.SalesDataPoint, error) {
	if err := s.delay.Read(ctx); err != nil {
		return nil, err
	}

	points, err := s.sales.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("sales.GetSalesData: %w", err)
	}
	return points, nil
}
