package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/sensorfactory/nexus/internal/domain"
)

// Summary returns the dashboard overview. Revenue change is the percentage
// difference between the last two months, rounded to one decimal, and zero
// when fewer than two months exist or the previous month had no revenue.
func (s *Service) Summary(ctx context.Context) (domain.Dashboard, error) {
	if err := s.delay.Read(ctx); err != nil {
		return domain.Dashboard{}, err
	}

	sensors, err := s.sensors.List(ctx)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("dashboard.Summary: list sensors: %w", err)
	}
	orders, err := s.orders.List(ctx)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("dashboard.Summary: list orders: %w", err)
	}
	clients, err := s.clients.List(ctx)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("dashboard.Summary: list clients: %w", err)
	}
	points, err := s.sales.List(ctx)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("dashboard.Summary: list sales: %w", err)
	}
	alerts, err := s.alerts.List(ctx)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("dashboard.Summary: list alerts: %w", err)
	}

	d := domain.Dashboard{
		ClientCount:  len(clients),
		RecentAlerts: recentAlerts(alerts, recentAlertsLimit),
		TopProducts:  topProducts(orders, sensors, topProductsLimit),
	}
	for _, sn := range sensors {
		d.InventoryUnits += sn.Stock
	}
	for _, o := range orders {
		if o.Status.IsActive() {
			d.ActiveOrders++
		}
	}
	if n := len(points); n > 0 {
		d.LatestMonth = points[n-1].Month
		d.LatestRevenue = points[n-1].Revenue
		if n > 1 {
			d.RevenueChange = percentChange(points[n-2].Revenue, points[n-1].Revenue)
		}
	}

	s.log.InfoContext(ctx, "dashboard loaded",
		slog.Int("inventory_units", d.InventoryUnits),
		slog.Int("active_orders", d.ActiveOrders),
		slog.Int("clients", d.ClientCount),
	)

	return d, nil
}

func percentChange(prev, cur float64) float64 {
	if prev == 0 {
		return 0
	}
	return math.Round((cur-prev)/prev*1000) / 10
}

// recentAlerts returns up to limit alerts, newest first, resolved included.
func recentAlerts(alerts []domain.MaintenanceAlert, limit int) []domain.MaintenanceAlert {
	out := append([]domain.MaintenanceAlert(nil), alerts...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// topProducts ranks sensors by units ordered. Ties keep catalog order and
// sensors no longer in the catalog are reported by id.
func topProducts(orders []domain.Order, sensors []domain.Sensor, limit int) []domain.ProductSales {
	units := make(map[string]int)
	for _, o := range orders {
		for _, it := range o.Items {
			units[it.SensorID] += it.Quantity
		}
	}

	out := make([]domain.ProductSales, 0, len(units))
	for _, sn := range sensors {
		if n, ok := units[sn.ID]; ok {
			out = append(out, domain.ProductSales{SensorID: sn.ID, Name: sn.Name, Units: n})
			delete(units, sn.ID)
		}
	}
	orphans := make([]string, 0, len(units))
	for id := range units {
		orphans = append(orphans, id)
	}
	sort.Strings(orphans)
	for _, id := range orphans {
		out = append(out, domain.ProductSales{SensorID: id, Name: id, Units: units[id]})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Units > out[j].Units })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
