package fleet

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/sensorfactory/nexus/internal/domain"
	"github.com/sensorfactory/nexus/internal/notify"
)

// AlertFilter selects maintenance alerts.
type AlertFilter struct {
	SensorID        string
	IncludeResolved bool
}

func (f AlertFilter) match(a domain.MaintenanceAlert) bool {
	if !f.IncludeResolved && a.Resolved {
		return false
	}
	return f.SensorID == "" || f.SensorID == a.SensorID
}

// ListAlerts returns the alerts accepted by filter, newest first.
func (s *Service) ListAlerts(ctx context.Context, filter AlertFilter) ([]domain.MaintenanceAlert, error) {
	if err := s.delay.Read(ctx); err != nil {
		return nil, err
	}

	all, err := s.alerts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fleet.ListAlerts: %w", err)
	}

	out := domain.Filter(all, filter.match)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

// ResolveAlert marks an alert resolved. Resolving twice is harmless. An
// unknown id yields nil and a "Resolve Failed" notification.
func (s *Service) ResolveAlert(ctx context.Context, id string) (*domain.MaintenanceAlert, error) {
	if err := s.delay.Write(ctx); err != nil {
		return nil, err
	}

	a, err := s.alerts.Resolve(ctx, id)
	if err != nil {
		if isNotFound(err) {
			s.log.WarnContext(ctx, "alert resolve skipped: not found", slog.String("alert_id", id))
			s.notify.Notify(ctx, notify.Failure("Resolve Failed", "Alert not found."))
			return nil, nil
		}
		return nil, fmt.Errorf("fleet.ResolveAlert: %w", err)
	}

	s.log.InfoContext(ctx, "alert resolved",
		slog.String("alert_id", a.ID),
		slog.String("sensor_id", a.SensorID),
	)
	s.notify.Notify(ctx, notify.Success("Alert Resolved",
		fmt.Sprintf("Alert %s for %s has been resolved.", a.ID, a.SensorID)))

	return a, nil
}
