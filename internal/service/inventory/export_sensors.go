package inventory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sensorfactory/nexus/internal/domain"
	"github.com/sensorfactory/nexus/internal/export"
)

// ExportSensors renders the filtered catalog as an XLSX workbook.
func (s *Service) ExportSensors(ctx context.Context, filter domain.SensorFilter) ([]byte, error) {
	sensors, err := s.ListSensors(ctx, filter)
	if err != nil {
		return nil, err
	}

	data, err := export.SensorsXLSX(sensors)
	if err != nil {
		return nil, fmt.Errorf("inventory.ExportSensors: %w", err)
	}

	s.log.InfoContext(ctx, "sensors exported",
		slog.Int("count", len(sensors)),
		slog.Int("bytes", len(data)),
	)
	return data, nil
}
