package sqlstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/sensorfactory/nexus/internal/domain"
)

var deployedColumns = []string{"id", "location", "client", "status", "last_communication", "runtime_hours", "data_points"}

// DeployedSensorRepo stores deployed sensors. Data points are kept as a
// JSON array.
type DeployedSensorRepo struct {
	db *DB
}

func NewDeployedSensorRepo(db *DB) *DeployedSensorRepo {
	return &DeployedSensorRepo{db: db}
}

func (r *DeployedSensorRepo) List(ctx context.Context) ([]domain.DeployedSensor, error) {
	rows, err := r.db.query(ctx, r.db.sb.Select(deployedColumns...).From("deployed_sensors").OrderBy("pos"))
	if err != nil {
		return nil, fmt.Errorf("list deployed sensors: %w", err)
	}
	defer rows.Close()

	out := make([]domain.DeployedSensor, 0)
	for rows.Next() {
		d, err := scanDeployed(rows)
		if err != nil {
			return nil, fmt.Errorf("list deployed sensors: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list deployed sensors: %w", err)
	}
	return out, nil
}

func (r *DeployedSensorRepo) GetByID(ctx context.Context, id string) (*domain.DeployedSensor, error) {
	row, err := r.db.queryRow(ctx, r.db.sb.Select(deployedColumns...).From("deployed_sensors").Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, mapError(err, "deployed sensor", id)
	}
	d, err := scanDeployed(row)
	if err != nil {
		return nil, mapError(err, "deployed sensor", id)
	}
	return &d, nil
}

// UpdateStatus sets the status and stamps the last communication time.
func (r *DeployedSensorRepo) UpdateStatus(ctx context.Context, id string, status domain.SensorStatus, at time.Time) (*domain.DeployedSensor, error) {
	b := r.db.sb.Update("deployed_sensors").
		Set("status", string(status)).
		Set("last_communication", formatTimestamp(at)).
		Where(sq.Eq{"id": id})
	if err := r.db.updateOne(ctx, b, "deployed_sensors", "deployed sensor", id); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *DeployedSensorRepo) Create(ctx context.Context, d domain.DeployedSensor, pos int64) error {
	points, err := json.Marshal(d.DataPoints)
	if err != nil {
		return fmt.Errorf("deployed sensor %s: encode data points: %w", d.ID, err)
	}
	_, err = r.db.exec(ctx, r.db.sb.Insert("deployed_sensors").
		Columns(append(deployedColumns, "pos")...).
		Values(d.ID, d.Location, d.Client, string(d.Status), formatTimestamp(d.LastCommunication),
			d.RuntimeHours, string(points), pos))
	return mapError(err, "deployed sensor", d.ID)
}

func scanDeployed(row rowScanner) (domain.DeployedSensor, error) {
	var (
		d                    domain.DeployedSensor
		status, last, points string
	)
	if err := row.Scan(&d.ID, &d.Location, &d.Client, &status, &last, &d.RuntimeHours, &points); err != nil {
		return domain.DeployedSensor{}, err
	}
	d.Status = domain.SensorStatus(status)

	ts, err := parseTimestamp(last)
	if err != nil {
		return domain.DeployedSensor{}, err
	}
	d.LastCommunication = ts

	d.DataPoints = []domain.Reading{}
	if err := json.Unmarshal([]byte(points), &d.DataPoints); err != nil {
		return domain.DeployedSensor{}, fmt.Errorf("decode data points: %w", err)
	}
	return d, nil
}

var alertColumns = []string{"id", "sensor_id", "type", "message", "created_at", "resolved"}

// AlertRepo stores maintenance alerts.
type AlertRepo struct {
	db *DB
}

func NewAlertRepo(db *DB) *AlertRepo {
	return &AlertRepo{db: db}
}

func (r *AlertRepo) List(ctx context.Context) ([]domain.MaintenanceAlert, error) {
	rows, err := r.db.query(ctx, r.db.sb.Select(alertColumns...).From("maintenance_alerts").OrderBy("pos"))
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()

	out := make([]domain.MaintenanceAlert, 0)
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("list alerts: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	return out, nil
}

// Resolve marks an alert resolved.
func (r *AlertRepo) Resolve(ctx context.Context, id string) (*domain.MaintenanceAlert, error) {
	b := r.db.sb.Update("maintenance_alerts").Set("resolved", true).Where(sq.Eq{"id": id})
	if err := r.db.updateOne(ctx, b, "maintenance_alerts", "alert", id); err != nil {
		return nil, err
	}

	row, err := r.db.queryRow(ctx, r.db.sb.Select(alertColumns...).From("maintenance_alerts").Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, mapError(err, "alert", id)
	}
	a, err := scanAlert(row)
	if err != nil {
		return nil, mapError(err, "alert", id)
	}
	return &a, nil
}

func (r *AlertRepo) Create(ctx context.Context, a domain.MaintenanceAlert, pos int64) error {
	_, err := r.db.exec(ctx, r.db.sb.Insert("maintenance_alerts").
		Columns(append(alertColumns, "pos")...).
		Values(a.ID, a.SensorID, string(a.Type), a.Message, formatTimestamp(a.Date), a.Resolved, pos))
	return mapError(err, "alert", a.ID)
}

func scanAlert(row rowScanner) (domain.MaintenanceAlert, error) {
	var (
		a            domain.MaintenanceAlert
		typ, created string
	)
	if err := row.Scan(&a.ID, &a.SensorID, &typ, &a.Message, &created, &a.Resolved); err != nil {
		return domain.MaintenanceAlert{}, err
	}
	a.Type = domain.AlertType(typ)
	ts, err := parseTimestamp(created)
	if err != nil {
		return domain.MaintenanceAlert{}, err
	}
	a.Date = ts
	return a, nil
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}
