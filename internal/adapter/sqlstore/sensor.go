package sqlstore

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/sensorfactory/nexus/internal/domain"
)

var sensorColumns = []string{"id", "name", "type", "price", "stock", "description", "last_updated"}

// SensorRepo stores catalog sensors.
type SensorRepo struct {
	db *DB
}

func NewSensorRepo(db *DB) *SensorRepo {
	return &SensorRepo{db: db}
}

func (r *SensorRepo) List(ctx context.Context) ([]domain.Sensor, error) {
	rows, err := r.db.query(ctx, r.db.sb.Select(sensorColumns...).From("sensors").OrderBy("pos"))
	if err != nil {
		return nil, fmt.Errorf("list sensors: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Sensor, 0)
	for rows.Next() {
		s, err := scanSensor(rows)
		if err != nil {
			return nil, fmt.Errorf("list sensors: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sensors: %w", err)
	}
	return out, nil
}

func (r *SensorRepo) GetByID(ctx context.Context, id string) (*domain.Sensor, error) {
	row, err := r.db.queryRow(ctx, r.db.sb.Select(sensorColumns...).From("sensors").Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, mapError(err, "sensor", id)
	}
	s, err := scanSensor(row)
	if err != nil {
		return nil, mapError(err, "sensor", id)
	}
	return &s, nil
}

// Create assigns a fresh id and appends the sensor.
func (r *SensorRepo) Create(ctx context.Context, s domain.Sensor) (*domain.Sensor, error) {
	var created domain.Sensor
	err := NewTxManager(r.db).RunInTx(ctx, func(ctx context.Context) error {
		id, pos, err := r.db.nextID(ctx, seqSensors, domain.PrefixSensor, "sensors")
		if err != nil {
			return err
		}
		s.ID = id
		if err := r.insert(ctx, s, pos); err != nil {
			return mapError(err, "sensor", id)
		}
		created = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *SensorRepo) insert(ctx context.Context, s domain.Sensor, pos int64) error {
	_, err := r.db.exec(ctx, r.db.sb.Insert("sensors").
		Columns(append(sensorColumns, "pos")...).
		Values(s.ID, s.Name, string(s.Type), s.Price, s.Stock, s.Description, s.LastUpdated.String(), pos))
	return err
}

func (r *SensorRepo) Update(ctx context.Context, id string, params domain.SensorUpdateParams) (*domain.Sensor, error) {
	b := r.db.sb.Update("sensors").Where(sq.Eq{"id": id})
	if params.Name != nil {
		b = b.Set("name", *params.Name)
	}
	if params.Type != nil {
		b = b.Set("type", string(*params.Type))
	}
	if params.Price != nil {
		b = b.Set("price", *params.Price)
	}
	if params.Stock != nil {
		b = b.Set("stock", *params.Stock)
	}
	if params.Description != nil {
		b = b.Set("description", *params.Description)
	}
	if !params.LastUpdated.IsZero() {
		b = b.Set("last_updated", params.LastUpdated.String())
	}

	if err := r.db.updateOne(ctx, b, "sensors", "sensor", id); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *SensorRepo) Delete(ctx context.Context, id string) error {
	return r.db.deleteOne(ctx, "sensors", "sensor", id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSensor(row rowScanner) (domain.Sensor, error) {
	var (
		s           domain.Sensor
		typ, update string
	)
	if err := row.Scan(&s.ID, &s.Name, &typ, &s.Price, &s.Stock, &s.Description, &update); err != nil {
		return domain.Sensor{}, err
	}
	s.Type = domain.SensorType(typ)
	d, err := domain.ParseDate(update)
	if err != nil {
		return domain.Sensor{}, err
	}
	s.LastUpdated = d
	return s, nil
}

// updateOne runs b and reports ErrNotFound when no row matched. A builder
// with no SET clauses only checks existence.
func (db *DB) updateOne(ctx context.Context, b sq.UpdateBuilder, table, entity, id string) error {
	if _, _, err := b.ToSql(); err != nil {
		taken, err := db.exists(ctx, table, id)
		if err != nil {
			return mapError(err, entity, id)
		}
		if !taken {
			return notFound(entity, id)
		}
		return nil
	}

	res, err := db.exec(ctx, b)
	if err != nil {
		return mapError(err, entity, id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return mapError(err, entity, id)
	}
	if n == 0 {
		return notFound(entity, id)
	}
	return nil
}

func (db *DB) deleteOne(ctx context.Context, table, entity, id string) error {
	res, err := db.exec(ctx, db.sb.Delete(table).Where(sq.Eq{"id": id}))
	if err != nil {
		return mapError(err, entity, id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return mapError(err, entity, id)
	}
	if n == 0 {
		return notFound(entity, id)
	}
	return nil
}
