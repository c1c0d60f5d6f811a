package sqlstore

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/sensorfactory/nexus/internal/domain"
)

var orderColumns = []string{"id", "client_id", "order_date", "status", "total"}

// OrderRepo stores orders and their line items.
type OrderRepo struct {
	db *DB
}

func NewOrderRepo(db *DB) *OrderRepo {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	return r.list(ctx, r.db.sb.Select(orderColumns...).From("orders").OrderBy("pos"))
}

func (r *OrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	orders, err := r.list(ctx, r.db.sb.Select(orderColumns...).From("orders").Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, mapError(err, "order", id)
	}
	if len(orders) == 0 {
		return nil, notFound("order", id)
	}
	return &orders[0], nil
}

func (r *OrderRepo) ListByClient(ctx context.Context, clientID string) ([]domain.Order, error) {
	return r.list(ctx, r.db.sb.Select(orderColumns...).From("orders").
		Where(sq.Eq{"client_id": clientID}).OrderBy("pos"))
}

// Create stores an order with its items under the given id. Seeding is the
// only writer; order ids are never generated.
func (r *OrderRepo) Create(ctx context.Context, o domain.Order, pos int64) error {
	_, err := r.db.exec(ctx, r.db.sb.Insert("orders").
		Columns(append(orderColumns, "pos")...).
		Values(o.ID, o.ClientID, o.Date.String(), string(o.Status), o.Total, pos))
	if err != nil {
		return mapError(err, "order", o.ID)
	}
	for i, it := range o.Items {
		_, err := r.db.exec(ctx, r.db.sb.Insert("order_items").
			Columns("order_id", "line", "sensor_id", "quantity", "price").
			Values(o.ID, i, it.SensorID, it.Quantity, it.Price))
		if err != nil {
			return mapError(err, "order", o.ID)
		}
	}
	return nil
}

func (r *OrderRepo) list(ctx context.Context, b sq.SelectBuilder) ([]domain.Order, error) {
	rows, err := r.db.query(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	out := make([]domain.Order, 0)
	for rows.Next() {
		var (
			o            domain.Order
			date, status string
		)
		if err := rows.Scan(&o.ID, &o.ClientID, &date, &status, &o.Total); err != nil {
			rows.Close()
			return nil, fmt.Errorf("list orders: %w", err)
		}
		d, err := domain.ParseDate(date)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("list orders: %w", err)
		}
		o.Date = d
		o.Status = domain.OrderStatus(status)
		o.Items = []domain.OrderItem{}
		out = append(out, o)
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	if err := r.attachItems(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// attachItems loads the items of all orders in one query. The order rows
// must be closed first: SQLite runs on a single connection.
func (r *OrderRepo) attachItems(ctx context.Context, orders []domain.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]string, len(orders))
	index := make(map[string]int, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
		index[o.ID] = i
	}

	rows, err := r.db.query(ctx, r.db.sb.
		Select("order_id", "sensor_id", "quantity", "price").
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("order_id", "line"))
	if err != nil {
		return fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID string
			it      domain.OrderItem
		)
		if err := rows.Scan(&orderID, &it.SensorID, &it.Quantity, &it.Price); err != nil {
			return fmt.Errorf("list order items: %w", err)
		}
		i := index[orderID]
		orders[i].Items = append(orders[i].Items, it)
	}
	return rows.Err()
}

// SalesRepo stores the monthly sales series.
type SalesRepo struct {
	db *DB
}

func NewSalesRepo(db *DB) *SalesRepo {
	return &SalesRepo{db: db}
}

func (r *SalesRepo) List(ctx context.Context) ([]domain.SalesDataPoint, error) {
	rows, err := r.db.query(ctx, r.db.sb.Select("month", "revenue", "units").From("sales_by_month").OrderBy("pos"))
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	out := make([]domain.SalesDataPoint, 0)
	for rows.Next() {
		var p domain.SalesDataPoint
		if err := rows.Scan(&p.Month, &p.Revenue, &p.Units); err != nil {
			return nil, fmt.Errorf("list sales: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return out, nil
}

func (r *SalesRepo) Create(ctx context.Context, p domain.SalesDataPoint, pos int64) error {
	_, err := r.db.exec(ctx, r.db.sb.Insert("sales_by_month").
		Columns("pos", "month", "revenue", "units").
		Values(pos, p.Month, p.Revenue, p.Units))
	return err
}
