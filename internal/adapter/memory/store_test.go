package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sensorfactory/nexus/internal/domain"
	"github.com/sensorfactory/nexus/internal/seed"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	ds, err := seed.Default()
	require.NoError(t, err)
	return New(ds)
}

func TestSensorRepo_CreateAssignsUnusedID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newStore(t)

	created, err := s.Sensors.Create(ctx, domain.Sensor{Name: "Gas G-600", Type: domain.SensorTypeGas})
	require.NoError(t, err)
	assert.Equal(t, "S006", created.ID)

	all, err := s.Sensors.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 6)
	assert.Equal(t, "S006", all[5].ID)
}

func TestSensorRepo_IDsNotReusedAfterDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newStore(t)

	require.NoError(t, s.Sensors.Delete(ctx, "S005"))
	created, err := s.Sensors.Create(ctx, domain.Sensor{Name: "x", Type: domain.SensorTypeGas})
	require.NoError(t, err)
	assert.Equal(t, "S006", created.ID)

	require.NoError(t, s.Sensors.Delete(ctx, "S002"))
	created, err = s.Sensors.Create(ctx, domain.Sensor{Name: "y", Type: domain.SensorTypeGas})
	require.NoError(t, err)
	assert.Equal(t, "S007", created.ID)
}

func TestSensorRepo_UpdateMergesFields(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newStore(t)

	stock := 120
	today := domain.DateOf(time.Now())
	updated, err := s.Sensors.Update(ctx, "S001", domain.SensorUpdateParams{Stock: &stock, LastUpdated: today})
	require.NoError(t, err)
	assert.Equal(t, 120, updated.Stock)
	assert.Equal(t, 49.99, updated.Price)
	assert.Equal(t, today.String(), updated.LastUpdated.String())

	got, err := s.Sensors.GetByID(ctx, "S001")
	require.NoError(t, err)
	assert.Equal(t, 120, got.Stock)
}

func TestSensorRepo_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newStore(t)

	_, err := s.Sensors.GetByID(ctx, "S999")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	name := "ghost"
	_, err = s.Sensors.Update(ctx, "S999", domain.SensorUpdateParams{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, s.Sensors.Delete(ctx, "S999"), domain.ErrNotFound)

	all, err := s.Sensors.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestClientRepo_DeleteTwice(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newStore(t)

	require.NoError(t, s.Clients.Delete(ctx, "C002"))
	assert.ErrorIs(t, s.Clients.Delete(ctx, "C002"), domain.ErrNotFound)

	all, err := s.Clients.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	for _, c := range all {
		assert.NotEqual(t, "C002", c.ID)
	}
}

func TestClientRepo_GetByIDs(t *testing.T) {
	t.Parallel()
	s := newStore(t)

	got, err := s.Clients.GetByIDs(context.Background(), []string{"C003", "C001", "C404"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "C001", got[0].ID)
	assert.Equal(t, "C003", got[1].ID)
}

func TestListReturnsCopies(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newStore(t)

	orders, err := s.Orders.List(ctx)
	require.NoError(t, err)
	orders[0].Items[0].Quantity = 0

	fleet, err := s.Fleet.List(ctx)
	require.NoError(t, err)
	fleet[0].DataPoints[0] = domain.ErrorReading()

	o, err := s.Orders.GetByID(ctx, "O001")
	require.NoError(t, err)
	assert.Equal(t, 10, o.Items[0].Quantity)

	d, err := s.Fleet.GetByID(ctx, "SENS-001")
	require.NoError(t, err)
	assert.True(t, d.DataPoints[0].Valid)
}

func TestOrderRepo_ListByClient(t *testing.T) {
	t.Parallel()
	s := newStore(t)

	got, err := s.Orders.ListByClient(context.Background(), "C002")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "O002", got[0].ID)
}

func TestDeployedSensorRepo_UpdateStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newStore(t)

	at := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	d, err := s.Fleet.UpdateStatus(ctx, "SENS-002", domain.SensorStatusOnline, at)
	require.NoError(t, err)
	assert.Equal(t, domain.SensorStatusOnline, d.Status)
	assert.True(t, d.LastCommunication.Equal(at))

	_, err = s.Fleet.UpdateStatus(ctx, "SENS-404", domain.SensorStatusOnline, at)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAlertRepo_Resolve(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newStore(t)

	a, err := s.Alerts.Resolve(ctx, "MA001")
	require.NoError(t, err)
	assert.True(t, a.Resolved)

	_, err = s.Alerts.Resolve(ctx, "MA404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserRepo_GetByUsername(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newStore(t)

	u, err := s.Users.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, u.Role)

	_, err = s.Users.GetByUsername(ctx, "Admin")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSensorRepo_ConcurrentCreatesGetDistinctIDs(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newStore(t)

	const n = 40
	ids := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			created, err := s.Sensors.Create(ctx, domain.Sensor{Name: fmt.Sprintf("s-%d", i), Type: domain.SensorTypeLight})
			if err == nil {
				ids <- created.ID
			}
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}
