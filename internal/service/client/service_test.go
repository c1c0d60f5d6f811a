package client

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sensorfactory/nexus/internal/adapter/memory"
	"github.com/sensorfactory/nexus/internal/domain"
	"github.com/sensorfactory/nexus/internal/latency"
	"github.com/sensorfactory/nexus/internal/notify"
	"github.com/sensorfactory/nexus/internal/seed"
)

func newSeededService(t *testing.T) (*Service, *notify.Feed) {
	t.Helper()
	ds, err := seed.Default()
	require.NoError(t, err)

	feed := notify.NewFeed(20)
	return NewService(slog.Default(), memory.New(ds).Clients, latency.None(), feed), feed
}

func ptr[T any](v T) *T { return &v }

func TestService_DeleteClient(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, feed := newSeededService(t)

	ok, err := svc.DeleteClient(ctx, "C002")
	require.NoError(t, err)
	assert.True(t, ok)

	all, err := svc.ListClients(ctx, domain.ClientFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	for _, c := range all {
		assert.NotEqual(t, "C002", c.ID)
	}

	got, err := svc.GetClient(ctx, "C002")
	require.NoError(t, err)
	assert.Nil(t, got)

	n := feed.Recent(1)
	require.Len(t, n, 1)
	assert.Equal(t, "Client Deleted", n[0].Title)
	assert.Equal(t, "TechCorp has been removed from clients.", n[0].Description)
}

func TestService_DeleteClient_ConcurrentDoubleDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newSeededService(t)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results []bool
	)
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := svc.DeleteClient(ctx, "C001")
			assert.NoError(t, err)
			mu.Lock()
			results = append(results, ok)
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.ElementsMatch(t, []bool{true, false}, results)
}

func TestService_UpdateClient(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, feed := newSeededService(t)

	updated, err := svc.UpdateClient(ctx, UpdateClientInput{ID: "C001", Phone: ptr("555-000-0000")})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "555-000-0000", updated.Phone)
	assert.Equal(t, "Acme Industries", updated.Name)
	assert.Equal(t, "John Smith", updated.Contact)

	n := feed.Recent(1)
	require.Len(t, n, 1)
	assert.Equal(t, "Acme Industries's information has been updated.", n[0].Description)

	missing, err := svc.UpdateClient(ctx, UpdateClientInput{ID: "C404", Phone: ptr("x")})
	require.NoError(t, err)
	assert.Nil(t, missing)
	n = feed.Recent(1)
	assert.Equal(t, "Update Failed", n[0].Title)
	assert.Equal(t, "Client not found.", n[0].Description)
}

func TestService_CreateClient(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, feed := newSeededService(t)

	created, err := svc.CreateClient(ctx, CreateClientInput{Name: "Northwind", Email: "ops@northwind.test"})
	require.NoError(t, err)
	assert.Equal(t, "C005", created.ID)

	n := feed.Recent(1)
	require.Len(t, n, 1)
	assert.Equal(t, "Client Added", n[0].Title)
	assert.Equal(t, "Northwind has been added as a client.", n[0].Description)

	_, err = svc.CreateClient(ctx, CreateClientInput{Email: "nobody"})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Errors, 2)
}

func TestService_ListClients_Search(t *testing.T) {
	t.Parallel()
	svc, _ := newSeededService(t)

	got, err := svc.ListClients(context.Background(), domain.ClientFilter{Search: "CHEN"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "C003", got[0].ID)
}
