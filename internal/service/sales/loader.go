package sales

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/sensorfactory/nexus/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// newClientLoader batches client lookups by id. Unknown ids resolve to nil.
// A loader caches for its whole lifetime, so build one per operation.
func newClientLoader(repo clientRepo) *dataloader.Loader[string, *domain.Client] {
	return dataloader.NewBatchedLoader(
		newClientsBatchFn(repo),
		dataloader.WithWait[string, *domain.Client](wait),
		dataloader.WithBatchCapacity[string, *domain.Client](maxBatch),
	)
}

func newClientsBatchFn(repo clientRepo) dataloader.BatchFunc[string, *domain.Client] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[*domain.Client] {
		clients, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			results := make([]*dataloader.Result[*domain.Client], len(keys))
			for i := range results {
				results[i] = &dataloader.Result[*domain.Client]{Error: err}
			}
			return results
		}

		byID := make(map[string]*domain.Client, len(clients))
		for i := range clients {
			byID[clients[i].ID] = &clients[i]
		}

		results := make([]*dataloader.Result[*domain.Client], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.Client]{Data: byID[key]}
		}
		return results
	}
}
