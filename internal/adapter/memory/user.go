package memory

import (
	"context"
	"fmt"

	"github.com/sensorfactory/nexus/internal/domain"
)

// UserRepo stores dashboard accounts.
type UserRepo struct {
	c *collection[domain.User]
}

func newUserRepo(items []domain.User) *UserRepo {
	return &UserRepo{c: newCollection(items, "",
		func(u domain.User) string { return u.ID }, nil)}
}

// GetByUsername matches the username exactly.
func (r *UserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.c.list() {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user %q: %w", username, domain.ErrNotFound)
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.c.get(id)
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return &u, nil
}
