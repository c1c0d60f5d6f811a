package sqlstore

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/sensorfactory/nexus/internal/domain"
)

var userColumns = []string{"id", "username", "password_hash", "name", "role", "email"}

// UserRepo stores dashboard accounts.
type UserRepo struct {
	db *DB
}

func NewUserRepo(db *DB) *UserRepo {
	return &UserRepo{db: db}
}

// GetByUsername matches the username exactly.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.get(ctx, sq.Eq{"username": username}, username)
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.get(ctx, sq.Eq{"id": id}, id)
}

func (r *UserRepo) get(ctx context.Context, where sq.Eq, key string) (*domain.User, error) {
	row, err := r.db.queryRow(ctx, r.db.sb.Select(userColumns...).From("users").Where(where))
	if err != nil {
		return nil, mapError(err, "user", key)
	}
	var (
		u    domain.User
		role string
	)
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Name, &role, &u.Email); err != nil {
		return nil, mapError(err, "user", key)
	}
	u.Role = domain.UserRole(role)
	return &u, nil
}

func (r *UserRepo) Create(ctx context.Context, u domain.User, pos int64) error {
	_, err := r.db.exec(ctx, r.db.sb.Insert("users").
		Columns(append(userColumns, "pos")...).
		Values(u.ID, u.Username, u.PasswordHash, u.Name, string(u.Role), u.Email, pos))
	return mapError(err, "user", u.ID)
}
