// Package auth authenticates dashboard users and manages their access tokens.
package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/sensorfactory/nexus/internal/domain"
	"github.com/sensorfactory/nexus/internal/notify"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(s domain.Session) (string, error)
	ValidateAccessToken(token string) (domain.Session, error)
	Revoke(tokenID string, expiry time.Time)
}

// delayer simulates backend latency.
type delayer interface {
	Read(ctx context.Context) error
	Write(ctx context.Context) error
}

// Service implements auth operations.
type Service struct {
	log    *slog.Logger
	users  userRepo
	jwt    jwtManager
	delay  delayer
	notify notify.Notifier
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	jwt jwtManager,
	delay delayer,
	notifier notify.Notifier,
) *Service {
	if notifier == nil {
		notifier = notify.Discard{}
	}
	return &Service{
		log:    logger.With("service", "auth"),
		users:  users,
		jwt:    jwt,
		delay:  delay,
		notify: notifier,
	}
}
