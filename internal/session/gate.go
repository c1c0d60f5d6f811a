// Package session keeps the logged-in identity of a dashboard user between
// invocations and answers who is signed in.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/sensorfactory/nexus/internal/domain"
	"github.com/sensorfactory/nexus/internal/service/auth"
)

// SlotUser is the storage key holding the serialized session.
const SlotUser = "user"

type authenticator interface {
	Authenticate(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
}

type delayer interface {
	Read(ctx context.Context) error
}

// Gate logs users in and out over a Storage slot.
type Gate struct {
	log     *slog.Logger
	auth    authenticator
	storage Storage
	delay   delayer
}

func NewGate(logger *slog.Logger, authn authenticator, storage Storage, delay delayer) *Gate {
	return &Gate{
		log:     logger.With("component", "session"),
		auth:    authn,
		storage: storage,
		delay:   delay,
	}
}

// Login authenticates and persists the session. Nothing is written when
// authentication fails.
func (g *Gate) Login(ctx context.Context, username, password string) (domain.Session, error) {
	res, err := g.auth.Authenticate(ctx, auth.LoginInput{Username: username, Password: password})
	if err != nil {
		return domain.Session{}, err
	}

	data, err := json.Marshal(res.Session)
	if err != nil {
		return domain.Session{}, fmt.Errorf("session.Login encode: %w", err)
	}
	if err := g.storage.Set(SlotUser, string(data)); err != nil {
		return domain.Session{}, fmt.Errorf("session.Login store: %w", err)
	}

	g.log.InfoContext(ctx, "session stored", slog.String("user_id", res.Session.ID))
	return res.Session, nil
}

// Logout waits the read delay and clears the session slot. Logging out
// without a session is not an error.
func (g *Gate) Logout(ctx context.Context) error {
	if err := g.delay.Read(ctx); err != nil {
		return err
	}
	if err := g.storage.Remove(SlotUser); err != nil {
		return fmt.Errorf("session.Logout: %w", err)
	}
	g.log.InfoContext(ctx, "session cleared")
	return nil
}

// CurrentUser returns the stored session. An absent, unreadable or malformed
// slot means nobody is logged in.
func (g *Gate) CurrentUser(ctx context.Context) (domain.Session, bool) {
	raw, ok, err := g.storage.Get(SlotUser)
	if err != nil {
		g.log.WarnContext(ctx, "session slot unreadable", slog.String("error", err.Error()))
		return domain.Session{}, false
	}
	if !ok {
		return domain.Session{}, false
	}

	var s domain.Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		g.log.WarnContext(ctx, "session slot malformed", slog.String("error", err.Error()))
		return domain.Session{}, false
	}
	if s.ID == "" {
		g.log.WarnContext(ctx, "session slot malformed", slog.String("error", "missing id"))
		return domain.Session{}, false
	}
	return s, true
}

func (g *Gate) IsAuthenticated(ctx context.Context) bool {
	_, ok := g.CurrentUser(ctx)
	return ok
}

// IsAdmin reports whether the stored session carries the admin role.
func (g *Gate) IsAdmin(ctx context.Context) bool {
	s, ok := g.CurrentUser(ctx)
	return ok && s.IsAdmin()
}
