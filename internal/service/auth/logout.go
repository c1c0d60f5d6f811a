package auth

import (
	"context"
	"log/slog"

	"github.com/sensorfactory/nexus/internal/domain"
	"github.com/sensorfactory/nexus/pkg/ctxutil"
)

// Logout ends the session found in ctx after the read delay by revoking its
// access token until the token would expire. Sessions not resolved from a
// token, like the CLI's stored one, have nothing to revoke.
// Returns ErrUnauthorized if no session is found in context.
func (s *Service) Logout(ctx context.Context) error {
	session, ok := ctxutil.SessionFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.delay.Read(ctx); err != nil {
		return err
	}

	s.jwt.Revoke(session.TokenID, session.TokenExpiry)
	s.log.InfoContext(ctx, "user logged out", slog.String("user_id", session.ID))
	return nil
}

// ValidateToken validates an access token and returns its session.
// Returns ErrUnauthorized if the token is invalid or expired.
func (s *Service) ValidateToken(ctx context.Context, token string) (domain.Session, error) {
	session, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		s.log.DebugContext(ctx, "token rejected", slog.String("error", err.Error()))
		return domain.Session{}, domain.ErrUnauthorized
	}
	return session, nil
}
