package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/sensorfactory/nexus/internal/domain"
	"github.com/sensorfactory/nexus/internal/notify"
)

// Authenticate checks a username and password after the write delay.
// The username must match exactly. Unknown users, wrong passwords and
// missing fields all yield ErrUnauthorized together with a "Login Failed"
// notification.
func (s *Service) Authenticate(ctx context.Context, input LoginInput) (*AuthResult, error) {
	if err := s.delay.Write(ctx); err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		s.loginFailed(ctx, input.Username, "invalid input")
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.loginFailed(ctx, input.Username, "unknown user")
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Authenticate get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		s.loginFailed(ctx, input.Username, "wrong password")
		return nil, domain.ErrUnauthorized
	}

	session := domain.SessionOf(user)
	token, err := s.jwt.GenerateAccessToken(session)
	if err != nil {
		return nil, fmt.Errorf("auth.Authenticate issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID),
		slog.String("role", user.Role.String()),
	)

	return &AuthResult{AccessToken: token, Session: session}, nil
}

func (s *Service) loginFailed(ctx context.Context, username, reason string) {
	s.log.WarnContext(ctx, "login rejected",
		slog.String("username", username),
		slog.String("reason", reason),
	)
	s.notify.Notify(ctx, notify.Failure("Login Failed", "Invalid username or password"))
}
