package auth

import "github.com/sensorfactory/nexus/internal/domain"

// AuthResult is returned by a successful login.
type AuthResult struct {
	AccessToken string
	Session     domain.Session
}
