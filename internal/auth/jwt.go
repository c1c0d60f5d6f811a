package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/sensorfactory/nexus/internal/domain"
)

// JWTManager issues and verifies the HS256 access tokens that carry a session.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
	revoked   *revocationList
}

// ErrTokenRevoked is returned for tokens whose session was logged out.
var ErrTokenRevoked = errors.New("token revoked")

// NewJWTManager expects a secret of at least 32 bytes; config validation
// enforces it.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
		revoked:   newRevocationList(),
	}
}

// accessClaims extends standard JWT claims with the session profile.
type accessClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
	Role     string `json:"role,omitempty"`
	Email    string `json:"email,omitempty"`
}

// GenerateAccessToken creates a signed HS256 JWT with the user ID as subject
// and the rest of the session as custom claims.
func (m *JWTManager) GenerateAccessToken(s domain.Session) (string, error) {
	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.ID,
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
		Username: s.Username,
		Name:     s.Name,
		Role:     s.Role.String(),
		Email:    s.Email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateAccessToken verifies signature, issuer and expiry of an HS256
// token and returns the session it carries.
func (m *JWTManager) ValidateAccessToken(tokenString string) (domain.Session, error) {
	if tokenString == "" {
		return domain.Session{}, errors.New("token is empty")
	}

	var claims accessClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims,
		func(*jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return domain.Session{}, fmt.Errorf("parse token: %w", err)
	}
	if claims.Subject == "" {
		return domain.Session{}, errors.New("token has no subject")
	}
	if claims.ID != "" && m.revoked.contains(claims.ID) {
		return domain.Session{}, ErrTokenRevoked
	}

	return domain.Session{
		ID:       claims.Subject,
		Username: claims.Username,
		Name:     claims.Name,
		Role:     domain.UserRole(claims.Role),
		Email:    claims.Email,

		TokenID:     claims.ID,
		TokenExpiry: claims.ExpiresAt.Time,
	}, nil
}

// Revoke rejects the token with the given id until expiry. Ids of tokens
// that already expired are ignored.
func (m *JWTManager) Revoke(tokenID string, expiry time.Time) {
	if tokenID == "" {
		return
	}
	m.revoked.add(tokenID, expiry)
}
