package domain

import "time"

// UserRole is the advisory role of a dashboard user.
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleEmployee UserRole = "employee"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// User is a dashboard account. PasswordHash is a bcrypt hash.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Name         string
	Role         UserRole
	Email        string
}

// Session is the persisted identity of a logged-in user. It never carries
// the password. TokenID and TokenExpiry are set only on sessions resolved
// from an access token and are never serialized.
type Session struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Name     string   `json:"name"`
	Role     UserRole `json:"role"`
	Email    string   `json:"email"`

	TokenID     string    `json:"-"`
	TokenExpiry time.Time `json:"-"`
}

// SessionOf projects a user into its session record.
func SessionOf(u *User) Session {
	return Session{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Role:     u.Role,
		Email:    u.Email,
	}
}

// IsAdmin reports whether the session carries the admin role.
func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }
