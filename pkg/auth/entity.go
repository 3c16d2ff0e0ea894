package auth

import (
	"time"

	"github.com/google/uuid"
)

// Role determines what a user may access beyond their own profile.
type Role string

const (
	// RoleCodev is a regular platform member; may only touch their own profile.
	RoleCodev Role = "codev"
	// RoleAdmin may read and recompute any profile.
	RoleAdmin Role = "admin"
)

// User is a domain entity representing a system user.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// IsAdmin reports whether the user holds the administrative role.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }
