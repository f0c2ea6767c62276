package domain

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
)

// Role represents the authorization role assigned to a profile. The
// authoritative copy lives in the identity provider's app-level metadata;
// the profiles table holds the assignment source of truth.
type Role string

const (
	RoleClient Role = "client"
	RoleAdmin  Role = "admin"
)

// DefaultRole is assigned to invited users when no role is given.
const DefaultRole = RoleClient

// ParseRole validates a raw role string. An empty string maps to DefaultRole.
func ParseRole(raw string) (Role, error) {
	if raw == "" {
		return DefaultRole, nil
	}
	role := Role(raw)
	if !role.Valid() {
		return "", fmt.Errorf("invalid role: %s", raw)
	}
	return role, nil
}

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// Profile is the relational mirror of select user attributes. The row is
// keyed by the identity provider's user id; this service never generates
// profile ids itself.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RoleAssignment is the (id, role) projection of a profile row used by the
// bulk metadata synchronization.
type RoleAssignment struct {
	UserID uuid.UUID `json:"id"`
	Role   Role      `json:"role"`
}

// ValidateEmail checks an email address for structural validity.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email format: %w", err)
	}
	return nil
}
