// Package entities contains core business entities.
package entities

import (
	"fmt"
	"time"
)

// UserRole enumerates user roles.
type UserRole string

const (
	// RoleManager owns teams and projects.
	RoleManager UserRole = "MANAGER"
	// RoleDeveloper works on assigned tasks.
	RoleDeveloper UserRole = "DEVELOPER"
)

// DefaultMaxCapacityPoints is the capacity assigned at registration.
const DefaultMaxCapacityPoints = 40

// ParseUserRole validates a role string.
func ParseUserRole(s string) (UserRole, error) {
	switch UserRole(s) {
	case RoleManager, RoleDeveloper:
		return UserRole(s), nil
	default:
		return "", fmt.Errorf("%w: unknown role %q", ErrInvalidArgument, s)
	}
}

// User is a domain representation of a registered account.
type User struct {
	ID                    string
	Email                 string
	FirstName             string
	LastName              string
	Role                  UserRole
	Skills                []string
	CurrentWorkloadPoints int
	MaxCapacityPoints     int
	CreatedAt             *time.Time
}

// Principal is the authenticated identity bound to a request by the
// identity collaborator. The core never checks credentials.
type Principal struct {
	UserID string
	Role   UserRole
}
