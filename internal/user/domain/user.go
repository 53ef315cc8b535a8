// Package domain defines the core user domain entities and the authorization
// rules that guard user lifecycle operations.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user account. The Password field always holds the Argon2id
// hash, never the plain text; it is excluded from every external representation.
type User struct {
	ID        uuid.UUID
	Email     string
	FirstName string
	LastName  string
	Password  string
	Roles     []Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RoleNames returns the names of the user's roles.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, role := range u.Roles {
		names = append(names, role.Name)
	}
	return names
}
