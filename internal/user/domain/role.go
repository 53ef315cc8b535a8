package domain

import (
	"github.com/google/uuid"
)

// Role names from the fixed catalog seeded by migrations.
// Role definitions are read-only reference data; the service never creates or
// removes them at runtime.
const (
	// RoleAdministrator grants access to every user record and to role assignment.
	RoleAdministrator = "Administrator"

	// RoleUser is the default role assigned to new accounts.
	RoleUser = "User"
)

// Role is a named capability tag, many-to-many with User.
type Role struct {
	ID   uuid.UUID
	Name string
}

// ContainsAdministrator reports whether the Administrator role appears in the
// given role names.
func ContainsAdministrator(roleNames []string) bool {
	for _, name := range roleNames {
		if name == RoleAdministrator {
			return true
		}
	}
	return false
}
