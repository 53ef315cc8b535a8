// Package domain defines authentication domain models.
//
// Authentication produces a Principal: the identity attributed to the caller of
// an operation. Anonymous callers are represented by a nil *Principal, and every
// guard operation receives the principal as an explicit argument rather than
// reading it from ambient request state.
package domain

import (
	"slices"

	"github.com/google/uuid"
)

// Principal is the acting identity for a request, derived from a validated
// bearer token. It is ephemeral and never persisted.
type Principal struct {
	ID    uuid.UUID
	Email string
	Roles []string
}

// HasRole reports whether the principal holds the named role.
// Safe to call on a nil principal (anonymous), which holds no roles.
func (p *Principal) HasRole(name string) bool {
	if p == nil {
		return false
	}
	return slices.Contains(p.Roles, name)
}

// IsAnonymous reports whether there is no authenticated identity.
func (p *Principal) IsAnonymous() bool {
	return p == nil
}
