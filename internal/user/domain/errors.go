package domain

import (
	"github.com/xapps/user-management-service/internal/errors"
)

// Domain-specific errors for user operations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists indicates a user with the same email already exists.
	ErrUserAlreadyExists = errors.Wrap(errors.ErrConflict, "user already exists")

	// ErrRoleNotFound indicates a requested role is not part of the catalog.
	ErrRoleNotFound = errors.Wrap(errors.ErrInvalidInput, "role not found")
)
