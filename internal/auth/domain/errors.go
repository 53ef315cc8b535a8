package domain

import (
	"github.com/xapps/user-management-service/internal/errors"
)

// Authentication errors.
var (
	// ErrInvalidCredentials indicates the identifier/secret pair did not match
	// or the presented token is unknown or expired. Returned for both cases so
	// callers cannot distinguish a wrong password from a missing account.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrTokenNotFound indicates a token with the specified hash was not found.
	ErrTokenNotFound = errors.Wrap(errors.ErrNotFound, "token not found")
)
