// Package http provides HTTP handlers and middleware for authentication.
package http

import (
	"context"

	authDomain "github.com/xapps/user-management-service/internal/auth/domain"
)

// principalKey is a context key type for storing the acting principal.
type principalKey struct{}

// WithPrincipal stores the authenticated principal in the context.
// Called by the authentication middleware after successful token validation.
func WithPrincipal(ctx context.Context, principal *authDomain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

// GetPrincipal retrieves the acting principal from the context.
// Returns nil for anonymous requests; handlers pass the result to the guard
// use case as an explicit argument.
func GetPrincipal(ctx context.Context) *authDomain.Principal {
	principal, _ := ctx.Value(principalKey{}).(*authDomain.Principal)
	return principal
}
