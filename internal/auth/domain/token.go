package domain

import (
	"time"

	"github.com/google/uuid"
)

// Token represents a persisted authentication token. Only the SHA-256 hash of
// the bearer value is stored; the plain value is returned once at login.
type Token struct {
	ID        uuid.UUID
	TokenHash string
	UserID    uuid.UUID
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the token expired relative to now.
func (t *Token) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}

// LoginInput contains the credentials submitted to the login operation.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput contains the result of a successful login.
// The plain token is only returned once and must be transmitted securely.
type LoginOutput struct {
	PlainToken string
	ExpiresAt  time.Time
	Principal  *Principal
}
