// Package usecase implements business logic orchestration for authentication operations.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/xapps/user-management-service/internal/auth/domain"
	userDomain "github.com/xapps/user-management-service/internal/user/domain"
)

// TokenUseCase defines the authentication gate operations.
type TokenUseCase interface {
	// Login verifies an email/password pair and issues a new bearer token.
	// Returns ErrInvalidCredentials when the pair does not match; unexpected
	// collaborator failures propagate unchanged.
	Login(ctx context.Context, input *authDomain.LoginInput) (*authDomain.LoginOutput, error)

	// Authenticate resolves a token hash to the acting principal.
	// Unknown or expired tokens yield ErrInvalidCredentials.
	Authenticate(ctx context.Context, tokenHash string) (*authDomain.Principal, error)

	// CleanupExpired removes tokens that expired more than the given number of
	// days ago. When dryRun is true it only reports how many would be removed.
	CleanupExpired(ctx context.Context, days int, dryRun bool) (int64, error)
}

// TokenRepository defines token persistence operations.
type TokenRepository interface {
	Create(ctx context.Context, token *authDomain.Token) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*authDomain.Token, error)
	DeleteExpiredBefore(ctx context.Context, before time.Time) (int64, error)
	CountExpiredBefore(ctx context.Context, before time.Time) (int64, error)
}

// UserRepository is the credential-store view of user persistence needed by the
// authentication gate.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*userDomain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*userDomain.User, error)
}
