// Package usecase implements business logic orchestration for user lifecycle
// operations. Every operation receives the acting principal explicitly and
// authorizes before touching storage.
package usecase

import (
	"context"

	"github.com/google/uuid"

	authDomain "github.com/xapps/user-management-service/internal/auth/domain"
	userDomain "github.com/xapps/user-management-service/internal/user/domain"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *userDomain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*userDomain.User, error)
	GetByEmail(ctx context.Context, email string) (*userDomain.User, error)
	List(ctx context.Context, offset, limit int) ([]*userDomain.User, error)
	Update(ctx context.Context, user *userDomain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// RoleRepository defines the interface for role catalog persistence operations.
type RoleRepository interface {
	List(ctx context.Context) ([]*userDomain.Role, error)
	GetByNames(ctx context.Context, names []string) ([]*userDomain.Role, error)
}

// UserUseCase defines the interface for user lifecycle business logic.
//
// The principal argument is the authenticated caller, or nil for anonymous
// requests. Denials surface as ErrUnauthorized (no identity presented) or
// ErrForbidden (identity lacks role or ownership).
type UserUseCase interface {
	Create(ctx context.Context, principal *authDomain.Principal, input *userDomain.CreateUserInput) (*userDomain.User, error)
	Get(ctx context.Context, principal *authDomain.Principal, id uuid.UUID) (*userDomain.User, error)
	List(ctx context.Context, principal *authDomain.Principal, offset, limit int) ([]*userDomain.User, error)
	Update(ctx context.Context, principal *authDomain.Principal, id uuid.UUID, input *userDomain.UpdateUserInput) (*userDomain.User, error)
	Delete(ctx context.Context, principal *authDomain.Principal, id uuid.UUID) error
	ListRoles(ctx context.Context) ([]*userDomain.Role, error)
}
