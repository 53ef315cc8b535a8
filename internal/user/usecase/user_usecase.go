package usecase

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/xapps/user-management-service/internal/auth/domain"
	authService "github.com/xapps/user-management-service/internal/auth/service"
	"github.com/xapps/user-management-service/internal/database"
	userDomain "github.com/xapps/user-management-service/internal/user/domain"
	"github.com/xapps/user-management-service/internal/validation"
)

// userUseCase implements UserUseCase for managing user accounts.
type userUseCase struct {
	txManager     database.TxManager
	userRepo      UserRepository
	roleRepo      RoleRepository
	secretService authService.SecretService
}

// Create registers a new user account.
//
// Anonymous signup is allowed; the only restriction is role escalation, which
// is checked before any storage access. When no roles are requested the
// default role is assigned. Duplicate emails surface as ErrUserAlreadyExists
// regardless of whether the caller is an administrator.
func (u *userUseCase) Create(
	ctx context.Context,
	principal *authDomain.Principal,
	input *userDomain.CreateUserInput,
) (*userDomain.User, error) {
	if err := validation.WrapValidationError(input.Validate()); err != nil {
		return nil, err
	}

	if err := userDomain.CanCreateUser(principal, input.Roles); err != nil {
		return nil, err
	}

	roleNames := input.Roles
	if len(roleNames) == 0 {
		roleNames = []string{userDomain.RoleUser}
	}
	roles, err := u.resolveRoles(ctx, roleNames)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := u.secretService.HashSecret(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &userDomain.User{
		ID:        uuid.Must(uuid.NewV7()),
		Email:     normalizeEmail(input.Email),
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Password:  hashedPassword,
		Roles:     roles,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = u.txManager.WithTx(ctx, func(txCtx context.Context) error {
		return u.userRepo.Create(txCtx, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Get retrieves a single user record for administrators or the record's owner.
func (u *userUseCase) Get(
	ctx context.Context,
	principal *authDomain.Principal,
	id uuid.UUID,
) (*userDomain.User, error) {
	if err := userDomain.CanViewUser(principal, id); err != nil {
		return nil, err
	}
	return u.userRepo.GetByID(ctx, id)
}

// List retrieves users ordered by creation with pagination, administrators only.
func (u *userUseCase) List(
	ctx context.Context,
	principal *authDomain.Principal,
	offset, limit int,
) ([]*userDomain.User, error) {
	if err := userDomain.CanListUsers(principal); err != nil {
		return nil, err
	}
	return u.userRepo.List(ctx, offset, limit)
}

// Update replaces the mutable fields of a user record.
//
// The admin-or-owner rule and the escalation rule are both enforced, so an
// owner editing their own record still cannot self-assign Administrator.
// Authorization is decided before the target is fetched; a caller without
// access to the record learns nothing about its existence.
func (u *userUseCase) Update(
	ctx context.Context,
	principal *authDomain.Principal,
	id uuid.UUID,
	input *userDomain.UpdateUserInput,
) (*userDomain.User, error) {
	if err := validation.WrapValidationError(input.Validate()); err != nil {
		return nil, err
	}

	if err := userDomain.CanEditUser(principal, id, input.Roles); err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Email = normalizeEmail(input.Email)
	user.FirstName = strings.TrimSpace(input.FirstName)
	user.LastName = strings.TrimSpace(input.LastName)

	if input.Password != "" {
		hashedPassword, err := u.secretService.HashSecret(input.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashedPassword
	}

	if len(input.Roles) > 0 {
		roles, err := u.resolveRoles(ctx, input.Roles)
		if err != nil {
			return nil, err
		}
		user.Roles = roles
	}

	user.UpdatedAt = time.Now().UTC()

	err = u.txManager.WithTx(ctx, func(txCtx context.Context) error {
		return u.userRepo.Update(txCtx, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Delete removes a user record for administrators or the record's owner.
func (u *userUseCase) Delete(ctx context.Context, principal *authDomain.Principal, id uuid.UUID) error {
	if err := userDomain.CanDeleteUser(principal, id); err != nil {
		return err
	}
	return u.userRepo.Delete(ctx, id)
}

// ListRoles returns the role catalog. The catalog is public read-only data.
func (u *userUseCase) ListRoles(ctx context.Context) ([]*userDomain.Role, error) {
	return u.roleRepo.List(ctx)
}

// resolveRoles maps role names to catalog entries, failing with
// ErrRoleNotFound when any requested name is unknown.
func (u *userUseCase) resolveRoles(ctx context.Context, names []string) ([]userDomain.Role, error) {
	unique := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if !slices.Contains(unique, name) {
			unique = append(unique, name)
		}
	}

	found, err := u.roleRepo.GetByNames(ctx, unique)
	if err != nil {
		return nil, err
	}
	if len(found) != len(unique) {
		return nil, userDomain.ErrRoleNotFound
	}

	roles := make([]userDomain.Role, 0, len(found))
	for _, role := range found {
		roles = append(roles, *role)
	}
	return roles, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewUserUseCase creates a new user use case instance with the provided dependencies.
func NewUserUseCase(
	txManager database.TxManager,
	userRepo UserRepository,
	roleRepo RoleRepository,
	secretService authService.SecretService,
) UserUseCase {
	return &userUseCase{
		txManager:     txManager,
		userRepo:      userRepo,
		roleRepo:      roleRepo,
		secretService: secretService,
	}
}
