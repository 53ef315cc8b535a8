package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/xapps/user-management-service/internal/auth/domain"
	"github.com/xapps/user-management-service/internal/metrics"
	userDomain "github.com/xapps/user-management-service/internal/user/domain"
)

// userUseCaseWithMetrics decorates UserUseCase with metrics instrumentation.
type userUseCaseWithMetrics struct {
	next    UserUseCase
	metrics metrics.BusinessMetrics
}

// NewUserUseCaseWithMetrics wraps a UserUseCase with metrics recording.
func NewUserUseCaseWithMetrics(useCase UserUseCase, m metrics.BusinessMetrics) UserUseCase {
	return &userUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (u *userUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "user", operation, status)
	u.metrics.RecordDuration(ctx, "user", operation, time.Since(start), status)
}

// Create records metrics for user registration operations.
func (u *userUseCaseWithMetrics) Create(
	ctx context.Context,
	principal *authDomain.Principal,
	input *userDomain.CreateUserInput,
) (*userDomain.User, error) {
	start := time.Now()
	user, err := u.next.Create(ctx, principal, input)
	u.record(ctx, "user_create", start, err)
	return user, err
}

// Get records metrics for user retrieval operations.
func (u *userUseCaseWithMetrics) Get(
	ctx context.Context,
	principal *authDomain.Principal,
	id uuid.UUID,
) (*userDomain.User, error) {
	start := time.Now()
	user, err := u.next.Get(ctx, principal, id)
	u.record(ctx, "user_get", start, err)
	return user, err
}

// List records metrics for user listing operations.
func (u *userUseCaseWithMetrics) List(
	ctx context.Context,
	principal *authDomain.Principal,
	offset, limit int,
) ([]*userDomain.User, error) {
	start := time.Now()
	users, err := u.next.List(ctx, principal, offset, limit)
	u.record(ctx, "user_list", start, err)
	return users, err
}

// Update records metrics for user edit operations.
func (u *userUseCaseWithMetrics) Update(
	ctx context.Context,
	principal *authDomain.Principal,
	id uuid.UUID,
	input *userDomain.UpdateUserInput,
) (*userDomain.User, error) {
	start := time.Now()
	user, err := u.next.Update(ctx, principal, id, input)
	u.record(ctx, "user_update", start, err)
	return user, err
}

// Delete records metrics for user deletion operations.
func (u *userUseCaseWithMetrics) Delete(
	ctx context.Context,
	principal *authDomain.Principal,
	id uuid.UUID,
) error {
	start := time.Now()
	err := u.next.Delete(ctx, principal, id)
	u.record(ctx, "user_delete", start, err)
	return err
}

// ListRoles records metrics for role catalog listing operations.
func (u *userUseCaseWithMetrics) ListRoles(ctx context.Context) ([]*userDomain.Role, error) {
	start := time.Now()
	roles, err := u.next.ListRoles(ctx)
	u.record(ctx, "role_list", start, err)
	return roles, err
}
