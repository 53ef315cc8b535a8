// Package repository provides data persistence implementations for user
// accounts and the role catalog, supporting PostgreSQL and MySQL.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/xapps/user-management-service/internal/database"
	apperrors "github.com/xapps/user-management-service/internal/errors"
	userDomain "github.com/xapps/user-management-service/internal/user/domain"
)

// PostgreSQLUserRepository implements user persistence for PostgreSQL.
type PostgreSQLUserRepository struct {
	db *sql.DB
}

// NewPostgreSQLUserRepository creates a new PostgreSQL user repository instance.
func NewPostgreSQLUserRepository(db *sql.DB) *PostgreSQLUserRepository {
	return &PostgreSQLUserRepository{db: db}
}

// Create inserts a new user and its role assignments. Callers run this inside
// a transaction so the user row and the role links commit together.
func (r *PostgreSQLUserRepository) Create(ctx context.Context, user *userDomain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO users (id, email, first_name, last_name, password, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := querier.ExecContext(
		ctx,
		query,
		user.ID,
		user.Email,
		user.FirstName,
		user.LastName,
		user.Password,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return userDomain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create user")
	}

	return r.insertRoleLinks(ctx, querier, user)
}

// GetByID retrieves a user and its roles by ID.
func (r *PostgreSQLUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*userDomain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, email, first_name, last_name, password, created_at, updated_at
			  FROM users WHERE id = $1`

	var user userDomain.User
	err := querier.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.Password,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, userDomain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by id")
	}

	if err := r.loadRoles(ctx, querier, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByEmail retrieves a user and its roles by email.
func (r *PostgreSQLUserRepository) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, email, first_name, last_name, password, created_at, updated_at
			  FROM users WHERE email = $1`

	var user userDomain.User
	err := querier.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.Password,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, userDomain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by email")
	}

	if err := r.loadRoles(ctx, querier, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// List retrieves users ordered by creation time with pagination.
func (r *PostgreSQLUserRepository) List(ctx context.Context, offset, limit int) ([]*userDomain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, email, first_name, last_name, password, created_at, updated_at
			  FROM users
			  ORDER BY created_at ASC
			  OFFSET $1 LIMIT $2`

	rows, err := querier.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list users")
	}
	defer rows.Close()

	users := make([]*userDomain.User, 0)
	for rows.Next() {
		var user userDomain.User
		err := rows.Scan(
			&user.ID,
			&user.Email,
			&user.FirstName,
			&user.LastName,
			&user.Password,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan user")
		}
		users = append(users, &user)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate users")
	}

	for _, user := range users {
		if err := r.loadRoles(ctx, querier, user); err != nil {
			return nil, err
		}
	}

	return users, nil
}

// Update modifies an existing user and replaces its role assignments. Callers
// run this inside a transaction so both writes commit together.
func (r *PostgreSQLUserRepository) Update(ctx context.Context, user *userDomain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE users
			  SET email = $1,
			      first_name = $2,
			      last_name = $3,
			      password = $4,
			      updated_at = $5
			  WHERE id = $6`

	result, err := querier.ExecContext(
		ctx,
		query,
		user.Email,
		user.FirstName,
		user.LastName,
		user.Password,
		user.UpdatedAt,
		user.ID,
	)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return userDomain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to update user")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return userDomain.ErrUserNotFound
	}

	deleteQuery := `DELETE FROM user_roles WHERE user_id = $1`
	if _, err := querier.ExecContext(ctx, deleteQuery, user.ID); err != nil {
		return apperrors.Wrap(err, "failed to clear user roles")
	}

	return r.insertRoleLinks(ctx, querier, user)
}

// Delete removes a user. Role links and issued tokens are removed by foreign
// key cascade.
func (r *PostgreSQLUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM users WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete user")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return userDomain.ErrUserNotFound
	}

	return nil
}

// insertRoleLinks writes one user_roles row per assigned role.
func (r *PostgreSQLUserRepository) insertRoleLinks(
	ctx context.Context,
	querier database.Querier,
	user *userDomain.User,
) error {
	query := `INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2)`

	for _, role := range user.Roles {
		if _, err := querier.ExecContext(ctx, query, user.ID, role.ID); err != nil {
			return apperrors.Wrap(err, "failed to assign role")
		}
	}
	return nil
}

// loadRoles populates user.Roles from the user_roles join table.
func (r *PostgreSQLUserRepository) loadRoles(
	ctx context.Context,
	querier database.Querier,
	user *userDomain.User,
) error {
	query := `SELECT r.id, r.name
			  FROM roles r
			  INNER JOIN user_roles ur ON ur.role_id = r.id
			  WHERE ur.user_id = $1
			  ORDER BY r.name ASC`

	rows, err := querier.QueryContext(ctx, query, user.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to load user roles")
	}
	defer rows.Close()

	roles := make([]userDomain.Role, 0)
	for rows.Next() {
		var role userDomain.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return apperrors.Wrap(err, "failed to scan role")
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return apperrors.Wrap(err, "failed to iterate roles")
	}

	user.Roles = roles
	return nil
}

// isPostgreSQLUniqueViolation checks if the error is a PostgreSQL unique constraint violation
func isPostgreSQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// PostgreSQL: "duplicate key value violates unique constraint" or "pq: duplicate key"
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}
