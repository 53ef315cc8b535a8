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

// MySQLUserRepository implements user persistence for MySQL.
// UUIDs are stored as BINARY(16).
type MySQLUserRepository struct {
	db *sql.DB
}

// NewMySQLUserRepository creates a new MySQL user repository instance.
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db: db}
}

// Create inserts a new user and its role assignments. Callers run this inside
// a transaction so the user row and the role links commit together.
func (r *MySQLUserRepository) Create(ctx context.Context, user *userDomain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO users (id, email, first_name, last_name, password, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	id, err := user.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		user.Email,
		user.FirstName,
		user.LastName,
		user.Password,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return userDomain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create user")
	}

	return r.insertRoleLinks(ctx, querier, user)
}

// GetByID retrieves a user and its roles by ID.
func (r *MySQLUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*userDomain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, email, first_name, last_name, password, created_at, updated_at
			  FROM users WHERE id = ?`

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal user id")
	}

	user, err := r.scanUser(querier.QueryRowContext(ctx, query, idBytes))
	if err != nil {
		return nil, err
	}

	if err := r.loadRoles(ctx, querier, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetByEmail retrieves a user and its roles by email.
func (r *MySQLUserRepository) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, email, first_name, last_name, password, created_at, updated_at
			  FROM users WHERE email = ?`

	user, err := r.scanUser(querier.QueryRowContext(ctx, query, email))
	if err != nil {
		return nil, err
	}

	if err := r.loadRoles(ctx, querier, user); err != nil {
		return nil, err
	}

	return user, nil
}

// List retrieves users ordered by creation time with pagination.
func (r *MySQLUserRepository) List(ctx context.Context, offset, limit int) ([]*userDomain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, email, first_name, last_name, password, created_at, updated_at
			  FROM users
			  ORDER BY created_at ASC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list users")
	}
	defer rows.Close()

	users := make([]*userDomain.User, 0)
	for rows.Next() {
		var user userDomain.User
		var idBytes []byte
		err := rows.Scan(
			&idBytes,
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
		if err := user.ID.UnmarshalBinary(idBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal user id")
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
func (r *MySQLUserRepository) Update(ctx context.Context, user *userDomain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE users
			  SET email = ?,
			      first_name = ?,
			      last_name = ?,
			      password = ?,
			      updated_at = ?
			  WHERE id = ?`

	id, err := user.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	result, err := querier.ExecContext(
		ctx,
		query,
		user.Email,
		user.FirstName,
		user.LastName,
		user.Password,
		user.UpdatedAt,
		id,
	)
	if err != nil {
		if isMySQLUniqueViolation(err) {
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

	deleteQuery := `DELETE FROM user_roles WHERE user_id = ?`
	if _, err := querier.ExecContext(ctx, deleteQuery, id); err != nil {
		return apperrors.Wrap(err, "failed to clear user roles")
	}

	return r.insertRoleLinks(ctx, querier, user)
}

// Delete removes a user. Role links and issued tokens are removed by foreign
// key cascade.
func (r *MySQLUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM users WHERE id = ?`

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	result, err := querier.ExecContext(ctx, query, idBytes)
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

// scanUser scans a single user row, mapping sql.ErrNoRows to ErrUserNotFound.
func (r *MySQLUserRepository) scanUser(row *sql.Row) (*userDomain.User, error) {
	var user userDomain.User
	var idBytes []byte

	err := row.Scan(
		&idBytes,
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
		return nil, apperrors.Wrap(err, "failed to get user")
	}

	if err := user.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal user id")
	}

	return &user, nil
}

// insertRoleLinks writes one user_roles row per assigned role.
func (r *MySQLUserRepository) insertRoleLinks(
	ctx context.Context,
	querier database.Querier,
	user *userDomain.User,
) error {
	query := `INSERT INTO user_roles (user_id, role_id) VALUES (?, ?)`

	userID, err := user.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	for _, role := range user.Roles {
		roleID, err := role.ID.MarshalBinary()
		if err != nil {
			return apperrors.Wrap(err, "failed to marshal role id")
		}
		if _, err := querier.ExecContext(ctx, query, userID, roleID); err != nil {
			return apperrors.Wrap(err, "failed to assign role")
		}
	}
	return nil
}

// loadRoles populates user.Roles from the user_roles join table.
func (r *MySQLUserRepository) loadRoles(
	ctx context.Context,
	querier database.Querier,
	user *userDomain.User,
) error {
	query := `SELECT r.id, r.name
			  FROM roles r
			  INNER JOIN user_roles ur ON ur.role_id = r.id
			  WHERE ur.user_id = ?
			  ORDER BY r.name ASC`

	userID, err := user.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	rows, err := querier.QueryContext(ctx, query, userID)
	if err != nil {
		return apperrors.Wrap(err, "failed to load user roles")
	}
	defer rows.Close()

	roles := make([]userDomain.Role, 0)
	for rows.Next() {
		var role userDomain.Role
		var roleIDBytes []byte
		if err := rows.Scan(&roleIDBytes, &role.Name); err != nil {
			return apperrors.Wrap(err, "failed to scan role")
		}
		if err := role.ID.UnmarshalBinary(roleIDBytes); err != nil {
			return apperrors.Wrap(err, "failed to unmarshal role id")
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return apperrors.Wrap(err, "failed to iterate roles")
	}

	user.Roles = roles
	return nil
}

// isMySQLUniqueViolation checks if the error is a MySQL unique constraint violation
func isMySQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// MySQL: "Error 1062: Duplicate entry"
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "1062")
}
