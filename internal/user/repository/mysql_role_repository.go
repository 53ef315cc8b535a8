package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/xapps/user-management-service/internal/database"
	apperrors "github.com/xapps/user-management-service/internal/errors"
	userDomain "github.com/xapps/user-management-service/internal/user/domain"
)

// MySQLRoleRepository implements role catalog persistence for MySQL.
// The catalog is seeded by migrations and read-only at runtime.
type MySQLRoleRepository struct {
	db *sql.DB
}

// NewMySQLRoleRepository creates a new MySQL role repository instance.
func NewMySQLRoleRepository(db *sql.DB) *MySQLRoleRepository {
	return &MySQLRoleRepository{db: db}
}

// List retrieves all roles ordered by name.
func (r *MySQLRoleRepository) List(ctx context.Context) ([]*userDomain.Role, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name FROM roles ORDER BY name ASC`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list roles")
	}
	defer rows.Close()

	return scanMySQLRoles(rows)
}

// GetByNames retrieves the roles matching the given names. Unknown names are
// simply absent from the result; callers compare lengths to detect them.
func (r *MySQLRoleRepository) GetByNames(ctx context.Context, names []string) ([]*userDomain.Role, error) {
	if len(names) == 0 {
		return []*userDomain.Role{}, nil
	}

	querier := database.GetTx(ctx, r.db)

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(names)), ", ")
	query := `SELECT id, name FROM roles WHERE name IN (` + placeholders + `) ORDER BY name ASC`

	args := make([]any, 0, len(names))
	for _, name := range names {
		args = append(args, name)
	}

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to get roles by names")
	}
	defer rows.Close()

	return scanMySQLRoles(rows)
}

// scanMySQLRoles scans role rows with BINARY(16) identifiers.
func scanMySQLRoles(rows *sql.Rows) ([]*userDomain.Role, error) {
	roles := make([]*userDomain.Role, 0)
	for rows.Next() {
		var role userDomain.Role
		var idBytes []byte
		if err := rows.Scan(&idBytes, &role.Name); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan role")
		}
		if err := role.ID.UnmarshalBinary(idBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal role id")
		}
		roles = append(roles, &role)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate roles")
	}
	return roles, nil
}
