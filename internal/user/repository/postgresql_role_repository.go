package repository

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"github.com/xapps/user-management-service/internal/database"
	apperrors "github.com/xapps/user-management-service/internal/errors"
	userDomain "github.com/xapps/user-management-service/internal/user/domain"
)

// PostgreSQLRoleRepository implements role catalog persistence for PostgreSQL.
// The catalog is seeded by migrations and read-only at runtime.
type PostgreSQLRoleRepository struct {
	db *sql.DB
}

// NewPostgreSQLRoleRepository creates a new PostgreSQL role repository instance.
func NewPostgreSQLRoleRepository(db *sql.DB) *PostgreSQLRoleRepository {
	return &PostgreSQLRoleRepository{db: db}
}

// List retrieves all roles ordered by name.
func (r *PostgreSQLRoleRepository) List(ctx context.Context) ([]*userDomain.Role, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name FROM roles ORDER BY name ASC`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list roles")
	}
	defer rows.Close()

	return scanRoles(rows)
}

// GetByNames retrieves the roles matching the given names. Unknown names are
// simply absent from the result; callers compare lengths to detect them.
func (r *PostgreSQLRoleRepository) GetByNames(ctx context.Context, names []string) ([]*userDomain.Role, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name FROM roles WHERE name = ANY($1) ORDER BY name ASC`

	rows, err := querier.QueryContext(ctx, query, pq.Array(names))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to get roles by names")
	}
	defer rows.Close()

	return scanRoles(rows)
}

// scanRoles scans role rows shared by the PostgreSQL repository methods.
func scanRoles(rows *sql.Rows) ([]*userDomain.Role, error) {
	roles := make([]*userDomain.Role, 0)
	for rows.Next() {
		var role userDomain.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan role")
		}
		roles = append(roles, &role)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate roles")
	}
	return roles, nil
}
