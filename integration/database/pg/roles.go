package pg

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RoleStore loads role-derived permission codes from the role tables.
// It satisfies permission.RoleStore.
type RoleStore struct {
	pool *pgxpool.Pool
}

// NewRoleStore creates a role store over the given pool.
func NewRoleStore(pool *pgxpool.Pool) *RoleStore {
	if pool == nil {
		panic("pg: pool is required")
	}
	return &RoleStore{pool: pool}
}

// PermissionCodesForUser returns the union of permission codes granted to
// the user through all of their roles. A user with no roles gets an empty
// set, not an error.
func (s *RoleStore) PermissionCodesForUser(ctx context.Context, userID string) ([]string, error) {
	var querier rowQuerier = s.pool
	if tx, ok := TxFromContext(ctx); ok {
		querier = tx
	}

	rows, err := querier.Query(ctx, `
		SELECT DISTINCT rp.permission_code
		FROM user_roles ur
		JOIN role_permissions rp ON rp.role_name = ur.role_name
		WHERE ur.user_id = $1
		ORDER BY rp.permission_code`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, pgx.RowTo[string])
}
