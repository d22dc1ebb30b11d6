package pg

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minhhieuit/PermissionAccessControl/core/enrich"
)

// TenantDirectory resolves user-to-tenant links from the tenant_users table.
// It satisfies enrich.TenantDirectory.
type TenantDirectory struct {
	pool *pgxpool.Pool
}

// NewTenantDirectory creates a directory over the given pool. The pool's
// lifecycle is managed by the caller.
func NewTenantDirectory(pool *pgxpool.Pool) *TenantDirectory {
	if pool == nil {
		panic("pg: pool is required")
	}
	return &TenantDirectory{pool: pool}
}

// LookupTenantByUserID returns the tenant key the user is linked to.
// The query is deliberately unscoped: it searches across all tenants,
// because the caller's tenant is exactly what is not yet known.
// A user with no link yields enrich.ErrTenantNotFound.
func (d *TenantDirectory) LookupTenantByUserID(ctx context.Context, userID string) (string, error) {
	var tenantKey string
	err := d.querier(ctx).
		QueryRow(ctx, `SELECT tenant_key FROM tenant_users WHERE user_id = $1`, userID).
		Scan(&tenantKey)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", enrich.ErrTenantNotFound
		}
		return "", err
	}

	return tenantKey, nil
}

// querier returns the ambient transaction when one is carried by the
// context, otherwise the shared pool.
func (d *TenantDirectory) querier(ctx context.Context) rowQuerier {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}
	return d.pool
}

// rowQuerier is the subset of pgx querying shared by pool and transaction.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}
