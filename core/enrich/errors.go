package enrich

import "errors"

var (
	// ErrMissingIdentityClaim is returned when the principal carries no
	// name-identifier claim. This indicates a malformed or forged credential;
	// the pass aborts without replacing or renewing anything.
	ErrMissingIdentityClaim = errors.New("principal has no name identifier claim")

	// ErrUnlinkedUser is returned when the user exists in the identity system
	// but has no tenant affiliation. This is a data integrity error, not a
	// retryable condition.
	ErrUnlinkedUser = errors.New("user is not linked to a tenant")

	// ErrPermissionCalculation is returned when the permission calculator
	// fails. No partial claim set is committed.
	ErrPermissionCalculation = errors.New("permission calculation failed")

	// ErrTenantNotFound is returned by TenantDirectory implementations when
	// no tenant record exists for the user. The enricher translates it into
	// ErrUnlinkedUser with diagnostic context.
	ErrTenantNotFound = errors.New("tenant record not found")

	// ErrTenantLookup is returned when the tenant directory fails for reasons
	// other than a missing record (connectivity, timeouts).
	ErrTenantLookup = errors.New("tenant lookup failed")
)
