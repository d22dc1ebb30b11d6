package enrich

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/minhhieuit/PermissionAccessControl/core/claims"
	"github.com/minhhieuit/PermissionAccessControl/core/logger"
)

// TenantDirectory resolves a user's tenant affiliation. Implementations must
// search across all tenants: the caller's own tenant is not yet known at
// lookup time, so any tenant-scoped filtering has to be bypassed.
//
// A user without a tenant record yields ErrTenantNotFound.
type TenantDirectory interface {
	LookupTenantByUserID(ctx context.Context, userID string) (string, error)
}

// PermissionCalculator computes the packed permission set for the user the
// claim set belongs to. The returned string is an opaque encoding; the
// enricher stores it verbatim as a single claim value.
//
// The calculator receives the claim set as it was before enrichment, without
// the tenant-key claim.
type PermissionCalculator interface {
	CalcPermissionsForUser(ctx context.Context, p claims.Principal) (string, error)
}

// Outcome is the result of one enrichment pass.
//
// When Replaced is false the principal was already enriched and Principal
// echoes the input unchanged; the credential must not be renewed. When
// Replaced is true, Principal is the replacement identity and the caller must
// renew the backing credential so the new claims persist — without the
// renewal the pass would repeat on every request.
type Outcome struct {
	Principal claims.Principal
	Replaced  bool
}

// Enricher guarantees that every active session, after at most one pass,
// carries a tenant-key claim and a packed-permissions claim.
//
// Enricher is safe for concurrent use: it holds no per-session state, and
// concurrent passes for the same not-yet-renewed session at worst duplicate
// work and produce equivalent replacements (last write wins).
type Enricher struct {
	directory  TenantDirectory
	calculator PermissionCalculator
	logger     *slog.Logger
}

// Option configures the enricher.
type Option func(*Enricher)

// WithLogger sets the structured logger. Default discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Enricher) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an enricher over the given tenant directory and permission
// calculator. Both collaborators are required.
func New(directory TenantDirectory, calculator PermissionCalculator, opts ...Option) *Enricher {
	if directory == nil {
		panic("enrich: tenant directory is required")
	}
	if calculator == nil {
		panic("enrich: permission calculator is required")
	}

	e := &Enricher{
		directory:  directory,
		calculator: calculator,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Enrich inspects the current principal and, if it lacks a tenant-key claim,
// resolves the tenant, computes permissions, and returns a replacement
// principal with Replaced set. An already enriched principal is returned
// unchanged with Replaced unset, making Enrich a fixed point under
// re-application.
//
// On any error the input principal is left untouched and nothing must be
// renewed; the caller is expected to reject the session.
func (e *Enricher) Enrich(ctx context.Context, current claims.Principal) (Outcome, error) {
	if current.HasClaim(claims.TypeTenantKey) {
		return Outcome{Principal: current}, nil
	}

	userID, ok := current.ClaimValue(claims.TypeNameIdentifier)
	if !ok {
		return Outcome{}, ErrMissingIdentityClaim
	}

	tenantKey, err := e.directory.LookupTenantByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrTenantNotFound) {
			return Outcome{}, fmt.Errorf("%w: user %q", ErrUnlinkedUser, displayName(current, userID))
		}
		return Outcome{}, errors.Join(ErrTenantLookup, err)
	}

	// Permissions are computed from the claim set as issued, before the
	// tenant-key claim is attached.
	packed, err := e.calculator.CalcPermissionsForUser(ctx, current)
	if err != nil {
		return Outcome{}, errors.Join(ErrPermissionCalculation, err)
	}

	next := current.WithClaims(
		claims.Claim{Type: claims.TypeTenantKey, Value: tenantKey},
		claims.Claim{Type: claims.TypePackedPermissions, Value: packed},
	)

	e.logger.LogAttrs(ctx, slog.LevelDebug, "session principal enriched",
		logger.UserID(userID),
		logger.TenantKey(tenantKey),
	)

	return Outcome{Principal: next, Replaced: true}, nil
}

// displayName returns the claim-set display name for diagnostics, falling
// back to the user identifier.
func displayName(p claims.Principal, userID string) string {
	if name, ok := p.ClaimValue(claims.TypeName); ok {
		return name
	}
	return userID
}
