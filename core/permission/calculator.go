package permission

import (
	"context"
	"encoding/base64"
	"fmt"
	"slices"
	"strings"

	"github.com/minhhieuit/PermissionAccessControl/core/claims"
	"github.com/minhhieuit/PermissionAccessControl/core/enrich"
)

// RoleStore supplies the permission codes a user holds through their role
// assignments. Implementations must return the union across all of the
// user's roles; ordering and duplicates are handled by the calculator.
type RoleStore interface {
	PermissionCodesForUser(ctx context.Context, userID string) ([]string, error)
}

// Calculator computes a packed permission string from role data.
// It satisfies enrich.PermissionCalculator.
type Calculator struct {
	store RoleStore
}

// NewCalculator creates a calculator over the given role store.
func NewCalculator(store RoleStore) *Calculator {
	if store == nil {
		panic("permission: role store is required")
	}
	return &Calculator{store: store}
}

// CalcPermissionsForUser extracts the user identifier from the claim set,
// loads the role-derived permission codes, and packs them into one opaque
// string. A user with no permissions packs to the empty string.
func (c *Calculator) CalcPermissionsForUser(ctx context.Context, p claims.Principal) (string, error) {
	userID, ok := p.ClaimValue(claims.TypeNameIdentifier)
	if !ok {
		return "", enrich.ErrMissingIdentityClaim
	}

	codes, err := c.store.PermissionCodesForUser(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("load permission codes for user %s: %w", userID, err)
	}

	return Pack(codes), nil
}

// Pack encodes a set of permission codes into a single opaque string.
// The result is deterministic for a given set: codes are deduplicated and
// sorted before encoding, so two equal grants always pack identically.
// Consumers treat the value as opaque and compare it only for equality.
func Pack(codes []string) string {
	if len(codes) == 0 {
		return ""
	}

	set := slices.Clone(codes)
	slices.Sort(set)
	set = slices.Compact(set)

	return base64.RawURLEncoding.EncodeToString([]byte(strings.Join(set, "\x00")))
}
