package enrich_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/minhhieuit/PermissionAccessControl/core/claims"
	"github.com/minhhieuit/PermissionAccessControl/core/enrich"
)

// mockDirectory implements enrich.TenantDirectory for testing
type mockDirectory struct {
	mock.Mock
}

func (m *mockDirectory) LookupTenantByUserID(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

// mockCalculator implements enrich.PermissionCalculator for testing
type mockCalculator struct {
	mock.Mock
}

func (m *mockCalculator) CalcPermissionsForUser(ctx context.Context, p claims.Principal) (string, error) {
	args := m.Called(ctx, p)
	return args.String(0), args.Error(1)
}

// Helper functions

func freshPrincipal(t *testing.T) claims.Principal {
	t.Helper()
	p, err := claims.NewPrincipal(claims.SchemeCookie,
		claims.Claim{Type: claims.TypeNameIdentifier, Value: "u1"},
		claims.Claim{Type: claims.TypeName, Value: "Alice"},
	)
	require.NoError(t, err)
	return p
}

func TestEnrich_Scenario(t *testing.T) {
	directory := &mockDirectory{}
	calculator := &mockCalculator{}
	current := freshPrincipal(t)

	directory.On("LookupTenantByUserID", mock.Anything, "u1").Return("shop-42", nil)
	calculator.On("CalcPermissionsForUser", mock.Anything, current).Return("AQID", nil)

	enricher := enrich.New(directory, calculator)
	outcome, err := enricher.Enrich(context.Background(), current)

	require.NoError(t, err)
	assert.True(t, outcome.Replaced)

	got := outcome.Principal
	assert.Equal(t, claims.SchemeCookie, got.Scheme())

	userID, _ := got.ClaimValue(claims.TypeNameIdentifier)
	name, _ := got.ClaimValue(claims.TypeName)
	tenant, _ := got.ClaimValue(claims.TypeTenantKey)
	perms, _ := got.ClaimValue(claims.TypePackedPermissions)
	assert.Equal(t, "u1", userID)
	assert.Equal(t, "Alice", name)
	assert.Equal(t, "shop-42", tenant)
	assert.Equal(t, "AQID", perms)

	directory.AssertExpectations(t)
	calculator.AssertExpectations(t)
}

func TestEnrich_Idempotent(t *testing.T) {
	directory := &mockDirectory{}
	calculator := &mockCalculator{}

	current, err := claims.NewPrincipal(claims.SchemeCookie,
		claims.Claim{Type: claims.TypeNameIdentifier, Value: "u1"},
		claims.Claim{Type: claims.TypeTenantKey, Value: "shop-42"},
	)
	require.NoError(t, err)

	enricher := enrich.New(directory, calculator)
	outcome, err := enricher.Enrich(context.Background(), current)

	require.NoError(t, err)
	assert.False(t, outcome.Replaced)
	assert.Equal(t, current, outcome.Principal)

	directory.AssertNotCalled(t, "LookupTenantByUserID", mock.Anything, mock.Anything)
	calculator.AssertNotCalled(t, "CalcPermissionsForUser", mock.Anything, mock.Anything)
}

func TestEnrich_FixedPoint(t *testing.T) {
	directory := &mockDirectory{}
	calculator := &mockCalculator{}
	current := freshPrincipal(t)

	directory.On("LookupTenantByUserID", mock.Anything, "u1").Return("shop-42", nil).Once()
	calculator.On("CalcPermissionsForUser", mock.Anything, current).Return("AQID", nil).Once()

	enricher := enrich.New(directory, calculator)

	first, err := enricher.Enrich(context.Background(), current)
	require.NoError(t, err)
	require.True(t, first.Replaced)

	second, err := enricher.Enrich(context.Background(), first.Principal)
	require.NoError(t, err)
	assert.False(t, second.Replaced)
	assert.Equal(t, first.Principal, second.Principal)

	directory.AssertExpectations(t)
	calculator.AssertExpectations(t)
}

func TestEnrich_ClaimSuperset(t *testing.T) {
	directory := &mockDirectory{}
	calculator := &mockCalculator{}

	current, err := claims.NewPrincipal(claims.SchemeCookie,
		claims.Claim{Type: claims.TypeNameIdentifier, Value: "u1"},
		claims.Claim{Type: claims.TypeName, Value: "Alice"},
		claims.Claim{Type: "locale", Value: "en-GB"},
	)
	require.NoError(t, err)

	directory.On("LookupTenantByUserID", mock.Anything, "u1").Return("shop-42", nil)
	calculator.On("CalcPermissionsForUser", mock.Anything, current).Return("AQID", nil)

	enricher := enrich.New(directory, calculator)
	outcome, err := enricher.Enrich(context.Background(), current)
	require.NoError(t, err)

	// Every input claim survives unmodified, in order, with the two
	// additions appended.
	got := outcome.Principal.Claims()
	require.Len(t, got, 5)
	assert.Equal(t, current.Claims(), got[:3])
	assert.Equal(t, claims.Claim{Type: claims.TypeTenantKey, Value: "shop-42"}, got[3])
	assert.Equal(t, claims.Claim{Type: claims.TypePackedPermissions, Value: "AQID"}, got[4])
}

func TestEnrich_ExactlyOneAdditionPair(t *testing.T) {
	directory := &mockDirectory{}
	calculator := &mockCalculator{}
	current := freshPrincipal(t)

	directory.On("LookupTenantByUserID", mock.Anything, "u1").Return("shop-42", nil)
	calculator.On("CalcPermissionsForUser", mock.Anything, current).Return("AQID", nil)

	enricher := enrich.New(directory, calculator)
	outcome, err := enricher.Enrich(context.Background(), current)
	require.NoError(t, err)

	var tenantClaims, permClaims int
	for _, c := range outcome.Principal.Claims() {
		switch c.Type {
		case claims.TypeTenantKey:
			tenantClaims++
		case claims.TypePackedPermissions:
			permClaims++
		}
	}
	assert.Equal(t, 1, tenantClaims)
	assert.Equal(t, 1, permClaims)
}

func TestEnrich_MissingIdentityClaim(t *testing.T) {
	directory := &mockDirectory{}
	calculator := &mockCalculator{}

	current, err := claims.NewPrincipal(claims.SchemeCookie,
		claims.Claim{Type: claims.TypeName, Value: "Alice"},
	)
	require.NoError(t, err)

	enricher := enrich.New(directory, calculator)
	outcome, err := enricher.Enrich(context.Background(), current)

	require.Error(t, err)
	assert.ErrorIs(t, err, enrich.ErrMissingIdentityClaim)
	assert.False(t, outcome.Replaced)
	assert.Zero(t, outcome.Principal.Len())

	directory.AssertNotCalled(t, "LookupTenantByUserID", mock.Anything, mock.Anything)
	calculator.AssertNotCalled(t, "CalcPermissionsForUser", mock.Anything, mock.Anything)
}

func TestEnrich_UnlinkedUser(t *testing.T) {
	directory := &mockDirectory{}
	calculator := &mockCalculator{}
	current := freshPrincipal(t)

	directory.On("LookupTenantByUserID", mock.Anything, "u1").Return("", enrich.ErrTenantNotFound)

	enricher := enrich.New(directory, calculator)
	outcome, err := enricher.Enrich(context.Background(), current)

	require.Error(t, err)
	assert.ErrorIs(t, err, enrich.ErrUnlinkedUser)
	assert.Contains(t, err.Error(), "Alice", "error should carry the display name for diagnostics")
	assert.False(t, outcome.Replaced)

	calculator.AssertNotCalled(t, "CalcPermissionsForUser", mock.Anything, mock.Anything)
}

func TestEnrich_UnlinkedUser_FallsBackToUserID(t *testing.T) {
	directory := &mockDirectory{}
	calculator := &mockCalculator{}

	current, err := claims.NewPrincipal(claims.SchemeCookie,
		claims.Claim{Type: claims.TypeNameIdentifier, Value: "u1"},
	)
	require.NoError(t, err)

	directory.On("LookupTenantByUserID", mock.Anything, "u1").Return("", enrich.ErrTenantNotFound)

	enricher := enrich.New(directory, calculator)
	_, err = enricher.Enrich(context.Background(), current)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "u1")
}

func TestEnrich_TenantLookupFailure(t *testing.T) {
	directory := &mockDirectory{}
	calculator := &mockCalculator{}
	current := freshPrincipal(t)

	cause := errors.New("connection refused")
	directory.On("LookupTenantByUserID", mock.Anything, "u1").Return("", cause)

	enricher := enrich.New(directory, calculator)
	outcome, err := enricher.Enrich(context.Background(), current)

	require.Error(t, err)
	assert.ErrorIs(t, err, enrich.ErrTenantLookup)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, enrich.ErrUnlinkedUser)
	assert.False(t, outcome.Replaced)

	calculator.AssertNotCalled(t, "CalcPermissionsForUser", mock.Anything, mock.Anything)
}

func TestEnrich_PermissionCalculationFailure(t *testing.T) {
	directory := &mockDirectory{}
	calculator := &mockCalculator{}
	current := freshPrincipal(t)

	cause := errors.New("role table unavailable")
	directory.On("LookupTenantByUserID", mock.Anything, "u1").Return("shop-42", nil)
	calculator.On("CalcPermissionsForUser", mock.Anything, current).Return("", cause)

	enricher := enrich.New(directory, calculator)
	outcome, err := enricher.Enrich(context.Background(), current)

	require.Error(t, err)
	assert.ErrorIs(t, err, enrich.ErrPermissionCalculation)
	assert.ErrorIs(t, err, cause)
	assert.False(t, outcome.Replaced)
	assert.Zero(t, outcome.Principal.Len(), "no partial claim set may be committed")
}

func TestEnrich_CalculatorSeesPreTenantClaimSet(t *testing.T) {
	directory := &mockDirectory{}
	calculator := &mockCalculator{}
	current := freshPrincipal(t)

	directory.On("LookupTenantByUserID", mock.Anything, "u1").Return("shop-42", nil)
	calculator.On("CalcPermissionsForUser", mock.Anything, mock.MatchedBy(func(p claims.Principal) bool {
		return !p.HasClaim(claims.TypeTenantKey)
	})).Return("AQID", nil)

	enricher := enrich.New(directory, calculator)
	_, err := enricher.Enrich(context.Background(), current)

	require.NoError(t, err)
	calculator.AssertExpectations(t)
}

func TestNew_RequiresCollaborators(t *testing.T) {
	assert.Panics(t, func() { enrich.New(nil, &mockCalculator{}) })
	assert.Panics(t, func() { enrich.New(&mockDirectory{}, nil) })
}
