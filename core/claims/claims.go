package claims

// Well-known claim type names. Claim types are opaque strings; these are the
// ones the enrichment core and the credential transports agree on.
const (
	// TypeNameIdentifier holds the stable unique user identifier issued at login.
	TypeNameIdentifier = "name_id"

	// TypeName holds the human-readable display name, used for diagnostics.
	TypeName = "name"

	// TypeTenantKey holds the key of the tenant (shop) the user belongs to.
	// Its presence marks a principal as already enriched.
	TypeTenantKey = "tenant_key"

	// TypePackedPermissions holds the opaque encoded permission set computed
	// for the user within their tenant.
	TypePackedPermissions = "packed_permissions"
)

// Authentication scheme tags for principals.
const (
	// SchemeCookie marks principals transported via the session cookie.
	SchemeCookie = "cookie"

	// SchemeJWT marks principals transported via a bearer token.
	SchemeJWT = "jwt"
)

// Claim is a single typed key/value fact about the authenticated identity.
type Claim struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}
