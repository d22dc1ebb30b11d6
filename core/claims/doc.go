// Package claims defines the claim and principal types shared by the
// credential transports and the enrichment core.
//
// A Claim is a typed key/value fact about the authenticated identity. A
// Principal is the full ordered claim set plus the authentication scheme it
// was issued under. Principals are immutable values: every modification goes
// through a constructor that copies the underlying claim set, so a principal
// handed to another component can never be changed behind its back.
//
// Basic usage:
//
//	p, err := claims.NewPrincipal(claims.SchemeCookie,
//		claims.Claim{Type: claims.TypeNameIdentifier, Value: "u1"},
//		claims.Claim{Type: claims.TypeName, Value: "Alice"},
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	enriched := p.WithClaims(
//		claims.Claim{Type: claims.TypeTenantKey, Value: "shop-42"},
//	)
//	// p is untouched, enriched carries the extra claim.
package claims
