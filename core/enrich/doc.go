// Package enrich implements the session claims enrichment pass that runs on
// every credential validation event.
//
// A freshly issued session credential carries identity claims only. The first
// time it is re-validated, the Enricher resolves the user's tenant (shop)
// affiliation, computes the packed permission set for the user within that
// tenant, and builds a replacement principal carrying both as new claims. The
// caller persists the replacement by renewing the credential, so the pass
// runs once per session lifetime rather than on every request: the presence
// of the tenant-key claim makes every later pass a cheap no-op.
//
// The two lookups the pass depends on are injected capabilities:
//
//	directory := pg.NewTenantDirectory(pool)
//	calculator := permission.NewCalculator(pg.NewRoleStore(pool))
//
//	enricher := enrich.New(directory, calculator)
//
//	outcome, err := enricher.Enrich(ctx, principal)
//	if err != nil {
//		// Reject the session: a user that cannot be enriched cannot be
//		// safely authorized.
//	}
//	if outcome.Replaced {
//		// Persist outcome.Principal through the credential transport so
//		// the enrichment is not repeated on the next request.
//	}
//
// All failures are fatal to the current validation event and leave the
// original principal untouched; no partially enriched claim set is ever
// produced.
package enrich
