// Package permission provides the production permission calculators used by
// the enrichment pass.
//
// Calculator loads the permission codes granted to a user through their
// roles and packs them into a single opaque string suitable for storage as a
// claim value. Cached wraps any calculator with a TTL cache and deduplicates
// concurrent computations for the same user.
//
//	calc := permission.NewCalculator(pg.NewRoleStore(pool))
//	cached := permission.NewCached(calc, redis.NewPermissionCache(client), 10*time.Minute)
//
// Both types satisfy enrich.PermissionCalculator.
package permission
