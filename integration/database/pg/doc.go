// Package pg provides the PostgreSQL-backed implementations of the tenant
// directory and role store, plus pooled connection management with retry
// logic and goose-driven schema migrations.
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, logger); err != nil {
//		log.Fatal(err)
//	}
//
//	directory := pg.NewTenantDirectory(pool)
//	roles := pg.NewRoleStore(pool)
//
// The pool is created once at startup and injected into the directory and
// store; no data-access context is ever constructed per lookup.
package pg
