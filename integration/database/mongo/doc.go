// Package mongo provides MongoDB client initialization with retry logic and
// a document-backed tenant directory, as an alternative to the PostgreSQL
// implementation for deployments that keep tenant links in MongoDB.
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//
//	db, err := mongo.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	directory := mongo.NewTenantDirectory(db)
package mongo
