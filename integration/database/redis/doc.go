// Package redis provides Redis client initialization with retry logic and
// the Redis-backed permission cache used by the cached permission
// calculator.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	cache := redis.NewPermissionCache(client)
//	calculator := permission.NewCached(base, cache, 10*time.Minute)
package redis
