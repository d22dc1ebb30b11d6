// Package config loads configuration structs from environment variables,
// with an optional .env file read once at startup and a per-type cache so
// repeated loads of the same struct type are free.
//
// Struct fields are mapped with caarlos0/env tags:
//
//	type CookieConfig struct {
//		Secrets string `env:"COOKIE_SECRETS,required"`
//		MaxAge  int    `env:"COOKIE_MAX_AGE" envDefault:"86400"`
//	}
//
//	var cfg CookieConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// MustLoad panics instead of returning the error, which is the usual choice
// during process startup.
//
// The first successful Load of a given type is cached for the lifetime of
// the process; later loads of that type copy the cached value rather than
// re-reading the environment. Distinct types cache independently.
package config
