package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var (
	// ErrEmptyConnectionURL indicates no MongoDB URL was provided.
	ErrEmptyConnectionURL = errors.New("empty mongodb connection URL")

	// ErrMongoNotReady indicates the server did not become reachable within
	// the configured retry budget.
	ErrMongoNotReady = errors.New("mongodb did not become ready within the given time period")

	// ErrHealthcheckFailed indicates a ping failure on an established client.
	ErrHealthcheckFailed = errors.New("mongodb healthcheck failed")
)

// Config provides environment-based configuration for the MongoDB client.
// Defaults are tuned for managed deployments with slow cold starts.
type Config struct {
	ConnectionURL  string        `env:"MONGODB_URL,required"`
	DatabaseName   string        `env:"MONGODB_DATABASE" envDefault:"tenants"`
	ConnectTimeout time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`
	MaxPoolSize    uint64        `env:"MONGODB_MAX_POOL_SIZE" envDefault:"100"`
	RetryAttempts  int           `env:"MONGODB_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"MONGODB_RETRY_INTERVAL" envDefault:"5s"`
}

// Connect creates a MongoDB client, verifies connectivity with retries, and
// returns a handle to the configured database.
func Connect(ctx context.Context, cfg Config) (*mongo.Database, error) {
	if cfg.ConnectionURL == "" {
		return nil, ErrEmptyConnectionURL
	}

	client, err := mongo.Connect(options.Client().
		ApplyURI(cfg.ConnectionURL).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetMaxPoolSize(cfg.MaxPoolSize))
	if err != nil {
		return nil, err
	}

	attempts := cfg.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				_ = client.Disconnect(context.WithoutCancel(ctx))
				return nil, ctx.Err()
			case <-time.After(cfg.RetryInterval * time.Duration(attempt)):
			}
		}

		if lastErr = client.Ping(ctx, nil); lastErr == nil {
			return client.Database(cfg.DatabaseName), nil
		}
	}

	_ = client.Disconnect(context.WithoutCancel(ctx))
	return nil, errors.Join(ErrMongoNotReady, lastErr)
}

// Healthcheck returns a function suitable for readiness probes.
func Healthcheck(db *mongo.Database) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := db.Client().Ping(ctx, nil); err != nil {
			return fmt.Errorf("%w: %w", ErrHealthcheckFailed, err)
		}
		return nil
	}
}
