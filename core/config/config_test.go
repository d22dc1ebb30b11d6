package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhhieuit/PermissionAccessControl/core/config"
)

// Each test uses its own config type: loaded values are cached per type for
// the lifetime of the process.

func TestLoad_Success(t *testing.T) {
	type serverConfig struct {
		Host string        `env:"TEST_LOAD_HOST" envDefault:"localhost"`
		Port int           `env:"TEST_LOAD_PORT" envDefault:"8080"`
		TTL  time.Duration `env:"TEST_LOAD_TTL" envDefault:"5m"`
	}

	t.Setenv("TEST_LOAD_HOST", "example.com")
	t.Setenv("TEST_LOAD_PORT", "9090")

	var cfg serverConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "example.com", cfg.Host)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 5*time.Minute, cfg.TTL)
}

func TestLoad_Defaults(t *testing.T) {
	type defaultsConfig struct {
		Name string `env:"TEST_DEFAULTS_NAME" envDefault:"fallback"`
	}

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "fallback", cfg.Name)
}

func TestLoad_RequiredMissing(t *testing.T) {
	type requiredConfig struct {
		Secret string `env:"TEST_REQUIRED_SECRET_MISSING,required"`
	}

	var cfg requiredConfig
	err := config.Load(&cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParseFailed)
}

func TestLoad_NilTarget(t *testing.T) {
	var cfg *struct {
		Value string `env:"TEST_NIL"`
	}

	err := config.Load(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrNilConfig)
}

func TestLoad_CachedPerType(t *testing.T) {
	type cachedConfig struct {
		Value string `env:"TEST_CACHED_VALUE" envDefault:"initial"`
	}

	t.Setenv("TEST_CACHED_VALUE", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Value)

	// Later environment changes are not observed for an already loaded type.
	t.Setenv("TEST_CACHED_VALUE", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)
}

func TestMustLoad_PanicsOnFailure(t *testing.T) {
	type mustConfig struct {
		Secret string `env:"TEST_MUST_SECRET_MISSING,required"`
	}

	assert.Panics(t, func() {
		var cfg mustConfig
		config.MustLoad(&cfg)
	})
}
