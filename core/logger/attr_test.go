package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/minhhieuit/PermissionAccessControl/core/logger"
)

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)

	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())
}

func TestError_Nil(t *testing.T) {
	assert.Equal(t, slog.Attr{}, logger.Error(nil))
}

func TestStringHelpers(t *testing.T) {
	assert.Equal(t, slog.String("user_id", "u1"), logger.UserID("u1"))
	assert.Equal(t, slog.String("tenant_key", "shop-42"), logger.TenantKey("shop-42"))
	assert.Equal(t, slog.String("scheme", "cookie"), logger.Scheme("cookie"))
	assert.Equal(t, slog.String("component", "enricher"), logger.Component("enricher"))
}

func TestStringHelpers_Empty(t *testing.T) {
	assert.Equal(t, slog.Attr{}, logger.UserID(""))
	assert.Equal(t, slog.Attr{}, logger.TenantKey(""))
	assert.Equal(t, slog.Attr{}, logger.Scheme(""))
	assert.Equal(t, slog.Attr{}, logger.Component(""))
}
