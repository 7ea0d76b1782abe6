package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Defaults(t *testing.T) {
	config, err := InitConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", config.Environment)
	assert.Equal(t, 8080, config.Port)
	assert.Equal(t, "data/portal.db", config.DatabaseDbPath)
	assert.Equal(t, "localhost", config.DatabaseCacheAddress)
	assert.Equal(t, 6379, config.DatabaseCachePort)
	assert.Equal(t, "/uploads", config.StoragePublicPath)
	assert.Equal(t, 24, config.SessionTTLHours)
	assert.Equal(t, 12, config.BcryptCost)
}

func TestInitConfig_EnvironmentOverride(t *testing.T) {
	t.Setenv("PORTAL_PORT", "9090")
	t.Setenv("PORTAL_ENVIRONMENT", "production")

	config, err := InitConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, config.Port)
	assert.Equal(t, "production", config.Environment)
}
