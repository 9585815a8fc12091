package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "3003", cfg.Port)
	assert.Equal(t, DriverMongo, cfg.StorageDriver)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, 30*time.Second, cfg.StatsCacheTTL)
	assert.False(t, cfg.TrustProxy)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoConnString())
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("SECRET", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("SECRET", "s3cret")
	t.Setenv("STORAGE_DRIVER", "sqlite")

	_, err := Load()
	require.ErrorContains(t, err, "STORAGE_DRIVER")
}

func TestLoadBadDuration(t *testing.T) {
	t.Setenv("SECRET", "s3cret")
	t.Setenv("TOKEN_TTL", "forever")

	_, err := Load()
	require.ErrorContains(t, err, "parse env:")
}

func TestMongoConnStringInTestMode(t *testing.T) {
	t.Setenv("SECRET", "s3cret")
	t.Setenv("APP_ENV", EnvTest)
	t.Setenv("TEST_MONGODB_URI", "mongodb://localhost:27017/testBlogApp")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "mongodb://localhost:27017/testBlogApp", cfg.MongoConnString())
}
