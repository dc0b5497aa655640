package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, StorePostgres, cfg.StoreDriver)
	assert.Equal(t, 10, cfg.LowStockThreshold)
	assert.Equal(t, "America/Costa_Rica", cfg.Timezone)
	assert.Equal(t, 5*time.Minute, cfg.CatalogCacheTTL())
	assert.False(t, cfg.StorageEnabled())
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORE_DRIVER", "Memory")
	t.Setenv("LOW_STOCK_THRESHOLD", "3")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("S3_BUCKET", "salon-media")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, StoreMemory, cfg.StoreDriver)
	assert.Equal(t, 3, cfg.LowStockThreshold)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins())
	assert.True(t, cfg.StorageEnabled())
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")

	_, err := Load()
	assert.Error(t, err)
}
