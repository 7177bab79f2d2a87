package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, DriverPostgres, cfg.StorageDriver)
	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.True(t, cfg.Psql.RunMigrations)
	assert.Equal(t, "localhost:5432", cfg.Psql.Addr.Host)
	assert.Equal(t, "ads.db", cfg.SQLite.Path)
	assert.Equal(t, 10, cfg.Hash.Cost)
	assert.Equal(t, 0, cfg.SeedDemoAds)
}

func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/board.db")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("HASH_COST", "4")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.StorageDriver)
	assert.Equal(t, "/tmp/board.db", cfg.SQLite.Path)
	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.Equal(t, 4, cfg.Hash.Cost)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORAGE_DRIVER", "mysql")

	_, err := Load()
	assert.ErrorContains(t, err, "mysql")
}
