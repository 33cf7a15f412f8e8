package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, int32(8080), cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 5, cfg.Global.ShutdownTimeoutInSeconds)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, Database{
		Driver:      DriverSQLite,
		Path:        DefaultDatabasePath,
		LogLevel:    "warn",
		AutoMigrate: true,
	}, cfg.Database)
}

func TestNewConfig_Environment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", EnvironmentProduction)
	t.Setenv("DATABASE_DRIVER", DriverPostgres)
	t.Setenv("DATABASE_DSN", "postgres://books@localhost/books")
	t.Setenv("DATABASE_AUTO_MIGRATE", "false")

	cfg := NewConfig()

	assert.Equal(t, int32(9090), cfg.HTTP.Port)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "postgres://books@localhost/books", cfg.Database.DSN)
	assert.False(t, cfg.Database.AutoMigrate)
}

func TestNewConfig_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookreviews.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 7000\ndatabase_path: /var/lib/bookreviews.db\n"), 0o600))
	t.Setenv("CONFIG_PATH", path)

	t.Run("file overrides defaults", func(t *testing.T) {
		cfg := NewConfig()

		assert.Equal(t, int32(7000), cfg.HTTP.Port)
		assert.Equal(t, "/var/lib/bookreviews.db", cfg.Database.Path)
		assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		t.Setenv("PORT", "7100")

		cfg := NewConfig()

		assert.Equal(t, int32(7100), cfg.HTTP.Port)
	})
}

func TestNewConfig_MissingConfigFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg := NewConfig()

	assert.Equal(t, int32(8080), cfg.HTTP.Port)
}
