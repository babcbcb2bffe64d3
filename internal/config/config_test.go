package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"SERVER_PORT", "SERVER_HOST", "GIN_MODE", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT",
	"DB_DRIVER", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
	"DB_SQLITE_PATH", "DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	"SITE_BASE_URL", "SITE_NAME", "ADMIN_DISCORD_ID", "DEFAULT_LANGUAGE",
	"DISCORD_CDN_BASE", "PROXY_TIMEOUT", "PROXY_RATE_PER_SECOND", "PROXY_BURST",
	"LOG_LEVEL", "LOG_DEV",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
	}
}

func TestLoad_SQLiteDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("DB_DRIVER", DriverSQLite)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "db.sqlite3", cfg.Database.DSN())
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)

	assert.Equal(t, "https://sendou.ink", cfg.Site.BaseURL)
	assert.Equal(t, "sendou.ink", cfg.Site.Name)
	assert.Equal(t, "en", cfg.Site.DefaultLanguage)

	assert.Equal(t, 10*time.Second, cfg.Proxy.Timeout)
	assert.InDelta(t, 20.0, cfg.Proxy.RatePerSecond, 0.001)
	assert.Equal(t, 40, cfg.Proxy.Burst)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Dev)
}

func TestLoad_Postgres(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "sendou")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "sendou")
	t.Setenv("PROXY_TIMEOUT", "2s")
	t.Setenv("LOG_DEV", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "host=localhost port=5432 user=sendou password=secret dbname=sendou sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, 2*time.Second, cfg.Proxy.Timeout)
	assert.True(t, cfg.Log.Dev)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		errContains string
	}{
		{
			name:        "missing server port",
			env:         map[string]string{"DB_DRIVER": DriverSQLite},
			errContains: "SERVER_PORT",
		},
		{
			name:        "missing postgres host",
			env:         map[string]string{"SERVER_PORT": "8080"},
			errContains: "is not set",
		},
		{
			name:        "unsupported driver",
			env:         map[string]string{"SERVER_PORT": "8080", "DB_DRIVER": "mysql"},
			errContains: "unsupported DB_DRIVER",
		},
		{
			name:        "invalid pool size",
			env:         map[string]string{"SERVER_PORT": "8080", "DB_DRIVER": DriverSQLite, "DB_MAX_OPEN_CONNS": "many"},
			errContains: "DB_MAX_OPEN_CONNS",
		},
		{
			name:        "invalid duration",
			env:         map[string]string{"SERVER_PORT": "8080", "DB_DRIVER": DriverSQLite, "PROXY_TIMEOUT": "soon"},
			errContains: "PROXY_TIMEOUT",
		},
		{
			name:        "invalid rate",
			env:         map[string]string{"SERVER_PORT": "8080", "DB_DRIVER": DriverSQLite, "PROXY_RATE_PER_SECOND": "fast"},
			errContains: "PROXY_RATE_PER_SECOND",
		},
		{
			name:        "invalid boolean",
			env:         map[string]string{"SERVER_PORT": "8080", "DB_DRIVER": DriverSQLite, "LOG_DEV": "maybe"},
			errContains: "LOG_DEV",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			cfg, err := Load()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}
