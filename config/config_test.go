package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setMemoryEnv(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("JWT_SECRET", "test-jwt-secret")
	t.Setenv("SESSION_SECRET", "test-session-secret")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setMemoryEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.Store.Driver)
	assert.Nil(t, cfg.Store.Postgres)
	assert.Equal(t, "test-jwt-secret", cfg.Auth.JWTSecret)
	assert.Zero(t, cfg.Auth.TokenTTL, "tokens do not expire unless configured")
	assert.Equal(t, 20, cfg.Auth.RateLimitPerMinute)
	assert.True(t, cfg.Session.Enabled)
	assert.Equal(t, 14*24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "nutritrack.sid", cfg.Session.CookieName)
	assert.True(t, cfg.Session.CookieSecure)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.False(t, cfg.Server.TrustForwardedHeaders, "forwarded headers are ignored unless enabled")
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_Overrides(t *testing.T) {
	setMemoryEnv(t)
	t.Setenv("JWT_TOKEN_TTL", "24h")
	t.Setenv("ADMIN_USER_IDS", " a1 , ,b2")
	t.Setenv("SESSION_ENABLED", "false")
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("SESSION_COOKIE_SECURE", "false")
	t.Setenv("TRUST_FORWARDED_HEADERS", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, []string{"a1", "b2"}, cfg.Auth.AdminUserIDs)
	assert.False(t, cfg.Session.Enabled)
	assert.Empty(t, cfg.Session.Secret)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.Session.CookieSecure)
	assert.True(t, cfg.Server.TrustForwardedHeaders)
}

func TestLoadConfig_PostgresRequiresCredentials(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("SESSION_SECRET", "s")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_USER")
	assert.Contains(t, err.Error(), "DB_PASSWORD")
	assert.Contains(t, err.Error(), "DB_NAME")
}

func TestLoadConfig_CollectsAllErrors(t *testing.T) {
	t.Setenv("STORE_DRIVER", "cassandra")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_TOKEN_TTL", "soon")
	t.Setenv("SESSION_SECRET", "")

	_, err := LoadConfig()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "STORE_DRIVER")
	assert.Contains(t, msg, "JWT_SECRET")
	assert.Contains(t, msg, "JWT_TOKEN_TTL")
	assert.Contains(t, msg, "SESSION_SECRET")
}

func TestLoadConfig_PoolSizeClamped(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DB_USER", "u")
	t.Setenv("DB_PASSWORD", "p")
	t.Setenv("DB_NAME", "n")
	t.Setenv("DB_POOL_SIZE", "500")
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("SESSION_SECRET", "s")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "greater than maximum 100")
}

func TestLoadStoreConfig_IgnoresAuthSettings(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DB_USER", "nutri")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "nutritrack")
	t.Setenv("JWT_SECRET", "")

	store, err := LoadStoreConfig()
	require.NoError(t, err)
	require.NotNil(t, store.Postgres)
	assert.Equal(t, "nutritrack", store.Postgres.DBName)
	assert.Equal(t, "./migrations", store.Postgres.MigrationsPath)

	t.Setenv("STORE_DRIVER", "sqlite")
	_, err = LoadStoreConfig()
	assert.ErrorContains(t, err, "STORE_DRIVER")
}
