// Package config provides configuration management for the nutritrack application.
// Values are read from environment variables (optionally seeded from a .env file by
// main), with required variables, defaults, and collective error reporting: every
// problem is gathered and returned in one error instead of failing on the first one.
// In Nest.js, the `@nestjs/config` module serves a similar purpose.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Store drivers understood by STORE_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
	DriverMemory   = "memory"
)

// PoolConfig represents configuration for the PostgreSQL connection pool.
type PoolConfig struct {
	Host           string
	Port           int
	User           string
	Password       string
	DBName         string
	MaxSize        int
	MigrationsPath string
	AutoMigrate    bool
}

// MongoConfig holds the MongoDB connection settings.
type MongoConfig struct {
	URI      string
	Database string
}

// StoreConfig selects and configures the persistence backend.
type StoreConfig struct {
	Driver   string
	Postgres *PoolConfig
	Mongo    *MongoConfig
}

// AuthConfig holds authentication-related configuration.
type AuthConfig struct {
	JWTSecret string        // Secret key for signing JWTs
	TokenTTL  time.Duration // Zero means tokens carry no exp claim
	// AdminUserIDs lists the user ids allowed to add foods to the catalog.
	AdminUserIDs []string
	// RateLimitPerMinute bounds /register and /login attempts per client IP.
	RateLimitPerMinute int
}

// SessionConfig holds the server-side session settings (stateful login variant).
type SessionConfig struct {
	Enabled         bool
	Secret          string
	TTL             time.Duration
	CookieName      string
	CookieSecure    bool // Secure attribute; turn off only for plain-http local development
	CleanupInterval time.Duration
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port               string
	CORSAllowedOrigins []string

	// TrustForwardedHeaders makes X-Forwarded-For / X-Real-IP the client address.
	// Only enable it behind a reverse proxy that overwrites those headers.
	TrustForwardedHeaders bool
}

// LogConfig controls the logrus logger.
type LogConfig struct {
	Level  string
	Format string
}

// AppConfig is the top-level configuration structure for the application.
type AppConfig struct {
	Store   *StoreConfig
	Auth    *AuthConfig
	Session *SessionConfig
	Server  *ServerConfig
	Log     *LogConfig
}

// getRequiredEnv returns the variable or records a "missing" error.
func getRequiredEnv(key string, errors *[]string) string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		*errors = append(*errors, fmt.Sprintf("missing required environment variable: %s", key))
		return ""
	}
	return value
}

func getOptionalEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getOptionalEnvInt(key string, defaultValue int, errors *[]string) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected integer, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueInt
}

func getOptionalEnvBool(key string, defaultValue bool, errors *[]string) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueBool, err := strconv.ParseBool(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected boolean, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueBool
}

// getOptionalEnvDuration parses values like "15m" or "336h".
func getOptionalEnvDuration(key string, defaultValue time.Duration, errors *[]string) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueDuration, err := time.ParseDuration(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected duration string, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	if valueDuration < 0 {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: duration must not be negative", key))
		return defaultValue
	}
	return valueDuration
}

// getOptionalEnvList splits a comma separated variable, dropping blanks.
func getOptionalEnvList(key string, defaultValue []string) []string {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// clampPoolSize keeps the pool size between 1 and 100, recording an error when it had to.
func clampPoolSize(size int, varName string, errors *[]string) int {
	if size < 1 {
		*errors = append(*errors, fmt.Sprintf("pool size for %s (%d) is less than minimum 1", varName, size))
		return 1
	}
	if size > 100 {
		*errors = append(*errors, fmt.Sprintf("pool size for %s (%d) is greater than maximum 100", varName, size))
		return 100
	}
	return size
}

// loadStoreConfig reads the persistence settings. Only the selected driver's
// variables are required.
func loadStoreConfig(errors *[]string) *StoreConfig {
	driver := strings.ToLower(getOptionalEnv("STORE_DRIVER", DriverPostgres))
	store := &StoreConfig{Driver: driver}
	switch driver {
	case DriverPostgres:
		store.Postgres = &PoolConfig{
			User:           getRequiredEnv("DB_USER", errors),
			Password:       getRequiredEnv("DB_PASSWORD", errors),
			DBName:         getRequiredEnv("DB_NAME", errors),
			Host:           getOptionalEnv("DB_HOST", "localhost"),
			Port:           getOptionalEnvInt("DB_PORT", 5432, errors),
			MaxSize:        clampPoolSize(getOptionalEnvInt("DB_POOL_SIZE", 10, errors), "DB_POOL_SIZE", errors),
			MigrationsPath: getOptionalEnv("DB_MIGRATIONS_PATH", "./migrations"),
			AutoMigrate:    getOptionalEnvBool("DB_AUTO_MIGRATE", false, errors),
		}
	case DriverMongo:
		store.Mongo = &MongoConfig{
			URI:      getRequiredEnv("MONGO_URI", errors),
			Database: getRequiredEnv("MONGO_DATABASE", errors),
		}
	case DriverMemory:
	default:
		*errors = append(*errors, fmt.Sprintf("invalid value for STORE_DRIVER: %q (expected postgres, mongo or memory)", driver))
	}
	return store
}

// LoadStoreConfig reads only the persistence settings. The migrate command uses it
// so that schema changes do not require the auth secrets.
func LoadStoreConfig() (*StoreConfig, error) {
	var errors []string
	store := loadStoreConfig(&errors)
	if len(errors) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errors, "\n- "))
	}
	return store, nil
}

// LoadConfig creates and returns an AppConfig by reading and validating environment variables.
// It collects all errors encountered during loading and returns a single error if any exist.
func LoadConfig() (*AppConfig, error) {
	var errors []string

	store := loadStoreConfig(&errors)

	// Auth configuration. The secret is never defaulted.
	authConfig := &AuthConfig{
		JWTSecret:          getRequiredEnv("JWT_SECRET", &errors),
		TokenTTL:           getOptionalEnvDuration("JWT_TOKEN_TTL", 0, &errors),
		AdminUserIDs:       getOptionalEnvList("ADMIN_USER_IDS", nil),
		RateLimitPerMinute: getOptionalEnvInt("AUTH_RATE_LIMIT", 20, &errors),
	}
	if authConfig.RateLimitPerMinute < 1 {
		errors = append(errors, "AUTH_RATE_LIMIT must be at least 1")
	}

	sessionConfig := &SessionConfig{
		Enabled:         getOptionalEnvBool("SESSION_ENABLED", true, &errors),
		TTL:             getOptionalEnvDuration("SESSION_TTL", 14*24*time.Hour, &errors),
		CookieName:      getOptionalEnv("SESSION_COOKIE_NAME", "nutritrack.sid"),
		CookieSecure:    getOptionalEnvBool("SESSION_COOKIE_SECURE", true, &errors),
		CleanupInterval: getOptionalEnvDuration("SESSION_CLEANUP_INTERVAL", 10*time.Minute, &errors),
	}
	if sessionConfig.Enabled {
		sessionConfig.Secret = getRequiredEnv("SESSION_SECRET", &errors)
		if sessionConfig.TTL == 0 {
			errors = append(errors, "SESSION_TTL must be greater than zero when sessions are enabled")
		}
		if sessionConfig.CleanupInterval == 0 {
			errors = append(errors, "SESSION_CLEANUP_INTERVAL must be greater than zero when sessions are enabled")
		}
	}

	serverConfig := &ServerConfig{
		Port:                  getOptionalEnv("PORT", "8080"),
		CORSAllowedOrigins:    getOptionalEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		TrustForwardedHeaders: getOptionalEnvBool("TRUST_FORWARDED_HEADERS", false, &errors),
	}

	logConfig := &LogConfig{
		Level:  getOptionalEnv("LOG_LEVEL", "info"),
		Format: strings.ToLower(getOptionalEnv("LOG_FORMAT", "text")),
	}
	if logConfig.Format != "text" && logConfig.Format != "json" {
		errors = append(errors, fmt.Sprintf("invalid value for LOG_FORMAT: %q (expected text or json)", logConfig.Format))
	}

	if len(errors) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errors, "\n- "))
	}

	return &AppConfig{
		Store:   store,
		Auth:    authConfig,
		Session: sessionConfig,
		Server:  serverConfig,
		Log:     logConfig,
	}, nil
}
