package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 20, cfg.DBMaxOpenConns)
	assert.Equal(t, int64(1), cfg.DefaultAdminID)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("HTTP_PORT", "eighty")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP_PORT")
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("DB_MAX_OPEN_CONNS", "50")
	t.Setenv("REQUEST_TIMEOUT", "2s")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("RATE_LIMIT_RPS", "2.5")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.DBMaxOpenConns)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
}

func TestValidate_CollectsErrors(t *testing.T) {
	cfg := &Config{
		HTTPPort:       0,
		DBPort:         5432,
		RequestTimeout: time.Second,
		DBMaxOpenConns: 5,
		DBMaxIdleConns: 10,
		DBSSLMode:      "sometimes",
		LogLevel:       "info",
		LogFormat:      "xml",
		JWTSecret:      "short",
		DefaultAdminID: 1,
		RateLimitRPS:   1,
		RateLimitBurst: 1,
		RollupWorkers:  1,
	}

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"HTTP_PORT", "DB_MAX_IDLE_CONNS", "DB_SSLMODE", "LOG_FORMAT", "JWT_SECRET"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{DBHost: "db", DBPort: 5433, DBUser: "app", DBPassword: "p@ss", DBName: "toons", DBSSLMode: "require"}
	assert.Equal(t, "postgres://app:p%40ss@db:5433/toons?sslmode=require", cfg.DSN())

	cfg.DatabaseURL = "postgres://override"
	assert.Equal(t, "postgres://override", cfg.DSN())
}
