package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "wanderly", cfg.Database.Name)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.AccessTokenTTL)
	assert.Equal(t, 10*time.Minute, cfg.JWT.ResetTokenTTL)
	assert.Equal(t, 5.0, cfg.RateLimit.RPS)
	assert.Equal(t, 10, cfg.RateLimit.Burst)
}

func TestLoadRequiresDBPassword(t *testing.T) {
	t.Setenv("DB_PASSWORD", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsDefaultSecretInProduction(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("APP_ENV", "production")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")

	t.Setenv("JWT_SECRET", "a-real-secret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:        "db.example.com",
			Port:        "5432",
			User:        "wanderly",
			Password:    "pw",
			Name:        "wanderly",
			SSLMode:     "require",
			ConnTimeout: 10 * time.Second,
		},
	}

	assert.Equal(t,
		"postgres://wanderly:pw@db.example.com:5432/wanderly?sslmode=require&connect_timeout=10",
		cfg.GetDSN())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_ACCESS_TTL", "24h")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.wanderly.dev, https://staging.wanderly.dev")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWT.AccessTokenTTL)
	assert.Equal(t,
		[]string{"https://app.wanderly.dev", "https://staging.wanderly.dev"},
		cfg.CORS.AllowedOrigins)
}

func TestIsEmailConfigured(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.IsEmailConfigured())

	cfg.Email.SMTPUsername = "u"
	cfg.Email.SMTPPassword = "p"
	assert.True(t, cfg.IsEmailConfigured())
}
