package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_URL", "postgres://localhost:5432/attendance")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres://localhost:5432/attendance", cfg.DBURL)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, 720, cfg.TokenExpiryMin)
	assert.Equal(t, "https://nominatim.openstreetmap.org", cfg.GeocoderBaseURL)
	assert.Equal(t, "attendance-service", cfg.GeocoderUserAgent)
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("TOKEN_EXPIRY_MIN", "60")
	t.Setenv("GEOCODER_BASE_URL", "http://localhost:8081")
	t.Setenv("GEOCODER_USER_AGENT", "attendance-test")

	cfg := Load()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 60, cfg.TokenExpiryMin)
	assert.Equal(t, "http://localhost:8081", cfg.GeocoderBaseURL)
	assert.Equal(t, "attendance-test", cfg.GeocoderUserAgent)
}

func TestGetEnvAsInt_InvalidFallsBack(t *testing.T) {
	t.Setenv("TOKEN_EXPIRY_MIN", "not-a-number")

	assert.Equal(t, 720, getEnvAsInt("TOKEN_EXPIRY_MIN", 720))
}

func TestGetEnv_EmptyUsesDefault(t *testing.T) {
	t.Setenv("ENV", "")

	assert.Equal(t, "development", getEnv("ENV", "development"))
}
