package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "biblioteca.db", cfg.DBPath)
	assert.Equal(t, "biblioteca.csv", cfg.CSVPath)
	assert.Equal(t, "desarrollo", cfg.APIKey)
	assert.Empty(t, cfg.AllowedOrigins)
	assert.Equal(t, 20.0, cfg.RateRPS)
	assert.Equal(t, 40, cfg.RateBurst)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("DB_PATH", "/data/catalogo.db")
	t.Setenv("APP_SECRET_KEY", "super-secreta")
	t.Setenv("ALLOWED_ORIGINS", "https://biblioteca.example, https://admin.example")
	t.Setenv("RATE_RPS", "5")
	t.Setenv("RATE_BURST", "10")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "/data/catalogo.db", cfg.DBPath)
	assert.Equal(t, "super-secreta", cfg.APIKey)
	assert.Equal(t, []string{"https://biblioteca.example", "https://admin.example"}, cfg.AllowedOrigins)
	assert.Equal(t, 5.0, cfg.RateRPS)
	assert.Equal(t, 10, cfg.RateBurst)
}

func TestLoadIgnoresBadNumbers(t *testing.T) {
	t.Setenv("RATE_RPS", "mucho")
	t.Setenv("RATE_BURST", "-")

	cfg := Load()

	assert.Equal(t, 20.0, cfg.RateRPS)
	assert.Equal(t, 40, cfg.RateBurst)
}
