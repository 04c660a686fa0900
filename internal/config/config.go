// Package config builds the process configuration once at startup. Handlers
// never read the environment themselves; everything they need is passed in.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting of the API and seed binaries.
type Config struct {
	// Addr is the listen address of the API server.
	Addr string
	// DBPath is the sqlite file holding the catalog.
	DBPath string
	// CSVPath is the seed file read by cmd/seed.
	CSVPath string
	// APIKey is the shared secret required on mutating endpoints. The
	// default exists for local development only.
	APIKey string
	// AllowedOrigins restricts CORS; empty means any origin.
	AllowedOrigins []string
	// RateRPS and RateBurst bound per-client request rates.
	RateRPS   float64
	RateBurst int
}

// Load reads .env files (runtime environment wins) and assembles the Config.
func Load() Config {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	return Config{
		Addr:           getEnv("APP_ADDR", ":8080"),
		DBPath:         getEnv("DB_PATH", "biblioteca.db"),
		CSVPath:        getEnv("CSV_PATH", "biblioteca.csv"),
		APIKey:         getEnv("APP_SECRET_KEY", "desarrollo"),
		AllowedOrigins: splitList(os.Getenv("ALLOWED_ORIGINS")),
		RateRPS:        getEnvFloat("RATE_RPS", 20),
		RateBurst:      getEnvInt("RATE_BURST", 40),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
