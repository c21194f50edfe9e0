package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Port        string
	DatabaseDSN string
	Env         string
	StaticDir   string
	UpdatesDir  string
}

// Load loads configuration from environment with sensible defaults.
// Precedence: explicit env var > .env file (if loaded by caller) > default.
// The default port matches the one the packaged desktop shell expects.
func Load() Config {
	cfg := Config{}
	cfg.Port = getEnv("PORT", "3001")
	cfg.DatabaseDSN = getEnv("DATABASE_DSN", "data/contratos.db")
	cfg.Env = getEnv("APP_ENV", "development")
	cfg.StaticDir = getEnv("STATIC_DIR", "dist")
	cfg.UpdatesDir = getEnv("UPDATES_DIR", "updates")
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// ParseBool reads an env var as bool with default.
func ParseBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %s", key, v)
			return def
		}
		return b
	}
	return def
}
