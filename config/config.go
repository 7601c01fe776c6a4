package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings for the service.
type Config struct {
	Addr   string
	DBPath string
}

// Load reads .env files and returns the resolved configuration.
// godotenv.Load does NOT overwrite already-set env vars, so OS env
// vars always win and .env.local wins over .env.
func Load() *Config {
	candidates := []string{".env.local", ".env"}
	var found []string
	for _, f := range candidates {
		if _, err := os.Stat(f); err == nil {
			found = append(found, f)
		}
	}
	if len(found) > 0 {
		_ = godotenv.Load(found...)
	}

	return &Config{
		Addr:   getEnv("PRESSROOM_ADDR", ":8080"),
		DBPath: getEnv("PRESSROOM_DB_PATH", "data/badger"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
