// Package config reads environment-driven settings, with a .env file picked
// up automatically when present.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings for the service.
type Config struct {
	Addr     string
	DataDir  string
	LogLevel string
	Env      string
}

// Load reads configuration from the environment. Every value has a default;
// a missing .env file is not an error.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:     getenv("BLOG_ADDR", ":8080"),
		DataDir:  getenv("BLOG_DATA_DIR", "data/badger"),
		LogLevel: getenv("LOG_LEVEL", "info"),
		Env:      getenv("ENV", "production"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
