package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration values.
type Config struct {
	HTTPPort    string
	CatalogPath string
	Environment string
}

// Load reads configuration from the environment (optionally a .env file) with
// reasonable defaults.
func Load() Config {
	_ = godotenv.Load()

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	// Validate that port is numeric.
	if _, err := strconv.Atoi(port); err != nil {
		log.Printf("invalid HTTP_PORT value %q, defaulting to 8080", port)
		port = "8080"
	}

	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	return Config{
		HTTPPort:    port,
		CatalogPath: os.Getenv("CATALOG_CSV"),
		Environment: env,
	}
}
