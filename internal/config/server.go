package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// ServerConfig holds configuration for the HTTP server process.
type ServerConfig struct {
	Addr           string
	DatabasePath   string
	AllowedOrigins []string
}

// LoadServer reads server configuration from environment variables,
// loading a .env file first when one exists.
func LoadServer() (*ServerConfig, error) {
	// Missing .env is fine; env vars alone are enough.
	_ = godotenv.Load()

	host := getEnv("SERVER_HOST", "localhost")
	port := getEnv("SERVER_PORT", "5080")

	cfg := &ServerConfig{
		Addr:         fmt.Sprintf("%s:%s", host, port),
		DatabasePath: getEnv("DB_PATH", "./data/tsp_simulator.db"),
		AllowedOrigins: strings.Split(
			getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"), ","),
	}
	return cfg, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
