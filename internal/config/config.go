// Package config loads application settings for the krypteia server.
package config

import "os"

// Config holds the server settings.
type Config struct {
	Port     string
	LogLevel string
}

// Load reads the configuration from environment variables.
func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "INFO"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
