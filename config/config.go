// Package config loads service settings from the environment.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DatabasePath   string
	LogLevel       string
	LogFormat      string
	DefaultRegions string
	CORSOrigins    []string
}

// Load reads an optional .env file, then the WORKTIME_* variables.
// Variables already set in the environment win over the file.
func Load(files ...string) *Config {
	_ = godotenv.Load(files...)

	return &Config{
		Port:           getEnv("WORKTIME_PORT", "8080"),
		DatabasePath:   getEnv("WORKTIME_DB", "worktime.db"),
		LogLevel:       getEnv("WORKTIME_LOG_LEVEL", "info"),
		LogFormat:      getEnv("WORKTIME_LOG_FORMAT", "console"),
		DefaultRegions: getEnv("WORKTIME_DEFAULT_REGIONS", "de"),
		CORSOrigins:    splitList(getEnv("WORKTIME_CORS_ORIGINS", "")),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
