// Package config loads the tool's settings from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings shared by the CLI and the MCP server.
type Config struct {
	BackendURL         string
	DBPath             string
	Sensitivity        string
	TextField          string
	WordCloudSize      int
	HTTPTimeoutSeconds int
	CacheSize          int
	LogLevel           string
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		BackendURL:         getEnv("TOPICS_BACKEND_URL", "http://127.0.0.1:8000"),
		DBPath:             getEnv("TOPICS_DB_PATH", defaultDBPath()),
		Sensitivity:        getEnv("TOPICS_SENSITIVITY", "medium"),
		TextField:          getEnv("TOPICS_TEXT_FIELD", "original"),
		WordCloudSize:      getEnvInt("TOPICS_WORDCLOUD_SIZE", 50),
		HTTPTimeoutSeconds: getEnvInt("TOPICS_HTTP_TIMEOUT_SECONDS", 30),
		CacheSize:          getEnvInt("TOPICS_CACHE_SIZE", 16),
		LogLevel:           getEnv("TOPICS_LOG_LEVEL", "info"),
	}

	if cfg.HTTPTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("TOPICS_HTTP_TIMEOUT_SECONDS must be positive")
	}
	if cfg.CacheSize <= 0 {
		return nil, fmt.Errorf("TOPICS_CACHE_SIZE must be positive")
	}
	return cfg, nil
}

// defaultDBPath is where the desktop app keeps its transcript database.
func defaultDBPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".intervju-transkribering", "transkript.sqlite")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
