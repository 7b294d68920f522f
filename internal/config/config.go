package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port       string
	Provider   string
	AdminToken string
	Backend    BackendConfig
	Cache      CacheConfig
	Warm       WarmConfig
	Log        LogConfig
	Metrics    MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:       envOrDefault(envPort, defaultPort),
		Provider:   strings.ToLower(envOrDefault(envProvider, defaultProvider)),
		AdminToken: envOrDefault(envAdminToken, ""),
		Backend:    loadBackend(),
		Cache:      loadCache(),
		Warm:       loadWarm(),
		Log:        loadLog(),
		Metrics:    loadMetrics(),
	}
}

// LoadDotEnv reads variables from the given files (default .env) into the process
// environment without overriding ones already set. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
