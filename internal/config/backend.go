package config

import "time"

// BackendConfig controls how we talk to the KBO REST backend.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

func loadBackend() BackendConfig {
	return BackendConfig{
		BaseURL: envOrDefault(envAPIBaseURL, defaultAPIBaseURL),
		Timeout: durationEnvOrDefault(envAPITimeout, defaultAPITimeout),
	}
}
