package config

import (
	"strings"
	"time"
)

// CacheConfig selects the query cache store.
type CacheConfig struct {
	Backend   string
	RedisURL  string
	KeyPrefix string
}

// WarmConfig controls the background cache warmer.
type WarmConfig struct {
	Enabled  bool
	Interval time.Duration
}

func loadCache() CacheConfig {
	return CacheConfig{
		Backend:   strings.ToLower(envOrDefault(envCacheBackend, defaultCacheBackend)),
		RedisURL:  envOrDefault(envRedisURL, ""),
		KeyPrefix: envOrDefault(envCachePrefix, defaultCachePrefix),
	}
}

func loadWarm() WarmConfig {
	return WarmConfig{
		Enabled:  boolEnvOrDefault(envWarmEnabled, defaultWarmEnabled),
		Interval: durationEnvOrDefault(envWarmInterval, defaultWarmInterval),
	}
}
