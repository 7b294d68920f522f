package config

import "time"

const (
	envPort         = "PORT"
	envProvider     = "PROVIDER"
	envAPIBaseURL   = "KBO_API_BASE_URL"
	envAPITimeout   = "KBO_API_TIMEOUT"
	envCacheBackend = "CACHE_BACKEND"
	envRedisURL     = "REDIS_URL"
	envCachePrefix  = "CACHE_KEY_PREFIX"
	envWarmEnabled  = "WARM_ENABLED"
	envWarmInterval = "WARM_INTERVAL"
	envAdminToken   = "ADMIN_TOKEN"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"
	envLogFile      = "LOG_FILE"
	envLogMaxSize   = "LOG_FILE_MAX_SIZE_MB"
	envLogBackups   = "LOG_FILE_MAX_BACKUPS"
	envLogMaxAge    = "LOG_FILE_MAX_AGE_DAYS"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort         = "4000"
	defaultProvider     = ProviderKBO
	defaultAPIBaseURL   = "http://localhost:8080"
	defaultAPITimeout   = 10 * time.Second
	defaultCacheBackend = CacheBackendMemory
	defaultCachePrefix  = "kbo:query:"
	defaultWarmEnabled  = true
	defaultWarmInterval = time.Minute
	defaultLogLevel     = "info"
	defaultLogFormat    = "text"
	defaultLogMaxSize   = 50
	defaultLogBackups   = 5
	defaultLogMaxAge    = 14
	defaultMetricsPort  = "9090"
	defaultServiceName  = "kbo-stats-service"
)

// Provider names.
const (
	ProviderKBO     = "kbo"
	ProviderFixture = "fixture"
)

// Cache backends.
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)
