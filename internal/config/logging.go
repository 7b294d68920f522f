package config

// LogConfig controls log level, output format and optional rotated file output.
type LogConfig struct {
	Level      string
	Format     string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

func loadLog() LogConfig {
	return LogConfig{
		Level:      envOrDefault(envLogLevel, defaultLogLevel),
		Format:     envOrDefault(envLogFormat, defaultLogFormat),
		File:       envOrDefault(envLogFile, ""),
		MaxSizeMB:  intEnvOrDefault(envLogMaxSize, defaultLogMaxSize),
		MaxBackups: intEnvOrDefault(envLogBackups, defaultLogBackups),
		MaxAgeDays: intEnvOrDefault(envLogMaxAge, defaultLogMaxAge),
	}
}
