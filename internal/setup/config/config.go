package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

var (
	ErrConfigFileNotFound    = errors.New("could not find config file in any config path")
	ErrConfigVersionMissing  = errors.New("config file is missing version field")
	ErrConfigVersionMismatch = errors.New("config file version mismatch")
)

// Current version of the config file.
const (
	CurrentCommonVersion = 1
	CurrentWorkerVersion = 1
)

// Config represents the entire application configuration.
type Config struct {
	Common CommonConfig
	Worker WorkerConfig
}

// CommonConfig contains configuration shared between all binaries.
type CommonConfig struct {
	// Version of the common config.
	Version    int        `koanf:"version"`
	Debug      Debug      `koanf:"debug"`
	PostgreSQL PostgreSQL `koanf:"postgresql"`
	Redis      Redis      `koanf:"redis"`
	Moderation Moderation `koanf:"moderation"`
}

// WorkerConfig contains expiry worker specific configuration.
type WorkerConfig struct {
	// Version of the worker config.
	Version int `koanf:"version"`
	// Sweep interval in seconds between expiry passes.
	SweepInterval int `koanf:"sweep_interval"`
	// Maximum sanctions processed per expiry pass.
	BatchSize int `koanf:"batch_size"`
	// Concurrent expiry operations per pass.
	Concurrency int `koanf:"concurrency"`
	// Startup delay in milliseconds.
	StartupDelay int `koanf:"startup_delay"`
}

// Debug contains debug-related configuration.
type Debug struct {
	// Log level (debug, info, warn, error).
	LogLevel string `koanf:"log_level"`
	// Maximum log sessions to keep per service.
	MaxLogsToKeep int `koanf:"max_logs_to_keep"`
	// Maximum lines kept per log file before the file is trimmed.
	MaxLogLines int `koanf:"max_log_lines"`
}

// PostgreSQL contains database connection configuration.
type PostgreSQL struct {
	// Database hostname.
	Host string `koanf:"host"`
	// Database port.
	Port int `koanf:"port"`
	// Database username.
	User string `koanf:"user"`
	// Database password.
	Password string `koanf:"password"`
	// Database name.
	DBName string `koanf:"db_name"`
	// Maximum open connections.
	MaxOpenConns int `koanf:"max_open_conns"`
	// Maximum idle connections.
	MaxIdleConns int `koanf:"max_idle_conns"`
	// Connection lifetime in minutes.
	MaxLifetime int `koanf:"max_lifetime"`
	// Idle timeout in minutes.
	MaxIdleTime int `koanf:"max_idle_time"`
}

// Redis contains Redis connection configuration.
type Redis struct {
	// Redis hostname.
	Host string `koanf:"host"`
	// Redis port.
	Port int `koanf:"port"`
	// Redis username.
	Username string `koanf:"username"`
	// Redis password.
	Password string `koanf:"password"`
}

// Moderation contains the enforcement thresholds.
type Moderation struct {
	// Distinct reporters required before a content item is flagged
	// high priority in the queue.
	HighPriorityReporters int `koanf:"high_priority_reporters"`
	// Upper bound in days for moderator-issued suspensions.
	MaxSuspensionDays int `koanf:"max_suspension_days"`
	// Hard cap on queue and audit page sizes.
	MaxPageLimit int `koanf:"max_page_limit"`
}

// LoadConfig loads the configuration from the known search paths and returns
// it along with the directory the files were found in.
func LoadConfig() (*Config, string, error) {
	k := koanf.New(".")

	// Get user's home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get home directory: %w", err)
	}

	// List search paths
	configPaths := []string{
		".arbiter",
		homeDir + "/.arbiter/config",
		"/etc/arbiter/config",
		"/app/config",
		"config",
		".",
	}

	// Load all config files
	var usedConfigPath string

	configFiles := []string{"common", "worker"}
	for _, configName := range configFiles {
		configLoaded := false

		for _, path := range configPaths {
			configPath := fmt.Sprintf("%s/%s.toml", path, configName)
			if err := k.Load(file.Provider(configPath), toml.Parser()); err == nil {
				configLoaded = true

				if usedConfigPath == "" {
					usedConfigPath = path
				}

				break
			}
		}

		if !configLoaded {
			return nil, "", fmt.Errorf("%w: %s.toml", ErrConfigFileNotFound, configName)
		}
	}

	var config Config
	if err := k.Unmarshal("common", &config.Common); err != nil {
		return nil, "", fmt.Errorf("error unmarshaling common config: %w", err)
	}

	if err := k.Unmarshal("worker", &config.Worker); err != nil {
		return nil, "", fmt.Errorf("error unmarshaling worker config: %w", err)
	}

	// Check versions for each config file
	if err := checkConfigVersion("common", config.Common.Version, CurrentCommonVersion); err != nil {
		return nil, "", err
	}

	if err := checkConfigVersion("worker", config.Worker.Version, CurrentWorkerVersion); err != nil {
		return nil, "", err
	}

	applyDefaults(&config)

	return &config, usedConfigPath, nil
}

// checkConfigVersion validates one config file's version field.
func checkConfigVersion(name string, version, expected int) error {
	if version == 0 {
		return fmt.Errorf("%w: %s.toml", ErrConfigVersionMissing, name)
	}

	if version != expected {
		return fmt.Errorf("%w: %s.toml has version %d, expected %d",
			ErrConfigVersionMismatch, name, version, expected)
	}

	return nil
}

// applyDefaults fills thresholds that may be omitted from the config files.
func applyDefaults(config *Config) {
	if config.Common.Moderation.HighPriorityReporters == 0 {
		config.Common.Moderation.HighPriorityReporters = 5
	}

	if config.Common.Moderation.MaxSuspensionDays == 0 {
		config.Common.Moderation.MaxSuspensionDays = 30
	}

	if config.Common.Moderation.MaxPageLimit == 0 {
		config.Common.Moderation.MaxPageLimit = 100
	}

	if config.Common.Debug.LogLevel == "" {
		config.Common.Debug.LogLevel = "info"
	}

	if config.Common.Debug.MaxLogsToKeep == 0 {
		config.Common.Debug.MaxLogsToKeep = 10
	}

	if config.Common.Debug.MaxLogLines == 0 {
		config.Common.Debug.MaxLogLines = 5000
	}

	if config.Worker.SweepInterval == 0 {
		config.Worker.SweepInterval = 60
	}

	if config.Worker.BatchSize == 0 {
		config.Worker.BatchSize = 200
	}

	if config.Worker.Concurrency == 0 {
		config.Worker.Concurrency = 4
	}
}
