package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/shuliakovsky/ec2-power-switch/utils"
)

const (
	DefaultTagKey    = "Client"
	DefaultLogFormat = utils.FormatConsole
	DefaultLogLevel  = "info"

	DefaultRunningTimeout = 5 * time.Minute

	// ConfigFileEnv names the variable that points at an optional YAML file
	ConfigFileEnv = "CONFIG_FILE"
)

// Load builds the configuration from an optional YAML file overlaid with environment variables.
// An empty path falls back to CONFIG_FILE; with neither set only the environment is used.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = os.Getenv(ConfigFileEnv)
	}

	var cfg Config
	if configPath != "" {
		if err := loadFile(configPath, &cfg); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	setDefaults(&cfg)
	return &cfg, nil
}

func loadFile(configPath string, cfg *Config) error {
	file, err := os.Open(configPath)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(cfg); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}
	return nil
}

func setDefaults(cfg *Config) {
	if cfg.TagKey == "" {
		cfg.TagKey = DefaultTagKey
	}
	if cfg.RunningTimeout == 0 {
		cfg.RunningTimeout = DefaultRunningTimeout
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
}

// Validate validates the configuration.
// An empty client name is allowed: the filter then matches no instance.
func (c *Config) Validate() error {
	if c.TagKey == "" {
		return errors.New("tag-key is required")
	}

	if c.RunningTimeout < 0 {
		return fmt.Errorf("running-timeout must not be negative, got %s", c.RunningTimeout)
	}

	switch c.Log.Format {
	case utils.FormatConsole, utils.FormatJSON:
	default:
		return fmt.Errorf("log.format must be %q or %q, got %q", utils.FormatConsole, utils.FormatJSON, c.Log.Format)
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	return nil
}

// PrintConfiguration logs the effective configuration at debug level
func PrintConfiguration(logger zerolog.Logger, cfg *Config, version string, commitHash string) {
	region := cfg.Region
	if region == "" {
		region = "(sdk default)"
	}

	logger.Debug().
		Str("version", version).
		Str("commit", commitHash).
		Str("client_name", cfg.ClientName).
		Str("tag_key", cfg.TagKey).
		Str("region", region).
		Bool("dry_run", cfg.DryRun).
		Bool("suspend_asg_processes", cfg.SuspendASGProcesses).
		Dur("running_timeout", cfg.RunningTimeout).
		Msg("ec2-power-switch configuration")

	if cfg.ClientName == "" {
		logger.Warn().Msg("CLIENT_NAME is empty, no instance will match the tag filter")
	}
}
