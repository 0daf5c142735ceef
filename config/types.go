package config

import "time"

// Config represents the application configuration structure
type Config struct {
	ClientName          string        `yaml:"client-name" env:"CLIENT_NAME"`                     // Value of the client tag that selects the fleet
	TagKey              string        `yaml:"tag-key" env:"CLIENT_TAG_KEY"`                      // Tag key holding the client name (Client unless overridden)
	Region              string        `yaml:"region" env:"AWS_REGION"`                           // AWS region, the SDK default chain is used when empty
	DryRun              bool          `yaml:"dry-run" env:"DRY_RUN"`                             // Send EC2 requests with DryRun set, nothing changes state
	SuspendASGProcesses bool          `yaml:"suspend-asg-processes" env:"SUSPEND_ASG_PROCESSES"` // Pause group health replacement while the fleet is stopped
	RunningTimeout      time.Duration `yaml:"running-timeout" env:"RUNNING_TIMEOUT"`             // How long a guarded start waits for running before resuming groups
	Log                 LogConfig     `yaml:"log"`
}

// LogConfig controls the process logger
type LogConfig struct {
	Format string `yaml:"format" env:"LOG_FORMAT"` // console or json
	Level  string `yaml:"level" env:"LOG_LEVEL"`   // zerolog level name
}
