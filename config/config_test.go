package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnv = []string{
	"CLIENT_NAME", "CLIENT_TAG_KEY", "AWS_REGION", "DRY_RUN",
	"SUSPEND_ASG_PROCESSES", "RUNNING_TIMEOUT", "LOG_FORMAT", "LOG_LEVEL", ConfigFileEnv,
}

// clearEnv blanks every variable Load reads; empty values are ignored by the env overlay
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnv {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// TestLoad_EnvOnly verifies the CLIENT_NAME-only setup used by the Lambda functions
func TestLoad_EnvOnly(t *testing.T) {
	clearEnv(t)
	t.Setenv("CLIENT_NAME", "acme")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "acme", cfg.ClientName)
	assert.Equal(t, DefaultTagKey, cfg.TagKey)
	assert.Equal(t, DefaultLogFormat, cfg.Log.Format)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.False(t, cfg.DryRun)
	assert.False(t, cfg.SuspendASGProcesses)
	assert.Equal(t, DefaultRunningTimeout, cfg.RunningTimeout)
	assert.NoError(t, cfg.Validate())
}

// TestLoad_FileWithEnvOverride verifies environment variables take precedence over the YAML file
func TestLoad_FileWithEnvOverride(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
client-name: from-file
tag-key: Customer
region: eu-west-1
dry-run: true
suspend-asg-processes: true
running-timeout: 2m
log:
  format: json
  level: debug
`)
	t.Setenv("CLIENT_NAME", "from-env")
	t.Setenv("RUNNING_TIMEOUT", "90s")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.ClientName)
	assert.Equal(t, "Customer", cfg.TagKey)
	assert.Equal(t, "eu-west-1", cfg.Region)
	assert.True(t, cfg.DryRun)
	assert.True(t, cfg.SuspendASGProcesses)
	assert.Equal(t, 90*time.Second, cfg.RunningTimeout)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
}

// TestLoad_ConfigFileEnv verifies CONFIG_FILE is used when no explicit path is given
func TestLoad_ConfigFileEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(ConfigFileEnv, writeConfig(t, "client-name: acme\n"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "acme", cfg.ClientName)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open config file")

	_, err = Load(writeConfig(t, "client-name: [unclosed\n"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode config")

	t.Setenv("DRY_RUN", "maybe")
	_, err = Load("")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse environment")
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{TagKey: "Client", Log: LogConfig{Format: "console", Level: "info"}}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "empty client name is allowed", mutate: func(c *Config) { c.ClientName = "" }},
		{name: "json format", mutate: func(c *Config) { c.Log.Format = "json" }},
		{name: "missing tag key", mutate: func(c *Config) { c.TagKey = "" }, wantErr: "tag-key is required"},
		{name: "unknown format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: "log.format"},
		{name: "negative running timeout", mutate: func(c *Config) { c.RunningTimeout = -time.Second }, wantErr: "running-timeout"},
		{name: "unknown level", mutate: func(c *Config) { c.Log.Level = "loud" }, wantErr: "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// TestPrintConfiguration_EmptyClient verifies a warning is logged when the tag value is empty
func TestPrintConfiguration_EmptyClient(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	PrintConfiguration(logger, &Config{TagKey: "Client"}, "0.1.0", "abc123")

	out := buf.String()
	assert.Contains(t, out, `"version":"0.1.0"`)
	assert.Contains(t, out, "(sdk default)")
	assert.Contains(t, out, "CLIENT_NAME is empty")
}
