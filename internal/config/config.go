// Package config handles configuration loading and management for the
// PaiiD dashboard. It supports XDG config paths, project-level overrides,
// and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the dashboard.
type Config struct {
	API       APIConfig       `mapstructure:"api"`
	Poll      PollConfig      `mapstructure:"poll"`
	TUI       TUIConfig       `mapstructure:"tui"`
	AI        AIConfig        `mapstructure:"ai"`
	Log       LogConfig       `mapstructure:"log"`
	Workflows WorkflowsConfig `mapstructure:"workflows"`
}

// APIConfig holds proxy API settings.
type APIConfig struct {
	// BaseURL is the backend gateway all dashboard calls route through.
	BaseURL string `mapstructure:"base_url"`
	// Timeout bounds each HTTP request.
	Timeout time.Duration `mapstructure:"timeout"`
}

// PollConfig holds refresh cadences.
type PollConfig struct {
	// MarketInterval is the market snapshot poll cadence.
	MarketInterval time.Duration `mapstructure:"market_interval"`
	// MonitorInterval is the status-bar monitor poll cadence.
	MonitorInterval time.Duration `mapstructure:"monitor_interval"`
}

// TUIConfig holds TUI display settings.
type TUIConfig struct {
	RefreshRate time.Duration `mapstructure:"refresh_rate"`
}

// AIConfig holds AI chat settings.
type AIConfig struct {
	// Backend selects "proxy" (backend gateway) or "anthropic" (direct).
	Backend string `mapstructure:"backend"`
	// APIKey is the Anthropic API key for the direct backend.
	APIKey string `mapstructure:"api_key"`
	// UseAWSBedrock routes the direct backend through AWS Bedrock.
	UseAWSBedrock bool `mapstructure:"use_aws_bedrock"`
	// AWSRegion is the Bedrock region.
	AWSRegion string `mapstructure:"aws_region"`
	// AWSProfile is the optional AWS profile name.
	AWSProfile string `mapstructure:"aws_profile"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// WorkflowsConfig holds workflow registry settings.
type WorkflowsConfig struct {
	// OverridesPath points at an optional workflows.yaml override file.
	OverridesPath string `mapstructure:"overrides_path"`
}

// Load loads configuration from XDG paths, project overrides, and
// environment variables.
// Precedence (highest to lowest):
// 1. Environment variables (PAIID_API_BASE_URL, ANTHROPIC_API_KEY)
// 2. Project config (.paiid.yaml in current directory or parent)
// 3. User config (~/.config/paiid/config.yaml)
// 4. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	userConfigDir := getUserConfigDir()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(userConfigDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	projectConfig := findProjectConfig()
	if projectConfig != "" {
		projectViper := viper.New()
		projectViper.SetConfigFile(projectConfig)
		if err := projectViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(projectViper.AllSettings()); err != nil {
				return nil, fmt.Errorf("merging project config: %w", err)
			}
		}
	}

	v.AutomaticEnv()
	v.BindEnv("api.base_url", "PAIID_API_BASE_URL")
	v.BindEnv("ai.api_key", "ANTHROPIC_API_KEY")
	v.BindEnv("log.level", "PAIID_LOG_LEVEL")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.AI.APIKey = os.ExpandEnv(cfg.AI.APIKey)

	return cfg, nil
}

// LoadFromPath loads configuration from a specific path (for testing).
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.AI.APIKey = os.ExpandEnv(cfg.AI.APIKey)

	return cfg, nil
}

// Save writes the current configuration to the user config file.
func Save(cfg *Config) error {
	userConfigDir := getUserConfigDir()
	if err := os.MkdirAll(userConfigDir, 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	configPath := filepath.Join(userConfigDir, "config.yaml")

	v := viper.New()
	v.SetConfigFile(configPath)

	v.Set("api.base_url", cfg.API.BaseURL)
	v.Set("api.timeout", cfg.API.Timeout.String())
	v.Set("poll.market_interval", cfg.Poll.MarketInterval.String())
	v.Set("poll.monitor_interval", cfg.Poll.MonitorInterval.String())
	v.Set("tui.refresh_rate", cfg.TUI.RefreshRate.String())
	v.Set("ai.backend", cfg.AI.Backend)
	v.Set("ai.api_key", cfg.AI.APIKey)
	v.Set("ai.use_aws_bedrock", cfg.AI.UseAWSBedrock)
	v.Set("ai.aws_region", cfg.AI.AWSRegion)
	v.Set("ai.aws_profile", cfg.AI.AWSProfile)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)
	v.Set("workflows.overrides_path", cfg.Workflows.OverridesPath)

	return v.WriteConfig()
}

// GetUserConfigPath returns the path to the user config file.
func GetUserConfigPath() string {
	return filepath.Join(getUserConfigDir(), "config.yaml")
}

// GetProjectConfigPath returns the path to the project config file if it
// exists.
func GetProjectConfigPath() string {
	return findProjectConfig()
}

// setDefaults configures default values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "http://localhost:8080")
	v.SetDefault("api.timeout", "10s")

	v.SetDefault("poll.market_interval", "60s")
	v.SetDefault("poll.monitor_interval", "30s")

	v.SetDefault("tui.refresh_rate", "100ms")

	v.SetDefault("ai.backend", "proxy")
	v.SetDefault("ai.api_key", "")
	v.SetDefault("ai.use_aws_bedrock", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetDefault("workflows.overrides_path", "")
}

// getUserConfigDir returns the XDG config directory for the dashboard.
func getUserConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "paiid")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "paiid")
	}
	return filepath.Join(home, ".config", "paiid")
}

// findProjectConfig searches for .paiid.yaml in the current directory and
// parents.
func findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(cwd, ".paiid.yaml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			break
		}
		cwd = parent
	}

	return ""
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "http://localhost:8080",
			Timeout: 10 * time.Second,
		},
		Poll: PollConfig{
			MarketInterval:  60 * time.Second,
			MonitorInterval: 30 * time.Second,
		},
		TUI: TUIConfig{
			RefreshRate: 100 * time.Millisecond,
		},
		AI: AIConfig{
			Backend: "proxy",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
