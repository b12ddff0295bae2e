package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// Sync actions accepted by sync.action.
const (
	ActionCollect   = "collect"
	ActionUncollect = "uncollect"
	ActionWatched   = "watched"
	ActionUnwatched = "unwatched"
)

// MaxConcurrency caps sync.concurrency.
const MaxConcurrency = 20

const envPrefix = "FOLLWIT"

// Load loads the configuration from file and FOLLWIT_* environment variables.
// Without an explicit path a missing config file is not an error, so the CLI can run
// from the environment alone.
func Load(configPath string) (*Config, error) {
	cfg, err := LoadUnvalidated(configPath)
	if err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// LoadUnvalidated reads the configuration like Load without validating it, for
// commands that do not talk to follw.it.
func LoadUnvalidated(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".follwit"))
		}
		v.AddConfigPath("/etc/follwit/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values. Every key gets a default so that
// AutomaticEnv can override it during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("follwit.api_key", "")
	v.SetDefault("follwit.base_url", "http://follw.it/api/3")
	v.SetDefault("follwit.username", "")
	v.SetDefault("follwit.password", "")
	v.SetDefault("follwit.timeout", "30s")

	v.SetDefault("radarr.url", "http://localhost:7878")
	v.SetDefault("radarr.api_key", "")

	v.SetDefault("tautulli.url", "http://localhost:8181")
	v.SetDefault("tautulli.api_key", "")
	v.SetDefault("tautulli.user", "")
	v.SetDefault("tautulli.min_watch_percent", 85.0)

	v.SetDefault("sync.action", ActionCollect)
	v.SetDefault("sync.concurrency", 4)
	v.SetDefault("sync.rate_limit", 2.0)
	v.SetDefault("sync.insert_in_stream", false)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
	v.SetDefault("logging.file", "")
	v.SetDefault("logging.max_size_mb", 10)
	v.SetDefault("logging.max_backups", 5)

	v.SetDefault("update.repository", "s0up4200/follwit")
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Follwit.APIKey == "" || cfg.Follwit.APIKey == "your-api-key-here" {
		return fmt.Errorf("follwit.api_key must be set to a valid API key")
	}

	if u, err := url.Parse(cfg.Follwit.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid follwit.base_url: %s", cfg.Follwit.BaseURL)
	}

	if cfg.Follwit.Timeout < 0 {
		return fmt.Errorf("follwit.timeout must not be negative")
	}

	validActions := []string{ActionCollect, ActionUncollect, ActionWatched, ActionUnwatched}
	if !slices.Contains(validActions, cfg.Sync.Action) {
		return fmt.Errorf("invalid sync.action: %s (must be one of %s)", cfg.Sync.Action, strings.Join(validActions, ", "))
	}

	if cfg.Sync.Concurrency < 1 || cfg.Sync.Concurrency > MaxConcurrency {
		return fmt.Errorf("sync.concurrency must be between 1 and %d", MaxConcurrency)
	}

	if cfg.Sync.RateLimit <= 0 {
		return fmt.Errorf("sync.rate_limit must be positive")
	}

	if cfg.Tautulli.MinWatchPercent < 0 || cfg.Tautulli.MinWatchPercent > 100 {
		return fmt.Errorf("tautulli.min_watch_percent must be between 0 and 100")
	}

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
