package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	Follwit  FollwitConfig  `mapstructure:"follwit"`
	Radarr   RadarrConfig   `mapstructure:"radarr"`
	Tautulli TautulliConfig `mapstructure:"tautulli"`
	Sync     SyncConfig     `mapstructure:"sync"`
	Filter   FilterConfig   `mapstructure:"filter"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Update   UpdateConfig   `mapstructure:"update"`
}

// FollwitConfig holds the follw.it API connection and account details
type FollwitConfig struct {
	APIKey   string        `mapstructure:"api_key"`
	BaseURL  string        `mapstructure:"base_url"`
	Username string        `mapstructure:"username"`
	Password string        `mapstructure:"password"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// RadarrConfig holds Radarr API connection details
type RadarrConfig struct {
	URL    string `mapstructure:"url"`
	APIKey string `mapstructure:"api_key"`
}

// TautulliConfig holds Tautulli API connection details and the watched threshold
type TautulliConfig struct {
	URL             string  `mapstructure:"url"`
	APIKey          string  `mapstructure:"api_key"`
	User            string  `mapstructure:"user"`
	MinWatchPercent float64 `mapstructure:"min_watch_percent"`
}

// SyncConfig controls how the sync commands push items into follw.it
type SyncConfig struct {
	Action         string  `mapstructure:"action"`
	Concurrency    int     `mapstructure:"concurrency"`
	RateLimit      float64 `mapstructure:"rate_limit"`
	InsertInStream bool    `mapstructure:"insert_in_stream"`
}

// FilterConfig contains named filter expressions usable with --preset
type FilterConfig struct {
	Presets map[string]string `mapstructure:"presets"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Color      bool   `mapstructure:"color"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// UpdateConfig points self-update at the release repository
type UpdateConfig struct {
	Repository string `mapstructure:"repository"`
}
