package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CatalogConfig holds catalog API connection details
type CatalogConfig struct {
	URL       string        `mapstructure:"url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// UIConfig contains terminal UI settings
type UIConfig struct {
	// SettingsFile stores client preferences such as the theme
	SettingsFile string `mapstructure:"settings_file"`
	// LookaheadRows is how close to the last grid row the cursor gets before more results load
	LookaheadRows int `mapstructure:"lookahead_rows"`
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
