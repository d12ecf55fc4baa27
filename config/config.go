package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	appDir            = ".marquee"
	envPrefix         = "MARQUEE"
	defaultCatalogURL = "http://localhost:8000/"
)

// Load loads the configuration from file. Without an explicit path a missing
// config file is not an error; defaults and MARQUEE_ environment variables apply.
func Load(configPath string) (*Config, error) {
	return LoadFs(afero.NewOsFs(), configPath)
}

// LoadFs is Load reading from fs
func LoadFs(fs afero.Fs, configPath string) (*Config, error) {
	v := viper.New()
	v.SetFs(fs)

	home, _ := os.UserHomeDir()

	// Set default values
	setDefaults(v, home)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home != "" {
			v.AddConfigPath(filepath.Join(home, appDir))
		}

		// Check /etc
		v.AddConfigPath("/etc/marquee/")
	}

	// Read config file
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

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper, home string) {
	// Catalog defaults
	v.SetDefault("catalog.url", defaultCatalogURL)
	v.SetDefault("catalog.timeout", "30s")
	v.SetDefault("catalog.user_agent", "marquee")

	// UI defaults
	settingsFile := filepath.Join(appDir, "settings.json")
	if home != "" {
		settingsFile = filepath.Join(home, appDir, "settings.json")
	}
	v.SetDefault("ui.settings_file", settingsFile)
	v.SetDefault("ui.lookahead_rows", 1)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
	v.SetDefault("logging.file", "")
	v.SetDefault("logging.max_size_mb", 10)
	v.SetDefault("logging.max_backups", 3)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Catalog.URL == "" {
		return fmt.Errorf("catalog.url is required")
	}

	u, err := url.Parse(cfg.Catalog.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("catalog.url must be an absolute http(s) URL: %s", cfg.Catalog.URL)
	}

	if cfg.Catalog.Timeout < 0 {
		return fmt.Errorf("catalog.timeout must not be negative")
	}

	if cfg.UI.LookaheadRows < 0 {
		return fmt.Errorf("ui.lookahead_rows must not be negative")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	if cfg.Logging.File != "" && (cfg.Logging.MaxSizeMB <= 0 || cfg.Logging.MaxBackups < 0) {
		return fmt.Errorf("logging.max_size_mb must be positive and logging.max_backups not negative")
	}

	return nil
}
