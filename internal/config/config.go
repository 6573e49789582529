package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds demo application configuration.
type Config struct {
	Database DatabaseConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme    string
	PageSize int `mapstructure:"page_size"`
}

// Load reads configuration from file and env. Env var overrides use prefix GREENROOM_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "greenroom", "greenroom.db"))
	v.SetDefault("ui.theme", "dark")
	v.SetDefault("ui.page_size", 20)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("GREENROOM_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "greenroom"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("GREENROOM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed. Used by the settings sheet for non-sensitive preferences.
func Save(cfg Config) error {
	path := os.Getenv("GREENROOM_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "greenroom", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("ui.theme", cfg.UI.Theme)
	v.Set("ui.page_size", cfg.UI.PageSize)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
