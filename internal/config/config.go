// Package config loads application configuration from an optional YAML
// file and HANZIDECK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the runtime configuration. Everything has a sensible
// default; the config file is optional.
type Config struct {
	DBPath      string `mapstructure:"db_path"`      // SQLite database file, empty = XDG default
	LogPath     string `mapstructure:"log_path"`     // log file, empty = next to the database
	DefaultMode string `mapstructure:"default_mode"` // pre-selected quiz mode: english or pinyin
}

// Load reads configuration from $XDG_CONFIG_HOME/hanzideck/config.yaml
// (falling back to ~/.config) and the environment. A missing file is not
// an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir := configDir(); dir != "" {
		v.AddConfigPath(dir)
	}

	v.SetDefault("db_path", "")
	v.SetDefault("log_path", "")
	v.SetDefault("default_mode", "")

	v.SetEnvPrefix("hanzideck")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("db_path", "HANZIDECK_DB")
	_ = v.BindEnv("log_path", "HANZIDECK_LOG")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	switch cfg.DefaultMode {
	case "", "english", "pinyin":
	default:
		return nil, fmt.Errorf("invalid default_mode %q (want english or pinyin)", cfg.DefaultMode)
	}

	return &cfg, nil
}

func configDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "hanzideck")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "hanzideck")
}
