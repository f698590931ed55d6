// Package config loads application-level settings for canopy consumers.
// The library itself is configured through functional options; this package
// gives binaries like the gallery a file/env layer on top.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Alerts AlertsConfig
	UI     UIConfig
}

// AlertsConfig holds alert queue settings.
type AlertsConfig struct {
	MaxVisible      int           `mapstructure:"max_visible"`
	DefaultDuration time.Duration `mapstructure:"default_duration"`
	StickyErrors    bool          `mapstructure:"sticky_errors"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	MaxAlertWidth int `mapstructure:"max_alert_width"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// CANOPY_, e.g. CANOPY_ALERTS_MAX_VISIBLE=3.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("alerts.max_visible", 5)
	v.SetDefault("alerts.default_duration", "5s")
	v.SetDefault("alerts.sticky_errors", true)
	v.SetDefault("ui.max_alert_width", 40)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("CANOPY_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "canopy"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CANOPY")
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
