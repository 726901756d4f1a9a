package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// Values are read from app.env in the config directory and overridden by environment variables.
type Config struct {
	ServerAddress   string        `mapstructure:"SERVER_ADDRESS"`
	GinMode         string        `mapstructure:"GIN_MODE"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	LogFormat       string        `mapstructure:"LOG_FORMAT"`

	DBSource      string `mapstructure:"DB_SOURCE"`
	PatternsTable string `mapstructure:"PATTERNS_TABLE"`

	MapCenterLat      float64 `mapstructure:"MAP_CENTER_LAT"`
	MapCenterLon      float64 `mapstructure:"MAP_CENTER_LON"`
	MapZoom           int     `mapstructure:"MAP_ZOOM"`
	MapFocusZoom      int     `mapstructure:"MAP_FOCUS_ZOOM"`
	MapMaxZoom        int     `mapstructure:"MAP_MAX_ZOOM"`
	MapTileURL        string  `mapstructure:"MAP_TILE_URL"`
	MapTileSubdomains string  `mapstructure:"MAP_TILE_SUBDOMAINS"`
	MapAttribution    string  `mapstructure:"MAP_ATTRIBUTION"`
	ImageBasePath     string  `mapstructure:"IMAGE_BASE_PATH"`
}

var defaults = map[string]any{
	"SERVER_ADDRESS":      "0.0.0.0:8080",
	"GIN_MODE":            "release",
	"SHUTDOWN_TIMEOUT":    "10s",
	"LOG_LEVEL":           "info",
	"LOG_FORMAT":          "json",
	"DB_SOURCE":           "",
	"PATTERNS_TABLE":      "patterns",
	"MAP_CENTER_LAT":      30.0,
	"MAP_CENTER_LON":      50.0,
	"MAP_ZOOM":            3,
	"MAP_FOCUS_ZOOM":      6,
	"MAP_MAX_ZOOM":        20,
	"MAP_TILE_URL":        "https://{s}.basemaps.cartocdn.com/light_all/{z}/{x}/{y}{r}.png",
	"MAP_TILE_SUBDOMAINS": "abcd",
	"MAP_ATTRIBUTION":     `© <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors, © <a href="https://carto.com/attributions">CARTO</a>`,
	"IMAGE_BASE_PATH":     "Images/",
}

// LoadConfig reads configuration from path/app.env, if present, and the environment.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: failed to read config file: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: failed to decode config: %w", err)
	}

	err = config.Validate()
	return config, err
}

// Validate checks the settings that have no safe fallback.
func (c Config) Validate() error {
	if c.ServerAddress == "" {
		return errors.New("config: SERVER_ADDRESS is required")
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("config: unknown GIN_MODE %q", c.GinMode)
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("config: SHUTDOWN_TIMEOUT must be positive")
	}
	if c.MapZoom < 0 || c.MapMaxZoom < c.MapZoom || c.MapFocusZoom > c.MapMaxZoom {
		return fmt.Errorf("config: inconsistent map zoom levels: zoom=%d focus=%d max=%d", c.MapZoom, c.MapFocusZoom, c.MapMaxZoom)
	}
	return nil
}
