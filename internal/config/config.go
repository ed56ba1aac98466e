package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents user defaults for the calendar
type Config struct {
	FirstWeekday int       `mapstructure:"first_weekday"` // 0 = Sunday ... 6 = Saturday
	Columns      int       `mapstructure:"columns"`       // 0 = derive from terminal width
	Color        string    `mapstructure:"color"`         // "auto", "always" or "never"
	Spillover    bool      `mapstructure:"spillover"`     // dim neighbouring days in single-month view
	Log          LogConfig `mapstructure:"log"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		FirstWeekday: 0,
		Columns:      0,
		Color:        ColorAuto,
		Spillover:    true,
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load loads configuration from file. A missing file is not an error when
// configPath is empty; the defaults and CAL_* environment variables apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("first_weekday", def.FirstWeekday)
	v.SetDefault("columns", def.Columns)
	v.SetDefault("color", def.Color)
	v.SetDefault("spillover", def.Spillover)
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("log.level", def.Log.Level)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.config/cal")
		v.AddConfigPath("$HOME/.cal")
	}

	// Read environment variables
	v.SetEnvPrefix("cal")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.FirstWeekday < 0 || c.FirstWeekday > 6 {
		return fmt.Errorf("first_weekday must be between 0 and 6, got %d", c.FirstWeekday)
	}
	if c.Columns < 0 {
		return fmt.Errorf("columns must not be negative, got %d", c.Columns)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be 'auto', 'always' or 'never', got '%s'", c.Color)
	}
	return nil
}
