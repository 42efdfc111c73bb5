package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Load loads the configuration from file. API credentials may also come
// from the SKYETEL_SID and SKYETEL_SECRET environment variables.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".skyetel"))
		}

		// Check /etc
		v.AddConfigPath("/etc/skyetel/")
	}

	v.SetEnvPrefix("SKYETEL")
	v.AutomaticEnv()
	_ = v.BindEnv("skyetel.sid", "SKYETEL_SID")
	_ = v.BindEnv("skyetel.secret", "SKYETEL_SECRET")

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
		// No file is fine when credentials come from the environment.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// API defaults
	v.SetDefault("skyetel.base_url", "https://api.skyetel.com/v1")
	v.SetDefault("skyetel.timeout", 30*time.Second)

	// Rate limit defaults match the API's documented quota
	v.SetDefault("rate_limit.calls", 120)
	v.SetDefault("rate_limit.window", time.Minute)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// Validate checks if the configuration is valid
func Validate(cfg *Config) error {
	if cfg.Skyetel.SID == "" {
		return fmt.Errorf("skyetel.sid is required")
	}

	if cfg.Skyetel.Secret == "" || cfg.Skyetel.Secret == "your-auth-secret-here" {
		return fmt.Errorf("skyetel.secret must be set to a valid auth secret")
	}

	if cfg.RateLimit.Calls <= 0 || cfg.RateLimit.Window <= 0 {
		return fmt.Errorf("rate_limit.calls and rate_limit.window must be positive")
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

	return nil
}
