package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	Skyetel   SkyetelConfig   `mapstructure:"skyetel"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Filter    FilterConfig    `mapstructure:"filter"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// SkyetelConfig holds the Skyetel API credentials and endpoint
type SkyetelConfig struct {
	SID     string        `mapstructure:"sid"`
	Secret  string        `mapstructure:"secret"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// RateLimitConfig caps the request rate against the API
type RateLimitConfig struct {
	Calls  int           `mapstructure:"calls"`
	Window time.Duration `mapstructure:"window"`
}

// FilterConfig contains named filter expressions
type FilterConfig map[string]string

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
