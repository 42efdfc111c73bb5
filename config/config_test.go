package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Skyetel: SkyetelConfig{
			SID:     "test-sid",
			Secret:  "test-secret",
			BaseURL: "https://api.skyetel.com/v1",
			Timeout: 30 * time.Second,
		},
		RateLimit: RateLimitConfig{Calls: 120, Window: time.Minute},
		Logging:   LoggingConfig{Level: "info", Format: "console", Color: true},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{
			name:    "missing sid",
			mutate:  func(c *Config) { c.Skyetel.SID = "" },
			wantErr: "skyetel.sid is required",
		},
		{
			name:    "missing secret",
			mutate:  func(c *Config) { c.Skyetel.Secret = "" },
			wantErr: "skyetel.secret",
		},
		{
			name:    "placeholder secret",
			mutate:  func(c *Config) { c.Skyetel.Secret = "your-auth-secret-here" },
			wantErr: "skyetel.secret",
		},
		{
			name:    "zero rate limit",
			mutate:  func(c *Config) { c.RateLimit.Calls = 0 },
			wantErr: "rate_limit",
		},
		{
			name:    "bad level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "invalid logging level",
		},
		{
			name:    "bad format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "invalid logging format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
skyetel:
  sid: file-sid
  secret: file-secret
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file-sid", cfg.Skyetel.SID)
	assert.Equal(t, "file-secret", cfg.Skyetel.Secret)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Defaults fill in everything the file omits.
	assert.Equal(t, "https://api.skyetel.com/v1", cfg.Skyetel.BaseURL)
	assert.Equal(t, 120, cfg.RateLimit.Calls)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SKYETEL_SID", "env-sid")
	t.Setenv("SKYETEL_SECRET", "env-secret")

	// Point at an empty directory so no config file is found.
	oldWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(oldWD) })

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "env-sid", cfg.Skyetel.SID)
	assert.Equal(t, "env-secret", cfg.Skyetel.Secret)
}

func TestLoadMissingCredentials(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: info\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
