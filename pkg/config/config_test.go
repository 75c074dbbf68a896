package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"DATABASE_URL", "PORT", "ENVIRONMENT", "ALLOWED_ORIGINS", "SEED_DATA", "LOG_LEVEL", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	// Keep a stray .env in the working directory from leaking in
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DefaultDatabaseURL, cfg.DatabaseURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, []string{"http://localhost:8081"}, cfg.AllowedOrigins)
	assert.True(t, cfg.SeedData)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://user:pass@db:5432/paralympics?sslmode=disable")
	t.Setenv("PORT", "9000")
	t.Setenv("ALLOWED_ORIGINS", "http://a.example,http://b.example")
	t.Setenv("SEED_DATA", "false")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://user:pass@db:5432/paralympics?sslmode=disable", cfg.DatabaseURL)
	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.AllowedOrigins)
	assert.False(t, cfg.SeedData)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestLoadConfigEnvFile(t *testing.T) {
	t.Setenv("PORT", "")
	os.Unsetenv("PORT")
	t.Setenv("LOG_LEVEL", "warn")

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=7070\nLOG_LEVEL=debug\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Port)
	// Variables already present in the environment are not overridden
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfigMissingEnvFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:   "development with sqlite",
			config: Config{DatabaseURL: DefaultDatabaseURL, Port: "8080", Environment: "development", ShutdownTimeout: time.Second},
		},
		{
			name:   "production with postgres",
			config: Config{DatabaseURL: "postgres://localhost/paralympics", Port: "8080", Environment: "production", ShutdownTimeout: time.Second},
		},
		{
			name:    "production with sqlite",
			config:  Config{DatabaseURL: DefaultDatabaseURL, Port: "8080", Environment: "production", ShutdownTimeout: time.Second},
			wantErr: true,
		},
		{
			name:    "missing database url",
			config:  Config{Port: "8080", ShutdownTimeout: time.Second},
			wantErr: true,
		},
		{
			name:    "missing port",
			config:  Config{DatabaseURL: DefaultDatabaseURL, ShutdownTimeout: time.Second},
			wantErr: true,
		},
		{
			name:    "zero shutdown timeout",
			config:  Config{DatabaseURL: DefaultDatabaseURL, Port: "8080"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
