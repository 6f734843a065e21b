package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	t.Run("returns environment variable value when set", func(t *testing.T) {
		t.Setenv("TEST_CONFIG_VAR", "custom_value")

		result := getEnv("TEST_CONFIG_VAR", "default_value")

		assert.Equal(t, "custom_value", result)
	})

	t.Run("returns default value when env var not set", func(t *testing.T) {
		result := getEnv("NONEXISTENT_CONFIG_VAR_12345", "default_value")

		assert.Equal(t, "default_value", result)
	})

	t.Run("returns default value when env var is empty string", func(t *testing.T) {
		t.Setenv("EMPTY_CONFIG_VAR", "")

		result := getEnv("EMPTY_CONFIG_VAR", "default_value")

		assert.Equal(t, "default_value", result)
	})
}

func TestLoad(t *testing.T) {
	t.Run("loads config with all env vars set", func(t *testing.T) {
		t.Setenv("MONGO_URL", "mongodb://localhost:27017")
		t.Setenv("DB_NAME", "skillswap_test")
		t.Setenv("SERVER_PORT", "3000")
		t.Setenv("GIN_MODE", "release")

		cfg := Load()

		require.NotNil(t, cfg)
		assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURL)
		assert.Equal(t, "skillswap_test", cfg.Database)
		assert.Equal(t, "3000", cfg.ServerPort)
		assert.Equal(t, "release", cfg.GinMode)
	})

	t.Run("uses default values for optional env vars", func(t *testing.T) {
		t.Setenv("MONGO_URL", "mongodb://localhost:27017")
		t.Setenv("DB_NAME", "skillswap_test")

		cfg := Load()

		require.NotNil(t, cfg)
		assert.Equal(t, "8080", cfg.ServerPort)
		assert.Equal(t, "debug", cfg.GinMode)
	})
}
