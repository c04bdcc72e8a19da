package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailblocks/pkg/config"
)

type testConfig struct {
	Host string `env:"MAILBLOCKS_TEST_HOST" envDefault:"localhost"`
	Port int    `env:"MAILBLOCKS_TEST_PORT" envDefault:"6379"`
}

type requiredConfig struct {
	Token string `env:"MAILBLOCKS_TEST_REQUIRED_TOKEN,required"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults apply when env is unset", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 6379, cfg.Port)
	})

	t.Run("env values override defaults", func(t *testing.T) {
		t.Setenv("MAILBLOCKS_TEST_HOST", "redis.internal")
		t.Setenv("MAILBLOCKS_TEST_PORT", "6380")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "redis.internal", cfg.Host)
		assert.Equal(t, 6380, cfg.Port)
	})

	t.Run("missing required variable fails", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		err := config.Load[testConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})

	t.Run("malformed value fails", func(t *testing.T) {
		t.Setenv("MAILBLOCKS_TEST_PORT", "not-a-number")

		var cfg testConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		assert.Panics(t, func() {
			var cfg requiredConfig
			config.MustLoad(&cfg)
		})
	})

	t.Run("succeeds with defaults", func(t *testing.T) {
		assert.NotPanics(t, func() {
			var cfg testConfig
			config.MustLoad(&cfg)
		})
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("missing file is an error", func(t *testing.T) {
		err := config.LoadEnv("testdata/does-not-exist.env")
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}
