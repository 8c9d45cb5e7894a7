package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mjmlkit/pkg/config"
)

type customEnvConfig struct {
	TestString    string   `env:"TEST_CUSTOM_STRING"`
	TestInt       int      `env:"TEST_CUSTOM_INT"`
	TestBool      bool     `env:"TEST_CUSTOM_BOOL"`
	TestArray     []string `env:"TEST_CUSTOM_ARRAY" envSeparator:","`
	TestWithQuote string   `env:"TEST_CUSTOM_WITH_QUOTES"`
	TestEmpty     string   `env:"TEST_CUSTOM_EMPTY"`
	TestDefault   string   `env:"TEST_CUSTOM_DEFAULT" envDefault:"default"`
}

type requiredEnvConfig struct {
	Required string `env:"TEST_CUSTOM_REQUIRED,required"`
}

func TestLoad(t *testing.T) {
	t.Run("single file", func(t *testing.T) {
		var cfg customEnvConfig
		require.NoError(t, config.Load(&cfg, "testdata/.env.custom"))

		assert.Equal(t, "custom_value", cfg.TestString)
		assert.Equal(t, 1234, cfg.TestInt)
		assert.True(t, cfg.TestBool)
		assert.Equal(t, []string{"item1", "item2", "item3"}, cfg.TestArray)
		assert.Equal(t, "quoted value", cfg.TestWithQuote)
		assert.Equal(t, "default", cfg.TestDefault)
	})

	t.Run("later files take precedence", func(t *testing.T) {
		var cfg customEnvConfig
		require.NoError(t, config.Load(&cfg, "testdata/.env.custom", "testdata/.env.override"))

		assert.Equal(t, "override_value", cfg.TestString)
		assert.Equal(t, 9999, cfg.TestInt)
		assert.True(t, cfg.TestBool)
	})

	t.Run("process environment takes precedence", func(t *testing.T) {
		t.Setenv("TEST_CUSTOM_INT", "7")

		var cfg customEnvConfig
		require.NoError(t, config.Load(&cfg, "testdata/.env.custom"))
		assert.Equal(t, 7, cfg.TestInt)
		assert.Equal(t, "custom_value", cfg.TestString)
	})

	t.Run("nil pointer", func(t *testing.T) {
		assert.ErrorIs(t, config.Load[customEnvConfig](nil), config.ErrNilPointer)
	})

	t.Run("missing file", func(t *testing.T) {
		var cfg customEnvConfig
		err := config.Load(&cfg, "testdata/non_existent_file.env")
		assert.ErrorIs(t, err, config.ErrReadingEnvFile)
	})

	t.Run("required variable missing", func(t *testing.T) {
		var cfg requiredEnvConfig
		err := config.Load(&cfg, "testdata/.env.custom")
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("TEST_CUSTOM_INT", "not-a-number")

		var cfg customEnvConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestMustLoad(t *testing.T) {
	assert.NotPanics(t, func() {
		var cfg customEnvConfig
		config.MustLoad(&cfg, "testdata/.env.custom")
	})
	assert.Panics(t, func() {
		var cfg customEnvConfig
		config.MustLoad(&cfg, "testdata/non_existent_file.env")
	})
}

func TestEnviron(t *testing.T) {
	t.Setenv("TEST_CUSTOM_BOOL", "false")

	vars, err := config.Environ("testdata/.env.custom")
	require.NoError(t, err)
	assert.Equal(t, "custom_value", vars["TEST_CUSTOM_STRING"])
	assert.Equal(t, "false", vars["TEST_CUSTOM_BOOL"])
}
