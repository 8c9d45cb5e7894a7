package mjml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mjmlkit/pkg/mjml"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := mjml.DefaultConfig()
	assert.Equal(t, 4096, cfg.BufferSize)
	assert.False(t, cfg.LogRenders)
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := mjml.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, mjml.DefaultConfig(), cfg)
	})

	t.Run("from file", func(t *testing.T) {
		path := writeEnvFile(t, "MJML_BUFFER_SIZE=2048\nMJML_LOG_RENDERS=true\n")
		cfg, err := mjml.LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 2048, cfg.BufferSize)
		assert.True(t, cfg.LogRenders)
	})

	t.Run("later files override earlier ones", func(t *testing.T) {
		base := writeEnvFile(t, "MJML_BUFFER_SIZE=2048\nMJML_LOG_RENDERS=true\n")
		override := writeEnvFile(t, "MJML_BUFFER_SIZE=0\n")
		cfg, err := mjml.LoadConfig(base, override)
		require.NoError(t, err)
		assert.Equal(t, 0, cfg.BufferSize)
		assert.True(t, cfg.LogRenders)
	})

	t.Run("process environment wins", func(t *testing.T) {
		t.Setenv("MJML_BUFFER_SIZE", "512")
		path := writeEnvFile(t, "MJML_BUFFER_SIZE=2048\n")
		cfg, err := mjml.LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 512, cfg.BufferSize)
	})

	t.Run("invalid values", func(t *testing.T) {
		tests := []struct {
			name    string
			content string
		}{
			{name: "not a number", content: "MJML_BUFFER_SIZE=big\n"},
			{name: "negative size", content: "MJML_BUFFER_SIZE=-1\n"},
			{name: "not a bool", content: "MJML_LOG_RENDERS=maybe\n"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := mjml.LoadConfig(writeEnvFile(t, tt.content))
				assert.ErrorIs(t, err, mjml.ErrInvalidConfig)
			})
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := mjml.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
		assert.ErrorIs(t, err, mjml.ErrInvalidConfig)
	})
}
