package mjml

import (
	"errors"

	"github.com/dmitrymomot/mjmlkit/pkg/config"
)

// Config holds renderer settings that can be loaded from the environment.
type Config struct {
	// BufferSize is the size of the write buffer placed in front of the
	// output writer. Zero writes straight through.
	BufferSize int `env:"MJML_BUFFER_SIZE" envDefault:"4096"`
	// LogRenders enables the debug summary logged after every render.
	LogRenders bool `env:"MJML_LOG_RENDERS" envDefault:"false"`
}

// DefaultConfig returns the default configuration without reading the
// environment.
func DefaultConfig() Config {
	return Config{BufferSize: 4096}
}

// LoadConfig reads the given dotenv files in order, overlays the process
// environment and parses the result into a Config. Later files override
// earlier ones; process variables override every file.
func LoadConfig(files ...string) (Config, error) {
	var cfg Config
	if err := config.Load(&cfg, files...); err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}
	if cfg.BufferSize < 0 {
		return Config{}, errors.Join(ErrInvalidConfig, errors.New("MJML_BUFFER_SIZE must not be negative"))
	}
	return cfg, nil
}
