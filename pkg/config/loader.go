package config

import (
	"errors"
	"maps"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Load parses configuration into v from the given dotenv files and the
// process environment, using the `env` and `envDefault` struct tags.
//
// Files are read in order and later files override earlier ones. Process
// variables override every file. Neither the files nor v are cached and the
// process environment is never modified.
//
// Example:
//
//	type RenderConfig struct {
//		BufferSize int  `env:"MJML_BUFFER_SIZE" envDefault:"4096"`
//		LogRenders bool `env:"MJML_LOG_RENDERS"`
//	}
//
//	var cfg RenderConfig
//	if err := config.Load(&cfg, ".env", ".env.local"); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, files ...string) error {
	if v == nil {
		return ErrNilPointer
	}

	vars, err := Environ(files...)
	if err != nil {
		return err
	}

	if err := env.ParseWithOptions(v, env.Options{Environment: vars}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, files ...string) {
	if err := Load(v, files...); err != nil {
		panic("failed to load required configuration: " + err.Error())
	}
}

// Environ returns the merged variables Load parses: the given dotenv files
// in order, overlaid with the process environment.
func Environ(files ...string) (map[string]string, error) {
	vars := make(map[string]string)
	if len(files) > 0 {
		fromFiles, err := godotenv.Read(files...)
		if err != nil {
			return nil, errors.Join(ErrReadingEnvFile, err)
		}
		maps.Copy(vars, fromFiles)
	}
	maps.Copy(vars, env.ToMap(os.Environ()))
	return vars, nil
}
