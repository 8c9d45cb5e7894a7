// Package config loads configuration structs from dotenv files and the
// process environment.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// dotenv files are read into a map without touching the process
// environment, the process variables are laid over them, and the result is
// parsed into any struct annotated with `env` tags.
//
// # Usage
//
//	type RenderConfig struct {
//	    BufferSize int  `env:"MJML_BUFFER_SIZE" envDefault:"4096"`
//	    LogRenders bool `env:"MJML_LOG_RENDERS" envDefault:"false"`
//	}
//
//	var cfg RenderConfig
//	if err := config.Load(&cfg, ".env"); err != nil {
//	    return err
//	}
//
// Load with no files reads only the process environment. Missing files are
// an error; pass only the files that are expected to exist.
//
// # Precedence
//
// Later files override earlier ones and the process environment overrides
// all files. Field defaults from `envDefault` apply only when a variable is
// absent from every source.
//
// # Errors
//
// Errors are joined with a sentinel so callers can use errors.Is:
//
//   - ErrNilPointer when v is nil.
//   - ErrReadingEnvFile when a dotenv file is missing or malformed.
//   - ErrParsingConfig when a value cannot be parsed into its field type.
package config
