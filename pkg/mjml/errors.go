package mjml

import "errors"

var (
	// ErrRenderFailed wraps a write error returned by the output writer.
	// The writer error stays reachable through errors.Is and errors.As.
	ErrRenderFailed = errors.New("mjml: render failed")
	// ErrNilDocument is returned when Render is called without a document.
	ErrNilDocument = errors.New("mjml: nil document")
	// ErrInvalidConfig is returned by LoadConfig when the environment
	// cannot be parsed into a Config.
	ErrInvalidConfig = errors.New("mjml: invalid config")
)
