package style

import "errors"

var (
	// ErrInvalidColor is returned when a hex color literal cannot be parsed.
	ErrInvalidColor = errors.New("style: invalid hex color")
)
