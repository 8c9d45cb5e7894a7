package style

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Color is an sRGB color with optional alpha. The zero value is absent.
type Color struct {
	r, g, b, a uint8
	set        bool
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{r: r, g: g, b: b, a: 0xff, set: true}
}

// RGBA returns a color with an explicit alpha channel.
func RGBA(r, g, b, a uint8) Color {
	return Color{r: r, g: g, b: b, a: a, set: true}
}

// ParseColor parses a hex color literal in one of the forms #RGB, #RGBA,
// #RRGGBB or #RRGGBBAA. The leading # is optional and digits are case
// insensitive.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(hex) {
	case 3, 4:
		var expanded strings.Builder
		expanded.Grow(len(hex) * 2)
		for _, c := range hex {
			expanded.WriteRune(c)
			expanded.WriteRune(c)
		}
		hex = expanded.String()
	case 6, 8:
	default:
		return Color{}, errors.Join(ErrInvalidColor, fmt.Errorf("unexpected length of %q", s))
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, errors.Join(ErrInvalidColor, err)
	}

	if len(hex) == 6 {
		return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}
	return RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// MustColor is like ParseColor but panics on malformed input.
// Intended for package-level color constants.
func MustColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// IsSet reports whether the color was explicitly given.
func (c Color) IsSet() bool { return c.set }

// RGBA returns the color channels.
func (c Color) RGBA() (r, g, b, a uint8) {
	return c.r, c.g, c.b, c.a
}

// String formats the color as #RRGGBB, or #RRGGBBAA when it is not opaque.
func (c Color) String() string {
	if c.a == 0xff {
		return fmt.Sprintf("#%02X%02X%02X", c.r, c.g, c.b)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.r, c.g, c.b, c.a)
}
