package style

import "strconv"

// PxOrPercent is a length given either in pixels or in percent.
// Implemented by Pixels and Percent only.
type PxOrPercent interface {
	String() string
	pxOrPercent()
}

// PxOrEm is a length given either in pixels or in em.
// Implemented by Pixels and Em only.
type PxOrEm interface {
	String() string
	pxOrEm()
}

// Pixels is an unsigned pixel length. The zero value is absent; use Px to
// build a present value, including a present zero.
type Pixels struct {
	n   uint32
	set bool
}

// Px returns a present pixel length of n pixels.
func Px(n uint32) Pixels {
	return Pixels{n: n, set: true}
}

// Value returns the number of pixels.
func (p Pixels) Value() uint32 { return p.n }

// IsSet reports whether the length was explicitly given.
func (p Pixels) IsSet() bool { return p.set }

// String formats the length with a px unit. Zero is written without a unit.
func (p Pixels) String() string {
	if p.n == 0 {
		return "0"
	}
	return strconv.FormatUint(uint64(p.n), 10) + "px"
}

func (Pixels) pxOrPercent()  {}
func (Pixels) pxOrEm()       {}
func (Pixels) paddingValue() {}

// Percent is a relative length in percent.
type Percent float32

// String formats the value with a % suffix using the shortest representation.
func (p Percent) String() string {
	return formatFloat(float32(p)) + "%"
}

func (Percent) pxOrPercent() {}

// Em is a length relative to the current font size.
type Em float32

// String formats the value with an em suffix using the shortest representation.
func (e Em) String() string {
	return formatFloat(float32(e)) + "em"
}

func (Em) pxOrEm() {}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}
