package style

import "strconv"

// Number is an optional unsigned integer attribute value, such as a font
// weight. The zero value is absent.
type Number struct {
	n   uint32
	set bool
}

// Int returns a present number.
func Int(n uint32) Number {
	return Number{n: n, set: true}
}

// Value returns the number.
func (n Number) Value() uint32 { return n.n }

// IsSet reports whether the number was explicitly given.
func (n Number) IsSet() bool { return n.set }

func (n Number) String() string {
	return strconv.FormatUint(uint64(n.n), 10)
}
