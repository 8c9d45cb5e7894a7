package style

import (
	"reflect"
	"strings"
)

// PaddingValue is one side of a padding box: a pixel length or Inherit.
type PaddingValue interface {
	String() string
	paddingValue()
}

type inherit struct{}

func (inherit) String() string { return "inherit" }
func (inherit) paddingValue()  {}

// Inherit makes a padding side inherit its value.
var Inherit PaddingValue = inherit{}

// Padding is a four sided box. A nil side formats as a zero pixel length.
type Padding struct {
	Top    PaddingValue
	Right  PaddingValue
	Bottom PaddingValue
	Left   PaddingValue
}

// PaddingAll returns a box with the same value on every side.
func PaddingAll(v PaddingValue) *Padding {
	return &Padding{Top: v, Right: v, Bottom: v, Left: v}
}

// PaddingXY returns a box with vertical (top, bottom) and horizontal
// (left, right) values.
func PaddingXY(vertical, horizontal PaddingValue) *Padding {
	return &Padding{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// PaddingTRBL returns a box with explicit values in CSS shorthand order.
func PaddingTRBL(top, right, bottom, left PaddingValue) *Padding {
	return &Padding{Top: top, Right: right, Bottom: bottom, Left: left}
}

// Side formats a single side. A nil side, or a nil *Pixels held in the
// interface, formats as a zero pixel length.
func Side(v PaddingValue) string {
	if v == nil {
		return Px(0).String()
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return Px(0).String()
	}
	return v.String()
}

// Border describes a border shorthand. Unset fields are omitted.
type Border struct {
	Width Pixels
	Style BorderStyle
	Color Color
}

// IsNone reports whether no part of the border was given.
func (b Border) IsNone() bool {
	return !b.Width.IsSet() && b.Style == "" && !b.Color.IsSet()
}

// String formats the border as style, width and color concatenated without a
// separator, or "none" when all three are absent.
func (b Border) String() string {
	if b.IsNone() {
		return "none"
	}

	var sb strings.Builder
	if b.Style != "" {
		sb.WriteString(string(b.Style))
	}
	if b.Width.IsSet() {
		sb.WriteString(b.Width.String())
	}
	if b.Color.IsSet() {
		sb.WriteString(b.Color.String())
	}
	return sb.String()
}

// NoBorder is an explicit border of "none".
func NoBorder() *Border {
	return &Border{}
}

// Position is a background position made of a horizontal and a vertical
// keyword.
type Position struct {
	X Align
	Y VerticalAlign
}

func (p Position) String() string {
	return string(p.X) + " " + string(p.Y)
}
