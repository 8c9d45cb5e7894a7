// Package style provides the typed attribute values used by the mjml document
// model together with their canonical textual form.
//
// Every value kind is a small immutable type with a pure String method that
// returns exactly the text written between the quotes of an attribute. The
// zero value of every scalar kind means "absent": a zero Pixels, Color,
// Number or keyword is never rendered by the mjml package. Composite values
// (Padding, Border, Position) are referenced by pointer and are absent when
// nil.
//
// # Lengths
//
//	style.Px(12)        // "12px"
//	style.Px(0)         // "0"
//	style.Percent(50)   // "50%"
//	style.Em(1.5)       // "1.5em"
//
// Pixels satisfies PxOrPercent, PxOrEm and PaddingValue, so one value can be
// used wherever the markup accepts a pixel length.
//
// # Boxes and borders
//
//	style.PaddingAll(style.Px(10))
//	style.PaddingXY(style.Px(10), style.Inherit)
//	&style.Border{Style: style.BorderSolid, Width: style.Px(1), Color: style.RGB(0, 0, 0)}
//
// A Border with no width, style or color formats as "none". A present border
// concatenates style, width and color without a separator, the form the
// markup dialect expects.
//
// # Colors
//
//	style.RGB(0xff, 0x66, 0x00)          // "#FF6600"
//	c, err := style.ParseColor("#f60")  // "#FF6600"
//	style.MustColor("#ff660080")        // "#FF660080"
package style
