package mjml

import (
	"io"

	"github.com/dmitrymomot/mjmlkit/pkg/mjml/style"
)

// Button is an mj-button. Content is the literal label HTML.
type Button struct {
	Content string
	Attrs   ButtonAttributes
}

// ButtonAttributes holds the mj-button attributes.
type ButtonAttributes struct {
	Align                    style.Align
	BackgroundColor          style.Color
	Border                   *style.Border
	BorderBottom             *style.Border
	BorderLeft               *style.Border
	BorderRadius             style.Pixels
	BorderRight              *style.Border
	BorderTop                *style.Border
	Color                    style.Color
	ContainerBackgroundColor style.Color
	CSSClass                 []string
	FontFamily               []string
	FontSize                 style.Pixels
	FontStyle                style.FontStyle
	FontWeight               style.Number
	Height                   style.Pixels
	Href                     string
	InnerPadding             *style.Padding
	LetterSpacing            style.PxOrEm
	LineHeight               string
	Padding                  *style.Padding
	Rel                      string
	Target                   string
	TextAlign                style.TextAlign
	TextDecoration           style.TextDecoration
	TextTransform            style.TextTransform
	Title                    string
	VerticalAlign            style.VerticalAlign
	Width                    style.Pixels
}

func (*Button) TagName() string                 { return TagButton }
func (*Button) HasContent() bool                { return true }
func (b *Button) Attributes() AttributeRenderer { return &b.Attrs }
func (*Button) bodyElement()                    {}

func (b *Button) RenderContent(w io.Writer, depth int) error {
	return WriteText(w, b.Content, depth)
}

func (a *ButtonAttributes) RenderAttributes(w io.Writer) error {
	aw := newAttrWriter(w)
	aw.str("align", string(a.Align))
	aw.color("background-color", a.BackgroundColor)
	aw.border("border", a.Border)
	aw.border("border-bottom", a.BorderBottom)
	aw.border("border-left", a.BorderLeft)
	aw.border("border-right", a.BorderRight)
	aw.border("border-top", a.BorderTop)
	aw.px("border-radius", a.BorderRadius)
	aw.color("color", a.Color)
	aw.color("container-background-color", a.ContainerBackgroundColor)
	aw.list("css-class", a.CSSClass)
	aw.list("font-family", a.FontFamily)
	aw.px("font-size", a.FontSize)
	aw.str("font-style", string(a.FontStyle))
	aw.number("font-weight", a.FontWeight)
	aw.px("height", a.Height)
	aw.str("href", a.Href)
	aw.padding("inner-padding", a.InnerPadding)
	aw.value("letter-spacing", a.LetterSpacing)
	aw.str("line-height", a.LineHeight)
	aw.padding("padding", a.Padding)
	aw.str("rel", a.Rel)
	aw.str("target", a.Target)
	aw.str("text-align", string(a.TextAlign))
	aw.str("text-decoration", string(a.TextDecoration))
	aw.str("text-transform", string(a.TextTransform))
	aw.str("title", a.Title)
	aw.str("vertical-align", string(a.VerticalAlign))
	aw.px("width", a.Width)
	return aw.done()
}

func (*ButtonAttributes) defaultsTag() string { return TagButton }
