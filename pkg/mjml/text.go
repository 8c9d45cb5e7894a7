package mjml

import (
	"io"

	"github.com/dmitrymomot/mjmlkit/pkg/mjml/style"
)

// Text is an mj-text block. Content is literal HTML.
type Text struct {
	Content string
	Attrs   TextAttributes
}

// TextAttributes holds the mj-text attributes.
type TextAttributes struct {
	Color                    style.Color
	FontFamily               []string
	FontSize                 style.Pixels
	FontStyle                style.FontStyle
	FontWeight               style.Number
	LineHeight               style.Pixels
	LetterSpacing            style.PxOrEm
	Height                   style.Pixels
	TextDecoration           style.TextDecoration
	TextTransform            style.TextTransform
	Align                    style.TextAlign
	ContainerBackgroundColor style.Color
	Padding                  *style.Padding
	CSSClass                 []string
}

func (*Text) TagName() string                              { return TagText }
func (*Text) HasContent() bool                             { return true }
func (t *Text) Attributes() AttributeRenderer              { return &t.Attrs }
func (t *Text) RenderContent(w io.Writer, depth int) error { return WriteText(w, t.Content, depth) }
func (*Text) bodyElement()                                 {}

func (a *TextAttributes) RenderAttributes(w io.Writer) error {
	aw := newAttrWriter(w)
	aw.color("color", a.Color)
	aw.list("font-family", a.FontFamily)
	aw.px("font-size", a.FontSize)
	aw.str("font-style", string(a.FontStyle))
	aw.number("font-weight", a.FontWeight)
	aw.px("line-height", a.LineHeight)
	aw.value("letter-spacing", a.LetterSpacing)
	aw.px("height", a.Height)
	aw.str("text-decoration", string(a.TextDecoration))
	aw.str("text-transform", string(a.TextTransform))
	aw.str("align", string(a.Align))
	aw.color("container-background-color", a.ContainerBackgroundColor)
	aw.padding("padding", a.Padding)
	aw.list("css-class", a.CSSClass)
	return aw.done()
}

func (*TextAttributes) defaultsTag() string { return TagText }
