package mjml

import (
	"io"

	"github.com/dmitrymomot/mjmlkit/pkg/mjml/style"
)

// Section is an mj-section: a row of columns or groups.
type Section struct {
	Columns []ColumnElement
	Attrs   SectionAttributes
}

// SectionAttributes holds the mj-section attributes. The background
// position, repeat and size values are passed through as opaque strings.
type SectionAttributes struct {
	BackgroundColor     style.Color
	BackgroundPositionX string
	BackgroundPositionY string
	BackgroundRepeat    string
	BackgroundSize      string
	BackgroundURL       string
	Border              *style.Border
	BorderBottom        *style.Border
	BorderLeft          *style.Border
	BorderRadius        style.Pixels
	BorderRight         *style.Border
	BorderTop           *style.Border
	CSSClass            []string
	Direction           style.Direction
	FullWidth           bool
	Padding             *style.Padding
	TextAlign           style.TextAlign
}

func (*Section) TagName() string                 { return TagSection }
func (*Section) HasContent() bool                { return true }
func (s *Section) Attributes() AttributeRenderer { return &s.Attrs }
func (*Section) bodyElement()                    {}
func (*Section) sectionElement()                 {}
func (s *Section) children() []Node              { return asNodes(s.Columns) }

func (s *Section) RenderContent(w io.Writer, depth int) error {
	return RenderChildren(w, s.Columns, depth)
}

func (a *SectionAttributes) RenderAttributes(w io.Writer) error {
	aw := newAttrWriter(w)
	aw.color("background-color", a.BackgroundColor)
	aw.str("background-position-x", a.BackgroundPositionX)
	aw.str("background-position-y", a.BackgroundPositionY)
	aw.str("background-repeat", a.BackgroundRepeat)
	aw.str("background-size", a.BackgroundSize)
	aw.str("background-url", a.BackgroundURL)
	aw.border("border", a.Border)
	aw.border("border-bottom", a.BorderBottom)
	aw.border("border-left", a.BorderLeft)
	aw.border("border-right", a.BorderRight)
	aw.border("border-top", a.BorderTop)
	aw.px("border-radius", a.BorderRadius)
	aw.list("css-class", a.CSSClass)
	aw.str("direction", string(a.Direction))
	aw.flag("full-width", a.FullWidth)
	aw.padding("padding", a.Padding)
	aw.str("text-align", string(a.TextAlign))
	return aw.done()
}

func (*SectionAttributes) defaultsTag() string { return TagSection }

// Wrapper is an mj-wrapper grouping several sections under one background
// or border.
type Wrapper struct {
	Sections []SectionElement
	Attrs    WrapperAttributes
}

// WrapperAttributes holds the mj-wrapper attributes.
type WrapperAttributes struct {
	BackgroundColor     style.Color
	BackgroundPositionX string
	BackgroundPositionY string
	BackgroundRepeat    string
	BackgroundSize      string
	BackgroundURL       string
	Border              *style.Border
	BorderBottom        *style.Border
	BorderLeft          *style.Border
	BorderRadius        style.Pixels
	BorderRight         *style.Border
	BorderTop           *style.Border
	CSSClass            []string
	FullWidth           bool
	Padding             *style.Padding
	TextAlign           style.TextAlign
}

func (*Wrapper) TagName() string                  { return TagWrapper }
func (*Wrapper) HasContent() bool                 { return true }
func (wr *Wrapper) Attributes() AttributeRenderer { return &wr.Attrs }
func (*Wrapper) bodyElement()                     {}
func (*Wrapper) sectionElement()                  {}
func (wr *Wrapper) children() []Node              { return asNodes(wr.Sections) }

func (wr *Wrapper) RenderContent(w io.Writer, depth int) error {
	return RenderChildren(w, wr.Sections, depth)
}

func (a *WrapperAttributes) RenderAttributes(w io.Writer) error {
	aw := newAttrWriter(w)
	aw.color("background-color", a.BackgroundColor)
	aw.str("background-position-x", a.BackgroundPositionX)
	aw.str("background-position-y", a.BackgroundPositionY)
	aw.str("background-repeat", a.BackgroundRepeat)
	aw.str("background-size", a.BackgroundSize)
	aw.str("background-url", a.BackgroundURL)
	aw.border("border", a.Border)
	aw.border("border-bottom", a.BorderBottom)
	aw.border("border-left", a.BorderLeft)
	aw.border("border-right", a.BorderRight)
	aw.border("border-top", a.BorderTop)
	aw.px("border-radius", a.BorderRadius)
	aw.list("css-class", a.CSSClass)
	aw.flag("full-width", a.FullWidth)
	aw.padding("padding", a.Padding)
	aw.str("text-align", string(a.TextAlign))
	return aw.done()
}

func (*WrapperAttributes) defaultsTag() string { return TagWrapper }
