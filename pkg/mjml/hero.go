package mjml

import (
	"io"

	"github.com/dmitrymomot/mjmlkit/pkg/mjml/style"
)

// HeroMode is either FluidHeight or FixedHeight, by value or by pointer.
// A nil pointer mode writes no mode.
type HeroMode interface {
	heroMode()
}

// FluidHeight sizes the hero from its background image ratio.
type FluidHeight struct{}

// FixedHeight pins the hero to Height.
type FixedHeight struct {
	Height style.Pixels
}

func (FluidHeight) heroMode() {}
func (FixedHeight) heroMode() {}

// Hero is an mj-hero: a section with a background image and its own
// content.
type Hero struct {
	Content []BodyElement
	Attrs   HeroAttributes
}

// HeroAttributes holds the mj-hero attributes. BackgroundHeight,
// BackgroundWidth and BackgroundColor are required and always written: left
// unset they render as 0, 0 and the fully transparent #00000000.
type HeroAttributes struct {
	BackgroundHeight   style.Pixels
	BackgroundWidth    style.Pixels
	BackgroundColor    style.Color
	BackgroundURL      string
	BackgroundPosition *style.Position
	BorderRadius       style.Pixels
	Mode               HeroMode
	Padding            *style.Padding
	VerticalAlign      style.VerticalAlign
}

func (*Hero) TagName() string                 { return TagHero }
func (*Hero) HasContent() bool                { return true }
func (h *Hero) Attributes() AttributeRenderer { return &h.Attrs }
func (*Hero) bodyElement()                    {}
func (*Hero) sectionElement()                 {}
func (h *Hero) children() []Node              { return asNodes(h.Content) }

func (h *Hero) RenderContent(w io.Writer, depth int) error {
	return RenderChildren(w, h.Content, depth)
}

func (a *HeroAttributes) RenderAttributes(w io.Writer) error {
	aw := newAttrWriter(w)
	aw.raw("background-height", a.BackgroundHeight.String())
	aw.raw("background-width", a.BackgroundWidth.String())
	aw.raw("background-color", a.BackgroundColor.String())
	aw.str("background-url", a.BackgroundURL)
	aw.position("background-position", a.BackgroundPosition)
	aw.px("border-radius", a.BorderRadius)
	switch mode := a.Mode.(type) {
	case FluidHeight:
		aw.raw("mode", "fluid-height")
	case *FluidHeight:
		if mode != nil {
			aw.raw("mode", "fluid-height")
		}
	case FixedHeight:
		writeFixedHeight(aw, mode)
	case *FixedHeight:
		if mode != nil {
			writeFixedHeight(aw, *mode)
		}
	}
	aw.padding("padding", a.Padding)
	aw.str("vertical-align", string(a.VerticalAlign))
	return aw.done()
}

func writeFixedHeight(aw *attrWriter, m FixedHeight) {
	aw.raw("mode", "fixed-height")
	aw.raw("height", m.Height.String())
}

func (*HeroAttributes) defaultsTag() string { return TagHero }
