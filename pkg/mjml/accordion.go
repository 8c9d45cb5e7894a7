package mjml

import (
	"io"

	"github.com/dmitrymomot/mjmlkit/pkg/mjml/style"
)

// IconPosition places the accordion icon relative to the title.
type IconPosition string

const (
	IconLeft  IconPosition = "left"
	IconRight IconPosition = "right"
)

// Accordion is an mj-accordion made of elements, each with exactly one
// title and one text block.
type Accordion struct {
	Elements []*AccordionElement
	Attrs    AccordionAttributes
}

// AccordionAttributes holds the mj-accordion attributes.
type AccordionAttributes struct {
	Border                   *style.Border
	ContainerBackgroundColor style.Color
	CSSClass                 []string
	FontFamily               []string
	IconAlign                style.Align
	IconHeight               style.Pixels
	IconPosition             IconPosition
	IconUnwrappedAlt         string
	IconUnwrappedURL         string
	IconWidth                style.Pixels
	IconWrappedAlt           string
	IconWrappedURL           string
	Padding                  *style.Padding
}

func (*Accordion) TagName() string                 { return TagAccordion }
func (*Accordion) HasContent() bool                { return true }
func (a *Accordion) Attributes() AttributeRenderer { return &a.Attrs }
func (*Accordion) bodyElement()                    {}
func (a *Accordion) children() []Node              { return asNodes(a.Elements) }

func (a *Accordion) RenderContent(w io.Writer, depth int) error {
	return RenderChildren(w, a.Elements, depth)
}

func (a *AccordionAttributes) RenderAttributes(w io.Writer) error {
	aw := newAttrWriter(w)
	aw.border("border", a.Border)
	aw.color("container-background-color", a.ContainerBackgroundColor)
	aw.list("css-class", a.CSSClass)
	aw.list("font-family", a.FontFamily)
	aw.str("icon-align", string(a.IconAlign))
	aw.px("icon-height", a.IconHeight)
	aw.str("icon-position", string(a.IconPosition))
	aw.str("icon-unwrapped-alt", a.IconUnwrappedAlt)
	aw.str("icon-unwrapped-url", a.IconUnwrappedURL)
	aw.px("icon-width", a.IconWidth)
	aw.str("icon-wrapped-alt", a.IconWrappedAlt)
	aw.str("icon-wrapped-url", a.IconWrappedURL)
	aw.padding("padding", a.Padding)
	return aw.done()
}

func (*AccordionAttributes) defaultsTag() string { return TagAccordion }

// AccordionElement is one mj-accordion-element. Title is always rendered
// before Text.
type AccordionElement struct {
	Title AccordionTitle
	Text  AccordionText
	Attrs AccordionElementAttributes
}

// AccordionElementAttributes overrides the accordion attributes for one
// element.
type AccordionElementAttributes struct {
	BackgroundColor  style.Color
	Border           *style.Border
	CSSClass         []string
	FontFamily       []string
	IconAlign        style.Align
	IconHeight       style.Pixels
	IconPosition     IconPosition
	IconUnwrappedAlt string
	IconUnwrappedURL string
	IconWidth        style.Pixels
	IconWrappedAlt   string
	IconWrappedURL   string
}

func (*AccordionElement) TagName() string                 { return TagAccordionElement }
func (*AccordionElement) HasContent() bool                { return true }
func (e *AccordionElement) Attributes() AttributeRenderer { return &e.Attrs }

func (e *AccordionElement) children() []Node {
	return []Node{&e.Title, &e.Text}
}

func (e *AccordionElement) RenderContent(w io.Writer, depth int) error {
	if err := RenderNode(w, &e.Title, depth); err != nil {
		return err
	}
	return RenderNode(w, &e.Text, depth)
}

func (a *AccordionElementAttributes) RenderAttributes(w io.Writer) error {
	aw := newAttrWriter(w)
	aw.border("border", a.Border)
	aw.color("background-color", a.BackgroundColor)
	aw.list("css-class", a.CSSClass)
	aw.list("font-family", a.FontFamily)
	aw.str("icon-align", string(a.IconAlign))
	aw.px("icon-height", a.IconHeight)
	aw.str("icon-position", string(a.IconPosition))
	aw.str("icon-unwrapped-alt", a.IconUnwrappedAlt)
	aw.str("icon-unwrapped-url", a.IconUnwrappedURL)
	aw.px("icon-width", a.IconWidth)
	aw.str("icon-wrapped-alt", a.IconWrappedAlt)
	aw.str("icon-wrapped-url", a.IconWrappedURL)
	return aw.done()
}

func (*AccordionElementAttributes) defaultsTag() string { return TagAccordionElement }

// AccordionTitle is the mj-accordion-title of an element.
type AccordionTitle struct {
	Content string
	Attrs   AccordionTitleAttributes
}

// AccordionTitleAttributes styles an accordion title.
type AccordionTitleAttributes struct {
	BackgroundColor style.Color
	Color           style.Color
	CSSClass        []string
	FontFamily      []string
	FontSize        style.Pixels
	Padding         *style.Padding
}

func (*AccordionTitle) TagName() string                 { return TagAccordionTitle }
func (*AccordionTitle) HasContent() bool                { return true }
func (t *AccordionTitle) Attributes() AttributeRenderer { return &t.Attrs }

func (t *AccordionTitle) RenderContent(w io.Writer, depth int) error {
	return WriteText(w, t.Content, depth)
}

func (a *AccordionTitleAttributes) RenderAttributes(w io.Writer) error {
	aw := newAttrWriter(w)
	aw.color("background-color", a.BackgroundColor)
	aw.color("color", a.Color)
	aw.list("css-class", a.CSSClass)
	aw.list("font-family", a.FontFamily)
	aw.px("font-size", a.FontSize)
	aw.padding("padding", a.Padding)
	return aw.done()
}

func (*AccordionTitleAttributes) defaultsTag() string { return TagAccordionTitle }

// AccordionText is the mj-accordion-text of an element.
type AccordionText struct {
	Content string
	Attrs   AccordionTextAttributes
}

// AccordionTextAttributes styles an accordion text.
type AccordionTextAttributes struct {
	BackgroundColor style.Color
	Color           style.Color
	CSSClass        []string
	FontFamily      []string
	FontSize        style.Pixels
	FontWeight      style.Number
	LetterSpacing   style.PxOrEm
	LineHeight      style.Pixels
	Padding         *style.Padding
}

func (*AccordionText) TagName() string                 { return TagAccordionText }
func (*AccordionText) HasContent() bool                { return true }
func (t *AccordionText) Attributes() AttributeRenderer { return &t.Attrs }

func (t *AccordionText) RenderContent(w io.Writer, depth int) error {
	return WriteText(w, t.Content, depth)
}

func (a *AccordionTextAttributes) RenderAttributes(w io.Writer) error {
	aw := newAttrWriter(w)
	aw.color("background-color", a.BackgroundColor)
	aw.color("color", a.Color)
	aw.list("css-class", a.CSSClass)
	aw.list("font-family", a.FontFamily)
	aw.px("font-size", a.FontSize)
	aw.number("font-weight", a.FontWeight)
	aw.value("letter-spacing", a.LetterSpacing)
	aw.px("line-height", a.LineHeight)
	aw.padding("padding", a.Padding)
	return aw.done()
}

func (*AccordionTextAttributes) defaultsTag() string { return TagAccordionText }
