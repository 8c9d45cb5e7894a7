package mjml

import (
	"io"

	"github.com/dmitrymomot/mjmlkit/pkg/mjml/style"
)

// Navbar is an mj-navbar holding an ordered list of links.
type Navbar struct {
	Links []*NavbarLink
	Attrs NavbarAttributes
}

// NavbarAttributes holds the mj-navbar attributes. Hamburger, when set,
// renders its ico-* attributes on the same tag.
type NavbarAttributes struct {
	Align     style.Align
	BaseURL   string
	CSSClass  []string
	Hamburger *NavbarHamburger
}

// NavbarHamburger configures the mobile hamburger icon. IcoOpen and
// IcoClose are character codes.
type NavbarHamburger struct {
	IcoAlign          style.Align
	IcoClose          style.Number
	IcoColor          style.Color
	IcoFontFamily     []string
	IcoFontSize       style.Pixels
	IcoLineHeight     style.Pixels
	IcoOpen           style.Number
	IcoPadding        *style.Padding
	IcoTextDecoration style.TextDecoration
	IcoTextTransform  style.TextTransform
}

func (*Navbar) TagName() string                 { return TagNavbar }
func (*Navbar) HasContent() bool                { return true }
func (n *Navbar) Attributes() AttributeRenderer { return &n.Attrs }
func (*Navbar) bodyElement()                    {}
func (n *Navbar) children() []Node              { return asNodes(n.Links) }

func (n *Navbar) RenderContent(w io.Writer, depth int) error {
	return RenderChildren(w, n.Links, depth)
}

func (a *NavbarAttributes) RenderAttributes(w io.Writer) error {
	aw := newAttrWriter(w)
	aw.str("align", string(a.Align))
	aw.str("base-url", a.BaseURL)
	aw.list("css-class", a.CSSClass)
	if h := a.Hamburger; h != nil {
		aw.str("ico-align", string(h.IcoAlign))
		aw.number("ico-close", h.IcoClose)
		aw.color("ico-color", h.IcoColor)
		aw.list("ico-font-family", h.IcoFontFamily)
		aw.px("ico-font-size", h.IcoFontSize)
		aw.px("ico-line-height", h.IcoLineHeight)
		aw.number("ico-open", h.IcoOpen)
		aw.padding("ico-padding", h.IcoPadding)
		aw.str("ico-text-decoration", string(h.IcoTextDecoration))
		aw.str("ico-text-transform", string(h.IcoTextTransform))
	}
	return aw.done()
}

func (*NavbarAttributes) defaultsTag() string { return TagNavbar }

// NavbarLink is one mj-navbar-link. Content is the literal label HTML.
type NavbarLink struct {
	Content string
	Attrs   NavbarLinkAttributes
}

// NavbarLinkAttributes holds the attributes of a single navbar link.
type NavbarLinkAttributes struct {
	Color          style.Color
	CSSClass       []string
	FontFamily     []string
	FontSize       style.Pixels
	FontStyle      style.FontStyle
	FontWeight     style.Number
	Href           string
	LetterSpacing  style.PxOrEm
	LineHeight     style.Pixels
	Padding        *style.Padding
	Rel            string
	Target         string
	TextDecoration style.TextDecoration
	TextTransform  style.TextTransform
}

func (*NavbarLink) TagName() string                 { return TagNavbarLink }
func (*NavbarLink) HasContent() bool                { return true }
func (l *NavbarLink) Attributes() AttributeRenderer { return &l.Attrs }

func (l *NavbarLink) RenderContent(w io.Writer, depth int) error {
	return WriteText(w, l.Content, depth)
}

func (a *NavbarLinkAttributes) RenderAttributes(w io.Writer) error {
	aw := newAttrWriter(w)
	aw.color("color", a.Color)
	aw.list("css-class", a.CSSClass)
	aw.list("font-family", a.FontFamily)
	aw.px("font-size", a.FontSize)
	aw.str("font-style", string(a.FontStyle))
	aw.number("font-weight", a.FontWeight)
	aw.str("href", a.Href)
	aw.value("letter-spacing", a.LetterSpacing)
	aw.px("line-height", a.LineHeight)
	aw.padding("padding", a.Padding)
	aw.str("rel", a.Rel)
	aw.str("target", a.Target)
	aw.str("text-decoration", string(a.TextDecoration))
	aw.str("text-transform", string(a.TextTransform))
	return aw.done()
}

func (*NavbarLinkAttributes) defaultsTag() string { return TagNavbarLink }
