package mjml

import (
	"io"
	"maps"
	"slices"

	"github.com/dmitrymomot/mjmlkit/pkg/mjml/style"
)

// Head is the mj-head block. Every entry is optional; present entries are
// always written in this order: Defaults, Breakpoint, Fonts, HTMLAttributes,
// Preview, Style, Title.
type Head struct {
	Defaults       *Defaults
	Breakpoint     style.Pixels
	Fonts          []*Font
	HTMLAttributes []*Selector
	Preview        string
	Style          *Style
	Title          string
}

func (*Head) TagName() string               { return TagHead }
func (*Head) HasContent() bool              { return true }
func (*Head) Attributes() AttributeRenderer { return nil }
func (h *Head) children() []Node            { return h.entries() }

func (h *Head) RenderContent(w io.Writer, depth int) error {
	return RenderChildren(w, h.entries(), depth)
}

func (h *Head) entries() []Node {
	var out []Node
	if h.Defaults != nil {
		out = append(out, h.Defaults)
	}
	if h.Breakpoint.IsSet() {
		out = append(out, &breakpoint{width: h.Breakpoint})
	}
	for _, f := range h.Fonts {
		if f != nil {
			out = append(out, f)
		}
	}
	if html := newHTMLAttributes(h.HTMLAttributes); html != nil {
		out = append(out, html)
	}
	if h.Preview != "" {
		out = append(out, &literal{tag: TagPreview, content: h.Preview})
	}
	if h.Style != nil {
		out = append(out, h.Style)
	}
	if h.Title != "" {
		out = append(out, &literal{tag: TagTitle, content: h.Title})
	}
	return out
}

// DefaultAttributes is an entry of the mj-attributes block: AllDefaults,
// ClassDefaults, or a pointer to one of the element attribute sets
// (*TextAttributes, *ButtonAttributes, ...), which sets the defaults for
// that element.
type DefaultAttributes interface {
	AttributeRenderer
	defaultsTag() string
}

// Defaults is the mj-attributes block.
type Defaults struct {
	Entries []DefaultAttributes
}

func (*Defaults) TagName() string               { return TagAttributes }
func (*Defaults) HasContent() bool              { return true }
func (*Defaults) Attributes() AttributeRenderer { return nil }

func (d *Defaults) children() []Node {
	out := make([]Node, 0, len(d.Entries))
	for _, e := range d.Entries {
		if !isNil(e) {
			out = append(out, defaultsEntry{attrs: e})
		}
	}
	return out
}

func (d *Defaults) RenderContent(w io.Writer, depth int) error {
	return RenderChildren(w, d.children(), depth)
}

// defaultsEntry renders a DefaultAttributes value as a void tag.
type defaultsEntry struct {
	attrs DefaultAttributes
}

func (e defaultsEntry) TagName() string                  { return e.attrs.defaultsTag() }
func (defaultsEntry) HasContent() bool                   { return false }
func (e defaultsEntry) Attributes() AttributeRenderer    { return e.attrs }
func (defaultsEntry) RenderContent(io.Writer, int) error { return nil }

// AllDefaults is the mj-all entry: attributes applied to every element.
// Keys are written in sorted order.
type AllDefaults map[string]string

func (AllDefaults) defaultsTag() string { return TagAll }

func (a AllDefaults) RenderAttributes(w io.Writer) error {
	aw := newAttrWriter(w)
	writeSorted(aw, a)
	return aw.done()
}

// ClassDefaults is an mj-class entry: a named attribute preset referenced
// from elements through mj-class. Attribute keys are written in sorted order
// after the name.
type ClassDefaults struct {
	Name  string
	Attrs map[string]string
}

func (ClassDefaults) defaultsTag() string { return TagClass }

func (c ClassDefaults) RenderAttributes(w io.Writer) error {
	aw := newAttrWriter(w)
	aw.raw("name", c.Name)
	writeSorted(aw, c.Attrs)
	return aw.done()
}

func writeSorted(aw *attrWriter, m map[string]string) {
	for _, k := range slices.Sorted(maps.Keys(m)) {
		aw.raw(k, m[k])
	}
}

type breakpoint struct {
	width style.Pixels
}

func (*breakpoint) TagName() string                    { return TagBreakpoint }
func (*breakpoint) HasContent() bool                   { return false }
func (b *breakpoint) Attributes() AttributeRenderer    { return b }
func (*breakpoint) RenderContent(io.Writer, int) error { return nil }

func (b *breakpoint) RenderAttributes(w io.Writer) error {
	aw := newAttrWriter(w)
	aw.raw("width", b.width.String())
	return aw.done()
}

// Font is an mj-font declaration.
type Font struct {
	Name string
	Href string
}

func (*Font) TagName() string                    { return TagFont }
func (*Font) HasContent() bool                   { return false }
func (f *Font) Attributes() AttributeRenderer    { return f }
func (*Font) RenderContent(io.Writer, int) error { return nil }

func (f *Font) RenderAttributes(w io.Writer) error {
	aw := newAttrWriter(w)
	aw.raw("name", f.Name)
	aw.raw("href", f.Href)
	return aw.done()
}

// Selector injects HTML attributes into the elements matched by Path after
// compilation. A selector without attributes is not rendered.
type Selector struct {
	Path  string
	Attrs []HTMLAttribute
}

// HTMLAttribute is a single injected attribute.
type HTMLAttribute struct {
	Name  string
	Value string
}

type htmlAttributes struct {
	selectors []*Selector
}

// newHTMLAttributes returns nil when no selector carries attributes.
func newHTMLAttributes(selectors []*Selector) *htmlAttributes {
	var kept []*Selector
	for _, s := range selectors {
		if s != nil && len(s.Attrs) > 0 {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return &htmlAttributes{selectors: kept}
}

func (*htmlAttributes) TagName() string               { return TagHTMLAttributes }
func (*htmlAttributes) HasContent() bool              { return true }
func (*htmlAttributes) Attributes() AttributeRenderer { return nil }
func (h *htmlAttributes) children() []Node            { return asNodes(h.selectors) }

func (h *htmlAttributes) RenderContent(w io.Writer, depth int) error {
	return RenderChildren(w, h.selectors, depth)
}

func (*Selector) TagName() string                 { return TagSelector }
func (*Selector) HasContent() bool                { return true }
func (s *Selector) Attributes() AttributeRenderer { return selectorPath(s.Path) }

func (s *Selector) children() []Node {
	out := make([]Node, 0, len(s.Attrs))
	for i := range s.Attrs {
		out = append(out, &s.Attrs[i])
	}
	return out
}

func (s *Selector) RenderContent(w io.Writer, depth int) error {
	return RenderChildren(w, s.children(), depth)
}

type selectorPath string

func (p selectorPath) RenderAttributes(w io.Writer) error {
	aw := newAttrWriter(w)
	aw.raw("path", string(p))
	return aw.done()
}

func (*HTMLAttribute) TagName() string                 { return TagHTMLAttribute }
func (*HTMLAttribute) HasContent() bool                { return true }
func (a *HTMLAttribute) Attributes() AttributeRenderer { return htmlAttributeName(a.Name) }

func (a *HTMLAttribute) inlineText() string { return a.Value }

// RenderContent writes the value as an indented line. RenderNode writes it
// inline instead.
func (a *HTMLAttribute) RenderContent(w io.Writer, depth int) error {
	return WriteText(w, a.Value, depth)
}

type htmlAttributeName string

func (n htmlAttributeName) RenderAttributes(w io.Writer) error {
	aw := newAttrWriter(w)
	aw.raw("name", string(n))
	return aw.done()
}

// Style is an mj-style block. Inline styles are inlined into the elements
// by the compiler instead of being kept in a style tag.
type Style struct {
	Inline  bool
	Content string
}

func (*Style) TagName() string                 { return TagStyle }
func (*Style) HasContent() bool                { return true }
func (s *Style) Attributes() AttributeRenderer { return s }

func (s *Style) RenderContent(w io.Writer, depth int) error {
	return WriteText(w, s.Content, depth)
}

func (s *Style) RenderAttributes(w io.Writer) error {
	aw := newAttrWriter(w)
	aw.flag("inline", s.Inline)
	return aw.done()
}

// literal is an attribute-less element with inline text content.
type literal struct {
	tag     string
	content string
}

func (l *literal) TagName() string             { return l.tag }
func (*literal) HasContent() bool              { return true }
func (*literal) Attributes() AttributeRenderer { return nil }
func (l *literal) inlineText() string          { return l.content }

func (l *literal) RenderContent(w io.Writer, depth int) error {
	return WriteText(w, l.content, depth)
}
