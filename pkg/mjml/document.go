package mjml

import (
	"io"

	"github.com/dmitrymomot/mjmlkit/pkg/mjml/style"
)

// DefaultBodyWidth is the body width used when Body.Attrs.Width is not set.
const DefaultBodyWidth = 600

// Owa is the value of the owa attribute on the root element.
type Owa string

// OwaDesktop renders the desktop layout in Outlook Web Access.
const OwaDesktop Owa = "desktop"

// Document is the root of a markup document. The body is mandatory; the
// raw file-start block and the head are optional.
type Document struct {
	Attrs     DocumentAttributes
	FileStart *FileStart
	Head      *Head
	Body      Body
}

// DocumentAttributes holds the attributes of the mjml root tag.
type DocumentAttributes struct {
	Owa  Owa
	Lang string
	Dir  style.Direction
}

func (*Document) TagName() string                 { return TagMjml }
func (*Document) HasContent() bool                { return true }
func (d *Document) Attributes() AttributeRenderer { return &d.Attrs }
func (d *Document) children() []Node              { return d.entries() }

func (d *Document) RenderContent(w io.Writer, depth int) error {
	return RenderChildren(w, d.entries(), depth)
}

func (d *Document) entries() []Node {
	out := make([]Node, 0, 3)
	if d.FileStart != nil {
		out = append(out, d.FileStart)
	}
	if d.Head != nil {
		out = append(out, d.Head)
	}
	return append(out, &d.Body)
}

func (a *DocumentAttributes) RenderAttributes(w io.Writer) error {
	aw := newAttrWriter(w)
	aw.str("owa", string(a.Owa))
	aw.str("lang", a.Lang)
	aw.str("dir", string(a.Dir))
	return aw.done()
}

// FileStart is raw content placed at the very beginning of the compiled
// output, rendered as mj-raw with position="file-start".
type FileStart struct {
	Content string
}

func (*FileStart) TagName() string                 { return TagRaw }
func (*FileStart) HasContent() bool                { return true }
func (f *FileStart) Attributes() AttributeRenderer { return f }

func (f *FileStart) RenderContent(w io.Writer, depth int) error {
	return WriteText(w, f.Content, depth)
}

func (*FileStart) RenderAttributes(w io.Writer) error {
	aw := newAttrWriter(w)
	aw.raw("position", "file-start")
	return aw.done()
}

// Body is the mj-body block holding sections, wrappers and heroes.
type Body struct {
	Sections []SectionElement
	Attrs    BodyAttributes
}

// BodyAttributes holds the mj-body attributes. Width is always written and
// defaults to DefaultBodyWidth.
type BodyAttributes struct {
	BackgroundColor style.Color
	CSSClass        []string
	Width           style.Pixels
}

func (*Body) TagName() string                 { return TagBody }
func (*Body) HasContent() bool                { return true }
func (b *Body) Attributes() AttributeRenderer { return &b.Attrs }
func (b *Body) children() []Node              { return asNodes(b.Sections) }

func (b *Body) RenderContent(w io.Writer, depth int) error {
	return RenderChildren(w, b.Sections, depth)
}

func (a *BodyAttributes) RenderAttributes(w io.Writer) error {
	width := a.Width
	if !width.IsSet() {
		width = style.Px(DefaultBodyWidth)
	}

	aw := newAttrWriter(w)
	aw.color("background-color", a.BackgroundColor)
	aw.list("css-class", a.CSSClass)
	aw.raw("width", width.String())
	return aw.done()
}
