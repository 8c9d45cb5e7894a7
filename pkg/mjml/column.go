package mjml

import (
	"io"

	"github.com/dmitrymomot/mjmlkit/pkg/mjml/style"
)

// Column is an mj-column holding content elements.
type Column struct {
	Content []BodyElement
	Attrs   ColumnAttributes
}

// ColumnAttributes holds the mj-column attributes. Padding, when set, also
// carries the inner border attributes; they are written inline on the
// column tag.
type ColumnAttributes struct {
	BackgroundColor      style.Color
	InnerBackgroundColor style.Color
	Border               *style.Border
	BorderBottom         *style.Border
	BorderLeft           *style.Border
	BorderRight          *style.Border
	BorderTop            *style.Border
	BorderRadius         style.PxOrPercent
	Width                style.PxOrPercent
	VerticalAlign        style.VerticalAlign
	Padding              *ColumnPadding
	CSSClass             []string
}

// ColumnPadding groups the inner border and padding box of a column.
type ColumnPadding struct {
	InnerBorder       *style.Border
	InnerBorderBottom *style.Border
	InnerBorderLeft   *style.Border
	InnerBorderRight  *style.Border
	InnerBorderTop    *style.Border
	InnerBorderRadius style.PxOrPercent
	Padding           style.Padding
}

func (*Column) TagName() string                 { return TagColumn }
func (*Column) HasContent() bool                { return true }
func (c *Column) Attributes() AttributeRenderer { return &c.Attrs }
func (*Column) columnElement()                  {}
func (c *Column) children() []Node              { return asNodes(c.Content) }

func (c *Column) RenderContent(w io.Writer, depth int) error {
	return RenderChildren(w, c.Content, depth)
}

func (a *ColumnAttributes) RenderAttributes(w io.Writer) error {
	aw := newAttrWriter(w)
	aw.color("background-color", a.BackgroundColor)
	aw.color("inner-background-color", a.InnerBackgroundColor)
	aw.border("border", a.Border)
	aw.border("border-bottom", a.BorderBottom)
	aw.border("border-left", a.BorderLeft)
	aw.border("border-right", a.BorderRight)
	aw.border("border-top", a.BorderTop)
	aw.value("border-radius", a.BorderRadius)
	aw.value("width", a.Width)
	aw.str("vertical-align", string(a.VerticalAlign))
	if p := a.Padding; p != nil {
		aw.border("inner-border", p.InnerBorder)
		aw.border("inner-border-bottom", p.InnerBorderBottom)
		aw.border("inner-border-left", p.InnerBorderLeft)
		aw.border("inner-border-right", p.InnerBorderRight)
		aw.border("inner-border-top", p.InnerBorderTop)
		aw.value("inner-border-radius", p.InnerBorderRadius)
		aw.padding("padding", &p.Padding)
	}
	aw.list("css-class", a.CSSClass)
	return aw.done()
}

func (*ColumnAttributes) defaultsTag() string { return TagColumn }

// Group is an mj-group: columns that stay side by side on mobile.
type Group struct {
	Columns []ColumnElement
	Attrs   GroupAttributes
}

// GroupAttributes holds the mj-group attributes.
type GroupAttributes struct {
	Width           style.PxOrPercent
	VerticalAlign   style.VerticalAlign
	BackgroundColor style.Color
	Direction       style.Direction
	CSSClass        []string
}

func (*Group) TagName() string                 { return TagGroup }
func (*Group) HasContent() bool                { return true }
func (g *Group) Attributes() AttributeRenderer { return &g.Attrs }
func (*Group) columnElement()                  {}
func (g *Group) children() []Node              { return asNodes(g.Columns) }

func (g *Group) RenderContent(w io.Writer, depth int) error {
	return RenderChildren(w, g.Columns, depth)
}

func (a *GroupAttributes) RenderAttributes(w io.Writer) error {
	aw := newAttrWriter(w)
	aw.value("width", a.Width)
	aw.str("vertical-align", string(a.VerticalAlign))
	aw.color("background-color", a.BackgroundColor)
	aw.str("direction", string(a.Direction))
	aw.list("css-class", a.CSSClass)
	return aw.done()
}

func (*GroupAttributes) defaultsTag() string { return TagGroup }
