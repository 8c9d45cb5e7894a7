package mjml

import (
	"io"

	"github.com/dmitrymomot/mjmlkit/pkg/mjml/style"
)

// TableLayout is the table-layout keyword of an mj-table.
type TableLayout string

const (
	TableLayoutAuto    TableLayout = "auto"
	TableLayoutFixed   TableLayout = "fixed"
	TableLayoutInitial TableLayout = "initial"
	TableLayoutInherit TableLayout = "inherit"
)

// Table is an mj-table. Content is the literal inner HTML of the table
// (rows and cells).
type Table struct {
	Content string
	Attrs   TableAttributes
}

// TableAttributes holds the mj-table attributes. PresentationRole adds
// role="presentation".
type TableAttributes struct {
	Align                    style.Align
	Border                   *style.Border
	CellPadding              style.Pixels
	CellSpacing              style.Pixels
	Color                    style.Color
	ContainerBackgroundColor style.Color
	CSSClass                 []string
	FontFamily               []string
	FontSize                 style.Pixels
	LineHeight               style.PxOrPercent
	Padding                  *style.Padding
	PresentationRole         bool
	TableLayout              TableLayout
	Width                    style.PxOrPercent
}

func (*Table) TagName() string                 { return TagTable }
func (*Table) HasContent() bool                { return true }
func (t *Table) Attributes() AttributeRenderer { return &t.Attrs }
func (*Table) bodyElement()                    {}

func (t *Table) RenderContent(w io.Writer, depth int) error {
	return WriteText(w, t.Content, depth)
}

func (a *TableAttributes) RenderAttributes(w io.Writer) error {
	aw := newAttrWriter(w)
	aw.str("align", string(a.Align))
	aw.border("border", a.Border)
	aw.px("cellpadding", a.CellPadding)
	aw.px("cellspacing", a.CellSpacing)
	aw.color("color", a.Color)
	aw.color("container-background-color", a.ContainerBackgroundColor)
	aw.list("css-class", a.CSSClass)
	aw.list("font-family", a.FontFamily)
	aw.px("font-size", a.FontSize)
	aw.value("line-height", a.LineHeight)
	aw.padding("padding", a.Padding)
	if a.PresentationRole {
		aw.raw("role", "presentation")
	}
	aw.str("table-layout", string(a.TableLayout))
	aw.value("width", a.Width)
	return aw.done()
}

func (*TableAttributes) defaultsTag() string { return TagTable }
