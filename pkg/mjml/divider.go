package mjml

import (
	"io"

	"github.com/dmitrymomot/mjmlkit/pkg/mjml/style"
)

// Divider is a void mj-divider.
type Divider struct {
	Attrs DividerAttributes
}

// DividerAttributes holds the mj-divider attributes.
type DividerAttributes struct {
	BorderColor              style.Color
	BorderStyle              style.BorderStyle
	BorderWidth              style.Pixels
	ContainerBackgroundColor style.Color
	CSSClass                 []string
	Padding                  *style.Padding
	Width                    style.PxOrPercent
	Align                    style.Align
}

func (*Divider) TagName() string                    { return TagDivider }
func (*Divider) HasContent() bool                   { return false }
func (d *Divider) Attributes() AttributeRenderer    { return &d.Attrs }
func (*Divider) RenderContent(io.Writer, int) error { return nil }
func (*Divider) bodyElement()                       {}

func (a *DividerAttributes) RenderAttributes(w io.Writer) error {
	aw := newAttrWriter(w)
	aw.color("border-color", a.BorderColor)
	aw.str("border-style", string(a.BorderStyle))
	aw.px("border-width", a.BorderWidth)
	aw.color("container-background-color", a.ContainerBackgroundColor)
	aw.list("css-class", a.CSSClass)
	aw.padding("padding", a.Padding)
	aw.value("width", a.Width)
	aw.str("align", string(a.Align))
	return aw.done()
}

func (*DividerAttributes) defaultsTag() string { return TagDivider }

// Spacer is a void mj-spacer.
type Spacer struct {
	Attrs SpacerAttributes
}

// SpacerAttributes holds the mj-spacer attributes.
type SpacerAttributes struct {
	ContainerBackgroundColor style.Color
	CSSClass                 []string
	Padding                  *style.Padding
	Height                   style.Pixels
}

func (*Spacer) TagName() string                    { return TagSpacer }
func (*Spacer) HasContent() bool                   { return false }
func (s *Spacer) Attributes() AttributeRenderer    { return &s.Attrs }
func (*Spacer) RenderContent(io.Writer, int) error { return nil }
func (*Spacer) bodyElement()                       {}

func (a *SpacerAttributes) RenderAttributes(w io.Writer) error {
	aw := newAttrWriter(w)
	aw.color("container-background-color", a.ContainerBackgroundColor)
	aw.list("css-class", a.CSSClass)
	aw.padding("padding", a.Padding)
	aw.px("height", a.Height)
	return aw.done()
}

func (*SpacerAttributes) defaultsTag() string { return TagSpacer }
