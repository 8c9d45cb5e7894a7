package mjml

import (
	"io"

	"github.com/dmitrymomot/mjmlkit/pkg/mjml/style"
)

// Image is a void mj-image. Src is required and always rendered.
type Image struct {
	Attrs ImageAttributes
}

// ImageAttributes keeps Sizes and Srcset as opaque strings.
type ImageAttributes struct {
	Align                    style.Align
	Alt                      string
	Border                   *style.Border
	BorderBottom             *style.Border
	BorderLeft               *style.Border
	BorderRadius             style.Pixels
	BorderRight              *style.Border
	BorderTop                *style.Border
	ContainerBackgroundColor style.Color
	CSSClass                 []string
	FluidOnMobile            bool
	Height                   style.Pixels
	Href                     string
	Name                     string
	Padding                  *style.Padding
	Rel                      string
	Sizes                    string
	Src                      string
	Srcset                   string
	Target                   string
	Title                    string
	Usemap                   string
	Width                    style.Pixels
}

func (*Image) TagName() string                    { return TagImage }
func (*Image) HasContent() bool                   { return false }
func (i *Image) Attributes() AttributeRenderer    { return &i.Attrs }
func (*Image) RenderContent(io.Writer, int) error { return nil }
func (*Image) bodyElement()                       {}

func (a *ImageAttributes) RenderAttributes(w io.Writer) error {
	aw := newAttrWriter(w)
	aw.str("align", string(a.Align))
	aw.str("alt", a.Alt)
	aw.border("border", a.Border)
	aw.border("border-bottom", a.BorderBottom)
	aw.border("border-left", a.BorderLeft)
	aw.border("border-right", a.BorderRight)
	aw.border("border-top", a.BorderTop)
	aw.px("border-radius", a.BorderRadius)
	aw.color("container-background-color", a.ContainerBackgroundColor)
	aw.list("css-class", a.CSSClass)
	aw.flag("fluid-on-mobile", a.FluidOnMobile)
	aw.px("height", a.Height)
	aw.str("href", a.Href)
	aw.str("name", a.Name)
	aw.padding("padding", a.Padding)
	aw.str("rel", a.Rel)
	aw.str("sizes", a.Sizes)
	aw.raw("src", a.Src)
	aw.str("srcset", a.Srcset)
	aw.str("target", a.Target)
	aw.str("title", a.Title)
	aw.str("usemap", a.Usemap)
	aw.px("width", a.Width)
	return aw.done()
}

func (*ImageAttributes) defaultsTag() string { return TagImage }
