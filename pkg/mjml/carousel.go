package mjml

import (
	"io"

	"github.com/dmitrymomot/mjmlkit/pkg/mjml/style"
)

// Visibility toggles the carousel thumbnails.
type Visibility string

const (
	Visible Visibility = "visible"
	Hidden  Visibility = "hidden"
)

// Carousel is an mj-carousel holding an ordered list of images.
type Carousel struct {
	Images []*CarouselImage
	Attrs  CarouselAttributes
}

// CarouselAttributes holds the mj-carousel attributes.
type CarouselAttributes struct {
	Align                    style.Align
	ContainerBackgroundColor style.Color
	BorderRadius             style.Pixels
	CSSClass                 []string
	IconWidth                style.Pixels
	LeftIcon                 string
	RightIcon                string
	TbBorder                 *style.Border
	TbBorderRadius           style.Pixels
	TbHoverBorderColor       style.Color
	TbSelectedBorderColor    style.Color
	TbWidth                  style.Pixels
	Thumbnails               Visibility
}

func (*Carousel) TagName() string                 { return TagCarousel }
func (*Carousel) HasContent() bool                { return true }
func (c *Carousel) Attributes() AttributeRenderer { return &c.Attrs }
func (*Carousel) bodyElement()                    {}
func (c *Carousel) children() []Node              { return asNodes(c.Images) }

func (c *Carousel) RenderContent(w io.Writer, depth int) error {
	return RenderChildren(w, c.Images, depth)
}

func (a *CarouselAttributes) RenderAttributes(w io.Writer) error {
	aw := newAttrWriter(w)
	aw.str("align", string(a.Align))
	aw.color("container-background-color", a.ContainerBackgroundColor)
	aw.px("border-radius", a.BorderRadius)
	aw.list("css-class", a.CSSClass)
	aw.px("icon-width", a.IconWidth)
	aw.str("left-icon", a.LeftIcon)
	aw.str("right-icon", a.RightIcon)
	aw.border("tb-border", a.TbBorder)
	aw.px("tb-border-radius", a.TbBorderRadius)
	aw.color("tb-hover-border-color", a.TbHoverBorderColor)
	aw.color("tb-selected-border-color", a.TbSelectedBorderColor)
	aw.px("tb-width", a.TbWidth)
	aw.str("thumbnails", string(a.Thumbnails))
	return aw.done()
}

func (*CarouselAttributes) defaultsTag() string { return TagCarousel }

// CarouselImage is one mj-carousel-image. Content is optional literal HTML.
type CarouselImage struct {
	Content string
	Attrs   CarouselImageAttributes
}

// CarouselImageAttributes holds the attributes of one carousel image.
type CarouselImageAttributes struct {
	Alt          string
	CSSClass     []string
	Href         string
	Rel          string
	Src          string
	Target       string
	ThumbnailSrc string
	Title        string
}

func (*CarouselImage) TagName() string                 { return TagCarouselImage }
func (*CarouselImage) HasContent() bool                { return true }
func (i *CarouselImage) Attributes() AttributeRenderer { return &i.Attrs }

func (i *CarouselImage) RenderContent(w io.Writer, depth int) error {
	return WriteText(w, i.Content, depth)
}

func (a *CarouselImageAttributes) RenderAttributes(w io.Writer) error {
	aw := newAttrWriter(w)
	aw.str("alt", a.Alt)
	aw.list("css-class", a.CSSClass)
	aw.str("href", a.Href)
	aw.str("rel", a.Rel)
	aw.str("src", a.Src)
	aw.str("target", a.Target)
	aw.str("thumbnail-src", a.ThumbnailSrc)
	aw.str("title", a.Title)
	return aw.done()
}

func (*CarouselImageAttributes) defaultsTag() string { return TagCarouselImage }
