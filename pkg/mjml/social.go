package mjml

import (
	"io"

	"github.com/dmitrymomot/mjmlkit/pkg/mjml/style"
)

// SocialMode lays social elements out horizontally or vertically.
type SocialMode string

const (
	SocialHorizontal SocialMode = "horizontal"
	SocialVertical   SocialMode = "vertical"
)

// SocialName selects a built-in network icon. The -noshare variants link
// to the profile instead of a share dialog.
type SocialName string

const (
	SocialFacebook         SocialName = "facebook"
	SocialTwitter          SocialName = "twitter"
	SocialGoogle           SocialName = "google"
	SocialPinterest        SocialName = "pinterest"
	SocialLinkedin         SocialName = "linkedin"
	SocialTumblr           SocialName = "tumblr"
	SocialXing             SocialName = "xing"
	SocialFacebookNoShare  SocialName = "facebook-noshare"
	SocialTwitterNoShare   SocialName = "twitter-noshare"
	SocialGoogleNoShare    SocialName = "google-noshare"
	SocialPinterestNoShare SocialName = "pinterest-noshare"
	SocialLinkedinNoShare  SocialName = "linkedin-noshare"
	SocialTumblrNoShare    SocialName = "tumblr-noshare"
	SocialXingNoShare      SocialName = "xing-noshare"
	SocialGithub           SocialName = "github"
	SocialInstagram        SocialName = "instagram"
	SocialWeb              SocialName = "web"
	SocialSnapchat         SocialName = "snapchat"
	SocialYoutube          SocialName = "youtube"
	SocialVimeo            SocialName = "vimeo"
	SocialMedium           SocialName = "medium"
	SocialSoundcloud       SocialName = "soundcloud"
	SocialDribbble         SocialName = "dribbble"
)

// Social is an mj-social holding an ordered list of network elements.
type Social struct {
	Elements []*SocialElement
	Attrs    SocialAttributes
}

// SocialAttributes holds the mj-social attributes. Most of them are
// defaults for the elements.
type SocialAttributes struct {
	Align                    style.Align
	BorderRadius             style.Pixels
	Color                    style.Color
	CSSClass                 []string
	ContainerBackgroundColor style.Color
	FontFamily               []string
	FontSize                 style.PxOrEm
	FontStyle                style.FontStyle
	FontWeight               style.Number
	IconHeight               style.PxOrPercent
	IconSize                 style.PxOrPercent
	InnerPadding             *style.Padding
	LineHeight               style.PxOrPercent
	Mode                     SocialMode
	Padding                  *style.Padding
	IconPadding              *style.Padding
	TextPadding              *style.Padding
	TextDecoration           style.TextDecoration
}

func (*Social) TagName() string                 { return TagSocial }
func (*Social) HasContent() bool                { return true }
func (s *Social) Attributes() AttributeRenderer { return &s.Attrs }
func (*Social) bodyElement()                    {}
func (s *Social) children() []Node              { return asNodes(s.Elements) }

func (s *Social) RenderContent(w io.Writer, depth int) error {
	return RenderChildren(w, s.Elements, depth)
}

func (a *SocialAttributes) RenderAttributes(w io.Writer) error {
	aw := newAttrWriter(w)
	aw.str("align", string(a.Align))
	aw.px("border-radius", a.BorderRadius)
	aw.color("color", a.Color)
	aw.color("container-background-color", a.ContainerBackgroundColor)
	aw.list("css-class", a.CSSClass)
	aw.list("font-family", a.FontFamily)
	aw.value("font-size", a.FontSize)
	aw.str("font-style", string(a.FontStyle))
	aw.number("font-weight", a.FontWeight)
	aw.value("icon-height", a.IconHeight)
	aw.value("icon-size", a.IconSize)
	aw.padding("inner-padding", a.InnerPadding)
	aw.value("line-height", a.LineHeight)
	aw.str("mode", string(a.Mode))
	aw.padding("padding", a.Padding)
	aw.padding("icon-padding", a.IconPadding)
	aw.padding("text-padding", a.TextPadding)
	aw.str("text-decoration", string(a.TextDecoration))
	return aw.done()
}

func (*SocialAttributes) defaultsTag() string { return TagSocial }

// SocialElement is one mj-social-element. Content is the literal label HTML.
type SocialElement struct {
	Content string
	Attrs   SocialElementAttributes
}

// SocialElementAttributes keeps Sizes and Srcset as opaque strings.
type SocialElementAttributes struct {
	Align           style.Align
	Alt             string
	BackgroundColor style.Color
	BorderRadius    style.Pixels
	Color           style.Color
	CSSClass        []string
	FontFamily      []string
	FontSize        style.PxOrEm
	FontStyle       style.FontStyle
	FontWeight      style.Number
	Href            string
	IconHeight      style.PxOrPercent
	IconSize        style.PxOrPercent
	LineHeight      style.PxOrPercent
	Name            SocialName
	Padding         *style.Padding
	IconPadding     *style.Padding
	TextPadding     *style.Padding
	Sizes           string
	Src             string
	Srcset          string
	Rel             string
	Target          string
	Title           string
	TextDecoration  style.TextDecoration
	VerticalAlign   style.VerticalAlign
}

func (*SocialElement) TagName() string                 { return TagSocialElement }
func (*SocialElement) HasContent() bool                { return true }
func (e *SocialElement) Attributes() AttributeRenderer { return &e.Attrs }

func (e *SocialElement) RenderContent(w io.Writer, depth int) error {
	return WriteText(w, e.Content, depth)
}

func (a *SocialElementAttributes) RenderAttributes(w io.Writer) error {
	aw := newAttrWriter(w)
	aw.str("align", string(a.Align))
	aw.str("alt", a.Alt)
	aw.color("background-color", a.BackgroundColor)
	aw.px("border-radius", a.BorderRadius)
	aw.color("color", a.Color)
	aw.list("css-class", a.CSSClass)
	aw.list("font-family", a.FontFamily)
	aw.value("font-size", a.FontSize)
	aw.str("font-style", string(a.FontStyle))
	aw.number("font-weight", a.FontWeight)
	aw.str("href", a.Href)
	aw.value("icon-height", a.IconHeight)
	aw.value("icon-size", a.IconSize)
	aw.value("line-height", a.LineHeight)
	aw.str("name", string(a.Name))
	aw.padding("padding", a.Padding)
	aw.padding("icon-padding", a.IconPadding)
	aw.padding("text-padding", a.TextPadding)
	aw.str("sizes", a.Sizes)
	aw.str("src", a.Src)
	aw.str("srcset", a.Srcset)
	aw.str("rel", a.Rel)
	aw.str("target", a.Target)
	aw.str("title", a.Title)
	aw.str("text-decoration", string(a.TextDecoration))
	aw.str("vertical-align", string(a.VerticalAlign))
	return aw.done()
}

func (*SocialElementAttributes) defaultsTag() string { return TagSocialElement }
