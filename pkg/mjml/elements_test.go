package mjml_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/mjmlkit/pkg/mjml"
	"github.com/dmitrymomot/mjmlkit/pkg/mjml/style"
)

func openingTag(t *testing.T, n mjml.Node) string {
	t.Helper()
	return strings.SplitN(renderNode(t, n, 0), "\n", 2)[0]
}

func TestElementAttributes(t *testing.T) {
	tests := []struct {
		name     string
		node     mjml.Node
		expected string
	}{
		{
			name:     "empty attribute set",
			node:     &mjml.Text{Content: "x"},
			expected: `<mj-text>`,
		},
		{
			name: "text in declared order",
			node: &mjml.Text{Content: "x", Attrs: mjml.TextAttributes{
				CSSClass:       []string{"a", "b"},
				Padding:        style.PaddingXY(style.Px(10), style.Px(0)),
				TextDecoration: style.DecorationLineThrough,
				LetterSpacing:  style.Em(0.5),
				FontSize:       style.Px(14),
				FontFamily:     []string{"Arial", "sans-serif"},
				Color:          style.RGB(0x11, 0x22, 0x33),
			}},
			expected: `<mj-text color="#112233" font-family="Arial, sans-serif" font-size="14px" letter-spacing="0.5em"` +
				` text-decoration="line-through" padding-bottom="10px" padding-top="10px" padding-left="0" padding-right="0" css-class="a, b">`,
		},
		{
			name: "image flag and required src",
			node: &mjml.Image{Attrs: mjml.ImageAttributes{
				Src:           "https://example.com/a.png",
				FluidOnMobile: true,
				Width:         style.Px(300),
			}},
			expected: `<mj-image fluid-on-mobile="fluid-on-mobile" src="https://example.com/a.png" width="300px"/>`,
		},
		{
			name:     "image flag off",
			node:     &mjml.Image{Attrs: mjml.ImageAttributes{Src: "a.png"}},
			expected: `<mj-image src="a.png"/>`,
		},
		{
			name: "button borders",
			node: &mjml.Button{Content: "Go", Attrs: mjml.ButtonAttributes{
				Border:    style.NoBorder(),
				BorderTop: &style.Border{Width: style.Px(1), Style: style.BorderSolid, Color: style.MustColor("#000")},
			}},
			expected: `<mj-button border="none" border-top="solid1px#000000">`,
		},
		{
			name:     "quotes escaped in values",
			node:     &mjml.Button{Content: "Go", Attrs: mjml.ButtonAttributes{Href: `https://example.com/?q="x"`}},
			expected: `<mj-button href="https://example.com/?q=&quot;x&quot;">`,
		},
		{
			name: "section flags",
			node: &mjml.Section{Attrs: mjml.SectionAttributes{
				FullWidth: true,
				Direction: style.DirectionRTL,
			}},
			expected: `<mj-section direction="rtl" full-width="full-width">`,
		},
		{
			name: "column padding inline",
			node: &mjml.Column{Attrs: mjml.ColumnAttributes{
				BackgroundColor: style.RGBA(0, 0, 0, 0x80),
				Width:           style.Percent(50),
				Padding: &mjml.ColumnPadding{
					InnerBorder: style.NoBorder(),
					Padding:     *style.PaddingAll(style.Inherit),
				},
			}},
			expected: `<mj-column background-color="#00000080" width="50%" inner-border="none"` +
				` padding-bottom="inherit" padding-top="inherit" padding-left="inherit" padding-right="inherit">`,
		},
		{
			name: "table presentation role",
			node: &mjml.Table{Content: "<tr></tr>", Attrs: mjml.TableAttributes{
				PresentationRole: true,
				TableLayout:      mjml.TableLayoutFixed,
				Width:            style.Percent(100),
			}},
			expected: `<mj-table role="presentation" table-layout="fixed" width="100%">`,
		},
		{
			name: "navbar hamburger",
			node: &mjml.Navbar{Attrs: mjml.NavbarAttributes{
				BaseURL: "https://example.com",
				Hamburger: &mjml.NavbarHamburger{
					IcoColor:   style.MustColor("#fff"),
					IcoPadding: style.PaddingAll(style.Px(4)),
				},
			}},
			expected: `<mj-navbar base-url="https://example.com" ico-color="#FFFFFF"` +
				` ico-padding-bottom="4px" ico-padding-top="4px" ico-padding-left="4px" ico-padding-right="4px">`,
		},
		{
			name: "carousel thumbnails",
			node: &mjml.Carousel{Attrs: mjml.CarouselAttributes{
				TbHoverBorderColor: style.MustColor("#ccc"),
				Thumbnails:         mjml.Hidden,
			}},
			expected: `<mj-carousel tb-hover-border-color="#CCCCCC" thumbnails="hidden">`,
		},
		{
			name: "social padding boxes",
			node: &mjml.Social{Attrs: mjml.SocialAttributes{
				Mode:        mjml.SocialHorizontal,
				IconPadding: style.PaddingAll(style.Px(1)),
				FontSize:    style.Px(0),
			}},
			expected: `<mj-social font-size="0" mode="horizontal"` +
				` icon-padding-bottom="1px" icon-padding-top="1px" icon-padding-left="1px" icon-padding-right="1px">`,
		},
		{
			name: "body width",
			node: &mjml.Body{Attrs: mjml.BodyAttributes{
				BackgroundColor: style.MustColor("#f4f4f4"),
				Width:           style.Px(480),
			}},
			expected: `<mj-body background-color="#F4F4F4" width="480px">`,
		},
		{
			name: "document root",
			node: &mjml.Document{Attrs: mjml.DocumentAttributes{
				Owa:  mjml.OwaDesktop,
				Lang: "en",
				Dir:  style.DirectionLTR,
			}},
			expected: `<mjml owa="desktop" lang="en" dir="ltr">`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, openingTag(t, tt.node))
		})
	}
}

func TestListElements(t *testing.T) {
	t.Run("navbar links", func(t *testing.T) {
		nav := &mjml.Navbar{Links: []*mjml.NavbarLink{
			{Content: "Home", Attrs: mjml.NavbarLinkAttributes{Href: "/"}},
			{Content: "Blog", Attrs: mjml.NavbarLinkAttributes{Href: "/blog"}},
		}}
		assert.Equal(t, lines(
			"<mj-navbar>",
			"\t<mj-navbar-link href=\"/\">",
			"\t\tHome",
			"\t</mj-navbar-link>",
			"\t<mj-navbar-link href=\"/blog\">",
			"\t\tBlog",
			"\t</mj-navbar-link>",
			"</mj-navbar>",
		), renderNode(t, nav, 0))
	})

	t.Run("social elements", func(t *testing.T) {
		social := &mjml.Social{Elements: []*mjml.SocialElement{
			{Content: "Share", Attrs: mjml.SocialElementAttributes{
				Name: mjml.SocialGoogleNoShare,
				Href: "https://example.com",
			}},
		}}
		assert.Equal(t, lines(
			"<mj-social>",
			"\t<mj-social-element href=\"https://example.com\" name=\"google-noshare\">",
			"\t\tShare",
			"\t</mj-social-element>",
			"</mj-social>",
		), renderNode(t, social, 0))
	})

	t.Run("carousel images without content", func(t *testing.T) {
		carousel := &mjml.Carousel{Images: []*mjml.CarouselImage{
			{Attrs: mjml.CarouselImageAttributes{Src: "a.png"}},
		}}
		assert.Equal(t, lines(
			"<mj-carousel>",
			"\t<mj-carousel-image src=\"a.png\">",
			"\t</mj-carousel-image>",
			"</mj-carousel>",
		), renderNode(t, carousel, 0))
	})
}

func TestRawFileStart(t *testing.T) {
	doc := helloDocument()
	doc.FileStart = &mjml.FileStart{Content: "{{ define \"mail\" }}"}

	out, err := mjml.RenderToString(doc)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, lines(
		"<mjml>",
		"\t<mj-raw position=\"file-start\">",
		"\t\t{{ define \"mail\" }}",
		"\t</mj-raw>",
		"\t<mj-body width=\"600px\">",
	)))
}
