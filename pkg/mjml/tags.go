package mjml

// Tag names of the markup dialect.
const (
	TagMjml             = "mjml"
	TagHead             = "mj-head"
	TagBody             = "mj-body"
	TagRaw              = "mj-raw"
	TagSection          = "mj-section"
	TagWrapper          = "mj-wrapper"
	TagHero             = "mj-hero"
	TagColumn           = "mj-column"
	TagGroup            = "mj-group"
	TagText             = "mj-text"
	TagButton           = "mj-button"
	TagImage            = "mj-image"
	TagDivider          = "mj-divider"
	TagSpacer           = "mj-spacer"
	TagTable            = "mj-table"
	TagAccordion        = "mj-accordion"
	TagAccordionElement = "mj-accordion-element"
	TagAccordionTitle   = "mj-accordion-title"
	TagAccordionText    = "mj-accordion-text"
	TagCarousel         = "mj-carousel"
	TagCarouselImage    = "mj-carousel-image"
	TagNavbar           = "mj-navbar"
	TagNavbarLink       = "mj-navbar-link"
	TagSocial           = "mj-social"
	TagSocialElement    = "mj-social-element"
	TagAttributes       = "mj-attributes"
	TagAll              = "mj-all"
	TagClass            = "mj-class"
	TagBreakpoint       = "mj-breakpoint"
	TagFont             = "mj-font"
	TagHTMLAttributes   = "mj-html-attributes"
	TagSelector         = "mj-selector"
	TagHTMLAttribute    = "mj-html-attribute"
	TagPreview          = "mj-preview"
	TagStyle            = "mj-style"
	TagTitle            = "mj-title"
)
