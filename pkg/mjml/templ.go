package mjml

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Component adapts the document to templ.Component using the default
// renderer, so it can be passed anywhere a templ component is accepted.
func (d *Document) Component() templ.Component {
	return defaultRenderer.Component(d)
}

// Component adapts doc to templ.Component using r. The render context is
// passed to the logger.
func (r *Renderer) Component(doc *Document) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return r.render(ctx, w, doc)
	})
}

// RenderHTML renders a templ component to a string, typically to build the
// literal HTML content of a Text, Button, Raw or Table node.
func RenderHTML(ctx context.Context, c templ.Component) (string, error) {
	var sb strings.Builder
	if err := c.Render(ctx, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
