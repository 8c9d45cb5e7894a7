package mjml

import "io"

// Raw passes its content through untouched inside an mj-raw tag.
// It carries no attributes.
type Raw struct {
	Content string
}

func (*Raw) TagName() string               { return TagRaw }
func (*Raw) HasContent() bool              { return true }
func (*Raw) Attributes() AttributeRenderer { return nil }
func (*Raw) bodyElement()                  {}

func (r *Raw) RenderContent(w io.Writer, depth int) error {
	return WriteText(w, r.Content, depth)
}
