package mjml

import "io"

// Node is the contract every markup element implements. The engine
// (RenderNode) is the only caller: a node never writes its own tags.
type Node interface {
	// TagName returns the element name, e.g. "mj-text".
	TagName() string
	// HasContent reports whether the element has nested content. Nodes
	// without content are written as a single self-closing tag.
	HasContent() bool
	// Attributes returns the attribute renderer, or nil when the element
	// carries no attributes.
	Attributes() AttributeRenderer
	// RenderContent writes the inner payload (child nodes or literal text)
	// at the given depth.
	RenderContent(w io.Writer, depth int) error
}

// AttributeRenderer writes the present attributes of an element as
// ` key="value"` pairs in their declared order.
type AttributeRenderer interface {
	RenderAttributes(w io.Writer) error
}

// BodyElement is a node that may be placed inside a column or a hero.
// The set is closed: only the element types of this package implement it.
type BodyElement interface {
	Node
	bodyElement()
}

// SectionElement is a node that may be placed inside the body or a wrapper:
// *Section, *Wrapper or *Hero.
type SectionElement interface {
	Node
	sectionElement()
}

// ColumnElement is a node that may be placed inside a section, a wrapper's
// section or a group: *Column or *Group.
type ColumnElement interface {
	Node
	columnElement()
}

// parent is implemented by nodes with child nodes. Used for tree walks that
// do not write markup.
type parent interface {
	children() []Node
}

func asNodes[T Node](in []T) []Node {
	out := make([]Node, 0, len(in))
	for _, n := range in {
		out = append(out, n)
	}
	return out
}
