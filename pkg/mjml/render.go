package mjml

import (
	"errors"
	"io"
	"reflect"
	"strings"
)

const indentUnit = "\t"

// RenderNode writes n at the given depth: the indented opening tag with its
// attributes, then either "/>" for content-less nodes or the nested content
// at depth+1 followed by the indented closing tag. Every tag ends a line.
// Head literals (mj-title, mj-preview, mj-html-attribute) keep their text
// between the tags on the same line.
//
// Errors come from w or from a node's own RenderContent. They are wrapped
// with the tag of the innermost element being written and still match the
// original error with errors.Is. Output written before the failure is left
// in place.
func RenderNode(w io.Writer, n Node, depth int) error {
	if err := renderNode(w, n, depth); err != nil {
		if _, ok := failedElement(err); ok {
			return err
		}
		return &elementError{tag: n.TagName(), err: err}
	}
	return nil
}

func renderNode(w io.Writer, n Node, depth int) error {
	ew := &errWriter{w: w}
	indent := strings.Repeat(indentUnit, depth)
	tag := n.TagName()

	ew.writeString(indent)
	ew.writeString("<")
	ew.writeString(tag)
	if ew.err != nil {
		return ew.err
	}

	if attrs := n.Attributes(); attrs != nil {
		if err := attrs.RenderAttributes(w); err != nil {
			return err
		}
	}

	if !n.HasContent() {
		ew.writeString("/>\n")
		return ew.err
	}

	if in, ok := n.(inline); ok {
		ew.writeString(">")
		ew.writeString(in.inlineText())
		ew.writeString("</")
		ew.writeString(tag)
		ew.writeString(">\n")
		return ew.err
	}

	ew.writeString(">\n")
	if ew.err != nil {
		return ew.err
	}

	if err := n.RenderContent(w, depth+1); err != nil {
		return err
	}

	ew.writeString(indent)
	ew.writeString("</")
	ew.writeString(tag)
	ew.writeString(">\n")
	return ew.err
}

// RenderChildren renders each node in order at depth. Nil entries, including
// nil pointers, are skipped.
func RenderChildren[T Node](w io.Writer, nodes []T, depth int) error {
	for _, n := range nodes {
		if isNil(n) {
			continue
		}
		if err := RenderNode(w, n, depth); err != nil {
			return err
		}
	}
	return nil
}

// WriteText writes literal content at depth, one output line per input line.
// Non-empty lines are indented; the text itself is written verbatim. Empty
// text writes nothing.
func WriteText(w io.Writer, text string, depth int) error {
	if text == "" {
		return nil
	}
	ew := &errWriter{w: w}
	indent := strings.Repeat(indentUnit, depth)
	for _, line := range strings.Split(text, "\n") {
		if line != "" {
			ew.writeString(indent)
			ew.writeString(line)
		}
		ew.writeString("\n")
	}
	return ew.err
}

// inline is implemented by leaf nodes whose text is written verbatim between
// the opening and closing tag.
type inline interface {
	inlineText() string
}

// isNil reports whether v is nil or a nil pointer, map or slice held in an
// interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

// elementError records the element that was being written when rendering
// failed.
type elementError struct {
	tag string
	err error
}

func (e *elementError) Error() string { return e.tag + ": " + e.err.Error() }
func (e *elementError) Unwrap() error { return e.err }

// failedElement returns the tag of the element a render error occurred in.
func failedElement(err error) (string, bool) {
	var e *elementError
	if errors.As(err, &e) {
		return e.tag, true
	}
	return "", false
}

// errWriter keeps the first write error and turns later writes into no-ops.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) writeString(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s)
}
