package mjml

import (
	"io"
	"strings"

	"github.com/dmitrymomot/mjmlkit/pkg/mjml/style"
)

var attrValueEscaper = strings.NewReplacer(`"`, "&quot;")

// attrWriter writes ` key="value"` pairs, skipping absent values.
// The first write error sticks and is returned by done.
type attrWriter struct {
	ew errWriter
}

func newAttrWriter(w io.Writer) *attrWriter {
	return &attrWriter{ew: errWriter{w: w}}
}

func (a *attrWriter) done() error {
	return a.ew.err
}

// raw always writes the pair. Used for required attributes.
func (a *attrWriter) raw(key, value string) {
	a.ew.writeString(" ")
	a.ew.writeString(key)
	a.ew.writeString(`="`)
	a.ew.writeString(attrValueEscaper.Replace(value))
	a.ew.writeString(`"`)
}

func (a *attrWriter) str(key, value string) {
	if value != "" {
		a.raw(key, value)
	}
}

// value skips nil values, including nil pointers held in the interface.
func (a *attrWriter) value(key string, v interface{ String() string }) {
	if !isNil(v) {
		a.raw(key, v.String())
	}
}

func (a *attrWriter) px(key string, v style.Pixels) {
	if v.IsSet() {
		a.raw(key, v.String())
	}
}

func (a *attrWriter) color(key string, c style.Color) {
	if c.IsSet() {
		a.raw(key, c.String())
	}
}

func (a *attrWriter) number(key string, n style.Number) {
	if n.IsSet() {
		a.raw(key, n.String())
	}
}

// flag writes key="key" when on.
func (a *attrWriter) flag(key string, on bool) {
	if on {
		a.raw(key, key)
	}
}

func (a *attrWriter) list(key string, values []string) {
	if len(values) > 0 {
		a.raw(key, strings.Join(values, ", "))
	}
}

func (a *attrWriter) border(key string, b *style.Border) {
	if b != nil {
		a.raw(key, b.String())
	}
}

func (a *attrWriter) position(key string, p *style.Position) {
	if p != nil {
		a.raw(key, p.String())
	}
}

// padding writes all four sides of p as prefix-bottom, prefix-top,
// prefix-left and prefix-right.
func (a *attrWriter) padding(prefix string, p *style.Padding) {
	if p == nil {
		return
	}
	a.raw(prefix+"-bottom", style.Side(p.Bottom))
	a.raw(prefix+"-top", style.Side(p.Top))
	a.raw(prefix+"-left", style.Side(p.Left))
	a.raw(prefix+"-right", style.Side(p.Right))
}
