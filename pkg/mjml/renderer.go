package mjml

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/mjmlkit/pkg/logger"
)

// Renderer writes documents as markup. A Renderer holds no per-render
// state and can be shared between goroutines.
type Renderer struct {
	cfg Config
	log *slog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithConfig replaces the renderer configuration.
func WithConfig(cfg Config) Option {
	return func(r *Renderer) {
		r.cfg = cfg
	}
}

// WithBufferSize sets the write buffer size. Zero disables buffering;
// negative values are ignored.
func WithBufferSize(n int) Option {
	return func(r *Renderer) {
		if n >= 0 {
			r.cfg.BufferSize = n
		}
	}
}

// WithLogger sets the logger used for render summaries and failures.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.log = l
		}
	}
}

// NewRenderer creates a Renderer with DefaultConfig and a discarding logger
// unless overridden by options.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		cfg: DefaultConfig(),
		log: logger.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.With(logger.Component("mjml"))
	return r
}

var defaultRenderer = NewRenderer()

// Render writes doc to w using the default renderer.
func Render(w io.Writer, doc *Document) error {
	return defaultRenderer.Render(w, doc)
}

// RenderToString renders doc into memory using the default renderer.
func RenderToString(doc *Document) (string, error) {
	return defaultRenderer.RenderToString(doc)
}

// Render writes doc to w. On failure the returned error matches
// ErrRenderFailed and the writer's own error; whatever was written before
// the failure stays in w.
func (r *Renderer) Render(w io.Writer, doc *Document) error {
	return r.render(context.Background(), w, doc)
}

// RenderToString renders doc into memory and returns the markup only when
// the whole document was written.
func (r *Renderer) RenderToString(doc *Document) (string, error) {
	var buf bytes.Buffer
	if err := r.render(context.Background(), &buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *Renderer) render(ctx context.Context, w io.Writer, doc *Document) error {
	if doc == nil {
		return ErrNilDocument
	}

	start := time.Now()
	cw := &countingWriter{w: w}

	var err error
	if r.cfg.BufferSize > 0 {
		bw := bufio.NewWriterSize(cw, r.cfg.BufferSize)
		err = RenderNode(bw, doc, 0)
		if err == nil {
			err = bw.Flush()
		}
	} else {
		err = RenderNode(cw, doc, 0)
	}

	if err != nil {
		attrs := []slog.Attr{logger.Error(err), logger.Bytes(cw.n)}
		if tag, ok := failedElement(err); ok {
			attrs = append(attrs, logger.Element(tag))
		}
		err = errors.Join(ErrRenderFailed, err)
		r.log.LogAttrs(ctx, slog.LevelError, "mjml render failed", attrs...)
		return err
	}

	if r.cfg.LogRenders {
		r.log.DebugContext(ctx, "mjml document rendered",
			logger.Bytes(cw.n),
			logger.Nodes(countNodes(doc)),
			logger.Duration(time.Since(start)),
		)
	}
	return nil
}

// countingWriter counts bytes accepted by the underlying writer.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
