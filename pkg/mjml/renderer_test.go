package mjml_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mjmlkit/pkg/logger"
	"github.com/dmitrymomot/mjmlkit/pkg/mjml"
)

var errDiskFull = errors.New("disk full")

// limitWriter accepts limit bytes and then fails.
type limitWriter struct {
	limit int
	buf   bytes.Buffer
}

func (w *limitWriter) Write(p []byte) (int, error) {
	room := w.limit - w.buf.Len()
	if len(p) > room {
		w.buf.Write(p[:room])
		return room, errDiskFull
	}
	return w.buf.Write(p)
}

func TestRenderWriteFailure(t *testing.T) {
	full, err := mjml.RenderToString(helloDocument())
	require.NoError(t, err)

	tests := []struct {
		name       string
		bufferSize int
	}{
		{name: "unbuffered", bufferSize: 0},
		{name: "buffered", bufferSize: 4096},
		{name: "small buffer", bufferSize: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &limitWriter{limit: 40}
			r := mjml.NewRenderer(mjml.WithBufferSize(tt.bufferSize))

			err := r.Render(w, helloDocument())
			require.Error(t, err)
			assert.ErrorIs(t, err, mjml.ErrRenderFailed)
			assert.ErrorIs(t, err, errDiskFull)

			// partial output is left in the writer
			assert.Equal(t, full[:40], w.buf.String())
		})
	}
}

func TestRenderNilDocument(t *testing.T) {
	var buf bytes.Buffer
	err := mjml.Render(&buf, nil)
	assert.ErrorIs(t, err, mjml.ErrNilDocument)
	assert.Empty(t, buf.String())

	_, err = mjml.RenderToString(nil)
	assert.ErrorIs(t, err, mjml.ErrNilDocument)
}

func TestRendererMatchesPackageRender(t *testing.T) {
	expected, err := mjml.RenderToString(helloDocument())
	require.NoError(t, err)

	for _, size := range []int{0, 1, 16, 4096} {
		var buf bytes.Buffer
		r := mjml.NewRenderer(mjml.WithBufferSize(size))
		require.NoError(t, r.Render(&buf, helloDocument()))
		assert.Equal(t, expected, buf.String(), "buffer size %d", size)
	}
}

func TestRendererLogging(t *testing.T) {
	t.Run("render summary", func(t *testing.T) {
		var logBuf bytes.Buffer
		log := logger.New(logger.WithOutput(&logBuf), logger.WithLevel(slog.LevelDebug))
		cfg := mjml.DefaultConfig()
		cfg.LogRenders = true
		r := mjml.NewRenderer(mjml.WithConfig(cfg), mjml.WithLogger(log))

		out, err := r.RenderToString(helloDocument())
		require.NoError(t, err)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(logBuf.Bytes(), &entry))
		assert.Equal(t, "DEBUG", entry["level"])
		assert.Equal(t, "mjml document rendered", entry["msg"])
		assert.Equal(t, "mjml", entry["component"])
		assert.EqualValues(t, len(out), entry["bytes"])
		assert.EqualValues(t, 5, entry["nodes"])
		assert.Contains(t, entry, "duration")
	})

	t.Run("summary disabled", func(t *testing.T) {
		var logBuf bytes.Buffer
		log := logger.New(logger.WithOutput(&logBuf), logger.WithLevel(slog.LevelDebug))
		r := mjml.NewRenderer(mjml.WithLogger(log))

		_, err := r.RenderToString(helloDocument())
		require.NoError(t, err)
		assert.Empty(t, logBuf.String())
	})

	t.Run("failure", func(t *testing.T) {
		var logBuf bytes.Buffer
		log := logger.New(logger.WithOutput(&logBuf), logger.WithTextFormatter())
		r := mjml.NewRenderer(mjml.WithLogger(log), mjml.WithBufferSize(0))

		err := r.Render(&limitWriter{limit: 3}, helloDocument())
		require.Error(t, err)
		out := logBuf.String()
		assert.Contains(t, out, "level=ERROR")
		assert.Contains(t, out, `msg="mjml render failed"`)
		assert.Contains(t, out, "bytes=3")
		assert.Contains(t, out, "element=mjml")
		assert.True(t, strings.Contains(out, "disk full"))
	})

	t.Run("failure inside nested element", func(t *testing.T) {
		full, err := mjml.RenderToString(helloDocument())
		require.NoError(t, err)

		var logBuf bytes.Buffer
		log := logger.New(logger.WithOutput(&logBuf), logger.WithTextFormatter())
		r := mjml.NewRenderer(mjml.WithLogger(log), mjml.WithBufferSize(0))

		limit := strings.Index(full, "Hello")
		err = r.Render(&limitWriter{limit: limit}, helloDocument())
		require.Error(t, err)
		assert.ErrorIs(t, err, errDiskFull)
		assert.Contains(t, logBuf.String(), "element=mj-text")
	})

	t.Run("nil logger ignored", func(t *testing.T) {
		r := mjml.NewRenderer(mjml.WithLogger(nil))
		_, err := r.RenderToString(helloDocument())
		assert.NoError(t, err)
	})
}
