package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mjmlkit/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("render", slog.String("tag", "mj-text"), slog.Int("depth", 2))
	require.Equal(t, "render", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "tag", g[0].Key)
	assert.Equal(t, "depth", g[1].Key)
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestRenderAttrs(t *testing.T) {
	tests := []struct {
		name  string
		attr  slog.Attr
		key   string
		value any
	}{
		{name: "component", attr: logger.Component("mjml"), key: "component", value: "mjml"},
		{name: "element", attr: logger.Element("mj-section"), key: "element", value: "mj-section"},
		{name: "bytes", attr: logger.Bytes(512), key: "bytes", value: int64(512)},
		{name: "nodes", attr: logger.Nodes(7), key: "nodes", value: int64(7)},
		{name: "duration", attr: logger.Duration(time.Second), key: "duration", value: time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.value, tt.attr.Value.Any())
		})
	}
}
