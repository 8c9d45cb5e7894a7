package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/mjmlkit/pkg/mjml/style"
)

func TestPixels(t *testing.T) {
	tests := []struct {
		name     string
		value    style.Pixels
		expected string
	}{
		{name: "zero has no unit", value: style.Px(0), expected: "0"},
		{name: "one", value: style.Px(1), expected: "1px"},
		{name: "body width", value: style.Px(600), expected: "600px"},
		{name: "max", value: style.Px(4294967295), expected: "4294967295px"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.String())
			assert.True(t, tt.value.IsSet())
		})
	}
}

func TestPixelsZeroValueIsAbsent(t *testing.T) {
	var p style.Pixels
	assert.False(t, p.IsSet())
	assert.Equal(t, "0", p.String())
}

func TestRelativeLengths(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{ String() string }
		expected string
	}{
		{name: "whole percent", value: style.Percent(50), expected: "50%"},
		{name: "fractional percent", value: style.Percent(33.3), expected: "33.3%"},
		{name: "zero percent keeps unit", value: style.Percent(0), expected: "0%"},
		{name: "whole em", value: style.Em(2), expected: "2em"},
		{name: "fractional em", value: style.Em(1.5), expected: "1.5em"},
		{name: "negative em", value: style.Em(-0.25), expected: "-0.25em"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.String())
		})
	}
}

func TestLengthUnions(t *testing.T) {
	var width style.PxOrPercent = style.Px(300)
	assert.Equal(t, "300px", width.String())

	width = style.Percent(25)
	assert.Equal(t, "25%", width.String())

	var spacing style.PxOrEm = style.Px(0)
	assert.Equal(t, "0", spacing.String())

	spacing = style.Em(0.1)
	assert.Equal(t, "0.1em", spacing.String())
}

func TestNumber(t *testing.T) {
	var n style.Number
	assert.False(t, n.IsSet())

	n = style.Int(700)
	assert.True(t, n.IsSet())
	assert.Equal(t, uint32(700), n.Value())
	assert.Equal(t, "700", n.String())

	assert.Equal(t, "0", style.Int(0).String())
}
