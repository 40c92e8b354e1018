package encode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name   string
		expect Format
	}{
		{"true-color", TrueColor},
		{"true-color-alpha", TrueColorAlpha},
		{"true-color-chroma", TrueColorChroma},
		{"indexed1", Indexed1},
		{"indexed8", Indexed8},
		{"alpha2", Alpha2},
		{"alpha8", Alpha8},
	}

	for _, tt := range tests {
		f, err := ParseFormat(tt.name)
		require.NoError(t, err)
		assert.Equal(t, tt.expect, f)
		assert.Equal(t, tt.name, f.String())
	}

	_, err := ParseFormat("auto")
	assert.Error(t, err)
	_, err = ParseFormat("rgb888")
	assert.Error(t, err)
}

func TestFormatProperties(t *testing.T) {
	tests := []struct {
		format  Format
		bits    int
		indexed bool
		alpha   bool
		palette int
	}{
		{TrueColor, 16, false, false, 0},
		{TrueColorAlpha, 24, false, false, 0},
		{Indexed1, 1, true, false, 2},
		{Indexed2, 2, true, false, 4},
		{Indexed4, 4, true, false, 16},
		{Indexed8, 8, true, false, 256},
		{Alpha1, 1, false, true, 0},
		{Alpha4, 4, false, true, 0},
		{Alpha8, 8, false, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			assert.Equal(t, tt.bits, tt.format.BitsPerPixel())
			assert.Equal(t, tt.indexed, tt.format.Indexed())
			assert.Equal(t, tt.alpha, tt.format.AlphaOnly())
			assert.Equal(t, tt.palette, tt.format.PaletteSize())
		})
	}

	assert.False(t, TrueColorChroma.Supported())
	assert.True(t, TrueColor.Supported())
}
