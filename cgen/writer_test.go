package cgen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"png2lvgl/encode"
)

func testDescriptor() (encode.Descriptor, *encode.Buffer) {
	buf := &encode.Buffer{
		Data:   []byte{0x00, 0xf8, 0xe0, 0x07},
		Stride: 4,
	}
	d := encode.Descriptor{
		Format:   encode.TrueColor,
		Width:    2,
		Height:   1,
		Stride:   4,
		DataSize: 4,
	}
	return d, buf
}

func TestParseVersion(t *testing.T) {
	v, err := ParseVersion("v8")
	require.NoError(t, err)
	assert.Equal(t, V8, v)

	v, err = ParseVersion("v9")
	require.NoError(t, err)
	assert.Equal(t, V9, v)

	_, err = ParseVersion("v7")
	assert.Error(t, err)
}

func TestTagVocabularies(t *testing.T) {
	tests := []struct {
		format encode.Format
		v8, v9 string
	}{
		{encode.TrueColor, "LV_IMG_CF_TRUE_COLOR", "LV_COLOR_FORMAT_RGB565"},
		{encode.TrueColorAlpha, "LV_IMG_CF_TRUE_COLOR_ALPHA", "LV_COLOR_FORMAT_RGB565A8"},
		{encode.Indexed1, "LV_IMG_CF_INDEXED_1BIT", "LV_COLOR_FORMAT_I1"},
		{encode.Indexed8, "LV_IMG_CF_INDEXED_8BIT", "LV_COLOR_FORMAT_I8"},
		{encode.Alpha4, "LV_IMG_CF_ALPHA_4BIT", "LV_COLOR_FORMAT_A4"},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			assert.Equal(t, tt.v8, Tag(tt.format, V8))
			assert.Equal(t, tt.v9, Tag(tt.format, V9))
		})
	}
}

func TestWriteV8(t *testing.T) {
	d, buf := testDescriptor()

	var out bytes.Buffer
	require.NoError(t, NewWriter(&out, V8).Write("logo", d, buf))
	s := out.String()

	assert.Contains(t, s, "#include \"lvgl.h\"")
	assert.Contains(t, s, "#define LV_ATTRIBUTE_IMG_LOGO")
	assert.Contains(t, s, "uint8_t logo_map[] = {")
	assert.Contains(t, s, "  0x00, 0xf8, 0xe0, 0x07,\n")
	assert.Contains(t, s, "const lv_img_dsc_t logo = {")
	assert.Contains(t, s, ".header.cf = LV_IMG_CF_TRUE_COLOR,")
	assert.Contains(t, s, ".header.always_zero = 0,")
	assert.Contains(t, s, ".header.w = 2,")
	assert.Contains(t, s, ".header.h = 1,")
	assert.Contains(t, s, ".data_size = 4,")
	assert.Contains(t, s, ".data = logo_map,")
	assert.NotContains(t, s, "Color of index")
}

func TestWriteV9(t *testing.T) {
	d, buf := testDescriptor()

	var out bytes.Buffer
	require.NoError(t, NewWriter(&out, V9).Write("logo", d, buf))
	s := out.String()

	assert.Contains(t, s, "const lv_image_dsc_t logo = {")
	assert.Contains(t, s, ".header.magic = LV_IMAGE_HEADER_MAGIC,")
	assert.Contains(t, s, ".header.cf = LV_COLOR_FORMAT_RGB565,")
	assert.Contains(t, s, ".header.stride = 4,")
	assert.NotContains(t, s, "always_zero")
}

func TestWritePaletteEntries(t *testing.T) {
	d := encode.Descriptor{
		Format:   encode.Indexed1,
		Width:    3,
		Height:   1,
		Stride:   1,
		DataSize: 5,
		Palette:  []byte{0x00, 0xf8, 0x1f, 0x00},
	}
	buf := &encode.Buffer{Data: []byte{0x40}, Stride: 1}

	var out bytes.Buffer
	require.NoError(t, NewWriter(&out, V8).Write("icon", d, buf))
	s := out.String()

	assert.Contains(t, s, "0x00, 0xf8, \t/*Color of index 0*/")
	assert.Contains(t, s, "0x1f, 0x00, \t/*Color of index 1*/")
	assert.Contains(t, s, ".data_size = 5,")
}

func TestWriteWrapsDataRows(t *testing.T) {
	buf := &encode.Buffer{Data: make([]byte, 20), Stride: 20}
	d := encode.Descriptor{Format: encode.Alpha8, Width: 20, Height: 1, Stride: 20, DataSize: 20}

	var out bytes.Buffer
	require.NoError(t, NewWriter(&out, V8).Write("strip", d, buf))

	var rows int
	for _, line := range strings.Split(out.String(), "\n") {
		if strings.HasPrefix(line, "  0x") {
			rows++
		}
	}
	assert.Equal(t, 2, rows)
}
