/*
Package cgen turns an encoded image into C source text that LVGL can
compile in: a byte array holding the palette and pixel data followed by an
image descriptor struct referencing it.

LVGL renamed its whole image API between major versions, so the writer
speaks both vocabularies: the v8 LV_IMG_CF_* tags with lv_img_dsc_t, and
the v9 LV_COLOR_FORMAT_* tags with lv_image_dsc_t. Which one is emitted
has no effect on the packed bytes.
*/
package cgen

import (
	"fmt"
	"io"
	"strings"

	"png2lvgl/encode"
)

// Version selects the LVGL API vocabulary to emit.
type Version int

const (
	V8 Version = iota
	V9
)

// ParseVersion maps a command line API name to a Version.
func ParseVersion(s string) (Version, error) {
	switch s {
	case "v8":
		return V8, nil
	case "v9":
		return V9, nil
	}
	return 0, fmt.Errorf("cgen: unknown LVGL API version %q", s)
}

func (v Version) String() string {
	if v == V9 {
		return "v9"
	}
	return "v8"
}

var v8Tags = map[encode.Format]string{
	encode.TrueColor:       "LV_IMG_CF_TRUE_COLOR",
	encode.TrueColorAlpha:  "LV_IMG_CF_TRUE_COLOR_ALPHA",
	encode.TrueColorChroma: "LV_IMG_CF_TRUE_COLOR_CHROMA_KEYED",
	encode.Indexed1:        "LV_IMG_CF_INDEXED_1BIT",
	encode.Indexed2:        "LV_IMG_CF_INDEXED_2BIT",
	encode.Indexed4:        "LV_IMG_CF_INDEXED_4BIT",
	encode.Indexed8:        "LV_IMG_CF_INDEXED_8BIT",
	encode.Alpha1:          "LV_IMG_CF_ALPHA_1BIT",
	encode.Alpha2:          "LV_IMG_CF_ALPHA_2BIT",
	encode.Alpha4:          "LV_IMG_CF_ALPHA_4BIT",
	encode.Alpha8:          "LV_IMG_CF_ALPHA_8BIT",
}

var v9Tags = map[encode.Format]string{
	encode.TrueColor:      "LV_COLOR_FORMAT_RGB565",
	encode.TrueColorAlpha: "LV_COLOR_FORMAT_RGB565A8",
	encode.Indexed1:       "LV_COLOR_FORMAT_I1",
	encode.Indexed2:       "LV_COLOR_FORMAT_I2",
	encode.Indexed4:       "LV_COLOR_FORMAT_I4",
	encode.Indexed8:       "LV_COLOR_FORMAT_I8",
	encode.Alpha1:         "LV_COLOR_FORMAT_A1",
	encode.Alpha2:         "LV_COLOR_FORMAT_A2",
	encode.Alpha4:         "LV_COLOR_FORMAT_A4",
	encode.Alpha8:         "LV_COLOR_FORMAT_A8",
}

// Tag returns the symbolic color format name for f under version v.
func Tag(f encode.Format, v Version) string {
	if v == V9 {
		return v9Tags[f]
	}
	return v8Tags[f]
}

// Writer emits one image per Write call. Writes are sticky: after the
// first underlying write error everything else becomes a no-op and the
// error is returned.
type Writer struct {
	w       io.Writer
	version Version
	err     error
}

// NewWriter returns a Writer emitting version v source to w.
func NewWriter(w io.Writer, version Version) *Writer {
	return &Writer{w: w, version: version}
}

func (cw *Writer) printf(format string, args ...interface{}) {
	if cw.err != nil {
		return
	}
	_, cw.err = fmt.Fprintf(cw.w, format, args...)
}

// Write emits the include preamble, the data array and the descriptor
// struct for one image under the given C identifier.
func (cw *Writer) Write(name string, d encode.Descriptor, buf *encode.Buffer) error {
	cw.writeHeader(name)
	cw.writeArray(name, d, buf)
	cw.writeDescriptor(name, d)
	return cw.err
}

func (cw *Writer) writeHeader(name string) {
	cw.printf("#ifdef __has_include\n")
	cw.printf("    #if __has_include(\"lvgl.h\")\n")
	cw.printf("        #ifndef LV_LVGL_H_INCLUDE_SIMPLE\n")
	cw.printf("            #define LV_LVGL_H_INCLUDE_SIMPLE\n")
	cw.printf("        #endif\n")
	cw.printf("    #endif\n")
	cw.printf("#endif\n\n")
	cw.printf("#if defined(LV_LVGL_H_INCLUDE_SIMPLE)\n")
	cw.printf("    #include \"lvgl.h\"\n")
	cw.printf("#else\n")
	cw.printf("    #include \"lvgl/lvgl.h\"\n")
	cw.printf("#endif\n\n")
	cw.printf("#ifndef LV_ATTRIBUTE_MEM_ALIGN\n")
	cw.printf("#define LV_ATTRIBUTE_MEM_ALIGN\n")
	cw.printf("#endif\n\n")
	cw.printf("#ifndef LV_ATTRIBUTE_IMG_%s\n", strings.ToUpper(name))
	cw.printf("#define LV_ATTRIBUTE_IMG_%s\n", strings.ToUpper(name))
	cw.printf("#endif\n\n")
}

func (cw *Writer) writeArray(name string, d encode.Descriptor, buf *encode.Buffer) {
	cw.printf("const LV_ATTRIBUTE_MEM_ALIGN LV_ATTRIBUTE_LARGE_CONST LV_ATTRIBUTE_IMG_%s uint8_t %s_map[] = {\n",
		strings.ToUpper(name), name)

	if len(d.Palette) > 0 {
		for i := 0; i < len(d.Palette); i += 2 {
			cw.printf("  0x%02x, 0x%02x, \t/*Color of index %d*/\n", d.Palette[i], d.Palette[i+1], i/2)
		}
		cw.printf("\n")
	}

	for i := 0; i < len(buf.Data); i += 16 {
		end := i + 16
		if end > len(buf.Data) {
			end = len(buf.Data)
		}
		cw.printf("  ")
		for j, b := range buf.Data[i:end] {
			if j > 0 {
				cw.printf(", ")
			}
			cw.printf("0x%02x", b)
		}
		cw.printf(",\n")
	}

	cw.printf("};\n\n")
}

func (cw *Writer) writeDescriptor(name string, d encode.Descriptor) {
	tag := Tag(d.Format, cw.version)

	if cw.version == V9 {
		cw.printf("const lv_image_dsc_t %s = {\n", name)
		cw.printf("  .header.magic = LV_IMAGE_HEADER_MAGIC,\n")
		cw.printf("  .header.cf = %s,\n", tag)
		cw.printf("  .header.w = %d,\n", d.Width)
		cw.printf("  .header.h = %d,\n", d.Height)
		cw.printf("  .header.stride = %d,\n", d.Stride)
		cw.printf("  .data_size = %d,\n", d.DataSize)
		cw.printf("  .data = %s_map,\n", name)
		cw.printf("};\n")
		return
	}

	cw.printf("const lv_img_dsc_t %s = {\n", name)
	cw.printf("  .header.cf = %s,\n", tag)
	cw.printf("  .header.always_zero = 0,\n")
	cw.printf("  .header.reserved = 0,\n")
	cw.printf("  .header.w = %d,\n", d.Width)
	cw.printf("  .header.h = %d,\n", d.Height)
	cw.printf("  .data_size = %d,\n", d.DataSize)
	cw.printf("  .data = %s_map,\n", name)
	cw.printf("};\n")
}
