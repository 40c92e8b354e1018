/*
Package encode implements the pixel-format encoding engine behind the
converter.

Given a pixel grid it selects (or is told) a target color format, builds a
palette for indexed formats, packs the pixels into the format's bit layout
and assembles the descriptor metadata the code generator needs. The layouts
match what the LVGL image decoder expects in memory:

True color pixels are 16-bit RGB565 words, little-endian unless asked
otherwise, with an extra alpha byte per pixel for the alpha variant. Indexed
and alpha-only pixels are packed most-significant-bit first, 8/bits pixels
per byte, each row padded up to a byte boundary. Indexed palettes are stored
as one RGB565 word per entry ahead of the pixel data.
*/
package encode

import "fmt"

// Format is the target color format of a conversion. The zero value is
// TrueColor.
type Format int

const (
	TrueColor Format = iota
	TrueColorAlpha
	TrueColorChroma
	Indexed1
	Indexed2
	Indexed4
	Indexed8
	Alpha1
	Alpha2
	Alpha4
	Alpha8
)

var formatNames = map[Format]string{
	TrueColor:       "true-color",
	TrueColorAlpha:  "true-color-alpha",
	TrueColorChroma: "true-color-chroma",
	Indexed1:        "indexed1",
	Indexed2:        "indexed2",
	Indexed4:        "indexed4",
	Indexed8:        "indexed8",
	Alpha1:          "alpha1",
	Alpha2:          "alpha2",
	Alpha4:          "alpha4",
	Alpha8:          "alpha8",
}

func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat maps a command line format name to a Format. "auto" is not a
// Format; the caller decides between explicit choice and detection.
func ParseFormat(s string) (Format, error) {
	for f, name := range formatNames {
		if name == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("encode: unknown format %q", s)
}

// BitsPerPixel returns the packed size of one pixel in bits.
func (f Format) BitsPerPixel() int {
	switch f {
	case TrueColor, TrueColorChroma:
		return 16
	case TrueColorAlpha:
		return 24
	case Indexed1, Alpha1:
		return 1
	case Indexed2, Alpha2:
		return 2
	case Indexed4, Alpha4:
		return 4
	default:
		return 8
	}
}

// Indexed reports whether pixels are palette indices.
func (f Format) Indexed() bool {
	return f >= Indexed1 && f <= Indexed8
}

// AlphaOnly reports whether pixels carry only an alpha value.
func (f Format) AlphaOnly() bool {
	return f >= Alpha1 && f <= Alpha8
}

// PaletteSize returns the maximum number of palette entries, or zero for
// formats that carry no palette.
func (f Format) PaletteSize() int {
	if !f.Indexed() {
		return 0
	}
	return 1 << f.BitsPerPixel()
}

// Supported reports whether the encoder implements f. Chroma keyed true
// color is recognized on the command line but not implemented.
func (f Format) Supported() bool {
	return f != TrueColorChroma
}
