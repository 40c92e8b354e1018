/*
Package png2lvgl is a library for converting decoded raster images into
LVGL C array source files.
*/
package png2lvgl

import (
	"encoding/binary"
	"log"

	"png2lvgl/cgen"
	"png2lvgl/encode"
)

// Options configures a Converter. The zero value converts with format
// auto-detection, little-endian RGB565 words and the v8 API vocabulary.
type Options struct {
	// Format is the explicit target format, used only when Auto is false.
	Format encode.Format
	// Auto enables format auto-detection from image content.
	Auto bool
	// BigEndian swaps the two bytes of every RGB565 word.
	BigEndian bool
	// Version selects the LVGL API vocabulary emitted by the writer.
	Version cgen.Version
	// Quantize reduces the image's colors to fit an indexed format's
	// palette instead of failing the conversion.
	Quantize bool
	// Dither applies Floyd-Steinberg error diffusion while quantizing.
	Dither bool
	// Overwrite allows replacing existing output files.
	Overwrite bool
}

type Converter struct {
	opts   Options
	logger *log.Logger
}

func New(opts Options, logger *log.Logger) *Converter {
	return &Converter{
		opts:   opts,
		logger: logger,
	}
}

func (c *Converter) byteOrder() binary.ByteOrder {
	if c.opts.BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}
