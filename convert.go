package png2lvgl

import (
	"errors"
	"image"
	"image/color"
	"os"

	"github.com/ericpauley/go-quantize/quantize"
	"golang.org/x/image/draw"

	"png2lvgl/cgen"
	"png2lvgl/encode"
	"png2lvgl/pixel"
)

// Convert runs the whole encoding pipeline on one decoded image and
// returns the descriptor plus the packed buffer. Every call works on its
// own grid, palette and buffer, so conversions are independent of each
// other.
func (c *Converter) Convert(m image.Image) (encode.Descriptor, *encode.Buffer, error) {
	if !c.opts.Auto && !c.opts.Format.Supported() {
		return encode.Descriptor{}, nil, &encode.UnsupportedFormatError{Format: c.opts.Format}
	}

	grid, err := pixel.FromImage(m)
	if err != nil {
		return encode.Descriptor{}, nil, err
	}

	f := c.opts.Format
	if c.opts.Auto {
		f = encode.Detect(grid)
		c.logger.Printf("detected format %s", f)
	}

	var pal *encode.Palette
	if f.Indexed() {
		pal, grid, err = c.buildPalette(m, grid, f)
		if err != nil {
			return encode.Descriptor{}, nil, err
		}
	}

	order := c.byteOrder()

	buf, err := encode.Pack(grid, f, pal, order)
	if err != nil {
		return encode.Descriptor{}, nil, err
	}

	d := encode.Assemble(grid, f, buf, pal, order)
	c.logger.Printf("packed %dx%d as %s: stride %d, %d bytes", d.Width, d.Height, f, d.Stride, d.DataSize)

	return d, buf, nil
}

// buildPalette builds the palette for an indexed format, optionally
// quantizing the image down to the palette size on overflow. It returns
// the grid to pack from, which is a reduced copy when quantization kicked
// in.
func (c *Converter) buildPalette(m image.Image, grid *pixel.Grid, f encode.Format) (*encode.Palette, *pixel.Grid, error) {
	pal, err := encode.BuildPalette(grid, f)

	var overflow *encode.PaletteOverflowError
	if err != nil && errors.As(err, &overflow) && c.opts.Quantize {
		c.logger.Printf("quantizing to %d colors for %s", f.PaletteSize(), f)

		reduced, rerr := pixel.FromImage(c.reduceColors(m, f.PaletteSize()))
		if rerr != nil {
			return nil, nil, rerr
		}
		grid = reduced

		pal, err = encode.BuildPalette(grid, f)
	}

	return pal, grid, err
}

// reduceColors remaps m onto a median cut palette of at most colors
// entries.
func (c *Converter) reduceColors(m image.Image, colors int) image.Image {
	b := m.Bounds()
	q := quantize.MedianCutQuantizer{}

	dst := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), q.Quantize(make(color.Palette, 0, colors), m))
	if c.opts.Dither {
		draw.FloydSteinberg.Draw(dst, dst.Bounds(), m, b.Min)
	} else {
		draw.Draw(dst, dst.Bounds(), m, b.Min, draw.Src)
	}

	return dst
}

// ConvertFile decodes input, converts it and writes the C source to
// output. An empty output derives the path from input by swapping the
// extension for .c; the C identifier comes from the output file stem.
func (c *Converter) ConvertFile(input, output string) error {
	if output == "" {
		output = outputPath(input)
	}

	if err := validateInput(input); err != nil {
		return err
	}
	if err := validateOutput(output, c.opts.Overwrite); err != nil {
		return err
	}

	in, err := os.Open(input)
	if err != nil {
		return err
	}
	defer in.Close()

	m, _, err := image.Decode(in)
	if err != nil {
		return err
	}

	d, buf, err := c.Convert(m)
	if err != nil {
		return err
	}

	out, err := os.Create(output)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := cgen.NewWriter(out, c.opts.Version).Write(variableName(output), d, buf); err != nil {
		return err
	}

	c.logger.Printf("%s: %dx%d -> %s (%s)", input, d.Width, d.Height, output, cgen.Tag(d.Format, c.opts.Version))

	return nil
}
