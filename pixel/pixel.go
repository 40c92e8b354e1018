/*
Package pixel normalizes decoded images into a flat grid of RGBA samples.

A Grid is the only pixel representation the rest of the converter sees;
whatever color model the decoder produced is flattened here into straight
(non-premultiplied) 8-bit RGBA, row-major, with no padding between rows.
*/
package pixel

import (
	"fmt"
	"image"
	"image/draw"
)

// Dimension limits accepted from the decoder.
const (
	MinDimension = 1
	MaxDimension = 8192
)

// DimensionError reports a width or height outside the accepted range.
type DimensionError struct {
	Axis  string
	Value int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("pixel: %s %d outside range [%d, %d]", e.Axis, e.Value, MinDimension, MaxDimension)
}

// CheckDimensions validates image dimensions before any grid is built.
func CheckDimensions(w, h int) error {
	if w < MinDimension || w > MaxDimension {
		return &DimensionError{Axis: "width", Value: w}
	}
	if h < MinDimension || h > MaxDimension {
		return &DimensionError{Axis: "height", Value: h}
	}
	return nil
}

// Grid is a width by height grid of RGBA samples, row-major, four bytes per
// pixel. len(Pix) == W*H*4 always holds. A Grid is never mutated once built.
type Grid struct {
	W, H int
	Pix  []uint8
}

// New returns a Grid of the given size with every sample zero.
func New(w, h int) (*Grid, error) {
	if err := CheckDimensions(w, h); err != nil {
		return nil, err
	}
	return &Grid{W: w, H: h, Pix: make([]uint8, w*h*4)}, nil
}

// FromImage flattens m into a Grid. Premultiplied and paletted color models
// are converted to straight RGBA; the grid origin is always (0, 0) whatever
// the source bounds were.
func FromImage(m image.Image) (*Grid, error) {
	b := m.Bounds()
	if err := CheckDimensions(b.Dx(), b.Dy()); err != nil {
		return nil, err
	}
	w, h := b.Dx(), b.Dy()

	// NRGBA is what the PNG decoder hands over; copying its rows directly
	// keeps straight alpha samples exact instead of round-tripping them
	// through premultiplication.
	if src, ok := m.(*image.NRGBA); ok {
		g := &Grid{W: w, H: h, Pix: make([]uint8, w*h*4)}
		for y := 0; y < h; y++ {
			o := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(g.Pix[y*w*4:(y+1)*w*4], src.Pix[o:o+w*4])
		}
		return g, nil
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), m, b.Min, draw.Src)

	return &Grid{W: w, H: h, Pix: dst.Pix}, nil
}

// RGBA returns the sample at (x, y).
func (p *Grid) RGBA(x, y int) (r, g, b, a uint8) {
	o := (y*p.W + x) * 4
	return p.Pix[o], p.Pix[o+1], p.Pix[o+2], p.Pix[o+3]
}

// Set overwrites the sample at (x, y). Only intended for building grids by
// hand; conversion never mutates a grid.
func (p *Grid) Set(x, y int, r, g, b, a uint8) {
	o := (y*p.W + x) * 4
	p.Pix[o], p.Pix[o+1], p.Pix[o+2], p.Pix[o+3] = r, g, b, a
}
