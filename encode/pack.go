package encode

import (
	"encoding/binary"
	"fmt"

	"png2lvgl/pixel"
)

// Buffer is the packed pixel data for one image. len(Data) is always
// Stride*height; the packer never grows it after allocation.
type Buffer struct {
	Data   []byte
	Stride int
}

// Stride returns the bytes occupied by one packed row of w pixels,
// including the padding that rounds sub-byte formats up to a byte boundary.
func Stride(w int, f Format) int {
	switch f {
	case TrueColor:
		return w * 2
	case TrueColorAlpha:
		return w * 3
	default:
		return (w*f.BitsPerPixel() + 7) / 8
	}
}

func to565(r, g, b uint8) uint16 {
	return uint16(r&0xf8)<<8 | uint16(g&0xfc)<<3 | uint16(b)>>3
}

// scaleAlpha rescales an 8-bit alpha value to bits precision, rounding to
// nearest.
func scaleAlpha(a uint8, bits int) uint8 {
	max := 1<<bits - 1
	return uint8((int(a)*max + 127) / 255)
}

// Pack serializes g into f's bit layout. pal is required for indexed
// formats and must have been built from the same grid; order controls the
// byte order of 16-bit RGB565 words and nothing else.
func Pack(g *pixel.Grid, f Format, pal *Palette, order binary.ByteOrder) (*Buffer, error) {
	switch {
	case f == TrueColor || f == TrueColorAlpha:
		return packTrueColor(g, f == TrueColorAlpha, order), nil
	case f.Indexed():
		if pal == nil {
			return nil, fmt.Errorf("encode: format %s requires a palette", f)
		}
		return packSubByte(g, f, func(r, gr, b, a uint8) uint8 {
			idx, _ := pal.Lookup(r, gr, b)
			return idx
		}), nil
	case f.AlphaOnly():
		bits := f.BitsPerPixel()
		return packSubByte(g, f, func(r, gr, b, a uint8) uint8 {
			return scaleAlpha(a, bits)
		}), nil
	default:
		return nil, &UnsupportedFormatError{Format: f}
	}
}

func packTrueColor(g *pixel.Grid, alpha bool, order binary.ByteOrder) *Buffer {
	bpp := 2
	if alpha {
		bpp = 3
	}
	stride := g.W * bpp
	data := make([]byte, stride*g.H)

	for i, o := 0, 0; o < len(g.Pix); i, o = i+bpp, o+4 {
		order.PutUint16(data[i:], to565(g.Pix[o], g.Pix[o+1], g.Pix[o+2]))
		if alpha {
			data[i+2] = g.Pix[o+3]
		}
	}

	return &Buffer{Data: data, Stride: stride}
}

// packSubByte packs one value per pixel, 8/bits pixels per byte, most
// significant bits first. The low bits of a row's last byte stay zero when
// the width is not a multiple of 8/bits.
func packSubByte(g *pixel.Grid, f Format, value func(r, gr, b, a uint8) uint8) *Buffer {
	bits := f.BitsPerPixel()
	mask := uint8(1<<bits - 1)
	stride := (g.W*bits + 7) / 8
	data := make([]byte, stride*g.H)

	for y := 0; y < g.H; y++ {
		var acc uint8
		filled := 0
		o := y * stride
		for x := 0; x < g.W; x++ {
			po := (y*g.W + x) * 4
			acc = acc<<bits | value(g.Pix[po], g.Pix[po+1], g.Pix[po+2], g.Pix[po+3])&mask
			if filled += bits; filled == 8 {
				data[o] = acc
				o++
				acc, filled = 0, 0
			}
		}
		if filled > 0 {
			data[o] = acc << (8 - filled)
		}
	}

	return &Buffer{Data: data, Stride: stride}
}

// UnpackIndices reverses the sub-byte packing of an indexed or alpha-only
// buffer, returning one value per pixel in row-major order.
func UnpackIndices(buf *Buffer, f Format, w, h int) []uint8 {
	bits := f.BitsPerPixel()
	mask := uint8(1<<bits - 1)
	out := make([]uint8, w*h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pos := x * bits
			b := buf.Data[y*buf.Stride+pos/8]
			out[y*w+x] = b >> (8 - bits - pos%8) & mask
		}
	}

	return out
}
