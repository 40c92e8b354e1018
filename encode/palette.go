package encode

import (
	"encoding/binary"
	"fmt"

	"png2lvgl/pixel"
)

// Palette is an insertion-ordered set of RGB565 colors. Entry order is the
// order colors were first seen during a row-major scan, which makes palette
// construction deterministic for a given grid.
type Palette struct {
	entries []uint16
	index   map[uint16]uint8
}

// BuildPalette scans g and assigns each distinct color, quantized to
// RGB565, the next free palette index. It fails with a
// *PaletteOverflowError the moment a color would not fit in f's palette.
func BuildPalette(g *pixel.Grid, f Format) (*Palette, error) {
	limit := f.PaletteSize()
	if limit == 0 {
		return nil, fmt.Errorf("encode: format %s does not use a palette", f)
	}

	p := &Palette{index: make(map[uint16]uint8, limit)}
	for o := 0; o < len(g.Pix); o += 4 {
		key := to565(g.Pix[o], g.Pix[o+1], g.Pix[o+2])
		if _, ok := p.index[key]; ok {
			continue
		}
		if len(p.entries) == limit {
			return nil, &PaletteOverflowError{Format: f, Colors: limit + 1, Limit: limit}
		}
		p.index[key] = uint8(len(p.entries))
		p.entries = append(p.entries, key)
	}

	return p, nil
}

// Len returns the number of entries assigned so far.
func (p *Palette) Len() int {
	return len(p.entries)
}

// Entry returns the RGB565 value stored at index i.
func (p *Palette) Entry(i int) uint16 {
	return p.entries[i]
}

// Lookup returns the index assigned to the color, after RGB565
// quantization. ok is false for colors the palette was not built from.
func (p *Palette) Lookup(r, g, b uint8) (idx uint8, ok bool) {
	idx, ok = p.index[to565(r, g, b)]
	return
}

// Bytes serializes the palette as one 16-bit word per entry in the given
// byte order, the layout the descriptor prepends to the pixel data.
func (p *Palette) Bytes(order binary.ByteOrder) []byte {
	b := make([]byte, len(p.entries)*2)
	for i, e := range p.entries {
		order.PutUint16(b[i*2:], e)
	}
	return b
}
