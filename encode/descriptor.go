package encode

import (
	"encoding/binary"

	"png2lvgl/pixel"
)

// Descriptor carries the metadata the code generator needs alongside the
// packed buffer. Format is version neutral; mapping it to a symbolic tag is
// the writer's job.
type Descriptor struct {
	Format   Format
	Width    int
	Height   int
	Stride   int
	DataSize int
	Palette  []byte
}

// Assemble derives the descriptor for a packed buffer. DataSize covers the
// palette bytes as well since LVGL stores them ahead of the pixel data in
// the same array. Palette words use the same byte order as the pixel words.
func Assemble(g *pixel.Grid, f Format, buf *Buffer, pal *Palette, order binary.ByteOrder) Descriptor {
	d := Descriptor{
		Format:   f,
		Width:    g.W,
		Height:   g.H,
		Stride:   buf.Stride,
		DataSize: len(buf.Data),
	}
	if pal != nil {
		d.Palette = pal.Bytes(order)
		d.DataSize += len(d.Palette)
	}
	return d
}
