package encode

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleTrueColor(t *testing.T) {
	g := newGrid(t, 3, 2, uniform(255, 0, 0, 255))

	buf, err := Pack(g, TrueColor, nil, binary.LittleEndian)
	require.NoError(t, err)

	d := Assemble(g, TrueColor, buf, nil, binary.LittleEndian)

	assert.Equal(t, TrueColor, d.Format)
	assert.Equal(t, 3, d.Width)
	assert.Equal(t, 2, d.Height)
	assert.Equal(t, 6, d.Stride)
	assert.Equal(t, 12, d.DataSize)
	assert.Nil(t, d.Palette)
}

func TestAssembleIncludesPaletteBytes(t *testing.T) {
	g := newGrid(t, 4, 1, func(x, y int) [4]uint8 {
		if x%2 == 0 {
			return [4]uint8{255, 0, 0, 255}
		}
		return [4]uint8{0, 0, 255, 255}
	})

	p, err := BuildPalette(g, Indexed2)
	require.NoError(t, err)

	buf, err := Pack(g, Indexed2, p, binary.LittleEndian)
	require.NoError(t, err)

	d := Assemble(g, Indexed2, buf, p, binary.LittleEndian)

	// One packed byte per row plus two palette entries of two bytes each.
	assert.Equal(t, 1, d.Stride)
	assert.Len(t, d.Palette, 4)
	assert.Equal(t, len(buf.Data)+4, d.DataSize)
}
