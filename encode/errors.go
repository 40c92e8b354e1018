package encode

import "fmt"

// PaletteOverflowError is returned when an image holds more distinct colors
// than the chosen indexed format can address. Colors is the count at the
// point the scan gave up, so it is always Limit+1.
type PaletteOverflowError struct {
	Format Format
	Colors int
	Limit  int
}

func (e *PaletteOverflowError) Error() string {
	return fmt.Sprintf("encode: image has %d colors, exceeds %d for %s", e.Colors, e.Limit, e.Format)
}

// UnsupportedFormatError is returned for recognized but unimplemented
// formats before any encoding work starts.
type UnsupportedFormatError struct {
	Format Format
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("encode: format %s not implemented", e.Format)
}
