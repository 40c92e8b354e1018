package encode

import "png2lvgl/pixel"

// Beyond this many distinct colors only true color formats remain viable,
// so counting stops one past it.
const maxPaletteColors = 256

type gridStats struct {
	opaque    bool // alpha is 255 everywhere
	grayscale bool // r == g == b everywhere
	flatColor bool // the same RGB everywhere
	colors    int  // distinct RGBA values, capped at maxPaletteColors+1
	grays     int  // distinct gray levels (r channel)
	alphas    int  // distinct alpha levels
}

func scan(g *pixel.Grid) gridStats {
	s := gridStats{opaque: true, grayscale: true, flatColor: true}

	colors := make(map[uint32]struct{})
	var grays, alphas [256]bool
	r0, g0, b0 := g.Pix[0], g.Pix[1], g.Pix[2]

	for o := 0; o < len(g.Pix); o += 4 {
		r, gr, b, a := g.Pix[o], g.Pix[o+1], g.Pix[o+2], g.Pix[o+3]

		if a != 0xff {
			s.opaque = false
		}
		if r != gr || gr != b {
			s.grayscale = false
		}
		if r != r0 || gr != g0 || b != b0 {
			s.flatColor = false
		}

		if !grays[r] {
			grays[r] = true
			s.grays++
		}
		if !alphas[a] {
			alphas[a] = true
			s.alphas++
		}
		if s.colors <= maxPaletteColors {
			key := uint32(r)<<24 | uint32(gr)<<16 | uint32(b)<<8 | uint32(a)
			if _, ok := colors[key]; !ok {
				colors[key] = struct{}{}
				s.colors++
			}
		}
	}

	return s
}

func smallestIndexed(colors int) Format {
	switch {
	case colors <= 2:
		return Indexed1
	case colors <= 4:
		return Indexed2
	case colors <= 16:
		return Indexed4
	default:
		return Indexed8
	}
}

func smallestAlpha(levels int) Format {
	switch {
	case levels <= 2:
		return Alpha1
	case levels <= 4:
		return Alpha2
	case levels <= 16:
		return Alpha4
	default:
		return Alpha8
	}
}

// Detect chooses a format from image content alone. The checks run in
// order: true color for anything beyond palette reach, then the smallest
// indexed depth for opaque grayscale, the smallest alpha depth for images
// that only vary in alpha, and the smallest indexed depth that fits
// otherwise.
func Detect(g *pixel.Grid) Format {
	s := scan(g)

	switch {
	case s.opaque && s.colors > maxPaletteColors:
		return TrueColor
	case !s.opaque && s.colors > maxPaletteColors:
		return TrueColorAlpha
	case s.grayscale && s.opaque:
		return smallestIndexed(s.grays)
	case !s.opaque && s.flatColor:
		return smallestAlpha(s.alphas)
	default:
		return smallestIndexed(s.colors)
	}
}
