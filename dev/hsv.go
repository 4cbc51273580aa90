package dev

import "image/color"

// HSV converts a hue/saturation/value triple into RGB. Hue runs the full
// uint8 wheel (0 red, 85 green, 170 blue, wrapping back to red), matching
// the colour space addressable strips are usually driven in. Integer math
// only, so it is safe to call per pixel per frame on a microcontroller.
func HSV(h, s, v uint8) color.RGBA {
	if s == 0 {
		return color.RGBA{R: v, G: v, B: v, A: 0xFF}
	}

	region := h / 43
	remainder := uint16(h-region*43) * 6

	p := uint8(uint16(v) * uint16(255-s) >> 8)
	q := uint8(uint16(v) * (255 - (uint16(s)*remainder)>>8) >> 8)
	t := uint8(uint16(v) * (255 - (uint16(s)*(255-remainder))>>8) >> 8)

	switch region {
	case 0:
		return color.RGBA{R: v, G: t, B: p, A: 0xFF}
	case 1:
		return color.RGBA{R: q, G: v, B: p, A: 0xFF}
	case 2:
		return color.RGBA{R: p, G: v, B: t, A: 0xFF}
	case 3:
		return color.RGBA{R: p, G: q, B: v, A: 0xFF}
	case 4:
		return color.RGBA{R: t, G: p, B: v, A: 0xFF}
	default:
		return color.RGBA{R: v, G: p, B: q, A: 0xFF}
	}
}

// AddSat sums two colours per channel, clamping each channel at 255
// instead of wrapping.
func AddSat(a, b color.RGBA) color.RGBA {
	return color.RGBA{
		R: sat8(a.R, b.R),
		G: sat8(a.G, b.G),
		B: sat8(a.B, b.B),
		A: 0xFF,
	}
}

func sat8(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 0xFF {
		return 0xFF
	}
	return uint8(s)
}

// Scale8 dims a colour by scale/255, leaving alpha alone. scale 255 is
// identity, scale 0 is black.
func Scale8(c color.RGBA, scale uint8) color.RGBA {
	m := uint16(scale) + 1
	return color.RGBA{
		R: uint8(uint16(c.R) * m >> 8),
		G: uint8(uint16(c.G) * m >> 8),
		B: uint8(uint16(c.B) * m >> 8),
		A: c.A,
	}
}
