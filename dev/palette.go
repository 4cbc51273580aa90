package dev

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette is a 256-step gradient between two colors, precomputed so that
// per-pixel lookups cost an array index. Blending runs in Lab space,
// which keeps the midpoints from washing out the way naive RGB lerps do.
type Palette [256]color.RGBA

// NewPalette builds the gradient from two hex endpoints ("#RRGGBB").
func NewPalette(fromHex, toHex string) (*Palette, error) {
	from, err := colorful.Hex(fromHex)
	if err != nil {
		return nil, ErrPaletteEndpoint
	}
	to, err := colorful.Hex(toHex)
	if err != nil {
		return nil, ErrPaletteEndpoint
	}

	var p Palette
	for i := range p {
		t := float64(i) / float64(len(p)-1)
		r, g, b := from.BlendLab(to, t).Clamped().RGB255()
		p[i] = color.RGBA{R: r, G: g, B: b, A: 0xFF}
	}
	return &p, nil
}

// Sample maps t in [0, 1] onto the gradient. Out-of-range values clamp.
func (p *Palette) Sample(t float32) color.RGBA {
	if t <= 0 {
		return p[0]
	}
	if t >= 1 {
		return p[len(p)-1]
	}
	return p[int(t*float32(len(p)-1)+0.5)]
}
