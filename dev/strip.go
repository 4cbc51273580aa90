package dev

import (
	"image/color"
	"math"
	"time"
)

// Effect holds the tuning for one strip: the cascade fill colour and the
// pulse overlay bounds. Pulse period shortens and amplitude grows as the
// controlling fraction rises.
type Effect struct {
	BaseHue    uint8         // cascade fill hue
	BaseSat    uint8         // cascade fill saturation, value is always full
	PulseSat   uint8         // pulse overlay saturation
	SlowPeriod time.Duration // pulse period at fraction 0
	FastPeriod time.Duration // pulse period at fraction 1
	MaxPulse   uint8         // pulse brightness ceiling at fraction 1
}

// DefaultEffect returns the tuning used on the installed strips.
func DefaultEffect() Effect {
	return Effect{
		BaseHue:    160,
		BaseSat:    255,
		PulseSat:   255,
		SlowPeriod: 1400 * time.Millisecond,
		FastPeriod: 150 * time.Millisecond,
		MaxPulse:   200,
	}
}

// Strip owns the pixel buffer for one physical LED strip. Index len-1 is
// the far end of the strip; the cascade fills from there back toward 0.
// The buffer is rewritten in full on every Render, so no state leaks
// between frames other than the caller's clock.
type Strip struct {
	px []color.RGBA
	fx Effect
}

// NewStrip allocates a strip of n pixels, all off.
func NewStrip(n int, fx Effect) (*Strip, error) {
	if n < 1 {
		return nil, ErrStripLength
	}
	s := &Strip{
		px: make([]color.RGBA, n),
		fx: fx,
	}
	s.Clear()
	return s, nil
}

// Len returns the number of pixels on the strip.
func (s *Strip) Len() int {
	return len(s.px)
}

// Pixels returns the live pixel buffer. The slice is overwritten by the
// next Render; copy it if it needs to survive the frame.
func (s *Strip) Pixels() []color.RGBA {
	return s.px
}

// Clear switches every pixel off.
func (s *Strip) Clear() {
	off := color.RGBA{A: 0xFF}
	for i := range s.px {
		s.px[i] = off
	}
}

// Render computes the frame for the given control fractions at the given
// elapsed time. cascade drives how much of the strip is filled from the
// far end; pulse drives the hue, speed and strength of a sinusoidal glow
// layered additively over the whole strip, lit or not. Deriving the
// oscillation from elapsed time keeps it continuous regardless of frame
// cadence.
func (s *Strip) Render(cascade, pulse float32, now time.Duration) {
	if pulse < 0 {
		pulse = 0
	}
	if pulse > 1 {
		pulse = 1
	}

	n := len(s.px)

	lit := int(math.Round(float64(cascade) * float64(n)))
	if lit < 0 {
		lit = 0
	}
	if lit > n {
		lit = n
	}

	s.Clear()
	base := HSV(s.fx.BaseHue, s.fx.BaseSat, 0xFF)
	for i := n - lit; i < n; i++ {
		s.px[i] = base
	}

	overlay := HSV(s.pulseHue(pulse), s.fx.PulseSat, s.pulseValue(pulse, now))
	for i := range s.px {
		s.px[i] = AddSat(s.px[i], overlay)
	}
}

func (s *Strip) pulseHue(pulse float32) uint8 {
	return uint8(math.Round(float64(pulse) * 255))
}

// pulseValue maps the pulse fraction and clock onto the overlay
// brightness: period interpolates SlowPeriod→FastPeriod, amplitude scales
// 0→MaxPulse, and the phase oscillates sinusoidally in [0,1].
func (s *Strip) pulseValue(pulse float32, now time.Duration) uint8 {
	period := s.fx.SlowPeriod - time.Duration(float64(s.fx.SlowPeriod-s.fx.FastPeriod)*float64(pulse))
	phase := (math.Sin(2*math.Pi*float64(now%period)/float64(period)) + 1) / 2
	amplitude := float64(pulse) * float64(s.fx.MaxPulse)
	return uint8(math.Round(phase * amplitude))
}
