package dev

import (
	"image/color"
	"time"
)

// Flusher is the display collaborator: it transmits all strip buffers to
// the output hardware as one visual frame, blocking until done.
type Flusher interface {
	Flush(frames [][]color.RGBA) error
}

// Pairing routes two sensor channels to one strip: one drives the
// cascade fill, the other the pulse overlay.
type Pairing struct {
	Cascade int
	Pulse   int
}

// Engine runs the per-frame pipeline: sample and condition every sensor
// channel, render every strip from its paired fractions, and commit the
// frame through the flusher. One Tick is one frame; pacing is up to the
// caller (a ticker on hardware, the frontend loop in the simulator).
//
// The engine is single-threaded by design. Nothing here locks, and all
// buffers are allocated once up front.
type Engine struct {
	channels  []*FlexChannel
	strips    []*Strip
	pairs     []Pairing
	flush     Flusher
	now       func() time.Duration
	fractions []float32
	frames    [][]color.RGBA
}

// NewEngine wires channels, strips and their pairings to a flusher.
// Pairings correspond to strips by index and reference channels by index.
// The clock defaults to wall time since construction; see SetClock.
func NewEngine(flush Flusher, channels []*FlexChannel, strips []*Strip, pairs []Pairing) (*Engine, error) {
	if flush == nil {
		return nil, ErrNilFlusher
	}
	if len(pairs) != len(strips) {
		return nil, ErrPairingCount
	}
	for _, p := range pairs {
		if p.Cascade < 0 || p.Cascade >= len(channels) ||
			p.Pulse < 0 || p.Pulse >= len(channels) {
			return nil, ErrChannelPairing
		}
	}

	frames := make([][]color.RGBA, len(strips))
	for i, s := range strips {
		frames[i] = s.Pixels()
	}

	start := time.Now()
	return &Engine{
		channels:  channels,
		strips:    strips,
		pairs:     pairs,
		flush:     flush,
		now:       func() time.Duration { return time.Since(start) },
		fractions: make([]float32, len(channels)),
		frames:    frames,
	}, nil
}

// SetClock replaces the elapsed-time source. The pulse phase is derived
// from this clock, so feeding a fixed clock makes frames reproducible.
func (e *Engine) SetClock(now func() time.Duration) {
	if now != nil {
		e.now = now
	}
}

// Prime seeds every channel's smoothing history from a live reading.
// Call once after the sensor hardware is configured.
func (e *Engine) Prime() {
	for _, ch := range e.channels {
		ch.Prime()
	}
}

// Tick runs one frame: sample all channels, render all strips against the
// same timestamp, flush once. Returns the flusher's error, if any.
func (e *Engine) Tick() error {
	now := e.now()

	for i, ch := range e.channels {
		e.fractions[i] = ch.Fraction()
	}

	for i, s := range e.strips {
		p := e.pairs[i]
		s.Render(e.fractions[p.Cascade], e.fractions[p.Pulse], now)
	}

	return e.flush.Flush(e.frames)
}

// Fractions returns the conditioned readings of the last Tick. The slice
// is live engine state; treat it as read-only.
func (e *Engine) Fractions() []float32 {
	return e.fractions
}
