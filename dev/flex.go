package dev

// AnalogReader is the raw sampling collaborator: one analog input
// returning left-aligned 16-bit counts, as machine.ADC does.
type AnalogReader interface {
	ReadRaw() uint16
}

// FlexChannel conditions one flex sensor. Every sample passes through the
// channel's own smoothing window and is scaled onto [0,1], so a noisy or
// partially-calibrated sensor still yields a stable control fraction.
type FlexChannel struct {
	src    AnalogReader
	smooth *Smoother
	scale  Approximator[float32]
}

// NewFlexChannel binds a sensor input to a fresh smoothing window of the
// given size and the supplied raw→fraction scaler.
func NewFlexChannel(src AnalogReader, window int, scale Approximator[float32]) (*FlexChannel, error) {
	if src == nil {
		return nil, ErrNilReader
	}
	if scale == nil {
		return nil, ErrNilScaler
	}
	smooth, err := NewSmoother(window)
	if err != nil {
		return nil, err
	}
	return &FlexChannel{
		src:    src,
		smooth: smooth,
		scale:  scale,
	}, nil
}

// Prime fills the smoothing history from one live reading. Call once
// after the hardware is configured, before the first frame.
func (c *FlexChannel) Prime() {
	c.smooth.Prime(c.src.ReadRaw())
}

// Fraction takes one sample and returns the smoothed reading scaled onto
// [0,1].
func (c *FlexChannel) Fraction() float32 {
	return c.scale.Convert(c.smooth.Observe(c.src.ReadRaw()))
}
