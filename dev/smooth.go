package dev

// Smoother keeps a fixed-size circular history of raw ADC samples and
// reports their running mean. One instance per sensor channel, each with
// its own write cursor, so channels settle independently of each other.
type Smoother struct {
	history []uint32
	cursor  int
	sum     uint32
}

// NewSmoother creates a smoother averaging over the given window size.
func NewSmoother(window int) (*Smoother, error) {
	if window < 1 {
		return nil, ErrWindowSize
	}
	return &Smoother{
		history: make([]uint32, window),
	}, nil
}

// Prime fills the whole history with one real sample. Called once at
// startup so the first frames average against a live reading instead of
// drifting up from zero.
func (s *Smoother) Prime(raw uint16) {
	for i := range s.history {
		s.history[i] = uint32(raw)
	}
	s.sum = uint32(raw) * uint32(len(s.history))
	s.cursor = 0
}

// Observe stores raw at the write cursor, advances the cursor and returns
// the truncated integer mean of the history. The mean of uint16 samples
// always fits back into uint16.
func (s *Smoother) Observe(raw uint16) uint16 {
	s.sum -= s.history[s.cursor]
	s.history[s.cursor] = uint32(raw)
	s.sum += uint32(raw)

	s.cursor++
	if s.cursor == len(s.history) {
		s.cursor = 0
	}

	return uint16(s.sum / uint32(len(s.history)))
}

// Window returns the configured window size.
func (s *Smoother) Window() int {
	return len(s.history)
}
