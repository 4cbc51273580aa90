package sink

import (
	"image/color"

	"github.com/itohio/flexglow/dev"
)

// Fanout drives several flushers from one engine tick. Every sink sees
// every frame even when an earlier one fails; the first error wins.
type Fanout struct {
	sinks []dev.Flusher
}

func NewFanout(sinks ...dev.Flusher) *Fanout {
	return &Fanout{sinks: sinks}
}

func (f *Fanout) Flush(frames [][]color.RGBA) error {
	var first error
	for _, s := range f.sinks {
		if err := s.Flush(frames); err != nil && first == nil {
			first = err
		}
	}
	return first
}
