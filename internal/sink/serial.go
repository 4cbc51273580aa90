package sink

import (
	"image/color"
	"io"

	"github.com/go-stack/stack"
	"github.com/karlmutch/errors"
	"github.com/tarm/serial"
)

// Preamble marks the start of every serial frame so a receiver that
// attaches mid-stream can resynchronize.
const Preamble = 0xA5

// Serial streams frames down a serial link: the preamble byte, then one
// RGB triplet per pixel with the strips back to back. Unlike the OPC
// mirror it writes every frame, since dropped frames on a dumb receiver
// leave the strip stale.
type Serial struct {
	w   io.Writer
	buf []byte
}

// NewSerial opens the serial device at the given baud rate.
func NewSerial(device string, baud int) (*Serial, errors.Error) {
	port, errGo := serial.OpenPort(&serial.Config{Name: device, Baud: baud})
	if errGo != nil {
		return nil, errors.Wrap(errGo).With("device", device).With("stack", stack.Trace().TrimRuntime())
	}
	return NewSerialWriter(port), nil
}

// NewSerialWriter wraps an already-open stream.
func NewSerialWriter(w io.Writer) *Serial {
	return &Serial{w: w}
}

// Flush writes one framed snapshot of all strips.
func (s *Serial) Flush(frames [][]color.RGBA) error {
	n := 0
	for _, f := range frames {
		n += len(f)
	}

	need := 1 + n*3
	if cap(s.buf) < need {
		s.buf = make([]byte, 0, need)
	}
	s.buf = s.buf[:0]
	s.buf = append(s.buf, Preamble)
	for _, f := range frames {
		for _, px := range f {
			s.buf = append(s.buf, px.R, px.G, px.B)
		}
	}

	if _, errGo := s.w.Write(s.buf); errGo != nil {
		return errors.Wrap(errGo).With("stack", stack.Trace().TrimRuntime())
	}
	return nil
}
