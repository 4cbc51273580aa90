// Package sink mirrors rendered frames onto external surfaces: an Open
// Pixel Control server and a raw serial link. Every sink implements
// dev.Flusher, so it can stand in for the strip hardware or ride along
// in a fanout.
package sink

import (
	"bytes"
	"image/color"

	"github.com/go-stack/stack"
	"github.com/karlmutch/errors"
	opc "github.com/kellydunn/go-opc"
)

// OPC forwards frames to an Open Pixel Control server, such as a
// fadecandy board or the openpixelcontrol GL viewer. Both strips are
// concatenated onto one OPC channel in strip order. Consecutive
// identical frames are not resent.
type OPC struct {
	server  string
	channel uint8
	client  *opc.Client
	last    []byte
	flat    []byte
}

// NewOPC prepares a mirror for the given "host:port" server. Call
// Connect before the first Flush.
func NewOPC(server string, channel uint8) *OPC {
	return &OPC{
		server:  server,
		channel: channel,
		client:  opc.NewClient(),
	}
}

// Connect dials the server.
func (o *OPC) Connect() errors.Error {
	if errGo := o.client.Connect("tcp", o.server); errGo != nil {
		return errors.Wrap(errGo).With("server", o.server).With("stack", stack.Trace().TrimRuntime())
	}
	return nil
}

// Flush sends one OPC set-pixels message covering all frames.
func (o *OPC) Flush(frames [][]color.RGBA) error {
	n := 0
	for _, f := range frames {
		n += len(f)
	}

	if cap(o.flat) < n*3 {
		o.flat = make([]byte, 0, n*3)
	}
	o.flat = o.flat[:0]
	for _, f := range frames {
		for _, px := range f {
			o.flat = append(o.flat, px.R, px.G, px.B)
		}
	}

	if bytes.Equal(o.flat, o.last) {
		return nil
	}

	m := opc.NewMessage(o.channel)
	m.SetLength(uint16(n * 3))
	i := 0
	for _, f := range frames {
		for _, px := range f {
			m.SetPixelColor(i, px.R, px.G, px.B)
			i++
		}
	}
	if errGo := o.client.Send(m); errGo != nil {
		return errors.Wrap(errGo).With("server", o.server).With("stack", stack.Trace().TrimRuntime())
	}

	o.last = append(o.last[:0], o.flat...)
	return nil
}
