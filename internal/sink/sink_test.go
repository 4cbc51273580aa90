package sink

import (
	"bytes"
	"image/color"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itohio/flexglow/dev"
)

var testFrames = [][]color.RGBA{
	{{R: 1, G: 2, B: 3, A: 0xFF}, {R: 4, G: 5, B: 6, A: 0xFF}},
	{{R: 7, G: 8, B: 9, A: 0xFF}, {R: 10, G: 11, B: 12, A: 0xFF}},
}

var testPayload = []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

func readOPCMessage(t *testing.T, conn net.Conn) (channel, command uint8, data []byte) {
	t.Helper()

	header := make([]byte, 4)
	_, err := io.ReadFull(conn, header)
	require.NoError(t, err)

	length := int(header[2])<<8 | int(header[3])
	data = make([]byte, length)
	_, err = io.ReadFull(conn, data)
	require.NoError(t, err)

	return header[0], header[1], data
}

func TestOPCFlushSendsOneMessage(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	conns := make(chan net.Conn, 1)
	go func() {
		conn, errGo := ln.Accept()
		if errGo == nil {
			conns <- conn
		}
	}()

	o := NewOPC(ln.Addr().String(), 0)
	require.NoError(t, o.Connect())

	conn := <-conns
	defer conn.Close()

	require.NoError(t, o.Flush(testFrames))

	channel, command, data := readOPCMessage(t, conn)
	assert.Equal(t, uint8(0), channel)
	assert.Equal(t, uint8(0), command)
	assert.Equal(t, testPayload, data)
}

func TestOPCFlushDedupsIdenticalFrames(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	conns := make(chan net.Conn, 1)
	go func() {
		conn, errGo := ln.Accept()
		if errGo == nil {
			conns <- conn
		}
	}()

	o := NewOPC(ln.Addr().String(), 1)
	require.NoError(t, o.Connect())

	conn := <-conns
	defer conn.Close()

	require.NoError(t, o.Flush(testFrames))
	_, _, _ = readOPCMessage(t, conn)

	// The identical frame is swallowed: nothing arrives before the
	// deadline.
	require.NoError(t, o.Flush(testFrames))
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(150*time.Millisecond)))
	one := make([]byte, 1)
	_, err = conn.Read(one)
	netErr, ok := err.(net.Error)
	require.True(t, ok, "read err = %v, want timeout", err)
	assert.True(t, netErr.Timeout())

	// A changed pixel goes through again.
	require.NoError(t, conn.SetReadDeadline(time.Time{}))
	changed := [][]color.RGBA{
		{{R: 99, G: 2, B: 3, A: 0xFF}, {R: 4, G: 5, B: 6, A: 0xFF}},
		testFrames[1],
	}
	require.NoError(t, o.Flush(changed))
	channel, _, data := readOPCMessage(t, conn)
	assert.Equal(t, uint8(1), channel)
	assert.Equal(t, uint8(99), data[0])
}

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) {
	return 0, io.ErrClosedPipe
}

func TestSerialFlushFramesEveryTick(t *testing.T) {
	var buf bytes.Buffer
	s := NewSerialWriter(&buf)

	require.NoError(t, s.Flush(testFrames))
	require.NoError(t, s.Flush(testFrames))

	want := append([]byte{Preamble}, testPayload...)
	want = append(want, want...)
	assert.Equal(t, want, buf.Bytes())
}

func TestSerialFlushPropagatesWriteError(t *testing.T) {
	s := NewSerialWriter(errWriter{})
	assert.Error(t, s.Flush(testFrames))
}

type captureSink struct {
	calls int
	last  [][]color.RGBA
}

func (c *captureSink) Flush(frames [][]color.RGBA) error {
	c.calls++
	c.last = make([][]color.RGBA, len(frames))
	for i, f := range frames {
		c.last[i] = append([]color.RGBA(nil), f...)
	}
	return nil
}

type errSink struct{}

func (errSink) Flush([][]color.RGBA) error {
	return dev.Error("sink offline")
}

func TestFanoutReachesEverySink(t *testing.T) {
	a, b := &captureSink{}, &captureSink{}
	f := NewFanout(a, b)

	require.NoError(t, f.Flush(testFrames))
	assert.Equal(t, 1, a.calls)
	assert.Equal(t, 1, b.calls)
	assert.Equal(t, testFrames, a.last)
}

func TestFanoutKeepsGoingPastFailures(t *testing.T) {
	tail := &captureSink{}
	f := NewFanout(errSink{}, tail)

	err := f.Flush(testFrames)
	assert.Error(t, err)
	assert.Equal(t, 1, tail.calls, "failing sink must not starve the rest")
}
