//go:build rp2040

package board

import (
	"image/color"
	"machine"
	"runtime/interrupt"

	"tinygo.org/x/drivers/ws2812"

	"github.com/itohio/flexglow/dev"
)

const (
	ErrFrameCount  = dev.Error("strip bank expects one frame per strip")
	ErrFrameLength = dev.Error("frame length does not match the strip")
)

// FlexReader samples one flex sensor through an ADC input.
type FlexReader struct {
	adc machine.ADC
}

// NewFlexReader wraps an ADC input. Call Configure before the first read;
// machine.InitADC must have run already.
func NewFlexReader(adc machine.ADC) *FlexReader {
	return &FlexReader{adc: adc}
}

func (r *FlexReader) Configure() {
	r.adc.Configure(machine.ADCConfig{})
}

// ReadRaw returns one left-aligned 16-bit sample.
func (r *FlexReader) ReadRaw() uint16 {
	return r.adc.Get()
}

// StripBank drives both WS2812 strips. Flush dims each frame to the
// configured brightness and latches both strips inside one critical
// section, so the two halves of the installation never show different
// frames.
type StripBank struct {
	pins       [2]machine.Pin
	strips     [2]ws2812.Device
	scratch    [2][]color.RGBA
	brightness uint8
}

// NewStripBank prepares a bank for two strips of leds pixels each on the
// given data pins.
func NewStripBank(a, b machine.Pin, leds int, brightness uint8) (*StripBank, error) {
	if leds < 1 {
		return nil, dev.ErrStripLength
	}
	bank := &StripBank{
		pins:       [2]machine.Pin{a, b},
		brightness: brightness,
	}
	for i := range bank.scratch {
		bank.scratch[i] = make([]color.RGBA, leds)
	}
	return bank, nil
}

func (b *StripBank) Configure() {
	for i, pin := range b.pins {
		pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
		b.strips[i] = ws2812.New(pin)
	}
}

// Flush transmits one frame per strip. The WS2812 bit stream is timed by
// busy-waiting, so interrupts stay off until both strips have latched;
// at 75 pixels a strip that is under 5ms.
func (b *StripBank) Flush(frames [][]color.RGBA) error {
	if len(frames) != len(b.strips) {
		return ErrFrameCount
	}
	for i, frame := range frames {
		if len(frame) != len(b.scratch[i]) {
			return ErrFrameLength
		}
		for j, px := range frame {
			b.scratch[i][j] = dev.Scale8(px, b.brightness)
		}
	}

	state := interrupt.Disable()
	err0 := b.strips[0].WriteColors(b.scratch[0])
	err1 := b.strips[1].WriteColors(b.scratch[1])
	interrupt.Restore(state)

	if err0 != nil {
		return err0
	}
	return err1
}
