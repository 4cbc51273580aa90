//go:build rp2040

package config

import (
	"machine"
	"time"
)

var (
	FlexA = machine.ADC{Pin: machine.ADC0} // GP26
	FlexB = machine.ADC{Pin: machine.ADC1} // GP27
	FlexC = machine.ADC{Pin: machine.ADC2} // GP28
	FlexD = machine.ADC{Pin: machine.ADC3} // GP29

	StripA = machine.GP14
	StripB = machine.GP15

	// Probe goes high for the duration of each frame, for a logic
	// analyzer on the bench.
	Probe = machine.GP16
)

const (
	StripLEDs    = 75
	SmoothWindow = 8
	Brightness   = 180

	FrameInterval = 20 * time.Millisecond
)
