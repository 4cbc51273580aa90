//go:build rp2040

package main

import (
	"machine"

	"github.com/itohio/flexglow/board"
	"github.com/itohio/flexglow/config"
	"github.com/itohio/flexglow/dev"
)

var (
	bank   *board.StripBank
	engine *dev.Engine
)

func configureRig() {
	config.Probe.Configure(machine.PinConfig{Mode: machine.PinOutput})

	scale, err := dev.NewUnitScaler[float32](0xFFFF)
	if err != nil {
		println("scaler failed: " + err.Error())
	}

	inputs := []machine.ADC{config.FlexA, config.FlexB, config.FlexC, config.FlexD}
	channels := make([]*dev.FlexChannel, 0, len(inputs))
	for _, adc := range inputs {
		reader := board.NewFlexReader(adc)
		reader.Configure()
		ch, err := dev.NewFlexChannel(reader, config.SmoothWindow, scale)
		if err != nil {
			println("flex channel failed: " + err.Error())
		}
		channels = append(channels, ch)
	}

	strips := make([]*dev.Strip, 2)
	for i := range strips {
		s, err := dev.NewStrip(config.StripLEDs, dev.DefaultEffect())
		if err != nil {
			println("strip failed: " + err.Error())
		}
		strips[i] = s
	}

	bank, err = board.NewStripBank(config.StripA, config.StripB, config.StripLEDs, config.Brightness)
	if err != nil {
		println("strip bank failed: " + err.Error())
	}
	bank.Configure()

	// Sensor 0 fills strip A and sensor 2 pulses it; sensors 1 and 3 do
	// the same for strip B.
	engine, err = dev.NewEngine(bank, channels, strips, []dev.Pairing{
		{Cascade: 0, Pulse: 2},
		{Cascade: 1, Pulse: 3},
	})
	if err != nil {
		println("engine failed: " + err.Error())
	}
}
