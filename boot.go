//go:build rp2040

package main

import (
	"image/color"
	"time"

	"github.com/itohio/flexglow/config"
	"github.com/itohio/flexglow/dev"
)

// bootSweep chases a gradient up both strips and fades it back out.
// Doubles as a field check that every LED and both data lines work
// before the sensors take over.
func bootSweep() error {
	pal, err := dev.NewPalette("#01013f", "#22d3ee")
	if err != nil {
		return err
	}

	frames := [][]color.RGBA{
		make([]color.RGBA, config.StripLEDs),
		make([]color.RGBA, config.StripLEDs),
	}
	off := color.RGBA{A: 0xFF}

	const steps = 40
	for step := 0; step <= steps; step++ {
		head := step * config.StripLEDs / steps
		for i := range frames {
			for j := range frames[i] {
				frames[i][j] = off
				if j < head {
					frames[i][j] = pal.Sample(float32(j) / float32(config.StripLEDs-1))
				}
			}
		}
		if err := bank.Flush(frames); err != nil {
			return err
		}
		time.Sleep(25 * time.Millisecond)
	}

	for fade := 255; fade >= 0; fade -= 15 {
		for i := range frames {
			for j := range frames[i] {
				c := pal.Sample(float32(j) / float32(config.StripLEDs-1))
				frames[i][j] = dev.Scale8(c, uint8(fade))
			}
		}
		if err := bank.Flush(frames); err != nil {
			return err
		}
		time.Sleep(20 * time.Millisecond)
	}
	return nil
}
