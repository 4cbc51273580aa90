//go:build rp2040

package main

import (
	"machine"
	"time"

	"github.com/itohio/flexglow/config"
)

//go:generate tinygo flash -target=pico

func main() {
	machine.InitADC()

	configureRig()

	if err := bootSweep(); err != nil {
		println("boot sweep failed: " + err.Error())
	}

	// Seed the smoothing windows from live readings so the strips track
	// the sensors from the very first frame.
	engine.Prime()

	machine.Watchdog.Configure(machine.WatchdogConfig{
		TimeoutMillis: 3000,
	})
	machine.Watchdog.Start()

	ticker := time.NewTicker(config.FrameInterval)
	for range ticker.C {
		config.Probe.High()
		if err := engine.Tick(); err != nil {
			println("frame dropped: " + err.Error())
		}
		config.Probe.Low()
		machine.Watchdog.Update()
	}
}
