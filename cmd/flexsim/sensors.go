package main

import (
	"time"

	"github.com/itohio/flexglow/dev"
	"github.com/itohio/flexglow/internal/scenario"
	"github.com/itohio/flexglow/internal/sink"
)

// bendSensor fakes one flex sensor. The keyboard moves a target
// fraction; every read slews the reported value toward it at a bounded
// rate, the way a finger bends, instead of teleporting.
type bendSensor struct {
	target float32
	value  float32
	slew   float32
}

func newBendSensor(slew float32) *bendSensor {
	return &bendSensor{slew: slew}
}

func (s *bendSensor) Nudge(delta float32) {
	s.Set(s.target + delta)
}

func (s *bendSensor) Set(target float32) {
	if target < 0 {
		target = 0
	}
	if target > 1 {
		target = 1
	}
	s.target = target
}

func (s *bendSensor) ReadRaw() uint16 {
	diff := s.target - s.value
	if diff > s.slew {
		diff = s.slew
	}
	if diff < -s.slew {
		diff = -s.slew
	}
	s.value += diff
	return uint16(s.value * 0xFFFF)
}

// scenarioSensor replays one channel of a scripted take against the
// wall clock.
type scenarioSensor struct {
	take  *scenario.Scenario
	ch    int
	start time.Time
}

func (s *scenarioSensor) ReadRaw() uint16 {
	f := s.take.At(time.Since(s.start))[s.ch]
	return uint16(f * 0xFFFF)
}

// rig is one complete simulated installation: synthetic sensors feeding
// the real pipeline, with the rendered frames retained for a frontend
// and optionally mirrored to OPC or serial.
type rig struct {
	engine  *dev.Engine
	store   *frameStore
	sensors []*bendSensor // empty when a scenario is driving
	take    *scenario.Scenario
}

func newRig(leds int, scenarioPath string) (*rig, error) {
	r := &rig{store: &frameStore{}}

	var readers [channels]dev.AnalogReader
	if scenarioPath != "" {
		take, err := scenario.Load(scenarioPath)
		if err != nil {
			return nil, err
		}
		r.take = take
		logger.Debug("scenario loaded", "name", take.Name, "duration", take.Duration().String())

		start := time.Now()
		for i := range readers {
			readers[i] = &scenarioSensor{take: take, ch: i, start: start}
		}
	} else {
		r.sensors = make([]*bendSensor, channels)
		for i := range readers {
			r.sensors[i] = newBendSensor(0.02)
			readers[i] = r.sensors[i]
		}
	}

	scale, err := dev.NewUnitScaler[float32](0xFFFF)
	if err != nil {
		return nil, err
	}

	chs := make([]*dev.FlexChannel, channels)
	for i, rd := range readers {
		ch, err := dev.NewFlexChannel(rd, smoothWindow, scale)
		if err != nil {
			return nil, err
		}
		chs[i] = ch
	}

	strips := make([]*dev.Strip, 2)
	for i := range strips {
		s, err := dev.NewStrip(leds, dev.DefaultEffect())
		if err != nil {
			return nil, err
		}
		strips[i] = s
	}

	sinks := []dev.Flusher{r.store}
	if *opcServer != "" {
		o := sink.NewOPC(*opcServer, 0)
		if err := o.Connect(); err != nil {
			return nil, err
		}
		logger.Debug("mirroring to OPC", "server", *opcServer)
		sinks = append(sinks, o)
	}
	if *serialDev != "" {
		s, err := sink.NewSerial(*serialDev, *serialBaud)
		if err != nil {
			return nil, err
		}
		logger.Debug("mirroring to serial", "device", *serialDev, "baud", *serialBaud)
		sinks = append(sinks, s)
	}

	engine, err := dev.NewEngine(sink.NewFanout(sinks...), chs, strips, []dev.Pairing{
		{Cascade: 0, Pulse: 2},
		{Cascade: 1, Pulse: 3},
	})
	if err != nil {
		return nil, err
	}
	engine.Prime()

	r.engine = engine
	return r, nil
}
