package main

import (
	"testing"
	"time"

	"github.com/itohio/flexglow/internal/scenario"
)

func TestBendSensorSlews(t *testing.T) {
	s := newBendSensor(0.1)
	s.Set(1)

	// A full bend takes ten reads at slew 0.1, each one bounded step.
	prev := uint16(0)
	for i := 0; i < 10; i++ {
		got := s.ReadRaw()
		step := int(got) - int(prev)
		if step <= 0 || step > 0x2000 {
			t.Fatalf("read #%d stepped %d counts, want bounded climb", i, step)
		}
		prev = got
	}
	if prev < 0xFFF0 {
		t.Fatalf("after full slew raw = %d, want near full scale", prev)
	}

	s.Set(0)
	if got := s.ReadRaw(); got >= prev {
		t.Fatalf("release read = %d, want below %d", got, prev)
	}
}

func TestBendSensorClampsTarget(t *testing.T) {
	s := newBendSensor(1)

	s.Nudge(5)
	if got := s.ReadRaw(); got != 0xFFFF {
		t.Fatalf("over-nudged read = %d, want full scale", got)
	}

	s.Nudge(-5)
	if got := s.ReadRaw(); got != 0 {
		t.Fatalf("under-nudged read = %d, want 0", got)
	}
}

func TestScenarioSensorTracksTake(t *testing.T) {
	take, err := scenario.Parse([]byte(`
name: ramp
frames:
  - at: 0s
    bend: [0, 0, 0, 0]
  - at: 1s
    bend: [1, 0.5, 0, 0]
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	// Backdating start by the full take places playback at the last
	// keyframe.
	s := &scenarioSensor{take: take, ch: 0, start: time.Now().Add(-2 * time.Second)}
	if got := s.ReadRaw(); got != 0xFFFF {
		t.Fatalf("channel 0 at end = %d, want full scale", got)
	}

	s = &scenarioSensor{take: take, ch: 1, start: time.Now().Add(-2 * time.Second)}
	if got := s.ReadRaw(); got < 0x7FFE || got > 0x8001 {
		t.Fatalf("channel 1 at end = %d, want ~half scale", got)
	}
}
