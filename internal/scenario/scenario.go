// Package scenario loads scripted sensor recordings for the simulator:
// a list of keyframes, each holding the four bend fractions at a point
// in time. Playback interpolates linearly between keyframes and can
// loop.
package scenario

import (
	"os"
	"time"

	"github.com/go-stack/stack"
	"github.com/karlmutch/errors"
	yaml "gopkg.in/yaml.v2"
)

// Channels is the number of sensor channels a scenario drives.
const Channels = 4

// Duration parses YAML values like "250ms" or "2s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if errGo := unmarshal(&raw); errGo != nil {
		return errGo
	}
	parsed, errGo := time.ParseDuration(raw)
	if errGo != nil {
		return errGo
	}
	*d = Duration(parsed)
	return nil
}

// Keyframe pins all four bend fractions at one instant.
type Keyframe struct {
	At   Duration  `yaml:"at"`
	Bend []float32 `yaml:"bend"`
}

// Scenario is a named, optionally looping sequence of keyframes.
type Scenario struct {
	Name   string     `yaml:"name"`
	Loop   bool       `yaml:"loop"`
	Frames []Keyframe `yaml:"frames"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, errors.Error) {
	data, errGo := os.ReadFile(path)
	if errGo != nil {
		return nil, errors.Wrap(errGo).With("path", path).With("stack", stack.Trace().TrimRuntime())
	}
	s, err := Parse(data)
	if err != nil {
		return nil, err.With("path", path)
	}
	return s, nil
}

// Parse unmarshals and validates a scenario document.
func Parse(data []byte) (*Scenario, errors.Error) {
	s := &Scenario{}
	if errGo := yaml.Unmarshal(data, s); errGo != nil {
		return nil, errors.Wrap(errGo).With("stack", stack.Trace().TrimRuntime())
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks that keyframes are strictly ordered and every bend
// value is a usable fraction.
func (s *Scenario) Validate() errors.Error {
	if len(s.Frames) == 0 {
		return errors.New("scenario has no frames").With("stack", stack.Trace().TrimRuntime())
	}

	prev := Duration(-1)
	for i, f := range s.Frames {
		if f.At <= prev {
			return errors.New("keyframes must be in strictly ascending order").
				With("frame", i).With("stack", stack.Trace().TrimRuntime())
		}
		if len(f.Bend) != Channels {
			return errors.New("keyframe needs one bend value per channel").
				With("frame", i).With("got", len(f.Bend)).With("want", Channels).
				With("stack", stack.Trace().TrimRuntime())
		}
		for c, b := range f.Bend {
			if b < 0 || b > 1 {
				return errors.New("bend outside [0,1]").
					With("frame", i).With("channel", c).With("value", b).
					With("stack", stack.Trace().TrimRuntime())
			}
		}
		prev = f.At
	}
	return nil
}

// Duration returns the time of the last keyframe.
func (s *Scenario) Duration() time.Duration {
	return time.Duration(s.Frames[len(s.Frames)-1].At)
}

// At returns the four bend fractions at elapsed time t, interpolating
// linearly between the bracketing keyframes. Before the first keyframe
// and after the last the nearest one holds; a looping scenario wraps t
// instead.
func (s *Scenario) At(t time.Duration) [Channels]float32 {
	total := s.Duration()
	if s.Loop && total > 0 {
		t %= total
		if t < 0 {
			t += total
		}
	}

	frames := s.Frames
	if t <= time.Duration(frames[0].At) {
		return bend(frames[0])
	}
	last := frames[len(frames)-1]
	if t >= time.Duration(last.At) {
		return bend(last)
	}

	for i := 1; i < len(frames); i++ {
		hi := frames[i]
		if t > time.Duration(hi.At) {
			continue
		}
		lo := frames[i-1]
		span := time.Duration(hi.At) - time.Duration(lo.At)
		f := float32(t-time.Duration(lo.At)) / float32(span)

		var out [Channels]float32
		for c := range out {
			out[c] = lo.Bend[c] + (hi.Bend[c]-lo.Bend[c])*f
		}
		return out
	}
	return bend(last)
}

func bend(f Keyframe) [Channels]float32 {
	var out [Channels]float32
	copy(out[:], f.Bend)
	return out
}
