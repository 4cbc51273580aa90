package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"path"
	"time"

	"github.com/karlmutch/envflag"
	logxi "github.com/mgutz/logxi/v1"

	"github.com/itohio/flexglow/internal/buildinfo"
)

const (
	channels      = 4
	smoothWindow  = 8
	frameInterval = 20 * time.Millisecond
)

var (
	logger = logxi.New("flexsim")

	termMode     = flag.Bool("term", false, "Render in the terminal instead of a window")
	scenarioPath = flag.String("scenario", "", "Play a scripted scenario file instead of taking keyboard input")
	opcServer    = flag.String("opc", "", "Mirror frames to this Open Pixel Control server (host:port)")
	serialDev    = flag.String("serial", "", "Mirror frames to this serial device")
	serialBaud   = flag.Int("baud", 115200, "Baud rate for the serial mirror")
	leds         = flag.Int("leds", 75, "Pixels per strip")
	verbose      = flag.Bool("v", false, "When enabled will print internal logging for this tool")
)

func usage() {
	fmt.Fprintln(os.Stderr, path.Base(os.Args[0]))
	fmt.Fprintln(os.Stderr, "usage: ", os.Args[0], "[options]       flex sensor rig on the desktop      ", buildinfo.Short())
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "flexsim runs the strip effect pipeline against synthetic sensors.")
	fmt.Fprintln(os.Stderr, "Q/A W/S E/D R/F bend the four sensors, space releases them all.")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "")
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "options can also be extracted from environment variables by changing dashes '-' to underscores and using upper case.")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "log levels are handled by the LOGXI env variables, these are documented at https://github.com/mgutz/logxi")
}

func init() {
	flag.Usage = usage
}

// frameStore keeps a copy of the last flushed frames for whichever
// frontend is painting them.
type frameStore struct {
	frames [][]color.RGBA
}

func (f *frameStore) Flush(frames [][]color.RGBA) error {
	if f.frames == nil {
		f.frames = make([][]color.RGBA, len(frames))
		for i := range frames {
			f.frames[i] = make([]color.RGBA, len(frames[i]))
		}
	}
	for i := range frames {
		copy(f.frames[i], frames[i])
	}
	return nil
}

func main() {
	if !flag.Parsed() {
		envflag.Parse()
	}
	if *verbose {
		logger.SetLevel(logxi.LevelDebug)
	}

	logger.Debug(fmt.Sprintf("%s %s built %s", path.Base(os.Args[0]), buildinfo.Short(), buildinfo.Date))

	rig, err := newRig(*leds, *scenarioPath)
	if err != nil {
		logger.Fatal(err.Error())
	}

	if *termMode {
		if err := runTerm(rig); err != nil {
			logger.Fatal(err.Error())
		}
		return
	}
	if err := runWindow(rig); err != nil {
		logger.Fatal(err.Error())
	}
}
