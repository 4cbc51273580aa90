package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
)

// runTerm renders both strips as truecolor block rows on stdout. Raw
// mode gives unbuffered keys: q/a w/s e/d r/f bend the sensors, space
// releases them, esc or ctrl-c quits. Useful over SSH next to the
// actual installation.
func runTerm(r *rig) error {
	fd := int(os.Stdin.Fd())
	oldState, errGo := term.MakeRaw(fd)
	if errGo != nil {
		return errGo
	}
	defer term.Restore(fd, oldState)

	keys := make(chan byte, 64)
	go func() {
		buf := make([]byte, 1)
		for {
			n, errGo := os.Stdin.Read(buf)
			if errGo != nil {
				return
			}
			if n > 0 {
				select {
				case keys <- buf[0]:
				default:
				}
			}
		}
	}()

	os.Stdout.WriteString("\x1b[2J\x1b[?25l")
	defer os.Stdout.WriteString("\x1b[?25h\x1b[0m\r\n")

	var out strings.Builder
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for range ticker.C {
	drain:
		for {
			select {
			case b := <-keys:
				if quit := handleTermKey(r, b); quit {
					return nil
				}
			default:
				break drain
			}
		}

		if err := r.engine.Tick(); err != nil {
			return err
		}
		drawTerm(&out, r)
	}
	return nil
}

func handleTermKey(r *rig, b byte) (quit bool) {
	switch b {
	case 3, 27: // ctrl-c, esc
		return true
	}
	if len(r.sensors) == 0 {
		return false
	}

	// Terminal autorepeat is far slower than a held key in the window,
	// so each press moves further.
	const step = 0.05
	switch b {
	case ' ':
		for _, s := range r.sensors {
			s.Set(0)
		}
	case 'q':
		r.sensors[0].Nudge(step)
	case 'a':
		r.sensors[0].Nudge(-step)
	case 'w':
		r.sensors[1].Nudge(step)
	case 's':
		r.sensors[1].Nudge(-step)
	case 'e':
		r.sensors[2].Nudge(step)
	case 'd':
		r.sensors[2].Nudge(-step)
	case 'r':
		r.sensors[3].Nudge(step)
	case 'f':
		r.sensors[3].Nudge(-step)
	}
	return false
}

func drawTerm(out *strings.Builder, r *rig) {
	out.Reset()
	out.WriteString("\x1b[H")

	for _, frame := range r.store.frames {
		for _, px := range frame {
			fmt.Fprintf(out, "\x1b[38;2;%d;%d;%dm█", px.R, px.G, px.B)
		}
		out.WriteString("\x1b[0m\r\n\r\n")
	}

	f := r.engine.Fractions()
	fmt.Fprintf(out, "\x1b[0m bend %4.2f %4.2f %4.2f %4.2f  ", f[0], f[1], f[2], f[3])
	if r.take != nil {
		fmt.Fprintf(out, "take: %s", r.take.Name)
	} else {
		out.WriteString("q/a w/s e/d r/f bend, space releases, esc quits")
	}
	out.WriteString("\x1b[K\r\n")

	os.Stdout.WriteString(out.String())
}
