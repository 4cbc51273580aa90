package main

import (
	"fmt"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/itohio/flexglow/internal/buildinfo"
)

const (
	cellW    = 12
	rowH     = 28
	rowGap   = 10
	textBand = 36
)

// window shows both strips as wide LED rows and forwards the bend keys.
type window struct {
	rig   *rig
	img   *image.RGBA
	strip *ebiten.Image
}

func runWindow(r *rig) error {
	w := &window{rig: r}
	ebiten.SetWindowTitle("flexsim (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(w.layoutW(), w.layoutH())
	ebiten.SetTPS(int(time.Second / frameInterval))
	return ebiten.RunGame(w)
}

func (w *window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	w.handleKeys()
	return w.rig.engine.Tick()
}

func (w *window) handleKeys() {
	if len(w.rig.sensors) == 0 {
		return
	}

	const step = 0.02
	bind := [channels]struct {
		up, down ebiten.Key
	}{
		{ebiten.KeyQ, ebiten.KeyA},
		{ebiten.KeyW, ebiten.KeyS},
		{ebiten.KeyE, ebiten.KeyD},
		{ebiten.KeyR, ebiten.KeyF},
	}
	for i, b := range bind {
		if ebiten.IsKeyPressed(b.up) {
			w.rig.sensors[i].Nudge(step)
		}
		if ebiten.IsKeyPressed(b.down) {
			w.rig.sensors[i].Nudge(-step)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		for _, s := range w.rig.sensors {
			s.Set(0)
		}
	}
}

func (w *window) Draw(screen *ebiten.Image) {
	frames := w.rig.store.frames
	if len(frames) == 0 {
		return
	}

	n := len(frames[0])
	if w.strip == nil {
		w.img = image.NewRGBA(image.Rect(0, 0, n, len(frames)))
		w.strip = ebiten.NewImage(n, len(frames))
	}
	for i, frame := range frames {
		for j, px := range frame {
			k := (i*n + j) * 4
			w.img.Pix[k+0] = px.R
			w.img.Pix[k+1] = px.G
			w.img.Pix[k+2] = px.B
			w.img.Pix[k+3] = 0xFF
		}
	}
	w.strip.WritePixels(w.img.Pix)

	for i := range frames {
		row := w.strip.SubImage(image.Rect(0, i, n, i+1)).(*ebiten.Image)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(cellW, rowH)
		op.GeoM.Translate(0, float64(rowGap+i*(rowH+rowGap)))
		screen.DrawImage(row, op)
	}

	f := w.rig.engine.Fractions()
	msg := fmt.Sprintf("bend  %4.2f %4.2f %4.2f %4.2f", f[0], f[1], f[2], f[3])
	if w.rig.take != nil {
		msg += "   take: " + w.rig.take.Name
	} else {
		msg += "   Q/A W/S E/D R/F bend, space releases, esc quits"
	}
	ebitenutil.DebugPrintAt(screen, msg, 8, w.layoutH()-textBand+8)
}

func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.layoutW(), w.layoutH()
}

func (w *window) layoutW() int {
	return *leds * cellW
}

func (w *window) layoutH() int {
	return rowGap + 2*(rowH+rowGap) + textBand
}
