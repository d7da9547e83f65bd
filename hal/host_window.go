//go:build !tinygo

package hal

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"watchface/internal/buildinfo"
)

// RunWindow opens the simulator window and drives the app until the window
// closes. The window is 2x the logical resolution for visibility; Layout
// pins the logical space so the app and the pointer always see 172x320.
// It blocks.
func RunWindow(newApp func(HAL) func() error) error {
	h := New().(*hostHAL)
	h.ptr = hostPointer{}
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("Watchface (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(DisplayWidth*2, DisplayHeight*2)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	fbImg   *ebiten.Image
	scratch []byte
	step    func() error
}

func (g *hostGame) Update() error {
	g.h.t.step(1)
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	if g.fbImg == nil {
		g.fbImg = ebiten.NewImage(DisplayWidth, DisplayHeight)
		g.scratch = make([]byte, len(g.h.disp.pix))
	}

	screen.Fill(color.Black)
	g.h.disp.snapshot(g.scratch)
	g.fbImg.WritePixels(g.scratch)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return DisplayWidth, DisplayHeight
}
