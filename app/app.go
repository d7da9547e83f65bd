// Package app is the watch interface: a timed Welcome splash and a live
// clock/date screen, wired to a platform HAL through the ui kit's display
// and input drivers.
package app

import (
	"image/color"
	"time"

	"watchface/hal"
	"watchface/ui"
)

type App struct {
	h hal.HAL
	u *ui.UI

	loading   *ui.Screen
	clock     *ui.Screen
	timeLabel *ui.Label
	dateLabel *ui.Label

	wallClock func() time.Time
	now       uint64
}

// New builds the watch UI on h and returns the per-tick step function the
// platform loop drives.
func New(h hal.HAL) func() error {
	return newApp(h).step
}

// Run builds the watch UI and drives it in a fixed-rate loop. Device
// entrypoint; never returns.
func Run(h hal.HAL) {
	step := New(h)
	disp := h.Display()
	for {
		_ = step()
		_ = disp.Display()
		time.Sleep(5 * time.Millisecond)
	}
}

func newApp(h hal.HAL) *App {
	a := &App{h: h, u: ui.New(), wallClock: time.Now}

	a.u.RegisterDisplay(ui.DisplayDriver{
		HorRes: hal.DisplayWidth,
		VerRes: hal.DisplayHeight,
		Flush:  a.flush,
	})
	a.u.RegisterInput(ui.InputDriver{Read: a.readPointer})

	a.buildLoadingScreen()
	a.buildClockScreen()

	h.Logger().WriteLineString("watch: splash up, clock in 4s")
	return a
}

// step drains elapsed ticks and runs one ui handler pass.
func (a *App) step() error {
	a.drainTicks()
	a.u.Handler(a.now)
	return nil
}

func (a *App) drainTicks() {
	t := a.h.Time()
	if t == nil {
		return
	}
	ch := t.Ticks()
	if ch == nil {
		return
	}
	for {
		select {
		case seq := <-ch:
			a.now = seq
		default:
			return
		}
	}
}

// flush pushes one rendered band to the display, widening each RGB565
// pixel to 8-bit channels on the way. The widening is a plain shift, so
// full-scale white lands at (248, 252, 248).
func (a *App) flush(area ui.Area, px []uint16) {
	d := a.h.Display()
	i := 0
	for y := area.Y1; y <= area.Y2; y++ {
		for x := area.X1; x <= area.X2; x++ {
			r, g, b := hal.RGB888From565(px[i])
			i++
			d.SetPixel(int16(x), int16(y), color.RGBA{R: r, G: g, B: b, A: 0xFF})
		}
	}
	a.u.FlushReady()
}

func (a *App) readPointer() ui.PointerState {
	st := a.h.Pointer().Read()
	return ui.PointerState{X: int(st.X), Y: int(st.Y), Pressed: st.Pressed}
}
