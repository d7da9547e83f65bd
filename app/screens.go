package app

import (
	"image/color"

	"tinygo.org/x/tinyfont/freesans"
)

var (
	colorBG   = color.RGBA{A: 0xFF}
	colorText = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	colorDate = color.RGBA{R: 180, G: 180, B: 180, A: 0xFF}
)

const (
	splashMillis = 4000
	tickMillis   = 1000
)

// buildLoadingScreen composes the splash: black screen, centered Welcome,
// and the one-shot timer that swaps to the clock.
func (a *App) buildLoadingScreen() {
	a.loading = a.u.NewScreen(colorBG)
	a.loading.NewLabel("Welcome", &freesans.Regular12pt7b, colorText, 0, 0)

	t := a.u.NewTimer(splashMillis, a.showClockScreen)
	t.SetRepeat(1)
}

// buildClockScreen composes the clock screen hidden, refreshes it once so
// real time shows the instant it becomes visible, and starts the 1 s tick.
func (a *App) buildClockScreen() {
	a.clock = a.u.NewScreen(colorBG)
	a.clock.Hide()

	a.timeLabel = a.clock.NewLabel("00:00:00", &freesans.Bold18pt7b, colorText, 0, -20)
	a.dateLabel = a.clock.NewLabel("", &freesans.Regular9pt7b, colorDate, 0, 30)

	a.refreshClock()
	a.u.NewTimer(tickMillis, a.refreshClock)
}

// showClockScreen swaps splash for clock. Both mutations land in one timer
// callback, so no intermediate visibility state is observable.
func (a *App) showClockScreen() {
	a.loading.Hide()
	a.clock.Show()
	a.h.Logger().WriteLineString("watch: switched to clock screen")
}
