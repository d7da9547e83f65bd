package app

import (
	"image/color"
	"strings"
	"testing"
	"time"

	"watchface/hal"
)

type testDisplay struct {
	px        []color.RGBA
	presented int
}

func newTestDisplay() *testDisplay {
	return &testDisplay{px: make([]color.RGBA, hal.DisplayWidth*hal.DisplayHeight)}
}

func (d *testDisplay) Size() (int16, int16) { return hal.DisplayWidth, hal.DisplayHeight }

func (d *testDisplay) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || x >= hal.DisplayWidth || y < 0 || y >= hal.DisplayHeight {
		return
	}
	d.px[int(y)*hal.DisplayWidth+int(x)] = c
}

func (d *testDisplay) Clear(c color.RGBA) {
	for i := range d.px {
		d.px[i] = c
	}
}

func (d *testDisplay) Display() error {
	d.presented++
	return nil
}

func (d *testDisplay) count(c color.RGBA) int {
	n := 0
	for _, p := range d.px {
		if p == c {
			n++
		}
	}
	return n
}

type testPointer struct {
	st hal.PointerState
}

func (p *testPointer) Read() hal.PointerState { return p.st }

type testTime struct {
	ch chan uint64
}

func (t *testTime) Ticks() <-chan uint64 { return t.ch }

// advance moves virtual elapsed time to the given millisecond.
func (t *testTime) advance(ms uint64) { t.ch <- ms }

type testLogger struct {
	lines []string
}

func (l *testLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *testLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func (l *testLogger) countContaining(sub string) int {
	n := 0
	for _, line := range l.lines {
		if strings.Contains(line, sub) {
			n++
		}
	}
	return n
}

type testHAL struct {
	d *testDisplay
	p *testPointer
	t *testTime
	l *testLogger
}

func newTestHAL() *testHAL {
	return &testHAL{
		d: newTestDisplay(),
		p: &testPointer{},
		t: &testTime{ch: make(chan uint64, 16)},
		l: &testLogger{},
	}
}

func (h *testHAL) Logger() hal.Logger   { return h.l }
func (h *testHAL) Display() hal.Display { return h.d }
func (h *testHAL) Pointer() hal.Pointer { return h.p }
func (h *testHAL) Time() hal.Time       { return h.t }

// widened full-scale values: RGB565 channels shifted into 8 bits.
var (
	widenedWhite = color.RGBA{R: 248, G: 252, B: 248, A: 0xFF}
	widenedBlack = color.RGBA{A: 0xFF}
)

func TestSplashToClockScenario(t *testing.T) {
	h := newTestHAL()
	a := newApp(h)

	base := time.Date(2026, time.August, 25, 10, 30, 0, 0, time.Local)
	a.wallClock = func() time.Time {
		return base.Add(time.Duration(a.now) * time.Millisecond)
	}
	// The eager refresh at construction used the real clock; re-run it on
	// the test clock before anything renders.
	a.refreshClock()

	// First frame: Welcome visible, clock screen not.
	if err := a.step(); err != nil {
		t.Fatalf("step() error = %v", err)
	}
	if !a.loading.Visible() || a.clock.Visible() {
		t.Fatalf("at start: loading %v clock %v, want true false",
			a.loading.Visible(), a.clock.Visible())
	}
	if h.d.count(widenedWhite) == 0 {
		t.Fatalf("no Welcome text pixels on first frame")
	}
	if h.d.count(widenedBlack) == 0 {
		t.Fatalf("no background pixels on first frame")
	}

	// Three seconds in the splash is still up.
	h.t.advance(3000)
	if err := a.step(); err != nil {
		t.Fatalf("step() error = %v", err)
	}
	if !a.loading.Visible() || a.clock.Visible() {
		t.Fatalf("at 3000 ms: loading %v clock %v, want true false",
			a.loading.Visible(), a.clock.Visible())
	}

	// At exactly 4000 ms the one-shot fires: loading hidden, clock shown,
	// time label tracking the virtual wall clock.
	h.t.advance(4000)
	if err := a.step(); err != nil {
		t.Fatalf("step() error = %v", err)
	}
	if a.loading.Visible() || !a.clock.Visible() {
		t.Fatalf("at 4000 ms: loading %v clock %v, want false true",
			a.loading.Visible(), a.clock.Visible())
	}
	if got, want := a.timeLabel.Text(), "10:30:04"; got != want {
		t.Fatalf("time label = %q at 4000 ms, want %q", got, want)
	}
	if got, want := a.dateLabel.Text(), "Tue, Aug 25 2026"; got != want {
		t.Fatalf("date label = %q at 4000 ms, want %q", got, want)
	}

	// One second later the time label advances by one second.
	h.t.advance(5000)
	if err := a.step(); err != nil {
		t.Fatalf("step() error = %v", err)
	}
	if got, want := a.timeLabel.Text(), "10:30:05"; got != want {
		t.Fatalf("time label = %q at 5000 ms, want %q", got, want)
	}

	// The transition is one-shot: it never fires again.
	h.t.advance(9000)
	if err := a.step(); err != nil {
		t.Fatalf("step() error = %v", err)
	}
	if a.loading.Visible() || !a.clock.Visible() {
		t.Fatalf("at 9000 ms: loading %v clock %v, want false true",
			a.loading.Visible(), a.clock.Visible())
	}
	if n := h.l.countContaining("switched to clock screen"); n != 1 {
		t.Fatalf("transition logged %d times, want 1", n)
	}
}

func TestExclusiveVisibilityAtEverySample(t *testing.T) {
	h := newTestHAL()
	a := newApp(h)

	for ms := uint64(0); ms <= 8000; ms += 250 {
		h.t.advance(ms)
		if err := a.step(); err != nil {
			t.Fatalf("step() error = %v", err)
		}
		if a.loading.Visible() == a.clock.Visible() {
			t.Fatalf("at %d ms: loading %v clock %v, want exactly one visible",
				ms, a.loading.Visible(), a.clock.Visible())
		}
		if ms < 4000 && !a.loading.Visible() {
			t.Fatalf("at %d ms: loading hidden before splash expiry", ms)
		}
	}
}

func TestClockRefreshesEverySecond(t *testing.T) {
	h := newTestHAL()
	a := newApp(h)

	base := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.Local)
	a.wallClock = func() time.Time {
		return base.Add(time.Duration(a.now) * time.Millisecond)
	}
	a.refreshClock()

	if got, want := a.timeLabel.Text(), "00:00:00"; got != want {
		t.Fatalf("eager refresh: time label = %q, want %q", got, want)
	}

	for sec := uint64(1); sec <= 5; sec++ {
		h.t.advance(sec * 1000)
		if err := a.step(); err != nil {
			t.Fatalf("step() error = %v", err)
		}
		want := formatClock(base.Add(time.Duration(sec) * time.Second))
		if got := a.timeLabel.Text(); got != want {
			t.Fatalf("at %d s: time label = %q, want %q", sec, got, want)
		}
	}
}

func TestRefreshClockIdempotent(t *testing.T) {
	h := newTestHAL()
	a := newApp(h)

	fixed := time.Date(2026, time.February, 7, 23, 59, 59, 0, time.Local)
	a.wallClock = func() time.Time { return fixed }

	a.refreshClock()
	timeText := a.timeLabel.Text()
	dateText := a.dateLabel.Text()

	a.refreshClock()
	if a.timeLabel.Text() != timeText || a.dateLabel.Text() != dateText {
		t.Fatalf("second refresh changed labels: %q/%q, want %q/%q",
			a.timeLabel.Text(), a.dateLabel.Text(), timeText, dateText)
	}
}

func TestFlushWritesWidenedPixels(t *testing.T) {
	h := newTestHAL()
	a := newApp(h)

	h.t.advance(1)
	if err := a.step(); err != nil {
		t.Fatalf("step() error = %v", err)
	}

	// Every written pixel must carry shift-widened channels: no value with
	// any of the low bits set can appear.
	for i, p := range h.d.px {
		if p.R&0x07 != 0 || p.G&0x03 != 0 || p.B&0x07 != 0 {
			t.Fatalf("pixel %d = %+v has low bits set after widening", i, p)
		}
	}
}

func TestPointerStateReachesUI(t *testing.T) {
	h := newTestHAL()
	a := newApp(h)

	h.p.st = hal.PointerState{X: 40, Y: 200, Pressed: true}
	if err := a.step(); err != nil {
		t.Fatalf("step() error = %v", err)
	}
	got := a.u.Pointer()
	if got.X != 40 || got.Y != 200 || !got.Pressed {
		t.Fatalf("ui pointer = %+v, want {40 200 true}", got)
	}
}
