// Package ui is a small retained-mode kit for fixed-resolution pixel
// displays: full-screen containers with text labels, millisecond timers,
// and dirty-region rendering through a registered flush callback.
//
// The kit is single-threaded and polled. The platform loop calls Handler
// once per frame; everything (timer callbacks, input sampling, rendering)
// happens inside that call.
package ui

// UI is the kit context. One instance owns the widget tree, the timers and
// the registered drivers for the lifetime of the process.
type UI struct {
	horRes int
	verRes int

	screens []*Screen
	timers  []*Timer

	disp  *displayDriver
	input *InputDriver

	pointer PointerState

	now   uint64
	dirty Area
}

// New returns an empty context. A display driver must be registered before
// any screens are created.
func New() *UI {
	return &UI{dirty: emptyArea}
}

// Bounds is the full display area.
func (u *UI) Bounds() Area {
	return Area{X1: 0, Y1: 0, X2: u.horRes - 1, Y2: u.verRes - 1}
}

// Handler runs one cooperative tick: due timers fire first, then the
// pointer is sampled, then dirty regions are redrawn through the display
// driver. now is elapsed time in milliseconds and must not decrease.
func (u *UI) Handler(now uint64) {
	u.now = now
	u.fireTimers(now)
	u.readInput()
	u.render()
}

func (u *UI) readInput() {
	if u.input == nil {
		return
	}
	u.pointer = u.input.Read()
}

// Pointer returns the most recent pointer sample.
func (u *UI) Pointer() PointerState { return u.pointer }

func (u *UI) invalidate(a Area) {
	a = a.Intersect(u.Bounds())
	if a.Empty() {
		return
	}
	u.dirty = u.dirty.Union(a)
}
