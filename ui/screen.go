package ui

import "image/color"

// Screen is an opaque full-resolution container. Screens stack in creation
// order; hidden screens are skipped entirely. Visibility changes invalidate
// the whole display.
type Screen struct {
	u      *UI
	bg     color.RGBA
	hidden bool
	labels []*Label
}

// NewScreen creates a visible screen covering the whole display.
func (u *UI) NewScreen(bg color.RGBA) *Screen {
	if u.disp == nil {
		panic("ui: no display driver registered")
	}
	s := &Screen{u: u, bg: bg}
	u.screens = append(u.screens, s)
	u.invalidate(u.Bounds())
	return s
}

func (s *Screen) Visible() bool { return !s.hidden }

func (s *Screen) Hide() {
	if s.hidden {
		return
	}
	s.hidden = true
	s.u.invalidate(s.u.Bounds())
}

func (s *Screen) Show() {
	if !s.hidden {
		return
	}
	s.hidden = false
	s.u.invalidate(s.u.Bounds())
}
