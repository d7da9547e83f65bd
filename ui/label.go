package ui

import (
	"image/color"

	"tinygo.org/x/tinyfont"
)

// Label is a single line of text centered on its screen, shifted by a
// fixed pixel offset. SetText invalidates both the old and the new bounds
// so the renderer repaints exactly what changed.
type Label struct {
	screen *Screen
	text   string
	font   tinyfont.Fonter
	color  color.RGBA
	offX   int
	offY   int
}

// NewLabel adds a label to the screen.
func (s *Screen) NewLabel(text string, font tinyfont.Fonter, c color.RGBA, offX, offY int) *Label {
	l := &Label{screen: s, text: text, font: font, color: c, offX: offX, offY: offY}
	s.labels = append(s.labels, l)
	s.u.invalidate(l.bounds())
	return l
}

func (l *Label) Text() string { return l.text }

func (l *Label) SetText(text string) {
	if text == l.text {
		return
	}
	old := l.bounds()
	l.text = text
	l.screen.u.invalidate(old.Union(l.bounds()))
}

// anchor is the baseline origin tinyfont draws from.
func (l *Label) anchor() (x, y int) {
	u := l.screen.u
	_, outbox := tinyfont.LineWidth(l.font, l.text)
	h := int(l.font.GetYAdvance())
	x = (u.horRes-int(outbox))/2 + l.offX
	y = u.verRes/2 + l.offY + h/2
	return x, y
}

// bounds is a conservative box around the rendered text: glyphs may extend
// a full line height above the baseline and half a line below.
func (l *Label) bounds() Area {
	x, base := l.anchor()
	_, outbox := tinyfont.LineWidth(l.font, l.text)
	h := int(l.font.GetYAdvance())
	return Area{
		X1: x - 2,
		Y1: base - h - 2,
		X2: x + int(outbox) + 2,
		Y2: base + h/2 + 2,
	}
}

func (l *Label) draw(c *canvas) {
	if l.text == "" {
		return
	}
	x, base := l.anchor()
	tinyfont.WriteLine(c, l.font, int16(x), int16(base), l.text, l.color)
}
