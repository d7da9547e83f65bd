package ui

import "image/color"

// render repaints the dirty region in full-width bands of at most
// BufferRows rows, flushing each band through the display driver.
func (u *UI) render() {
	if u.disp == nil || u.dirty.Empty() {
		return
	}
	dirty := u.dirty
	u.dirty = emptyArea

	for y := dirty.Y1; y <= dirty.Y2; y += BufferRows {
		y2 := y + BufferRows - 1
		if y2 > dirty.Y2 {
			y2 = dirty.Y2
		}
		u.renderBand(Area{X1: dirty.X1, Y1: y, X2: dirty.X2, Y2: y2})
	}
}

func (u *UI) renderBand(a Area) {
	d := u.disp
	buf := d.bufs[d.cur][:a.Width()*a.Height()]
	c := &canvas{u: u, area: a, px: buf}

	c.fill(color.RGBA{A: 0xFF})
	for _, s := range u.screens {
		if s.hidden {
			continue
		}
		c.fill(s.bg)
		for _, l := range s.labels {
			if a.Intersect(l.bounds()).Empty() {
				continue
			}
			l.draw(c)
		}
	}

	d.acked = false
	d.Flush(a, buf)
	if !d.acked {
		// The handoff is synchronous: an unacknowledged buffer can never
		// be handed out again.
		panic("ui: flush callback returned without FlushReady")
	}
	d.cur = 1 - d.cur
}

// canvas exposes one band buffer to tinyfont as a drivers.Displayer.
// Coordinates are absolute display coordinates; pixels outside the band
// are clipped.
type canvas struct {
	u    *UI
	area Area
	px   []uint16
}

func (c *canvas) Size() (int16, int16) {
	return int16(c.u.horRes), int16(c.u.verRes)
}

func (c *canvas) SetPixel(x, y int16, col color.RGBA) {
	ix := int(x)
	iy := int(y)
	if !c.area.Contains(ix, iy) {
		return
	}
	c.px[(iy-c.area.Y1)*c.area.Width()+(ix-c.area.X1)] = rgb565From888(col.R, col.G, col.B)
}

func (c *canvas) Display() error { return nil }

func (c *canvas) fill(col color.RGBA) {
	pixel := rgb565From888(col.R, col.G, col.B)
	for i := range c.px {
		c.px[i] = pixel
	}
}

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}
