//go:build !tinygo

package hal

import (
	"image/color"
	"sync"
)

// hostSurface is the simulator's presentation surface: a plain RGBA pixel
// buffer the window (or framebuffer) runner snapshots once per frame.
type hostSurface struct {
	mu     sync.Mutex
	width  int
	height int
	pix    []byte
}

func newHostSurface(width, height int) *hostSurface {
	return &hostSurface{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*4),
	}
}

func (s *hostSurface) Size() (int16, int16) {
	return int16(s.width), int16(s.height)
}

func (s *hostSurface) SetPixel(x, y int16, c color.RGBA) {
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= s.width || iy < 0 || iy >= s.height {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	off := (iy*s.width + ix) * 4
	s.pix[off+0] = c.R
	s.pix[off+1] = c.G
	s.pix[off+2] = c.B
	s.pix[off+3] = 0xFF
}

func (s *hostSurface) Clear(c color.RGBA) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < len(s.pix); i += 4 {
		s.pix[i+0] = c.R
		s.pix[i+1] = c.G
		s.pix[i+2] = c.B
		s.pix[i+3] = 0xFF
	}
}

func (s *hostSurface) Display() error { return nil }

func (s *hostSurface) snapshot(dst []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copy(dst, s.pix)
}
