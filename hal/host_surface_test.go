//go:build !tinygo

package hal

import (
	"image/color"
	"testing"
)

func TestHostSurfaceSetPixel(t *testing.T) {
	s := newHostSurface(4, 3)

	s.SetPixel(1, 2, color.RGBA{R: 10, G: 20, B: 30, A: 0xFF})

	dst := make([]byte, len(s.pix))
	s.snapshot(dst)
	off := (2*4 + 1) * 4
	if dst[off] != 10 || dst[off+1] != 20 || dst[off+2] != 30 || dst[off+3] != 0xFF {
		t.Fatalf("pixel bytes = %v, want [10 20 30 255]", dst[off:off+4])
	}
}

func TestHostSurfaceClipsOutOfBounds(t *testing.T) {
	s := newHostSurface(4, 3)

	for _, p := range []struct{ x, y int16 }{{-1, 0}, {0, -1}, {4, 0}, {0, 3}} {
		s.SetPixel(p.x, p.y, color.RGBA{R: 0xFF, A: 0xFF})
	}

	dst := make([]byte, len(s.pix))
	s.snapshot(dst)
	for i, b := range dst {
		if b != 0 {
			t.Fatalf("byte %d = %d after out-of-bounds writes, want 0", i, b)
		}
	}
}

func TestHostSurfaceClear(t *testing.T) {
	s := newHostSurface(2, 2)
	s.Clear(color.RGBA{R: 1, G: 2, B: 3, A: 0xFF})

	dst := make([]byte, len(s.pix))
	s.snapshot(dst)
	for i := 0; i < len(dst); i += 4 {
		if dst[i] != 1 || dst[i+1] != 2 || dst[i+2] != 3 || dst[i+3] != 0xFF {
			t.Fatalf("pixel %d = %v, want [1 2 3 255]", i/4, dst[i:i+4])
		}
	}
}
