package hal

import "testing"

func TestRGB565Pack(t *testing.T) {
	cases := []struct {
		r, g, b uint8
		want    uint16
	}{
		{0, 0, 0, 0x0000},
		{255, 255, 255, 0xFFFF},
		{255, 0, 0, 0xF800},
		{0, 255, 0, 0x07E0},
		{0, 0, 255, 0x001F},
	}
	for _, c := range cases {
		if got := RGB565(c.r, c.g, c.b); got != c.want {
			t.Fatalf("RGB565(%d, %d, %d) = %#04x, want %#04x", c.r, c.g, c.b, got, c.want)
		}
	}
}

func TestRGB888From565ShiftsNotScales(t *testing.T) {
	r, g, b := RGB888From565(0x0000)
	if r != 0 || g != 0 || b != 0 {
		t.Fatalf("RGB888From565(0x0000) = (%d, %d, %d), want (0, 0, 0)", r, g, b)
	}

	// Full scale widens to (248, 252, 248): the low bits stay zero.
	r, g, b = RGB888From565(0xFFFF)
	if r != 248 || g != 252 || b != 248 {
		t.Fatalf("RGB888From565(0xFFFF) = (%d, %d, %d), want (248, 252, 248)", r, g, b)
	}
}

func TestRGB888From565Channels(t *testing.T) {
	r, g, b := RGB888From565(0xF800)
	if r != 248 || g != 0 || b != 0 {
		t.Fatalf("RGB888From565(0xF800) = (%d, %d, %d), want (248, 0, 0)", r, g, b)
	}
	r, g, b = RGB888From565(0x07E0)
	if r != 0 || g != 252 || b != 0 {
		t.Fatalf("RGB888From565(0x07E0) = (%d, %d, %d), want (0, 252, 0)", r, g, b)
	}
	r, g, b = RGB888From565(0x001F)
	if r != 0 || g != 0 || b != 248 {
		t.Fatalf("RGB888From565(0x001F) = (%d, %d, %d), want (0, 0, 248)", r, g, b)
	}
}
