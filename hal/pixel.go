package hal

// RGB565 packs 8-bit channels into rrrrrggggggbbbbb.
func RGB565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

// RGB888From565 widens an RGB565 pixel to 8-bit channels by shifting each
// channel into its high bits. The low bits stay zero, so full scale maps to
// (248, 252, 248) rather than (255, 255, 255); the display pipeline depends
// on exactly this widening.
func RGB888From565(p uint16) (r, g, b uint8) {
	r = uint8(((p >> 11) & 0x1F) << 3)
	g = uint8(((p >> 5) & 0x3F) << 2)
	b = uint8((p & 0x1F) << 3)
	return r, g, b
}
