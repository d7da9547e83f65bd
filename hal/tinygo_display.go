//go:build tinygo && baremetal

package hal

import (
	"errors"
	"image/color"
	"machine"
	"time"
)

// st7789 drives the 1.47" 172x320 panel over SPI. The controller RAM is
// 240 columns wide; the visible 172 columns sit at a 34 column offset.
const st7789ColOffset = 34

type st7789 struct {
	spi machine.SPI
	cs  machine.Pin
	dc  machine.Pin
	rst machine.Pin
	bl  machine.Pin

	buf   []byte // little-endian RGB565 shadow of the panel
	txBuf []byte
	dirty bool
}

func initST7789() (*st7789, error) {
	if machine.SPI1 == nil {
		return nil, errors.New("SPI1 unavailable")
	}

	machine.SPI1.Configure(machine.SPIConfig{
		SCK:       machine.GP10,
		SDO:       machine.GP11,
		SDI:       machine.GP12,
		Frequency: 62_500_000,
	})

	lcd := &st7789{
		spi:   *machine.SPI1,
		cs:    machine.GP13,
		dc:    machine.GP14,
		rst:   machine.GP15,
		bl:    machine.GP16,
		buf:   make([]byte, DisplayWidth*DisplayHeight*2),
		txBuf: make([]byte, 4096),
	}

	for _, pin := range []machine.Pin{lcd.cs, lcd.dc, lcd.rst, lcd.bl} {
		pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	}
	lcd.cs.High()
	lcd.dc.High()

	lcd.reset()
	lcd.init()
	lcd.bl.High()

	return lcd, nil
}

func (d *st7789) reset() {
	d.rst.Low()
	time.Sleep(50 * time.Millisecond)
	d.rst.High()
	time.Sleep(120 * time.Millisecond)
}

func (d *st7789) init() {
	d.cmd(0x3A, 0x55) // COLMOD: 16bpp
	d.cmd(0x36, 0x00) // MADCTL: portrait, RGB order

	// These panels run inverted.
	d.cmd(0x21) // INVON
	d.cmd(0x13) // NORON

	d.cmd(0x11) // SLPOUT
	time.Sleep(120 * time.Millisecond)
	d.cmd(0x29) // DISPON
}

func (d *st7789) cmd(cmd byte, data ...byte) {
	d.cs.Low()
	d.dc.Low()
	d.spi.Tx([]byte{cmd}, nil)
	d.dc.High()
	if len(data) > 0 {
		d.spi.Tx(data, nil)
	}
	d.cs.High()
}

func (d *st7789) setWindow(x0, y0, x1, y1 uint16) {
	x0 += st7789ColOffset
	x1 += st7789ColOffset
	d.cmd(
		0x2A,
		byte(x0>>8), byte(x0),
		byte(x1>>8), byte(x1),
	)
	d.cmd(
		0x2B,
		byte(y0>>8), byte(y0),
		byte(y1>>8), byte(y1),
	)
	d.cmd(0x2C)
}

func (d *st7789) Size() (int16, int16) {
	return DisplayWidth, DisplayHeight
}

func (d *st7789) SetPixel(x, y int16, c color.RGBA) {
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= DisplayWidth || iy < 0 || iy >= DisplayHeight {
		return
	}
	pixel := RGB565(c.R, c.G, c.B)
	off := (iy*DisplayWidth + ix) * 2
	d.buf[off] = byte(pixel)
	d.buf[off+1] = byte(pixel >> 8)
	d.dirty = true
}

func (d *st7789) Clear(c color.RGBA) {
	pixel := RGB565(c.R, c.G, c.B)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(d.buf); i += 2 {
		d.buf[i] = lo
		d.buf[i+1] = hi
	}
	d.dirty = true
}

// Display pushes the shadow buffer to the panel. The shadow is
// little-endian; the LCD wants big-endian, so pixels are swapped on the way
// through the transmit chunk.
func (d *st7789) Display() error {
	if !d.dirty {
		return nil
	}
	d.dirty = false

	d.setWindow(0, 0, DisplayWidth-1, DisplayHeight-1)

	d.cs.Low()
	d.dc.High()

	chunk := d.txBuf
	total := len(d.buf)
	for off := 0; off < total; {
		n := len(chunk)
		if remain := total - off; n > remain {
			n = remain
		}
		src := d.buf[off : off+n]
		for i := 0; i < n; i += 2 {
			chunk[i] = src[i+1]
			chunk[i+1] = src[i]
		}
		d.spi.Tx(chunk[:n], nil)
		off += n
	}

	d.cs.High()
	return nil
}
