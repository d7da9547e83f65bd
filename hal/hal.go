package hal

import (
	"errors"
	"image/color"

	"tinygo.org/x/drivers"
)

// Display geometry of the 1.47" target panel, portrait.
const (
	DisplayWidth  = 172
	DisplayHeight = 320
)

var ErrNotImplemented = errors.New("not implemented")

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// Display is a presentation surface: a drivers.Displayer plus a whole
// surface clear. Coordinates are logical (172x320); any physical scaling
// happens behind this interface.
type Display interface {
	drivers.Displayer
	Clear(c color.RGBA)
}

// PointerState is one sample of the pointing device, in logical
// coordinates.
type PointerState struct {
	X       int16
	Y       int16
	Pressed bool
}

// Pointer samples the pointing device. Single point, single button.
type Pointer interface {
	Read() PointerState
}

// Time provides a base tick stream. One tick is one millisecond.
type Time interface {
	Ticks() <-chan uint64
}

// HAL is the only contact point between the watch and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Pointer() Pointer
	Time() Time
}
