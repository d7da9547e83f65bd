package ui

// BufferRows is the height of one flush band. The display driver owns two
// band buffers of HorRes*BufferRows pixels each and alternates between
// them, so a backend may prepare the next band while still consuming the
// previous one.
const BufferRows = 10

// FlushFunc receives one rendered band. px holds area.Width()*area.Height()
// RGB565 pixels in row-major order. The callback must push every pixel to
// the presentation surface and call FlushReady before returning, and must
// not retain px past the call.
type FlushFunc func(area Area, px []uint16)

// DisplayDriver describes the single display the kit renders to.
type DisplayDriver struct {
	HorRes int
	VerRes int
	Flush  FlushFunc
}

type displayDriver struct {
	DisplayDriver
	bufs  [2][]uint16
	cur   int
	acked bool
}

// RegisterDisplay installs the display driver and schedules a full repaint.
// Exactly one display may be registered; violations are programming errors
// and panic.
func (u *UI) RegisterDisplay(d DisplayDriver) {
	if u.disp != nil {
		panic("ui: display driver already registered")
	}
	if d.HorRes <= 0 || d.VerRes <= 0 || d.Flush == nil {
		panic("ui: invalid display driver")
	}
	dd := &displayDriver{DisplayDriver: d}
	dd.bufs[0] = make([]uint16, d.HorRes*BufferRows)
	dd.bufs[1] = make([]uint16, d.HorRes*BufferRows)
	u.disp = dd
	u.horRes = d.HorRes
	u.verRes = d.VerRes
	u.invalidate(u.Bounds())
}

// FlushReady acknowledges the band passed to the current Flush call,
// releasing its buffer for reuse.
func (u *UI) FlushReady() {
	if u.disp != nil {
		u.disp.acked = true
	}
}

// PointerState is one sample of the pointing device.
type PointerState struct {
	X       int
	Y       int
	Pressed bool
}

// InputDriver describes the single pointer the kit samples once per
// Handler call.
type InputDriver struct {
	Read func() PointerState
}

// RegisterInput installs the input driver. Exactly one may be registered.
func (u *UI) RegisterInput(d InputDriver) {
	if u.input != nil {
		panic("ui: input driver already registered")
	}
	if d.Read == nil {
		panic("ui: invalid input driver")
	}
	u.input = &d
}
