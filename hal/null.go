package hal

import "image/color"

// nullPointer is used where no pointing device exists (headless, kernel
// framebuffer, bare panel).
type nullPointer struct{}

func (nullPointer) Read() PointerState { return PointerState{} }

// nullDisplay swallows all drawing. It stands in when a real panel fails to
// initialize so the rest of the system can keep running and logging.
type nullDisplay struct{}

func (nullDisplay) Size() (int16, int16)              { return DisplayWidth, DisplayHeight }
func (nullDisplay) SetPixel(x, y int16, c color.RGBA) {}
func (nullDisplay) Clear(c color.RGBA)                {}
func (nullDisplay) Display() error                    { return nil }
