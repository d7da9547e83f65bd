//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

type hostHAL struct {
	logger *hostLogger
	disp   *hostSurface
	ptr    Pointer
	t      *hostTime
}

// New returns a host HAL implementation. The pointer is inert until a
// runner that can sample one (the window) installs it.
func New() HAL {
	return &hostHAL{
		logger: &hostLogger{w: os.Stdout},
		disp:   newHostSurface(DisplayWidth, DisplayHeight),
		ptr:    nullPointer{},
		t:      newHostTime(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return h.disp }
func (h *hostHAL) Pointer() Pointer { return h.ptr }
func (h *hostHAL) Time() Time       { return h.t }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
