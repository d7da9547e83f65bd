//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

type deviceHAL struct {
	logger *uartLogger
	disp   Display
	ptr    Pointer
	t      *deviceTime
}

// New returns the device HAL.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1. Display: ST7789 on SPI1.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	var disp Display
	lcd, err := initST7789()
	if err != nil {
		logger.WriteLineString("hal: display init failed: " + err.Error())
		disp = nullDisplay{}
	} else {
		disp = lcd
	}

	return &deviceHAL{
		logger: logger,
		disp:   disp,
		ptr:    nullPointer{},
		t:      newDeviceTime(),
	}
}

func (h *deviceHAL) Logger() Logger   { return h.logger }
func (h *deviceHAL) Display() Display { return h.disp }
func (h *deviceHAL) Pointer() Pointer { return h.ptr }
func (h *deviceHAL) Time() Time       { return h.t }

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

type deviceTime struct {
	ch  chan uint64
	seq uint64
}

func newDeviceTime() *deviceTime {
	t := &deviceTime{ch: make(chan uint64, 16)}
	go func() {
		ticker := time.NewTicker(1 * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			t.seq++
			select {
			case t.ch <- t.seq:
			default:
			}
		}
	}()
	return t
}

func (t *deviceTime) Ticks() <-chan uint64 { return t.ch }
