package ui

// Timer calls back on a millisecond period. The repeat count decrements on
// each firing; at zero the timer is inert. A negative count repeats
// forever. Timers fire inside Handler, before rendering, at most once per
// timer per call.
type Timer struct {
	u      *UI
	period uint64
	repeat int
	cb     func()
	last   uint64
}

// NewTimer schedules cb every period milliseconds, repeating forever. The
// first firing is due one full period after creation.
func (u *UI) NewTimer(period uint64, cb func()) *Timer {
	t := &Timer{u: u, period: period, repeat: -1, cb: cb, last: u.now}
	u.timers = append(u.timers, t)
	return t
}

// SetRepeat bounds the number of remaining firings; n < 0 means forever.
func (t *Timer) SetRepeat(n int) { t.repeat = n }

func (u *UI) fireTimers(now uint64) {
	for _, t := range u.timers {
		if t.repeat == 0 || t.cb == nil {
			continue
		}
		if now-t.last < t.period {
			continue
		}
		t.last = now
		if t.repeat > 0 {
			t.repeat--
		}
		t.cb()
	}
}
