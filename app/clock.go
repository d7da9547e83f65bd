package app

import "time"

const (
	clockLayout = "15:04:05"
	dateLayout  = "Mon, Jan 02 2006"
)

// formatClock renders the zero-padded 24-hour wall-clock string.
func formatClock(now time.Time) string { return now.Format(clockLayout) }

// formatDate renders the abbreviated calendar string, day zero-padded.
func formatDate(now time.Time) string { return now.Format(dateLayout) }

// refreshClock rewrites both clock labels from the local wall clock.
func (a *App) refreshClock() {
	now := a.wallClock()
	a.timeLabel.SetText(formatClock(now))
	a.dateLabel.SetText(formatDate(now))
}
