package utils

import (
	"strings"
	"time"
)

// layoutUIDate is the day-level format the BRTC API and its clients exchange.
const layoutUIDate = "02/01/2006"

// ParseUIDate parses DD/MM/YYYY in the local timezone.
func ParseUIDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutUIDate, strings.TrimSpace(s), time.Local)
}

// FormatUIDate formats a time to DD/MM/YYYY in the local timezone.
func FormatUIDate(t time.Time) string {
	return t.In(time.Local).Format(layoutUIDate)
}

// WithinBookingWindow reports whether d falls inside [now-before, now+after]
// taken at day granularity. The admin date pickers only offer that window.
func WithinBookingWindow(d, now time.Time, before, after int) bool {
	day := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}
	min := day(now).AddDate(0, 0, -before)
	max := day(now).AddDate(0, 0, after)
	d = day(d)
	return !d.Before(min) && !d.After(max)
}
