package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"brtc-gateway/internal/domain"
)

// InvalidStartTime is the sentinel shown when a bus's start time cannot be
// parsed. Malformed schedules degrade to this string, they never error a view.
const InvalidStartTime = "Invalid Start Time"

// ParseStartTime parses the upstream "h:mm AM/PM" clock into 24-hour parts.
// PM below 12 adds 12, 12 AM maps to 0, everything else passes through.
func ParseStartTime(s string) (hour24, minute int, err error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) != 2 {
		return 0, 0, domain.ValidationError{Field: "startTime", Msg: "want \"h:mm AM/PM\""}
	}
	clock, meridiem := fields[0], fields[1]

	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, 0, domain.ValidationError{Field: "startTime", Msg: "missing minute separator"}
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, domain.ValidationError{Field: "startTime", Msg: "non-numeric hour", Err: err}
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, domain.ValidationError{Field: "startTime", Msg: "non-numeric minute", Err: err}
	}

	switch meridiem {
	case "PM":
		if hour < 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	default:
		return 0, 0, domain.ValidationError{Field: "startTime", Msg: "meridiem must be AM or PM"}
	}
	return hour, minute, nil
}

// NextDeparture builds today's departure instant at hour24:minute:00 in now's
// location, rolled forward exactly one day when it is not after now.
func NextDeparture(hour24, minute int, now time.Time) time.Time {
	dep := time.Date(now.Year(), now.Month(), now.Day(), hour24, minute, 0, 0, now.Location())
	if !dep.After(now) {
		dep = dep.AddDate(0, 0, 1)
	}
	return dep
}

// Countdown renders the remaining time until the next departure as
// "{H} hours and {M} minutes". The hour component is taken modulo 24: the
// displayed string never carries a day part even if the difference could.
// Any parse failure yields the InvalidStartTime sentinel.
func Countdown(startTime string, now time.Time) string {
	hour, minute, err := ParseStartTime(startTime)
	if err != nil {
		return InvalidStartTime
	}

	const (
		msPerMinute = int64(60 * 1000)
		msPerHour   = 60 * msPerMinute
		msPerDay    = 24 * msPerHour
	)
	diff := NextDeparture(hour, minute, now).Sub(now).Milliseconds()
	hours := (diff % msPerDay) / msPerHour
	minutes := (diff % msPerHour) / msPerMinute
	return fmt.Sprintf("%d hours and %d minutes", hours, minutes)
}
