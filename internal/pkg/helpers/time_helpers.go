package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// DateLayout is the wire and storage format of calendar dates.
const DateLayout = "2006-01-02"

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		// Use the global logger here, assuming logger might not be configured when this is called.
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// ParseDate parses a YYYY-MM-DD string into a UTC midnight time.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// FormatDate renders a date as YYYY-MM-DD, or nil when unset.
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

// TruncateToDate returns midnight UTC of the calendar date t shows in its own location.
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WholeYearsBetween returns the number of complete years from start to end,
// comparing calendar dates only. An anniversary that falls on Feb 29 is reached
// on Mar 1 in non-leap years. Returns 0 when end precedes start.
func WholeYearsBetween(start, end time.Time) int {
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()

	years := ey - sy
	if em < sm || (em == sm && ed < sd) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}
