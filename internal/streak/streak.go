package streak

import (
	"fmt"
	"strings"
	"time"
)

// Streak is an ordered sequence of ISO 8601 date strings, one per completed
// day, in chronological order. Entries are treated positionally: duplicates
// are allowed and never collapsed.
type Streak []string

// Len returns the number of entries in the streak.
func (s Streak) Len() int {
	return len(s)
}

// Last returns the chronologically last entry by position.
func (s Streak) Last() (string, bool) {
	if len(s) == 0 {
		return "", false
	}
	return s[len(s)-1], true
}

// Weekdays parses every entry and returns its weekday, in streak order.
// The first malformed entry aborts with the parser's error wrapped.
func (s Streak) Weekdays() ([]time.Weekday, error) {
	days := make([]time.Weekday, 0, len(s))
	for i, raw := range s {
		t, err := ParseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("streak entry %d: %w", i, err)
		}
		days = append(days, t.Weekday())
	}
	return days, nil
}

// localLayouts are ISO 8601 date-times written without an offset. They
// are read as the wall clock written, like a date-only entry.
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
}

// ParseDate parses a calendar date (2006-01-02), an RFC 3339 timestamp, or
// an ISO 8601 date-time without an offset. Timestamps keep their own
// offset, so the weekday is the one written in the string. Errors are
// returned as produced by time.Parse: the date-only error for input
// without a time part, the RFC 3339 error otherwise.
func ParseDate(s string) (time.Time, error) {
	if !strings.Contains(s, "T") {
		return time.Parse(time.DateOnly, s)
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err == nil {
		return t, nil
	}
	for _, layout := range localLayouts {
		if lt, lerr := time.Parse(layout, s); lerr == nil {
			return lt, nil
		}
	}
	return time.Time{}, err
}
