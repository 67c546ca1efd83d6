package streak

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		weekday time.Weekday
		wantErr bool
	}{
		{"2024-04-01", time.Monday, false},
		{"2024-04-04", time.Thursday, false},
		{"2023-07-21T12:07:47+01:00", time.Friday, false},
		{"2023-07-21T23:30:00-08:00", time.Friday, false},
		{"2024-04-04T00:00:00.000Z", time.Thursday, false},
		{"2024-04-04T09:30:00", time.Thursday, false},
		{"2024-04-04T09:30", time.Thursday, false},
		{"2024-04-04T09:30:00.000", time.Thursday, false},
		{"2024-04-06T23:59:59", time.Saturday, false},
		{"2024-04-04T25:00", 0, true},
		{"not a date", 0, true},
		{"", 0, true},
		{"2024-13-01", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "ParseDate(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "ParseDate(%q)", tt.in)
		assert.Equal(t, tt.weekday, got.Weekday(), "ParseDate(%q)", tt.in)
	}
}

func TestParseDateLocalKeepsWallClock(t *testing.T) {
	got, err := ParseDate("2024-04-06T23:30:00")
	require.NoError(t, err)
	assert.Equal(t, 6, got.Day())
	assert.Equal(t, 23, got.Hour())
}

func TestParseDateReportsDateOnlyError(t *testing.T) {
	_, err := ParseDate("2024-13-01")
	require.Error(t, err)

	var perr *time.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, time.DateOnly, perr.Layout)
	assert.Contains(t, err.Error(), "month out of range")
}

func TestStreakWeekdays(t *testing.T) {
	s := Streak{"2024-04-01", "2024-04-02", "2024-04-02"}
	days, err := s.Weekdays()
	require.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Monday, time.Tuesday, time.Tuesday}, days)
}

func TestStreakWeekdaysPropagatesParseError(t *testing.T) {
	s := Streak{"2024-04-01", "yesterday"}
	_, err := s.Weekdays()
	require.Error(t, err)

	var perr *time.ParseError
	assert.True(t, errors.As(err, &perr))
	assert.Contains(t, err.Error(), "streak entry 1")
}

func TestStreakLast(t *testing.T) {
	_, ok := Streak(nil).Last()
	assert.False(t, ok)

	last, ok := Streak{"2024-04-09", "2024-04-01"}.Last()
	assert.True(t, ok)
	assert.Equal(t, "2024-04-01", last, "last is by position, not by date value")
}
