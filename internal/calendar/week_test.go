package calendar

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/streaks/internal/streak"
)

// 2024-04-01 is a Monday.
var fourDays = streak.Streak{"2024-04-01", "2024-04-02", "2024-04-03", "2024-04-04"}

func TestIsPresent(t *testing.T) {
	tests := []struct {
		weekday time.Weekday
		want    bool
	}{
		{time.Sunday, false},
		{time.Monday, true},
		{time.Tuesday, true},
		{time.Wednesday, true},
		{time.Thursday, true},
		{time.Friday, false},
		{time.Saturday, false},
	}
	for _, tt := range tests {
		got, err := IsPresent(fourDays, tt.weekday)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "IsPresent(%s)", tt.weekday)
	}
}

func TestIsPresentOffsetlessTimestamp(t *testing.T) {
	s := streak.Streak{"2024-04-04T09:30:00", "2024-04-06T23:30"}

	got, err := IsPresent(s, time.Thursday)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = IsLast(s, time.Saturday)
	require.NoError(t, err)
	assert.True(t, got, "wall clock as written, no shift into Sunday")

	slots, err := LayoutWeek(s, false)
	require.NoError(t, err)
	assert.Equal(t, streak.VariantCheck, slots[time.Thursday].Variant)
	assert.Equal(t, streak.VariantCheckHighlighted, slots[time.Saturday].Variant)
}

func TestLayoutWeekAgreesWithMembershipQueries(t *testing.T) {
	for _, s := range []streak.Streak{fourDays, {"2024-04-04", "2024-04-01"}, {}} {
		slots, err := LayoutWeek(s, false)
		require.NoError(t, err)
		for _, slot := range slots {
			present, err := IsPresent(s, slot.Weekday)
			require.NoError(t, err)
			last, err := IsLast(s, slot.Weekday)
			require.NoError(t, err)
			assert.Equal(t, present, slot.Present, "%v present on %s", s, slot.Weekday)
			assert.Equal(t, last, slot.Last, "%v last on %s", s, slot.Weekday)
		}
	}
}

func TestIsPresentEmptyStreak(t *testing.T) {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		got, err := IsPresent(nil, wd)
		require.NoError(t, err)
		assert.False(t, got)
	}
}

func TestIsLast(t *testing.T) {
	got, err := IsLast(fourDays, time.Thursday)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = IsLast(fourDays, time.Monday)
	require.NoError(t, err)
	assert.False(t, got)

	got, err = IsLast(nil, time.Sunday)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestIsLastUsesPositionNotDateValue(t *testing.T) {
	outOfOrder := streak.Streak{"2024-04-04", "2024-04-01"}
	got, err := IsLast(outOfOrder, time.Monday)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestWeekdayMembershipPropagatesParseErrors(t *testing.T) {
	bad := streak.Streak{"2024-04-01", "someday"}
	var perr *time.ParseError

	_, err := IsPresent(bad, time.Monday)
	require.Error(t, err)
	assert.True(t, errors.As(err, &perr))

	_, err = IsLast(bad, time.Monday)
	require.Error(t, err)
	assert.True(t, errors.As(err, &perr))

	_, err = LayoutWeek(bad, false)
	require.Error(t, err)
	assert.True(t, errors.As(err, &perr))
}

func TestResolveWeekVariant(t *testing.T) {
	tests := []struct {
		name                   string
		present, last, perfect bool
		want                   streak.Variant
	}{
		{"perfect last", true, true, true, streak.VariantFlameHighlighted},
		{"perfect present", true, false, true, streak.VariantFlame},
		{"perfect absent still flame", false, false, true, streak.VariantFlame},
		{"present last", true, true, false, streak.VariantCheckHighlighted},
		{"present", true, false, false, streak.VariantCheck},
		{"absent", false, false, false, streak.VariantPlain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveWeekVariant(time.Monday, tt.present, tt.last, tt.perfect)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLayoutWeek(t *testing.T) {
	slots, err := LayoutWeek(fourDays, false)
	require.NoError(t, err)

	var got []streak.Variant
	for _, s := range slots {
		got = append(got, s.Variant)
	}
	want := []streak.Variant{
		streak.VariantPlain,
		streak.VariantCheck,
		streak.VariantCheck,
		streak.VariantCheck,
		streak.VariantCheckHighlighted,
		streak.VariantPlain,
		streak.VariantPlain,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("variants mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "Su", slots[0].Label)
	assert.Equal(t, time.Saturday, slots[6].Weekday)
	assert.Equal(t, 4, LastSlot(slots))
}

func TestLayoutWeekPerfectWeekFlagsEverySlot(t *testing.T) {
	slots, err := LayoutWeek(streak.Streak{"2023-07-21T12:07:47+01:00"}, true)
	require.NoError(t, err)

	for _, s := range slots {
		if s.Weekday == time.Friday {
			assert.Equal(t, streak.VariantFlameHighlighted, s.Variant)
			continue
		}
		assert.False(t, s.Present)
		assert.Equal(t, streak.VariantFlame, s.Variant, "slot %s", s.Label)
	}
}

func TestLayoutWeekEmpty(t *testing.T) {
	slots, err := LayoutWeek(nil, false)
	require.NoError(t, err)
	require.Len(t, slots, DaysPerWeek)
	assert.Equal(t, -1, LastSlot(slots))
	for _, s := range slots {
		assert.Equal(t, streak.VariantPlain, s.Variant)
	}
}
