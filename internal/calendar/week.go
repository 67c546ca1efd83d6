package calendar

import (
	"time"

	"github.com/abhisek/streaks/internal/streak"
)

// WeekdaySlot is one of the seven fixed columns of a week view.
type WeekdaySlot struct {
	Weekday time.Weekday
	Label   string
	// Present is set when any streak date falls on this weekday.
	Present bool
	// Last is set when the last streak entry falls on this weekday.
	Last    bool
	Variant streak.Variant
}

// IsPresent reports whether any date in s falls on weekday.
func IsPresent(s streak.Streak, weekday time.Weekday) (bool, error) {
	present, err := presence(s)
	if err != nil {
		return false, err
	}
	return present[weekday], nil
}

// IsLast reports whether the last entry of s (by position, not by date
// value) falls on weekday. It is false for an empty streak.
func IsLast(s streak.Streak, weekday time.Weekday) (bool, error) {
	last, ok, err := lastWeekday(s)
	if err != nil || !ok {
		return false, err
	}
	return last == weekday, nil
}

// presence marks every weekday some entry of s falls on.
func presence(s streak.Streak) ([DaysPerWeek]bool, error) {
	var present [DaysPerWeek]bool
	days, err := s.Weekdays()
	if err != nil {
		return present, err
	}
	for _, d := range days {
		present[d] = true
	}
	return present, nil
}

// lastWeekday returns the weekday of the positionally last entry of s.
func lastWeekday(s streak.Streak) (time.Weekday, bool, error) {
	raw, ok := s.Last()
	if !ok {
		return 0, false, nil
	}
	t, err := streak.ParseDate(raw)
	if err != nil {
		return 0, false, err
	}
	return t.Weekday(), true, nil
}

// ResolveWeekVariant picks the variant for a weekday slot. During a
// perfect week every slot renders as a flame whether or not that weekday
// is present in the streak.
func ResolveWeekVariant(weekday time.Weekday, present, last, perfectWeek bool) streak.Variant {
	if perfectWeek {
		if last {
			return streak.VariantFlameHighlighted
		}
		return streak.VariantFlame
	}
	switch {
	case present && last:
		return streak.VariantCheckHighlighted
	case present:
		return streak.VariantCheck
	default:
		return streak.VariantPlain
	}
}

// LayoutWeek builds the seven slots, Sunday first, for s. Each slot
// carries the same answers IsPresent and IsLast give for its weekday.
func LayoutWeek(s streak.Streak, perfectWeek bool) ([]WeekdaySlot, error) {
	present, err := presence(s)
	if err != nil {
		return nil, err
	}
	last, hasLast, err := lastWeekday(s)
	if err != nil {
		return nil, err
	}

	slots := make([]WeekdaySlot, DaysPerWeek)
	for i := range slots {
		wd := time.Weekday(i)
		isLast := hasLast && wd == last
		slots[i] = WeekdaySlot{
			Weekday: wd,
			Label:   DayLabels[i],
			Present: present[i],
			Last:    isLast,
			Variant: ResolveWeekVariant(wd, present[i], isLast, perfectWeek),
		}
	}
	return slots, nil
}

// LastSlot returns the index of the slot holding the last streak entry, or -1.
func LastSlot(slots []WeekdaySlot) int {
	for i, s := range slots {
		if s.Last {
			return i
		}
	}
	return -1
}
