package streak

import (
	"fmt"
	"time"
)

// State is everything derived from a (streak, currentDate) pair for one
// render pass. It is rebuilt from scratch whenever the inputs change.
type State struct {
	Streak          Streak
	CurrentDate     time.Time
	Type            Type
	PerfectWeekDays []int
}

// NewState derives the render state for s at currentDate.
func NewState(s Streak, currentDate time.Time) State {
	return State{
		Streak:          s,
		CurrentDate:     currentDate,
		Type:            Classify(s.Len()),
		PerfectWeekDays: PerfectWeekDays(s.Len()),
	}
}

// Len returns the streak length.
func (st State) Len() int {
	return st.Streak.Len()
}

// Variant returns the variant for the 0-based streak index.
func (st State) Variant(index int) Variant {
	if index < 0 || index >= st.Len() {
		return VariantPlain
	}
	return Resolve(st.Type, index+1, st.PerfectWeekDays)
}

// Variants returns the variant of every streak position, in order.
func (st State) Variants() []Variant {
	out := make([]Variant, st.Len())
	for i := range out {
		out[i] = st.Variant(i)
	}
	return out
}

// ResolveCurrentDate parses raw as the current date, falling back to now
// when raw is empty.
func ResolveCurrentDate(raw string, now time.Time) (time.Time, error) {
	if raw == "" {
		return now, nil
	}
	t, err := ParseDate(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse current date: %w", err)
	}
	return t, nil
}
