package streak

// WeekLength is the number of consecutive days that make a perfect week.
const WeekLength = 7

var typesByLength = map[int]Type{
	1: TypeSingle,
	4: TypeFour,
	7: TypePerfect,
	9: TypeNine,
}

// Classify maps a streak length to its Type. Lengths without a named
// pattern (including 0 and negatives) are TypeOther.
func Classify(length int) Type {
	if t, ok := typesByLength[length]; ok {
		return t
	}
	return TypeOther
}

// PerfectWeekDays returns the 1-based day numbers within a streak of the
// given length that close a perfect week, i.e. every multiple of 7 in
// [1, length], ascending. The result is empty (never nil) below 7.
func PerfectWeekDays(length int) []int {
	days := make([]int, 0, max(length/WeekLength, 0))
	for d := WeekLength; d <= length; d += WeekLength {
		days = append(days, d)
	}
	return days
}

// IsPerfectWeekDay reports whether the 1-based dayNumber closes a week.
func IsPerfectWeekDay(dayNumber int) bool {
	return dayNumber > 0 && dayNumber%WeekLength == 0
}
