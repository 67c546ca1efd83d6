package streak

// Resolve returns the variant for the 1-based dayNumber of a streak of
// type t. It is only meaningful for in-streak positions; callers render
// cells outside the streak as VariantPlain themselves.
func Resolve(t Type, dayNumber int, perfectWeekDays []int) Variant {
	switch t {
	case TypeSingle:
		return VariantCheckHighlighted

	case TypeFour:
		if dayNumber == 4 {
			return VariantCheckHighlighted
		}
		return VariantCheck

	case TypePerfect:
		if IsPerfectWeekDay(dayNumber) && isLast(dayNumber, perfectWeekDays) {
			return VariantFlameHighlighted
		}
		return VariantFlame

	case TypeNine:
		if dayNumber <= WeekLength {
			return VariantFlame
		}
		if dayNumber == 9 {
			return VariantCheckHighlighted
		}
		return VariantCheck

	default:
		return VariantCheck
	}
}

func isLast(dayNumber int, days []int) bool {
	return len(days) > 0 && days[len(days)-1] == dayNumber
}
