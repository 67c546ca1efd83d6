package calendar

import (
	"time"

	"github.com/abhisek/streaks/internal/streak"
)

// DaysPerWeek is the number of columns in every grid.
const DaysPerWeek = 7

// DayLabels are the column headers, Sunday first.
var DayLabels = [DaysPerWeek]string{"Su", "M", "Tu", "W", "Th", "F", "Sa"}

// Cell is one grid position of a month view.
type Cell struct {
	// Day is the day of the month, nil for padding cells.
	Day *int
	// StreakIndex is the 0-based streak position shown on this day, nil
	// when the day is outside the streak.
	StreakIndex *int
	Variant     streak.Variant
}

// IsPadding reports whether the cell lies before the 1st or after the last day.
func (c Cell) IsPadding() bool {
	return c.Day == nil
}

// InStreak reports whether the cell carries a streak index.
func (c Cell) InStreak() bool {
	return c.StreakIndex != nil
}

// HasConnector reports whether a line joins this cell to the next one.
// Days that close a perfect week end their run without a connector.
func (c Cell) HasConnector() bool {
	return c.InStreak() && !streak.IsPerfectWeekDay(*c.StreakIndex+1)
}

// DaysIn returns the number of days in month (1-12) of year.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthOf returns the year and 0-based month of t.
func MonthOf(t time.Time) (year, month int) {
	return t.Year(), int(t.Month()) - 1
}

// LayoutMonth lays out the month (0-based, 0 = January) of year as a grid
// of cells whose length is a multiple of 7. The first streakLength days
// of the month carry streak indices 0..; a streak longer than the month
// is cut at the last day without rolling over. Months outside 0-11
// normalize into the neighbouring year.
func LayoutMonth(year, month, streakLength int) []Cell {
	first := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	firstWeekday := int(first.Weekday())
	daysInMonth := DaysIn(first.Year(), first.Month())

	streakLength = max(streakLength, 0)
	kind := streak.Classify(streakLength)
	perfectDays := streak.PerfectWeekDays(streakLength)

	cells := make([]Cell, 0, firstWeekday+daysInMonth+DaysPerWeek)
	for range firstWeekday {
		cells = append(cells, paddingCell())
	}

	for day := 1; day <= daysInMonth; day++ {
		cell := Cell{Day: intPtr(day), Variant: streak.VariantPlain}
		if index := day - 1; index < streakLength {
			cell.StreakIndex = intPtr(index)
			cell.Variant = streak.Resolve(kind, index+1, perfectDays)
		}
		cells = append(cells, cell)
	}

	if rem := len(cells) % DaysPerWeek; rem != 0 {
		for range DaysPerWeek - rem {
			cells = append(cells, paddingCell())
		}
	}

	return cells
}

// Weeks splits a grid into rows of seven cells.
func Weeks(cells []Cell) [][]Cell {
	rows := make([][]Cell, 0, (len(cells)+DaysPerWeek-1)/DaysPerWeek)
	for start := 0; start < len(cells); start += DaysPerWeek {
		end := min(start+DaysPerWeek, len(cells))
		rows = append(rows, cells[start:end])
	}
	return rows
}

func paddingCell() Cell {
	return Cell{Variant: streak.VariantPlain}
}

func intPtr(v int) *int {
	return &v
}
