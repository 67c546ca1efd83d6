package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/abhisek/streaks/internal/calendar"
	"github.com/abhisek/streaks/internal/fixtures"
	"github.com/abhisek/streaks/internal/streak"
	"github.com/abhisek/streaks/internal/ui/components"
	"github.com/abhisek/streaks/internal/ui/theme"
)

// scenarios returns the names to render: one when name is set, all otherwise.
func scenarios(ds fixtures.Dataset, name string) ([]string, error) {
	if name == "" {
		return ds.Order, nil
	}
	if _, err := ds.Get(name); err != nil {
		return nil, err
	}
	return []string{name}, nil
}

// renderMonth writes the settled month calendar of each scenario.
func renderMonth(w io.Writer, ds fixtures.Dataset, name string, current time.Time) error {
	names, err := scenarios(ds, name)
	if err != nil {
		return err
	}
	year, month := calendar.MonthOf(current)
	var sections []string
	for _, n := range names {
		st := streak.NewState(ds.Scenarios[n], current)
		cells := calendar.LayoutMonth(year, month, st.Len())
		sections = append(sections, strings.Join([]string{
			theme.Title.Render(fixtures.Title(n)),
			theme.Subtitle.Render(current.Format("January 2006")),
			components.MonthGrid(cells, components.SettledProgress),
		}, "\n"))
	}
	_, err = fmt.Fprintln(w, strings.Join(sections, "\n\n"))
	return err
}

// renderWeek writes the week row of each scenario.
func renderWeek(w io.Writer, ds fixtures.Dataset, name string, perfectWeek bool) error {
	names, err := scenarios(ds, name)
	if err != nil {
		return err
	}
	var sections []string
	for _, n := range names {
		slots, err := calendar.LayoutWeek(ds.Scenarios[n], perfectWeek)
		if err != nil {
			return fmt.Errorf("scenario %s: %w", n, err)
		}
		sections = append(sections, strings.Join([]string{
			theme.Title.Render(fixtures.Title(n)),
			components.WeekRow(slots, -1, 1),
		}, "\n"))
	}
	_, err = fmt.Fprintln(w, strings.Join(sections, "\n\n"))
	return err
}
