package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/progress"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/streaks/internal/animate"
	"github.com/abhisek/streaks/internal/calendar"
	"github.com/abhisek/streaks/internal/ui/theme"
)

// ConnectorWidth is the width of the line drawn between streak days.
const ConnectorWidth = 2

// ColumnWidth is the width of one weekday column.
const ColumnWidth = IndicatorWidth + ConnectorWidth

// ProgressFunc reports the animation signals for a streak index.
type ProgressFunc func(index int) animate.Progress

// SettledProgress reports every index as fully drawn.
func SettledProgress(int) animate.Progress {
	return animate.Progress{Opacity: 1, Scale: 1, LineWidth: 1}
}

// WeekdayHeader renders the Su..Sa column labels.
func WeekdayHeader() string {
	var b strings.Builder
	for _, label := range calendar.DayLabels {
		b.WriteString(theme.WeekDay.Width(ColumnWidth).Render(" " + label))
	}
	return b.String()
}

// MonthGrid renders a laid-out month: a weekday header, then two lines per
// week (day numbers, then indicators joined by growing connector lines).
// Cells outside the streak are not animated.
func MonthGrid(cells []calendar.Cell, prog ProgressFunc) string {
	if prog == nil {
		prog = SettledProgress
	}
	line := progress.New(
		progress.WithWidth(ConnectorWidth),
		progress.WithoutPercentage(),
	)

	lines := []string{WeekdayHeader()}
	for _, week := range calendar.Weeks(cells) {
		var numbers, circles strings.Builder
		for _, c := range week {
			if c.IsPadding() {
				numbers.WriteString(strings.Repeat(" ", ColumnWidth))
				circles.WriteString(strings.Repeat(" ", ColumnWidth))
				continue
			}

			look := Settled
			var p animate.Progress
			if c.InStreak() {
				p = prog(*c.StreakIndex)
				look = Look{Opacity: p.Opacity, Scale: p.Scale}
			}

			num := fmt.Sprintf("%3d", *c.Day)
			numStyle := theme.DayNumber
			if look.Opacity < 1.0/3 {
				numStyle = numStyle.Foreground(theme.TextDim)
			}
			numbers.WriteString(numStyle.Width(ColumnWidth).Render(num))

			circles.WriteString(DayIndicator(c.Variant, look))
			if c.HasConnector() {
				circles.WriteString(theme.Connector.Render(line.ViewAs(p.LineWidth)))
			} else {
				circles.WriteString(strings.Repeat(" ", ConnectorWidth))
			}
		}
		lines = append(lines, numbers.String(), circles.String())
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
