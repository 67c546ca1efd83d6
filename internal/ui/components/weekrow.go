package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/streaks/internal/calendar"
	"github.com/abhisek/streaks/internal/ui/theme"
)

// WeekRow renders the seven weekday slots with their labels above. The
// slot at pulseIndex is drawn at pulseScale; slots without a streak day
// are dimmed.
func WeekRow(slots []calendar.WeekdaySlot, pulseIndex int, pulseScale float64) string {
	var labels, circles strings.Builder
	for i, s := range slots {
		labels.WriteString(theme.WeekDay.Width(ColumnWidth).Render(" " + s.Label))

		look := Settled
		if !s.Present {
			look.Opacity = 0.5
		}
		if i == pulseIndex {
			look.Scale = pulseScale
		}
		circles.WriteString(DayIndicator(s.Variant, look))
		circles.WriteString(strings.Repeat(" ", ConnectorWidth))
	}
	return lipgloss.JoinVertical(lipgloss.Left, labels.String(), circles.String())
}
