package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/streaks/internal/streak"
	"github.com/abhisek/streaks/internal/ui/theme"
)

// IndicatorWidth is the column width of one day indicator.
const IndicatorWidth = 4

// Glyphs drawn inside day indicators.
const (
	GlyphPlain = "·"
	GlyphCheck = "✓"
	GlyphFlame = "🔥"
)

// Look carries the animated signals applied to one indicator.
type Look struct {
	Opacity float64
	Scale   float64
}

// Settled is the look of an indicator that is not animating.
var Settled = Look{Opacity: 1, Scale: 1}

// DayIndicator renders the circle for a variant. Highlighted variants get
// a bracket ring; opacity below one third hides the indicator, below two
// thirds dims it; a scale above 1.05 draws it bold.
func DayIndicator(v streak.Variant, look Look) string {
	if look.Opacity < 1.0/3 {
		return strings.Repeat(" ", IndicatorWidth)
	}

	var style lipgloss.Style
	var glyph string
	switch {
	case v.IsFlame():
		style, glyph = theme.IndicatorFlame, GlyphFlame
	case v.IsCheck():
		style, glyph = theme.IndicatorCheck, GlyphCheck
	default:
		style, glyph = theme.IndicatorPlain, GlyphPlain
	}

	if v.IsHighlighted() {
		glyph = "[" + glyph + "]"
		style = style.Bold(true).Foreground(theme.Highlight)
	}
	if look.Opacity < 2.0/3 {
		style = style.Faint(true)
	}
	if look.Scale > 1.05 {
		style = style.Bold(true).Underline(true)
	}

	return style.Width(IndicatorWidth).Align(lipgloss.Center).Render(glyph)
}
