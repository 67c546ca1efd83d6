package welcome

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/streaks/internal/ui/theme"
)

// Block letters, six rows each.
var letters = map[rune][]string{
	'S': {
		"███████╗",
		"██╔════╝",
		"███████╗",
		"╚════██║",
		"███████║",
		"╚══════╝",
	},
	'T': {
		"████████╗",
		"╚══██╔══╝",
		"   ██║   ",
		"   ██║   ",
		"   ██║   ",
		"   ╚═╝   ",
	},
	'R': {
		"██████╗ ",
		"██╔══██╗",
		"██████╔╝",
		"██╔══██╗",
		"██║  ██║",
		"╚═╝  ╚═╝",
	},
	'E': {
		"███████╗",
		"██╔════╝",
		"█████╗  ",
		"██╔══╝  ",
		"███████╗",
		"╚══════╝",
	},
	'A': {
		" █████╗ ",
		"██╔══██╗",
		"███████║",
		"██╔══██║",
		"██║  ██║",
		"╚═╝  ╚═╝",
	},
	'K': {
		"██╗  ██╗",
		"██║ ██╔╝",
		"█████╔╝ ",
		"██╔═██╗ ",
		"██║  ██╗",
		"╚═╝  ╚═╝",
	},
}

const (
	bannerWord    = "STREAKS"
	bannerCompact = "S T R E A K S"
	bannerWidth   = 58
)

// bannerArt joins the block letters of bannerWord row by row.
func bannerArt() string {
	rows := make([]string, 6)
	for _, r := range bannerWord {
		for i, part := range letters[r] {
			rows[i] += part
		}
	}
	return strings.Join(rows, "\n")
}

// RenderBanner returns the STREAKS banner styled in the primary color.
// Uses a compact fallback for terminals narrower than the art.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt())
}
