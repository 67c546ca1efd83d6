package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: dark canvas with purple checks and orange flames.
var (
	Primary   = lipgloss.Color("#7241FF") // Streak Purple
	Secondary = lipgloss.Color("#666666") // Connector Gray
	Accent    = lipgloss.Color("#F0800B") // Flame Orange
	Text      = lipgloss.Color("#FFFFFF") // White
	TextDim   = lipgloss.Color("#666666") // Weekday Gray
	BgDark    = lipgloss.Color("#000000") // Black
	BgCard    = lipgloss.Color("#121212") // Screen
	BgCircle  = lipgloss.Color("#333333") // Empty Day
	Border    = lipgloss.Color("#333333") // Slate
	Highlight = lipgloss.Color("#FFFFFF") // Ring
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	WeekDay = lipgloss.NewStyle().
		Foreground(TextDim).
		Bold(true)

	DayNumber = lipgloss.NewStyle().
			Foreground(Text)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgDark).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Error = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)
)

// Day indicators
var (
	IndicatorPlain = lipgloss.NewStyle().
			Foreground(TextDim).
			Background(BgCircle)

	IndicatorCheck = lipgloss.NewStyle().
			Foreground(Text).
			Background(Primary)

	IndicatorFlame = lipgloss.NewStyle().
			Foreground(Text).
			Background(Accent)

	Connector = lipgloss.NewStyle().
			Foreground(Secondary)
)
