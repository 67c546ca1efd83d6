package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/streaks/internal/router"
	"github.com/abhisek/streaks/internal/screen"
	"github.com/abhisek/streaks/internal/ui/components"
	"github.com/abhisek/streaks/internal/ui/layout"
	"github.com/abhisek/streaks/internal/ui/theme"
)

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// Menu labels, in display order.
const (
	LabelMonth = "MONTH VIEW"
	LabelWeek  = "WEEK VIEW"
	LabelExit  = "EXIT"
)

// Factories build the screens reachable from the menu.
type Factories struct {
	Month func() screen.Screen
	Week  func() screen.Screen
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu      components.Menu
	scenarios int
}

var (
	_ screen.Screen          = (*HomeScreen)(nil)
	_ screen.KeyHintProvider = (*HomeScreen)(nil)
)

// New creates a HomeScreen. scenarios is the number of loaded streak
// scenarios shown under the title.
func New(f Factories, scenarios int) *HomeScreen {
	push := func(factory func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			s := factory()
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: s}
			}
		}
	}

	items := []components.MenuItem{
		{Label: LabelMonth, Action: push(f.Month), Disabled: f.Month == nil},
		{Label: LabelWeek, Action: push(f.Week), Disabled: f.Week == nil},
		{Label: LabelExit, Action: func() tea.Cmd { return tea.Quit }},
	}

	return &HomeScreen{
		menu:      components.NewMenu(items),
		scenarios: scenarios,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(screen.DatasetMsg); ok {
		h.scenarios = msg.Dataset.Len()
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	title := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(theme.Title.Render("🔥 STREAKS 🔥"))

	count := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(theme.Subtitle.Render(scenarioCount(h.scenarios)))

	menu := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(h.menu.View(buttonWidth))

	content := strings.Join([]string{title, count, menu}, "\n\n")
	return components.Centered(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// KeyHints implements screen.KeyHintProvider.
func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: h.menu.Keys.Select.Help().Key, Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func scenarioCount(n int) string {
	if n == 1 {
		return "1 scenario loaded"
	}
	return fmt.Sprintf("%d scenarios loaded", n)
}
