package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/streaks/internal/animate"
	"github.com/abhisek/streaks/internal/router"
	"github.com/abhisek/streaks/internal/screen"
	"github.com/abhisek/streaks/internal/streak"
	"github.com/abhisek/streaks/internal/ui/components"
	"github.com/abhisek/streaks/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	bannerAt     = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

// WelcomeScreen shows a splash with a row of flames lighting up one after
// another, then hands over to the screen produced by homeFactory.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	flames       *animate.Sequencer
	elapsed      time.Duration
	transitioned bool
}

var (
	_ screen.Screen = (*WelcomeScreen)(nil)
	_ screen.Closer = (*WelcomeScreen)(nil)
)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	timing := animate.DefaultTiming()
	timing.Stagger = tickInterval
	timing.Duration = 2 * tickInterval
	timing.FrameInterval = tickInterval
	return &WelcomeScreen{
		homeFactory: homeFactory,
		flames:      animate.NewSequencer(timing),
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	w.flames.Start(streak.WeekLength)
	return animate.Frame(w.flames, tickInterval)
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case animate.FrameMsg:
		if msg.RunID == w.flames.RunID() && w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		return w, animate.Step(w.flames, msg, tickInterval)

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

// Close stops the flame animation.
func (w *WelcomeScreen) Close() {
	w.flames.Stop()
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	var row strings.Builder
	for i := range streak.WeekLength {
		p := w.flames.Progress(i)
		v := streak.VariantFlame
		if i == streak.WeekLength-1 {
			v = streak.VariantFlameHighlighted
		}
		row.WriteString(components.DayIndicator(v, components.Look{Opacity: p.Opacity, Scale: p.Scale}))
	}
	sections = append(sections, row.String())

	if w.elapsed >= bannerAt {
		sections = append(sections, "", RenderBanner(width), "")

		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Keep the streak alive!")
		sections = append(sections, tagline)
	}

	if w.elapsed >= totalDur {
		hint := theme.Hint.Render("press any key to continue")
		sections = append(sections, "", hint)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
