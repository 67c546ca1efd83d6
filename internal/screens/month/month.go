package month

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/streaks/internal/animate"
	"github.com/abhisek/streaks/internal/calendar"
	"github.com/abhisek/streaks/internal/fixtures"
	"github.com/abhisek/streaks/internal/screen"
	"github.com/abhisek/streaks/internal/streak"
	"github.com/abhisek/streaks/internal/ui/components"
	"github.com/abhisek/streaks/internal/ui/layout"
	"github.com/abhisek/streaks/internal/ui/theme"
)

// Options configures a MonthScreen.
type Options struct {
	Dataset     fixtures.Dataset
	CurrentDate time.Time
	Timing      animate.Timing
	Logger      *zap.Logger
}

// MonthScreen shows one scenario at a time as a month calendar whose
// streak days fade in one after another.
type MonthScreen struct {
	dataset  fixtures.Dataset
	scenario int
	name     string
	state    streak.State
	shown    time.Time
	cells    []calendar.Cell
	seq      *animate.Sequencer
	keys     keyMap
	logger   *zap.Logger
}

var (
	_ screen.Screen          = (*MonthScreen)(nil)
	_ screen.KeyHintProvider = (*MonthScreen)(nil)
	_ screen.Closer          = (*MonthScreen)(nil)
)

// New creates a MonthScreen showing the first scenario in the month of
// opts.CurrentDate.
func New(opts Options) *MonthScreen {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	timing := opts.Timing
	if timing.FrameInterval <= 0 {
		timing = animate.DefaultTiming()
	}
	year, month := calendar.MonthOf(opts.CurrentDate)
	m := &MonthScreen{
		dataset: opts.Dataset,
		shown:   time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC),
		seq:     animate.NewSequencer(timing),
		keys:    defaultKeys(),
		logger:  logger,
	}
	m.state = streak.NewState(nil, opts.CurrentDate)
	m.load()
	return m
}

func (m *MonthScreen) Init() tea.Cmd {
	return m.restart()
}

func (m *MonthScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case animate.FrameMsg:
		return m, animate.Step(m.seq, msg, m.interval())

	case screen.DatasetMsg:
		m.dataset = msg.Dataset
		m.load()
		return m, m.restart()

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, m.keys.Scenario):
			m.scenario++
			m.load()
			return m, m.restart()
		case key.Matches(msg, m.keys.PrevMonth):
			m.shift(-1)
		case key.Matches(msg, m.keys.NextMonth):
			m.shift(1)
		}
	}
	return m, nil
}

// load picks up the current scenario from the dataset and lays it out.
func (m *MonthScreen) load() {
	if n := m.dataset.Len(); n > 0 {
		m.scenario %= n
	} else {
		m.scenario = 0
	}
	name, s := m.dataset.At(m.scenario)
	m.name = name
	m.state = streak.NewState(s, m.state.CurrentDate)
	m.layout()
}

func (m *MonthScreen) layout() {
	year, month := calendar.MonthOf(m.shown)
	m.cells = calendar.LayoutMonth(year, month, m.state.Len())
}

// shift moves the shown month by delta. The running animation is kept.
func (m *MonthScreen) shift(delta int) {
	m.shown = m.shown.AddDate(0, delta, 0)
	m.layout()
}

// restart stops the running animation and starts a new one over the
// current streak.
func (m *MonthScreen) restart() tea.Cmd {
	m.seq.Stop()
	m.seq.Start(m.state.Len())
	m.logger.Debug("month animation restarted",
		zap.String("scenario", m.name),
		zap.Int("length", m.state.Len()),
		zap.String("run", m.seq.RunID()),
	)
	return animate.Frame(m.seq, m.interval())
}

func (m *MonthScreen) interval() time.Duration {
	return m.seq.Timing().FrameInterval
}

// Close stops the animation.
func (m *MonthScreen) Close() {
	m.seq.Stop()
}

func (m *MonthScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	heading := theme.Title.Render(fixtures.Title(m.name))
	sub := theme.Subtitle.Render(fmt.Sprintf("%s · %s · %s",
		m.shown.Format("January 2006"),
		dayCount(m.state.Len()),
		m.state.Type.DisplayName(),
	))

	grid := components.MonthGrid(m.cells, m.seq.Progress)

	body := strings.Join([]string{heading, sub, "", grid}, "\n")
	card := components.Card(body, min(cw, lipgloss.Width(grid)+6))
	return components.Centered(card, width, height)
}

func (m *MonthScreen) Title() string {
	return "Month"
}

// KeyHints implements screen.KeyHintProvider.
func (m *MonthScreen) KeyHints() []layout.KeyHint {
	hints := make([]layout.KeyHint, 0, 5)
	for _, b := range []key.Binding{m.keys.Scenario, m.keys.PrevMonth, m.keys.NextMonth} {
		h := b.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return append(hints,
		layout.KeyHint{Key: "Esc", Description: "Back"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
}

func dayCount(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
