package week

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/streaks/internal/animate"
	"github.com/abhisek/streaks/internal/calendar"
	"github.com/abhisek/streaks/internal/fixtures"
	"github.com/abhisek/streaks/internal/screen"
	"github.com/abhisek/streaks/internal/ui/components"
	"github.com/abhisek/streaks/internal/ui/layout"
	"github.com/abhisek/streaks/internal/ui/theme"
)

// Options configures a WeekScreen.
type Options struct {
	Dataset       fixtures.Dataset
	FrameInterval time.Duration
	Logger        *zap.Logger
}

type keyMap struct {
	Scenario    key.Binding
	PerfectWeek key.Binding
}

// WeekScreen shows one scenario at a time as a Sunday..Saturday row with
// the most recent day pulsing.
type WeekScreen struct {
	dataset     fixtures.Dataset
	scenario    int
	name        string
	perfectWeek bool
	slots       []calendar.WeekdaySlot
	last        int
	errMsg      string
	pulse       *animate.Pulse
	interval    time.Duration
	keys        keyMap
	logger      *zap.Logger
}

var (
	_ screen.Screen          = (*WeekScreen)(nil)
	_ screen.KeyHintProvider = (*WeekScreen)(nil)
	_ screen.Closer          = (*WeekScreen)(nil)
)

// New creates a WeekScreen showing the first scenario.
func New(opts Options) *WeekScreen {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	interval := opts.FrameInterval
	if interval <= 0 {
		interval = animate.DefaultTiming().FrameInterval
	}
	w := &WeekScreen{
		dataset:  opts.Dataset,
		pulse:    animate.NewPulse(),
		interval: interval,
		keys: keyMap{
			Scenario:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "Scenario")),
			PerfectWeek: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "Perfect week")),
		},
		logger: logger,
	}
	w.load()
	return w
}

func (w *WeekScreen) Init() tea.Cmd {
	return w.restart()
}

func (w *WeekScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case animate.FrameMsg:
		return w, animate.Step(w.pulse, msg, w.interval)

	case screen.DatasetMsg:
		w.dataset = msg.Dataset
		w.load()
		return w, w.restart()

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, w.keys.Scenario):
			w.scenario++
			w.load()
			return w, w.restart()
		case key.Matches(msg, w.keys.PerfectWeek):
			w.perfectWeek = !w.perfectWeek
			w.load()
			return w, w.restart()
		}
	}
	return w, nil
}

// load lays out the current scenario. A streak with an unparseable date
// leaves no slots and records the error for display.
func (w *WeekScreen) load() {
	if n := w.dataset.Len(); n > 0 {
		w.scenario %= n
	} else {
		w.scenario = 0
	}
	name, s := w.dataset.At(w.scenario)
	w.name = name

	slots, err := calendar.LayoutWeek(s, w.perfectWeek)
	if err != nil {
		w.logger.Warn("week layout failed", zap.String("scenario", name), zap.Error(err))
		w.slots, w.last, w.errMsg = nil, -1, err.Error()
		return
	}
	w.slots, w.last, w.errMsg = slots, calendar.LastSlot(slots), ""
}

// restart stops the pulse and starts it again when there is a last day to
// pulse.
func (w *WeekScreen) restart() tea.Cmd {
	w.pulse.Stop()
	if w.last < 0 {
		return nil
	}
	w.pulse.Start()
	return animate.Frame(w.pulse, w.interval)
}

// Close stops the pulse.
func (w *WeekScreen) Close() {
	w.pulse.Stop()
}

func (w *WeekScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	sections := []string{theme.Title.Render(fixtures.Title(w.name))}
	mode := "Regular week"
	if w.perfectWeek {
		mode = "Perfect week"
	}
	sections = append(sections, theme.Subtitle.Render(mode), "")

	if w.errMsg != "" {
		sections = append(sections, theme.Error.Render(fmt.Sprintf("✗ %s", w.errMsg)))
	} else {
		sections = append(sections, components.WeekRow(w.slots, w.last, w.pulse.Scale()))
	}

	card := components.Card(strings.Join(sections, "\n"), min(cw, components.ColumnWidth*calendar.DaysPerWeek+6))
	return components.Centered(card, width, height)
}

func (w *WeekScreen) Title() string {
	return "Week"
}

// KeyHints implements screen.KeyHintProvider.
func (w *WeekScreen) KeyHints() []layout.KeyHint {
	hints := make([]layout.KeyHint, 0, 4)
	for _, b := range []key.Binding{w.keys.Scenario, w.keys.PerfectWeek} {
		h := b.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return append(hints,
		layout.KeyHint{Key: "Esc", Description: "Back"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
}
