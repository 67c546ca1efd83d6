package app

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/streaks/internal/animate"
	"github.com/abhisek/streaks/internal/fixtures"
	"github.com/abhisek/streaks/internal/router"
	"github.com/abhisek/streaks/internal/screen"
	"github.com/abhisek/streaks/internal/screens/home"
	"github.com/abhisek/streaks/internal/screens/month"
	"github.com/abhisek/streaks/internal/screens/welcome"
	"github.com/abhisek/streaks/internal/screens/week"
	"github.com/abhisek/streaks/internal/ui/layout"
)

// Options holds the dependencies for the TUI.
type Options struct {
	Dataset     fixtures.Dataset
	CurrentDate time.Time
	Timing      animate.Timing
	Logger      *zap.Logger

	// Reloads, when set, delivers datasets re-read from disk.
	Reloads <-chan fixtures.Reload

	// SkipSplash starts directly on the home screen.
	SkipSplash bool
}

// reloadMsg wraps one value received from Options.Reloads.
type reloadMsg struct {
	reload fixtures.Reload
	ok     bool
}

// appData is shared between the model copies Bubble Tea passes around
// and the screen factories.
type appData struct {
	dataset fixtures.Dataset
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	data   *appData
	logger *zap.Logger
	width  int
	height int
}

// newAppModel creates a new AppModel starting on the splash screen, or on
// the home screen when opts.SkipSplash is set.
func newAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.CurrentDate.IsZero() {
		opts.CurrentDate = time.Now()
	}
	data := &appData{dataset: opts.Dataset}
	newHome := homeFactory(data, opts)

	var first screen.Screen
	if opts.SkipSplash {
		first = newHome()
	} else {
		first = welcome.New(newHome)
	}
	return AppModel{
		router: router.New(first),
		opts:   opts,
		data:   data,
		logger: opts.Logger,
	}
}

// homeFactory returns a builder for the home screen. The month and week
// factories read the latest dataset each time they run.
func homeFactory(data *appData, opts Options) func() screen.Screen {
	return func() screen.Screen {
		return home.New(home.Factories{
			Month: func() screen.Screen {
				return month.New(month.Options{
					Dataset:     data.dataset,
					CurrentDate: opts.CurrentDate,
					Timing:      opts.Timing,
					Logger:      opts.Logger,
				})
			},
			Week: func() screen.Screen {
				return week.New(week.Options{
					Dataset:       data.dataset,
					FrameInterval: opts.Timing.FrameInterval,
					Logger:        opts.Logger,
				})
			},
		}, data.dataset.Len())
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Active().Init(), waitForReload(m.opts.Reloads))
}

// waitForReload blocks on ch for the next reload. It returns nil when
// there is nothing to watch.
func waitForReload(ch <-chan fixtures.Reload) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		r, ok := <-ch
		return reloadMsg{reload: r, ok: ok}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case reloadMsg:
		if !msg.ok {
			return m, nil
		}
		next := waitForReload(m.opts.Reloads)
		if msg.reload.Err != nil {
			m.logger.Warn("dataset reload failed, keeping previous data", zap.Error(msg.reload.Err))
			return m, next
		}
		m.data.dataset = msg.reload.Dataset
		m.logger.Info("dataset reloaded", zap.Int("scenarios", m.data.dataset.Len()))
		cmd := m.router.Update(screen.DatasetMsg{Dataset: m.data.dataset})
		return m, tea.Batch(cmd, next)

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			m.router.Close()
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.opts.CurrentDate.Format("Mon 02 Jan 2006"), m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	content := m.router.View(m.width, layout.ContentHeight(m.height))
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Any key", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	model := newAppModel(opts)
	p := tea.NewProgram(model)
	final, err := p.Run()
	if m, ok := final.(AppModel); ok {
		m.router.Close()
	}
	if err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
