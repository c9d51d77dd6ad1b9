package app

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/openmcq/openmcq/internal/persist"
	"github.com/openmcq/openmcq/internal/question"
	"github.com/openmcq/openmcq/internal/quiz"
	"github.com/openmcq/openmcq/internal/router"
	"github.com/openmcq/openmcq/internal/screen"
	"github.com/openmcq/openmcq/internal/screens/home"
	"github.com/openmcq/openmcq/internal/screens/recovery"
	"github.com/openmcq/openmcq/internal/store"
	"github.com/openmcq/openmcq/internal/ui/layout"
)

const (
	// saveInterval is how often the session snapshot is checkpointed.
	saveInterval = 5 * time.Second

	// touchInterval refreshes the last-activity timestamp so an open
	// app does not age out of the recovery window.
	touchInterval = time.Minute
)

// saveTickMsg triggers a periodic checkpoint save.
type saveTickMsg time.Time

// touchTickMsg triggers a periodic activity refresh.
type touchTickMsg time.Time

// Options carries the dependencies the TUI needs.
type Options struct {
	Questions *question.Repository
	QuizStore *quiz.Store
	Gateway   *persist.Gateway
	Events    store.EventRepo
	SessionID string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int
}

// newAppModel creates the root model. A recoverable checkpoint routes
// to the recovery prompt instead of the menu.
func newAppModel(opts Options) AppModel {
	var first screen.Screen
	if saved := opts.Gateway.Load(); saved != nil {
		first = recovery.New(*saved, opts.Questions, opts.QuizStore, opts.Gateway, opts.Events, opts.SessionID)
	} else {
		first = home.New(opts.Questions, opts.QuizStore, opts.Gateway, opts.Events, opts.SessionID)
	}
	return AppModel{
		opts:   opts,
		router: router.New(first),
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(saveTick(), touchTick())
}

func saveTick() tea.Cmd {
	return tea.Tick(saveInterval, func(t time.Time) tea.Msg {
		return saveTickMsg(t)
	})
}

func touchTick() tea.Cmd {
	return tea.Tick(touchInterval, func(t time.Time) tea.Msg {
		return touchTickMsg(t)
	})
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case saveTickMsg:
		// Screens save on their own transitions; the periodic save only
		// checkpoints active sessions. Skipping idle state also keeps a
		// pending recovery checkpoint from being wiped while the prompt
		// is still on screen.
		if state := m.opts.QuizStore.Snapshot(); state.Mode != quiz.ModeNone {
			m.opts.Gateway.Save(state)
		}
		return m, saveTick()

	case touchTickMsg:
		if m.opts.QuizStore.Snapshot().Mode != quiz.ModeNone {
			m.opts.Gateway.Touch()
		}
		return m, touchTick()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			if state := m.opts.QuizStore.Snapshot(); state.Mode != quiz.ModeNone {
				m.opts.Gateway.Save(state)
			}
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscHandler); ok {
				cmd, consumed := h.HandleEsc()
				if consumed {
					return m, cmd
				}
				if m.router.Depth() > 1 {
					return m, tea.Batch(cmd, func() tea.Msg { return router.PopScreenMsg{} })
				}
				return m, cmd
			}
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

	status := ""
	if sp, ok := active.(screen.StatusProvider); ok {
		status = sp.HeaderStatus()
	}

	header := layout.RenderHeader(title, status, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if len(footerHints) == 0 {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
