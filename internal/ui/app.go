package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/rdo-radio/rdo/internal/config"
	"github.com/rdo-radio/rdo/internal/logging"
	"github.com/rdo-radio/rdo/internal/session"
	"github.com/rdo-radio/rdo/internal/state"
)

// Options configures the UI.
type Options struct {
	Context     context.Context
	Machine     *state.Machine
	ThemeName   string
	SessionPath string // empty disables saving the theme
	Tick        time.Duration
}

// Model is the root application state for Bubble Tea. All station and
// playback state lives in the Machine; the model only adds what is purely
// visual.
type Model struct {
	machine     *state.Machine
	keys        state.KeyMap
	sessionPath string
	tick        time.Duration

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	offset   int // first visible row of the station list
	showHelp bool
	quitting bool

	// Dialog fields, drawn from the machine's Draft
	fieldInputs [2]textinput.Model
}

// New creates the Bubble Tea model around machine. When opts.Machine is nil
// an empty machine with an inert player is used.
func New(opts Options) Model {
	machine := opts.Machine
	if machine == nil {
		machine = state.NewMachine(nil, nil, state.Options{Editor: newInputEditor()})
	}

	return Model{
		machine:     machine,
		keys:        machine.Keys(),
		sessionPath: opts.SessionPath,
		tick:        config.ClampTick(opts.Tick),
		theme:       GetTheme(opts.ThemeName),
		fieldInputs: [2]textinput.Model{
			newFieldInput("Station name"),
			newFieldInput("http://..."),
		},
	}
}

// NewEditor returns the FieldEditor the machine should use so that dialog
// editing behaves like the rest of the TUI.
func NewEditor() state.FieldEditor {
	return newInputEditor()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tick)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.scrollToSelection()
		return m, nil

	case tickMsg:
		return m.handleTick()
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	snap := m.machine.Snapshot()
	switch snap.Mode.Kind {
	case state.ModeAdd, state.ModeEdit:
		return m.renderDraftDialog(snap)
	case state.ModeDelete:
		return m.renderDeleteDialog(snap)
	}
	return m.renderMain(snap)
}

// handleKey gives the UI-only keys a chance in normal mode and hands
// everything else to the machine.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.machine.Mode().Kind == state.ModeNormal {
		switch {
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil

		case key.Matches(msg, m.keys.CycleTheme):
			m.cycleTheme()
			return m, nil
		}
	}

	m.machine.HandleKey(msg)
	if m.machine.Done() {
		m.quitting = true
		return m, tea.Quit
	}
	m.scrollToSelection()
	return m, nil
}

// handleTick runs one synchronization step and schedules the next tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	m.machine.Sync()
	return m, tickCmd(m.tick)
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	if m.sessionPath == "" {
		return
	}
	name := m.theme.Name
	err := session.Update(m.sessionPath, func(s *session.State) {
		s.Theme = name
	})
	if err != nil {
		logging.Warn("save theme failed", zap.String("theme", name), zap.Error(err))
	}
}

// scrollToSelection keeps the selected row inside the visible window.
func (m *Model) scrollToSelection() {
	rows := m.listHeight(m.machine.Snapshot())
	sel, ok := m.machine.Selection().Index()
	if !ok || rows <= 0 {
		m.offset = 0
		return
	}
	if sel < m.offset {
		m.offset = sel
	}
	if sel >= m.offset+rows {
		m.offset = sel - rows + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// renderMain renders the list screen.
func (m Model) renderMain(snap state.Snapshot) string {
	var b strings.Builder

	b.WriteString(m.renderHeader(snap))
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	if panel := m.renderNowPlaying(snap); panel != "" {
		b.WriteString(panel)
		b.WriteString("\n")
	}

	b.WriteString(m.renderStations(snap))
	b.WriteString("\n")
	b.WriteString(m.renderStatus(snap))

	return b.String()
}

// Messages

type tickMsg time.Time

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
