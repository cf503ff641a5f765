package state

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/rdo-radio/rdo/internal/logging"
	"github.com/rdo-radio/rdo/internal/playback"
	"github.com/rdo-radio/rdo/internal/station"
)

// Options configure a Machine.
type Options struct {
	Keys   *KeyMap     // nil uses DefaultKeyMap
	Editor FieldEditor // nil uses BasicEditor

	// OnPlay runs after the backend accepted a station.
	OnPlay func(station.Station)
}

// Machine is the application state machine. It owns the station store, the
// selection and the index of the station last sent to the player, and it is
// the only place that decides what a key does.
type Machine struct {
	store  *station.Store
	player *playback.Player
	keys   KeyMap
	editor FieldEditor
	onPlay func(station.Station)

	mode    Mode
	sel     Selection
	draft   Draft
	current int // -1 when nothing was played
	lastErr error
}

// NewMachine starts in normal mode with the first station selected.
func NewMachine(store *station.Store, player *playback.Player, opts Options) *Machine {
	if store == nil {
		store = station.NewStore("", nil)
	}
	if player == nil {
		player = playback.NewPlayer(nil)
	}
	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}
	var editor FieldEditor = BasicEditor{}
	if opts.Editor != nil {
		editor = opts.Editor
	}
	return &Machine{
		store:   store,
		player:  player,
		keys:    keys,
		editor:  editor,
		onPlay:  opts.OnPlay,
		mode:    normalMode(),
		sel:     NewSelection(store.Len()),
		current: -1,
	}
}

// Mode returns the active mode.
func (m *Machine) Mode() Mode {
	return m.mode
}

// Selection returns the highlighted row.
func (m *Machine) Selection() Selection {
	return m.sel
}

// Draft returns the open draft; ok is false outside add/edit mode.
func (m *Machine) Draft() (Draft, bool) {
	return m.draft, m.mode.Editing()
}

// CurrentStation returns the index of the station last sent to the player.
func (m *Machine) CurrentStation() (int, bool) {
	return m.current, m.current >= 0
}

// Keys returns the bindings in use.
func (m *Machine) Keys() KeyMap {
	return m.keys
}

// LastError returns the most recent recoverable failure, cleared by the next
// key.
func (m *Machine) LastError() error {
	return m.lastErr
}

// Done reports whether the machine reached the terminal mode.
func (m *Machine) Done() bool {
	return m.mode.Kind == ModeExit
}

// Select highlights the first station equal to st. It reports whether one
// was found.
func (m *Machine) Select(st station.Station) bool {
	for i, candidate := range m.store.Stations() {
		if candidate == st {
			m.sel.Set(i, m.store.Len())
			return true
		}
	}
	return false
}

// Sync folds at most one pending playback event into the machine's view of
// the player. It reports whether the playback state changed.
func (m *Machine) Sync() bool {
	st, changed := m.player.PollStatus()
	if changed {
		logging.Debug("playback state changed",
			zap.Stringer("status", st.Status),
			zap.String("title", st.Title),
		)
	}
	return changed
}

// HandleKey interprets msg according to the active mode.
func (m *Machine) HandleKey(msg tea.KeyMsg) {
	if m.mode.Kind == ModeExit {
		return
	}
	m.lastErr = nil
	m.revalidate()

	switch m.mode.Kind {
	case ModeNormal:
		m.handleNormal(msg)
	case ModeAdd, ModeEdit:
		m.handleDraft(msg)
	case ModeDelete:
		m.handleDelete(msg)
	}
}

func (m *Machine) handleNormal(msg tea.KeyMsg) {
	n := m.store.Len()
	selected, hasSelection := m.sel.Index()

	switch {
	case key.Matches(msg, m.keys.Up):
		m.sel.Previous(n)

	case key.Matches(msg, m.keys.Down):
		m.sel.Next(n)

	case key.Matches(msg, m.keys.Play):
		if hasSelection {
			m.play(selected)
		}

	case key.Matches(msg, m.keys.Stop):
		if err := m.player.Stop(); err != nil {
			m.fail("stop failed", err)
		}

	case key.Matches(msg, m.keys.Edit):
		if st, ok := m.store.At(selected); hasSelection && ok {
			m.draft = newDraft(st)
			m.mode = editMode(selected)
		}

	case key.Matches(msg, m.keys.Add):
		m.draft = newDraft(station.Station{})
		m.mode = addMode()

	case key.Matches(msg, m.keys.Delete):
		if hasSelection {
			m.mode = deleteMode(selected)
		}

	case key.Matches(msg, m.keys.MoveUp):
		if hasSelection && selected > 0 {
			m.swap(selected, selected-1)
		}

	case key.Matches(msg, m.keys.MoveDown):
		if hasSelection && selected < n-1 {
			m.swap(selected, selected+1)
		}

	case key.Matches(msg, m.keys.Quit):
		m.mode = exitMode()
	}
}

func (m *Machine) handleDraft(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.commitDraft()
		m.closeDialog()

	case key.Matches(msg, m.keys.SwitchField):
		m.draft.Focus = m.draft.Focus.Toggle()

	case key.Matches(msg, m.keys.Cancel):
		m.closeDialog()

	default:
		f := m.draft.Focus
		m.draft.set(f, m.editor.Apply(m.draft.Value(f), msg))
	}
}

func (m *Machine) handleDelete(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.remove(m.mode.Index)
		m.closeDialog()

	case key.Matches(msg, m.keys.Cancel):
		m.closeDialog()
	}
}

func (m *Machine) closeDialog() {
	m.draft = Draft{}
	m.mode = normalMode()
}

func (m *Machine) commitDraft() {
	st := m.draft.Station()

	if m.mode.Kind == ModeAdd {
		err := m.store.Append(st)
		m.sel.AfterAppend(m.store.Len())
		if err != nil {
			m.fail("save after add failed", err)
		}
		return
	}

	i := m.mode.Index
	if _, ok := m.store.At(i); !ok {
		m.fail("edit discarded", staleIndex(i, m.store.Len()))
		return
	}
	if err := m.store.Replace(i, st); err != nil {
		m.fail("save after edit failed", err)
	}
}

func (m *Machine) play(i int) {
	st, ok := m.store.At(i)
	if !ok {
		return
	}
	if err := m.player.Play(st.URL); err != nil {
		m.fail("play failed", err)
		return
	}
	m.current = i
	logging.Info("playing station", zap.String("name", st.Name), zap.String("url", st.URL))
	if m.onPlay != nil {
		m.onPlay(st)
	}
}

func (m *Machine) remove(i int) {
	if _, ok := m.store.At(i); !ok {
		m.fail("delete discarded", staleIndex(i, m.store.Len()))
		return
	}

	err := m.store.Remove(i)
	m.sel.AfterRemove(i, m.store.Len())

	switch {
	case m.current == i:
		m.current = -1
		if stopErr := m.player.Stop(); stopErr != nil && !errors.Is(stopErr, playback.ErrNoBackend) {
			logging.Warn("stop after delete failed", zap.Error(stopErr))
		}
	case m.current > i:
		m.current--
	}

	if err != nil {
		m.fail("save after delete failed", err)
	}
}

// Swap exchanges stations i and j. The selection and the playing index follow
// the stations they pointed at.
func (m *Machine) Swap(i, j int) error {
	return m.swap(i, j)
}

func (m *Machine) swap(i, j int) error {
	_, okI := m.store.At(i)
	_, okJ := m.store.At(j)
	if !okI || !okJ {
		err := fmt.Errorf("swap %d and %d: %w", i, j, station.ErrIndexOutOfRange)
		m.fail("move discarded", err)
		return err
	}

	err := m.store.Swap(i, j)
	m.sel.AfterSwap(i, j)
	if m.current >= 0 {
		m.current = swapIndex(m.current, i, j)
	}
	if err != nil {
		m.fail("save after move failed", err)
	}
	return err
}

// revalidate clamps held indices after the store was changed behind the
// machine's back. The index captured by an open dialog is left alone and
// checked on confirm instead.
func (m *Machine) revalidate() {
	n := m.store.Len()
	if i, ok := m.sel.Index(); ok {
		m.sel.Set(i, n)
	} else {
		m.sel.AfterAppend(n)
	}
	if m.current >= n {
		m.current = -1
	}
}

func (m *Machine) fail(msg string, err error) {
	m.lastErr = err
	logging.Warn(msg, zap.Error(err), zap.Stringer("mode", m.mode))
}

func staleIndex(i, n int) error {
	return fmt.Errorf("station %d no longer exists (%d stations): %w", i+1, n, station.ErrIndexOutOfRange)
}
