package ui

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rdo-radio/rdo/internal/state"
)

// inputEditor is the state.FieldEditor used by the TUI. It runs each key
// through a bubbles textinput positioned at the end of the value, so the
// dialog gets the textinput keymap (word deletion, line clearing, paste
// sanitizing) without the machine having to know about it.
type inputEditor struct {
	input textinput.Model
}

var _ state.FieldEditor = (*inputEditor)(nil)

func newInputEditor() *inputEditor {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Focus()
	return &inputEditor{input: ti}
}

func (e *inputEditor) Apply(value string, msg tea.KeyMsg) string {
	e.input.SetValue(value)
	e.input.CursorEnd()
	e.input, _ = e.input.Update(msg)
	return e.input.Value()
}

// newFieldInput returns the textinput used to draw one dialog field.
func newFieldInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.Width = dialogWidth - 18
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}
