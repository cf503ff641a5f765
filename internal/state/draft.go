package state

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rdo-radio/rdo/internal/station"
)

// Field identifies one of the two draft inputs.
type Field int

const (
	FieldName Field = iota
	FieldURL
)

// Toggle returns the other field.
func (f Field) Toggle() Field {
	if f == FieldName {
		return FieldURL
	}
	return FieldName
}

func (f Field) String() string {
	if f == FieldURL {
		return "url"
	}
	return "name"
}

// Draft is the uncommitted content of the add/edit dialog.
type Draft struct {
	Name  string
	URL   string
	Focus Field
}

func newDraft(st station.Station) Draft {
	return Draft{Name: st.Name, URL: st.URL, Focus: FieldName}
}

// Station converts the draft into the station it would commit.
func (d Draft) Station() station.Station {
	return station.Station{Name: d.Name, URL: d.URL}
}

// Value returns the content of field f.
func (d Draft) Value(f Field) string {
	if f == FieldURL {
		return d.URL
	}
	return d.Name
}

func (d *Draft) set(f Field, v string) {
	if f == FieldURL {
		d.URL = v
		return
	}
	d.Name = v
}

// FieldEditor applies a key to the content of a text field. The cursor is
// not modelled: edits happen at the end of the value.
type FieldEditor interface {
	Apply(value string, msg tea.KeyMsg) string
}

// BasicEditor is the built-in FieldEditor: it appends typed and pasted text
// and understands backspace, ctrl+w (delete word) and ctrl+u (clear).
type BasicEditor struct{}

var _ FieldEditor = BasicEditor{}

func (BasicEditor) Apply(value string, msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return value
		}
		return value + stripControl(string(msg.Runes))
	case tea.KeySpace:
		return value + " "
	case tea.KeyBackspace:
		runes := []rune(value)
		if len(runes) == 0 {
			return value
		}
		return string(runes[:len(runes)-1])
	case tea.KeyCtrlW:
		trimmed := strings.TrimRightFunc(value, unicode.IsSpace)
		cut := strings.LastIndexFunc(trimmed, unicode.IsSpace)
		return trimmed[:cut+1]
	case tea.KeyCtrlU:
		return ""
	default:
		return value
	}
}

func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
