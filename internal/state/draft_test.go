package state

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestBasicEditor_Apply(t *testing.T) {
	cases := []struct {
		name  string
		value string
		msg   tea.KeyMsg
		want  string
	}{
		{"append runes", "ab", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")}, "abc"},
		{"paste", "", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("http://x"), Paste: true}, "http://x"},
		{"alt ignored", "ab", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c"), Alt: true}, "ab"},
		{"control stripped", "", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a\tb\n")}, "ab"},
		{"space", "a", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, "a "},
		{"backspace multibyte", "café", tea.KeyMsg{Type: tea.KeyBackspace}, "caf"},
		{"backspace empty", "", tea.KeyMsg{Type: tea.KeyBackspace}, ""},
		{"delete word", "radio one ", tea.KeyMsg{Type: tea.KeyCtrlW}, "radio "},
		{"delete only word", "radio", tea.KeyMsg{Type: tea.KeyCtrlW}, ""},
		{"clear", "radio one", tea.KeyMsg{Type: tea.KeyCtrlU}, ""},
		{"other keys ignored", "x", tea.KeyMsg{Type: tea.KeyLeft}, "x"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := (BasicEditor{}).Apply(tc.value, tc.msg); got != tc.want {
				t.Fatalf("Apply(%q) = %q, want %q", tc.value, got, tc.want)
			}
		})
	}
}

func TestField_Toggle(t *testing.T) {
	if FieldName.Toggle() != FieldURL || FieldURL.Toggle() != FieldName {
		t.Fatal("Toggle should alternate between name and url")
	}
}

func TestMode_String(t *testing.T) {
	cases := map[Mode]string{
		normalMode():  "normal",
		addMode():     "add",
		editMode(2):   "edit(2)",
		deleteMode(0): "delete(0)",
		exitMode():    "exit",
	}
	for mode, want := range cases {
		if got := mode.String(); got != want {
			t.Fatalf("String() = %q, want %q", got, want)
		}
	}
}
