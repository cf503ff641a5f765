package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/rdo-radio/rdo/internal/state"
)

// renderDraftDialog renders the add/edit dialog from the machine's draft.
func (m Model) renderDraftDialog(snap state.Snapshot) string {
	styles := m.theme.Styles()
	var b strings.Builder

	title := "New Station"
	if snap.Mode.Kind == state.ModeEdit {
		title = "Edit Station"
	}
	b.WriteString(styles.Text.Bold(true).Render(title))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", dialogWidth-6)))
	b.WriteString("\n\n")

	fields := []struct {
		label string
		field state.Field
	}{
		{"Name: ", state.FieldName},
		{"URL:  ", state.FieldURL},
	}
	for i, f := range fields {
		focused := snap.Draft.Focus == f.field

		label := styles.MutedText.Render(f.label)
		if focused {
			label = styles.AccentText.Render(f.label)
		}

		input := m.fieldInputs[i]
		input.SetValue(snap.Draft.Value(f.field))
		input.CursorEnd()
		input.TextStyle = styles.Text
		input.PlaceholderStyle = styles.FaintText
		if focused {
			input.Focus()
			input.TextStyle = input.TextStyle.Background(lipgloss.Color(m.theme.SurfaceAlt))
		} else {
			input.Blur()
		}

		b.WriteString(label)
		b.WriteString(input.View())
		b.WriteString("\n\n")
	}

	b.WriteString(styles.FaintText.Render(m.dialogHints(m.keys.Confirm, m.keys.SwitchField, m.keys.Cancel)))

	return m.placeDialog(b.String(), dialogWidth)
}

// renderDeleteDialog asks for confirmation before removing a station.
func (m Model) renderDeleteDialog(snap state.Snapshot) string {
	styles := m.theme.Styles()
	var b strings.Builder
	inner := dialogWidth - 6

	b.WriteString(styles.DangerText.Render("Delete Station"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", inner)))
	b.WriteString("\n\n")

	if st, ok := snap.Target(); ok {
		b.WriteString(styles.Text.Bold(true).Render(truncate(displayName(st.Name), inner)))
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render(truncateMiddle(st.URL, inner)))
		b.WriteString("\n\n")
		if snap.IsPlayingAt(snap.Mode.Index) {
			b.WriteString(styles.WarningText.Render("This station is playing and will be stopped."))
			b.WriteString("\n\n")
		}
	} else {
		b.WriteString(styles.WarningText.Render("This station no longer exists."))
		b.WriteString("\n\n")
	}

	b.WriteString(styles.FaintText.Render(m.dialogHints(m.keys.Confirm, m.keys.Cancel)))

	return m.placeDialog(b.String(), dialogWidth)
}

func (m Model) dialogHints(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, capitalize(h.Key)+": "+h.Desc)
	}
	return strings.Join(parts, "  •  ")
}

// placeDialog draws content in a bordered box centered on the screen.
func (m Model) placeDialog(content string, width int) string {
	box := m.theme.Styles().Dialog.Width(width).Render(content)
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
