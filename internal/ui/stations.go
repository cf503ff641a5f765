package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rdo-radio/rdo/internal/state"
)

const (
	playingMarker = "▶ "
	idleMarker    = "  "
)

// listHeight returns how many station rows fit on screen.
func (m Model) listHeight(snap state.Snapshot) int {
	h := m.height - headerHeight - commandBarHeight - statusHeight
	if m.showsNowPlaying(snap) {
		h -= nowPlayingHeight
	}
	if h < 1 {
		return 1
	}
	return h
}

// renderStations renders the visible window of the station list.
func (m Model) renderStations(snap state.Snapshot) string {
	styles := m.theme.Styles()
	rows := m.listHeight(snap)

	if len(snap.Stations) == 0 {
		empty := styles.MutedText.Render("No stations yet. Press ") +
			styles.AccentText.Render(m.keys.Add.Help().Key) +
			styles.MutedText.Render(" to add one.")
		return lipgloss.NewStyle().Width(m.width).Height(rows).Padding(0, 1).Render(empty)
	}

	nameWidth, urlWidth := m.columnWidths()

	start := m.offset
	if start > len(snap.Stations)-1 {
		start = 0
	}
	end := start + rows
	if end > len(snap.Stations) {
		end = len(snap.Stations)
	}

	lines := make([]string, 0, rows)
	for i := start; i < end; i++ {
		st := snap.Stations[i]
		playing := snap.IsPlayingAt(i)

		marker := idleMarker
		if playing {
			marker = playingMarker
		}
		line := marker + padRight(truncate(displayName(st.Name), nameWidth), nameWidth)
		if urlWidth > 0 {
			line += "  " + truncateMiddle(st.URL, urlWidth)
		}
		line = padRight(line, m.width)

		switch {
		case snap.HasSelection && i == snap.Selected:
			style := styles.Selected
			if playing {
				style = style.Bold(true)
			}
			lines = append(lines, style.Render(line))
		case playing:
			lines = append(lines, styles.Playing.Render(line))
		default:
			lines = append(lines, styles.Text.Render(line))
		}
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// columnWidths splits the row between the name and url columns. The url
// column disappears on narrow terminals.
func (m Model) columnWidths() (name, url int) {
	avail := m.width - len(idleMarker)
	switch {
	case m.width < LayoutCompactWidth:
		return max(avail, 1), 0
	case m.width < LayoutWideWidth:
		name = avail * 2 / 5
	default:
		name = avail / 2
	}
	return name, max(avail-name-2, 0)
}

func (m Model) showsNowPlaying(snap state.Snapshot) bool {
	_, ok := snap.CurrentStation()
	return ok && snap.IsPlayingAt(snap.Current)
}

// renderNowPlaying renders the panel with the playing station and the
// stream title. It returns "" when nothing plays.
func (m Model) renderNowPlaying(snap state.Snapshot) string {
	if !m.showsNowPlaying(snap) {
		return ""
	}
	st, _ := snap.CurrentStation()
	styles := m.theme.Styles()
	inner := m.width - 4

	title := snap.Playback.Title
	titleStyle := styles.Text
	if !snap.Playback.HasTitle() {
		title = strings.ToLower(snap.Playback.Status.String()) + "..."
		titleStyle = styles.FaintText
	}

	content := styles.Playing.Render(truncate(displayName(st.Name), inner)) + "\n" +
		titleStyle.Render(truncate(title, inner))

	return styles.Panel.Width(max(m.width-2, 1)).Render(content)
}
