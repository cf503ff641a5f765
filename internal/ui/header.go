package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/rdo-radio/rdo/internal/state"
)

// renderHeader renders the top bar: logo, playback badge, station count.
func (m Model) renderHeader(snap state.Snapshot) string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	parts := []string{bg.Render("rdo", styles.Logo)}

	if snap.BackendAvailable {
		parts = append(parts, m.theme.Styles().PlaybackBadge(snap.Playback.Status).
			Render(strings.ToUpper(snap.Playback.Status.String())))
	} else {
		parts = append(parts, bg.Render("● mpv unavailable", styles.DangerText))
	}

	parts = append(parts,
		bg.Render("Stations:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d", len(snap.Stations)), styles.Text),
	)

	if st, ok := snap.CurrentStation(); ok && snap.IsPlayingAt(snap.Current) && m.width >= LayoutCompactWidth {
		avail := m.width - 40
		parts = append(parts, bg.Render(truncate(displayName(st.Name), avail), styles.Playing))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
}

// renderCommandBar renders the key hints for normal mode.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	bindings := m.keys.ShortHelp()
	if m.width > 0 && m.width < LayoutCompactWidth {
		bindings = []key.Binding{m.keys.Help, m.keys.Quit}
	}

	segments := make([]string, 0, len(bindings)+1)
	for _, b := range bindings {
		h := b.Help()
		segments = append(segments,
			bg.Render(h.Key, styles.AccentText)+colon+bg.Render(h.Desc, styles.MutedText))
	}

	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}

// renderStatus renders the bottom line: the last error, or the selected
// station's url.
func (m Model) renderStatus(snap state.Snapshot) string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	width := m.width - 2

	var content string
	switch {
	case snap.LastError != nil:
		content = bg.Render(truncate(snap.LastError.Error(), width), styles.DangerText)
	case !snap.BackendAvailable:
		content = bg.Render(truncate("mpv is not running; stations can be edited but not played", width), styles.WarningText)
	case snap.HasSelection && snap.Selected < len(snap.Stations):
		content = bg.Render(truncateMiddle(snap.Stations[snap.Selected].URL, width), styles.FaintText)
	}

	return styles.Footer.Width(m.width).Render(content)
}
