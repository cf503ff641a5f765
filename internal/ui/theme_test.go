package ui

import (
	"testing"

	"github.com/rdo-radio/rdo/internal/playback"
)

func TestGetTheme_FallsBackToNightfox(t *testing.T) {
	if got := GetTheme("Slate").Name; got != "Slate" {
		t.Fatalf("GetTheme(Slate).Name = %q", got)
	}
	if got := GetTheme("nope").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(unknown).Name = %q, want Nightfox", got)
	}
}

func TestNextTheme_Cycles(t *testing.T) {
	name := ThemeNames()[0]
	seen := map[string]bool{}
	for range ThemeNames() {
		seen[name] = true
		name = NextTheme(name)
	}
	if name != ThemeNames()[0] {
		t.Fatalf("cycle ended at %q, want %q", name, ThemeNames()[0])
	}
	if len(seen) != len(ThemeNames()) {
		t.Fatalf("cycle visited %d themes, want %d", len(seen), len(ThemeNames()))
	}
	if got := NextTheme("unknown"); got != ThemeNames()[0] {
		t.Fatalf("NextTheme(unknown) = %q, want %q", got, ThemeNames()[0])
	}
}

func TestThemes_DefineEveryColor(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		colors := []string{
			th.Background, th.Surface, th.SurfaceAlt, th.SelectionBg, th.SelectionText,
			th.Border, th.BorderFocus, th.Text, th.Muted, th.Faint,
			th.Accent, th.Success, th.Warning, th.Danger, th.Info,
		}
		for i, c := range colors {
			if c == "" {
				t.Fatalf("theme %s: color %d is empty", name, i)
			}
		}
	}
}

func TestStyles_PlaybackBadgeRenders(t *testing.T) {
	styles := GetTheme("Nightfox").Styles()
	for _, status := range []playback.Status{playback.Stopped, playback.Buffering, playback.Playing} {
		if got := styles.PlaybackBadge(status).Render(status.String()); got == "" {
			t.Fatalf("PlaybackBadge(%v) rendered nothing", status)
		}
	}
}
