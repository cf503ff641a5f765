package state

import (
	"github.com/rdo-radio/rdo/internal/playback"
	"github.com/rdo-radio/rdo/internal/station"
)

// Snapshot is everything the UI needs to draw one frame.
type Snapshot struct {
	Stations         []station.Station
	Selected         int
	HasSelection     bool
	Current          int
	HasCurrent       bool
	Playback         playback.State
	BackendAvailable bool
	Mode             Mode
	Draft            Draft
	LastError        error
}

// Snapshot returns a copy of the current state.
func (m *Machine) Snapshot() Snapshot {
	m.revalidate()
	selected, hasSelection := m.sel.Index()
	current, hasCurrent := m.CurrentStation()
	draft, _ := m.Draft()
	return Snapshot{
		Stations:         m.store.Stations(),
		Selected:         selected,
		HasSelection:     hasSelection,
		Current:          current,
		HasCurrent:       hasCurrent,
		Playback:         m.player.State(),
		BackendAvailable: m.player.Available(),
		Mode:             m.mode,
		Draft:            draft,
		LastError:        m.lastErr,
	}
}

// IsPlaying reports whether the backend confirmed a running stream.
func (s Snapshot) IsPlaying() bool {
	return s.Playback.Status == playback.Playing
}

// IsPlayingAt reports whether row i is the station currently playing.
func (s Snapshot) IsPlayingAt(i int) bool {
	return s.HasCurrent && s.Current == i && s.Playback.Status != playback.Stopped
}

// CurrentStation returns the station last sent to the player.
func (s Snapshot) CurrentStation() (station.Station, bool) {
	if !s.HasCurrent || s.Current < 0 || s.Current >= len(s.Stations) {
		return station.Station{}, false
	}
	return s.Stations[s.Current], true
}

// Target returns the station an edit or delete dialog acts on.
func (s Snapshot) Target() (station.Station, bool) {
	if s.Mode.Kind != ModeEdit && s.Mode.Kind != ModeDelete {
		return station.Station{}, false
	}
	i := s.Mode.Index
	if i < 0 || i >= len(s.Stations) {
		return station.Station{}, false
	}
	return s.Stations[i], true
}
