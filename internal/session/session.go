// Package session persists UI state between runs: the chosen theme and the
// last station that was played. The file lives next to the station list as
// session.toml and is only ever written by rdo itself.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Station mirrors station.Station so the file format does not depend on the
// store package.
type Station struct {
	Name string `toml:"name"`
	URL  string `toml:"url"`
}

// IsZero reports whether no station was recorded.
func (s Station) IsZero() bool {
	return s.Name == "" && s.URL == ""
}

// State is the content of the session file.
type State struct {
	Theme       string  `toml:"theme"`
	LastStation Station `toml:"last_station"`
}

// DefaultTheme is used when the file is missing or names no theme.
const DefaultTheme = "Nightfox"

// Default returns the state used for a first run.
func Default() State {
	return State{Theme: DefaultTheme}
}

// Load reads the session at path, falling back to Default if it is missing
// or unreadable.
func Load(path string) State {
	state := Default()
	if strings.TrimSpace(path) == "" {
		return state
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return state
	}
	if err := toml.Unmarshal(bytes, &state); err != nil {
		return Default()
	}

	state.Theme = strings.TrimSpace(state.Theme)
	if state.Theme == "" {
		state.Theme = DefaultTheme
	}
	return state
}

// Save writes s to path, creating directories as needed.
func Save(path string, s State) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("session path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	bytes, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := os.WriteFile(path, bytes, 0o644); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Update loads the session at path, applies fn and saves the result.
func Update(path string, fn func(*State)) error {
	s := Load(path)
	fn(&s)
	return Save(path, s)
}
