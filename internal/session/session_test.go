package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "session.toml"))
	if s != Default() {
		t.Fatalf("Load = %#v, want %#v", s, Default())
	}
	if !s.LastStation.IsZero() {
		t.Fatal("LastStation should be empty on a first run")
	}
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.toml")
	content := "theme = \"Slate\"\n\n[last_station]\nname = \"Radio, One\"\nurl = \"http://one\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s := Load(path)
	if s.Theme != "Slate" {
		t.Fatalf("Theme = %q, want Slate", s.Theme)
	}
	want := Station{Name: "Radio, One", URL: "http://one"}
	if s.LastStation != want {
		t.Fatalf("LastStation = %#v, want %#v", s.LastStation, want)
	}
}

func TestLoad_InvalidFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.toml")
	if err := os.WriteFile(path, []byte("theme = ["), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if s := Load(path); s != Default() {
		t.Fatalf("Load = %#v, want defaults", s)
	}
}

func TestLoad_BlankThemeUsesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.toml")
	if err := os.WriteFile(path, []byte("theme = \"   \"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if s := Load(path); s.Theme != DefaultTheme {
		t.Fatalf("Theme = %q, want %q", s.Theme, DefaultTheme)
	}
}

func TestSave_CreatesDirectoriesAndRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "rdo", "session.toml")
	want := State{Theme: "Kanagawa", LastStation: Station{Name: "B", URL: "u2"}}

	if err := Save(path, want); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if got := Load(path); got != want {
		t.Fatalf("Load = %#v, want %#v", got, want)
	}
}

func TestSave_EmptyPathErrors(t *testing.T) {
	if err := Save("  ", Default()); err == nil {
		t.Fatal("Save returned nil error for an empty path")
	}
}

func TestUpdate_KeepsOtherFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.toml")
	if err := Save(path, State{Theme: "Slate"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	err := Update(path, func(s *State) {
		s.LastStation = Station{Name: "A", URL: "u1"}
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	got := Load(path)
	if got.Theme != "Slate" || got.LastStation.Name != "A" {
		t.Fatalf("Load = %#v, want theme kept and station set", got)
	}
}
