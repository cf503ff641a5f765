package station

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestLoad_MissingFileYieldsEmptyStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rdo", "stations.csv")

	s := Load(path)
	if s.Len() != 0 {
		t.Fatalf("Len = %d, want 0", s.Len())
	}
	if s.Path() != path {
		t.Fatalf("Path = %q, want %q", s.Path(), path)
	}
}

func TestLoad_MalformedFileYieldsEmptyStore(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"missing column": "name\nA\n",
		"ragged row":     "name,url\nA,u1\nB\n",
		"bad quoting":    "name,url\n\"A,u1\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "stations.csv")
			writeFile(t, path, content)

			if got := Load(path).Len(); got != 0 {
				t.Fatalf("Len = %d, want 0", got)
			}
		})
	}
}

func TestLoad_MatchesColumnsByHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stations.csv")
	writeFile(t, path, "url,name\nhttp://a,A\n")

	got := Load(path).Stations()
	want := []Station{{Name: "A", URL: "http://a"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Stations = %#v, want %#v", got, want)
	}
}

func TestPersist_RoundTripIsFixedPoint(t *testing.T) {
	cases := map[string][]Station{
		"empty": nil,
		"plain": {{Name: "A", URL: "u1"}, {Name: "B", URL: "u2"}},
		"delimiters": {
			{Name: "Jazz, Blues & More", URL: "http://x/?a=1,b=2"},
			{Name: `Say "hi"`, URL: "http://y"},
			{Name: "multi\nline", URL: ""},
		},
		"duplicates": {{Name: "A", URL: "u"}, {Name: "A", URL: "u"}},
	}
	for name, stations := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "rdo", "stations.csv")
			if err := NewStore(path, stations).Persist(); err != nil {
				t.Fatalf("Persist returned error: %v", err)
			}
			first, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile: %v", err)
			}

			loaded := Load(path)
			if !reflect.DeepEqual(loaded.Stations(), stations) {
				t.Fatalf("loaded = %#v, want %#v", loaded.Stations(), stations)
			}
			if err := loaded.Persist(); err != nil {
				t.Fatalf("second Persist returned error: %v", err)
			}
			second, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile: %v", err)
			}
			if !bytes.Equal(first, second) {
				t.Fatalf("persist(load()) changed the file:\nfirst:  %q\nsecond: %q", first, second)
			}
		})
	}
}

func TestEncode_WritesHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, []Station{{Name: "A, B", URL: "u"}}); err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	want := "name,url\n\"A, B\",u\n"
	if buf.String() != want {
		t.Fatalf("Encode = %q, want %q", buf.String(), want)
	}
}

func TestMutations_PersistEachChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stations.csv")
	s := NewStore(path, nil)

	steps := []struct {
		name string
		do   func() error
		want []Station
	}{
		{"append A", func() error { return s.Append(Station{"A", "u1"}) }, []Station{{"A", "u1"}}},
		{"append B", func() error { return s.Append(Station{"B", "u2"}) }, []Station{{"A", "u1"}, {"B", "u2"}}},
		{"swap", func() error { return s.Swap(0, 1) }, []Station{{"B", "u2"}, {"A", "u1"}}},
		{"replace", func() error { return s.Replace(1, Station{"C", "u3"}) }, []Station{{"B", "u2"}, {"C", "u3"}}},
		{"remove", func() error { return s.Remove(0) }, []Station{{"C", "u3"}}},
	}
	for _, step := range steps {
		if err := step.do(); err != nil {
			t.Fatalf("%s returned error: %v", step.name, err)
		}
		if got := s.Stations(); !reflect.DeepEqual(got, step.want) {
			t.Fatalf("%s: memory = %#v, want %#v", step.name, got, step.want)
		}
		if got := Load(path).Stations(); !reflect.DeepEqual(got, step.want) {
			t.Fatalf("%s: disk = %#v, want %#v", step.name, got, step.want)
		}
	}
}

func TestMutations_OutOfRangeIsRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stations.csv")
	s := NewStore(path, []Station{{"A", "u1"}})

	for name, err := range map[string]error{
		"replace": s.Replace(3, Station{"X", "x"}),
		"remove":  s.Remove(-1),
		"swap":    s.Swap(0, 1),
	} {
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("%s error = %v, want ErrIndexOutOfRange", name, err)
		}
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("rejected mutations should not write, stat err = %v", err)
	}
	if got := s.Stations(); !reflect.DeepEqual(got, []Station{{"A", "u1"}}) {
		t.Fatalf("Stations = %#v, want unchanged", got)
	}
}

func TestPersist_FailureKeepsMemoryState(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	writeFile(t, blocker, "not a directory")

	s := NewStore(filepath.Join(blocker, "stations.csv"), nil)
	if err := s.Append(Station{"A", "u1"}); err == nil {
		t.Fatal("Append returned nil error, want persist failure")
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1 (no rollback on persist failure)", s.Len())
	}
}

func TestStations_ReturnsCopy(t *testing.T) {
	s := NewStore("", []Station{{"A", "u1"}})
	got := s.Stations()
	got[0].Name = "mutated"
	if st, _ := s.At(0); st.Name != "A" {
		t.Fatalf("Stations should return a copy; store name = %q", st.Name)
	}
}
