package station

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/rdo-radio/rdo/internal/logging"
)

// Station is a named stream URL. Its identity is its position in a Store.
type Station struct {
	Name string
	URL  string
}

// ErrIndexOutOfRange is returned when a mutation addresses a missing slot.
var ErrIndexOutOfRange = errors.New("station index out of range")

var header = []string{"name", "url"}

// Store is the ordered station list, written through to a CSV file after
// every mutation. It is not safe for concurrent use; the state machine owns it.
type Store struct {
	path     string
	stations []Station
}

// NewStore returns a store backed by path holding a copy of stations. Nothing
// is written until the first mutation.
func NewStore(path string, stations []Station) *Store {
	return &Store{path: path, stations: clone(stations)}
}

// Load reads the station list at path. A missing, unreadable or malformed file
// yields an empty store bound to the same path.
func Load(path string) *Store {
	stations, err := readFile(path)
	if err != nil {
		logging.Debug("station list unavailable, starting empty",
			zap.String("path", path),
			zap.Error(err),
		)
		return NewStore(path, nil)
	}
	return &Store{path: path, stations: stations}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of stations.
func (s *Store) Len() int {
	return len(s.stations)
}

// At returns the station at index i.
func (s *Store) At(i int) (Station, bool) {
	if i < 0 || i >= len(s.stations) {
		return Station{}, false
	}
	return s.stations[i], true
}

// Stations returns a copy of the list.
func (s *Store) Stations() []Station {
	return clone(s.stations)
}

// Append adds st at the end of the list and persists.
func (s *Store) Append(st Station) error {
	s.stations = append(s.stations, st)
	return s.Persist()
}

// Replace overwrites the station at index i and persists.
func (s *Store) Replace(i int, st Station) error {
	if !s.valid(i) {
		return fmt.Errorf("replace %d of %d: %w", i, len(s.stations), ErrIndexOutOfRange)
	}
	s.stations[i] = st
	return s.Persist()
}

// Remove deletes the station at index i and persists.
func (s *Store) Remove(i int) error {
	if !s.valid(i) {
		return fmt.Errorf("remove %d of %d: %w", i, len(s.stations), ErrIndexOutOfRange)
	}
	s.stations = append(s.stations[:i], s.stations[i+1:]...)
	return s.Persist()
}

// Swap exchanges the stations at i and j and persists.
func (s *Store) Swap(i, j int) error {
	if !s.valid(i) || !s.valid(j) {
		return fmt.Errorf("swap %d and %d of %d: %w", i, j, len(s.stations), ErrIndexOutOfRange)
	}
	s.stations[i], s.stations[j] = s.stations[j], s.stations[i]
	return s.Persist()
}

// Persist writes the whole list to the backing file, creating the parent
// directory when needed. The in-memory list is kept even when writing fails.
func (s *Store) Persist() error {
	if strings.TrimSpace(s.path) == "" {
		return fmt.Errorf("persist stations: path is empty")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create stations dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".stations-*.csv")
	if err != nil {
		return fmt.Errorf("create temp stations file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if err := Encode(tmp, s.stations); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write stations: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp stations file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("replace stations file: %w", err)
	}
	return nil
}

func (s *Store) valid(i int) bool {
	return i >= 0 && i < len(s.stations)
}

func readFile(path string) ([]Station, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open stations: %w", err)
	}
	defer func() { _ = file.Close() }()
	return Decode(file)
}

// Encode writes stations as CSV with a name,url header row.
func Encode(w io.Writer, stations []Station) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, st := range stations {
		if err := writer.Write([]string{st.Name, st.URL}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// Decode parses CSV written by Encode. Columns are matched by header name, so
// a file with url,name order reads the same. Any malformed row fails the
// whole decode.
func Decode(r io.Reader) ([]Station, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 0

	head, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("missing header row")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	nameCol, urlCol := -1, -1
	for i, col := range head {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(col, "\ufeff"))) {
		case "name":
			nameCol = i
		case "url":
			urlCol = i
		}
	}
	if nameCol < 0 || urlCol < 0 {
		return nil, fmt.Errorf("header %q lacks name and url columns", strings.Join(head, ","))
	}

	var stations []Station
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		stations = append(stations, Station{Name: record[nameCol], URL: record[urlCol]})
	}
	return stations, nil
}

func clone(stations []Station) []Station {
	if len(stations) == 0 {
		return nil
	}
	dup := make([]Station, len(stations))
	copy(dup, stations)
	return dup
}
