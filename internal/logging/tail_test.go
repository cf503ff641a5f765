package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeLog(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rdo.log")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestTail_LastLines(t *testing.T) {
	var lines []string
	for i := 1; i <= 10; i++ {
		lines = append(lines, fmt.Sprintf("line %d", i))
	}
	path := writeLog(t, lines...)

	cases := []struct {
		name string
		n    int
		want []string
	}{
		{"all", 0, lines},
		{"negative", -1, lines},
		{"partial", 3, lines[7:]},
		{"more than file", 50, lines},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Tail(path, tc.n, "")
			if err != nil {
				t.Fatalf("Tail returned error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Tail = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTail_FiltersByLevel(t *testing.T) {
	path := writeLog(t,
		"2026-01-01T00:00:00.000Z\tDEBUG\tstate/machine.go:1\tplayback state changed",
		"2026-01-01T00:00:01.000Z\tINFO\tstate/machine.go:2\tplaying station",
		"2026-01-01T00:00:02.000Z\tWARN\tstate/machine.go:3\tplay failed",
		"\tcontinuation without level",
	)

	got, err := Tail(path, 0, "info")
	if err != nil {
		t.Fatalf("Tail returned error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Tail = %v, want info, warn and the unparsed line", got)
	}
	if strings.Contains(got[0], "DEBUG") {
		t.Fatalf("debug line kept: %q", got[0])
	}

	if _, err := Tail(path, 0, "loud"); err == nil {
		t.Fatal("Tail accepted an unknown level")
	}
}

func TestTail_MissingFile(t *testing.T) {
	got, err := Tail(filepath.Join(t.TempDir(), "missing.log"), 10, "")
	if err != nil || got != nil {
		t.Fatalf("Tail = (%v, %v), want (nil, nil)", got, err)
	}
}
