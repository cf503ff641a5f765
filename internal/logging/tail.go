package logging

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Tail returns the last n lines of the log file at path whose level is at
// least minLevel. n <= 0 returns every matching line and an empty minLevel
// matches all lines. A missing file yields no lines.
func Tail(path string, n int, minLevel string) ([]string, error) {
	keep := func(string) bool { return true }
	if strings.TrimSpace(minLevel) != "" {
		threshold, err := parseLevel(strings.ToLower(strings.TrimSpace(minLevel)))
		if err != nil {
			return nil, err
		}
		keep = func(line string) bool {
			lvl, ok := lineLevel(line)
			return !ok || lvl >= threshold
		}
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !keep(line) {
			continue
		}
		lines = append(lines, line)
		if n > 0 && len(lines) > 2*n {
			lines = append(lines[:0], lines[len(lines)-n:]...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	if n > 0 && len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines, nil
}

// lineLevel extracts the level column written by the console encoder.
func lineLevel(line string) (zapcore.Level, bool) {
	fields := strings.SplitN(line, "\t", 3)
	if len(fields) < 2 {
		return 0, false
	}
	lvl, err := parseLevel(strings.ToLower(fields[1]))
	if err != nil {
		return 0, false
	}
	return lvl, true
}
