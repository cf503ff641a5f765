package ui

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// truncate shortens value to fit limit terminal cells, adding an ellipsis
// when it had to cut.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return ""
	}
	if runewidth.StringWidth(value) <= limit {
		return value
	}
	if limit == 1 {
		return runewidth.Truncate(value, limit, "")
	}
	return runewidth.Truncate(value, limit, ellipsis)
}

// truncateMiddle keeps both ends of value, which suits URLs whose host and
// last path segment are the useful parts.
func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return ""
	}
	if runewidth.StringWidth(value) <= limit {
		return value
	}
	if limit <= 3 {
		return truncate(value, limit)
	}

	keep := limit - runewidth.StringWidth(ellipsis)
	head := keep - keep/2
	tail := keep / 2

	prefix := runewidth.Truncate(value, head, "")
	runes := []rune(value)
	suffix := ""
	for i := len(runes) - 1; i >= 0; i-- {
		candidate := string(runes[i:])
		if runewidth.StringWidth(candidate) > tail {
			break
		}
		suffix = candidate
	}
	return prefix + ellipsis + suffix
}

// padRight pads s with spaces to width terminal cells.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.FillRight(s, width)
}

// displayName is the label shown for a station in lists and dialogs.
func displayName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "(unnamed)"
	}
	return name
}

// capitalize upper-cases the first letter of a key name.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
