package app

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rdo-radio/rdo/internal/config"
	"github.com/rdo-radio/rdo/internal/logging"
	"github.com/rdo-radio/rdo/internal/station"
)

// List writes the station list as a table to w.
func List(w io.Writer, opts Options) error {
	cfg, err := config.Resolve(opts.Config)
	if err != nil {
		return fmt.Errorf("resolve config: %w", err)
	}

	store := station.Load(cfg.StationsPath)
	if store.Len() == 0 {
		_, err := fmt.Fprintf(w, "No stations in %s\n", cfg.StationsPath)
		return err
	}

	_, err = fmt.Fprintln(w, renderTable(store.Stations()))
	return err
}

func renderTable(stations []station.Station) string {
	rows := make([][]string, 0, len(stations))
	for i, st := range stations {
		rows = append(rows, []string{strconv.Itoa(i + 1), st.Name, st.URL})
	}

	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "NAME", "URL").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		Render()
}

// Logs writes the last n lines of the rdo log file at or above minLevel to w.
func Logs(w io.Writer, opts Options, n int, minLevel string) error {
	cfg, err := config.Resolve(opts.Config)
	if err != nil {
		return fmt.Errorf("resolve config: %w", err)
	}

	lines, err := logging.Tail(cfg.LogPath, n, minLevel)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		_, err := fmt.Fprintf(w, "No log entries in %s (start rdo with --log-level to write one)\n", cfg.LogPath)
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
