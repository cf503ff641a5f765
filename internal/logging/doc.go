// Package logging provides the process-wide zap logger for rdo.
//
// Logging is silent unless a level is given on the command line. When enabled,
// entries go to a file next to the station list because the terminal is owned
// by the TUI for the whole session.
//
// Usage:
//
//	if err := logging.Initialize("debug", cfg.LogPath); err != nil {
//		return err
//	}
//	defer logging.Sync()
//
//	logging.Warn("persist failed", zap.Error(err))
//
// Tail reads the end of a log file back, optionally filtered by level; the
// `rdo logs` command uses it.
package logging
