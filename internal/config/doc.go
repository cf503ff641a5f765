// Package config resolves where rdo keeps its files and how fast it ticks.
//
// rdo has no configuration file. Everything is derived from the per-user
// config directory (os.UserConfigDir, usually ~/.config) and a handful of
// command-line overrides:
//
//	<dir>/rdo/stations.csv   station list
//	<dir>/rdo/session.toml   theme and last played station
//	<dir>/rdo/rdo.log        log file, written only when a log level is set
//	$TMPDIR/rdo-<pid>.sock   mpv IPC socket
//
// Tilde paths are expanded and relative paths made absolute. The tick
// interval defaults to 50ms and is clamped to [10ms, 250ms].
package config
