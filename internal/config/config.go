package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config holds every path and setting rdo resolves at startup.
type Config struct {
	Dir          string
	StationsPath string
	LogPath      string
	LogLevel     string
	SessionPath  string
	MPVPath      string
	SocketPath   string
	Tick         time.Duration
}

// Options are the command-line overrides. Zero values select defaults.
type Options struct {
	Dir          string // replaces the per-user config dir
	StationsPath string
	MPVPath      string
	LogLevel     string
	Tick         time.Duration
}

const (
	appDir         = "rdo"
	stationsFile   = "stations.csv"
	logFile        = "rdo.log"
	sessionFile    = "session.toml"
	defaultMPVPath = "mpv"
	socketNameFmt  = "rdo-%d.sock"
)

// Tick bounds for the playback synchronization loop.
const (
	DefaultTick = 50 * time.Millisecond
	MinTick     = 10 * time.Millisecond
	MaxTick     = 250 * time.Millisecond
)

// Resolve builds the Config for opts. It fails only when no config directory
// can be determined.
func Resolve(opts Options) (Config, error) {
	dir, err := resolveDir(opts.Dir)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Dir:          dir,
		StationsPath: filepath.Join(dir, stationsFile),
		LogPath:      filepath.Join(dir, logFile),
		LogLevel:     strings.ToLower(strings.TrimSpace(opts.LogLevel)),
		SessionPath:  filepath.Join(dir, sessionFile),
		MPVPath:      strings.TrimSpace(opts.MPVPath),
		SocketPath:   filepath.Join(os.TempDir(), fmt.Sprintf(socketNameFmt, os.Getpid())),
		Tick:         ClampTick(opts.Tick),
	}

	if strings.TrimSpace(opts.StationsPath) != "" {
		path, err := expandPath(opts.StationsPath)
		if err != nil {
			return Config{}, fmt.Errorf("stations path: %w", err)
		}
		cfg.StationsPath = path
	}
	if cfg.MPVPath == "" {
		cfg.MPVPath = defaultMPVPath
	} else if strings.ContainsRune(cfg.MPVPath, filepath.Separator) || strings.HasPrefix(cfg.MPVPath, "~") {
		cfg.MPVPath = mustExpand(cfg.MPVPath)
	}

	return cfg, nil
}

// ClampTick maps zero to DefaultTick and keeps d within [MinTick, MaxTick].
func ClampTick(d time.Duration) time.Duration {
	switch {
	case d <= 0:
		return DefaultTick
	case d < MinTick:
		return MinTick
	case d > MaxTick:
		return MaxTick
	default:
		return d
	}
}

func resolveDir(dir string) (string, error) {
	if strings.TrimSpace(dir) != "" {
		return expandPath(dir)
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(base, appDir), nil
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
