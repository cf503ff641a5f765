// Rdo is a terminal radio station player.
//
// It keeps a personal list of streaming stations in a CSV file, plays them
// through mpv and lets the list be edited in place.
//
// Usage:
//
//	rdo [command] [flags]
//
// Running without a command starts the TUI.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rdo-radio/rdo/internal/app"
	"github.com/rdo-radio/rdo/internal/config"
	"github.com/rdo-radio/rdo/internal/logging"
	"github.com/rdo-radio/rdo/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "rdo: %v\n", err)
		os.Exit(1)
	}
}

var (
	configDir    string
	stationsPath string
	mpvPath      string
	logLevel     string
	tick         time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "rdo",
	Short: "Terminal radio station player",
	Long: `Browse, play and edit a personal list of streaming radio stations.

Stations are kept in stations.csv in the rdo config directory and played
through mpv. Without mpv the list can still be edited.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()
		return app.Run(ctx, options())
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the station list",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.List(cmd.OutOrStdout(), options())
	},
}

var (
	logLines    int
	logMinLevel string
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Print the end of the rdo log file",
	Long: `Print the last lines of the rdo log file.

The log file is only written when rdo runs with --log-level.`,
	Example: `  # Last 50 lines
  rdo logs

  # Only warnings and errors
  rdo logs --level warn -n 200`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Logs(cmd.OutOrStdout(), options(), logLines, logMinLevel)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "rdo %s\n", version.Full())
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configDir, "config-dir", "", "directory for stations, session and log files (default: user config dir/rdo)")
	flags.StringVar(&stationsPath, "stations", "", "station list CSV file (default: <config-dir>/stations.csv)")

	rootCmd.Flags().StringVar(&mpvPath, "mpv", "mpv", "mpv binary name or path")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "write a log file at this level ("+strings.Join(logging.Levels(), ", ")+")")
	rootCmd.Flags().DurationVar(&tick, "tick", config.DefaultTick, fmt.Sprintf("playback status poll interval (%v to %v)", config.MinTick, config.MaxTick))

	logsCmd.Flags().IntVarP(&logLines, "lines", "n", 50, "number of lines to print (0 for all)")
	logsCmd.Flags().StringVar(&logMinLevel, "level", "", "minimum level to print")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(versionCmd)
}

func options() app.Options {
	return app.Options{Config: config.Options{
		Dir:          configDir,
		StationsPath: stationsPath,
		MPVPath:      mpvPath,
		LogLevel:     logLevel,
		Tick:         tick,
	}}
}
