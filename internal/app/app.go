package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/rdo-radio/rdo/internal/config"
	"github.com/rdo-radio/rdo/internal/logging"
	"github.com/rdo-radio/rdo/internal/mpv"
	"github.com/rdo-radio/rdo/internal/playback"
	"github.com/rdo-radio/rdo/internal/session"
	"github.com/rdo-radio/rdo/internal/state"
	"github.com/rdo-radio/rdo/internal/station"
	"github.com/rdo-radio/rdo/internal/ui"
)

// Options configure the rdo application.
type Options struct {
	Config config.Options
}

// Run boots the rdo TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Resolve(opts.Config)
	if err != nil {
		return fmt.Errorf("resolve config: %w", err)
	}

	if err := logging.Initialize(cfg.LogLevel, cfg.LogPath); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logging.Sync()

	store := station.Load(cfg.StationsPath)
	sess := session.Load(cfg.SessionPath)
	logging.Info("starting rdo",
		zap.String("stations", cfg.StationsPath),
		zap.Int("count", store.Len()),
		zap.Duration("tick", cfg.Tick),
	)

	player := startPlayer(ctx, cfg)
	defer func() {
		if err := player.Close(); err != nil {
			logging.Warn("close player failed", zap.Error(err))
		}
	}()

	machine := state.NewMachine(store, player, state.Options{
		Editor: ui.NewEditor(),
		OnPlay: rememberStation(cfg.SessionPath),
	})
	if last := sess.LastStation; !last.IsZero() {
		machine.Select(station.Station{Name: last.Name, URL: last.URL})
	}

	return ui.Run(ui.Options{
		Context:     ctx,
		Machine:     machine,
		ThemeName:   sess.Theme,
		SessionPath: cfg.SessionPath,
		Tick:        cfg.Tick,
	})
}

// startPlayer launches mpv. Without it the player is inert and the station
// list can still be browsed and edited.
func startPlayer(ctx context.Context, cfg config.Config) *playback.Player {
	client, err := mpv.Launch(ctx, mpv.Options{
		Binary:     cfg.MPVPath,
		SocketPath: cfg.SocketPath,
	})
	if err != nil {
		logging.Warn("mpv unavailable, playback disabled", zap.Error(err))
		return playback.NewPlayer(nil)
	}
	return playback.NewPlayer(client)
}

// rememberStation returns the play callback that records the last station
// in the session file.
func rememberStation(path string) func(station.Station) {
	return func(st station.Station) {
		err := session.Update(path, func(s *session.State) {
			s.LastStation = session.Station{Name: st.Name, URL: st.URL}
		})
		if err != nil {
			logging.Warn("save last station failed", zap.Error(err))
		}
	}
}
