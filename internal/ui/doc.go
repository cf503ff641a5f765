// Package ui provides the terminal user interface for rdo.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program wrapped around a state.Machine. The model
// holds no station or playback state of its own: it forwards keys to the
// machine, asks it for a Snapshot on every View, and keeps only what is
// purely visual (theme, terminal size, scroll offset, help overlay).
//
// # Package Structure
//
//   - app.go: Model, Update loop, tick scheduling and Run
//   - header.go: top bar, key hints and the status line
//   - stations.go: station list and the now playing panel
//   - dialog.go: add/edit and delete dialogs
//   - help.go: help overlay generated from the key map
//   - editor.go: textinput-backed state.FieldEditor
//   - theme.go, style_helpers.go: colors and Lipgloss styles
//
// # Event Flow
//
//  1. Run starts the program; Init schedules the first tick
//  2. tickMsg: Machine.Sync folds one playback event, the next tick is scheduled
//  3. tea.KeyMsg: ? and T are handled here in normal mode, everything else
//     goes to Machine.HandleKey
//  4. When the machine reaches its exit mode the program quits
//
// # Usage Example
//
//	machine := state.NewMachine(store, player, state.Options{Editor: ui.NewEditor()})
//	err := ui.Run(ui.Options{
//		Context:     ctx,
//		Machine:     machine,
//		ThemeName:   sess.Theme,
//		SessionPath: cfg.SessionPath,
//		Tick:        cfg.Tick,
//	})
//
// # Key Bindings
//
//   - j/k or arrows: Move the selection
//   - enter: Play the selected station
//   - space: Stop
//   - n, e, d: New, edit, delete station
//   - K/J: Move the selected station up/down
//   - T: Cycle theme (saved in the session file)
//   - ?: Help
//   - q or Ctrl+C: Quit
package ui
