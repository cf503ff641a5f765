// Package state implements the rdo application state machine.
//
// # Overview
//
// The Machine is the single authority over the station list, the selection
// and the station last sent to the player. The UI hands it every key and asks
// it for a Snapshot to draw; it never mutates anything itself.
//
// # Modes
//
//	Normal ──e──> Edit(i) ──enter/esc──> Normal
//	   │ ──n──> Add     ──enter/esc──> Normal
//	   │ ──d──> Delete(i) ──enter/esc──> Normal
//	   └──q──> Exit (terminal)
//
// Edit and Delete capture the selected index when they are entered. If that
// index no longer exists when the dialog is confirmed, the confirm is a no-op
// reported through LastError; it never panics.
//
// # Normal Mode Keys
//
//   - k/up, j/down: move the selection, clamped at both ends
//   - enter: play the selected station
//   - space: stop
//   - K/J: move the selected station up/down (the selection follows it)
//   - e, n, d: open the edit, add or delete dialog
//   - q, ctrl+c: quit
//
// Inside the add/edit dialog, tab switches between the name and url fields
// and every other key goes to the focused field through a FieldEditor.
//
// # Index Tracking
//
// Selection and the playing index are kept pointing at the same logical
// station across structural changes:
//
//	append      neither changes (an empty list gains a selection)
//	remove(i)   indices above i shift down; a removed selection moves to the
//	            next row, a removed playing station stops playback
//	swap(i, j)  both follow their station to its new slot
//
// # Playback Synchronization
//
// Sync is called once per UI tick. It folds at most one backend event into
// the player's state and never blocks; commands issued from HandleKey are
// confirmed on a later tick.
//
// # Errors
//
// Nothing here is fatal. Persist and backend failures are logged, kept as
// LastError for the status line, and the in-memory state carries on.
package state
