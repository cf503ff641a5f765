// Package playback is the adapter between rdo and an external media backend.
//
// # Overview
//
// The Player owns the single backend connection and the last observed State.
// The rest of the program talks to it through three operations:
//
//   - Play(url): load a stream; the state becomes Buffering on acceptance
//   - Stop(): stop playback; the state becomes Stopped on acceptance
//   - PollStatus(): fold at most one pending backend event, never blocking
//
// # Event Mapping
//
// Backends reduce their native events to four kinds before handing them over:
//
//	EventStarted  start / restart        → Playing
//	EventStopped  end of stream/shutdown → Stopped
//	EventTitle    metadata changed       → Title updated, tag unchanged
//	EventUnknown  anything else          → ignored
//
// # Degraded Mode
//
// A Player built with a nil Backend is inert. Commands return ErrNoBackend and
// polls report nothing, so a missing media player never takes the UI down.
package playback
