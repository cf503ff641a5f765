// Package app wires rdo together: it resolves paths, sets up logging, loads
// the station list and the session, starts mpv and hands everything to the
// UI.
//
// A missing or broken mpv is not fatal. The player is then inert, playback
// commands report an error in the status line, and the station list can still
// be browsed and edited.
package app
