// Package playbacktest provides an in-memory playback.Backend for tests.
package playbacktest

import "github.com/rdo-radio/rdo/internal/playback"

// Backend records commands and replays queued events.
type Backend struct {
	Loaded  []string
	Stops   int
	Closed  bool
	LoadErr error
	StopErr error

	events []playback.Event
}

var _ playback.Backend = (*Backend)(nil)

// Emit queues events for Poll, oldest first.
func (b *Backend) Emit(events ...playback.Event) {
	b.events = append(b.events, events...)
}

// Pending returns how many queued events have not been polled yet.
func (b *Backend) Pending() int {
	return len(b.events)
}

func (b *Backend) Load(url string) error {
	if b.LoadErr != nil {
		return b.LoadErr
	}
	b.Loaded = append(b.Loaded, url)
	return nil
}

func (b *Backend) Stop() error {
	if b.StopErr != nil {
		return b.StopErr
	}
	b.Stops++
	return nil
}

func (b *Backend) Poll() (playback.Event, bool) {
	if len(b.events) == 0 {
		return playback.Event{}, false
	}
	ev := b.events[0]
	b.events = b.events[1:]
	return ev, true
}

func (b *Backend) Close() error {
	b.Closed = true
	return nil
}
