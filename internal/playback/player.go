package playback

import (
	"errors"
	"fmt"
)

// Status is the playback tag.
type Status int

const (
	Stopped Status = iota
	Buffering
	Playing
)

func (s Status) String() string {
	switch s {
	case Buffering:
		return "buffering"
	case Playing:
		return "playing"
	default:
		return "stopped"
	}
}

// State is the last observed playback state. Title is tracked independently
// of the tag: title changes never move Status.
type State struct {
	Status Status
	Title  string
}

// HasTitle reports whether the backend has announced a title.
func (s State) HasTitle() bool {
	return s.Title != ""
}

// EventKind classifies backend events into the outcomes the player acts on.
type EventKind int

const (
	EventUnknown EventKind = iota
	EventStarted
	EventStopped
	EventTitle
)

// Event is a backend notification, already reduced to a logical kind.
type Event struct {
	Kind  EventKind
	Title string
}

// Backend is the media process the player commands. Poll must not block.
type Backend interface {
	Load(url string) error
	Stop() error
	Poll() (Event, bool)
	Close() error
}

// ErrNoBackend is returned by commands on an inert player.
var ErrNoBackend = errors.New("playback backend unavailable")

// Player owns the backend connection and the last observed State.
type Player struct {
	backend Backend
	state   State
}

// NewPlayer wraps backend. A nil backend yields an inert player: commands
// fail with ErrNoBackend and polls report nothing.
func NewPlayer(backend Backend) *Player {
	return &Player{backend: backend}
}

// Available reports whether a backend is attached.
func (p *Player) Available() bool {
	return p != nil && p.backend != nil
}

// State returns the last observed playback state.
func (p *Player) State() State {
	if p == nil {
		return State{}
	}
	return p.state
}

// Play asks the backend to load url. On acceptance the state moves to
// Buffering until the backend confirms the start.
func (p *Player) Play(url string) error {
	if !p.Available() {
		return ErrNoBackend
	}
	if err := p.backend.Load(url); err != nil {
		return fmt.Errorf("play %s: %w", url, err)
	}
	p.state.Status = Buffering
	return nil
}

// Stop asks the backend to stop and moves to Stopped on acceptance.
func (p *Player) Stop() error {
	if !p.Available() {
		return ErrNoBackend
	}
	if err := p.backend.Stop(); err != nil {
		return fmt.Errorf("stop: %w", err)
	}
	p.state.Status = Stopped
	return nil
}

// PollStatus folds at most one pending backend event into the state. It
// returns the new state and true when the state changed.
func (p *Player) PollStatus() (State, bool) {
	if !p.Available() {
		return p.State(), false
	}
	ev, ok := p.backend.Poll()
	if !ok {
		return p.state, false
	}

	prev := p.state
	switch ev.Kind {
	case EventStarted:
		p.state.Status = Playing
	case EventStopped:
		p.state.Status = Stopped
	case EventTitle:
		p.state.Title = ev.Title
	default:
		return p.state, false
	}
	return p.state, p.state != prev
}

// Close releases the backend. The player is inert afterwards.
func (p *Player) Close() error {
	if !p.Available() {
		return nil
	}
	err := p.backend.Close()
	p.backend = nil
	p.state = State{}
	return err
}
