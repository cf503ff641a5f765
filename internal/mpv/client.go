package mpv

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os/exec"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/rdo-radio/rdo/internal/logging"
	"github.com/rdo-radio/rdo/internal/playback"
)

// Ensure Client implements playback.Backend at compile time.
var _ playback.Backend = (*Client)(nil)

// ErrClosed is returned by commands issued after the connection went away.
var ErrClosed = errors.New("mpv connection closed")

const (
	defaultCommandTimeout = 2 * time.Second
	eventBuffer           = 64
	maxLineBytes          = 1024 * 1024
	titleObserverID       = 1
)

// Client talks to a running mpv instance over its JSON IPC socket.
type Client struct {
	conn    net.Conn
	timeout time.Duration

	writeMu sync.Mutex
	nextID  atomic.Int64

	mu      sync.Mutex
	pending  map[int64]chan reply
	closed   bool
	quitting bool // quit was sent; the hang-up that follows is expected

	events    chan playback.Event
	done      chan struct{}
	closeOnce sync.Once

	proc *exec.Cmd
}

type request struct {
	Command   []any `json:"command"`
	RequestID int64 `json:"request_id"`
}

// message is either a command reply or an asynchronous event; Event is empty
// for replies.
type message struct {
	Event     string          `json:"event"`
	Name      string          `json:"name"`
	Reason    string          `json:"reason"`
	Data      json.RawMessage `json:"data"`
	Error     string          `json:"error"`
	RequestID int64           `json:"request_id"`
}

type reply struct {
	err  string
	data json.RawMessage
}

// Dial connects to the IPC socket at path and subscribes to title changes.
func Dial(path string) (*Client, error) {
	conn, err := net.Dial("unix", path)
	if err != nil {
		return nil, fmt.Errorf("dial mpv socket: %w", err)
	}
	c := newClient(conn, defaultCommandTimeout)
	if _, err := c.command("observe_property", titleObserverID, "media-title"); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("observe media-title: %w", err)
	}
	return c, nil
}

func newClient(conn net.Conn, timeout time.Duration) *Client {
	c := &Client{
		conn:    conn,
		timeout: timeout,
		pending: make(map[int64]chan reply),
		events:  make(chan playback.Event, eventBuffer),
		done:    make(chan struct{}),
	}
	go c.readLoop()
	return c
}

// Load replaces the current stream with url.
func (c *Client) Load(url string) error {
	_, err := c.command("loadfile", url, "replace")
	return err
}

// Stop stops playback and clears the playlist.
func (c *Client) Stop() error {
	_, err := c.command("stop")
	return err
}

// Poll returns the next pending event without blocking.
func (c *Client) Poll() (playback.Event, bool) {
	if c == nil {
		return playback.Event{}, false
	}
	select {
	case ev := <-c.events:
		return ev, true
	default:
		return playback.Event{}, false
	}
}

// Close shuts the connection down and, when the client launched mpv itself,
// asks the process to quit and reaps it.
func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	var err error
	c.closeOnce.Do(func() {
		if c.proc != nil {
			c.mu.Lock()
			c.quitting = true
			c.mu.Unlock()
			_, _ = c.command("quit")
		}
		c.markClosed()
		err = c.conn.Close()
		if c.proc != nil {
			reap(c.proc)
		}
	})
	return err
}

func (c *Client) command(args ...any) (json.RawMessage, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("empty command")
	}

	id := c.nextID.Add(1)
	ch := make(chan reply, 1)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, ErrClosed
	}
	c.pending[id] = ch
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		delete(c.pending, id)
		c.mu.Unlock()
	}()

	payload, err := json.Marshal(request{Command: args, RequestID: id})
	if err != nil {
		return nil, fmt.Errorf("encode command: %w", err)
	}
	payload = append(payload, '\n')

	c.writeMu.Lock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(c.timeout))
	_, err = c.conn.Write(payload)
	c.writeMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("write command: %w", err)
	}

	timer := time.NewTimer(c.timeout)
	defer timer.Stop()

	select {
	case r := <-ch:
		if r.err != "success" {
			return nil, fmt.Errorf("mpv %v: %s", args[0], r.err)
		}
		return r.data, nil
	case <-c.done:
		return nil, ErrClosed
	case <-timer.C:
		return nil, fmt.Errorf("mpv %v: no reply after %s", args[0], c.timeout)
	}
}

func (c *Client) readLoop() {
	scanner := bufio.NewScanner(c.conn)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for scanner.Scan() {
		var msg message
		if err := json.Unmarshal(scanner.Bytes(), &msg); err != nil {
			logging.Debug("skip undecodable mpv message", zap.Error(err))
			continue
		}
		if msg.Event != "" {
			c.push(classify(msg))
			continue
		}
		c.deliver(msg)
	}

	c.mu.Lock()
	expected := c.closed || c.quitting
	c.mu.Unlock()
	if !expected {
		logging.Warn("mpv connection lost", zap.Error(scanner.Err()))
		c.push(playback.Event{Kind: playback.EventStopped})
	}
	c.markClosed()
}

func (c *Client) deliver(msg message) {
	c.mu.Lock()
	ch, ok := c.pending[msg.RequestID]
	c.mu.Unlock()
	if !ok {
		return
	}
	ch <- reply{err: msg.Error, data: msg.Data}
}

func (c *Client) push(ev playback.Event) {
	if ev.Kind == playback.EventUnknown {
		return
	}
	select {
	case c.events <- ev:
	default:
		logging.Debug("mpv event buffer full, dropping event", zap.Int("kind", int(ev.Kind)))
	}
}

func (c *Client) markClosed() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.done)
}

// classify maps mpv's event names onto the player's logical events.
func classify(msg message) playback.Event {
	switch msg.Event {
	case "start-file", "playback-restart":
		return playback.Event{Kind: playback.EventStarted}
	case "end-file", "shutdown":
		return playback.Event{Kind: playback.EventStopped}
	case "property-change":
		if msg.Name != "media-title" {
			return playback.Event{Kind: playback.EventUnknown}
		}
		var title string
		if len(msg.Data) > 0 {
			_ = json.Unmarshal(msg.Data, &title)
		}
		return playback.Event{Kind: playback.EventTitle, Title: title}
	default:
		return playback.Event{Kind: playback.EventUnknown}
	}
}
