package mpv

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rdo-radio/rdo/internal/logging"
)

// Options configure Launch.
type Options struct {
	Binary       string        // empty uses "mpv" from PATH
	SocketPath   string        // IPC socket to create; required
	StartTimeout time.Duration // zero uses 5s
}

const (
	defaultBinary       = "mpv"
	defaultStartTimeout = 5 * time.Second
	dialInterval        = 50 * time.Millisecond
	quitGrace           = 2 * time.Second
)

// Launch starts an idle, audio-only mpv process listening on SocketPath and
// connects to it.
func Launch(ctx context.Context, opts Options) (*Client, error) {
	socket := strings.TrimSpace(opts.SocketPath)
	if socket == "" {
		return nil, fmt.Errorf("mpv socket path is empty")
	}
	binary := strings.TrimSpace(opts.Binary)
	if binary == "" {
		binary = defaultBinary
	}
	timeout := opts.StartTimeout
	if timeout <= 0 {
		timeout = defaultStartTimeout
	}

	path, err := exec.LookPath(binary)
	if err != nil {
		return nil, fmt.Errorf("locate mpv: %w", err)
	}

	_ = os.Remove(socket)
	cmd := exec.Command(path, Args(socket)...)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start mpv: %w", err)
	}
	logging.Info("mpv started", zap.String("binary", path), zap.Int("pid", cmd.Process.Pid))

	client, err := waitForSocket(ctx, socket, timeout)
	if err != nil {
		_ = cmd.Process.Kill()
		reap(cmd)
		return nil, err
	}
	client.proc = cmd
	return client, nil
}

// Args returns the command line used to run mpv as a headless radio backend.
func Args(socket string) []string {
	return []string{
		"--idle=yes",
		"--no-video",
		"--no-terminal",
		"--input-ipc-server=" + socket,
	}
}

func waitForSocket(ctx context.Context, socket string, timeout time.Duration) (*Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(dialInterval)
	defer ticker.Stop()

	var lastErr error
	for {
		client, err := Dial(socket)
		if err == nil {
			return client, nil
		}
		lastErr = err

		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return nil, fmt.Errorf("mpv socket not ready after %s: %w", timeout, lastErr)
			}
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// reap waits for the process to exit, killing it after a grace period.
func reap(cmd *exec.Cmd) {
	if cmd == nil || cmd.Process == nil {
		return
	}
	exited := make(chan struct{})
	go func() {
		_ = cmd.Wait()
		close(exited)
	}()
	select {
	case <-exited:
	case <-time.After(quitGrace):
		_ = cmd.Process.Kill()
		<-exited
	}
}
