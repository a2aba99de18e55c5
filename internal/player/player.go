// Package player starts the external media player for a video link.
package player

import (
	"fmt"
	"os/exec"
	"strings"
	"sync"

	"github.com/google/shlex"
	"go.uber.org/zap"

	"ytgrip/internal/eventbus"
	"ytgrip/internal/logging"
)

// stderrTailBytes bounds how much player stderr is kept for the exit event
const stderrTailBytes = 2048

// PlayerService launches the configured player
type PlayerService interface {
	// Launch starts the player on url and returns once the process is
	// running. Only a spawn failure is reported.
	Launch(url string, extraArgs []string) error
	// Wait blocks until every launched process has exited
	Wait()
}

// playerService is the concrete implementation
type playerService struct {
	command string
	bus     eventbus.EventBus
	wg      sync.WaitGroup
}

// NewPlayerService creates a player service running command.
// bus may be nil.
func NewPlayerService(command string, bus eventbus.EventBus) PlayerService {
	return &playerService{
		command: command,
		bus:     bus,
	}
}

func (ps *playerService) Launch(url string, extraArgs []string) error {
	args := make([]string, 0, len(extraArgs)+1)
	args = append(args, extraArgs...)
	args = append(args, url)

	cmd := exec.Command(ps.command, args...)
	stderr := &tailBuffer{limit: stderrTailBytes}
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		err = fmt.Errorf("failed to start %s: %w", ps.command, err)
		logging.Error("player spawn failed", zap.String("url", url), zap.Error(err))
		ps.publish(eventbus.PlaybackFailedEvent{URL: url, Err: err})
		return err
	}

	pid := cmd.Process.Pid
	logging.Info("player started",
		zap.String("command", ps.command),
		zap.Strings("args", args),
		zap.Int("pid", pid))
	ps.publish(eventbus.PlaybackStartedEvent{URL: url, PID: pid})

	ps.wg.Add(1)
	go func() {
		defer ps.wg.Done()
		err := cmd.Wait()
		tail := stderr.String()
		if err != nil {
			logging.Warn("player exited with error",
				zap.Int("pid", pid),
				zap.Error(err),
				zap.String("stderr", tail))
		} else {
			logging.Debug("player exited", zap.Int("pid", pid))
		}
		ps.publish(eventbus.PlaybackExitedEvent{URL: url, Err: err, Stderr: tail})
	}()

	return nil
}

func (ps *playerService) Wait() {
	ps.wg.Wait()
}

func (ps *playerService) publish(event eventbus.DomainEvent) {
	if ps.bus != nil {
		ps.bus.Publish(event)
	}
}

// SplitArgs splits a player option string the way a shell would.
// Unbalanced quotes fall back to plain whitespace splitting.
func SplitArgs(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	args, err := shlex.Split(s)
	if err != nil {
		logging.Debug("player args not shell-parsable, splitting on whitespace", zap.Error(err))
		return strings.Fields(s)
	}
	return args
}

// tailBuffer keeps the last limit bytes written to it
type tailBuffer struct {
	mu    sync.Mutex
	limit int
	buf   []byte
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buf = append(t.buf, p...)
	if over := len(t.buf) - t.limit; over > 0 {
		t.buf = append(t.buf[:0], t.buf[over:]...)
	}
	return len(p), nil
}

func (t *tailBuffer) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return strings.TrimSpace(string(t.buf))
}
