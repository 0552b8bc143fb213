// Package guard keeps a spawned recorder from surviving as an orphan:
// it snapshots the parent PID at construction, watches for SIGINT and
// SIGHUP, and kills the child promptly if either fires or the parent
// disappears out from under it.
package guard

import (
	"os"
	"os/exec"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"
)

// pollInterval is how often WaitOrKill checks the child's status and
// the termination conditions while it is still running.
const pollInterval = 100 * time.Millisecond

// Guard snapshots the parent process at construction and tracks whether
// an interrupt signal has arrived since.
type Guard struct {
	interrupted atomic.Bool
	initialPpid int
	sigCh       chan os.Signal
	stopNotify  func()
}

// New creates a Guard, snapshotting the current parent PID.
// RegisterSignals must be called separately to start watching for
// SIGINT/SIGHUP.
func New() *Guard {
	return &Guard{initialPpid: syscall.Getppid()}
}

// RegisterSignals installs SIGINT and SIGHUP handlers that set the
// interrupted flag. Safe to call once per Guard; calling it again
// replaces the previous registration.
func (g *Guard) RegisterSignals() {
	if g.stopNotify != nil {
		g.stopNotify()
	}
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGHUP)
	g.sigCh = ch
	g.stopNotify = func() { signal.Stop(ch) }

	go func() {
		for range ch {
			g.interrupted.Store(true)
		}
	}()
}

// Stop tears down the signal registration. Call once the guarded
// child has exited.
func (g *Guard) Stop() {
	if g.stopNotify != nil {
		g.stopNotify()
		g.stopNotify = nil
	}
}

// IsInterrupted reports whether SIGINT or SIGHUP has arrived since
// RegisterSignals was called.
func (g *Guard) IsInterrupted() bool {
	return g.interrupted.Load()
}

// isOrphaned reports whether the process's parent has changed since
// the Guard was constructed — the reparent-to-init/subreaper signature
// of a dead original parent, independent of whether the new parent
// happens to be PID 1.
func (g *Guard) isOrphaned() bool {
	return syscall.Getppid() != g.initialPpid
}

func (g *Guard) shouldTerminate() bool {
	return g.IsInterrupted() || g.isOrphaned()
}

// WaitOrKill waits for cmd to exit, polling every 100ms. If the
// interrupted flag is set or the parent has died, it kills and reaps
// cmd instead of waiting further.
func (g *Guard) WaitOrKill(cmd *exec.Cmd) error {
	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case err := <-done:
			return err
		case <-ticker.C:
			if g.shouldTerminate() {
				if cmd.Process != nil {
					cmd.Process.Kill()
				}
				return <-done
			}
		}
	}
}
