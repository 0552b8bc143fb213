// Package reclock guards a cast file against concurrent writers and
// recovers its location across a rename race: a sibling ".lock" file
// records which process owns an in-progress recording, and readers use
// OS-level liveness checks rather than trusting a stale lock file left
// behind by a crash.
package reclock

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/gofrs/flock"
)

// LockInfo is the JSON body of a ".lock" sibling file.
type LockInfo struct {
	Pid     int    `json:"pid"`
	Started string `json:"started"`
}

// LockError reports that path is actively held by another recorder.
type LockError struct {
	Path string
	Info LockInfo
}

func (e *LockError) Error() string {
	return fmt.Sprintf("reclock: %s is locked by pid %d (started %s)", e.Path, e.Info.Pid, e.Info.Started)
}

func lockPathFor(path string) string {
	return path + ".lock"
}

// WriteLock creates the sibling lock file for path, recording the
// current process's PID and start time. It also takes a non-blocking
// advisory flock on the lock file itself, so a concurrent WriteLock on
// the same filesystem fails at once with a *LockError from the kernel
// lock, not just from the JSON contents.
func WriteLock(path string) (*flock.Flock, error) {
	info := LockInfo{Pid: os.Getpid(), Started: time.Now().UTC().Format(time.RFC3339)}
	b, err := json.Marshal(info)
	if err != nil {
		return nil, err
	}
	lockPath := lockPathFor(path)
	fl := flock.New(lockPath)
	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("reclock: acquire advisory lock on %s: %w", lockPath, err)
	}
	if !locked {
		existing, _ := ReadLock(path)
		if existing == nil {
			existing = &LockInfo{}
		}
		return nil, &LockError{Path: path, Info: *existing}
	}
	if err := os.WriteFile(lockPath, b, 0o644); err != nil {
		fl.Unlock()
		return nil, fmt.Errorf("reclock: write lock file %s: %w", lockPath, err)
	}
	return fl, nil
}

// RemoveLock releases and deletes the lock file for path. Errors are
// ignored; an interrupted recorder should never fail its shutdown path
// over lock cleanup.
func RemoveLock(fl *flock.Flock, path string) {
	if fl != nil {
		fl.Unlock()
	}
	os.Remove(lockPathFor(path))
}

// ReadLock returns the lock info for path iff a lock file exists, it
// parses, and its recorded PID is still alive. A malformed or
// stale-owner lock file reads as "no lock" (nil, nil).
func ReadLock(path string) (*LockInfo, error) {
	b, err := os.ReadFile(lockPathFor(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var info LockInfo
	if err := json.Unmarshal(b, &info); err != nil {
		return nil, nil
	}
	if !isPidAlive(info.Pid) {
		return nil, nil
	}
	return &info, nil
}

// CheckNotLocked fails with a *LockError when path is held by a live
// recorder. Otherwise, if a stale lock file is present, it is silently
// removed and CheckNotLocked succeeds.
func CheckNotLocked(path string) error {
	info, err := ReadLock(path)
	if err != nil {
		return err
	}
	if info != nil {
		return &LockError{Path: path, Info: *info}
	}
	lockPath := lockPathFor(path)
	if _, err := os.Stat(lockPath); err == nil {
		os.Remove(lockPath)
	}
	return nil
}

// isPidAlive reports whether pid names a live process, using a
// liveness probe rather than existence of a /proc entry: sending
// signal 0 distinguishes "no such process" from "exists, but we can't
// signal it" (EPERM, a process owned by another user, which still
// counts as alive).
func isPidAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	err = proc.Signal(syscall.Signal(0))
	if err == nil {
		return true
	}
	return errors.Is(err, syscall.EPERM)
}
