// Package lock keeps a single cf-ip-updater instance running per PID file.
package lock

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/maksimkurb/cf-ip-updater/src/internal/errors"
	"github.com/maksimkurb/cf-ip-updater/src/internal/log"
)

// PIDLock is an exclusive flock(2) on a PID file.
// The lock is released by the kernel if the process dies, so a stale file never blocks a new run.
type PIDLock struct {
	path string
	file *os.File
}

// acquireAttempts bounds the retries when the PID file is replaced while we wait for it.
const acquireAttempts = 5

var errStaleFile = stderrors.New("PID file was replaced while locking")

// Acquire takes the lock or returns a LOCK_ERROR naming the running instance.
func Acquire(path string) (*PIDLock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.NewLockError(fmt.Sprintf("failed to create directory for PID file %s", path), err)
	}

	for attempt := 0; attempt < acquireAttempts; attempt++ {
		file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
		if err != nil {
			return nil, errors.NewLockError(fmt.Sprintf("failed to open PID file %s", path), err)
		}

		if err := lockOpened(file, path); err != nil {
			if err == errStaleFile {
				_ = file.Close()
				log.Debugf("PID file %s was replaced, retrying", path)
				continue
			}
			pid := readPID(file)
			_ = file.Close()
			if err == unix.EWOULDBLOCK {
				return nil, errors.NewLockError(fmt.Sprintf("another instance of cf-ip-updater is already running. PID: %s", pid), nil)
			}
			return nil, errors.NewLockError(fmt.Sprintf("failed to lock PID file %s", path), err)
		}

		if err := writePID(file); err != nil {
			_ = unix.Flock(int(file.Fd()), unix.LOCK_UN)
			_ = file.Close()
			return nil, errors.NewLockError(fmt.Sprintf("failed to write PID file %s", path), err)
		}

		log.Debugf("Acquired PID lock %s", path)
		return &PIDLock{path: path, file: file}, nil
	}

	return nil, errors.NewLockError(fmt.Sprintf("PID file %s keeps changing, giving up", path), errStaleFile)
}

// lockOpened locks file and checks that it is still the file at path.
// Release removes the path before unlocking, so a file opened before that
// can be locked after it is already unlinked; such a lock protects nothing.
func lockOpened(file *os.File, path string) error {
	if err := unix.Flock(int(file.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		return err
	}

	opened, err := file.Stat()
	if err != nil {
		_ = unix.Flock(int(file.Fd()), unix.LOCK_UN)
		return err
	}
	current, err := os.Stat(path)
	if err != nil || !os.SameFile(opened, current) {
		_ = unix.Flock(int(file.Fd()), unix.LOCK_UN)
		return errStaleFile
	}

	return nil
}

// Release unlocks and removes the PID file.
func (l *PIDLock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}

	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		log.Warnf("Failed to remove PID file %s: %v", l.path, err)
	}
	if err := unix.Flock(int(l.file.Fd()), unix.LOCK_UN); err != nil {
		log.Warnf("Failed to unlock PID file %s: %v", l.path, err)
	}
	err := l.file.Close()
	l.file = nil
	return err
}

func writePID(file *os.File) error {
	if err := file.Truncate(0); err != nil {
		return err
	}
	if _, err := file.WriteAt([]byte(strconv.Itoa(os.Getpid())+"\n"), 0); err != nil {
		return err
	}
	return file.Sync()
}

func readPID(file *os.File) string {
	buf := make([]byte, 32)
	n, _ := file.ReadAt(buf, 0)
	pid := strings.TrimSpace(string(buf[:n]))
	if pid == "" {
		return "unknown"
	}
	return pid
}
