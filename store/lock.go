// Cross-process locking on the sidecar <name>.lock file.
//
// Loads take a shared lock, saves an exclusive one. The platform files
// supply osLock and osUnlock; fileLock adds the handle lifetime: after
// Close detaches the file, Lock and Unlock do nothing, and a call already
// inside the kernel finishes before the file is closed.
package store

import (
	"fmt"
	"os"
	"sync"
)

// LockMode selects shared (load) or exclusive (save) locking.
type LockMode int

const (
	LockShared LockMode = iota
	LockExclusive
)

func (m LockMode) String() string {
	if m == LockExclusive {
		return "exclusive"
	}
	return "shared"
}

type fileLock struct {
	mu sync.Mutex
	f  *os.File // nil once detached
}

// Lock blocks until the lock is granted in mode.
func (l *fileLock) Lock(mode LockMode) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.f == nil {
		return nil
	}
	if err := osLock(l.f, mode); err != nil {
		return fmt.Errorf("%s lock %s: %w", mode, l.f.Name(), err)
	}
	return nil
}

// Unlock releases whatever lock the handle holds.
func (l *fileLock) Unlock() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.f == nil {
		return nil
	}
	if err := osUnlock(l.f); err != nil {
		return fmt.Errorf("unlock %s: %w", l.f.Name(), err)
	}
	return nil
}

// detach stops all further locking. The caller closes the file.
func (l *fileLock) detach() {
	l.mu.Lock()
	l.f = nil
	l.mu.Unlock()
}
