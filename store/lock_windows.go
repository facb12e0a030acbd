//go:build windows

package store

import (
	"math"
	"os"

	"golang.org/x/sys/windows"
)

// Both calls cover the whole file.
func osLock(f *os.File, mode LockMode) error {
	var flags uint32
	if mode == LockExclusive {
		flags = windows.LOCKFILE_EXCLUSIVE_LOCK
	}
	var ol windows.Overlapped
	return windows.LockFileEx(windows.Handle(f.Fd()), flags, 0, math.MaxUint32, math.MaxUint32, &ol)
}

func osUnlock(f *os.File) error {
	var ol windows.Overlapped
	return windows.UnlockFileEx(windows.Handle(f.Fd()), 0, math.MaxUint32, math.MaxUint32, &ol)
}
