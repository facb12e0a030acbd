// Package store persists pagetree documents to a single file.
//
// The file is two lines. The first is a JSON header carrying the format
// version, checksum algorithm, compression flag, write time, node count and
// a checksum of the snapshot JSON. The second is the snapshot itself:
// either plain JSON or, when compression is on, Zstd-compressed JSON
// encoded as Ascii85 so the body stays printable and newline-free.
//
// Saves go to a temporary file that is renamed over the target, so a crash
// mid-write leaves the previous version intact. A sidecar .lock file carries
// an OS-level lock (flock / LockFileEx) that serialises saves and loads
// across processes; an in-process RWMutex does the same across goroutines.
package store

import "errors"

// Sentinel errors. ErrCorruptHeader, ErrDecompress and ErrChecksum mean the
// file is damaged; tree-level damage surfaces as pagetree.ErrCorruptTree.
var (
	ErrNotFound           = errors.New("document file not found")
	ErrClosed             = errors.New("store is closed")
	ErrCorruptHeader      = errors.New("corrupt header")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrDecompress         = errors.New("decompression failed")
	ErrChecksum           = errors.New("checksum mismatch")
	ErrInvalidAlgorithm   = errors.New("unknown checksum algorithm")
)
