// Store handle, save and load.
package store

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jpl-au/pagetree"
)

// Config holds store configuration options.
type Config struct {
	Algorithm  int  // Checksum algorithm (default AlgXXHash3)
	Compress   bool // Zstd+Ascii85 body
	SyncWrites bool // fsync the temporary file before the rename
}

// Store is a document file inside a directory.
type Store struct {
	root     *os.Root  // Sandboxed filesystem access
	name     string    // Document filename
	lockFile *os.File  // Sidecar <name>.lock
	lock     *fileLock // OS-level lock on lockFile
	config   Config
	closed   atomic.Bool
	mu       sync.RWMutex
}

// Open prepares a store for the file name inside dir. The document file
// itself is not created until the first Save.
func Open(dir, name string, config Config) (*Store, error) {
	if config.Algorithm == 0 {
		config.Algorithm = AlgXXHash3
	}
	if AlgorithmName(config.Algorithm) == "" {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAlgorithm, config.Algorithm)
	}

	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, err
	}
	lf, err := root.OpenFile(name+".lock", os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		root.Close()
		return nil, err
	}

	return &Store{
		root:     root,
		name:     name,
		lockFile: lf,
		lock:     &fileLock{f: lf},
		config:   config,
	}, nil
}

// Close releases the lock file and directory handle.
func (s *Store) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lock.detach()
	return errors.Join(s.lockFile.Close(), s.root.Close())
}

// Exists reports whether the document file has been written.
func (s *Store) Exists() bool {
	_, err := s.root.Stat(s.name)
	return err == nil
}

// Save writes a snapshot of doc. The file is replaced atomically.
func (s *Store) Save(doc *pagetree.Document) error {
	if err := s.block(LockExclusive); err != nil {
		return err
	}
	defer s.release(LockExclusive)

	body, nodes, err := pagetree.MarshalCount(doc)
	if err != nil {
		return fmt.Errorf("save: encode: %w", err)
	}

	hdr := Header{
		Version:   Version,
		Algorithm: s.config.Algorithm,
		Timestamp: time.Now().UnixMilli(),
		Nodes:     nodes,
		Sum:       hash(body, s.config.Algorithm),
	}
	if s.config.Compress {
		hdr.Compressed = 1
		body = compress(body)
	}

	line, err := hdr.encode()
	if err != nil {
		return fmt.Errorf("save: header: %w", err)
	}

	tmp := s.name + ".tmp"
	f, err := s.root.Create(tmp)
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	if err := write(f, line, body, s.config.SyncWrites); err != nil {
		f.Close()
		s.root.Remove(tmp)
		return fmt.Errorf("save: %w", err)
	}
	if err := f.Close(); err != nil {
		s.root.Remove(tmp)
		return fmt.Errorf("save: %w", err)
	}
	if err := s.root.Rename(tmp, s.name); err != nil {
		s.root.Remove(tmp)
		return fmt.Errorf("save: rename: %w", err)
	}
	return nil
}

// write puts header, body and the trailing newline into f.
func write(f *os.File, header, body []byte, sync bool) error {
	if _, err := f.Write(header); err != nil {
		return err
	}
	if _, err := f.Write(append(body, '\n')); err != nil {
		return err
	}
	if sync {
		return f.Sync()
	}
	return nil
}

// Load reads, verifies and restores the saved document.
func (s *Store) Load(config pagetree.Config) (*pagetree.Document, error) {
	if err := s.block(LockShared); err != nil {
		return nil, err
	}
	defer s.release(LockShared)

	hdr, body, err := s.read()
	if err != nil {
		return nil, err
	}

	if hdr.Compressed == 1 {
		body, err = decompress(body)
		if err != nil {
			return nil, fmt.Errorf("load: %w", err)
		}
	}
	if hash(body, hdr.Algorithm) != hdr.Sum {
		return nil, fmt.Errorf("load: %w", ErrChecksum)
	}

	doc, err := pagetree.Unmarshal(body, config)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	return doc, nil
}

// Stat returns the header of the saved document without decoding the tree.
func (s *Store) Stat() (*Header, error) {
	if err := s.block(LockShared); err != nil {
		return nil, err
	}
	defer s.release(LockShared)

	hdr, _, err := s.read()
	return hdr, err
}

// read splits the file into its parsed header and raw body. The lock must
// be held.
func (s *Store) read() (*Header, []byte, error) {
	data, err := s.root.ReadFile(s.name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	nl := bytes.IndexByte(data, '\n')
	if nl < 0 {
		return nil, nil, ErrCorruptHeader
	}
	hdr, err := decodeHeader(data[:nl])
	if err != nil {
		return nil, nil, err
	}
	return hdr, bytes.TrimRight(data[nl+1:], "\n"), nil
}

// block takes the in-process and OS locks for mode.
func (s *Store) block(mode LockMode) error {
	if s.closed.Load() {
		return ErrClosed
	}
	if mode == LockExclusive {
		s.mu.Lock()
	} else {
		s.mu.RLock()
	}
	if s.closed.Load() {
		s.unlockMu(mode)
		return ErrClosed
	}
	if err := s.lock.Lock(mode); err != nil {
		s.unlockMu(mode)
		return err
	}
	return nil
}

// release drops the locks taken by block.
func (s *Store) release(mode LockMode) {
	s.lock.Unlock()
	s.unlockMu(mode)
}

func (s *Store) unlockMu(mode LockMode) {
	if mode == LockExclusive {
		s.mu.Unlock()
	} else {
		s.mu.RUnlock()
	}
}
