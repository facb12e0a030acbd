// Identifier sources.
//
// The engine never derives ids from content and never reuses one. It asks
// the configured IDSource for a fresh id on every add and for every node of
// a clone. Collisions are still checked: a source that repeats itself makes
// the operation fail with ErrIDCollision before anything changes.
package pagetree

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDSource produces fresh identifiers.
type IDSource interface {
	NewID() string
}

// IDFunc adapts a plain function to IDSource.
type IDFunc func() string

// NewID calls f.
func (f IDFunc) NewID() string { return f() }

// UUID returns the default source: random (version 4) UUID strings.
func UUID() IDSource {
	return IDFunc(uuid.NewString)
}

// Sequence returns a deterministic source yielding prefix1, prefix2, ...
// It is safe for concurrent use.
func Sequence(prefix string) IDSource {
	var n atomic.Uint64
	return IDFunc(func() string {
		return prefix + strconv.FormatUint(n.Add(1), 10)
	})
}
