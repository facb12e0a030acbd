// Body checksums.
//
// The header's _sum is a 64-bit digest of the snapshot JSON, taken before
// compression and written as 16 hex characters. The algorithm number is
// stored beside it, so a file can be verified whatever the store's current
// setting.
package store

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

// Checksum algorithms.
const (
	AlgXXHash3 = 1 // Default
	AlgFNV1a   = 2
	AlgBlake2b = 3
)

type checksum struct {
	name string
	sum  func([]byte) uint64
}

var checksums = map[int]checksum{
	AlgXXHash3: {"xxhash3", xxh3.Hash},
	AlgFNV1a:   {"fnv1a", sumFNV1a},
	AlgBlake2b: {"blake2b", sumBlake2b},
}

func sumFNV1a(b []byte) uint64 {
	h := fnv.New64a()
	h.Write(b)
	return h.Sum64()
}

func sumBlake2b(b []byte) uint64 {
	h, _ := blake2b.New(8, nil) // only fails for bad sizes or keys
	h.Write(b)
	return binary.BigEndian.Uint64(h.Sum(nil))
}

// AlgorithmName returns the name of a checksum algorithm, or "" if unknown.
func AlgorithmName(alg int) string {
	return checksums[alg].name
}

// hash returns the hex digest of data, or "" for an unknown algorithm.
func hash(data []byte, alg int) string {
	c, ok := checksums[alg]
	if !ok {
		return ""
	}
	return fmt.Sprintf("%016x", c.sum(data))
}
