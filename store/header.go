// File header.
//
// The header is the first line of the file: a single JSON object. It is read
// on its own by Stat, so tools can inspect a file without decoding the tree.
package store

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// Version is the current file format version.
const Version = 1

// Header describes a saved document.
type Header struct {
	Version    int    `json:"_v"`   // Format version
	Algorithm  int    `json:"_alg"` // Checksum algorithm (1=xxHash3, 2=FNV1a, 3=Blake2b)
	Compressed int    `json:"_z"`   // 1 when the body is zstd+ascii85
	Timestamp  int64  `json:"_ts"`  // Unix milliseconds when written
	Nodes      int    `json:"_n"`   // Node count
	Sum        string `json:"_sum"` // Checksum of the snapshot JSON, 16 hex chars
}

// encode serialises the header as one newline-terminated line.
func (h *Header) encode() ([]byte, error) {
	data, err := json.Marshal(h)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// decodeHeader parses a header line.
func decodeHeader(line []byte) (*Header, error) {
	var hdr Header
	if err := json.Unmarshal(bytes.TrimSpace(line), &hdr); err != nil {
		return nil, ErrCorruptHeader
	}
	if hdr.Version == 0 || hdr.Sum == "" {
		return nil, ErrCorruptHeader
	}
	if hdr.Version != Version {
		return nil, ErrUnsupportedVersion
	}
	return &hdr, nil
}
