// Body compression.
//
// A compressed body is Zstd output written as Ascii85 text, which keeps the
// second line of the file printable and free of newlines.
package store

import (
	"encoding/ascii85"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// maxBody caps the decoded size of a compressed body.
const maxBody = 256 << 20

var (
	encoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	decoder, _ = zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxBody))
)

func compress(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}
	frame := encoder.EncodeAll(data, nil)
	out := make([]byte, ascii85.MaxEncodedLen(len(frame)))
	return out[:ascii85.Encode(out, frame)]
}

func decompress(text []byte) ([]byte, error) {
	if len(text) == 0 {
		return nil, nil
	}
	// A 'z' expands one byte of text to four of output.
	frame := make([]byte, 4*len(text))
	n, _, err := ascii85.Decode(frame, text, true)
	if err != nil {
		return nil, fmt.Errorf("%w: ascii85: %w", ErrDecompress, err)
	}
	out, err := decoder.DecodeAll(frame[:n], nil)
	if err != nil {
		return nil, fmt.Errorf("%w: zstd: %w", ErrDecompress, err)
	}
	return out, nil
}
