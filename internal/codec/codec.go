// Package codec provides transparent decompression for input streams.
// PGN exports commonly ship zstd- or gzip-compressed; the decoder is picked
// from the file extension.
package codec

import (
	"io"
	"strings"
)

// Decoder wraps a raw input stream with decompression.
type Decoder interface {
	// Reader wraps r to decompress data read from it.
	Reader(r io.Reader) (io.ReadCloser, error)

	// Extension returns the file extension without dot (e.g. "zst", "gz").
	// Empty string means no compression.
	Extension() string
}

// ForName returns the decoder matching the extension of name.
// Unknown extensions get the pass-through decoder.
func ForName(name string) Decoder {
	switch {
	case strings.HasSuffix(name, ".zst"):
		return Zstd{}
	case strings.HasSuffix(name, ".gz"):
		return Gzip{}
	default:
		return Noop{}
	}
}
