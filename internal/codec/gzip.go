package codec

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

// Compile-time check that Gzip implements Decoder.
var _ Decoder = Gzip{}

// Gzip decompresses gzip streams.
type Gzip struct{}

// Reader wraps r to decompress gzip data.
func (Gzip) Reader(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}

// Extension returns "gz".
func (Gzip) Extension() string {
	return "gz"
}
