package codec

import "io"

// Compile-time check that Noop implements Decoder.
var _ Decoder = Noop{}

// Noop passes data through unchanged.
type Noop struct{}

// Reader returns r unchanged.
func (Noop) Reader(r io.Reader) (io.ReadCloser, error) {
	if rc, ok := r.(io.ReadCloser); ok {
		return rc, nil
	}
	return io.NopCloser(r), nil
}

// Extension returns the empty string.
func (Noop) Extension() string {
	return ""
}
