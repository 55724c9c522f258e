package source

import (
	"fmt"
	"io"
	"os"
)

// openFile opens a local PGN file.
func openFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("opening input: %w", err)
	}
	return f, nil
}
