// Package source opens PGN input streams from local files, http(s) URLs,
// and gs:// or s3:// objects, decompressing them by extension.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cja000/cga/internal/codec"
)

// ErrNotFound indicates the named input does not exist.
var ErrNotFound = errors.New("source: input not found")

// Open returns a reader for the named input. The name may be a local path,
// an http(s) URL, or a gs://bucket/key or s3://bucket/key object reference.
// Inputs ending in .zst or .gz are decompressed transparently.
func Open(ctx context.Context, name string) (io.ReadCloser, error) {
	var (
		raw io.ReadCloser
		err error
	)
	switch {
	case strings.HasPrefix(name, "gs://"):
		raw, err = openGCS(ctx, name)
	case strings.HasPrefix(name, "s3://"):
		raw, err = openS3(ctx, name)
	case strings.HasPrefix(name, "http://"), strings.HasPrefix(name, "https://"):
		raw, err = openHTTP(ctx, name)
	default:
		raw, err = openFile(name)
	}
	if err != nil {
		return nil, err
	}

	decoded, err := codec.ForName(name).Reader(raw)
	if err != nil {
		raw.Close()
		return nil, fmt.Errorf("creating decompressor: %w", err)
	}

	return &stream{Reader: decoded, closers: []io.Closer{decoded, raw}}, nil
}

// stream closes every layer of an opened input in order.
type stream struct {
	io.Reader
	closers []io.Closer
}

func (s *stream) Close() error {
	var first error
	seen := make(map[io.Closer]struct{}, len(s.closers))
	for _, c := range s.closers {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// parseObjectURL splits scheme://bucket/key into bucket and key.
func parseObjectURL(name, scheme string) (bucket, key string, err error) {
	rest := strings.TrimPrefix(name, scheme+"://")
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid %s URL %q: want %s://bucket/key", scheme, name, scheme)
	}
	return bucket, key, nil
}
