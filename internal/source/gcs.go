package source

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
)

// openGCS streams a PGN object from Google Cloud Storage.
func openGCS(ctx context.Context, name string) (io.ReadCloser, error) {
	bucket, key, err := parseObjectURL(name, "gs")
	if err != nil {
		return nil, err
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating GCS client: %w", err)
	}

	reader, err := client.Bucket(bucket).Object(key).NewReader(ctx)
	if err != nil {
		client.Close()
		if err == storage.ErrObjectNotExist {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("creating reader: %w", err)
	}

	return &stream{Reader: reader, closers: []io.Closer{reader, client}}, nil
}
