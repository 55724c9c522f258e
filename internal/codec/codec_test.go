package codec

import (
	"bytes"
	"io"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

func TestForName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "games.pgn.zst", want: "zst"},
		{name: "games.pgn.gz", want: "gz"},
		{name: "games.pgn", want: ""},
		{name: "https://example.com/games.pgn.zst", want: "zst"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ForName(tt.name).Extension(); got != tt.want {
				t.Errorf("ForName(%q).Extension() = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestZstd_RoundTrip(t *testing.T) {
	original := []byte("[Event \"Test\"]\n\n1. e4 e5 1/2-1/2\n")

	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf)
	if err != nil {
		t.Fatalf("zstd.NewWriter() error = %v", err)
	}
	if _, err := enc.Write(original); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	rc, err := Zstd{}.Reader(&buf)
	if err != nil {
		t.Fatalf("Reader() error = %v", err)
	}
	defer rc.Close()

	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if !bytes.Equal(got, original) {
		t.Errorf("round trip = %q, want %q", got, original)
	}
}

func TestGzip_RoundTrip(t *testing.T) {
	original := []byte("[Event \"Test\"]\n\n1. d4 d5 *\n")

	var buf bytes.Buffer
	enc := gzip.NewWriter(&buf)
	if _, err := enc.Write(original); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	rc, err := Gzip{}.Reader(&buf)
	if err != nil {
		t.Fatalf("Reader() error = %v", err)
	}
	defer rc.Close()

	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if !bytes.Equal(got, original) {
		t.Errorf("round trip = %q, want %q", got, original)
	}
}

func TestNoop_PassThrough(t *testing.T) {
	rc, err := Noop{}.Reader(bytes.NewReader([]byte("abc")))
	if err != nil {
		t.Fatalf("Reader() error = %v", err)
	}
	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(got) != "abc" {
		t.Errorf("read = %q, want %q", got, "abc")
	}
}
