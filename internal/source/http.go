package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultResponseHeaderTimeout bounds the wait for response headers.
// There is no overall timeout so large downloads can stream.
const DefaultResponseHeaderTimeout = 30 * time.Second

var httpClient = &http.Client{
	Transport: &http.Transport{
		ResponseHeaderTimeout: DefaultResponseHeaderTimeout,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	},
}

// openHTTP streams a PGN file from an http(s) URL.
func openHTTP(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("downloading: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s", ErrNotFound, url)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("downloading %s: unexpected status %s", url, resp.Status)
	}

	return resp.Body, nil
}
