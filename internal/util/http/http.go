// Package http fetches remote images.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jmylchreest/vibrant/internal/version"
)

const (
	// UserAgentName is the application name used in the User-Agent header.
	UserAgentName = "vibrant"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 10 * time.Second

	// DefaultMaxBytes caps the size of a fetched body.
	DefaultMaxBytes = 50 << 20
)

// ErrTooLarge is returned when a response body exceeds FetchOptions.MaxBytes.
var ErrTooLarge = errors.New("response body too large")

// StatusError is returned for any response other than 200 OK.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: HTTP %d %s", e.URL, e.Code, http.StatusText(e.Code))
}

// FetchOptions limits a fetch. Zero values select the defaults.
type FetchOptions struct {
	Timeout  time.Duration
	MaxBytes int64
}

func (o FetchOptions) withDefaults() FetchOptions {
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.MaxBytes <= 0 {
		o.MaxBytes = DefaultMaxBytes
	}
	return o
}

// Fetch downloads url into memory.
// A declared or actual body larger than MaxBytes fails with ErrTooLarge.
func Fetch(ctx context.Context, url string, opts FetchOptions) ([]byte, error) {
	opts = opts.withDefaults()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgentName+"/"+version.Short())
	req.Header.Set("Accept", "image/*")

	client := &http.Client{Timeout: opts.Timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{URL: url, Code: resp.StatusCode}
	}
	if resp.ContentLength > opts.MaxBytes {
		return nil, fmt.Errorf("%w: %d bytes declared, limit %d", ErrTooLarge, resp.ContentLength, opts.MaxBytes)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, opts.MaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if int64(len(data)) > opts.MaxBytes {
		return nil, fmt.Errorf("%w: limit %d", ErrTooLarge, opts.MaxBytes)
	}

	return data, nil
}
