// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch downloads remote documents over HTTP for conversion.
package fetch

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/pdiddy/x2md/pkg/types"
)

// RetryBaseDelay controls the base duration for exponential backoff on
// HTTP 429 responses. Tests override this to avoid real sleeps.
var RetryBaseDelay = 10 * time.Second

const defaultMaxRetries = 5

// Get downloads url and returns the response body. HTTP 429 (Too Many
// Requests) responses are retried with exponential backoff starting at
// RetryBaseDelay and doubling each attempt; any other non-2xx status is an
// error. When cfg.MaxRetries is 0 the default (5) is used. If the context
// is cancelled during a backoff wait, Get returns ctx.Err().
func Get(ctx context.Context, client *http.Client, url string, cfg types.FetchConfig) ([]byte, error) {
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", url, err)
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}

	for attempt := 0; ; attempt++ {
		resp, err := client.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}

		if resp.StatusCode == http.StatusTooManyRequests && attempt < maxRetries {
			// Drain and close the body before retrying.
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()

			delay := time.Duration(math.Pow(2, float64(attempt))) * RetryBaseDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
		}
		if readErr != nil {
			return nil, fmt.Errorf("reading response from %s: %w", url, readErr)
		}
		return body, nil
	}
}
