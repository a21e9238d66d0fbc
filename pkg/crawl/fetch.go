// Package crawl implements the crawl stage: fetching source pages,
// extracting their text, and seeding documents into the pipeline.
package crawl

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxBodyBytes caps a fetched page at 10 MiB.
const maxBodyBytes = 10 << 20

// FetchError distinguishes failures the fetcher will not retry.
type FetchError struct {
	URL        string
	StatusCode int
	Permanent  bool
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Fetcher retrieves pages over HTTP. Client errors (4xx) fail
// immediately; server errors and network failures retry with a fixed
// delay.
type Fetcher struct {
	client     *http.Client
	retries    int
	retryDelay time.Duration
	userAgent  string
}

// NewFetcher returns a Fetcher with the given transient-failure retry
// budget.
func NewFetcher(timeout time.Duration, retries int, retryDelay time.Duration) *Fetcher {
	return &Fetcher{
		client:     &http.Client{Timeout: timeout},
		retries:    retries,
		retryDelay: retryDelay,
		userAgent:  "refinery-crawler/1.0",
	}
}

// Fetch returns the body and content type of url, honoring the retry
// policy. The returned FetchError's Permanent field tells the caller
// whether the request is worth ever repeating.
func (f *Fetcher) Fetch(ctx context.Context, url string) (body []byte, contentType string, err error) {
	attempts := f.retries + 1
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, "", ctx.Err()
			case <-time.After(f.retryDelay):
			}
		}

		body, contentType, err = f.fetchOnce(ctx, url)
		if err == nil {
			return body, contentType, nil
		}
		if fe, ok := err.(*FetchError); ok && fe.Permanent {
			return nil, "", err
		}
	}
	return nil, "", err
}

func (f *Fetcher) fetchOnce(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", &FetchError{URL: url, Permanent: true, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Fall through to read the body.
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, "", &FetchError{URL: url, StatusCode: resp.StatusCode, Permanent: true}
	default:
		return nil, "", &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, "", &FetchError{URL: url, Err: fmt.Errorf("reading body: %w", err)}
	}
	return body, resp.Header.Get("Content-Type"), nil
}
