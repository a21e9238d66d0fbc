package crawl

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "refinery-crawler/1.0", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><body>hello</body></html>"))
	}))
	defer srv.Close()

	f := NewFetcher(5*time.Second, 3, time.Millisecond)
	body, contentType, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, string(body), "hello")
	assert.Contains(t, contentType, "text/html")
}

func TestFetch_ClientErrorIsPermanentAndNotRetried(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewFetcher(5*time.Second, 3, time.Millisecond)
	_, _, err := f.Fetch(context.Background(), srv.URL)
	require.Error(t, err)

	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.True(t, fe.Permanent)
	assert.Equal(t, http.StatusNotFound, fe.StatusCode)
	assert.Equal(t, int32(1), hits.Load())
}

func TestFetch_ServerErrorRetriesThenSucceeds(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("eventually"))
	}))
	defer srv.Close()

	f := NewFetcher(5*time.Second, 3, time.Millisecond)
	body, _, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "eventually", string(body))
	assert.Equal(t, int32(3), hits.Load())
}

func TestFetch_ExhaustsRetryBudget(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	f := NewFetcher(5*time.Second, 2, time.Millisecond)
	_, _, err := f.Fetch(context.Background(), srv.URL)
	require.Error(t, err)

	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.False(t, fe.Permanent)
	// Initial attempt plus two retries.
	assert.Equal(t, int32(3), hits.Load())
}

func TestFetch_ContextCancelledDuringRetryDelay(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	f := NewFetcher(5*time.Second, 5, time.Hour)

	done := make(chan error, 1)
	go func() {
		_, _, err := f.Fetch(ctx, srv.URL)
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Fetch did not return after context cancellation")
	}
}
