package thumbs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func testServer(t *testing.T, hits *atomic.Int64) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		// Hold the response briefly so concurrent callers overlap.
		time.Sleep(30 * time.Millisecond)
		_, _ = w.Write([]byte("jpeg-bytes"))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestConcurrentFetchesShareOneDownload(t *testing.T) {
	var hits atomic.Int64
	server := testServer(t, &hits)
	dest := Dest(t.TempDir(), "vid1")
	fetcher := NewFetcher()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = fetcher.Fetch(context.Background(), server.URL, dest)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("fetch %d error = %v", i, err)
		}
	}
	if got := hits.Load(); got != 1 {
		t.Fatalf("server hit %d times, want exactly 1", got)
	}
	data, err := os.ReadFile(dest)
	if err != nil || string(data) != "jpeg-bytes" {
		t.Fatalf("final file invalid: %q, %v", data, err)
	}
	if _, err := os.Stat(dest + lockSuffix); !os.IsNotExist(err) {
		t.Fatal("lock marker left behind")
	}
}

func TestExistingFileSkipsDownload(t *testing.T) {
	var hits atomic.Int64
	server := testServer(t, &hits)
	dest := filepath.Join(t.TempDir(), "vid.jpg")
	if err := os.WriteFile(dest, []byte("cached"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := NewFetcher().Fetch(context.Background(), server.URL, dest); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if hits.Load() != 0 {
		t.Fatal("download happened despite an existing non-empty file")
	}
}

func TestFailedFetchRemovesPartialOutputAndLock(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "vid.jpg")
	if err := NewFetcher().Fetch(context.Background(), server.URL, dest); err == nil {
		t.Fatal("expected an error for a 404 response")
	}
	if _, err := os.Stat(dest); !os.IsNotExist(err) {
		t.Fatal("partial output left behind")
	}
	if _, err := os.Stat(dest + lockSuffix); !os.IsNotExist(err) {
		t.Fatal("lock marker left behind")
	}
}

func TestStaleLockTimesOut(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "vid.jpg")
	if err := os.WriteFile(dest+lockSuffix, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	fetcher := NewFetcher()
	fetcher.lockWait = 50 * time.Millisecond
	fetcher.poll = 10 * time.Millisecond

	err := fetcher.Fetch(context.Background(), "http://unused.invalid", dest)
	if err == nil {
		t.Fatal("expected a timeout waiting on a lock nobody releases")
	}
}

func TestLockReleasedWithoutFileRetries(t *testing.T) {
	var hits atomic.Int64
	server := testServer(t, &hits)
	dest := filepath.Join(t.TempDir(), "vid.jpg")
	lock := dest + lockSuffix
	if err := os.WriteFile(lock, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	fetcher := NewFetcher()
	fetcher.poll = 5 * time.Millisecond

	go func() {
		// Simulate the competing fetch failing: release without output.
		time.Sleep(20 * time.Millisecond)
		_ = os.Remove(lock)
	}()

	if err := fetcher.Fetch(context.Background(), server.URL, dest); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if hits.Load() != 1 {
		t.Fatalf("server hit %d times, want 1", hits.Load())
	}
}
