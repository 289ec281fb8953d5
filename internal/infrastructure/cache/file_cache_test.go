package cache

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/kapral18/ytsurf/internal/domain"
)

func sampleRecords() []domain.VideoRecord {
	return []domain.VideoRecord{
		{ID: "dQw4w9WgXcQ", Title: "First", Author: "chan a", Duration: "3:32"},
		{ID: "9bZkp7q19f0", Title: "Second", Author: "chan b", Duration: "4:12"},
	}
}

func TestGetAfterPutReturnsSameRecords(t *testing.T) {
	c := NewFileCache(t.TempDir())
	if err := c.Put("cat videos", sampleRecords()); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, ok, err := c.Get("cat videos")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok {
		t.Fatal("expected a cache hit inside the expiry window")
	}
	if diff := cmp.Diff(sampleRecords(), got); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestEntryExpiresAfterWindow(t *testing.T) {
	c := NewFileCache(t.TempDir())
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return base }

	if err := c.Put("cat videos", sampleRecords()); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	c.now = func() time.Time { return base.Add(9 * time.Minute) }
	if _, ok, _ := c.Get("cat videos"); !ok {
		t.Fatal("entry expired before the window elapsed")
	}

	c.now = func() time.Time { return base.Add(11 * time.Minute) }
	if _, ok, _ := c.Get("cat videos"); ok {
		t.Fatal("entry survived past the expiry window")
	}
	if _, err := os.Stat(c.pathFor("cat videos")); !os.IsNotExist(err) {
		t.Fatal("expired entry was not removed")
	}
}

func TestDigestKeys(t *testing.T) {
	if Key("cat videos") != Key("cat videos") {
		t.Fatal("same query must map to the same slot")
	}
	if Key("cat videos") == Key("dog videos") {
		t.Fatal("distinct queries mapped to the same slot")
	}
	// The slot name must be filesystem safe no matter what was typed.
	if got := Key("a/b \\ c:*?"); len(got) != 64 {
		t.Fatalf("Key() = %q, want 64 hex chars", got)
	}
}

func TestCorruptedEntryIsAMiss(t *testing.T) {
	c := NewFileCache(t.TempDir())
	if err := c.Put("cat videos", sampleRecords()); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := os.WriteFile(c.pathFor("cat videos"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, ok, err := c.Get("cat videos")
	if err != nil {
		t.Fatalf("corruption must not be fatal, got %v", err)
	}
	if ok {
		t.Fatal("corrupted entry served as a hit")
	}
}

func TestPutOverwritesPriorEntry(t *testing.T) {
	c := NewFileCache(t.TempDir())
	if err := c.Put("q", sampleRecords()); err != nil {
		t.Fatal(err)
	}
	replacement := []domain.VideoRecord{{ID: "zzz", Title: "Only"}}
	if err := c.Put("q", replacement); err != nil {
		t.Fatal(err)
	}

	got, ok, _ := c.Get("q")
	if !ok {
		t.Fatal("expected hit")
	}
	if diff := cmp.Diff(replacement, got); diff != "" {
		t.Fatalf("overwrite merged instead of replacing (-want +got):\n%s", diff)
	}
}

func TestMissingEntryIsAMiss(t *testing.T) {
	c := NewFileCache(t.TempDir())
	if _, ok, err := c.Get("never stored"); ok || err != nil {
		t.Fatalf("Get() = ok=%v err=%v, want miss without error", ok, err)
	}
}
