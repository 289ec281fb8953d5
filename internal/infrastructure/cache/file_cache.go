package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/renameio/v2"

	"github.com/kapral18/ytsurf/internal/domain"
	"github.com/kapral18/ytsurf/internal/ports"
)

// Expiry is the fixed freshness window for a cached result set.
const Expiry = 10 * time.Minute

// FileCache stores search result sets as JSON blobs addressed by a SHA-256
// digest of the exact query text. Entries are immutable once written: a
// refetch fully replaces the file via an atomic rename, never merges. A
// corrupted or partially written entry reads as a miss.
type FileCache struct {
	dir string
	mu  sync.Mutex
	ttl time.Duration
	now func() time.Time
}

type entry struct {
	Query     string               `json:"query"`
	CreatedAt time.Time            `json:"createdAt"`
	Records   []domain.VideoRecord `json:"records"`
}

// NewFileCache returns a cache rooted under <cache root>/results.
func NewFileCache(root string) *FileCache {
	return &FileCache{
		dir: filepath.Join(root, "results"),
		ttl: Expiry,
		now: time.Now,
	}
}

// Get retrieves a cached result set if present and inside the expiry window.
func (c *FileCache) Get(query string) ([]domain.VideoRecord, bool, error) {
	if query == "" {
		return nil, false, nil
	}
	path := c.pathFor(query)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		// Corrupted entry: drop it and fall through to a live fetch.
		_ = os.Remove(path)
		return nil, false, nil
	}
	if c.now().Sub(e.CreatedAt) > c.ttl {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return e.Records, true, nil
}

// Put persists the full record list, overwriting any prior entry.
func (c *FileCache) Put(query string, records []domain.VideoRecord) error {
	if query == "" {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return &domain.ResourceError{Path: c.dir, Err: err}
	}
	data, err := json.Marshal(entry{
		Query:     query,
		CreatedAt: c.now(),
		Records:   records,
	})
	if err != nil {
		return err
	}
	if err := renameio.WriteFile(c.pathFor(query), data, 0o644); err != nil {
		return &domain.ResourceError{Path: c.pathFor(query), Err: err}
	}
	return nil
}

// Dir exposes the cache directory path.
func (c *FileCache) Dir() string {
	return c.dir
}

// Clear removes all cached result sets.
func (c *FileCache) Clear() error {
	return os.RemoveAll(c.dir)
}

// Key derives the hex-encoded digest used as the filename component for a
// query. Identical queries always map to the same slot, and the encoding is
// filesystem-safe regardless of what the user typed.
func Key(query string) string {
	sum := sha256.Sum256([]byte(query))
	return hex.EncodeToString(sum[:])
}

func (c *FileCache) pathFor(query string) string {
	return filepath.Join(c.dir, Key(query)+".json")
}

var _ ports.CacheRepository = (*FileCache)(nil)
