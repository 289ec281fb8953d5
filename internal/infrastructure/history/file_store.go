package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/renameio/v2"

	"github.com/kapral18/ytsurf/internal/domain"
	"github.com/kapral18/ytsurf/internal/ports"
)

// FileStore persists the history log as a single JSON array, most recent
// first. Every mutation rewrites the whole file through a temp-file-and-
// rename so overlapping invocations cannot corrupt it; last writer wins.
type FileStore struct {
	path     string
	capacity int
	mu       sync.Mutex
	log      ports.Logger
	now      func() time.Time
}

// NewFileStore creates a history store at <cache root>/history.json.
func NewFileStore(root string, capacity int, log ports.Logger) *FileStore {
	return &FileStore{
		path:     filepath.Join(root, "history.json"),
		capacity: capacity,
		log:      log,
		now:      time.Now,
	}
}

// RecordSelection performs insert-or-promote: any existing entry with the
// same ID is removed, the record is prepended with a fresh timestamp, and the
// log is truncated to capacity.
func (f *FileStore) RecordSelection(record domain.VideoRecord) error {
	if record.ID == "" {
		return nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	records := f.load()
	kept := records[:0]
	for _, r := range records {
		if r.ID != record.ID {
			kept = append(kept, r)
		}
	}
	record.AddedAt = f.now()
	updated := append([]domain.VideoRecord{record}, kept...)
	if f.capacity > 0 && len(updated) > f.capacity {
		updated = updated[:f.capacity]
	}
	return f.write(updated)
}

// List returns the log in stored (most-recent-first) order. A missing or
// unreadable log is no history, never a fatal error.
func (f *FileStore) List() ([]domain.VideoRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load(), nil
}

// Clear removes the history file.
func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

func (f *FileStore) load() []domain.VideoRecord {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if !os.IsNotExist(err) {
			f.log.Warn("history unreadable, treating as empty", map[string]interface{}{
				"path": f.path, "error": err.Error(),
			})
		}
		return nil
	}
	var records []domain.VideoRecord
	if err := json.Unmarshal(data, &records); err != nil {
		// Corrupted log: reset to empty rather than failing the run.
		f.log.Warn("history corrupted, resetting", map[string]interface{}{
			"path": f.path, "error": err.Error(),
		})
		_ = os.Remove(f.path)
		return nil
	}
	return records
}

func (f *FileStore) write(records []domain.VideoRecord) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return &domain.ResourceError{Path: filepath.Dir(f.path), Err: err}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	if err := renameio.WriteFile(f.path, data, 0o644); err != nil {
		return &domain.ResourceError{Path: f.path, Err: err}
	}
	return nil
}

var _ ports.HistoryRepository = (*FileStore)(nil)
