package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/kapral18/ytsurf/internal/domain"
	"github.com/kapral18/ytsurf/internal/ports"
)

// SQLiteStore persists the history log in a SQLite database. It honors the
// same contract as FileStore: insert-or-promote by ID, most-recent-first
// order, capacity trim on every write.
type SQLiteStore struct {
	db       *sql.DB
	path     string
	capacity int
	mu       sync.Mutex
	log      ports.Logger
	now      func() time.Time
}

// NewSQLiteStore creates (or opens) <cache root>/history.db. If the database
// cannot be opened the store degrades to the JSON file backend.
func NewSQLiteStore(root string, capacity int, log ports.Logger) *SQLiteStore {
	path := filepath.Join(root, "history.db")
	store := &SQLiteStore{path: path, capacity: capacity, log: log, now: time.Now}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return store
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return store
	}
	store.db = db
	if err := store.init(); err != nil {
		store.db = nil
	}
	return store
}

func (s *SQLiteStore) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS selections (
		id TEXT PRIMARY KEY,
		title TEXT,
		author TEXT,
		duration TEXT,
		views TEXT,
		published TEXT,
		thumbnail TEXT,
		added_at TEXT
	);`)
	return err
}

func (s *SQLiteStore) fallback() *FileStore {
	return NewFileStore(filepath.Dir(s.path), s.capacity, s.log)
}

// RecordSelection implements ports.HistoryRepository.
func (s *SQLiteStore) RecordSelection(record domain.VideoRecord) error {
	if record.ID == "" {
		return nil
	}
	if s.db == nil {
		return s.fallback().RecordSelection(record)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO selections
		(id, title, author, duration, views, published, thumbnail, added_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title=excluded.title,
			author=excluded.author,
			duration=excluded.duration,
			views=excluded.views,
			published=excluded.published,
			thumbnail=excluded.thumbnail,
			added_at=excluded.added_at`,
		record.ID, record.Title, record.Author, record.Duration,
		record.Views, record.Published, record.Thumbnail,
		s.now().Format(time.RFC3339Nano),
	)
	if err != nil {
		return err
	}
	if s.capacity > 0 {
		_, err = tx.Exec(`DELETE FROM selections WHERE id NOT IN (
			SELECT id FROM selections ORDER BY added_at DESC LIMIT ?
		)`, s.capacity)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// List implements ports.HistoryRepository.
func (s *SQLiteStore) List() ([]domain.VideoRecord, error) {
	if s.db == nil {
		return s.fallback().List()
	}
	rows, err := s.db.Query(`SELECT id, title, author, duration, views,
		published, thumbnail, added_at
		FROM selections ORDER BY added_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.VideoRecord
	for rows.Next() {
		var rec domain.VideoRecord
		var added string
		if err := rows.Scan(&rec.ID, &rec.Title, &rec.Author, &rec.Duration,
			&rec.Views, &rec.Published, &rec.Thumbnail, &added); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339Nano, added); err == nil {
			rec.AddedAt = t
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear drops all history entries.
func (s *SQLiteStore) Clear() error {
	if s.db == nil {
		return s.fallback().Clear()
	}
	_, err := s.db.Exec(`DELETE FROM selections`)
	return err
}

var _ ports.HistoryRepository = (*SQLiteStore)(nil)
