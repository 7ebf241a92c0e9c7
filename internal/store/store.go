// Package store persists the workspace to a local SQLite database as a
// single JSON document under a fixed key. SQLite serves as a durable
// key-value store here; the in-memory workspace stays the source of
// truth and writes are best-effort.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/dhuffy9/SemesterSync/internal/schedule"
)

// workspaceKey is the namespace key the serialized workspace lives under.
const workspaceKey = "semestersync.workspace"

// ErrNotFound means no workspace has been persisted yet.
var ErrNotFound = errors.New("no saved workspace")

// PersistenceError wraps a storage read/write failure so callers can
// distinguish it from validation errors.
type PersistenceError struct {
	Op  string // "load" or "save"
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// WorkspaceStore manages SQLite persistence for the workspace.
type WorkspaceStore struct {
	db *sql.DB
}

func defaultDBPath() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	dir := filepath.Join(dataHome, "semestersync")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "semestersync.db"), nil
}

// NewWorkspaceStore opens (or creates) the SQLite database and ensures
// the schema exists.
func NewWorkspaceStore(dbPath string) (*WorkspaceStore, error) {
	if dbPath == "" {
		var err error
		dbPath, err = defaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("determine db path: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS state (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL DEFAULT (datetime('now'))
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &WorkspaceStore{db: db}, nil
}

// Save serializes the full workspace and upserts it under the fixed key.
func (s *WorkspaceStore) Save(w *schedule.Workspace) error {
	data, err := json.Marshal(encodeWorkspace(w))
	if err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}
	_, err = s.db.Exec(
		`INSERT INTO state (key, value, updated_at) VALUES (?, ?, datetime('now'))
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		workspaceKey, string(data),
	)
	if err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}
	return nil
}

// Load reads the persisted workspace back. Returns a PersistenceError
// wrapping ErrNotFound when nothing has been saved yet, or wrapping the
// decode failure when the stored document is corrupt.
func (s *WorkspaceStore) Load() (*schedule.Workspace, error) {
	var data string
	err := s.db.QueryRow("SELECT value FROM state WHERE key = ?", workspaceKey).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &PersistenceError{Op: "load", Err: ErrNotFound}
	}
	if err != nil {
		return nil, &PersistenceError{Op: "load", Err: err}
	}

	var doc workspaceDoc
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return nil, &PersistenceError{Op: "load", Err: fmt.Errorf("decode workspace: %w", err)}
	}
	w, err := doc.decode()
	if err != nil {
		return nil, &PersistenceError{Op: "load", Err: err}
	}
	return w, nil
}

// LoadOrDefault loads the saved workspace, degrading to a single default
// schedule when nothing usable is stored. The returned error is non-nil
// only for genuinely corrupt state, so the caller can log it; the
// returned workspace is always usable.
func (s *WorkspaceStore) LoadOrDefault(now time.Time) (*schedule.Workspace, error) {
	w, err := s.Load()
	if err == nil {
		return w, nil
	}
	if errors.Is(err, ErrNotFound) {
		return schedule.NewWorkspace(now), nil
	}
	return schedule.NewWorkspace(now), err
}

// Close closes the database connection.
func (s *WorkspaceStore) Close() error {
	return s.db.Close()
}
