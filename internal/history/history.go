// Package history keeps an audit trail of every resolved record in a
// SQLite database. It records what happened; it restores nothing.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"reclaim/internal/catalog"
	"reclaim/internal/session"
)

// DB manages the SQLite outcome history.
type DB struct {
	db        *sql.DB
	sessionID string
}

// Entry is a single audited outcome row.
type Entry struct {
	ID             int64
	SessionID      string
	Timestamp      time.Time
	Action         string
	Path           string
	FileName       string
	Location       string
	Size           int64
	Tier           string
	Reason         string
	Recommendation string
	ErrorMessage   string
	CreatedAt      time.Time
}

// Open creates the connection, the parent directory and the schema.
// Every DB handle gets a fresh session id; all rows it records share
// that id.
func Open(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory %s: %w", dir, err)
		}
	}

	// file: prefix with _loc=auto enables automatic DATETIME parsing
	db, err := sql.Open("sqlite3", "file:"+dbPath+"?_loc=auto")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if err != nil {
			db.Close()
		}
	}()

	// A trivial query forces creation of the database file, which
	// Ping() would not.
	if _, err = db.Exec("SELECT 1"); err != nil {
		return nil, fmt.Errorf("initialize database (check permissions on %s): %w", dbPath, err)
	}
	if _, err = db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("enable WAL: %w", err)
	}
	if _, err = db.Exec("PRAGMA synchronous=NORMAL"); err != nil {
		return nil, fmt.Errorf("set synchronous mode: %w", err)
	}

	h := &DB{db: db, sessionID: uuid.NewString()}
	if err = h.initSchema(); err != nil {
		return nil, err
	}

	err = nil
	return h, nil
}

func (h *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS outcomes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		timestamp DATETIME NOT NULL,
		action TEXT NOT NULL,
		path TEXT NOT NULL,
		file_name TEXT,
		location TEXT,
		size INTEGER NOT NULL,
		tier TEXT NOT NULL,
		reason TEXT,
		recommendation TEXT,
		error_message TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_outcomes_session ON outcomes(session_id);
	CREATE INDEX IF NOT EXISTS idx_outcomes_timestamp ON outcomes(timestamp);
	CREATE INDEX IF NOT EXISTS idx_outcomes_action ON outcomes(action);
	CREATE INDEX IF NOT EXISTS idx_outcomes_tier ON outcomes(tier);
	CREATE INDEX IF NOT EXISTS idx_outcomes_size ON outcomes(size);

	CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	INSERT OR IGNORE INTO schema_version (version) VALUES (1);
	`

	_, err := h.db.Exec(schema)
	return err
}

// SessionID returns the uuid stamped on rows recorded by this handle.
func (h *DB) SessionID() string { return h.sessionID }

// Record implements session.Recorder.
func (h *DB) Record(rec catalog.FileRecord, action session.Action) error {
	query := `
	INSERT INTO outcomes (
		session_id, timestamp, action, path, file_name, location,
		size, tier, reason, recommendation, error_message
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := h.db.Exec(
		query,
		h.sessionID,
		time.Now(),
		string(action),
		rec.Path,
		filepath.Base(rec.Path),
		rec.Location,
		rec.Size,
		rec.Tier.String(),
		rec.Reason,
		rec.Recommendation,
		rec.Err,
	)
	return err
}

// Close closes the database connection.
func (h *DB) Close() error {
	return h.db.Close()
}

// Vacuum optimizes the database.
func (h *DB) Vacuum() error {
	_, err := h.db.Exec("VACUUM")
	return err
}
