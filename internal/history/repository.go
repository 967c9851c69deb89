// Package history keeps a local log of settled quote fetches.
//
// Entries are written only when the record-history setting is on. They are
// never read back as a quote source.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"nathanbeddoewebdev/quotebox/internal/database"
)

// timeLayout is fixed-width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Repository defines the persistence interface for history entries.
type Repository interface {
	Save(entry *Entry) error
	List(limit int) ([]Entry, error)
	ListBySource(source string, limit int) ([]Entry, error)
	Prune(olderThan time.Duration) (int64, error)
	Close() error
}

// SQLiteRepository implements Repository backed by a local SQLite database.
type SQLiteRepository struct {
	db *sql.DB
}

// Open creates or opens the history repository at the default path.
func Open() (*SQLiteRepository, error) {
	path, err := database.DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	return OpenAt(path)
}

// migrations is the history schema, one entry per version.
var migrations = []string{
	`CREATE TABLE quote_history (
        id          INTEGER PRIMARY KEY AUTOINCREMENT,
        timestamp   TEXT    NOT NULL,
        quote       TEXT    NOT NULL,
        author      TEXT    NOT NULL,
        color       TEXT    NOT NULL DEFAULT '',
        source      TEXT    NOT NULL,
        detail      TEXT    NOT NULL DEFAULT '',
        duration_ms INTEGER NOT NULL DEFAULT 0
    );
    CREATE INDEX idx_quote_history_timestamp ON quote_history(timestamp);
    CREATE INDEX idx_quote_history_source ON quote_history(source);`,
}

// OpenAt creates or opens a history database at the given path.
func OpenAt(path string) (*SQLiteRepository, error) {
	db, err := database.Open(path, migrations...)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

// Save inserts a new entry, assigning its ID and, if unset, its timestamp.
func (r *SQLiteRepository) Save(entry *Entry) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	result, err := r.db.Exec(`
        INSERT INTO quote_history (timestamp, quote, author, color, source, detail, duration_ms)
        VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.Timestamp.UTC().Format(timeLayout), entry.Quote, entry.Author, entry.Color,
		entry.Source, entry.Detail, entry.DurationMs,
	)
	if err != nil {
		return fmt.Errorf("history: insert failed: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("history: failed to get last insert ID: %w", err)
	}
	entry.ID = id
	return nil
}

// List returns the most recent n entries, newest first.
func (r *SQLiteRepository) List(limit int) ([]Entry, error) {
	rows, err := r.db.Query(`
        SELECT id, timestamp, quote, author, color, source, detail, duration_ms
        FROM quote_history ORDER BY timestamp DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("history: query failed: %w", err)
	}
	defer rows.Close()
	return scanRows(rows)
}

// ListBySource returns the most recent n entries that settled on source.
func (r *SQLiteRepository) ListBySource(source string, limit int) ([]Entry, error) {
	rows, err := r.db.Query(`
        SELECT id, timestamp, quote, author, color, source, detail, duration_ms
        FROM quote_history WHERE source = ? ORDER BY timestamp DESC, id DESC LIMIT ?`, source, limit)
	if err != nil {
		return nil, fmt.Errorf("history: query failed: %w", err)
	}
	defer rows.Close()
	return scanRows(rows)
}

// Prune deletes entries older than the given duration.
func (r *SQLiteRepository) Prune(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan).Format(timeLayout)
	result, err := r.db.Exec(`DELETE FROM quote_history WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("history: delete failed: %w", err)
	}
	return result.RowsAffected()
}

// Close releases database resources.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func scanRows(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var entry Entry
		var timestampStr string
		err := rows.Scan(
			&entry.ID, &timestampStr, &entry.Quote, &entry.Author,
			&entry.Color, &entry.Source, &entry.Detail, &entry.DurationMs,
		)
		if err != nil {
			return nil, fmt.Errorf("history: scan failed: %w", err)
		}
		entry.Timestamp, _ = time.Parse(timeLayout, timestampStr)
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
