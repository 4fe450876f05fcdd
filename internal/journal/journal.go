// Package journal records applied inventory mutations in a SQLite
// database. The journal is derived state: the JSON inventory file stays
// the source of truth, and journal failures never block an operation.
package journal

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// DefaultFileName is the journal database file inside the data directory.
const DefaultFileName = "journal.db"

// Operation names recorded in the journal.
const (
	OpAdd    = "add"
	OpRemove = "remove"
)

// Event is one recorded mutation.
type Event struct {
	EventID    string
	RecordedAt time.Time
	Op         string
	Item       string
	Delta      int64
	Remaining  int64
}

// Journal is an append-only log of applied mutations.
type Journal struct {
	db *sql.DB
}

// Open creates the journal database at path, creating the parent
// directory and schema as needed.
func Open(path string) (*Journal, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create journal dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("init journal schema: %w", err)
	}
	return &Journal{db: db}, nil
}

// Record appends one mutation event. The event id is a UUIDv7, so ids
// sort in creation order.
func (j *Journal) Record(op, item string, delta, remaining int64) error {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generate event id: %w", err)
	}

	_, err = j.db.Exec(
		`INSERT INTO events (event_id, recorded_at, op, item, delta, remaining)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id.String(),
		time.Now().UTC().Format(time.RFC3339Nano),
		op, item, delta, remaining,
	)
	if err != nil {
		return fmt.Errorf("record event: %w", err)
	}
	return nil
}

// List returns recorded events, newest first. An empty item matches all
// items; limit <= 0 means no limit.
func (j *Journal) List(item string, limit int) ([]Event, error) {
	query := `SELECT event_id, recorded_at, op, item, delta, remaining
	          FROM events`
	var args []any
	if item != "" {
		query += ` WHERE item = ?`
		args = append(args, item)
	}
	query += ` ORDER BY event_id DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := j.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var (
			e  Event
			at string
		)
		if err := rows.Scan(&e.EventID, &at, &e.Op, &e.Item, &e.Delta, &e.Remaining); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		ts, err := time.Parse(time.RFC3339Nano, at)
		if err != nil {
			return nil, fmt.Errorf("parse event time: %w", err)
		}
		e.RecordedAt = ts
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// Close releases the underlying database handle.
func (j *Journal) Close() error {
	return j.db.Close()
}
