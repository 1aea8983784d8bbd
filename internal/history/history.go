// Package history persists the list of known project roots.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store records project roots and the last cmk action run in each.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database under stateDir.
func Open(stateDir string) (*Store, error) {
	if err := os.MkdirAll(stateDir, 0o700); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}

	dbPath := filepath.Join(stateDir, "history.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS projects (
		root           TEXT PRIMARY KEY,
		name           TEXT NOT NULL,
		first_seen     DATETIME NOT NULL,
		last_action    TEXT NOT NULL,
		last_action_at DATETIME NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Entry is one known project root.
type Entry struct {
	Root         string
	Name         string
	FirstSeen    time.Time
	LastAction   string
	LastActionAt time.Time
}

// Record upserts a project root with the action just performed in it.
func (s *Store) Record(root, name, action string) error {
	now := time.Now().UTC()
	_, err := s.db.Exec(`
		INSERT INTO projects (root, name, first_seen, last_action, last_action_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(root) DO UPDATE SET
			name = excluded.name,
			last_action = excluded.last_action,
			last_action_at = excluded.last_action_at`,
		root, name, now, action, now,
	)
	if err != nil {
		return fmt.Errorf("record project: %w", err)
	}
	return nil
}

// List returns all known projects, most recently used first.
func (s *Store) List() ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT root, name, first_seen, last_action, last_action_at
		FROM projects ORDER BY last_action_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Root, &e.Name, &e.FirstSeen, &e.LastAction, &e.LastActionAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Forget removes a project root from the history.
func (s *Store) Forget(root string) error {
	_, err := s.db.Exec("DELETE FROM projects WHERE root = ?", root)
	if err != nil {
		return fmt.Errorf("forget project: %w", err)
	}
	return nil
}
