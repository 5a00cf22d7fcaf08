// Package sqlite implements the record store on a SQLite database.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bft-labs/pomo/internal/domain"
	_ "modernc.org/sqlite"
)

// DBExt is the extension of SQLite record files.
const DBExt = ".db"

const schema = `
CREATE TABLE IF NOT EXISTS headers (
	position INTEGER PRIMARY KEY,
	name     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS records (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	date      TEXT NOT NULL,
	pomodoros INTEGER NOT NULL
);
`

// Store implements ports.RecordStore. Record locators are row ids.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (creating if needed) <dir>/<name>.db.
func Open(dir, name string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	path := filepath.Join(dir, name+DBExt)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1) // sqlite

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }

// EnsureInitialized stores the headers once.
func (s *Store) EnsureInitialized(headers []string) error {
	existing, err := s.headers()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()
	for i, h := range headers {
		if _, err := tx.Exec(`INSERT INTO headers (position, name) VALUES (?, ?)`, i, h); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// headers returns the stored column names in order.
func (s *Store) headers() ([]string, error) {
	rows, err := s.db.Query(`SELECT name FROM headers ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

// Append inserts a record.
func (s *Store) Append(fields []string) error {
	date, count, err := parseFields(fields)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`INSERT INTO records (date, pomodoros) VALUES (?, ?)`, date, count)
	return err
}

// OverwriteAt replaces the record with row id line.
func (s *Store) OverwriteAt(line int, fields []string) error {
	date, count, err := parseFields(fields)
	if err != nil {
		return err
	}
	res, err := s.db.Exec(`UPDATE records SET date = ?, pomodoros = ? WHERE id = ?`, date, count, line)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("overwrite record %d: not found", line)
	}
	return nil
}

// LastCompletedCount returns the count of the newest record.
func (s *Store) LastCompletedCount() (uint64, bool, error) {
	var count int64
	err := s.db.QueryRow(`SELECT pomodoros FROM records ORDER BY id DESC LIMIT 1`).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	if count < 0 {
		return 0, false, fmt.Errorf("%w: count %d", domain.ErrMalformedRecord, count)
	}
	return uint64(count), true, nil
}

// LastRecord returns the date and row id of the newest record.
func (s *Store) LastRecord() (string, int, bool, error) {
	var (
		id   int
		date string
	)
	err := s.db.QueryRow(`SELECT id, date FROM records ORDER BY id DESC LIMIT 1`).Scan(&id, &date)
	if errors.Is(err, sql.ErrNoRows) {
		return "", 0, false, nil
	}
	if err != nil {
		return "", 0, false, err
	}
	return date, id, true, nil
}

func parseFields(fields []string) (string, int64, error) {
	if len(fields) != 2 {
		return "", 0, fmt.Errorf("%w: want 2 fields, got %d", domain.ErrMalformedRecord, len(fields))
	}
	n, err := domain.ParseCount(fields[1])
	if err != nil {
		return "", 0, err
	}
	return fields[0], int64(n), nil
}
