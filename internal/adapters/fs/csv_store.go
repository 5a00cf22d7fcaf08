// Package fs provides file system backed adapters.
package fs

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bft-labs/pomo/internal/domain"
)

// CSVExt is the extension of CSV record files.
const CSVExt = ".csv"

// CSVStore implements ports.RecordStore on a CSV file.
// Line numbers are 1-based file lines; line 1 holds the headers.
type CSVStore struct {
	dir  string
	name string
}

// NewCSVStore creates a store for <dir>/<name>.csv.
func NewCSVStore(dir, name string) *CSVStore {
	return &CSVStore{dir: dir, name: name}
}

// Path returns the full path to the record file.
func (s *CSVStore) Path() string {
	return filepath.Join(s.dir, s.name+CSVExt)
}

// EnsureInitialized creates the directory and the file with headers.
// An existing file is left untouched.
func (s *CSVStore) EnsureInitialized(headers []string) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}

	f, err := os.OpenFile(s.Path(), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil
		}
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(headers); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// Append adds a record at the end of the file.
func (s *CSVStore) Append(fields []string) error {
	f, err := os.OpenFile(s.Path(), os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(fields); err != nil {
		f.Close()
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// OverwriteAt replaces the record on the given line.
// Uses atomic write (write to temp file, then rename).
func (s *CSVStore) OverwriteAt(line int, fields []string) error {
	rows, err := s.readAll()
	if err != nil {
		return err
	}
	if line < 2 || line > len(rows) {
		return fmt.Errorf("overwrite line %d of %s: out of range", line, s.Path())
	}
	rows[line-1] = fields

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return err
	}

	path := s.Path()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// LastCompletedCount returns the last field of the last record.
func (s *CSVStore) LastCompletedCount() (uint64, bool, error) {
	last, _, ok, err := s.last()
	if err != nil || !ok {
		return 0, false, err
	}
	n, err := domain.ParseCount(last[len(last)-1])
	if err != nil {
		return 0, false, err
	}
	return n, true, nil
}

// LastRecord returns the date of the last record and its line number.
func (s *CSVStore) LastRecord() (string, int, bool, error) {
	last, line, ok, err := s.last()
	if err != nil || !ok {
		return "", 0, false, err
	}
	return last[0], line, true, nil
}

func (s *CSVStore) last() ([]string, int, bool, error) {
	rows, err := s.readAll()
	if err != nil {
		return nil, 0, false, err
	}
	if len(rows) < 2 {
		return nil, 0, false, nil
	}
	last := rows[len(rows)-1]
	if len(last) == 0 {
		return nil, 0, false, domain.ErrMalformedRecord
	}
	return last, len(rows), true, nil
}

// readAll returns every row, header included. A missing file has no rows.
func (s *CSVStore) readAll() ([][]string, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedRecord, err)
	}
	return rows, nil
}
