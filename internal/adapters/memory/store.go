// Package memory provides an in-process record store.
//
// It backs the "none" record format and the tests of everything that
// depends on ports.RecordStore.
package memory

import (
	"errors"
	"fmt"
	"sync"

	"github.com/bft-labs/pomo/internal/domain"
)

// Store keeps rows in memory. Line 1 is the header row.
type Store struct {
	mu   sync.Mutex
	rows [][]string

	// FailNext makes the next N write calls fail. Used by tests.
	FailNext int
}

// ErrInjected is returned by writes while FailNext is positive.
var ErrInjected = errors.New("memory store: injected failure")

// NewStore returns an empty, uninitialized store.
func NewStore() *Store {
	return &Store{}
}

// EnsureInitialized implements ports.RecordStore.
func (s *Store) EnsureInitialized(headers []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.rows) == 0 {
		s.rows = append(s.rows, clone(headers))
	}
	return nil
}

// Append implements ports.RecordStore.
func (s *Store) Append(fields []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.injected(); err != nil {
		return err
	}
	s.rows = append(s.rows, clone(fields))
	return nil
}

// OverwriteAt implements ports.RecordStore.
func (s *Store) OverwriteAt(line int, fields []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.injected(); err != nil {
		return err
	}
	if line < 2 || line > len(s.rows) {
		return fmt.Errorf("overwrite line %d: out of range", line)
	}
	s.rows[line-1] = clone(fields)
	return nil
}

// LastCompletedCount implements ports.RecordStore.
func (s *Store) LastCompletedCount() (uint64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.rows) < 2 {
		return 0, false, nil
	}
	last := s.rows[len(s.rows)-1]
	if len(last) == 0 {
		return 0, false, domain.ErrMalformedRecord
	}
	n, err := domain.ParseCount(last[len(last)-1])
	if err != nil {
		return 0, false, err
	}
	return n, true, nil
}

// LastRecord implements ports.RecordStore.
func (s *Store) LastRecord() (string, int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.rows) < 2 {
		return "", 0, false, nil
	}
	last := s.rows[len(s.rows)-1]
	if len(last) == 0 {
		return "", 0, false, domain.ErrMalformedRecord
	}
	return last[0], len(s.rows), true, nil
}

// Rows returns a copy of all rows, header included.
func (s *Store) Rows() [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]string, len(s.rows))
	for i, r := range s.rows {
		out[i] = clone(r)
	}
	return out
}

func (s *Store) injected() error {
	if s.FailNext > 0 {
		s.FailNext--
		return ErrInjected
	}
	return nil
}

func clone(fields []string) []string {
	return append([]string(nil), fields...)
}
