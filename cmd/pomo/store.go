package main

import (
	"fmt"

	"github.com/bft-labs/pomo/internal/adapters/fs"
	"github.com/bft-labs/pomo/internal/adapters/memory"
	"github.com/bft-labs/pomo/internal/adapters/sqlite"
	"github.com/bft-labs/pomo/internal/cliconfig"
	"github.com/bft-labs/pomo/internal/domain"
	"github.com/bft-labs/pomo/internal/ports"
)

// recordStore is an opened store plus the file it lives in.
// path is empty for the in-memory store.
type recordStore struct {
	ports.RecordStore
	path  string
	close func() error
}

func openStore(cfg cliconfig.Config) (*recordStore, error) {
	switch cfg.RecordFormat {
	case cliconfig.FormatCSV:
		s := fs.NewCSVStore(cfg.RecordDir, cfg.RecordName)
		return &recordStore{RecordStore: s, path: s.Path(), close: func() error { return nil }}, nil
	case cliconfig.FormatSQLite:
		s, err := sqlite.Open(cfg.RecordDir, cfg.RecordName)
		if err != nil {
			return nil, err
		}
		return &recordStore{RecordStore: s, path: s.Path(), close: s.Close}, nil
	case cliconfig.FormatNone:
		return &recordStore{RecordStore: memory.NewStore(), close: func() error { return nil }}, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownRecordFormat, cfg.RecordFormat)
	}
}

func (s *recordStore) Close() error { return s.close() }
