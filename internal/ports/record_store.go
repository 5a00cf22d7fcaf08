package ports

// RecordStore persists completed-pomodoro records as rows of string fields.
//
// Rows are addressed by a store-specific locator ("line"). File based stores
// use 1-based line numbers with the header on line 1; database stores use
// their row id. A locator returned by LastRecord is always accepted by
// OverwriteAt.
type RecordStore interface {
	// EnsureInitialized creates the store with the given headers if it does
	// not exist yet. An existing store is left untouched.
	EnsureInitialized(headers []string) error

	// Append adds a record after the last one.
	Append(fields []string) error

	// OverwriteAt replaces the record at line.
	OverwriteAt(line int, fields []string) error

	// LastCompletedCount returns the last field of the last record.
	// ok is false when the store holds no records.
	LastCompletedCount() (count uint64, ok bool, err error)

	// LastRecord returns the first field of the last record and its locator.
	// ok is false when the store holds no records.
	LastRecord() (date string, line int, ok bool, err error)
}
