package domain

import (
	"fmt"
	"strconv"
	"time"
)

// RecordDateLayout is the layout of the date column of persisted records.
const RecordDateLayout = "2006-01-02"

// RecordHeaders are the column names written when a record store is created.
var RecordHeaders = []string{"date", "pomodoros"}

// Record is one day of completed pomodoros.
type Record struct {
	Date      string
	Pomodoros uint64
}

// NewRecord builds the record for the day containing t.
func NewRecord(t time.Time, pomodoros uint64) Record {
	return Record{Date: t.Format(RecordDateLayout), Pomodoros: pomodoros}
}

// Fields returns the record as store columns.
func (r Record) Fields() []string {
	return []string{r.Date, strconv.FormatUint(r.Pomodoros, 10)}
}

// ParseCount parses a stored pomodoro count.
func ParseCount(field string) (uint64, error) {
	n, err := strconv.ParseUint(field, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: count %q", ErrMalformedRecord, field)
	}
	return n, nil
}
