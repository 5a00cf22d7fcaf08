// Package recorder persists completed-pomodoro counts.
//
// The Recorder is an engine observer. Notifications are handed to a
// dedicated goroutine through a mailbox so store I/O never delays the timer.
package recorder

import (
	"fmt"
	"time"

	"github.com/bft-labs/pomo/internal/app"
	"github.com/bft-labs/pomo/internal/domain"
	"github.com/bft-labs/pomo/internal/ports"
	"github.com/bft-labs/pomo/pkg/log"
)

type writeRequest struct {
	at        time.Time
	pomodoros uint64
}

// Recorder writes one record per day, keeping the day's latest count.
type Recorder struct {
	store  ports.RecordStore
	logger log.Logger
	now    func() time.Time
	sleep  func(time.Duration)

	maxAttempts int
	requests    *app.Mailbox[writeRequest]
	done        chan struct{}

	// owned by the worker goroutine
	last domain.Record
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithLogger sets the logger used for swallowed store errors.
func WithLogger(logger log.Logger) Option {
	return func(r *Recorder) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithClock replaces time.Now when dating records.
func WithClock(now func() time.Time) Option {
	return func(r *Recorder) {
		if now != nil {
			r.now = now
		}
	}
}

// WithRetry sets how many times a failed write is attempted and the sleep
// used between attempts.
func WithRetry(maxAttempts int, sleep func(time.Duration)) Option {
	return func(r *Recorder) {
		if maxAttempts > 0 {
			r.maxAttempts = maxAttempts
		}
		if sleep != nil {
			r.sleep = sleep
		}
	}
}

// New creates a Recorder for store and makes sure the store has headers.
// The worker goroutine starts immediately; call Close to flush it.
func New(store ports.RecordStore, opts ...Option) (*Recorder, error) {
	r := &Recorder{
		store:       store,
		logger:      log.Discard,
		now:         time.Now,
		sleep:       time.Sleep,
		maxAttempts: DefaultMaxAttempts,
		requests:    app.NewMailbox[writeRequest](),
		done:        make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := store.EnsureInitialized(domain.RecordHeaders); err != nil {
		r.requests.Close()
		close(r.done)
		return nil, fmt.Errorf("initialize record store: %w", err)
	}

	go r.run()
	return r, nil
}

// OnCycleComplete queues a write of completedPomodoros for today.
// Notifications with a zero count are ignored.
func (r *Recorder) OnCycleComplete(_ domain.PomodoroState, completedPomodoros uint64) {
	if completedPomodoros == 0 {
		return
	}
	if !r.requests.Send(writeRequest{at: r.now(), pomodoros: completedPomodoros}) {
		r.logger.Warn("recorder closed, dropping count", log.Uint64("pomodoros", completedPomodoros))
	}
}

// Close stops accepting notifications and waits for queued writes.
func (r *Recorder) Close() error {
	r.requests.Close()
	<-r.done
	return nil
}

func (r *Recorder) run() {
	defer close(r.done)
	for req := range r.requests.Out() {
		r.handle(req)
	}
}

func (r *Recorder) handle(req writeRequest) {
	rec := domain.NewRecord(req.at, req.pomodoros)
	if rec == r.last {
		return
	}

	b := newBackoff(DefaultBackoffInitial, DefaultBackoffMax, r.sleep)
	var err error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		if err = r.write(rec); err == nil {
			r.last = rec
			r.logger.Debug("record written",
				log.String("date", rec.Date),
				log.Uint64("pomodoros", rec.Pomodoros),
			)
			return
		}
		r.logger.Warn("record write failed",
			log.Err(err),
			log.Int("attempt", attempt),
		)
		if attempt < r.maxAttempts {
			b.Sleep()
		}
	}

	r.logger.Error("giving up on record write",
		log.Err(err),
		log.String("date", rec.Date),
		log.Uint64("pomodoros", rec.Pomodoros),
	)
}

// write overwrites today's record if it is the last one, else appends.
func (r *Recorder) write(rec domain.Record) error {
	date, line, ok, err := r.store.LastRecord()
	if err != nil {
		return fmt.Errorf("read last record: %w", err)
	}
	if ok && date == rec.Date {
		return r.store.OverwriteAt(line, rec.Fields())
	}
	return r.store.Append(rec.Fields())
}

// TodayCount returns the pomodoros recorded for the day containing now, or
// zero when the last record belongs to an earlier day.
func TodayCount(store ports.RecordStore, now time.Time) (uint64, error) {
	date, _, ok, err := store.LastRecord()
	if err != nil {
		return 0, fmt.Errorf("read last record: %w", err)
	}
	if !ok || date != now.Format(domain.RecordDateLayout) {
		return 0, nil
	}
	count, ok, err := store.LastCompletedCount()
	if err != nil {
		return 0, fmt.Errorf("read last count: %w", err)
	}
	if !ok {
		return 0, nil
	}
	return count, nil
}
