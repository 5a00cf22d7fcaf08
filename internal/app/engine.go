package app

import (
	"context"
	"time"

	"github.com/bft-labs/pomo/internal/domain"
	"github.com/bft-labs/pomo/internal/ports"
	"github.com/bft-labs/pomo/pkg/log"
)

// DefaultTickInterval is the cadence of progress ticks within an interval.
const DefaultTickInterval = 5 * time.Second

// breaksBeforeLongBreak is the number of short breaks after which the next
// completed pomodoro is followed by a long break.
const breaksBeforeLongBreak = 3

// Engine is the pomodoro cycle state machine.
//
// The engine state is owned by the goroutine calling RunOneCycle or Run;
// nothing else may call into the engine while a cycle is running.
type Engine struct {
	config       domain.CycleConfig
	tickInterval time.Duration
	sleep        func(time.Duration)
	logger       log.Logger

	observers []ports.Observer
	events    *Mailbox[domain.Event]

	completedPomodoros   uint64
	breaksSinceLongBreak uint8
	currentState         domain.PomodoroState
	nextState            domain.PomodoroState
}

// EngineOption configures optional behavior of an Engine.
type EngineOption func(*Engine)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger log.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithTickInterval overrides the progress tick cadence.
// Non-positive values are ignored.
func WithTickInterval(d time.Duration) EngineOption {
	return func(e *Engine) {
		if d > 0 {
			e.tickInterval = d
		}
	}
}

// WithSleeper replaces time.Sleep as the engine's wait primitive.
func WithSleeper(sleep func(time.Duration)) EngineOption {
	return func(e *Engine) {
		if sleep != nil {
			e.sleep = sleep
		}
	}
}

// NewEngine builds an engine that starts with a pomodoro and no history.
// Negative durations in config are clamped to zero; construction never fails.
func NewEngine(config domain.CycleConfig, opts ...EngineOption) *Engine {
	e := &Engine{
		config:       config.Clamped(),
		tickInterval: DefaultTickInterval,
		sleep:        time.Sleep,
		logger:       log.Discard,
		currentState: domain.Pomodoro,
		nextState:    domain.Pomodoro,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ResumeFrom builds an engine seeded with completedPomodoros.
// Only the count survives: the break counter starts from zero and the next
// interval is a pomodoro.
func ResumeFrom(completedPomodoros uint64, config domain.CycleConfig, opts ...EngineOption) *Engine {
	e := NewEngine(config, opts...)
	e.completedPomodoros = completedPomodoros
	return e
}

// RegisterObserver appends o to the observers notified after every interval.
// It must be called before the engine starts running.
func (e *Engine) RegisterObserver(o ports.Observer) {
	e.observers = append(e.observers, o)
}

// Events returns the engine's outbound event channel, creating it on first
// use. Ticks and completions are queued without blocking the engine's clock.
// The channel is closed when Run returns.
func (e *Engine) Events() <-chan domain.Event {
	if e.events == nil {
		e.events = NewMailbox[domain.Event]()
	}
	return e.events.Out()
}

// CompletedPomodoros returns the number of completed pomodoro intervals.
func (e *Engine) CompletedPomodoros() uint64 { return e.completedPomodoros }

// CurrentState returns the state of the interval that ran last (or is running).
func (e *Engine) CurrentState() domain.PomodoroState { return e.currentState }

// NextState returns the state the next cycle will run.
func (e *Engine) NextState() domain.PomodoroState { return e.nextState }

// RunOneCycle runs exactly one interval, blocking for its configured duration.
func (e *Engine) RunOneCycle() {
	running := e.nextState

	switch running {
	case domain.Pomodoro:
		if e.breaksSinceLongBreak == breaksBeforeLongBreak {
			e.nextState = domain.LongBreak
		} else {
			e.nextState = domain.ShortBreak
		}
	case domain.ShortBreak:
		e.nextState = domain.Pomodoro
		e.breaksSinceLongBreak++
	case domain.LongBreak:
		e.nextState = domain.Pomodoro
		e.breaksSinceLongBreak = 0
	}
	e.currentState = running

	e.logger.Debug("interval started",
		log.Stringer("state", running),
		log.Duration("duration", e.config.Duration(running)),
	)

	e.wait(e.config.Seconds(running))

	if running == domain.Pomodoro {
		e.completedPomodoros++
	}

	e.logger.Info("interval completed",
		log.Stringer("state", running),
		log.Stringer("next", e.nextState),
		log.Uint64("completed_pomodoros", e.completedPomodoros),
	)

	e.notify()
	e.emit(domain.Completed(e.nextState, e.completedPomodoros))
}

// Run is the driver loop. Each Proceed read from advance runs one cycle;
// Cancel is accepted and ignored. Run returns nil when advance is closed,
// or ctx.Err() when ctx is done between cycles. A running interval is never
// cut short. The event channel is closed on return.
func (e *Engine) Run(ctx context.Context, advance <-chan domain.Advance) error {
	defer e.closeEvents()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case req, ok := <-advance:
			if !ok {
				e.logger.Debug("advance channel closed, driver loop exiting")
				return nil
			}
			switch req {
			case domain.Proceed:
				e.RunOneCycle()
			case domain.Cancel:
				e.logger.Debug("cancel request ignored")
			default:
				e.logger.Warn("unknown advance request", log.Stringer("request", req))
			}
		}
	}
}

// wait blocks for secs seconds, emitting a tick at the start and after every
// tick interval. The last period may be shorter than the tick interval and is
// not reported as its own tick.
func (e *Engine) wait(secs uint64) {
	step := uint64(e.tickInterval / time.Second)
	if step == 0 {
		step = 1
	}

	remaining := secs
	e.emit(domain.Tick(remaining))
	for remaining > step {
		e.sleep(time.Duration(step) * time.Second)
		remaining -= step
		e.emit(domain.Tick(remaining))
	}
	if remaining > 0 {
		e.sleep(time.Duration(remaining) * time.Second)
	}
}

func (e *Engine) emit(ev domain.Event) {
	if e.events == nil {
		return
	}
	e.events.Send(ev)
}

func (e *Engine) closeEvents() {
	if e.events != nil {
		e.events.Close()
	}
}
