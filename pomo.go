// Package pomo provides an embeddable pomodoro cycle engine.
//
// The engine alternates pomodoros and breaks, with a long break after every
// fourth completed pomodoro. A driver loop runs one interval per Proceed
// request and reports progress on an event channel.
//
// Example usage:
//
//	engine := pomo.New(pomo.DefaultCycleConfig())
//	events := engine.Events()
//	advance := pomo.NewAdvanceChannel()
//	go engine.Run(ctx, advance.Requests())
//
//	advance.Proceed()
//	for ev := range events {
//	    fmt.Println(ev)
//	}
package pomo

import (
	"github.com/bft-labs/pomo/internal/app"
	"github.com/bft-labs/pomo/internal/domain"
	"github.com/bft-labs/pomo/internal/ports"
)

type (
	// Engine is the pomodoro cycle state machine.
	Engine = app.Engine

	// EngineOption configures optional behavior of an Engine.
	EngineOption = app.EngineOption

	// CycleConfig holds the length of each interval kind.
	CycleConfig = domain.CycleConfig

	// PomodoroState identifies the kind of an interval.
	PomodoroState = domain.PomodoroState

	// Advance is a request sent to the driver loop.
	Advance = domain.Advance

	// Event is a message emitted by the engine.
	Event = domain.Event

	// Observer is notified after every completed interval.
	Observer = ports.Observer

	// ObserverFunc adapts a function to Observer.
	ObserverFunc = ports.ObserverFunc

	// AdvanceChannel is the sending side of the advance channel.
	AdvanceChannel = app.AdvanceChannel
)

// Interval kinds.
const (
	Pomodoro   = domain.Pomodoro
	ShortBreak = domain.ShortBreak
	LongBreak  = domain.LongBreak
)

// Advance requests.
const (
	Proceed = domain.Proceed
	Cancel  = domain.Cancel
)

// Event kinds.
const (
	EventTick      = domain.EventTick
	EventCompleted = domain.EventCompleted
)

// Engine options.
var (
	WithLogger       = app.WithLogger
	WithTickInterval = app.WithTickInterval
	WithSleeper      = app.WithSleeper
)

// New creates an engine with no completed pomodoros.
func New(config CycleConfig, opts ...EngineOption) *Engine {
	return app.NewEngine(config, opts...)
}

// ResumeFrom creates an engine that continues counting from completedPomodoros.
func ResumeFrom(completedPomodoros uint64, config CycleConfig, opts ...EngineOption) *Engine {
	return app.ResumeFrom(completedPomodoros, config, opts...)
}

// DefaultCycleConfig returns 25 minute pomodoros with 5 and 15 minute breaks.
func DefaultCycleConfig() CycleConfig {
	return domain.DefaultCycleConfig()
}

// NewAdvanceChannel creates an unbounded advance channel.
func NewAdvanceChannel() *AdvanceChannel {
	return app.NewAdvanceChannel()
}
