package domain

import "fmt"

// Advance is a request sent from the presentation layer to the engine.
type Advance int

const (
	// Proceed starts exactly one interval.
	Proceed Advance = iota
	// Cancel is accepted but reserved; it never changes engine state.
	Cancel
)

// String returns a human-readable representation of the request.
func (a Advance) String() string {
	switch a {
	case Proceed:
		return "Proceed"
	case Cancel:
		return "Cancel"
	default:
		return "Unknown"
	}
}

// EventKind distinguishes the two engine notifications.
type EventKind int

const (
	EventTick EventKind = iota
	EventCompleted
)

// Event is a notification sent from the engine to the presentation layer.
//
// A Tick carries Remaining. A Completed carries Next and CompletedPomodoros.
type Event struct {
	Kind               EventKind
	Remaining          uint64
	Next               PomodoroState
	CompletedPomodoros uint64
}

// Tick builds a progress event.
func Tick(remainingSecs uint64) Event {
	return Event{Kind: EventTick, Remaining: remainingSecs}
}

// Completed builds an end-of-interval event.
func Completed(next PomodoroState, completedPomodoros uint64) Event {
	return Event{Kind: EventCompleted, Next: next, CompletedPomodoros: completedPomodoros}
}

func (e Event) String() string {
	if e.Kind == EventTick {
		return fmt.Sprintf("Tick(%d)", e.Remaining)
	}
	return fmt.Sprintf("Completed(%s, %d)", e.Next, e.CompletedPomodoros)
}
