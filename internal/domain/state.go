package domain

// PomodoroState identifies the kind of a timed interval.
type PomodoroState int

const (
	Pomodoro PomodoroState = iota
	ShortBreak
	LongBreak
)

// String returns a human-readable representation of the state.
func (s PomodoroState) String() string {
	switch s {
	case Pomodoro:
		return "Pomodoro"
	case ShortBreak:
		return "ShortBreak"
	case LongBreak:
		return "LongBreak"
	default:
		return "Unknown"
	}
}

// IsBreak reports whether s is one of the break states.
func (s PomodoroState) IsBreak() bool {
	return s == ShortBreak || s == LongBreak
}
