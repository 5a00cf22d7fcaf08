package domain

import "time"

// CycleConfig holds the configured length of each interval kind.
// It is supplied once when the engine is built and never mutated.
type CycleConfig struct {
	Pomodoro   time.Duration
	ShortBreak time.Duration
	LongBreak  time.Duration
}

// DefaultCycleConfig returns the classic 25/5/15 minute layout.
func DefaultCycleConfig() CycleConfig {
	return CycleConfig{
		Pomodoro:   25 * time.Minute,
		ShortBreak: 5 * time.Minute,
		LongBreak:  15 * time.Minute,
	}
}

// Clamped returns a copy with negative durations replaced by zero.
// A zero duration is an instantly completing interval.
func (c CycleConfig) Clamped() CycleConfig {
	clamp := func(d time.Duration) time.Duration {
		if d < 0 {
			return 0
		}
		return d
	}
	return CycleConfig{
		Pomodoro:   clamp(c.Pomodoro),
		ShortBreak: clamp(c.ShortBreak),
		LongBreak:  clamp(c.LongBreak),
	}
}

// Duration returns the configured length for s.
func (c CycleConfig) Duration(s PomodoroState) time.Duration {
	switch s {
	case ShortBreak:
		return c.ShortBreak
	case LongBreak:
		return c.LongBreak
	default:
		return c.Pomodoro
	}
}

// Seconds returns the configured length for s in whole seconds.
// Negative durations count as zero.
func (c CycleConfig) Seconds(s PomodoroState) uint64 {
	d := c.Duration(s)
	if d <= 0 {
		return 0
	}
	return uint64(d / time.Second)
}
