package ui

import (
	"fmt"

	"github.com/bft-labs/pomo/internal/domain"
)

// Announcement returns the sentence shown before an interval of state s.
func Announcement(s domain.PomodoroState) string {
	switch s {
	case domain.ShortBreak:
		return "Let's have a short break."
	case domain.LongBreak:
		return "Let's have a long break."
	default:
		return "Starting a new pomodoro."
	}
}

// FinishedLine reports the day's completed pomodoros.
func FinishedLine(n uint64) string {
	return fmt.Sprintf("You have finished %d pomodoros today.", n)
}

// RemainingLine renders the time left in an interval: whole minutes,
// rounded up, above one minute, seconds otherwise.
func RemainingLine(secs uint64) string {
	if secs > 60 {
		return fmt.Sprintf("%d minutes remaining", (secs+59)/60)
	}
	return fmt.Sprintf("%d seconds remaining", secs)
}

func title(s domain.PomodoroState) string {
	switch s {
	case domain.ShortBreak:
		return "Short break"
	case domain.LongBreak:
		return "Long break"
	default:
		return "Pomodoro"
	}
}
