package ports

import "github.com/bft-labs/pomo/internal/domain"

// Observer is notified by the engine once per completed interval with the
// state scheduled next and the total number of completed pomodoros.
//
// Observers run on the engine goroutine. They must return quickly; slow work
// such as disk I/O belongs on the observer's own goroutine.
type Observer interface {
	OnCycleComplete(next domain.PomodoroState, completedPomodoros uint64)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(next domain.PomodoroState, completedPomodoros uint64)

// OnCycleComplete calls f(next, completedPomodoros).
func (f ObserverFunc) OnCycleComplete(next domain.PomodoroState, completedPomodoros uint64) {
	f(next, completedPomodoros)
}
