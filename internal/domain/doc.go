// Package domain contains the core domain entities and value objects for pomo.
//
// This package represents the innermost layer of the Clean Architecture. It has
// no dependencies on infrastructure concerns (file system, terminal, logging) and
// contains only pure values and the messages exchanged between the timer and
// its presentation layer.
//
// # Entities
//
//   - [PomodoroState]: the three interval kinds (Pomodoro, ShortBreak, LongBreak)
//   - [CycleConfig]: immutable interval durations
//   - [Advance]: presentation -> engine requests (Proceed, Cancel)
//   - [Event]: engine -> presentation notifications (Tick, Completed)
//   - [Record]: one persisted day of completed pomodoros
package domain
