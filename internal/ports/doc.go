// Package ports defines the interfaces (ports) that connect the timer core
// to its collaborators.
//
// # Port Interfaces
//
//   - [Observer]: notified once per completed interval
//   - [RecordStore]: persists completed-pomodoro records
//
// The application layer (internal/app, internal/recorder) depends only on
// these interfaces. Infrastructure adapters (internal/adapters) implement
// them with concrete storage (CSV file, SQLite, memory).
package ports
