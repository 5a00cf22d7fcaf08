package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bft-labs/pomo/internal/domain"
	"github.com/bft-labs/pomo/pkg/log"
)

// Session runs an engine's driver loop on its own goroutine and exposes the
// channel pair the presentation layer talks to.
//
// A Session is single use: once stopped it cannot be started again.
type Session struct {
	engine    *Engine
	advance   *AdvanceChannel
	events    <-chan domain.Event
	lifecycle *Lifecycle
	logger    log.Logger

	shutdownTimeout time.Duration

	mu      sync.Mutex
	started bool
	done    chan struct{}
	err     error
}

// NewSession wires a fresh advance channel and the engine's event channel.
// Observers must be registered on engine before Start.
func NewSession(engine *Engine, logger log.Logger, emitter EventEmitter) *Session {
	if logger == nil {
		logger = log.Discard
	}
	return &Session{
		engine:          engine,
		advance:         NewAdvanceChannel(),
		events:          engine.Events(),
		lifecycle:       NewLifecycle(logger, emitter),
		logger:          logger,
		shutdownTimeout: ShutdownTimeout,
		done:            make(chan struct{}),
	}
}

// SetShutdownTimeout overrides how long Stop waits for the driver loop.
func (s *Session) SetShutdownTimeout(d time.Duration) {
	if d > 0 {
		s.shutdownTimeout = d
	}
}

// Advance returns the presentation -> engine channel.
func (s *Session) Advance() *AdvanceChannel { return s.advance }

// Events returns the engine -> presentation channel. It is closed when the
// driver loop exits.
func (s *Session) Events() <-chan domain.Event { return s.events }

// Done is closed when the driver loop has exited.
func (s *Session) Done() <-chan struct{} { return s.done }

// Err returns the driver loop's error after Done is closed.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Status returns the current lifecycle state.
func (s *Session) Status() LifecycleState { return s.lifecycle.State() }

// Start launches the driver loop in the background and returns immediately.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started || !s.lifecycle.CanStart() {
		return domain.ErrAlreadyRunning
	}
	if err := s.lifecycle.TransitionTo(StateStarting, "Start() called"); err != nil {
		return err
	}
	s.started = true

	runCtx, cancel := context.WithCancel(ctx)
	s.lifecycle.SetCancel(cancel)

	s.lifecycle.AddWorker()
	go func() {
		defer s.lifecycle.WorkerDone()
		defer close(s.done)
		defer cancel()
		defer s.engine.closeEvents()

		if err := s.lifecycle.TransitionTo(StateRunning, "driver loop starting"); err != nil {
			s.logger.Debug("session stopped before running", log.Err(err))
			return
		}

		err := s.engine.Run(runCtx, s.advance.Requests())

		s.mu.Lock()
		s.err = err
		s.mu.Unlock()

		if err != nil && !errors.Is(err, context.Canceled) {
			s.logger.Error("driver loop error", log.Err(err))
			_ = s.lifecycle.TransitionTo(StateCrashed, err.Error())
			return
		}
		// Stop() may already have moved to Stopping; then it finishes the job.
		if s.lifecycle.TransitionTo(StateStopping, "driver loop exited") == nil {
			_ = s.lifecycle.TransitionTo(StateStopped, "advance channel closed")
		}
	}()

	return nil
}

// Stop disconnects the advance channel and waits for the driver loop.
// A running interval cannot be interrupted; if it outlasts the shutdown
// timeout, Stop cancels the session and returns domain.ErrShutdownTimeout.
func (s *Session) Stop() error {
	s.mu.Lock()
	if !s.lifecycle.CanStop() {
		s.mu.Unlock()
		return domain.ErrNotRunning
	}
	if err := s.lifecycle.TransitionTo(StateStopping, "Stop() called"); err != nil {
		s.mu.Unlock()
		return err
	}
	s.advance.Close()
	s.mu.Unlock()

	err := s.lifecycle.WaitWithTimeout(s.shutdownTimeout)
	if err != nil {
		s.lifecycle.Cancel()
		_ = s.lifecycle.TransitionTo(StateCrashed, "shutdown timeout")
		return err
	}

	_ = s.lifecycle.TransitionTo(StateStopped, "graceful shutdown")
	return nil
}
