package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bft-labs/pomo/internal/domain"
)

func waitDone(t *testing.T, s *Session) {
	t.Helper()
	select {
	case <-s.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("session did not finish")
	}
}

func TestSession_PingPong(t *testing.T) {
	e := NewEngine(zeroConfig())
	s := NewSession(e, nil, nil)

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	// Presentation side: acknowledge each completion with the next Proceed.
	var completions []domain.Event
	s.Advance().Proceed()
	for ev := range s.Events() {
		if ev.Kind != domain.EventCompleted {
			continue
		}
		completions = append(completions, ev)
		if len(completions) == 7 {
			s.Advance().Close()
			continue
		}
		s.Advance().Proceed()
	}

	waitDone(t, s)
	if len(completions) != 7 {
		t.Fatalf("got %d completions, want 7", len(completions))
	}
	last := completions[6]
	if last.Next != domain.LongBreak || last.CompletedPomodoros != 4 {
		t.Errorf("last completion = %v, want Completed(LongBreak, 4)", last)
	}
	if s.Status() != StateStopped {
		t.Errorf("Status() = %v, want Stopped", s.Status())
	}
	if err := s.Err(); err != nil {
		t.Errorf("Err() = %v", err)
	}
}

func TestSession_StartTwice(t *testing.T) {
	s := NewSession(NewEngine(zeroConfig()), nil, nil)
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer s.Stop()

	if err := s.Start(context.Background()); !errors.Is(err, domain.ErrAlreadyRunning) {
		t.Errorf("second Start() = %v, want ErrAlreadyRunning", err)
	}
}

func TestSession_Stop(t *testing.T) {
	s := NewSession(NewEngine(zeroConfig()), nil, nil)
	if err := s.Stop(); !errors.Is(err, domain.ErrNotRunning) {
		t.Fatalf("Stop() before Start = %v, want ErrNotRunning", err)
	}

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
	waitDone(t, s)
	if s.Status() != StateStopped {
		t.Errorf("Status() = %v, want Stopped", s.Status())
	}
	waitEventsClosed(t, s)
}

// waitEventsClosed drains the session's events and fails if the channel
// stays open.
func waitEventsClosed(t *testing.T, s *Session) {
	t.Helper()
	timeout := time.After(time.Second)
	for {
		select {
		case _, ok := <-s.Events():
			if !ok {
				return
			}
		case <-timeout:
			t.Fatal("events channel not closed after Stop")
		}
	}
}

func TestSession_StopBeforeLoopClosesEvents(t *testing.T) {
	for i := 0; i < 50; i++ {
		s := NewSession(NewEngine(zeroConfig()), nil, nil)
		if err := s.Start(context.Background()); err != nil {
			t.Fatalf("Start() error = %v", err)
		}
		if err := s.Stop(); err != nil {
			t.Fatalf("Stop() error = %v", err)
		}
		waitEventsClosed(t, s)
	}
}

func TestSession_StopTimesOutDuringInterval(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{}, 1)
	sleep := func(time.Duration) {
		select {
		case started <- struct{}{}:
		default:
		}
		<-release
	}
	e := NewEngine(domain.CycleConfig{Pomodoro: time.Minute}, WithSleeper(sleep))
	s := NewSession(e, nil, nil)
	s.SetShutdownTimeout(20 * time.Millisecond)

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	s.Advance().Proceed()
	<-started

	if err := s.Stop(); !errors.Is(err, domain.ErrShutdownTimeout) {
		t.Fatalf("Stop() = %v, want ErrShutdownTimeout", err)
	}
	if s.Status() != StateCrashed {
		t.Errorf("Status() = %v, want Crashed", s.Status())
	}

	close(release)
	waitDone(t, s)
}
