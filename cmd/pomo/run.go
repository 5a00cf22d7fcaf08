package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/bft-labs/pomo/internal/app"
	"github.com/bft-labs/pomo/internal/cliconfig"
	"github.com/bft-labs/pomo/internal/domain"
	"github.com/bft-labs/pomo/internal/recorder"
	"github.com/bft-labs/pomo/internal/ui"
	"github.com/bft-labs/pomo/pkg/log"
)

// stopTimeout bounds how long quitting waits for an idle driver loop.
const stopTimeout = time.Second

// stateLogger logs session lifecycle transitions.
type stateLogger struct {
	logger log.Logger
}

func (s stateLogger) OnStateChange(previous, current app.LifecycleState, reason string) {
	s.logger.Debug("session state changed",
		log.Stringer("from", previous),
		log.Stringer("to", current),
		log.String("reason", reason),
	)
}

// openLogFile returns a JSON logger appending to the log file. The terminal
// belongs to the UI while a session runs.
func openLogFile(cfg cliconfig.Config) (log.Logger, *os.File, error) {
	path := cfg.LogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	zl, err := log.NewJSON(f, cfg.LogLevel)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	zl = zl.With().Str("session", uuid.NewString()).Logger()
	return log.NewZerologAdapterWithLogger(zl), f, nil
}

func runTimer(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	logger, logFile, err := openLogFile(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger.Info("starting session",
		log.Duration("pomodoro", cfg.Pomodoro),
		log.Duration("short_break", cfg.ShortBreak),
		log.Duration("long_break", cfg.LongBreak),
		log.String("record_format", cfg.RecordFormat),
	)

	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open record store: %w", err)
	}
	defer store.Close()

	rec, err := recorder.New(store, recorder.WithLogger(logger))
	if err != nil {
		return err
	}

	var completed uint64
	if !cfg.Fresh {
		completed, err = recorder.TodayCount(store, time.Now())
		if err != nil {
			logger.Warn("cannot read today's record, starting from zero", log.Err(err))
			completed = 0
		}
	}

	engine := app.ResumeFrom(completed, cfg.Cycle(), app.WithLogger(logger))
	engine.RegisterObserver(rec)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := app.NewSession(engine, logger, stateLogger{logger: logger})
	session.SetShutdownTimeout(stopTimeout)
	if err := session.Start(ctx); err != nil {
		rec.Close()
		return fmt.Errorf("start session: %w", err)
	}

	model := ui.NewModel(session.Events(), session.Advance(), cfg.Cycle(), completed)
	final, runErr := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if errors.Is(runErr, tea.ErrProgramKilled) {
		runErr = nil
	}

	session.Advance().Close()
	switch err := session.Stop(); {
	case err == nil, errors.Is(err, domain.ErrNotRunning):
	case errors.Is(err, domain.ErrShutdownTimeout):
		logger.Info("interval abandoned on quit")
	default:
		logger.Warn("stop session", log.Err(err))
	}

	if err := rec.Close(); err != nil {
		logger.Warn("flush records", log.Err(err))
	}
	if err := session.Err(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("session ended", log.Err(err))
	}

	if m, ok := final.(ui.Model); ok {
		logger.Info("session finished", log.Uint64("pomodoros", m.Completed()))
	}
	return runErr
}
