package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bft-labs/pomo/internal/ports"
	"github.com/bft-labs/pomo/internal/recorder"
	"github.com/bft-labs/pomo/internal/ui"
	"github.com/bft-labs/pomo/internal/watch"
	"github.com/bft-labs/pomo/pkg/log"
)

var errNothingToWatch = errors.New("record format none has no file to watch")

func runStatus(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	zl, err := log.NewConsole(os.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := log.NewZerologAdapterWithLogger(zl)

	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open record store: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if err := printStatus(out, store, time.Now()); err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}
	if store.path == "" {
		return errNothingToWatch
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var mu sync.Mutex
	w := watch.New(store.path, func() {
		mu.Lock()
		defer mu.Unlock()
		if err := printStatus(out, store, time.Now()); err != nil {
			logger.Warn("read record", log.Err(err))
		}
	}, logger)

	logger.Debug("watching record file", log.String("path", store.path))
	return w.Run(ctx)
}

func printStatus(out io.Writer, store ports.RecordStore, now time.Time) error {
	count, err := recorder.TodayCount(store, now)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, ui.FinishedLine(count))
	return err
}
