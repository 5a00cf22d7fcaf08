// Package log provides the logging abstraction used by pomo components.
//
// Components depend only on the Logger interface. A zerolog-backed
// implementation is provided for the command line tool and a no-op logger
// for tests and embedding.
//
// # Usage
//
//	zl, err := log.NewConsole(os.Stderr, "info")
//	if err != nil {
//	    return err
//	}
//	logger := log.NewZerologAdapterWithLogger(zl)
//	logger.Info("interval completed", log.String("next", "ShortBreak"))
//
// Or, in tests:
//
//	logger := log.NewNoopLogger()
package log
