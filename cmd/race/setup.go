package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/coin-race/internal/config"
)

// newLogger builds the command logger. With --log it writes to that file,
// otherwise to fallback. The returned close func is always safe to call.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	closeFn := func() error { return nil }
	if flagLogPath != "" {
		f, openErr := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		out = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadConfig loads the race config and logs where it came from.
func loadConfig(logger *log.Logger) (config.RaceConfig, error) {
	cfg, source, err := config.LoadRace(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Info("config loaded", "source", source)
	return cfg, nil
}
