package app

import (
	"fmt"
	"io"
	"log/slog"

	"nathanbeddoewebdev/quotebox/internal/config"
	"nathanbeddoewebdev/quotebox/internal/logging"
	"nathanbeddoewebdev/quotebox/internal/quotestore"
)

// defaultCommandLevel keeps one-shot command output quiet unless a fetch
// falls back to offline data.
const defaultCommandLevel = "warn"

// LogOptions mirrors the root --log-level and --log-file flags.
type LogOptions struct {
	Level string
	File  string
}

// Logger builds the process logger. The interactive widget owns the
// terminal, so without a log file it logs nothing. The returned closer is
// nil unless a file was opened.
func (o LogOptions) Logger(stderr io.Writer, interactive bool) (*slog.Logger, io.Closer, error) {
	if o.File != "" {
		f, err := logging.OpenFile(o.File)
		if err != nil {
			return nil, nil, err
		}
		return logging.New(logging.Config{Level: o.Level, Prefix: "quotebox"}, f), f, nil
	}
	if interactive {
		return logging.Discard(), nil, nil
	}

	level := o.Level
	if level == "" {
		level = defaultCommandLevel
	}
	return logging.New(logging.Config{Level: level}, stderr), nil, nil
}

// Open loads the user configuration and assembles an App for a command
// invocation. Close the App when done.
func Open(lo LogOptions, stderr io.Writer, interactive bool, storeOpts ...quotestore.Option) (*App, error) {
	logger, logFile, err := lo.Logger(stderr, interactive)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load()
	if err != nil {
		closeQuietly(logFile)
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	a, err := New(Options{
		Config:       cfg,
		Logger:       logger,
		StoreOptions: storeOpts,
	})
	if err != nil {
		closeQuietly(logFile)
		return nil, err
	}
	a.logFile = logFile
	return a, nil
}

func closeQuietly(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}
