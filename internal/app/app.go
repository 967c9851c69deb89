// Package app wires configuration, credentials, the HTTP source, history
// and logging into the single quote store a running quotebox owns.
package app

import (
	"errors"
	"io"
	"log/slog"

	"nathanbeddoewebdev/quotebox/internal/config"
	"nathanbeddoewebdev/quotebox/internal/history"
	"nathanbeddoewebdev/quotebox/internal/logging"
	"nathanbeddoewebdev/quotebox/internal/quoteapi"
	"nathanbeddoewebdev/quotebox/internal/quotestore"
	"nathanbeddoewebdev/quotebox/internal/services/auth"
)

// Options controls how an App is assembled. Nil fields fall back to
// defaults: an empty config, the OS keychain, a discarding logger.
type Options struct {
	Config    *config.Config
	AuthStore auth.Store
	Logger    *slog.Logger

	// HistoryPath overrides the history database location when history
	// is enabled.
	HistoryPath string

	// StoreOptions are appended after the options derived from config.
	StoreOptions []quotestore.Option
}

// App owns the quote store for one running process.
type App struct {
	Store  *quotestore.Store
	Client *quoteapi.Client

	history *history.SQLiteRepository
	logFile io.Closer
	logger  *slog.Logger
}

// New builds an App. Only a malformed configuration is fatal; keychain and
// history failures are logged and the app runs without them.
func New(opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = &config.Config{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	store := opts.AuthStore
	if store == nil {
		store = auth.DefaultStore()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	timeout, err := cfg.Timeout()
	if err != nil {
		return nil, err
	}

	clientOpts := []quoteapi.Option{
		quoteapi.WithEndpoint(cfg.EffectiveEndpoint()),
		quoteapi.WithTimeout(timeout),
	}
	apiKey, err := auth.LookupAPIKey(store)
	if err != nil {
		logger.Warn("could not read API key from keychain", "err", err)
	}
	if apiKey != "" {
		clientOpts = append(clientOpts, quoteapi.WithAPIKey(cfg.APIKeyHeader, apiKey))
	}
	client := quoteapi.NewClient(clientOpts...)

	a := &App{Client: client, logger: logger}

	storeOpts := []quotestore.Option{quotestore.WithLogger(logger)}
	if cfg.HistoryEnabled() {
		repo, err := openHistory(opts.HistoryPath)
		if err != nil {
			logger.Warn("quote history disabled", "err", err)
		} else {
			a.history = repo
			storeOpts = append(storeOpts, quotestore.WithObserver(history.NewRecorder(repo, logger).Observe))
		}
	}
	storeOpts = append(storeOpts, opts.StoreOptions...)

	a.Store = quotestore.New(client, storeOpts...)
	logger.Debug("quotebox ready", "endpoint", client.Endpoint(), "history", a.history != nil)
	return a, nil
}

// HistoryEnabled reports whether settled fetches are being recorded.
func (a *App) HistoryEnabled() bool {
	return a.history != nil
}

// Logger returns the logger the App was built with.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close releases the history database and log file, if open.
func (a *App) Close() error {
	var errs []error
	if a.history != nil {
		errs = append(errs, a.history.Close())
		a.history = nil
	}
	if a.logFile != nil {
		errs = append(errs, a.logFile.Close())
		a.logFile = nil
	}
	return errors.Join(errs...)
}

func openHistory(path string) (*history.SQLiteRepository, error) {
	if path == "" {
		return history.Open()
	}
	return history.OpenAt(path)
}
