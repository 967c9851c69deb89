package history

import (
	"context"
	"errors"
	"log/slog"

	"nathanbeddoewebdev/quotebox/internal/logging"
	"nathanbeddoewebdev/quotebox/internal/quotestore"
)

// Recorder writes settled fetches to a Repository. Its Observe method is
// meant to be registered with quotestore.WithObserver.
type Recorder struct {
	repo   Repository
	logger *slog.Logger
}

// NewRecorder creates a Recorder. A nil logger discards save failures.
func NewRecorder(repo Repository, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Recorder{repo: repo, logger: logger}
}

// Observe stores o unless it was discarded as stale or its request was
// canceled, which happens when the widget quits mid-fetch. Save failures
// are logged and otherwise ignored so history never affects the widget.
func (r *Recorder) Observe(o quotestore.Outcome) {
	if o.Stale || errors.Is(o.Err, context.Canceled) {
		return
	}
	entry := EntryFromOutcome(o)
	if err := r.repo.Save(&entry); err != nil {
		r.logger.Warn("failed to record quote history", "err", err)
	}
}

// EntryFromOutcome converts a settled fetch into a history entry.
func EntryFromOutcome(o quotestore.Outcome) Entry {
	entry := Entry{
		Timestamp:  o.StartedAt.UTC(),
		Quote:      o.Quote.Text,
		Author:     o.Quote.Author,
		Color:      o.Color,
		Source:     SourceRemote,
		DurationMs: o.Duration.Milliseconds(),
	}
	if o.Fallback {
		entry.Source = SourceFallback
		if o.Err != nil {
			entry.Detail = o.Err.Error()
		}
	}
	return entry
}
