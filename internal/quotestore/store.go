// Package quotestore holds the quote widget's state and the fetch
// operation that drives it.
//
// A Store moves between idle, loading, success and fallback. Begin marks a
// request in flight; Complete performs it and commits either the remote
// quote or a random offline quote. Both terminal paths re-randomize the
// accent colour and clear the loading flag.
package quotestore

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"nathanbeddoewebdev/quotebox/internal/domain"
	"nathanbeddoewebdev/quotebox/internal/logging"
	"nathanbeddoewebdev/quotebox/internal/palette"
	"nathanbeddoewebdev/quotebox/internal/share"
)

// Source retrieves a single quote.
type Source interface {
	RandomQuote(ctx context.Context) (domain.Quote, error)
}

// Ticket identifies one started fetch.
type Ticket struct {
	generation uint64
	startedAt  time.Time
}

// Generation returns the ticket's position in the sequence of started fetches.
func (t Ticket) Generation() uint64 { return t.generation }

// Outcome describes how a fetch settled.
type Outcome struct {
	Generation uint64
	Quote      domain.Quote
	Color      string

	// Fallback is true when offline data was committed (or would have
	// been, for a stale result).
	Fallback bool

	// Err is the underlying failure on the fallback path. It never
	// reaches the rendered state.
	Err error

	// Stale is true when a newer fetch started before this one settled;
	// nothing was committed.
	Stale bool

	StartedAt time.Time
	Duration  time.Duration
}

// Store is the widget's state container. It is safe for concurrent use.
type Store struct {
	source    Source
	colors    []string
	fallbacks []domain.Quote
	logger    *slog.Logger
	observers []func(Outcome)
	now       func() time.Time

	mu         sync.RWMutex
	state      State
	generation uint64
	rng        *rand.Rand // guarded by mu; nil uses the global generator
}

// Option configures a Store.
type Option func(*Store)

// WithPalette replaces the accent palette.
func WithPalette(colors []string) Option {
	return func(s *Store) { s.colors = colors }
}

// WithFallbacks replaces the offline quote list.
func WithFallbacks(quotes []domain.Quote) Option {
	return func(s *Store) { s.fallbacks = quotes }
}

// WithRand makes colour and fallback selection draw from r.
func WithRand(r *rand.Rand) Option {
	return func(s *Store) { s.rng = r }
}

// WithLogger sets the logger used for fetch failures.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithObserver registers fn to run after every settled fetch, outside
// the store's lock.
func WithObserver(fn func(Outcome)) Option {
	return func(s *Store) {
		if fn != nil {
			s.observers = append(s.observers, fn)
		}
	}
}

// WithClock overrides the time source used for outcome timings.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a Store in the initial state: empty quote, default colour,
// not loading, no error. It panics on an empty palette or fallback list
// (programmer errors detected at startup).
func New(src Source, opts ...Option) *Store {
	s := &Store{
		source:    src,
		colors:    palette.Colors,
		fallbacks: palette.FallbackQuotes,
		logger:    logging.Discard(),
		now:       time.Now,
		state: State{
			BackgroundColor: palette.DefaultColor,
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	if src == nil {
		panic("quotestore: nil source")
	}
	if len(s.colors) == 0 {
		panic("quotestore: empty palette")
	}
	if len(s.fallbacks) == 0 {
		panic("quotestore: empty fallback list")
	}
	return s
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Begin marks a new fetch in flight: Loading becomes true and any error
// notice is cleared immediately. The returned ticket must be passed to
// Complete.
func (s *Store) Begin() Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.state.Loading = true
	s.state.ErrorMessage = ""
	return Ticket{generation: s.generation, startedAt: s.now()}
}

// Complete performs the network request for t and commits the result.
// Failures of any kind settle on a random fallback quote; nothing is
// returned as an error. A result whose ticket is no longer the latest is
// discarded.
func (s *Store) Complete(ctx context.Context, t Ticket) Outcome {
	q, err := s.source.RandomQuote(ctx)

	out := Outcome{
		Generation: t.generation,
		StartedAt:  t.startedAt,
	}

	s.mu.Lock()
	out.Duration = s.now().Sub(t.startedAt)

	if err == nil && !q.IsComplete() {
		err = domain.ErrValidation
	}
	if err != nil {
		out.Fallback = true
		out.Err = err
		q = pickLocked(s, s.fallbacks, domain.Quote{})
	}
	out.Quote = q
	out.Color = pickLocked(s, s.colors, s.state.BackgroundColor)

	if t.generation != s.generation {
		out.Stale = true
		s.mu.Unlock()
		s.logger.Debug("discarding stale quote result",
			"generation", t.generation, "latest", s.generation, "fallback", out.Fallback)
		s.notify(out)
		return out
	}

	s.state.QuoteText = q.Text
	s.state.QuoteAuthor = q.Author
	s.state.BackgroundColor = out.Color
	s.state.Loading = false
	if out.Fallback {
		s.state.ErrorMessage = FallbackMessage
	} else {
		s.state.ErrorMessage = ""
	}
	s.mu.Unlock()

	if out.Fallback {
		s.logger.Error("failed to fetch quote", "err", err, "generation", t.generation)
	} else {
		s.logger.Debug("fetched quote", "author", q.Author, "generation", t.generation, "duration", out.Duration)
	}
	s.notify(out)
	return out
}

// FetchQuote starts a fetch and blocks until it settles.
func (s *Store) FetchQuote(ctx context.Context) Outcome {
	return s.Complete(ctx, s.Begin())
}

// ShareURL returns the tweet intent URL for the current quote.
func (s *Store) ShareURL() string {
	st := s.Snapshot()
	return share.BuildShareURL(st.QuoteText, st.QuoteAuthor)
}

// ShareText returns the current quote formatted for sharing.
func (s *Store) ShareText() string {
	st := s.Snapshot()
	return share.Text(st.QuoteText, st.QuoteAuthor)
}

// DismissError clears the error notice. Other fields are untouched.
func (s *Store) DismissError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ErrorMessage = ""
}

// pickLocked draws a random element of items, returning def when the draw
// fails. Callers hold s.mu.
func pickLocked[T any](s *Store, items []T, def T) T {
	v, err := palette.Pick(s.rng, items)
	if err != nil {
		s.logger.Error("random selection failed", "err", err)
		return def
	}
	return v
}

func (s *Store) notify(out Outcome) {
	for _, fn := range s.observers {
		fn(out)
	}
}
