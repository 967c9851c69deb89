package history

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"nathanbeddoewebdev/quotebox/internal/domain"
	"nathanbeddoewebdev/quotebox/internal/quotestore"

	"github.com/google/go-cmp/cmp"
)

// memRepo is an in-memory Repository for recorder tests.
type memRepo struct {
	saved   []Entry
	saveErr error
}

func (m *memRepo) Save(entry *Entry) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	entry.ID = int64(len(m.saved) + 1)
	m.saved = append(m.saved, *entry)
	return nil
}

func (m *memRepo) List(limit int) ([]Entry, error)                        { return m.saved, nil }
func (m *memRepo) ListBySource(source string, limit int) ([]Entry, error) { return nil, nil }
func (m *memRepo) Prune(olderThan time.Duration) (int64, error)           { return 0, nil }
func (m *memRepo) Close() error                                           { return nil }

func TestEntryFromOutcome_Remote(t *testing.T) {
	started := time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)
	o := quotestore.Outcome{
		Quote:     domain.Quote{Text: "Q", Author: "A"},
		Color:     "#FF6B6B",
		StartedAt: started,
		Duration:  1500 * time.Millisecond,
	}

	want := Entry{
		Timestamp:  started,
		Quote:      "Q",
		Author:     "A",
		Color:      "#FF6B6B",
		Source:     SourceRemote,
		DurationMs: 1500,
	}
	if diff := cmp.Diff(want, EntryFromOutcome(o)); diff != "" {
		t.Errorf("EntryFromOutcome mismatch (-want +got):\n%s", diff)
	}
}

func TestEntryFromOutcome_FallbackKeepsDetail(t *testing.T) {
	o := quotestore.Outcome{
		Quote:    domain.Quote{Text: "Q", Author: "A"},
		Fallback: true,
		Err:      domain.ErrHTTPStatus,
	}

	got := EntryFromOutcome(o)
	if got.Source != SourceFallback {
		t.Errorf("Source = %q, want %q", got.Source, SourceFallback)
	}
	if got.Detail != domain.ErrHTTPStatus.Error() {
		t.Errorf("Detail = %q, want %q", got.Detail, domain.ErrHTTPStatus.Error())
	}
}

func TestRecorder_SkipsStale(t *testing.T) {
	repo := &memRepo{}
	rec := NewRecorder(repo, nil)

	rec.Observe(quotestore.Outcome{Quote: domain.Quote{Text: "Q", Author: "A"}, Stale: true})
	rec.Observe(quotestore.Outcome{Quote: domain.Quote{Text: "Q", Author: "A"}})

	if len(repo.saved) != 1 {
		t.Fatalf("expected 1 saved entry, got %d", len(repo.saved))
	}
}

func TestRecorder_SkipsCanceledFetch(t *testing.T) {
	repo := &memRepo{}
	rec := NewRecorder(repo, nil)

	rec.Observe(quotestore.Outcome{
		Quote:    domain.Quote{Text: "Q", Author: "A"},
		Fallback: true,
		Err:      fmt.Errorf("quoteapi: request failed: %w: %w", domain.ErrTransport, context.Canceled),
	})
	if len(repo.saved) != 0 {
		t.Fatalf("expected canceled fetch to be skipped, got %d entries", len(repo.saved))
	}

	rec.Observe(quotestore.Outcome{
		Quote:    domain.Quote{Text: "Q", Author: "A"},
		Fallback: true,
		Err:      fmt.Errorf("quoteapi: request failed: %w: %w", domain.ErrTransport, context.DeadlineExceeded),
	})
	if len(repo.saved) != 1 {
		t.Fatalf("expected timed-out fetch to be recorded, got %d entries", len(repo.saved))
	}
}

func TestRecorder_CanceledStoreFetchLeavesNoEntry(t *testing.T) {
	repo := tempRepo(t)
	rec := NewRecorder(repo, nil)

	ctx, cancel := context.WithCancel(t.Context())
	src := sourceFunc(func() (domain.Quote, error) {
		cancel()
		return domain.Quote{}, fmt.Errorf("quoteapi: request failed: %w: %w", domain.ErrTransport, ctx.Err())
	})
	store := quotestore.New(src, quotestore.WithObserver(rec.Observe))
	store.FetchQuote(ctx)

	entries, err := repo.List(10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %+v", entries)
	}
}

func TestRecorder_SaveErrorIsSwallowed(t *testing.T) {
	repo := &memRepo{saveErr: errors.New("disk full")}
	rec := NewRecorder(repo, nil)

	rec.Observe(quotestore.Outcome{Quote: domain.Quote{Text: "Q", Author: "A"}})

	if len(repo.saved) != 0 {
		t.Fatalf("expected nothing saved, got %d", len(repo.saved))
	}
}

func TestRecorder_WiredIntoStore(t *testing.T) {
	repo := tempRepo(t)
	rec := NewRecorder(repo, nil)

	src := sourceFunc(func() (domain.Quote, error) { return domain.Quote{}, domain.ErrTransport })
	store := quotestore.New(src, quotestore.WithObserver(rec.Observe))
	store.FetchQuote(t.Context())

	entries, err := repo.List(10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	st := store.Snapshot()
	if entries[0].Quote != st.QuoteText || entries[0].Source != SourceFallback {
		t.Errorf("entry %+v does not match state %+v", entries[0], st)
	}
}

type sourceFunc func() (domain.Quote, error)

func (f sourceFunc) RandomQuote(context.Context) (domain.Quote, error) { return f() }
