package quoteapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nathanbeddoewebdev/quotebox/internal/domain"

	"github.com/google/go-cmp/cmp"
)

// --- Test helpers ---

// newStaticServer creates an httptest.Server that always replies with the
// given status and raw body.
func newStaticServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func jsonBody(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to encode test body: %v", err)
	}
	return string(data)
}

// --- RandomQuote tests ---

func TestRandomQuote_HappyPath(t *testing.T) {
	srv := newStaticServer(t, http.StatusOK, jsonBody(t, map[string]any{
		"id":     42,
		"quote":  "Q",
		"author": "A",
		"tags":   []string{"wisdom"},
	}))
	c := NewClient(WithEndpoint(srv.URL))

	got, err := c.RandomQuote(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := domain.Quote{Text: "Q", Author: "A"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RandomQuote mismatch (-want +got):\n%s", diff)
	}
}

func TestRandomQuote_SendsGETWithHeaders(t *testing.T) {
	var gotMethod, gotAccept, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotAccept = r.Header.Get("Accept")
		gotKey = r.Header.Get("X-Custom-Key")
		_, _ = w.Write([]byte(`{"quote":"Q","author":"A"}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(WithEndpoint(srv.URL), WithAPIKey("X-Custom-Key", "secret"))
	if _, err := c.RandomQuote(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if gotMethod != http.MethodGet {
		t.Errorf("method = %q, want GET", gotMethod)
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q, want application/json", gotAccept)
	}
	if gotKey != "secret" {
		t.Errorf("api key header = %q, want %q", gotKey, "secret")
	}
}

func TestRandomQuote_NoAPIKeyHeaderByDefault(t *testing.T) {
	var present bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present = r.Header[DefaultAPIKeyHeader]
		_, _ = w.Write([]byte(`{"quote":"Q","author":"A"}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(WithEndpoint(srv.URL))
	if _, err := c.RandomQuote(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if present {
		t.Error("expected no API key header without a configured key")
	}
}

func TestRandomQuote_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"error":"boom"}`, wantErr: domain.ErrHTTPStatus},
		{name: "not found", status: http.StatusNotFound, body: ``, wantErr: domain.ErrHTTPStatus},
		{name: "rate limited", status: http.StatusTooManyRequests, body: `{"quote":"Q","author":"A"}`, wantErr: domain.ErrHTTPStatus},
		{name: "malformed json", status: http.StatusOK, body: `{not json`, wantErr: domain.ErrParse},
		{name: "wrong field type", status: http.StatusOK, body: `{"quote":5,"author":"A"}`, wantErr: domain.ErrParse},
		{name: "missing author", status: http.StatusOK, body: `{"quote":"Q"}`, wantErr: domain.ErrValidation},
		{name: "missing quote", status: http.StatusOK, body: `{"author":"A"}`, wantErr: domain.ErrValidation},
		{name: "empty strings", status: http.StatusOK, body: `{"quote":"","author":""}`, wantErr: domain.ErrValidation},
		{name: "null body", status: http.StatusOK, body: `null`, wantErr: domain.ErrValidation},
		{name: "trailing garbage", status: http.StatusOK, body: `{"quote":"Q","author":"A"}xyz`, wantErr: domain.ErrParse},
		{name: "two objects", status: http.StatusOK, body: `{"quote":"Q","author":"A"}{"quote":"R","author":"B"}`, wantErr: domain.ErrParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newStaticServer(t, tt.status, tt.body)
			c := NewClient(WithEndpoint(srv.URL))

			_, err := c.RandomQuote(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestRandomQuote_ValidationNamesMissingField(t *testing.T) {
	srv := newStaticServer(t, http.StatusOK, `{"quote":"Q"}`)
	c := NewClient(WithEndpoint(srv.URL))

	_, err := c.RandomQuote(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "author") {
		t.Errorf("expected error to name the author field, got %q", err.Error())
	}
}

func TestRandomQuote_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(WithEndpoint(url))
	_, err := c.RandomQuote(context.Background())
	if !errors.Is(err, domain.ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}

func TestRandomQuote_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	c := NewClient(WithEndpoint(srv.URL), WithTimeout(50*time.Millisecond))
	_, err := c.RandomQuote(context.Background())
	if !errors.Is(err, domain.ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}

func TestRandomQuote_ContextCanceled(t *testing.T) {
	srv := newStaticServer(t, http.StatusOK, `{"quote":"Q","author":"A"}`)
	c := NewClient(WithEndpoint(srv.URL))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.RandomQuote(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if !errors.Is(err, domain.ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient()
	if c.Endpoint() != DefaultEndpoint {
		t.Errorf("Endpoint = %q, want %q", c.Endpoint(), DefaultEndpoint)
	}
	if c.client.Timeout != 0 {
		t.Errorf("expected no client timeout by default, got %v", c.client.Timeout)
	}

	c = NewClient(WithEndpoint(""))
	if c.Endpoint() != DefaultEndpoint {
		t.Errorf("empty endpoint should keep the default, got %q", c.Endpoint())
	}
}
