// Package quoteapi fetches random quotes from a remote JSON endpoint.
package quoteapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"

	"nathanbeddoewebdev/quotebox/internal/domain"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultEndpoint serves a random quote as {"quote": ..., "author": ...}.
	DefaultEndpoint = "https://quoteslate.vercel.app/api/quotes/random"

	// DefaultAPIKeyHeader carries the optional API key.
	DefaultAPIKeyHeader = "X-Api-Key"

	userAgent = "quotebox"

	// maxBodyBytes bounds how much of a response body is decoded.
	maxBodyBytes = 1 << 20
)

// Client retrieves quotes over HTTP. The zero timeout leaves deadlines to
// the transport and the caller's context.
type Client struct {
	endpoint     string
	apiKey       string
	apiKeyHeader string
	client       *http.Client
	validate     *validator.Validate
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the quote endpoint URL.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint != "" {
			c.endpoint = endpoint
		}
	}
}

// WithTimeout sets a client-level request timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.client.Timeout = d }
}

// WithAPIKey sends key in the given header on every request. An empty
// header name falls back to DefaultAPIKeyHeader.
func WithAPIKey(header, key string) Option {
	return func(c *Client) {
		if header == "" {
			header = DefaultAPIKeyHeader
		}
		c.apiKeyHeader = header
		c.apiKey = key
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// NewClient creates a Client pointed at DefaultEndpoint unless overridden.
func NewClient(opts ...Option) *Client {
	c := &Client{
		endpoint:     DefaultEndpoint,
		apiKeyHeader: DefaultAPIKeyHeader,
		client:       &http.Client{},
		validate:     newValidator(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the URL the client requests.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// RandomQuote issues a single GET to the endpoint and returns the decoded
// quote. Every failure wraps one of domain.ErrTransport, domain.ErrHTTPStatus,
// domain.ErrParse or domain.ErrValidation.
func (c *Client) RandomQuote(ctx context.Context) (domain.Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("quoteapi: failed to build request: %w: %w", domain.ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if c.apiKey != "" {
		req.Header.Set(c.apiKeyHeader, c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("quoteapi: request failed: %w: %w", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return domain.Quote{}, fmt.Errorf("quoteapi: status %d: %w", resp.StatusCode, domain.ErrHTTPStatus)
	}

	var q domain.Quote
	dec := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes))
	if err := dec.Decode(&q); err != nil {
		return domain.Quote{}, fmt.Errorf("quoteapi: failed to decode response: %w: %w", domain.ErrParse, err)
	}
	// The body must hold exactly one JSON value.
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return domain.Quote{}, fmt.Errorf("quoteapi: unexpected data after response object: %w", domain.ErrParse)
	}

	if err := c.validate.Struct(q); err != nil {
		return domain.Quote{}, fmt.Errorf("quoteapi: %s: %w", describeValidation(err), domain.ErrValidation)
	}

	return q, nil
}

// newValidator reports field errors by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// describeValidation names the missing fields of a failed validation.
func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	msg := "missing field"
	for i, fe := range verrs {
		if i == 0 {
			msg += " " + fe.Field()
		} else {
			msg += ", " + fe.Field()
		}
	}
	return msg
}
