package domain

import "errors"

// Sentinel errors for classifying quote retrieval failures.
// Sources wrap these so callers can tell failure kinds apart with
// errors.Is without depending on transport details.
//
//	return domain.Quote{}, fmt.Errorf("quoteapi: unexpected status %d: %w", code, domain.ErrHTTPStatus)
var (
	// ErrTransport indicates the request could not complete (DNS,
	// connection refused, transport-level timeout).
	ErrTransport = errors.New("transport failure")

	// ErrHTTPStatus indicates a response arrived with a non-2xx status.
	ErrHTTPStatus = errors.New("unexpected http status")

	// ErrParse indicates the response body was not valid JSON.
	ErrParse = errors.New("malformed response body")

	// ErrValidation indicates the body parsed but lacked a required field.
	ErrValidation = errors.New("invalid quote payload")

	// ErrInvalidInput indicates a caller passed an unusable argument,
	// such as an empty palette.
	ErrInvalidInput = errors.New("invalid input")
)
