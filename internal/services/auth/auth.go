// Package auth stores the optional quote API key in the OS keychain.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

const (
	ServiceName = "quotebox"

	// DefaultAccount is the keychain account holding the quote API key.
	DefaultAccount = "quote-api"
)

var (
	ErrTokenNotFound = errors.New("auth token not found")

	// ErrInvalidAPIKey marks keys that could not be sent as a header value.
	ErrInvalidAPIKey = errors.New("invalid API key")
)

type Store interface {
	SetToken(account string, token string) error
	GetToken(account string) (string, error)
	DeleteToken(account string) error
}

// DefaultStore returns the standard auth store backed by the OS keychain.
func DefaultStore() Store {
	return NewKeyringStore(ServiceName)
}

// NormalizeAccount folds an account name so "Quote-API " and "quote-api"
// address the same keychain entry.
func NormalizeAccount(account string) string {
	return strings.ToLower(strings.TrimSpace(account))
}

// LookupAPIKey returns the stored API key, or "" when none is stored.
// Keychain failures other than a missing entry are returned.
func LookupAPIKey(store Store) (string, error) {
	token, err := store.GetToken(DefaultAccount)
	if errors.Is(err, ErrTokenNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

// CleanAPIKey trims surrounding whitespace from raw and rejects keys that are
// empty or contain whitespace or control characters.
func CleanAPIKey(raw string) (string, error) {
	key := strings.TrimSpace(raw)
	if key == "" {
		return "", fmt.Errorf("%w: API key cannot be empty", ErrInvalidAPIKey)
	}
	if strings.IndexFunc(key, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	}) >= 0 {
		return "", fmt.Errorf("%w: API key must not contain whitespace", ErrInvalidAPIKey)
	}
	return key, nil
}

// KeyStatus describes the stored API key without exposing it.
type KeyStatus struct {
	Stored bool

	// Hint is the masked key, e.g. "••••••••c123".
	Hint string

	// Err is set when the keychain could not be read.
	Err error
}

// Inspect reports whether an API key is stored.
func Inspect(store Store) KeyStatus {
	key, err := LookupAPIKey(store)
	switch {
	case err != nil:
		return KeyStatus{Err: err}
	case key == "":
		return KeyStatus{}
	}
	return KeyStatus{Stored: true, Hint: MaskKey(key)}
}

func (s KeyStatus) String() string {
	switch {
	case s.Err != nil:
		return fmt.Sprintf("error (%v)", s.Err)
	case s.Stored:
		return "API key stored (" + s.Hint + ")"
	default:
		return "no API key"
	}
}

// MaskKey hides all but the last four characters of key. Short keys are
// hidden entirely.
func MaskKey(key string) string {
	r := []rune(key)
	if len(r) <= 4 {
		return strings.Repeat("•", len(r))
	}
	return strings.Repeat("•", min(len(r)-4, 8)) + string(r[len(r)-4:])
}
