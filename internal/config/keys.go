package config

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// KeySpec describes a single configuration key.
type KeySpec struct {
	// Name is the CLI-facing key name (e.g. "endpoint").
	Name string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Get returns the current value for this key from a loaded Config.
	Get func(cfg *Config) string

	// Set applies a value for this key to the given Config (in memory only;
	// the caller is responsible for calling Save).
	Set func(cfg *Config, value string)

	// Normalize checks a user-supplied value and returns the form to store.
	// An empty input clears the key and is always accepted.
	Normalize func(value string) (string, error)

	// Choices, when set, lists every accepted value. Editors cycle through
	// them instead of taking free text.
	Choices []string
}

// Keys is the authoritative list of all supported configuration keys.
// To add a new option: add a field to Config and append a KeySpec here.
var Keys = []KeySpec{
	{
		Name:        "endpoint",
		Description: "Quote API URL (overridden by " + EnvEndpoint + ")",
		Get:         func(cfg *Config) string { return cfg.Endpoint },
		Set:         func(cfg *Config, v string) { cfg.Endpoint = v },
		Normalize:   normalizeEndpoint,
	},
	{
		Name:        "request-timeout",
		Description: "Client request timeout such as 10s (empty: none)",
		Get:         func(cfg *Config) string { return cfg.RequestTimeout },
		Set:         func(cfg *Config, v string) { cfg.RequestTimeout = v },
		Normalize:   normalizeTimeout,
	},
	{
		Name:        "api-key-header",
		Description: "Header that carries the stored API key",
		Get:         func(cfg *Config) string { return cfg.APIKeyHeader },
		Set:         func(cfg *Config, v string) { cfg.APIKeyHeader = v },
		Normalize:   normalizeHeader,
	},
	{
		Name:        "record-history",
		Description: "Record fetched quotes locally: on or off",
		Get:         func(cfg *Config) string { return cfg.RecordHistory },
		Set:         func(cfg *Config, v string) { cfg.RecordHistory = v },
		Normalize:   normalizeToggle,
		Choices:     []string{"on", "off"},
	},
}

// Lookup returns the KeySpec for the given name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace.
func Lookup(name string) *KeySpec {
	normalized := foldKey(name)
	for i := range Keys {
		if Keys[i].Name == normalized {
			return &Keys[i]
		}
	}
	return nil
}

// KeyNames returns the names of all registered keys.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = k.Name
	}
	return names
}

// KeysHelp builds a formatted block listing all available keys and their
// descriptions, suitable for inclusion in Cobra Long help text.
func KeysHelp() string {
	if len(Keys) == 0 {
		return ""
	}

	// Find the longest key name for alignment.
	maxLen := 0
	for _, k := range Keys {
		if len(k.Name) > maxLen {
			maxLen = len(k.Name)
		}
	}

	var b strings.Builder
	b.WriteString("Available keys:\n")
	for _, k := range Keys {
		fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, k.Name, k.Description)
	}
	return b.String()
}

func normalizeEndpoint(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	u, err := url.Parse(value)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", fmt.Errorf("endpoint must be an absolute http(s) URL, got %q", value)
	}
	return u.String(), nil
}

func normalizeTimeout(value string) (string, error) {
	value = foldKey(value)
	if value == "" {
		return "", nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return "", fmt.Errorf("request-timeout must be a duration such as 10s, got %q", value)
	}
	if d < 0 {
		return "", fmt.Errorf("request-timeout must not be negative")
	}
	return d.String(), nil
}

func normalizeHeader(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	if strings.ContainsAny(value, " \t:\r\n") {
		return "", fmt.Errorf("api-key-header %q is not a valid header name", value)
	}
	return http.CanonicalHeaderKey(value), nil
}

func normalizeToggle(value string) (string, error) {
	switch foldKey(value) {
	case "":
		return "", nil
	case "on", "true", "yes", "1":
		return "on", nil
	case "off", "false", "no", "0":
		return "off", nil
	}
	return "", fmt.Errorf("expected on or off, got %q", value)
}

func foldKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
