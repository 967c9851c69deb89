// Package config handles persistent user configuration for quotebox.
//
// Configuration is stored as JSON at ~/.config/quotebox/config.json (or the
// platform-equivalent path returned by os.UserConfigDir).
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	appDir   = "quotebox"
	fileName = "config.json"

	// EnvEndpoint, when set, overrides the configured quote endpoint.
	EnvEndpoint = "QUOTEBOX_ENDPOINT"
)

// pathOverride, when non-empty, replaces the default config file path.
// Intended for testing. Use SetPath / ResetPath to manage.
var pathOverride string

// SetPath overrides the config file path. Intended for testing.
func SetPath(p string) { pathOverride = p }

// ResetPath clears the path override, reverting to the default. Intended for testing.
func ResetPath() { pathOverride = "" }

// Config holds user preferences that persist across invocations.
// Empty fields mean "use the built-in default".
type Config struct {
	Endpoint       string `json:"endpoint,omitempty"`
	RequestTimeout string `json:"request_timeout,omitempty"`
	APIKeyHeader   string `json:"api_key_header,omitempty"`
	RecordHistory  string `json:"record_history,omitempty"`
}

// EffectiveEndpoint returns the quote endpoint to use: the EnvEndpoint
// variable when set, otherwise the configured value (possibly empty).
func (c *Config) EffectiveEndpoint() string {
	if env := strings.TrimSpace(os.Getenv(EnvEndpoint)); env != "" {
		return env
	}
	return c.Endpoint
}

// Timeout parses RequestTimeout. An empty value means no client timeout.
func (c *Config) Timeout() (time.Duration, error) {
	if c.RequestTimeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.RequestTimeout)
	if err != nil {
		return 0, fmt.Errorf("config: invalid request-timeout %q: %w", c.RequestTimeout, err)
	}
	return d, nil
}

// HistoryEnabled reports whether settled fetches should be recorded.
func (c *Config) HistoryEnabled() bool {
	return c.RecordHistory == "on"
}

// Path returns the absolute path to the config file.
// If SetPath has been called, that value is returned instead.
// Otherwise it uses os.UserConfigDir which resolves to
// ~/Library/Application Support on macOS, ~/.config on Linux, and
// %AppData% on Windows.
func Path() (string, error) {
	if pathOverride != "" {
		return pathOverride, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: unable to determine config directory: %w", err)
	}
	return filepath.Join(base, appDir, fileName), nil
}

// Load reads the config file at Path. A missing file yields a zero-value
// Config, not an error.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config file at path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks every stored value the way "config set" would, so a
// hand-edited file fails before any request is made.
func (c *Config) Validate() error {
	var errs []error
	for _, k := range Keys {
		if _, err := k.Normalize(k.Get(c)); err != nil {
			errs = append(errs, fmt.Errorf("config: %s: %w", k.Name, err))
		}
	}
	return errors.Join(errs...)
}

// Save writes the config to Path.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to path, creating the parent directory if
// needed. The file is replaced atomically so the settings editor and a
// concurrent "config set" never leave half-written JSON behind.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("config: failed to create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("config: failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(dir, ".config-*.json")
	if err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("config: failed to replace %s: %w", path, err)
	}
	return nil
}
