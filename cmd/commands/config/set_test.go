package config

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"nathanbeddoewebdev/quotebox/internal/config"
)

// setupTestConfig points the config package at a temp file and returns its path.
func setupTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	config.SetPath(path)
	t.Cleanup(config.ResetPath)
	return path
}

// execConfig creates the config command, wires up output buffers, runs with the
// given args, and returns what was written to stdout and stderr.
func execConfig(t *testing.T, args ...string) (stdout, stderr string) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	_ = cmd.Execute()
	return outBuf.String(), errBuf.String()
}

func TestSet_Endpoint(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "set", "endpoint", "https://quotes.example.com/random")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, `"https://quotes.example.com/random"`) {
		t.Errorf("expected confirmation with endpoint, got: %s", stdout)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Endpoint != "https://quotes.example.com/random" {
		t.Errorf("Endpoint = %q", cfg.Endpoint)
	}
}

func TestSet_InvalidEndpoint(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "set", "endpoint", "ftp://nope")

	if !strings.Contains(stderr, "absolute http(s) URL") {
		t.Errorf("expected validation error, got: %s", stderr)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Endpoint != "" {
		t.Errorf("invalid value must not be saved, got %q", cfg.Endpoint)
	}
}

func TestSet_RecordHistory_CaseInsensitive(t *testing.T) {
	setupTestConfig(t)

	execConfig(t, "set", "Record-History", "ON")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.RecordHistory != "on" {
		t.Errorf("RecordHistory = %q, want %q", cfg.RecordHistory, "on")
	}
}

func TestSet_ClearWithoutValue(t *testing.T) {
	path := setupTestConfig(t)
	if err := (&config.Config{RequestTimeout: "5s"}).SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	stdout, _ := execConfig(t, "set", "request-timeout")
	if !strings.Contains(stdout, "request-timeout cleared") {
		t.Errorf("expected cleared message, got: %s", stdout)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.RequestTimeout != "" {
		t.Errorf("RequestTimeout = %q, want empty", cfg.RequestTimeout)
	}
}

func TestSet_UnknownKey(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "set", "bogus-key", "value")

	if !strings.Contains(stderr, "unknown configuration key") {
		t.Errorf("expected 'unknown configuration key' error, got: %s", stderr)
	}
}
