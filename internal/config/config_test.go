package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "config.json")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(&Config{}, cfg); diff != "" {
		t.Errorf("expected zero config (-want +got):\n%s", diff)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotebox", "config.json")

	want := &Config{
		Endpoint:       "https://example.com/quote",
		RequestTimeout: "10s",
		APIKeyHeader:   "X-Api-Key",
		RecordHistory:  "on",
	}
	if err := want.SaveTo(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestSave_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "deep")
	path := filepath.Join(dir, "config.json")

	cfg := &Config{RecordHistory: "on"}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file at %s: %v", path, err)
	}
}

func TestSave_ReplacesWithoutLeftovers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	if err := (&Config{RecordHistory: "on"}).SaveTo(path); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := (&Config{RecordHistory: "off"}).SaveTo(path); err != nil {
		t.Fatalf("second save: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "config.json" {
		t.Errorf("expected only config.json, got %v", entries)
	}
	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.RecordHistory != "off" {
		t.Errorf("RecordHistory = %q, want off", got.RecordHistory)
	}
}

func TestValidate(t *testing.T) {
	if err := (&Config{}).Validate(); err != nil {
		t.Errorf("zero config: %v", err)
	}
	if err := (&Config{Endpoint: "https://example.com/quote", RecordHistory: "on"}).Validate(); err != nil {
		t.Errorf("valid config: %v", err)
	}

	err := (&Config{Endpoint: "ftp://example.com", RecordHistory: "maybe"}).Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"endpoint", "record-history"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not name %s", err, want)
		}
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json}"), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	_, err := LoadFrom(path)
	if err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestPath_Override(t *testing.T) {
	t.Cleanup(ResetPath)
	path := filepath.Join(t.TempDir(), "config.json")
	SetPath(path)

	got, err := Path()
	if err != nil {
		t.Fatalf("Path error: %v", err)
	}
	if got != path {
		t.Errorf("Path = %q, want %q", got, path)
	}
}

func TestEffectiveEndpoint(t *testing.T) {
	cfg := &Config{Endpoint: "https://file.example/quote"}

	t.Setenv(EnvEndpoint, "")
	if got := cfg.EffectiveEndpoint(); got != "https://file.example/quote" {
		t.Errorf("EffectiveEndpoint = %q, want file value", got)
	}

	t.Setenv(EnvEndpoint, "https://env.example/quote")
	if got := cfg.EffectiveEndpoint(); got != "https://env.example/quote" {
		t.Errorf("EffectiveEndpoint = %q, want env value", got)
	}
}

func TestTimeout(t *testing.T) {
	tests := []struct {
		value   string
		want    time.Duration
		wantErr bool
	}{
		{value: "", want: 0},
		{value: "10s", want: 10 * time.Second},
		{value: "1m30s", want: 90 * time.Second},
		{value: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			cfg := &Config{RequestTimeout: tt.value}
			got, err := cfg.Timeout()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Timeout = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHistoryEnabled(t *testing.T) {
	if (&Config{}).HistoryEnabled() {
		t.Error("history should be off by default")
	}
	if (&Config{RecordHistory: "off"}).HistoryEnabled() {
		t.Error("history should be off when set to off")
	}
	if !(&Config{RecordHistory: "on"}).HistoryEnabled() {
		t.Error("history should be on when set to on")
	}
}
