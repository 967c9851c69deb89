package history

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"nathanbeddoewebdev/quotebox/internal/database"
	"nathanbeddoewebdev/quotebox/internal/history"

	"github.com/charmbracelet/x/ansi"
)

// setupHistory points the database at a temp file and seeds it.
func setupHistory(t *testing.T, entries ...history.Entry) {
	t.Helper()
	database.SetPath(filepath.Join(t.TempDir(), "history.db"))
	t.Cleanup(database.ResetPath)

	repo, err := history.Open()
	if err != nil {
		t.Fatalf("failed to open history: %v", err)
	}
	defer repo.Close()

	for i := range entries {
		if err := repo.Save(&entries[i]); err != nil {
			t.Fatalf("failed to seed history: %v", err)
		}
	}
}

func execHistory(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(args)
	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func seed() []history.Entry {
	now := time.Now().UTC()
	return []history.Entry{
		{Timestamp: now.Add(-40 * 24 * time.Hour), Quote: "Old", Author: "Ancient", Color: "#FF6B6B", Source: history.SourceRemote, DurationMs: 90},
		{Timestamp: now.Add(-2 * time.Hour), Quote: "Offline", Author: "Fallback", Color: "#4ECDC4", Source: history.SourceFallback, Detail: "quoteapi: status 500", DurationMs: 1500},
		{Timestamp: now.Add(-time.Minute), Quote: "Fresh", Author: "Remote", Color: "#45B7D1", Source: history.SourceRemote, DurationMs: 120},
	}
}

func TestList_Empty(t *testing.T) {
	setupHistory(t)

	stdout, _, err := execHistory(t, "list")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "No quote history found.") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestList_TableNewestFirst(t *testing.T) {
	setupHistory(t, seed()...)

	stdout, _, err := execHistory(t, "list")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fresh := strings.Index(stdout, "Fresh")
	old := strings.Index(stdout, "Old")
	if fresh < 0 || old < 0 || fresh > old {
		t.Errorf("expected newest entry first:\n%s", stdout)
	}
	if !strings.Contains(stdout, "1.5s") {
		t.Errorf("expected formatted duration:\n%s", stdout)
	}
}

func TestList_SourceFilterJSON(t *testing.T) {
	setupHistory(t, seed()...)

	stdout, _, err := execHistory(t, "list", "--source", "fallback", "-o", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []history.Entry
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(got) != 1 || got[0].Quote != "Offline" || got[0].Detail == "" {
		t.Errorf("unexpected entries: %+v", got)
	}
}

func TestList_InvalidFlags(t *testing.T) {
	setupHistory(t)

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"list", "--limit", "0"}, "limit must be greater than 0"},
		{[]string{"list", "--source", "cache"}, "unknown source"},
		{[]string{"list", "-o", "yaml"}, "unsupported output format"},
	}
	for _, tt := range tests {
		_, _, err := execHistory(t, tt.args...)
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%v: expected %q, got %v", tt.args, tt.want, err)
		}
	}
}

func TestPrune_RequiresConfirmationWhenNotInteractive(t *testing.T) {
	setupHistory(t, seed()...)

	_, _, err := execHistory(t, "prune", "--older-than", "30d")
	if err == nil || !strings.Contains(err.Error(), "--yes") {
		t.Errorf("expected confirmation error, got %v", err)
	}
}

func TestPrune_Yes(t *testing.T) {
	setupHistory(t, seed()...)

	stdout, _, err := execHistory(t, "prune", "--older-than", "30d", "--yes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "Removed 1 history") {
		t.Errorf("stdout = %q", stdout)
	}

	stdout, _, _ = execHistory(t, "list")
	if strings.Contains(stdout, "Old") {
		t.Errorf("old entry still listed:\n%s", stdout)
	}
}

func TestPrune_HugeDayCountKeepsHistory(t *testing.T) {
	setupHistory(t, seed()...)

	_, _, err := execHistory(t, "prune", "--older-than", "200000d", "--yes")
	if err == nil || !strings.Contains(err.Error(), "too large") {
		t.Fatalf("expected too large error, got %v", err)
	}

	stdout, _, _ := execHistory(t, "list")
	if !strings.Contains(stdout, "Old") {
		t.Errorf("history was modified:\n%s", stdout)
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"30d", 30 * 24 * time.Hour, false},
		{"72h", 72 * time.Hour, false},
		{"-1d", 0, true},
		{"soon", 0, true},
		{"106751d", 106751 * 24 * time.Hour, false},
		{"200000d", 0, true},
	}
	for _, tt := range tests {
		got, err := parseDuration(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseDuration(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseDuration(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStats(t *testing.T) {
	setupHistory(t, seed()...)

	stdout, _, err := execHistory(t, "stats")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := ansi.Strip(stdout)
	for _, want := range []string{"Fetches:  3", "remote  2", "fallback  1", "Fetch latency"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in:\n%s", want, out)
		}
	}
}
