package tui

import (
	"errors"
	"strings"
	"testing"

	"nathanbeddoewebdev/quotebox/internal/services/auth"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func TestAuthLogin_SavesKey(t *testing.T) {
	store := auth.NewMockStore()
	m := newAuthLoginModel(store, AuthLoginOptions{})

	m.input.SetValue("  secret  ")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(authLoginModel)
	if cmd == nil {
		t.Fatal("expected save command")
	}

	next, _ = m.Update(cmd())
	m = next.(authLoginModel)
	if !m.saved {
		t.Fatal("expected saved=true")
	}

	got, err := store.GetToken(auth.DefaultAccount)
	if err != nil {
		t.Fatalf("GetToken error: %v", err)
	}
	if got != "secret" {
		t.Errorf("token = %q, want %q", got, "secret")
	}
}

func TestAuthLogin_EmptyKey(t *testing.T) {
	m := newAuthLoginModel(auth.NewMockStore(), AuthLoginOptions{})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(authLoginModel)
	if cmd != nil {
		t.Error("expected no command for empty key")
	}
	if m.err == nil {
		t.Error("expected validation error")
	}
}

func TestAuthLogin_StoreFailure(t *testing.T) {
	store := auth.NewMockStore()
	store.FailWith(errors.New("keychain locked"))
	m := newAuthLoginModel(store, AuthLoginOptions{})

	m.input.SetValue("secret")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next, _ := m.Update(cmd())
	m = next.(authLoginModel)
	if m.saved || m.err == nil {
		t.Errorf("expected save failure, saved=%v err=%v", m.saved, m.err)
	}
}

func TestAuthLogin_RevealToggle(t *testing.T) {
	m := newAuthLoginModel(auth.NewMockStore(), AuthLoginOptions{})
	if m.input.EchoMode != textinput.EchoPassword {
		t.Fatal("expected masked input by default")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	m = next.(authLoginModel)
	if m.input.EchoMode != textinput.EchoNormal {
		t.Error("expected ctrl+r to reveal the key")
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	if next.(authLoginModel).input.EchoMode != textinput.EchoPassword {
		t.Error("expected ctrl+r to mask the key again")
	}
}

func TestAuthLogin_WarnsBeforeReplacing(t *testing.T) {
	store := auth.NewMockStore()
	_ = store.SetToken(auth.DefaultAccount, "old")

	m := newAuthLoginModel(store, AuthLoginOptions{Header: "X-Api-Key"})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	view := ansi.Strip(next.(authLoginModel).View())
	if !strings.Contains(view, "saving replaces it") {
		t.Error("expected replace warning")
	}
	if !strings.Contains(view, "X-Api-Key header") {
		t.Error("expected header hint")
	}
}

func TestAuthLogin_Cancel(t *testing.T) {
	m := newAuthLoginModel(auth.NewMockStore(), AuthLoginOptions{})
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(authLoginModel).canceled || cmd == nil {
		t.Error("expected esc to cancel and quit")
	}
}

func TestAuthStatus_Recheck(t *testing.T) {
	store := auth.NewMockStore()
	m := newAuthStatusModel(store, AuthStatusOptions{Header: "X-Api-Key", Endpoint: "https://quotes.test/random"})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(authStatusModel)

	view := ansi.Strip(m.View())
	for _, want := range []string{"none", "X-Api-Key", "https://quotes.test/random"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	_ = store.SetToken(auth.DefaultAccount, "secret-c123")
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m = next.(authStatusModel)
	if !m.status.Stored {
		t.Fatal("expected recheck to see the stored key")
	}
	if view := ansi.Strip(m.View()); !strings.Contains(view, "c123") || strings.Contains(view, "secret") {
		t.Errorf("expected masked key only, got:\n%s", view)
	}
}
