package tui

import (
	"fmt"

	"nathanbeddoewebdev/quotebox/internal/services/auth"
	"nathanbeddoewebdev/quotebox/internal/tui/components"
	"nathanbeddoewebdev/quotebox/internal/tui/styles"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type keySavedMsg struct{}

type keySaveErrorMsg struct {
	err error
}

type loginKeys struct {
	Save   key.Binding
	Reveal key.Binding
	Cancel key.Binding
}

// authLoginModel is a single masked input that writes the API key to the
// keychain on enter.
type authLoginModel struct {
	store  auth.Store
	header string

	// replacing is true when a key is already stored.
	replacing bool

	input textinput.Model
	keys  loginKeys

	width  int
	height int

	err      error
	saved    bool
	canceled bool
}

// AuthLoginOptions configures the API key prompt.
type AuthLoginOptions struct {
	// Header names the request header the key will be sent in.
	Header string
}

// RunAuthLogin prompts for the quote API key and stores it under
// auth.DefaultAccount. It reports whether a key was saved.
func RunAuthLogin(store auth.Store, opts AuthLoginOptions) (bool, error) {
	p := tea.NewProgram(newAuthLoginModel(store, opts), tea.WithAltScreen())
	result, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("failed to run auth login: %w", err)
	}
	return result.(authLoginModel).saved, nil
}

func newAuthLoginModel(store auth.Store, opts AuthLoginOptions) authLoginModel {
	ti := textinput.New()
	ti.Placeholder = "paste your API key"
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.Width = 50
	ti.Focus()

	existing, _ := auth.LookupAPIKey(store)

	return authLoginModel{
		store:     store,
		header:    opts.Header,
		replacing: existing != "",
		input:     ti,
		keys: loginKeys{
			Save:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
			Reveal: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "show/hide")),
			Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
		},
	}
}

func (m authLoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m authLoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.canceled = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Reveal):
			if m.input.EchoMode == textinput.EchoPassword {
				m.input.EchoMode = textinput.EchoNormal
			} else {
				m.input.EchoMode = textinput.EchoPassword
			}
			return m, nil

		case key.Matches(msg, m.keys.Save):
			apiKey, err := auth.CleanAPIKey(m.input.Value())
			if err != nil {
				m.err = err
				return m, nil
			}
			m.err = nil
			store := m.store
			return m, func() tea.Msg {
				if err := store.SetToken(auth.DefaultAccount, apiKey); err != nil {
					return keySaveErrorMsg{err: err}
				}
				return keySavedMsg{}
			}
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.err = nil
		return m, cmd

	case keySavedMsg:
		m.saved = true
		return m, tea.Quit

	case keySaveErrorMsg:
		m.err = msg.err
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m authLoginModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := components.Header(m.width, "auth login", auth.DefaultAccount, "")
	footer := components.Footer(m.width, components.BindingsFrom(m.keys.Save, m.keys.Reveal, m.keys.Cancel))
	contentH := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 1)

	lines := []string{
		styles.Title.Render("Quote API key"),
		styles.MutedText.Render("Kept in the system keychain."),
	}
	if m.header != "" {
		lines = append(lines, styles.MutedText.Render("Sent as the "+m.header+" header on every quote request."))
	}
	if m.replacing {
		lines = append(lines, styles.WarningText.Render("A key is already stored; saving replaces it."))
	}
	lines = append(lines, "", m.input.View())
	if m.err != nil {
		lines = append(lines, "", styles.ErrorText.Render(m.err.Error()))
	}

	content := lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Left, lines...))
	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}
