package tui

import (
	"strings"

	"nathanbeddoewebdev/quotebox/internal/services/auth"
	"nathanbeddoewebdev/quotebox/internal/tui/components"
	"nathanbeddoewebdev/quotebox/internal/tui/styles"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AuthStatusOptions describes where the stored key would be sent.
type AuthStatusOptions struct {
	Header   string
	Endpoint string
}

type authStatusModel struct {
	store  auth.Store
	opts   AuthStatusOptions
	status auth.KeyStatus

	refresh key.Binding
	quit    key.Binding

	width  int
	height int
}

// RunAuthStatus shows whether an API key is stored and how it is used.
func RunAuthStatus(store auth.Store, opts AuthStatusOptions) error {
	_, err := tea.NewProgram(newAuthStatusModel(store, opts), tea.WithAltScreen()).Run()
	return err
}

func newAuthStatusModel(store auth.Store, opts AuthStatusOptions) authStatusModel {
	return authStatusModel{
		store:   store,
		opts:    opts,
		status:  auth.Inspect(store),
		refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "recheck")),
		quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (m authStatusModel) Init() tea.Cmd {
	return nil
}

func (m authStatusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.quit):
			return m, tea.Quit
		case key.Matches(msg, m.refresh):
			m.status = auth.Inspect(m.store)
		}
	}
	return m, nil
}

func (m authStatusModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := components.Header(m.width, "auth status", auth.DefaultAccount, "")
	footer := components.Footer(m.width, components.BindingsFrom(m.refresh, m.quit))
	contentH := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 1)

	return lipgloss.JoinVertical(lipgloss.Left, header, m.renderContent(contentH), footer)
}

func (m authStatusModel) renderContent(height int) string {
	const labelWidth = 12
	row := func(label, value string) string {
		return styles.Label.Width(labelWidth).Render(label) + value
	}

	var keyLine string
	switch {
	case m.status.Err != nil:
		keyLine = styles.ErrorText.Render(m.status.String())
	case m.status.Stored:
		keyLine = styles.SuccessText.Render("stored") + "  " + styles.MutedText.Render(m.status.Hint)
	default:
		keyLine = styles.MutedText.Render("none (requests are sent without a key)")
	}

	rows := []string{row("API key", keyLine)}
	if m.opts.Header != "" {
		rows = append(rows, row("Header", styles.Value.Render(m.opts.Header)))
	}
	if m.opts.Endpoint != "" {
		rows = append(rows, row("Endpoint", styles.Value.Render(m.opts.Endpoint)))
	}

	card := styles.Card.Render(strings.Join(rows, "\n"))
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, styles.Title.Render("Quote API key"), "", card))
}
