package tui

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"nathanbeddoewebdev/quotebox/internal/config"
	"nathanbeddoewebdev/quotebox/internal/quoteapi"
	"nathanbeddoewebdev/quotebox/internal/tui/components"
	"nathanbeddoewebdev/quotebox/internal/tui/styles"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type configSavedMsg struct {
	name  string
	value string
}

type configSaveErrorMsg struct {
	err error
}

type settingsKeys struct {
	Up     key.Binding
	Down   key.Binding
	Edit   key.Binding
	Cycle  key.Binding
	Clear  key.Binding
	Quit   key.Binding
	Save   key.Binding
	Cancel key.Binding
}

func defaultSettingsKeys() settingsKeys {
	return settingsKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Edit:   key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("e", "edit")),
		Cycle:  key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
		Clear:  key.NewBinding(key.WithKeys("d", "backspace"), key.WithHelp("d", "reset")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		Save:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// configViewModel lists every config key with its stored value, or the
// value quotebox falls back to when the key is unset.
type configViewModel struct {
	cfg   *config.Config
	specs []config.KeySpec
	keys  settingsKeys

	cursor  int
	editing bool
	editor  textinput.Model

	width  int
	height int

	status  string
	isError bool
}

// RunConfigView starts the interactive settings editor.
func RunConfigView() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	p := tea.NewProgram(newConfigViewModel(cfg), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func newConfigViewModel(cfg *config.Config) configViewModel {
	return configViewModel{
		cfg:   cfg,
		specs: config.Keys,
		keys:  defaultSettingsKeys(),
	}
}

func (m configViewModel) Init() tea.Cmd {
	return nil
}

func (m configViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.handleEditKey(msg)
		}
		return m.handleKey(msg)

	case configSavedMsg:
		m.isError = false
		if msg.value == "" {
			m.status = msg.name + " reset to default"
		} else {
			m.status = msg.name + " saved"
		}
		return m, nil

	case configSaveErrorMsg:
		m.status = "Error: " + msg.err.Error()
		m.isError = true
		return m, nil
	}

	if m.editing {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m configViewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if len(m.specs) == 0 {
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}
	spec := m.specs[m.cursor]

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.cursor = max(m.cursor-1, 0)

	case key.Matches(msg, m.keys.Down):
		m.cursor = min(m.cursor+1, len(m.specs)-1)

	case key.Matches(msg, m.keys.Clear):
		return m.apply(spec, "")

	case len(spec.Choices) > 0 && key.Matches(msg, m.keys.Cycle):
		return m.apply(spec, nextChoice(spec.Choices, spec.Get(m.cfg)))

	case len(spec.Choices) == 0 && key.Matches(msg, m.keys.Edit):
		ti := textinput.New()
		ti.SetValue(spec.Get(m.cfg))
		ti.Placeholder = effectiveValue(spec.Name)
		ti.Width = 44
		ti.Focus()
		m.editor = ti
		m.editing = true
		m.status = ""
		return m, textinput.Blink
	}

	return m, nil
}

func (m configViewModel) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.editing = false
		return m, nil
	case key.Matches(msg, m.keys.Save):
		return m.apply(m.specs[m.cursor], m.editor.Value())
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// apply normalizes raw for spec and persists it. Invalid input leaves the
// config untouched and keeps the editor open.
func (m configViewModel) apply(spec config.KeySpec, raw string) (tea.Model, tea.Cmd) {
	value, err := spec.Normalize(raw)
	if err != nil {
		m.status = err.Error()
		m.isError = true
		return m, nil
	}
	spec.Set(m.cfg, value)
	m.editing = false

	cfg := m.cfg
	return m, func() tea.Msg {
		if err := cfg.Save(); err != nil {
			return configSaveErrorMsg{err: err}
		}
		return configSavedMsg{name: spec.Name, value: value}
	}
}

func nextChoice(choices []string, current string) string {
	i := slices.Index(choices, current)
	return choices[(i+1)%len(choices)]
}

// effectiveValue describes what quotebox uses when name is unset.
func effectiveValue(name string) string {
	switch name {
	case "endpoint":
		if env := strings.TrimSpace(os.Getenv(config.EnvEndpoint)); env != "" {
			return env + " (from " + config.EnvEndpoint + ")"
		}
		return quoteapi.DefaultEndpoint
	case "request-timeout":
		return "none"
	case "api-key-header":
		return quoteapi.DefaultAPIKeyHeader
	case "record-history":
		return "off"
	}
	return ""
}

func (m configViewModel) bindings() []key.Binding {
	if m.editing {
		return []key.Binding{m.keys.Save, m.keys.Cancel}
	}
	out := []key.Binding{m.keys.Down}
	if len(m.specs) > 0 && len(m.specs[m.cursor].Choices) > 0 {
		out = append(out, m.keys.Cycle)
	} else {
		out = append(out, m.keys.Edit)
	}
	return append(out, m.keys.Clear, m.keys.Quit)
}

func (m configViewModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	path, _ := config.Path()
	header := components.Header(m.width, "settings", path, "")
	footer := components.Footer(m.width, components.BindingsFrom(m.bindings()...))
	statusBar := components.StatusBar(m.width, m.status, m.isError, "")

	used := lipgloss.Height(header) + lipgloss.Height(footer)
	if statusBar != "" {
		used += lipgloss.Height(statusBar)
	}
	contentH := max(m.height-used, 1)

	sections := []string{header, m.renderContent(contentH)}
	if statusBar != "" {
		sections = append(sections, statusBar)
	}
	sections = append(sections, footer)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m configViewModel) renderContent(height int) string {
	title := styles.Title.Render("Settings")
	if len(m.specs) == 0 {
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.JoinVertical(lipgloss.Center, title, "", styles.MutedText.Render("Nothing to configure.")))
	}

	const labelWidth = 18
	rows := make([]string, 0, len(m.specs)+1)
	for i, spec := range m.specs {
		selected := i == m.cursor
		stored := spec.Get(m.cfg)

		label := styles.MutedText.Width(labelWidth).Render(spec.Name)
		var value string
		switch {
		case selected && m.editing:
			value = m.editor.View()
		case stored == "":
			value = styles.MutedText.Italic(true).Render(effectiveValue(spec.Name))
		case selected:
			value = styles.Value.Bold(true).Render(stored)
		default:
			value = styles.Value.Render(stored)
		}

		prefix := "  "
		if selected {
			prefix = styles.AccentText.Render("> ")
			label = styles.Label.Width(labelWidth).Render(spec.Name)
		}
		rows = append(rows, prefix+label+value)

		if selected && !m.editing {
			rows = append(rows, "    "+styles.MutedText.Render(spec.Description))
		}
	}

	card := styles.Card.Width(min(m.width-4, 80)).Render(strings.Join(rows, "\n"))
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, title, "", card))
}
