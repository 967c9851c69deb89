package tui

import (
	"context"
	"fmt"
	"time"

	"nathanbeddoewebdev/quotebox/internal/quotestore"
	"nathanbeddoewebdev/quotebox/internal/share"
	"nathanbeddoewebdev/quotebox/internal/tui/components"
	"nathanbeddoewebdev/quotebox/internal/tui/styles"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const maxQuoteWidth = 72

// --- Messages ---

type quoteSettledMsg struct {
	outcome quotestore.Outcome
}

type actionDoneMsg struct {
	status string
	err    error
}

// QuoteAppOptions configures the interactive quote widget.
type QuoteAppOptions struct {
	// Source is shown on the right of the header, usually the API host.
	Source    string
	Clipboard share.Clipboard
	Opener    share.Opener
}

type quoteModel struct {
	ctx       context.Context
	store     *quotestore.Store
	clipboard share.Clipboard
	opener    share.Opener
	source    string

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	status        string
	statusIsError bool

	// last is the most recent committed fetch; zero until one settles.
	last quotestore.Outcome

	width  int
	height int
}

func newQuoteModel(ctx context.Context, store *quotestore.Store, opts QuoteAppOptions) quoteModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Blue)

	h := help.New()
	h.Styles.ShortKey = styles.KeyStyle
	h.Styles.ShortDesc = styles.KeyDescStyle
	h.Styles.FullKey = styles.KeyStyle
	h.Styles.FullDesc = styles.KeyDescStyle

	if opts.Clipboard == nil {
		opts.Clipboard = share.SystemClipboard{}
	}
	if opts.Opener == nil {
		opts.Opener = share.SystemBrowser{}
	}

	return quoteModel{
		ctx:       ctx,
		store:     store,
		clipboard: opts.Clipboard,
		opener:    opts.Opener,
		source:    opts.Source,
		keys:      defaultKeyMap(),
		help:      h,
		spinner:   s,
	}
}

// RunQuoteApp starts the full-window quote widget. A quote is requested as
// soon as the widget mounts. Any in-flight request is canceled on exit.
func RunQuoteApp(store *quotestore.Store, opts QuoteAppOptions) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := tea.NewProgram(newQuoteModel(ctx, store, opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run quote widget: %w", err)
	}
	return nil
}

func (m quoteModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch(m.store.Begin()))
}

func (m quoteModel) fetch(t quotestore.Ticket) tea.Cmd {
	return func() tea.Msg {
		return quoteSettledMsg{outcome: m.store.Complete(m.ctx, t)}
	}
}

func (m quoteModel) copyText(text, what string) tea.Cmd {
	return func() tea.Msg {
		if err := m.clipboard.WriteAll(text); err != nil {
			return actionDoneMsg{err: fmt.Errorf("copy %s: %w", what, err)}
		}
		return actionDoneMsg{status: "Copied " + what + " to clipboard"}
	}
}

func (m quoteModel) openURL(u string) tea.Cmd {
	return func() tea.Msg {
		if err := m.opener.OpenURL(u); err != nil {
			return actionDoneMsg{err: fmt.Errorf("open share link: %w", err)}
		}
		return actionDoneMsg{status: "Opened share link in browser"}
	}
}

// --- Update ---

func (m quoteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case quoteSettledMsg:
		// Stale results never touched the store.
		if !msg.outcome.Stale {
			m.last = msg.outcome
		}
		return m, nil

	case actionDoneMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			m.statusIsError = true
		} else {
			m.status = msg.status
			m.statusIsError = false
		}
		return m, nil

	case spinner.TickMsg:
		if m.store.Snapshot().Loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

func (m quoteModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.store.Snapshot()
	m.syncKeys(st)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.New):
		m.status = ""
		return m, tea.Batch(m.spinner.Tick, m.fetch(m.store.Begin()))

	case key.Matches(msg, m.keys.Dismiss):
		m.store.DismissError()
		return m, nil

	case key.Matches(msg, m.keys.Tweet):
		return m, m.openURL(m.store.ShareURL())

	case key.Matches(msg, m.keys.Copy):
		return m, m.copyText(m.store.ShareText(), "quote")

	case key.Matches(msg, m.keys.CopyURL):
		return m, m.copyText(m.store.ShareURL(), "share link")
	}

	return m, nil
}

// syncKeys enables only the bindings that make sense for the current state.
// Disabled bindings never match, which is how refresh is ignored while a
// request is in flight.
func (m *quoteModel) syncKeys(st quotestore.State) {
	ready := !st.Loading && st.QuoteText != ""
	m.keys.New.SetEnabled(!st.Loading)
	m.keys.Dismiss.SetEnabled(st.HasError())
	m.keys.Tweet.SetEnabled(ready)
	m.keys.Copy.SetEnabled(ready)
	m.keys.CopyURL.SetEnabled(ready)
}

// --- View ---

func (m quoteModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	st := m.store.Snapshot()
	m.syncKeys(st)

	header := components.Header(m.width, "random quote", m.source, st.BackgroundColor)
	notice := components.Notice(m.width, st.ErrorMessage, m.keys.Dismiss.Help().Key)

	var footer string
	if m.help.ShowAll {
		footer = lipgloss.NewStyle().
			Width(m.width).
			Padding(0, 2).
			BorderStyle(lipgloss.Border{Top: "─"}).
			BorderTop(true).
			BorderForeground(styles.DimGray).
			Render(m.help.View(m.keys))
	} else {
		footer = components.Footer(m.width, components.BindingsFrom(m.keys.ShortHelp()...))
	}

	statusBar := components.StatusBar(m.width, m.status, m.statusIsError, m.fetchMeta(st))

	used := lipgloss.Height(header) + lipgloss.Height(footer)
	if notice != "" {
		used += lipgloss.Height(notice)
	}
	if statusBar != "" {
		used += lipgloss.Height(statusBar)
	}
	contentH := max(m.height-used, 1)

	sections := []string{header}
	if notice != "" {
		sections = append(sections, notice)
	}
	sections = append(sections, m.renderContent(st, contentH))
	if statusBar != "" {
		sections = append(sections, statusBar)
	}
	sections = append(sections, footer)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// fetchMeta summarises the last committed fetch, e.g. "remote · 182ms".
func (m quoteModel) fetchMeta(st quotestore.State) string {
	if st.Loading || m.last.Generation == 0 {
		return ""
	}
	source := "remote"
	if m.last.Fallback {
		source = "offline"
	}
	return source + " · " + m.last.Duration.Round(time.Millisecond).String()
}

func (m quoteModel) renderContent(st quotestore.State, height int) string {
	if st.Loading {
		return lipgloss.Place(
			m.width, height,
			lipgloss.Center, lipgloss.Center,
			styles.MutedText.Render(m.spinner.View()+"  Fetching a quote…"),
		)
	}

	if st.QuoteText == "" {
		return lipgloss.Place(
			m.width, height,
			lipgloss.Center, lipgloss.Center,
			styles.MutedText.Render("No quote yet. Press n to fetch one."),
		)
	}

	wrap := min(m.width-10, maxQuoteWidth)
	if wrap < 10 {
		wrap = 10
	}

	body := styles.QuoteText(st.BackgroundColor).Render(ansi.Wordwrap("“"+st.QuoteText+"”", wrap, ""))
	author := styles.QuoteAuthor(st.BackgroundColor).Render("- " + st.QuoteAuthor)
	byline := lipgloss.PlaceHorizontal(lipgloss.Width(body), lipgloss.Right, author)

	card := styles.QuoteCard(st.BackgroundColor).Render(
		lipgloss.JoinVertical(lipgloss.Left, body, "", byline),
	)
	swatch := styles.AccentBadge(st.BackgroundColor, st.BackgroundColor)

	return lipgloss.Place(
		m.width, height,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, card, "", swatch),
	)
}
