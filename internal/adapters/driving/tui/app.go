package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/clir-cli/internal/core/domain"
)

// defaultTopK bounds the number of results shown in the result list.
const defaultTopK = 10

// searchCompleted carries search results back to the model.
type searchCompleted struct {
	response *domain.SearchResponse
	err      error
}

// styles holds the pre-configured lipgloss styles for the app.
type styles struct {
	title    lipgloss.Style
	subtitle lipgloss.Style
	normal   lipgloss.Style
	muted    lipgloss.Style
	selected lipgloss.Style
	score    lipgloss.Style
	errText  lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4")),
		normal:   lipgloss.NewStyle().Foreground(lipgloss.Color("#CDD6F4")),
		muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
		score:    lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF")),
		errText:  lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")),
	}
}

// App is the root TUI model: a query input above a navigable result list.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles styles

	input     textinput.Model
	response  *domain.SearchResponse
	selected  int
	searching bool
	err       error

	width  int
	height int
}

// NewApp creates the TUI application model.
func NewApp(ports *Ports) (*App, error) {
	if ports == nil || ports.Search == nil {
		return nil, ErrNoSearchService
	}

	input := textinput.New()
	input.Placeholder = "Type a query in any language and press Enter"
	input.CharLimit = 256
	input.Focus()

	return &App{
		ports:  ports,
		ctx:    context.Background(),
		styles: defaultStyles(),
		input:  input,
		width:  80,
		height: 24,
	}, nil
}

// WithContext sets the context used for searches.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init starts the input cursor blink.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.input.Width = msg.Width - 4
		return a, nil

	case searchCompleted:
		a.searching = false
		a.selected = 0
		if msg.err != nil {
			a.err = msg.err
			a.response = nil
		} else {
			a.err = nil
			a.response = msg.response
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return a, tea.Quit

	case tea.KeyEsc:
		if a.response != nil || a.err != nil {
			a.response = nil
			a.err = nil
			return a, nil
		}
		return a, tea.Quit

	case tea.KeyEnter:
		query := strings.TrimSpace(a.input.Value())
		if query == "" || a.searching {
			return a, nil
		}
		a.searching = true
		return a, a.search(query)

	case tea.KeyUp:
		if a.selected > 0 {
			a.selected--
		}
		return a, nil

	case tea.KeyDown:
		if a.response != nil && a.selected < len(a.response.Results)-1 {
			a.selected++
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// search returns a command running the query against the pipeline.
func (a *App) search(query string) tea.Cmd {
	ctx := a.ctx
	svc := a.ports.Search
	return func() tea.Msg {
		resp, err := svc.Search(ctx, query, domain.SearchOptions{
			SourceLang: domain.LangAuto,
			TopK:       defaultTopK,
		})
		return searchCompleted{response: resp, err: err}
	}
}

// View renders the app.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.title.Render("clir") + a.styles.muted.Render("  cross-language document search"))
	b.WriteString("\n\n")
	b.WriteString(a.input.View())
	b.WriteString("\n\n")

	switch {
	case a.searching:
		b.WriteString(a.styles.muted.Render("Searching..."))

	case a.err != nil:
		b.WriteString(a.styles.errText.Render("Error: " + a.err.Error()))

	case a.response != nil:
		a.renderResults(&b)

	default:
		b.WriteString(a.styles.muted.Render("No search yet."))
	}

	b.WriteString("\n\n")
	b.WriteString(a.styles.muted.Render("enter search · ↑/↓ navigate · esc clear · ctrl+c quit"))
	return b.String()
}

func (a *App) renderResults(b *strings.Builder) {
	resp := a.response

	if resp.TranslationSkipped {
		b.WriteString(a.styles.errText.Render("Translation unavailable, searched with the raw query."))
		b.WriteString("\n")
	} else if resp.TranslatedQuery != resp.Query {
		b.WriteString(a.styles.subtitle.Render(fmt.Sprintf("Translated: %s", resp.TranslatedQuery)))
		b.WriteString("\n")
	}

	if len(resp.Results) == 0 {
		b.WriteString(a.styles.muted.Render("No results found."))
		return
	}

	b.WriteString("\n")
	for i, hit := range resp.Results {
		line := fmt.Sprintf("[%d] %s %s",
			i+1,
			a.styles.score.Render(fmt.Sprintf("%.4f", hit.Score)),
			truncateLine(hit.Text, a.width-12))
		if i == a.selected {
			b.WriteString(a.styles.selected.Render("> " + line))
		} else {
			b.WriteString(a.styles.normal.Render("  " + line))
		}
		b.WriteString("\n")
	}
}

// truncateLine fits text on a single display line.
func truncateLine(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if width < 10 {
		width = 10
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}
