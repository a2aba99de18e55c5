package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ytgrip/internal/domain"
)

// ResultRow is one search result, already formatted for display
type ResultRow struct {
	Title     string
	Channel   string
	Published string
	Duration  string
	Views     string
}

// InfoPanel describes the selected result
type InfoPanel struct {
	Title       string
	Channel     string
	Published   string
	Duration    string
	Views       string
	Link        string
	Description string
}

// ChannelRow is one subscribed channel with its load state
type ChannelRow struct {
	Name    string
	Entries int
	Loaded  bool
	Err     string
}

// FeedRow is one upload on the subscriptions tab
type FeedRow struct {
	Title   string
	Channel string
	Age     string
	Views   string
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Mode   string
	Insert bool
	Tab    domain.Tab

	InputBefore string
	InputAfter  string

	Results  []ResultRow
	Selected int // -1 when nothing is selected
	ShowInfo bool
	Info     *InfoPanel

	Channels     []ChannelRow
	Feeds        []FeedRow
	FeedSelected int
	FeedsLoading bool

	Searching     bool
	SearchQuery   string
	Spinner       string
	StatusMessage string
	Error         string

	HelpView string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	width := state.Width
	if width <= 0 {
		width = 80
	}
	height := state.Height
	if height <= 0 {
		height = 24
	}
	inner := width - 2 // Main padding

	top := []string{r.renderTabBar(state, inner)}
	bottom := []string{r.renderStatusBar(state, inner)}
	if state.HelpView != "" {
		bottom = append(bottom, r.styles.Help.Render(state.HelpView))
	}

	bodyHeight := height - len(top) - len(bottom)
	if bodyHeight < 3 {
		bodyHeight = 3
	}

	var body string
	switch state.Tab {
	case domain.TabSubscriptions:
		body = r.renderSubscriptions(state, inner, bodyHeight)
	default:
		body = r.renderSearchTab(state, inner, bodyHeight)
	}
	body = padLines(body, bodyHeight)

	content := strings.Join(append(append(top, body), bottom...), "\n")
	return r.styles.Main.MaxHeight(height).Render(content)
}

func (r *Renderer) renderTabBar(state ViewState, width int) string {
	parts := []string{r.styles.Title.Render("ytgrip"), " "}
	for i, tab := range domain.Tabs {
		label := string(rune('1'+i)) + " " + tab.String()
		if tab == state.Tab {
			parts = append(parts, r.styles.TabActive.Render(label))
		} else {
			parts = append(parts, r.styles.TabInactive.Render(label))
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if lipgloss.Width(bar) > width {
		return r.styles.Title.Render("ytgrip")
	}
	return bar
}

func (r *Renderer) renderSearchTab(state ViewState, width, height int) string {
	input := r.renderInput(state, width)
	used := lipgloss.Height(input)

	var info string
	if state.ShowInfo && state.Info != nil {
		info = r.renderInfo(*state.Info, width, height/2)
		used += lipgloss.Height(info)
	}

	tableHeight := height - used
	sections := []string{input, r.renderResults(state, width, tableHeight)}
	if info != "" {
		sections = append(sections, info)
	}
	return strings.Join(sections, "\n")
}

// padLines pads or cuts s to exactly n lines
func padLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
