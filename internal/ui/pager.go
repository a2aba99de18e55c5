package ui

import (
	"fmt"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"ytgrip/internal/domain"
	"ytgrip/internal/ui/input/modes"
	"ytgrip/internal/ui/viewmodels"
	"ytgrip/internal/youtube"
)

// PagerOps shows long text in ov while the TUI is suspended
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new PagerOps instance
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program reference for terminal management
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// ShowInPager shows content using ov pager
func (p *PagerOps) ShowInPager(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Don't write the document back to our screen on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

var (
	pagerTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1)

	pagerSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39")).
				MarginTop(1)

	pagerKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	pagerDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	pagerLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// renderHelpContent lists the active bindings for the pager
func renderHelpContent(keys *modes.KeyMap) string {
	var help strings.Builder

	help.WriteString(pagerTitleStyle.Render("ytgrip Help"))
	help.WriteString("\n")

	section := func(title string, rows ...[2]string) {
		help.WriteString(pagerSectionStyle.Render(title))
		help.WriteString("\n")
		for _, row := range rows {
			help.WriteString(fmt.Sprintf("  %s  %s\n",
				pagerKeyStyle.Render(fmt.Sprintf("%-14s", row[0])),
				pagerDescStyle.Render(row[1])))
		}
		help.WriteString("\n")
	}

	row := func(keys []string, desc string) [2]string {
		return [2]string{strings.Join(keys, ", "), desc}
	}

	section("Navigation",
		row(keys.Down.Keys(), "Move down"),
		row(keys.Up.Keys(), "Move up"),
		row(keys.Top.Keys(), "Go to top"),
		row(keys.Bottom.Keys(), "Go to bottom"),
		row(keys.TabSearch.Keys(), "Search tab"),
		row(keys.TabSubs.Keys(), "Subscriptions tab"),
		row(slices.Concat(keys.NextTab.Keys(), keys.PrevTab.Keys()), "Next/previous tab"),
	)

	section("Videos",
		row(keys.Play.Keys(), "Play selected video"),
		row(keys.ToggleInfo.Keys(), "Toggle info panel"),
		row(keys.Description.Keys(), "Show description"),
		row(keys.Refresh.Keys(), "Reload subscription feeds"),
	)

	section("Search",
		row(keys.Insert.Keys(), "Edit query (insert mode)"),
		[2]string{"enter", "Submit query"},
		[2]string{"esc", "Back to normal mode"},
		[2]string{"ctrl+a, ctrl+e", "Start/end of line"},
	)

	section("Other",
		row(keys.Clear.Keys(), "Close info and clear status"),
		row(keys.Help.Keys(), "This help"),
		row(keys.Quit.Keys(), "Quit"),
	)

	return strings.TrimRight(help.String(), "\n")
}

// descriptionContent formats a search result for the pager
func descriptionContent(item domain.ResultItem) string {
	var b strings.Builder
	b.WriteString(pagerTitleStyle.Render(item.Title))
	b.WriteString("\n")

	field := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(pagerLabelStyle.Render(fmt.Sprintf("%-10s", label)))
		b.WriteString(value)
		b.WriteString("\n")
	}
	field("Channel", item.Channel)
	field("Published", viewmodels.Age(item.PublishedAt))
	field("Duration", youtube.FormatDuration(item.Duration))
	field("Views", viewmodels.Views(item.ViewCount))
	field("Link", item.Link)

	b.WriteString("\n")
	if strings.TrimSpace(item.Description) == "" {
		b.WriteString(pagerLabelStyle.Render("No description."))
	} else {
		b.WriteString(item.Description)
	}
	return b.String()
}

// feedEntryContent formats a subscription upload for the pager
func feedEntryContent(entry domain.FeedEntry) string {
	var b strings.Builder
	b.WriteString(pagerTitleStyle.Render(entry.Title))
	b.WriteString("\n")
	b.WriteString(pagerLabelStyle.Render(fmt.Sprintf("%-10s", "Channel")) + entry.Channel + "\n")
	if !entry.Published.IsZero() {
		b.WriteString(pagerLabelStyle.Render(fmt.Sprintf("%-10s", "Published")) + entry.Published.Format(time.RFC1123) + "\n")
	}
	if entry.Views != "" {
		b.WriteString(pagerLabelStyle.Render(fmt.Sprintf("%-10s", "Views")) + viewmodels.Views(entry.Views) + "\n")
	}
	b.WriteString(pagerLabelStyle.Render(fmt.Sprintf("%-10s", "Link")) + entry.Link)
	return b.String()
}
