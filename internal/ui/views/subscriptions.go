package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const channelPaneWidth = 28

// renderSubscriptions draws the channel list beside the merged upload feed
func (r *Renderer) renderSubscriptions(state ViewState, width, height int) string {
	if len(state.Channels) == 0 {
		return r.styles.Dim.Render("No subscriptions. Add [[subscriptions]] entries to the config file.")
	}

	paneHeight := height - 2 // borders
	if paneHeight < 1 {
		paneHeight = 1
	}

	left := r.renderChannelPane(state, channelPaneWidth-2, paneHeight)
	right := r.renderFeedPane(state, width-channelPaneWidth-2, paneHeight)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		r.styles.Pane.Width(channelPaneWidth-2).Height(paneHeight).Render(left),
		r.styles.Pane.Width(width-channelPaneWidth-2).Height(paneHeight).Render(right),
	)
}

func (r *Renderer) renderChannelPane(state ViewState, width, height int) string {
	lines := []string{r.styles.PaneTitle.Render("Channels")}
	for _, ch := range state.Channels {
		if len(lines) >= height {
			break
		}
		var suffix string
		switch {
		case ch.Err != "":
			suffix = r.styles.StatusError.Render("!")
		case ch.Loaded:
			suffix = r.styles.Dim.Render(fmt.Sprintf("%d", ch.Entries))
		default:
			suffix = r.styles.Dim.Render("…")
		}
		nameWidth := width - lipgloss.Width(suffix) - 1
		if nameWidth < 1 {
			nameWidth = 1
		}
		lines = append(lines, runewidth.FillRight(runewidth.Truncate(ch.Name, nameWidth, "…"), nameWidth)+" "+suffix)
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderFeedPane(state ViewState, width, height int) string {
	title := "Latest uploads"
	if state.FeedsLoading && state.Spinner != "" {
		title += " " + state.Spinner
	}
	lines := []string{r.styles.PaneTitle.Render(title)}

	if len(state.Feeds) == 0 {
		msg := "Nothing loaded yet. Press r to refresh."
		if state.FeedsLoading {
			msg = "Loading feeds…"
		}
		lines = append(lines, r.styles.Dim.Render(runewidth.Truncate(msg, width, "…")))
		return strings.Join(lines, "\n")
	}

	const metaWidth = 36
	titleWidth := width - metaWidth - colGap
	if titleWidth < 10 {
		titleWidth = 10
	}

	rows := height - 1
	if rows < 1 {
		rows = 1
	}
	start := windowStart(state.FeedSelected, len(state.Feeds), rows)
	end := min(start+rows, len(state.Feeds))

	for i := start; i < end; i++ {
		f := state.Feeds[i]
		meta := runewidth.Truncate(f.Channel, 16, "…") + " · " + f.Age
		line := cell(f.Title, titleWidth) + strings.Repeat(" ", colGap) + cell(meta, metaWidth)
		if i == state.FeedSelected {
			lines = append(lines, r.styles.SelectionBg.Render(line))
		} else {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
