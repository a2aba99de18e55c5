package views

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	channelColWidth   = 20
	publishedColWidth = 14
	durationColWidth  = 9
	viewsColWidth     = 13
	colGap            = 2
)

// renderResults draws the results table, scrolled so the selected row is visible
func (r *Renderer) renderResults(state ViewState, width, height int) string {
	if height < 2 {
		height = 2
	}

	if len(state.Results) == 0 {
		msg := "No results yet."
		if state.Searching {
			msg = "Searching…"
		}
		return r.styles.Dim.Render(msg)
	}

	titleWidth := width - channelColWidth - publishedColWidth - durationColWidth - viewsColWidth - 4*colGap
	if titleWidth < 10 {
		titleWidth = 10
	}

	lines := []string{r.styles.Header.Render(formatRow(titleWidth, "Title", "Channel", "Published", "Duration", "Views"))}

	rows := height - 1
	hasMore := len(state.Results) > rows
	if hasMore {
		rows--
	}
	if rows < 1 {
		rows = 1
	}
	start := windowStart(state.Selected, len(state.Results), rows)
	end := min(start+rows, len(state.Results))

	for i := start; i < end; i++ {
		row := state.Results[i]
		line := formatRow(titleWidth, row.Title, row.Channel, row.Published, row.Duration, row.Views)
		if i == state.Selected {
			lines = append(lines, r.styles.SelectionBg.Render(line))
		} else {
			lines = append(lines, r.styles.Row.Render(line))
		}
	}

	if hasMore {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("%d-%d of %d", start+1, end, len(state.Results))))
	}
	return strings.Join(lines, "\n")
}

func formatRow(titleWidth int, title, channel, published, duration, views string) string {
	gap := strings.Repeat(" ", colGap)
	return strings.Join([]string{
		cell(title, titleWidth),
		cell(channel, channelColWidth),
		cell(published, publishedColWidth),
		cellRight(duration, durationColWidth),
		cellRight(views, viewsColWidth),
	}, gap)
}

// cell truncates or pads s to exactly width display cells
func cell(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}

func cellRight(s string, width int) string {
	return runewidth.FillLeft(runewidth.Truncate(s, width, "…"), width)
}

// windowStart returns the first visible row so that selected is on screen
func windowStart(selected, total, rows int) int {
	if selected < rows || total <= rows {
		return 0
	}
	start := selected - rows + 1
	if start > total-rows {
		start = total - rows
	}
	return start
}
