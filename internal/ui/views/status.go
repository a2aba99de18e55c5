package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// renderStatusBar shows the mode badge followed by search progress,
// the last error or the last status message
func (r *Renderer) renderStatusBar(state ViewState, width int) string {
	badge := r.styles.ModeNormal.Render(state.Mode)
	if state.Insert {
		badge = r.styles.ModeInsert.Render(state.Mode)
	}

	room := width - lipgloss.Width(badge) - 1
	if room < 0 {
		room = 0
	}

	var msg string
	switch {
	case state.Searching:
		text := "Searching " + state.SearchQuery + "…"
		if state.Spinner != "" {
			text = strings.TrimSpace(state.Spinner) + " " + text
		}
		msg = r.styles.StatusLoading.Render(runewidth.Truncate(text, room, "…"))
	case state.Error != "":
		msg = r.styles.StatusError.Render(runewidth.Truncate("Error: "+state.Error, room, "…"))
	case state.StatusMessage != "":
		msg = r.styles.StatusSuccess.Render(runewidth.Truncate(state.StatusMessage, room, "…"))
	}

	if msg == "" {
		return badge
	}
	return badge + " " + msg
}
