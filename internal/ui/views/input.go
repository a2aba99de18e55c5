package views

import (
	"github.com/mattn/go-runewidth"
)

// renderInput draws the query box. In insert mode the cursor cell is shown
// reversed and the text scrolls so the cursor stays visible.
func (r *Renderer) renderInput(state ViewState, width int) string {
	box := r.styles.InputBox
	if state.Insert {
		box = r.styles.InputBoxFocus
	}

	// border (2) + padding (2)
	textWidth := width - 4
	if textWidth < 1 {
		textWidth = 1
	}

	if !state.Insert && state.InputBefore == "" && state.InputAfter == "" {
		placeholder := runewidth.Truncate("Press i to search YouTube", textWidth, "…")
		return box.Width(width - 2).Render(r.styles.Dim.Render(placeholder))
	}

	before, under, after := scrollInput(state.InputBefore, state.InputAfter, textWidth)
	text := before
	if state.Insert {
		text += r.styles.Cursor.Render(under) + after
	} else {
		text += under + after
	}
	return box.Width(width - 2).Render(text)
}

// scrollInput picks the visible slice of the buffer for a field of the
// given display width. It returns the text before the cursor, the cell
// under the cursor (a space at the end of the buffer) and the text after.
func scrollInput(before, after string, width int) (string, string, string) {
	under := " "
	rest := ""
	if after != "" {
		ar := []rune(after)
		under = string(ar[0])
		rest = string(ar[1:])
	}

	// Drop runes from the left until the cursor cell fits
	budget := width - runewidth.StringWidth(under)
	if budget < 0 {
		budget = 0
	}
	br := []rune(before)
	for runewidth.StringWidth(string(br)) > budget {
		br = br[1:]
	}
	before = string(br)

	remaining := width - runewidth.StringWidth(before) - runewidth.StringWidth(under)
	if remaining <= 0 {
		return before, under, ""
	}
	return before, under, runewidth.Truncate(rest, remaining, "")
}
