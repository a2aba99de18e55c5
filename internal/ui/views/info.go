package views

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const infoDescriptionLines = 4

// renderInfo draws the details box for the selected result
func (r *Renderer) renderInfo(info InfoPanel, width, maxHeight int) string {
	inner := width - 4
	if inner < 10 {
		inner = 10
	}

	label := func(name, value string) string {
		return r.styles.InfoLabel.Render(runewidth.FillRight(name, 11)) + runewidth.Truncate(value, inner-11, "…")
	}

	lines := []string{
		r.styles.Header.Render(runewidth.Truncate(info.Title, inner, "…")),
		label("Channel", info.Channel),
		label("Published", info.Published),
		label("Duration", info.Duration),
		label("Views", info.Views),
		label("Link", info.Link),
	}

	if desc := descriptionPreview(info.Description, inner, infoDescriptionLines); desc != "" {
		lines = append(lines, "", r.styles.Dim.Render(desc))
	}

	// border (2)
	if maxHeight > 2 && len(lines) > maxHeight-2 {
		lines = lines[:maxHeight-2]
	}
	return r.styles.InfoBox.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// descriptionPreview keeps the first non-empty lines of a description
func descriptionPreview(desc string, width, maxLines int) string {
	var out []string
	for _, line := range strings.Split(desc, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, runewidth.Truncate(line, width, "…"))
		if len(out) == maxLines {
			break
		}
	}
	return strings.Join(out, "\n")
}
