package views

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"

	"ytgrip/internal/domain"
)

func rows(n int) []ResultRow {
	out := make([]ResultRow, n)
	for i := range out {
		out[i] = ResultRow{Title: fmt.Sprintf("Video %02d", i), Channel: "Chan", Published: "2 days ago", Duration: "4:13", Views: "1,234"}
	}
	return out
}

func TestRenderSearchTab(t *testing.T) {
	r := NewRenderer()
	out := r.Render(ViewState{
		Width:         100,
		Height:        20,
		Mode:          "NORMAL",
		Tab:           domain.TabSearch,
		Results:       rows(3),
		Selected:      1,
		StatusMessage: "3 results for elden+ring",
	})

	assert.Contains(t, out, "ytgrip")
	assert.Contains(t, out, "1 Search")
	assert.Contains(t, out, "2 Subs")
	assert.Contains(t, out, "Video 02")
	assert.Contains(t, out, "NORMAL")
	assert.Contains(t, out, "3 results for elden+ring")
	assert.Equal(t, 20, lipgloss.Height(out))
}

func TestRenderShowsErrorOverStatus(t *testing.T) {
	r := NewRenderer()
	out := r.Render(ViewState{Width: 80, Height: 12, Mode: "NORMAL", Error: "youtube search: 403 Forbidden: quota"})
	assert.Contains(t, out, "Error: youtube search: 403")
}

func TestRenderSearchingShowsQuery(t *testing.T) {
	r := NewRenderer()
	out := r.Render(ViewState{Width: 80, Height: 12, Mode: "INSERT", Insert: true, Searching: true, SearchQuery: "elden+ring", InputBefore: "elden ring"})
	assert.Contains(t, out, "Searching elden+ring")
	assert.Contains(t, out, "elden ring")
}

func TestRenderInfoPanel(t *testing.T) {
	r := NewRenderer()
	out := r.Render(ViewState{
		Width:    100,
		Height:   30,
		Mode:     "NORMAL",
		Results:  rows(2),
		Selected: 0,
		ShowInfo: true,
		Info: &InfoPanel{
			Title:       "Video 00",
			Channel:     "Chan",
			Duration:    "1:02:03",
			Views:       "1,234,567",
			Link:        "https://youtube.com/watch?v=abc",
			Description: "first line\n\nsecond line",
		},
	})
	assert.Contains(t, out, "https://youtube.com/watch?v=abc")
	assert.Contains(t, out, "1,234,567")
	assert.Contains(t, out, "second line")
}

func TestRenderSubscriptions(t *testing.T) {
	r := NewRenderer()
	out := r.Render(ViewState{
		Width:  120,
		Height: 20,
		Mode:   "NORMAL",
		Tab:    domain.TabSubscriptions,
		Channels: []ChannelRow{
			{Name: "Gophers", Loaded: true, Entries: 2},
			{Name: "Broken", Err: "404"},
		},
		Feeds:        []FeedRow{{Title: "Generics in practice", Channel: "Gophers", Age: "1 day ago"}},
		FeedSelected: 0,
	})
	assert.Contains(t, out, "Channels")
	assert.Contains(t, out, "Gophers")
	assert.Contains(t, out, "Generics in practice")
}

func TestRenderSubscriptionsEmpty(t *testing.T) {
	r := NewRenderer()
	out := r.Render(ViewState{Width: 100, Height: 10, Mode: "NORMAL", Tab: domain.TabSubscriptions})
	assert.Contains(t, out, "No subscriptions")
}

func TestResultsScrollToSelection(t *testing.T) {
	r := NewRenderer()
	out := r.renderResults(ViewState{Results: rows(30), Selected: 25}, 100, 10)
	assert.Contains(t, out, "Video 25")
	assert.NotContains(t, out, "Video 00")
	assert.Contains(t, out, "of 30")
}

func TestWindowStart(t *testing.T) {
	assert.Equal(t, 0, windowStart(-1, 5, 10))
	assert.Equal(t, 0, windowStart(3, 20, 5))
	assert.Equal(t, 1, windowStart(5, 20, 5))
	assert.Equal(t, 15, windowStart(19, 20, 5))
}

func TestScrollInputKeepsCursorVisible(t *testing.T) {
	before, under, after := scrollInput("hello", "", 20)
	assert.Equal(t, "hello", before)
	assert.Equal(t, " ", under)
	assert.Equal(t, "", after)

	before, under, _ = scrollInput(strings.Repeat("a", 50), "", 10)
	assert.Equal(t, 9, runewidth.StringWidth(before))
	assert.Equal(t, " ", under)

	before, under, after = scrollInput("ab", "cdefghijkl", 6)
	assert.Equal(t, "ab", before)
	assert.Equal(t, "c", under)
	assert.Equal(t, "def", after)
}

func TestScrollInputWideRunes(t *testing.T) {
	before, under, _ := scrollInput("日本語日本語", "", 7)
	assert.LessOrEqual(t, runewidth.StringWidth(before)+runewidth.StringWidth(under), 7)
	assert.True(t, strings.HasSuffix(before, "語"))
}

func TestCellPadsToWidth(t *testing.T) {
	assert.Equal(t, 8, runewidth.StringWidth(cell("日本語日本語", 8)))
	assert.Equal(t, 8, runewidth.StringWidth(cell("ab", 8)))
	assert.Equal(t, "      ab", cellRight("ab", 8))
}
