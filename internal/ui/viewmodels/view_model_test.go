package viewmodels

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ytgrip/internal/domain"
	"ytgrip/internal/ui/input/modes"
	"ytgrip/internal/ui/input/types"
	"ytgrip/internal/ui/state"
)

func TestViews(t *testing.T) {
	assert.Equal(t, "1,234,567", Views("1234567"))
	assert.Equal(t, "12", Views("12"))
	assert.Equal(t, "", Views(""))
	assert.Equal(t, "n/a", Views("n/a"))
}

func TestAge(t *testing.T) {
	assert.Equal(t, "", Age(""))
	assert.Equal(t, "yesterday", Age("yesterday"))
	past := time.Now().Add(-72 * time.Hour).UTC().Format(time.RFC3339)
	assert.Equal(t, "3 days ago", Age(past))
}

func TestResultRowFormatsFields(t *testing.T) {
	row := ResultRow(domain.ResultItem{
		Title:     "t",
		Channel:   "c",
		Duration:  "PT1H2M3S",
		ViewCount: "9876543",
	})
	assert.Equal(t, "1:02:03", row.Duration)
	assert.Equal(t, "9,876,543", row.Views)
}

func TestChannelName(t *testing.T) {
	assert.Equal(t, "Go", ChannelName(domain.Channel{Name: "Go", ID: "UC1"}))
	assert.Equal(t, "UC1", ChannelName(domain.Channel{ID: "UC1"}))
}

func TestBuildViewStateProjectsState(t *testing.T) {
	st := state.NewAppState([]domain.Channel{{Name: "Go", ID: "UC1"}})
	st.Results.Replace([]domain.ResultItem{{Title: "a", Link: "https://youtube.com/watch?v=a"}, {Title: "b"}})
	st.Selection.Reset(2)
	st.ShowInfo = true
	st.Mode = types.ModeInsert
	st.Input.InsertString("elden ring")
	st.Input.MoveLeft()
	st.SetError(errors.New("boom"))

	keys := modes.DefaultKeyMap()
	vm := NewViewModel(st, &keys)
	vm.SetDimensions(100, 30)
	vm.SetSpinner("⠋")

	vs := vm.BuildViewState()
	assert.Equal(t, 100, vs.Width)
	assert.Equal(t, "INSERT", vs.Mode)
	assert.True(t, vs.Insert)
	assert.Equal(t, "elden rin", vs.InputBefore)
	assert.Equal(t, "g", vs.InputAfter)
	assert.Len(t, vs.Results, 2)
	assert.Equal(t, 0, vs.Selected)
	require.NotNil(t, vs.Info)
	assert.Equal(t, "https://youtube.com/watch?v=a", vs.Info.Link)
	assert.Equal(t, "boom", vs.Error)
	assert.Empty(t, vs.Spinner, "spinner only while something loads")
	require.Len(t, vs.Channels, 1)
	assert.Equal(t, "Go", vs.Channels[0].Name)
	assert.Equal(t, -1, vs.FeedSelected)
}

func TestBuildViewStateNoSelection(t *testing.T) {
	st := state.NewAppState(nil)
	st.ShowInfo = true
	st.Searching = true

	vm := NewViewModel(st, nil)
	vm.SetSpinner("⠋")
	vs := vm.BuildViewState()

	assert.Equal(t, -1, vs.Selected)
	assert.False(t, vs.ShowInfo)
	assert.Nil(t, vs.Info)
	assert.Equal(t, "⠋", vs.Spinner)
}
