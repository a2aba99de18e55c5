package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"

	"ytgrip/internal/ui/input/modes"
	"ytgrip/internal/ui/input/types"
	"ytgrip/internal/ui/state"
	"ytgrip/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state   *state.AppState
	keys    *modes.KeyMap
	help    help.Model
	spinner string
	width   int
	height  int
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, keys *modes.KeyMap) *ViewModel {
	return &ViewModel{
		state: appState,
		keys:  keys,
		help:  help.New(),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// SetSpinner sets the current spinner frame
func (vm *ViewModel) SetSpinner(frame string) {
	vm.spinner = frame
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	st := vm.state

	vs := views.ViewState{
		Width:         vm.width,
		Height:        vm.height,
		Mode:          st.Mode.String(),
		Insert:        st.Mode == types.ModeInsert,
		Tab:           st.Tab,
		InputBefore:   st.Input.Before(),
		InputAfter:    st.Input.After(),
		Selected:      -1,
		FeedSelected:  -1,
		FeedsLoading:  st.FeedsLoading,
		Searching:     st.Searching,
		SearchQuery:   st.SearchQuery,
		StatusMessage: st.StatusMessage,
	}

	if st.Err != nil {
		vs.Error = st.Err.Error()
	}
	if st.Searching || st.FeedsLoading {
		vs.Spinner = vm.spinner
	}

	results := st.Results.All()
	vs.Results = make([]views.ResultRow, 0, len(results))
	for _, item := range results {
		vs.Results = append(vs.Results, ResultRow(item))
	}
	if i, ok := st.Selection.Selected(); ok {
		vs.Selected = i
	}
	if st.ShowInfo {
		if item := st.SelectedResult(); item != nil {
			info := Info(*item)
			vs.ShowInfo = true
			vs.Info = &info
		}
	}

	for _, ch := range st.Feeds.Channels() {
		row := views.ChannelRow{
			Name:    ChannelName(ch.Channel),
			Entries: ch.Entries,
			Loaded:  ch.Loaded,
		}
		if ch.Err != nil {
			row.Err = ch.Err.Error()
		}
		vs.Channels = append(vs.Channels, row)
	}
	for _, entry := range st.Feeds.Entries() {
		vs.Feeds = append(vs.Feeds, FeedRow(entry))
	}
	if i, ok := st.FeedSelection.Selected(); ok {
		vs.FeedSelected = i
	}

	if vm.keys != nil && st.Mode == types.ModeNormal {
		vs.HelpView = vm.help.ShortHelpView(vm.keys.ShortHelp())
	} else if st.Mode == types.ModeInsert {
		vs.HelpView = "enter search • esc normal mode • ctrl+c quit"
	}

	return vs
}
