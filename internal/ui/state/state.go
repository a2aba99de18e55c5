package state

import (
	"ytgrip/internal/domain"
	"ytgrip/internal/ui/input/types"
	"ytgrip/internal/ui/repositories"
	"ytgrip/internal/ui/services/editor"
	"ytgrip/internal/ui/services/selection"
)

// AppState contains all the application state.
// Only the Bubble Tea update loop mutates it.
type AppState struct {
	// Modal state
	Mode types.Mode
	Tab  domain.Tab

	// Search tab
	Input     *editor.Buffer
	Results   *repositories.ResultStore
	Selection selection.Model
	ShowInfo  bool

	// Subscriptions tab
	Feeds         *repositories.FeedStore
	FeedSelection selection.Model
	FeedsLoading  bool

	// Search lifecycle
	Searching   bool
	SearchQuery string // query in flight, or the last committed one

	// Status bar
	StatusMessage string
	Err           error

	// UI state
	Width  int
	Height int
}

// NewAppState creates a new application state
func NewAppState(channels []domain.Channel) *AppState {
	return &AppState{
		Mode:    types.ModeNormal,
		Tab:     domain.TabSearch,
		Input:   editor.New(),
		Results: repositories.NewResultStore(),
		Feeds:   repositories.NewFeedStore(channels),
	}
}

// SelectedResult returns the highlighted search result, if any
func (s *AppState) SelectedResult() *domain.ResultItem {
	i, ok := s.Selection.Selected()
	if !ok {
		return nil
	}
	return s.Results.At(i)
}

// SelectedFeedEntry returns the highlighted subscription upload, if any
func (s *AppState) SelectedFeedEntry() *domain.FeedEntry {
	i, ok := s.FeedSelection.Selected()
	if !ok {
		return nil
	}
	return s.Feeds.At(i)
}

// SetStatus shows an informational message and clears any error
func (s *AppState) SetStatus(msg string) {
	s.StatusMessage = msg
	s.Err = nil
}

// SetError shows err in the status bar
func (s *AppState) SetError(err error) {
	s.Err = err
	s.StatusMessage = ""
}

// ClearStatus empties the status line
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.Err = nil
}
