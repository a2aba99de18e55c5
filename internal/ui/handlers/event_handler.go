package handlers

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"ytgrip/internal/eventbus"
	"ytgrip/internal/logging"
	"ytgrip/internal/ui/state"
)

// EventHandler handles domain events and updates state
type EventHandler struct {
	state *state.AppState
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState) *EventHandler {
	return &EventHandler{state: appState}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.FeedRefreshStartedEvent:
		h.state.FeedsLoading = true

	case eventbus.FeedLoadedEvent:
		var selectedLink string
		if entry := h.state.SelectedFeedEntry(); entry != nil {
			selectedLink = entry.Link
		}
		h.state.Feeds.SetEntries(e.Channel.ID, e.Entries)
		n := h.state.Feeds.Len()
		// The merge re-sorts, so follow the highlighted upload by link
		if selectedLink == "" {
			h.state.FeedSelection.Reset(n)
		} else if i := h.state.Feeds.IndexOfLink(selectedLink); i >= 0 {
			h.state.FeedSelection.Select(i, n)
		} else {
			h.state.FeedSelection.Clamp(n)
		}

	case eventbus.FeedFailedEvent:
		h.state.Feeds.SetError(e.Channel.ID, e.Err)

	case eventbus.FeedRefreshCompletedEvent:
		h.state.FeedsLoading = false
		// A search in flight or a search error owns the status line
		if !h.state.Searching && h.state.Err == nil {
			if e.Failed > 0 {
				h.state.SetStatus(fmt.Sprintf("Feeds: %d loaded, %d failed", e.Loaded, e.Failed))
			} else {
				h.state.SetStatus(fmt.Sprintf("Feeds: %d loaded", e.Loaded))
			}
		}

	case eventbus.ErrorEvent:
		logging.Warn("background error", zap.String("message", e.Message), zap.Error(e.Err))
		h.state.SetError(fmt.Errorf("%s: %w", e.Message, e.Err))

	case eventbus.PlaybackExitedEvent:
		// Player outcomes are logged, never shown
		logging.Debug("playback exited", zap.String("url", e.URL), zap.Error(e.Err))

	default:
		logging.Debug("unhandled event", zap.String("type", string(event.Type())))
	}

	return nil
}
