package ui

import (
	"ytgrip/internal/domain"
	"ytgrip/internal/ui/services/playback"
	"ytgrip/internal/ui/state"
)

// Navigator applies list movement and activation to one tab
type Navigator interface {
	Navigate(direction string, st *state.AppState)
	Activate(st *state.AppState, launcher *playback.Launcher)
	// Describe returns pager content for the selected row
	Describe(st *state.AppState) (string, bool)
}

func defaultNavigators() map[domain.Tab]Navigator {
	return map[domain.Tab]Navigator{
		domain.TabSearch:        searchNavigator{},
		domain.TabSubscriptions: subsNavigator{},
	}
}

type searchNavigator struct{}

func (searchNavigator) Navigate(direction string, st *state.AppState) {
	move(&st.Selection, direction, st.Results.Len())
}

func (searchNavigator) Activate(st *state.AppState, launcher *playback.Launcher) {
	launcher.Launch(st.SelectedResult())
}

func (searchNavigator) Describe(st *state.AppState) (string, bool) {
	item := st.SelectedResult()
	if item == nil {
		return "", false
	}
	return descriptionContent(*item), true
}

type subsNavigator struct{}

func (subsNavigator) Navigate(direction string, st *state.AppState) {
	move(&st.FeedSelection, direction, st.Feeds.Len())
}

func (subsNavigator) Activate(st *state.AppState, launcher *playback.Launcher) {
	launcher.LaunchFeedEntry(st.SelectedFeedEntry())
}

func (subsNavigator) Describe(st *state.AppState) (string, bool) {
	entry := st.SelectedFeedEntry()
	if entry == nil {
		return "", false
	}
	return feedEntryContent(*entry), true
}

type cursor interface {
	Next(n int)
	Prev(n int)
	First(n int)
	Last(n int)
}

func move(sel cursor, direction string, n int) {
	switch direction {
	case "down":
		sel.Next(n)
	case "up":
		sel.Prev(n)
	case "home":
		sel.First(n)
	case "end":
		sel.Last(n)
	}
}

// cycleTab steps through domain.Tabs, wrapping at both ends
func cycleTab(current domain.Tab, delta int) domain.Tab {
	n := len(domain.Tabs)
	idx := 0
	for i, t := range domain.Tabs {
		if t == current {
			idx = i
			break
		}
	}
	return domain.Tabs[((idx+delta)%n+n)%n]
}
