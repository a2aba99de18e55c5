package types

import "ytgrip/internal/domain"

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// ActivateAction plays the selected row of the active tab
type ActivateAction struct{}

func (a ActivateAction) Type() string { return "activate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Tab actions
type SelectTabAction struct {
	Tab domain.Tab
}

func (a SelectTabAction) Type() string { return "select_tab" }

type CycleTabAction struct {
	Delta int // +1 forward, -1 backward
}

func (a CycleTabAction) Type() string { return "cycle_tab" }

// Text editing actions
type InsertRunesAction struct {
	Runes []rune
}

func (a InsertRunesAction) Type() string { return "insert_runes" }

type DeleteBackwardAction struct{}

func (a DeleteBackwardAction) Type() string { return "delete_backward" }

type DeleteForwardAction struct{}

func (a DeleteForwardAction) Type() string { return "delete_forward" }

type MoveCursorAction struct {
	Direction string // "left", "right", "home", "end"
}

func (a MoveCursorAction) Type() string { return "move_cursor" }

type SubmitQueryAction struct{}

func (a SubmitQueryAction) Type() string { return "submit_query" }

// Command actions
type ToggleInfoAction struct{}

func (a ToggleInfoAction) Type() string { return "toggle_info" }

type ShowDescriptionAction struct{}

func (a ShowDescriptionAction) Type() string { return "show_description" }

type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

type RefreshFeedsAction struct{}

func (a RefreshFeedsAction) Type() string { return "refresh_feeds" }

// ClearStatusAction closes the info panel and clears the status line
type ClearStatusAction struct{}

func (a ClearStatusAction) Type() string { return "clear_status" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
