package modes

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"

	"ytgrip/internal/domain"
	"ytgrip/internal/ui/input/types"
)

type NormalMode struct {
	keys *KeyMap
}

func NewNormalMode(keys *KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	// ctrl+c always quits, whatever the quit binding says
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, k.Insert):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeInsert}}, true

	case key.Matches(msg, k.ToggleInfo):
		if ctx.ResultCount() == 0 {
			return nil, false
		}
		return []types.Action{types.ToggleInfoAction{}}, true

	case key.Matches(msg, k.TabSearch):
		return []types.Action{types.SelectTabAction{Tab: domain.TabSearch}}, true

	case key.Matches(msg, k.TabSubs):
		return []types.Action{types.SelectTabAction{Tab: domain.TabSubscriptions}}, true

	case key.Matches(msg, k.NextTab):
		return []types.Action{types.CycleTabAction{Delta: 1}}, true

	case key.Matches(msg, k.PrevTab):
		return []types.Action{types.CycleTabAction{Delta: -1}}, true

	case key.Matches(msg, k.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case key.Matches(msg, k.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case key.Matches(msg, k.Top):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case key.Matches(msg, k.Bottom):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case key.Matches(msg, k.Play):
		return []types.Action{types.ActivateAction{}}, true

	case key.Matches(msg, k.Description):
		return []types.Action{types.ShowDescriptionAction{}}, true

	case key.Matches(msg, k.Help):
		return []types.Action{types.ShowHelpAction{}}, true

	case key.Matches(msg, k.Refresh):
		if ctx.ActiveTab() != domain.TabSubscriptions {
			return nil, false
		}
		return []types.Action{types.RefreshFeedsAction{}}, true

	case key.Matches(msg, k.Clear):
		return []types.Action{types.ClearStatusAction{}}, true
	}

	return nil, false
}
