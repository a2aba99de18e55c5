package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"ytgrip/internal/domain"
	"ytgrip/internal/ui/input/types"
)

// InsertMode edits the query buffer
type InsertMode struct{}

func NewInsertMode() *InsertMode {
	return &InsertMode{}
}

func (m *InsertMode) Name() string {
	return "insert"
}

// Enter brings the search tab forward, the query box lives there
func (m *InsertMode) Enter(ctx types.Context) []types.Action {
	if ctx.ActiveTab() != domain.TabSearch {
		return []types.Action{types.SelectTabAction{Tab: domain.TabSearch}}
	}
	return nil
}

func (m *InsertMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *InsertMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyEsc:
		// Buffer is kept
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}

	// The buffer holds the submitted query until the search commits
	if ctx.Searching() {
		return nil, false
	}

	switch msg.Type {
	case tea.KeyEnter:
		return []types.Action{types.SubmitQueryAction{}}, true

	case tea.KeyBackspace:
		return []types.Action{types.DeleteBackwardAction{}}, true

	case tea.KeyDelete:
		return []types.Action{types.DeleteForwardAction{}}, true

	case tea.KeyLeft:
		return []types.Action{types.MoveCursorAction{Direction: "left"}}, true

	case tea.KeyRight:
		return []types.Action{types.MoveCursorAction{Direction: "right"}}, true

	case tea.KeyHome, tea.KeyCtrlA:
		return []types.Action{types.MoveCursorAction{Direction: "home"}}, true

	case tea.KeyEnd, tea.KeyCtrlE:
		return []types.Action{types.MoveCursorAction{Direction: "end"}}, true

	case tea.KeySpace:
		return []types.Action{types.InsertRunesAction{Runes: []rune{' '}}}, true

	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return nil, false
		}
		runes := append([]rune(nil), msg.Runes...)
		return []types.Action{types.InsertRunesAction{Runes: runes}}, true
	}

	return nil, false
}
