package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"ytgrip/internal/ui/input/modes"
	"ytgrip/internal/ui/input/types"
)

// Handler routes keys to the handler registered for the current mode.
// The mode itself lives in the caller's state.
type Handler struct {
	mode  *types.Mode
	modes map[types.Mode]types.ModeHandler
	keys  *modes.KeyMap
}

// New creates a handler reading and writing the mode through mode
func New(mode *types.Mode, keys *modes.KeyMap) *Handler {
	if keys == nil {
		km := modes.DefaultKeyMap()
		keys = &km
	}

	h := &Handler{
		mode:  mode,
		keys:  keys,
		modes: make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeNormal] = modes.NewNormalMode(keys)
	h.modes[types.ModeInsert] = modes.NewInsertMode()

	return h
}

// HandleKey returns the actions for msg. Mode changes are applied here and
// not passed on.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) []types.Action {
	handler := h.modes[*h.mode]
	if handler == nil {
		return nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if !consumed {
		return nil
	}

	var out []types.Action
	for _, action := range actions {
		if change, ok := action.(types.ChangeModeAction); ok {
			out = append(out, h.transition(change.Mode, ctx)...)
			continue
		}
		out = append(out, action)
	}
	return out
}

// ChangeMode switches modes outside of key handling, e.g. after a search commits.
// Exit and Enter hooks run as for a key-driven change.
func (h *Handler) ChangeMode(mode types.Mode, ctx types.Context) []types.Action {
	return h.transition(mode, ctx)
}

func (h *Handler) transition(mode types.Mode, ctx types.Context) []types.Action {
	if mode == *h.mode {
		return nil
	}

	var out []types.Action
	if current := h.modes[*h.mode]; current != nil {
		out = append(out, current.Exit(ctx)...)
	}
	*h.mode = mode
	if next := h.modes[mode]; next != nil {
		out = append(out, next.Enter(ctx)...)
	}
	return out
}

// Keys returns the normal-mode bindings for help rendering
func (h *Handler) Keys() *modes.KeyMap {
	return h.keys
}
