package input

import (
	"ytgrip/internal/domain"
	"ytgrip/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.AppState
}

func (c *ModelContext) ActiveTab() domain.Tab {
	return c.State.Tab
}

func (c *ModelContext) Searching() bool {
	return c.State.Searching
}

func (c *ModelContext) ResultCount() int {
	return c.State.Results.Len()
}
