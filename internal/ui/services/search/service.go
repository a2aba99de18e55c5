package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"ytgrip/internal/eventbus"
	"ytgrip/internal/logging"
	"ytgrip/internal/ui/state"
)

// Orchestrator runs searches off the update loop and commits their outcome
// into AppState. At most one search is current; a new submission cancels
// the previous one.
type Orchestrator struct {
	searcher Searcher
	bus      eventbus.EventBus
	parent   context.Context
	timeout  time.Duration

	seq    uint64
	cancel context.CancelFunc
}

// NewOrchestrator creates an orchestrator. bus may be nil; a zero timeout
// means no per-search deadline.
func NewOrchestrator(parent context.Context, searcher Searcher, bus eventbus.EventBus, timeout time.Duration) *Orchestrator {
	if parent == nil {
		parent = context.Background()
	}
	return &Orchestrator{
		searcher: searcher,
		bus:      bus,
		parent:   parent,
		timeout:  timeout,
	}
}

// NormalizeQuery joins the whitespace-separated terms of raw with '+'
func NormalizeQuery(raw string) string {
	return strings.Join(strings.Fields(raw), "+")
}

// Submit marks the state as searching and returns the command that
// performs the search
func (o *Orchestrator) Submit(raw string, st *state.AppState) tea.Cmd {
	query := NormalizeQuery(raw)

	if o.cancel != nil {
		logging.Debug("superseding in-flight search", zap.Uint64("seq", o.seq))
		o.cancel()
	}

	o.seq++
	seq := o.seq

	var ctx context.Context
	var cancel context.CancelFunc
	if o.timeout > 0 {
		ctx, cancel = context.WithTimeout(o.parent, o.timeout)
	} else {
		ctx, cancel = context.WithCancel(o.parent)
	}
	o.cancel = cancel

	st.Searching = true
	st.SearchQuery = query
	st.ClearStatus()
	o.publish(eventbus.SearchStartedEvent{Query: query})
	logging.Info("search submitted", zap.String("query", query), zap.Uint64("seq", seq))

	searcher := o.searcher
	return func() tea.Msg {
		defer cancel()
		items, err := searcher.Search(ctx, query)
		return ResultMsg{Seq: seq, Query: query, Items: items, Err: err}
	}
}

// Commit applies msg to st. It reports false when msg belongs to a
// superseded submission and was ignored. Leaving insert mode is the
// caller's job.
func (o *Orchestrator) Commit(msg ResultMsg, st *state.AppState) bool {
	if msg.Seq != o.seq || !st.Searching {
		logging.Debug("dropping stale search result", zap.Uint64("seq", msg.Seq), zap.Uint64("current", o.seq))
		return false
	}
	o.cancel = nil
	st.Searching = false

	if msg.Err != nil {
		if errors.Is(msg.Err, context.Canceled) {
			logging.Debug("search cancelled", zap.String("query", msg.Query))
			return true
		}
		logging.Warn("search failed", zap.String("query", msg.Query), zap.Error(msg.Err))
		st.SetError(fmt.Errorf("search %q: %w", msg.Query, msg.Err))
		o.publish(eventbus.SearchFailedEvent{Query: msg.Query, Err: msg.Err})
		return true
	}

	st.Results.Replace(msg.Items)
	st.Selection.Reset(st.Results.Len())
	st.Input.Clear()
	if st.Results.Len() == 0 {
		st.ShowInfo = false
	}
	st.SetStatus(fmt.Sprintf("%d results for %s", len(msg.Items), msg.Query))
	o.publish(eventbus.SearchCompletedEvent{Query: msg.Query, Results: len(msg.Items)})
	return true
}

// Cancel aborts the current search, if any
func (o *Orchestrator) Cancel() {
	if o.cancel != nil {
		o.cancel()
		o.cancel = nil
	}
}

func (o *Orchestrator) publish(event eventbus.DomainEvent) {
	if o.bus != nil {
		o.bus.Publish(event)
	}
}
