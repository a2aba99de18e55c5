package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"ytgrip/internal/config"
	"ytgrip/internal/domain"
	"ytgrip/internal/eventbus"
	"ytgrip/internal/logging"
	"ytgrip/internal/ui/handlers"
	"ytgrip/internal/ui/input"
	"ytgrip/internal/ui/input/modes"
	inputtypes "ytgrip/internal/ui/input/types"
	"ytgrip/internal/ui/services/playback"
	"ytgrip/internal/ui/services/search"
	"ytgrip/internal/ui/state"
	"ytgrip/internal/ui/viewmodels"
	"ytgrip/internal/ui/views"
)

// Options wires the model to its collaborators
type Options struct {
	Context      context.Context // parent of every search context
	Config       *config.Config
	Bus          eventbus.EventBus // may be nil
	Searcher     search.Searcher
	Player       playback.Player // nil disables playback
	PlayerArgs   []string
	Keys         *modes.KeyMap // nil means defaults
	InitialQuery string
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // centralized state

	spinner      spinner.Model
	inPagerMode  bool // tracks if we're currently in pager mode
	initialQuery string

	// Handlers
	inputHandler *input.Handler
	orchestrator *search.Orchestrator
	launcher     *playback.Launcher
	navigators   map[domain.Tab]Navigator
	eventHandler *handlers.EventHandler
	viewModel    *viewmodels.ViewModel
	renderer     *views.Renderer
	pager        *PagerOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	keys := opts.Keys
	if keys == nil {
		km := modes.DefaultKeyMap()
		keys = &km
	}

	channels := make([]domain.Channel, 0, len(cfg.Subscriptions))
	for _, sub := range cfg.Subscriptions {
		channels = append(channels, domain.Channel{Name: sub.Name, ID: sub.ChannelID})
	}

	appState := state.NewAppState(channels)
	appState.ShowInfo = cfg.UI.ShowInfo

	// Two calls per search, each bounded by the HTTP client timeout
	timeout := 2 * time.Duration(cfg.RequestTimeoutSeconds) * time.Second

	m := &Model{
		bus:          opts.Bus,
		config:       cfg,
		state:        appState,
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		initialQuery: opts.InitialQuery,
		inputHandler: input.New(&appState.Mode, keys),
		orchestrator: search.NewOrchestrator(opts.Context, opts.Searcher, opts.Bus, timeout),
		launcher:     playback.NewLauncher(opts.Player, opts.PlayerArgs),
		navigators:   defaultNavigators(),
		eventHandler: handlers.NewEventHandler(appState),
		viewModel:    viewmodels.NewViewModel(appState, keys),
		renderer:     views.NewRenderer(),
		pager:        NewPagerOps(),
	}

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	if m.pager != nil {
		m.pager.SetProgram(p)
	}
}

// State exposes the application state for inspection
func (m *Model) State() *state.AppState {
	return m.state
}

// Init starts the spinner, the initial search and the first feed refresh
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}

	if m.initialQuery != "" {
		m.state.Input.InsertString(m.initialQuery)
		cmds = append(cmds, m.orchestrator.Submit(m.state.Input.String(), m.state))
	}

	if cmd := m.requestFeedRefresh(); cmd != nil {
		cmds = append(cmds, cmd)
	}

	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		// A search error stays visible until the next key in normal mode
		if m.state.Mode == inputtypes.ModeNormal && m.state.Err != nil {
			m.state.Err = nil
		}

		ctx := &input.ModelContext{State: m.state}
		actions := m.inputHandler.HandleKey(msg, ctx)

		var cmds []tea.Cmd
		for _, action := range actions {
			if cmd := m.processAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case search.ResultMsg:
		if !m.orchestrator.Commit(msg, m.state) {
			return m, nil
		}
		ctx := &input.ModelContext{State: m.state}
		var cmds []tea.Cmd
		for _, action := range m.inputHandler.ChangeMode(inputtypes.ModeNormal, ctx) {
			if cmd := m.processAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case spinner.TickMsg:
		// Don't continue the tick loop while the pager owns the terminal
		if m.inPagerMode {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pagerMsg:
		if msg.err != nil {
			// Pager failed: log only; do not surface in status bar
			logging.Warn("pager failed", zap.Error(msg.err))
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, m.spinner.Tick
	}

	return m, nil
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	st := m.state

	switch a := action.(type) {
	case inputtypes.QuitAction:
		m.orchestrator.Cancel()
		logging.Info("quit requested", zap.Bool("force", a.Force))
		return tea.Quit

	case inputtypes.NavigateAction:
		if nav := m.navigators[st.Tab]; nav != nil {
			nav.Navigate(a.Direction, st)
		}

	case inputtypes.ActivateAction:
		if nav := m.navigators[st.Tab]; nav != nil {
			nav.Activate(st, m.launcher)
		}

	case inputtypes.SelectTabAction:
		st.Tab = a.Tab

	case inputtypes.CycleTabAction:
		st.Tab = cycleTab(st.Tab, a.Delta)

	case inputtypes.InsertRunesAction:
		for _, r := range a.Runes {
			st.Input.Insert(r)
		}

	case inputtypes.DeleteBackwardAction:
		st.Input.DeleteBackward()

	case inputtypes.DeleteForwardAction:
		st.Input.DeleteForward()

	case inputtypes.MoveCursorAction:
		switch a.Direction {
		case "left":
			st.Input.MoveLeft()
		case "right":
			st.Input.MoveRight()
		case "home":
			st.Input.MoveHome()
		case "end":
			st.Input.MoveEnd()
		}

	case inputtypes.SubmitQueryAction:
		if st.Searching {
			return nil
		}
		return m.orchestrator.Submit(st.Input.String(), st)

	case inputtypes.ToggleInfoAction:
		st.ShowInfo = !st.ShowInfo

	case inputtypes.ShowDescriptionAction:
		nav := m.navigators[st.Tab]
		if nav == nil {
			return nil
		}
		content, ok := nav.Describe(st)
		if !ok {
			return nil
		}
		return m.showPager(content)

	case inputtypes.ShowHelpAction:
		return m.showPager(renderHelpContent(m.inputHandler.Keys()))

	case inputtypes.RefreshFeedsAction:
		if len(st.Feeds.Channels()) == 0 {
			st.SetStatus("No subscriptions configured")
			return nil
		}
		if st.FeedsLoading {
			return nil
		}
		return m.requestFeedRefresh()

	case inputtypes.ClearStatusAction:
		st.ShowInfo = false
		st.ClearStatus()

	default:
		logging.Debug("unhandled action", zap.String("action", action.Type()))
	}

	return nil
}

// requestFeedRefresh asks the feed service to reload every subscription
func (m *Model) requestFeedRefresh() tea.Cmd {
	if m.bus == nil {
		return nil
	}
	channels := m.state.Feeds.Domain()
	if len(channels) == 0 {
		return nil
	}
	m.state.FeedsLoading = true
	bus := m.bus
	return func() tea.Msg {
		bus.Publish(eventbus.FeedRefreshRequestedEvent{Channels: channels})
		return nil
	}
}

// showPager returns a command that shows content using ov pager
func (m *Model) showPager(content string) tea.Cmd {
	if m.program == nil {
		logging.Debug("pager unavailable without a program")
		return nil
	}
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.pager.ShowInPager(content)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return pagerMsg{err: err}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.state.Width == 0 {
		return "Loading..."
	}
	m.viewModel.SetSpinner(m.spinner.View())
	return m.renderer.Render(m.viewModel.BuildViewState())
}
