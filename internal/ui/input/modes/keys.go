package modes

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the remappable normal-mode bindings
type KeyMap struct {
	Quit        key.Binding
	Insert      key.Binding
	ToggleInfo  key.Binding
	TabSearch   key.Binding
	TabSubs     key.Binding
	NextTab     key.Binding
	PrevTab     key.Binding
	Down        key.Binding
	Up          key.Binding
	Top         key.Binding
	Bottom      key.Binding
	Play        key.Binding
	Description key.Binding
	Help        key.Binding
	Refresh     key.Binding
	Clear       key.Binding
}

// DefaultKeyMap returns the built-in bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Insert: key.NewBinding(
			key.WithKeys("i", "/"),
			key.WithHelp("i", "search"),
		),
		ToggleInfo: key.NewBinding(
			key.WithKeys("I"),
			key.WithHelp("I", "info"),
		),
		TabSearch: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "search tab"),
		),
		TabSubs: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "subs tab"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		Play: key.NewBinding(
			key.WithKeys("enter", "p"),
			key.WithHelp("enter", "play"),
		),
		Description: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "description"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh feeds"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
	}
}

// bindings maps config action names to their bindings
func (k *KeyMap) bindings() map[string]*key.Binding {
	return map[string]*key.Binding{
		"quit":        &k.Quit,
		"insert":      &k.Insert,
		"toggle_info": &k.ToggleInfo,
		"tab_search":  &k.TabSearch,
		"tab_subs":    &k.TabSubs,
		"next_tab":    &k.NextTab,
		"prev_tab":    &k.PrevTab,
		"down":        &k.Down,
		"up":          &k.Up,
		"top":         &k.Top,
		"bottom":      &k.Bottom,
		"play":        &k.Play,
		"description": &k.Description,
		"help":        &k.Help,
		"refresh":     &k.Refresh,
		"clear":       &k.Clear,
	}
}

// ActionNames lists the names accepted in the [keys] config table
func ActionNames() []string {
	km := DefaultKeyMap()
	names := make([]string, 0, 16)
	for name := range km.bindings() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyOverrides replaces the keys of each named action.
// Unknown action names are returned so the caller can report them.
func (k *KeyMap) ApplyOverrides(overrides map[string][]string) []string {
	var unknown []string
	targets := k.bindings()
	for name, keys := range overrides {
		b, ok := targets[strings.ToLower(name)]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		if len(keys) == 0 {
			continue
		}
		desc := b.Help().Desc
		b.SetKeys(keys...)
		b.SetHelp(strings.Join(keys, "/"), desc)
	}
	sort.Strings(unknown)
	return unknown
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Insert, k.Down, k.Up, k.Play, k.TabSubs, k.ToggleInfo, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.Top, k.Bottom},
		{k.TabSearch, k.TabSubs, k.NextTab, k.PrevTab},
		{k.Insert, k.Play, k.Description, k.ToggleInfo},
		{k.Refresh, k.Clear, k.Help, k.Quit},
	}
}
