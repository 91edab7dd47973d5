package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyDefinition defines the metadata for a configurable key binding
type KeyDefinition struct {
	Defaults []string
	Help     string
	Msg      tea.Msg // Message dispatched when the key is pressed; nil when handled by the view
	Name     string
}

// AllKeyDefinitions contains all configurable key bindings.
// Sorted alphabetically by Name.
var AllKeyDefinitions = []KeyDefinition{
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit", Msg: QuitMsg{}},
	{Name: "help", Defaults: []string{"?"}, Help: "toggle help"},
	{Name: "quit", Defaults: []string{"q", "esc"}, Help: "quit", Msg: QuitMsg{}},
	{Name: "reload", Defaults: []string{"r"}, Help: "reload", Msg: ReloadMsg{}},
}

// GetKeyDefinition returns a key definition by name, or nil if not found
func GetKeyDefinition(name string) *KeyDefinition {
	for i := range AllKeyDefinitions {
		if AllKeyDefinitions[i].Name == name {
			return &AllKeyDefinitions[i]
		}
	}
	return nil
}

// ValidKeyNames returns the names accepted in the keys settings
func ValidKeyNames() []string {
	names := make([]string, 0, len(AllKeyDefinitions))
	for _, def := range AllKeyDefinitions {
		names = append(names, def.Name)
	}
	return names
}

// KeyMap contains the counter's keyboard shortcuts
type KeyMap struct {
	ForceQuit key.Binding
	Help      key.Binding
	Quit      key.Binding
	Reload    key.Binding
}

// NewKeyMap creates a KeyMap. Pass nil for custom to use default bindings.
func NewKeyMap(custom map[string][]string) KeyMap {
	return KeyMap{
		ForceQuit: buildBinding("force_quit", custom),
		Help:      buildBinding("help", custom),
		Quit:      buildBinding("quit", custom),
		Reload:    buildBinding("reload", custom),
	}
}

// binding returns the binding for a definition name
func (k KeyMap) binding(name string) key.Binding {
	switch name {
	case "force_quit":
		return k.ForceQuit
	case "help":
		return k.Help
	case "quit":
		return k.Quit
	case "reload":
		return k.Reload
	}
	return key.Binding{}
}

// Action returns the message bound to a key press, or nil when the key has no
// message of its own
func (k KeyMap) Action(msg tea.KeyMsg) tea.Msg {
	for _, def := range AllKeyDefinitions {
		if def.Msg != nil && key.Matches(msg, k.binding(def.Name)) {
			return def.Msg
		}
	}
	return nil
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reload, k.Quit, k.Help}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Reload},
		{k.Quit, k.ForceQuit},
		{k.Help},
	}
}

// buildBinding creates a binding from its definition, using custom keys if provided
func buildBinding(name string, custom map[string][]string) key.Binding {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := def.Defaults
	if c, ok := custom[name]; ok && len(c) > 0 {
		keys = c
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), def.Help),
	)
}
