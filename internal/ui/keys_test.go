package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestNewKeyMap_Defaults(t *testing.T) {
	keys := NewKeyMap(nil)

	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, keys.Reload))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlC}, keys.ForceQuit))
	assert.Equal(t, "q/esc", keys.Quit.Help().Key)
}

func TestNewKeyMap_CustomBindings(t *testing.T) {
	keys := NewKeyMap(map[string][]string{"reload": {"R", "f5"}})

	assert.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, keys.Reload))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("R")}, keys.Reload))
	assert.Equal(t, "R/f5", keys.Reload.Help().Key)
}

func TestValidKeyNames(t *testing.T) {
	assert.Equal(t, []string{"force_quit", "help", "quit", "reload"}, ValidKeyNames())
}

func TestKeyMap_Action(t *testing.T) {
	keys := NewKeyMap(nil)

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected tea.Msg
	}{
		{name: "reload", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, expected: ReloadMsg{}},
		{name: "quit", msg: tea.KeyMsg{Type: tea.KeyEsc}, expected: QuitMsg{}},
		{name: "force quit", msg: tea.KeyMsg{Type: tea.KeyCtrlC}, expected: QuitMsg{}},
		{name: "help has no message", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")}},
		{name: "unbound", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, keys.Action(tt.msg))
		})
	}
}

func TestKeyMap_EveryDefinitionHasBinding(t *testing.T) {
	keys := NewKeyMap(nil)

	for _, def := range AllKeyDefinitions {
		assert.Equal(t, def.Defaults, keys.binding(def.Name).Keys(), def.Name)
	}
}
