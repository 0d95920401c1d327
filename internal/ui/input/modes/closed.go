package modes

import (
	"coinpicker/internal/ui/input/types"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ClosedMode handles keys while only the toggle button is shown
type ClosedMode struct {
	keys types.KeyMap
}

func NewClosedMode(keys types.KeyMap) *ClosedMode {
	return &ClosedMode{keys: keys}
}

func (m *ClosedMode) Name() string {
	return "closed"
}

func (m *ClosedMode) Enter() {}

func (m *ClosedMode) Exit() {}

func (m *ClosedMode) HandleKey(msg tea.KeyMsg) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, m.keys.Open):
		return []types.Action{types.ToggleDropdownAction{}}, true
	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ShowHelpAction{}}, true
	}
	return nil, true
}
