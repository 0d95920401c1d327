package modes

import (
	"coinpicker/internal/domain"
	"coinpicker/internal/ui/input/types"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SearchMode handles keys while the panel is open.
// Keys it does not consume are typed into the search field.
type SearchMode struct {
	TextInputMode
	keys types.KeyMap
}

func NewSearchMode(ti *textinput.Model, keys types.KeyMap) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", ti),
		keys:          keys,
	}
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, m.keys.Close):
		return []types.Action{types.CloseDropdownAction{}}, true
	case key.Matches(msg, m.keys.Favorite):
		return []types.Action{types.ToggleFavoriteAction{Index: -1}}, true
	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case key.Matches(msg, m.keys.PageUp):
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true
	case key.Matches(msg, m.keys.PageDown):
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true
	case key.Matches(msg, m.keys.NextCategory):
		return []types.Action{types.CycleCategoryAction{}}, true
	case key.Matches(msg, m.keys.Favorites):
		return []types.Action{types.SetCategoryAction{Category: domain.CategoryFavorites}}, true
	case key.Matches(msg, m.keys.AllCoins):
		return []types.Action{types.SetCategoryAction{Category: domain.CategoryAllCoins}}, true
	}
	return nil, false
}
