package types

import "coinpicker/internal/domain"

// Dropdown actions
type ToggleDropdownAction struct{}

func (a ToggleDropdownAction) Type() string { return "toggle_dropdown" }

type CloseDropdownAction struct{}

func (a CloseDropdownAction) Type() string { return "close_dropdown" }

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown"
}

func (a NavigateAction) Type() string { return "navigate" }

// Favorite actions
type ToggleFavoriteAction struct {
	Index int // -1 for the row under the cursor
}

func (a ToggleFavoriteAction) Type() string { return "toggle_favorite" }

// Category actions
type SetCategoryAction struct {
	Category domain.Category
}

func (a SetCategoryAction) Type() string { return "set_category" }

type CycleCategoryAction struct{}

func (a CycleCategoryAction) Type() string { return "cycle_category" }

// Other actions
type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
