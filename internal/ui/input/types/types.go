package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	// ModeClosed: the panel is closed and the toggle button has focus
	ModeClosed Mode = iota
	// ModeSearch: the panel is open and the search field has focus
	ModeSearch
)

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg) ([]Action, bool)

	// Enter is called when entering this mode
	Enter()

	// Exit is called when leaving this mode
	Exit()

	// Name returns the mode name for display
	Name() string
}
