package modes

import (
	"coinpicker/internal/ui/input/types"
	"github.com/charmbracelet/bubbles/textinput"
)

// TextInputMode is a base for modes that accept text input
type TextInputMode struct {
	mode      types.Mode
	name      string
	textInput *textinput.Model
}

func NewTextInputMode(mode types.Mode, name string, ti *textinput.Model) TextInputMode {
	return TextInputMode{
		mode:      mode,
		name:      name,
		textInput: ti,
	}
}

func (m TextInputMode) Name() string {
	return m.name
}

// Enter focuses the text input. The value is kept so a query survives closing and reopening.
func (m TextInputMode) Enter() {
	if m.textInput != nil {
		m.textInput.Focus()
		m.textInput.CursorEnd()
	}
}

func (m TextInputMode) Exit() {
	if m.textInput != nil {
		m.textInput.Blur()
	}
}
