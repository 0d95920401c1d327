package input

import (
	"coinpicker/internal/ui/input/modes"
	"coinpicker/internal/ui/input/types"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // search field, focused in ModeSearch
}

func New(keys types.KeyMap) *Handler {
	ti := textinput.New()
	ti.Placeholder = "Search..."
	ti.Prompt = ""

	h := &Handler{
		currentMode: types.ModeClosed,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeClosed] = modes.NewClosedMode(keys)
	h.modes[types.ModeSearch] = modes.NewSearchMode(h.textInput, keys)

	return h
}

// SetMode switches input mode. Entering ModeSearch focuses the search field.
func (h *Handler) SetMode(mode types.Mode) tea.Cmd {
	if mode == h.currentMode {
		return nil
	}
	if current := h.modes[h.currentMode]; current != nil {
		current.Exit()
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		next.Enter()
	}
	if h.isTextMode(mode) {
		return textinput.Blink
	}
	return nil
}

func (h *Handler) HandleKey(msg tea.KeyMsg) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg)
	if consumed || !h.isTextMode(h.currentMode) {
		return actions, nil
	}

	// Unconsumed keys edit the search field
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return actions, cmd
}

// Update forwards non-key messages (cursor blink) to the text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if !h.isTextMode(h.currentMode) {
		return nil
	}
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

func (h *Handler) CurrentModeName() string {
	if handler := h.modes[h.currentMode]; handler != nil {
		return handler.Name()
	}
	return ""
}

func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

// Value returns the text in the search field
func (h *Handler) Value() string {
	return h.textInput.Value()
}

// Focused reports whether the search field has focus
func (h *Handler) Focused() bool {
	return h.textInput.Focused()
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeSearch
}
