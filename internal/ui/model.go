package ui

import (
	"context"
	"log"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"coinpicker/internal/coins"
	"coinpicker/internal/config"
	"coinpicker/internal/domain"
	"coinpicker/internal/eventbus"
	"coinpicker/internal/ui/input"
	"coinpicker/internal/ui/input/types"
	"coinpicker/internal/ui/logic"
	"coinpicker/internal/ui/services/search"
	"coinpicker/internal/ui/state"
	"coinpicker/internal/ui/views"
)

// Model is the dropdown widget: a toggle button and, while open, a panel
// with a search field, the category switch and the coin list.
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.DropdownState
	source coins.Source

	// UI-specific state not in DropdownState
	width  int
	height int
	help   help.Model
	keys   types.KeyMap

	// Handlers
	search       *search.Service  // fuzzy filtering of the coin list
	navigator    *logic.Navigator // cursor and viewport of the list
	renderer     *views.Renderer  // view renderer
	inputHandler *input.Handler   // key handling and the search field
	helpRenderer *HelpRenderer    // full help for the pager

	// Lifecycle
	ctx      context.Context
	cancel   context.CancelFunc
	mounted  bool
	disposed bool
	mouseOn  bool
}

// NewModel creates the dropdown widget. bus may be nil.
func NewModel(bus eventbus.EventBus, cfg *config.Config, source coins.Source) *Model {
	keys := types.DefaultKeyMap()
	renderer := views.NewRenderer(cfg.UISettings.PanelWidth, cfg.UISettings.MaxRows)
	ctx, cancel := context.WithCancel(context.Background())

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        state.NewDropdownState(),
		source:       source,
		help:         help.New(),
		keys:         keys,
		search:       search.NewService(bus, cfg.Search.Keys, cfg.Search.Threshold),
		navigator:    logic.NewNavigator(renderer.MaxRows()),
		renderer:     renderer,
		inputHandler: input.New(keys),
		helpRenderer: NewHelpRenderer(keys),
		ctx:          ctx,
		cancel:       cancel,
	}

	// Leave room for the search icon and the cursor
	m.inputHandler.TextInput().Width = renderer.InnerWidth() - 3

	m.recompute()
	return m
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return m.Mount()
}

// Mount starts the coin list fetch and mouse tracking. Calling it again is a no-op.
func (m *Model) Mount() tea.Cmd {
	if m.mounted || m.disposed {
		return nil
	}
	m.mounted = true

	cmds := []tea.Cmd{fetchCoinsCmd(m.ctx, m.source)}
	if !m.mouseOn {
		m.mouseOn = true
		cmds = append(cmds, tea.EnableMouseCellMotion)
	}
	return tea.Batch(cmds...)
}

// Dispose cancels an in-flight fetch and stops mouse tracking.
// Messages received afterwards are ignored.
func (m *Model) Dispose() tea.Cmd {
	if m.disposed {
		return nil
	}
	m.disposed = true
	m.cancel()
	m.inputHandler.SetMode(types.ModeClosed)

	if m.mouseOn {
		m.mouseOn = false
		return tea.DisableMouse
	}
	return nil
}

// fetchCoinsCmd loads the coin list once. A result arriving after the
// context was cancelled is dropped.
func fetchCoinsCmd(ctx context.Context, source coins.Source) tea.Cmd {
	return func() tea.Msg {
		list, err := source.Fetch(ctx)
		if ctx.Err() != nil {
			return nil
		}
		if err != nil {
			return coinsFailedMsg{err: err}
		}
		return coinsLoadedMsg{coins: list}
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.disposed {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case coinsLoadedMsg:
		m.setCoins(msg.coins)

	case coinsFailedMsg:
		// The list stays as it is; nothing is shown to the user
		log.Printf("Failed to load coins: %v", msg.err)
		m.publish(eventbus.CoinsLoadFailedEvent{Err: msg.err})

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
		}

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	default:
		// Cursor blink and other text input messages
		return m, m.inputHandler.Update(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	actions, cmd := m.inputHandler.HandleKey(msg)

	cmds := []tea.Cmd{cmd}
	for _, action := range actions {
		cmds = append(cmds, m.processAction(action))
	}

	m.syncQuery()
	return tea.Batch(cmds...)
}

func (m *Model) processAction(action types.Action) tea.Cmd {
	switch a := action.(type) {
	case types.ToggleDropdownAction:
		return m.Toggle()

	case types.CloseDropdownAction:
		return m.close(false)

	case types.NavigateAction:
		total := len(m.state.Visible())
		switch a.Direction {
		case "up":
			m.navigator.Move(-1, total)
		case "down":
			m.navigator.Move(1, total)
		case "pageup":
			m.navigator.Page(-1, total)
		case "pagedown":
			m.navigator.Page(1, total)
		}

	case types.ToggleFavoriteAction:
		index := a.Index
		if index < 0 {
			index = m.navigator.GetSelectedIndex()
		}
		m.toggleFavoriteAt(index)

	case types.SetCategoryAction:
		m.SetCategory(a.Category)

	case types.CycleCategoryAction:
		m.SetCategory(m.state.Category.Next())

	case types.ShowHelpAction:
		return showHelpCmd(m.helpRenderer.renderHelpContent())

	case types.QuitAction:
		return tea.Sequence(m.Dispose(), tea.Quit)

	default:
		log.Printf("Unhandled action: %s", action.Type())
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress {
		return nil
	}

	switch msg.Button {
	case tea.MouseButtonLeft:
		return m.HandlePointerDown(msg.X, msg.Y)
	case tea.MouseButtonWheelUp:
		if m.state.Open {
			m.navigator.Move(-1, len(m.state.Visible()))
		}
	case tea.MouseButtonWheelDown:
		if m.state.Open {
			m.navigator.Move(1, len(m.state.Visible()))
		}
	}
	return nil
}

// HandlePointerDown reacts to a press at cell x, y. A press on the button
// toggles; while open, a press outside the panel closes it and a press
// inside acts on what was hit.
func (m *Model) HandlePointerDown(x, y int) tea.Cmd {
	layout := m.renderer.Layout(m.state.Open)

	if layout.Button.Contains(x, y) {
		return m.Toggle()
	}
	if !m.state.Open {
		return nil
	}
	if !layout.Panel.Contains(x, y) {
		return m.close(true)
	}

	if c, ok := layout.CategoryAt(x, y); ok {
		m.SetCategory(c)
		return nil
	}

	if row, ok := layout.RowAt(x, y); ok {
		total := len(m.state.Visible())
		start, _ := m.navigator.Window(total)
		if index := start + row; index < total {
			m.navigator.Select(index, total)
			m.toggleFavoriteAt(index)
		}
	}
	return nil
}

// Toggle opens or closes the panel. Opening focuses the search field.
func (m *Model) Toggle() tea.Cmd {
	open := m.state.Toggle()
	m.publish(eventbus.DropdownToggledEvent{Open: open})
	return m.syncFocus()
}

func (m *Model) close(outside bool) tea.Cmd {
	if !m.state.Close() {
		return nil
	}
	m.publish(eventbus.DropdownToggledEvent{Open: false, Outside: outside})
	return m.syncFocus()
}

func (m *Model) syncFocus() tea.Cmd {
	if m.state.Open {
		return m.inputHandler.SetMode(types.ModeSearch)
	}
	return m.inputHandler.SetMode(types.ModeClosed)
}

// SetCategory switches between the filtered list and the favorites
func (m *Model) SetCategory(c domain.Category) {
	if !m.state.SetCategory(c) {
		return
	}
	m.navigator.Reset()
	m.publish(eventbus.CategoryChangedEvent{Category: c})
}

// ToggleFavorite adds or removes coin from the favorites
func (m *Model) ToggleFavorite(coin domain.Coin) {
	favorited := m.state.ToggleFavorite(coin)
	m.navigator.Clamp(len(m.state.Visible()))
	m.publish(eventbus.FavoriteToggledEvent{Coin: coin, Favorited: favorited})
}

func (m *Model) toggleFavoriteAt(index int) {
	visible := m.state.Visible()
	if index < 0 || index >= len(visible) {
		return
	}
	m.ToggleFavorite(visible[index])
}

func (m *Model) setCoins(list []domain.Coin) {
	m.state.SetCoins(list)
	m.recompute()
	log.Printf("Loaded %d coins", len(list))
	m.publish(eventbus.CoinsLoadedEvent{Count: len(list)})
}

// syncQuery picks up edits made in the search field
func (m *Model) syncQuery() {
	if q := m.inputHandler.Value(); q != m.state.Query {
		m.state.Query = q
		m.navigator.Reset()
		m.recompute()
	}
}

func (m *Model) recompute() {
	m.state.Recompute(m.search.Filter)
	m.navigator.Clamp(len(m.state.Visible()))
}

func (m *Model) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}

// Favorites returns the coins favorited this session, in the order they were added
func (m *Model) Favorites() []domain.Coin {
	return append([]domain.Coin(nil), m.state.Favorites...)
}

// IsOpen reports whether the panel is shown
func (m *Model) IsOpen() bool {
	return m.state.Open
}

// View renders the UI
func (m *Model) View() string {
	visible := m.state.Visible()
	start, end := m.navigator.Window(len(visible))

	rows := make([]views.RowData, 0, end-start)
	for _, c := range visible[start:end] {
		rows = append(rows, views.RowData{
			Label:    c.Label(),
			Favorite: m.state.IsFavorite(c),
		})
	}

	return m.renderer.Render(views.ViewState{
		Open:     m.state.Open,
		Input:    m.inputHandler.TextInput().View(),
		Category: m.state.Category,
		Rows:     rows,
		Offset:   start,
		Total:    len(visible),
		Selected: m.navigator.GetSelectedIndex(),
		Help:     m.shortHelp(),
	})
}
