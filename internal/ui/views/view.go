package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"coinpicker/internal/domain"
)

const (
	buttonLabel = "⌕ SEARCH"
	// minPanelWidth fits both category buttons on one line
	minPanelWidth = 30
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Open     bool
	Input    string // rendered search field
	Category domain.Category
	Rows     []RowData // rows inside the viewport
	Offset   int       // list index of Rows[0]
	Total    int       // rows in the whole list
	Selected int       // list index of the cursor
	Help     string
}

// RowData is one coin row
type RowData struct {
	Label    string
	Favorite bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles     *Styles
	rowRender  *RowRenderer
	panelWidth int
	maxRows    int
}

// NewRenderer creates a renderer for a panel of the given outer width and list height
func NewRenderer(panelWidth, maxRows int) *Renderer {
	if panelWidth < minPanelWidth {
		panelWidth = minPanelWidth
	}
	if maxRows < 1 {
		maxRows = 1
	}
	styles := NewStyles()
	return &Renderer{
		styles:     styles,
		rowRender:  NewRowRenderer(styles),
		panelWidth: panelWidth,
		maxRows:    maxRows,
	}
}

// MaxRows returns the height of the list viewport
func (r *Renderer) MaxRows() int {
	return r.maxRows
}

// InnerWidth returns the width available to content inside the panel
func (r *Renderer) InnerWidth() int {
	return r.panelWidth - 4 // border and padding on both sides
}

// Layout computes where each clickable part is drawn by Render
func (r *Renderer) Layout(open bool) Layout {
	l := Layout{
		Button: Rect{X: 0, Y: 0, W: lipgloss.Width(r.renderButton(open)), H: 1},
	}
	if !open {
		return l
	}

	// The panel sits right under the button; content starts inside the border and padding
	top := l.Button.Y + l.Button.H
	x0, y0 := 2, top+1
	inner := r.InnerWidth()

	l.Panel = Rect{X: 0, Y: top, W: r.panelWidth, H: r.maxRows + firstRowLine + 1 + 2}
	l.Input = Rect{X: x0, Y: y0 + inputLine, W: inner, H: 1}

	x := x0
	for _, c := range []domain.Category{domain.CategoryFavorites, domain.CategoryAllCoins} {
		w := lipgloss.Width(r.renderCategory(c, false))
		l.Categories[c] = Rect{X: x, Y: y0 + categoryLine, W: w, H: 1}
		x += w + 1
	}

	l.Rows = Rect{X: x0, Y: y0 + firstRowLine, W: inner, H: r.maxRows}
	return l
}

// Render produces the complete view
func (r *Renderer) Render(vs ViewState) string {
	parts := []string{r.renderButton(vs.Open)}
	if vs.Open {
		parts = append(parts, r.renderPanel(vs))
	}
	if vs.Help != "" {
		parts = append(parts, r.styles.Help.Render(vs.Help))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (r *Renderer) renderButton(open bool) string {
	if open {
		return r.styles.ButtonActive.Render(buttonLabel)
	}
	return r.styles.Button.Render(buttonLabel)
}

func (r *Renderer) renderCategory(c domain.Category, active bool) string {
	label := c.String()
	if c == domain.CategoryFavorites {
		label = "★ " + label
	}
	if active {
		return r.styles.CategoryActive.Render(label)
	}
	return r.styles.Category.Render(label)
}

func (r *Renderer) renderPanel(vs ViewState) string {
	inner := r.InnerWidth()
	line := lipgloss.NewStyle().Width(inner).MaxWidth(inner).MaxHeight(1)

	content := make([]string, 0, r.maxRows+firstRowLine+1)

	content = append(content, line.Render(r.styles.SearchIcon.Render("⌕")+" "+vs.Input))

	content = append(content, line.Render(
		r.renderCategory(domain.CategoryFavorites, vs.Category == domain.CategoryFavorites)+" "+
			r.renderCategory(domain.CategoryAllCoins, vs.Category == domain.CategoryAllCoins)))

	top := ""
	if vs.Offset > 0 {
		top = r.styles.Scroll.Render(fmt.Sprintf("↑ %d more", vs.Offset))
	}
	content = append(content, line.Render(top))

	for i := 0; i < r.maxRows; i++ {
		if i >= len(vs.Rows) {
			content = append(content, line.Render(""))
			continue
		}
		content = append(content, r.rowRender.RenderRow(vs.Rows[i], vs.Offset+i == vs.Selected, inner))
	}

	bottom := ""
	if remaining := vs.Total - vs.Offset - len(vs.Rows); remaining > 0 {
		bottom = r.styles.Scroll.Render(fmt.Sprintf("↓ %d more", remaining))
	}
	content = append(content, line.Render(bottom))

	return r.styles.Panel.Width(r.panelWidth - 2).Render(strings.Join(content, "\n"))
}
