package views

import "coinpicker/internal/domain"

// Rect is a screen area in terminal cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell at x, y lies inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Layout is where each clickable part of the dropdown was drawn.
// Rects of the panel and its contents are zero while the dropdown is closed.
type Layout struct {
	Button     Rect
	Panel      Rect
	Input      Rect
	Categories [2]Rect // indexed by domain.Category
	Rows       Rect
}

// Panel content lines, counted from the first line inside the border
const (
	inputLine = iota
	categoryLine
	topIndicatorLine
	firstRowLine
)

// CategoryAt returns the category button at x, y
func (l Layout) CategoryAt(x, y int) (domain.Category, bool) {
	for i, r := range l.Categories {
		if r.Contains(x, y) {
			return domain.Category(i), true
		}
	}
	return 0, false
}

// RowAt returns the visible row at x, y, counted from the top of the list viewport
func (l Layout) RowAt(x, y int) (int, bool) {
	if !l.Rows.Contains(x, y) {
		return 0, false
	}
	return y - l.Rows.Y, true
}
