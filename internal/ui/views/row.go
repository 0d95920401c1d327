package views

// RowRenderer handles rendering of coin rows
type RowRenderer struct {
	styles *Styles
}

// NewRowRenderer creates a new row renderer
func NewRowRenderer(styles *Styles) *RowRenderer {
	return &RowRenderer{styles: styles}
}

// RenderRow renders a favorite indicator and the coin label, padded to width
func (r *RowRenderer) RenderRow(row RowData, isSelected bool, width int) string {
	star := r.styles.StarEmpty.Render("☆")
	if row.Favorite {
		star = r.styles.Star.Render("★")
	}

	style := r.styles.Row
	if isSelected {
		style = r.styles.RowSelected
	}
	return style.Width(width).MaxWidth(width).MaxHeight(1).Render(star + " " + row.Label)
}
