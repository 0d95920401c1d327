package logic

// Navigator handles the cursor and viewport of the result list
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int
}

// NewNavigator creates a navigator showing height rows at a time
func NewNavigator(height int) *Navigator {
	if height < 1 {
		height = 1
	}
	return &Navigator{viewportHeight: height}
}

// GetSelectedIndex returns the current selected index
func (n *Navigator) GetSelectedIndex() int {
	return n.selectedIndex
}

// GetViewportOffset returns the index of the first visible row
func (n *Navigator) GetViewportOffset() int {
	return n.viewportOffset
}

// GetViewportHeight returns the number of visible rows
func (n *Navigator) GetViewportHeight() int {
	return n.viewportHeight
}

// SetViewportHeight changes the number of visible rows
func (n *Navigator) SetViewportHeight(height, total int) {
	if height < 1 {
		height = 1
	}
	n.viewportHeight = height
	n.Clamp(total)
}

// Move moves the cursor by delta rows, stopping at the ends of the list
func (n *Navigator) Move(delta, total int) {
	n.Select(n.selectedIndex+delta, total)
}

// Page moves the cursor by one viewport in the given direction
func (n *Navigator) Page(direction, total int) {
	n.Move(direction*n.viewportHeight, total)
}

// Select puts the cursor on index and scrolls it into view
func (n *Navigator) Select(index, total int) {
	n.selectedIndex = index
	n.Clamp(total)
}

// Reset moves the cursor back to the top
func (n *Navigator) Reset() {
	n.selectedIndex = 0
	n.viewportOffset = 0
}

// Clamp keeps cursor and viewport within a list of total rows
func (n *Navigator) Clamp(total int) {
	if total <= 0 {
		n.Reset()
		return
	}
	if n.selectedIndex >= total {
		n.selectedIndex = total - 1
	}
	if n.selectedIndex < 0 {
		n.selectedIndex = 0
	}
	n.ensureSelectedVisible(total)
}

// Window returns the half-open range of rows currently visible
func (n *Navigator) Window(total int) (start, end int) {
	start = n.viewportOffset
	if start > total {
		start = total
	}
	end = start + n.viewportHeight
	if end > total {
		end = total
	}
	return start, end
}

// ensureSelectedVisible adjusts the viewport to keep the selected row visible
func (n *Navigator) ensureSelectedVisible(total int) {
	if n.selectedIndex < n.viewportOffset {
		n.viewportOffset = n.selectedIndex
	}
	if n.selectedIndex >= n.viewportOffset+n.viewportHeight {
		n.viewportOffset = n.selectedIndex - n.viewportHeight + 1
	}

	// Don't leave empty rows at the bottom when the list shrinks
	maxOffset := total - n.viewportHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
