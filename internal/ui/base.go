package ui

// Base holds the size and focus shared by UI components. Embed it in a
// component model.
//
//	type Model struct {
//	    ui.Base
//	    cursor cursor.Cursor
//	}
type Base struct {
	width, height int
	focused       bool
}

// SetFocused sets whether the component receives keys.
func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

// IsFocused reports whether the component receives keys.
func (b Base) IsFocused() bool {
	return b.focused
}

// SetSize sets the component dimensions in cells.
func (b *Base) SetSize(width, height int) {
	b.width = max(width, 0)
	b.height = max(height, 0)
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}

// BodyHeight returns the height left after overhead lines.
func (b Base) BodyHeight(overhead int) int {
	return max(b.height-overhead, 0)
}
