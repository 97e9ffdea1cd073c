// Package cursor tracks the selected row and vertical scroll offset of a
// table whose body sits below a fixed number of leading lines (its header).
package cursor

// Cursor holds the selected row and the first visible content line.
// Content lines are the lead lines followed by one line per row, so row i
// is content line lead+i. Row count and viewport height are passed to the
// methods because both change at runtime.
type Cursor struct {
	pos    int // selected row
	offset int // first visible content line
	margin int // rows kept visible around the cursor
	lead   int // lines above the first row
}

// New creates a cursor keeping margin rows of context around the selection
// below lead header lines.
func New(margin, lead int) Cursor {
	return Cursor{margin: margin, lead: lead}
}

// Pos returns the selected row.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the first visible content line.
func (c Cursor) Offset() int {
	return c.offset
}

// Line returns the content line of the selected row.
func (c Cursor) Line() int {
	return c.lead + c.pos
}

// Lead returns the number of lines above the first row.
func (c Cursor) Lead() int {
	return c.lead
}

// Move moves the selection by delta rows, clamped to the table.
func (c *Cursor) Move(delta, rows, height int) {
	if rows == 0 {
		return
	}
	c.pos = clamp(c.pos+delta, rows-1)
	c.ensureVisible(rows, height)
}

// Jump selects row pos, clamped to the table.
func (c *Cursor) Jump(pos, rows, height int) {
	if rows == 0 {
		return
	}
	c.pos = clamp(pos, rows-1)
	c.ensureVisible(rows, height)
}

// JumpStart selects the first row and scrolls the header back into view.
func (c *Cursor) JumpStart() {
	c.pos = 0
	c.offset = 0
}

// JumpEnd selects the last row.
func (c *Cursor) JumpEnd(rows, height int) {
	if rows == 0 {
		return
	}
	c.pos = rows - 1
	c.ensureVisible(rows, height)
}

// Scroll moves the viewport by delta lines without changing the selection
// unless it would leave the screen, in which case it is dragged along.
func (c *Cursor) Scroll(delta, rows, height int) {
	if rows == 0 || height <= 0 {
		return
	}
	c.offset = clamp(c.offset+delta, c.maxOffset(rows, height))

	first := max(c.offset-c.lead, 0)
	last := min(c.offset+height-c.lead, rows) - 1
	if last < first {
		return
	}
	c.pos = min(max(c.pos, first), last)
}

// EnsureVisible scrolls so the selected row is on screen. Call it after
// the viewport height or row count changed.
func (c *Cursor) EnsureVisible(rows, height int) {
	c.ensureVisible(rows, height)
}

func (c *Cursor) ensureVisible(rows, height int) {
	if height <= 0 || rows == 0 {
		return
	}
	line := c.lead + c.pos
	if line < c.offset+c.margin {
		c.offset = max(line-c.margin, 0)
	}
	if line >= c.offset+height-c.margin {
		c.offset = line - height + c.margin + 1
	}
	c.offset = clamp(c.offset, c.maxOffset(rows, height))
}

func (c Cursor) maxOffset(rows, height int) int {
	return max(c.lead+rows-height, 0)
}

// ClampToBounds keeps the selection inside a table that shrank to rows.
// It reports whether anything changed.
func (c *Cursor) ClampToBounds(rows int) bool {
	if rows == 0 {
		changed := c.pos != 0 || c.offset != 0
		c.pos, c.offset = 0, 0
		return changed
	}
	old := c.pos
	c.pos = clamp(c.pos, rows-1)
	return c.pos != old
}

// VisibleLines returns the visible content lines [start, end).
func (c Cursor) VisibleLines(rows, height int) (start, end int) {
	if height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, c.lead+rows)
}

// Reset selects the first row and scrolls to the top.
func (c *Cursor) Reset() {
	c.pos = 0
	c.offset = 0
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
