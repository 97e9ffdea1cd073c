package cursor

import "testing"

func TestNew(t *testing.T) {
	c := New(2, 1)
	if c.Pos() != 0 || c.Offset() != 0 {
		t.Errorf("New() pos=%d offset=%d, want 0 0", c.Pos(), c.Offset())
	}
	if c.Line() != 1 {
		t.Errorf("Line() = %d, want 1 (first row under the header)", c.Line())
	}
	if c.Lead() != 1 {
		t.Errorf("Lead() = %d, want 1", c.Lead())
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		name       string
		margin     int
		initial    int
		delta      int
		rows       int
		height     int
		wantPos    int
		wantOffset int
	}{
		{
			name:   "move down without scrolling",
			margin: 1, initial: 0, delta: 1, rows: 20, height: 6,
			wantPos: 1, wantOffset: 0,
		},
		{
			name:   "move down scrolls the header away",
			margin: 1, initial: 0, delta: 5, rows: 20, height: 6,
			wantPos: 5, wantOffset: 2,
		},
		{
			name:   "move up clamps to first row",
			margin: 1, initial: 3, delta: -10, rows: 20, height: 6,
			wantPos: 0, wantOffset: 0,
		},
		{
			name:   "move down clamps to last row",
			margin: 1, initial: 0, delta: 100, rows: 20, height: 6,
			wantPos: 19, wantOffset: 15,
		},
		{
			name:   "zero margin scrolls only when the row leaves the screen",
			margin: 0, initial: 0, delta: 5, rows: 20, height: 6,
			wantPos: 5, wantOffset: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.margin, 1)
			c.Jump(tt.initial, tt.rows, tt.height)
			c.Move(tt.delta, tt.rows, tt.height)
			if c.Pos() != tt.wantPos {
				t.Errorf("Pos() = %d, want %d", c.Pos(), tt.wantPos)
			}
			if c.Offset() != tt.wantOffset {
				t.Errorf("Offset() = %d, want %d", c.Offset(), tt.wantOffset)
			}
		})
	}
}

func TestMoveEmptyTable(t *testing.T) {
	c := New(1, 1)
	c.Move(3, 0, 10)
	c.Jump(3, 0, 10)
	c.JumpEnd(0, 10)
	if c.Pos() != 0 || c.Offset() != 0 {
		t.Errorf("empty table moved the cursor: pos=%d offset=%d", c.Pos(), c.Offset())
	}
}

func TestJumpStartShowsHeader(t *testing.T) {
	c := New(1, 1)
	c.JumpEnd(50, 10)
	if c.Offset() == 0 {
		t.Fatal("JumpEnd did not scroll")
	}
	c.JumpStart()
	if c.Pos() != 0 || c.Offset() != 0 {
		t.Errorf("JumpStart() pos=%d offset=%d, want 0 0", c.Pos(), c.Offset())
	}
}

func TestJumpEnd(t *testing.T) {
	c := New(2, 1)
	c.JumpEnd(30, 10)
	if c.Pos() != 29 {
		t.Errorf("Pos() = %d, want 29", c.Pos())
	}
	// 31 content lines, 10 visible.
	if c.Offset() != 21 {
		t.Errorf("Offset() = %d, want 21", c.Offset())
	}
}

func TestScroll(t *testing.T) {
	tests := []struct {
		name       string
		initialPos int
		delta      int
		wantPos    int
		wantOffset int
	}{
		{"scroll down drags the cursor", 0, 3, 2, 3},
		{"scroll within range keeps the cursor", 6, 1, 6, 4},
		{"scroll clamps at the bottom", 0, 100, 10, 11},
		{"scroll up clamps at the top", 4, -10, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(0, 1)
			c.Jump(tt.initialPos, 15, 5)
			c.Scroll(tt.delta, 15, 5)
			if c.Offset() != tt.wantOffset {
				t.Errorf("Offset() = %d, want %d", c.Offset(), tt.wantOffset)
			}
			if c.Pos() != tt.wantPos {
				t.Errorf("Pos() = %d, want %d", c.Pos(), tt.wantPos)
			}
		})
	}
}

func TestClampToBounds(t *testing.T) {
	c := New(0, 1)
	c.Jump(9, 10, 20)
	if !c.ClampToBounds(5) {
		t.Error("ClampToBounds(5) = false, want true")
	}
	if c.Pos() != 4 {
		t.Errorf("Pos() = %d, want 4", c.Pos())
	}
	if c.ClampToBounds(5) {
		t.Error("second ClampToBounds(5) = true, want false")
	}
	if !c.ClampToBounds(0) || c.Pos() != 0 {
		t.Errorf("ClampToBounds(0) left pos=%d", c.Pos())
	}
}

func TestVisibleLines(t *testing.T) {
	tests := []struct {
		name      string
		offset    int
		rows      int
		height    int
		wantStart int
		wantEnd   int
	}{
		{"header and first rows", 0, 20, 5, 0, 5},
		{"short table", 0, 2, 10, 0, 3},
		{"scrolled", 4, 20, 5, 4, 9},
		{"no height", 0, 20, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(0, 1)
			c.Scroll(tt.offset, tt.rows, max(tt.height, 1))
			start, end := c.VisibleLines(tt.rows, tt.height)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("VisibleLines() = [%d, %d), want [%d, %d)", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestReset(t *testing.T) {
	c := New(1, 1)
	c.JumpEnd(40, 10)
	c.Reset()
	if c.Pos() != 0 || c.Offset() != 0 {
		t.Errorf("Reset() pos=%d offset=%d", c.Pos(), c.Offset())
	}
}
