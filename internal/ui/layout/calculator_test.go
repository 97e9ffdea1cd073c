package layout

import (
	"math"
	"testing"
)

func TestColumnWidthPercent(t *testing.T) {
	tests := []struct {
		name            string
		visible         int
		totalColumns    int
		totalScrollable int
		want            float64
	}{
		{"two visible of four scrollable", 2, 6, 4, 25},
		{"one visible one pinned", 1, 5, 4, 50},
		{"all scrollable visible", 4, 4, 4, 25},
		{"excluded columns widen denominator", 2, 6, 3, 20}, // 100 / (2 + 3)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ColumnWidthPercent(tt.visible, tt.totalColumns, tt.totalScrollable)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ColumnWidthPercent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStickyElementWidthPercent(t *testing.T) {
	if got := StickyElementWidthPercent(4); got != 25 {
		t.Errorf("StickyElementWidthPercent(4) = %v, want 25", got)
	}
}

func TestCompute(t *testing.T) {
	g, ok := Compute(2, 6, 4)
	if !ok {
		t.Fatal("Compute(2, 6, 4) not ok")
	}
	want := Geometry{
		Visible:       2,
		Column:        25,
		NavWrapper:    50,
		Table:         150,
		MirrorWrapper: 50,
		MirrorInner:   200,
		MirrorElement: 25,
	}
	if g != want {
		t.Errorf("Compute(2, 6, 4) = %+v, want %+v", g, want)
	}
}

func TestCompute_Idempotent(t *testing.T) {
	first, _ := Compute(3, 8, 6)
	second, _ := Compute(3, 8, 6)
	if first != second {
		t.Errorf("Compute drifted: %+v then %+v", first, second)
	}
}

func TestCompute_Degenerate(t *testing.T) {
	tests := []struct {
		name                                  string
		visible, totalColumns, totalScrollable int
	}{
		{"nothing visible", 0, 6, 4},
		{"no scrollable columns", 2, 6, 0},
		{"zero denominator", 2, 2, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := Compute(tt.visible, tt.totalColumns, tt.totalScrollable); ok {
				t.Error("Compute() ok = true, want false")
			}
		})
	}
}

func TestCells(t *testing.T) {
	tests := []struct {
		percent float64
		width   int
		want    int
	}{
		{25, 100, 25},
		{25, 81, 20},
		{33.333, 90, 29},
		{100.0 / 3, 78, 26},
		{200.0 / 3, 78, 52},
		{0, 100, 0},
		{50, 0, 0},
		{math.Inf(1), 100, 0},
	}

	for _, tt := range tests {
		if got := Cells(tt.percent, tt.width); got != tt.want {
			t.Errorf("Cells(%v, %d) = %d, want %d", tt.percent, tt.width, got, tt.want)
		}
	}
}

func TestContentHeight(t *testing.T) {
	tests := []struct {
		name         string
		windowHeight int
		opts         ContentOpts
		want         int
	}{
		{"bare", 40, ContentOpts{}, 38},
		{"error line", 40, ContentOpts{ErrorVisible: true}, 37},
		{"full help", 40, ContentOpts{HelpLines: 7}, 32},
		{"full help and error", 40, ContentOpts{HelpLines: 7, ErrorVisible: true}, 31},
		{"tiny window clamps to zero", 1, ContentOpts{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContentHeight(tt.windowHeight, tt.opts); got != tt.want {
				t.Errorf("ContentHeight() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestContainerWidth(t *testing.T) {
	tests := []struct {
		width, margin, want int
	}{
		{100, 0, 100},
		{100, 2, 96},
		{3, 2, 0},
		{100, -1, 100},
	}
	for _, tt := range tests {
		if got := ContainerWidth(tt.width, tt.margin); got != tt.want {
			t.Errorf("ContainerWidth(%d, %d) = %d, want %d", tt.width, tt.margin, got, tt.want)
		}
	}
}
