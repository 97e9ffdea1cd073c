package grid

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tablewizard/internal/dataset"
	"github.com/llehouerou/tablewizard/internal/ui/testutil"
)

func TestView_Windowed(t *testing.T) {
	m := newGrid(t, 30)
	lines := testutil.PlainLines(m.View())

	if len(lines) != 20 {
		t.Fatalf("View() has %d lines, want 20", len(lines))
	}

	nav := lines[0]
	if got := testutil.Slice(nav, 27, 28); got != "<" {
		t.Errorf("prev button at 27 = %q, want %q", got, "<")
	}
	if got := testutil.Slice(nav, 78, 79); got != ">" {
		t.Errorf("next button at 78 = %q, want %q", got, ">")
	}
	if !strings.Contains(nav, "2-3 of 6") {
		t.Errorf("nav bar = %q, want window range", nav)
	}

	header := lines[1]
	for _, tt := range []struct {
		at   int
		want string
	}{
		{1, "A"},
		{27, "B"},
		{53, "C"},
	} {
		if got := testutil.Slice(header, tt.at, tt.at+1); got != tt.want {
			t.Errorf("header cell at %d = %q, want %q", tt.at, got, tt.want)
		}
	}
	if strings.Contains(header, "D") {
		t.Errorf("header %q shows a column outside the window", header)
	}

	if got := testutil.Slice(lines[2], 27, 29); got != "B0" {
		t.Errorf("first row at 27 = %q, want B0", got)
	}
}

func TestView_UnevenWidthAlignsLayers(t *testing.T) {
	// 79 and 80 cell containers leave one and two cells after three
	// 26 cell columns.
	for _, width := range []int{81, 82} {
		m := send(newGrid(t, 30), tea.WindowSizeMsg{Width: width, Height: 20})
		lines := testutil.PlainLines(m.View())

		if got := testutil.Slice(lines[0], 27, 28); got != "<" {
			t.Errorf("width %d: prev button at 27 = %q, want <", width, got)
		}
		if got := testutil.Slice(lines[0], 78, 79); got != ">" {
			t.Errorf("width %d: next button at 78 = %q, want >", width, got)
		}
		for _, tt := range []struct {
			line int
			at   int
			want string
		}{
			{1, 27, "B"}, // mirror over the header line
			{1, 53, "C"},
			{2, 27, "B0"},
			{2, 53, "C0"},
			{5, 53, "C3"},
		} {
			if got := testutil.Slice(lines[tt.line], tt.at, tt.at+len(tt.want)); got != tt.want {
				t.Errorf("width %d: line %d at %d = %q, want %q", width, tt.line, tt.at, got, tt.want)
			}
		}
		for _, line := range lines[1:4] {
			if strings.Contains(line, "D") {
				t.Errorf("width %d: %q shows a column outside the window", width, line)
			}
		}

		m = send(m, testutil.Wheel(10, 5, 1))
		fixed := testutil.PlainLines(m.View())[1]
		if got := testutil.Slice(fixed, 27, 28); got != "B" {
			t.Errorf("width %d: fixed mirror at 27 = %q, want B", width, got)
		}
		if got := testutil.Slice(fixed, 53, 54); got != "C" {
			t.Errorf("width %d: fixed mirror at 53 = %q, want C", width, got)
		}
	}
}

func TestView_MovedWindow(t *testing.T) {
	m := press(newGrid(t, 30), "l")
	lines := testutil.PlainLines(m.View())

	if got := testutil.Slice(lines[1], 1, 2); got != "A" {
		t.Errorf("pinned header = %q, want A", got)
	}
	if got := testutil.Slice(lines[1], 27, 28); got != "C" {
		t.Errorf("first window header = %q, want C", got)
	}
	if got := testutil.Slice(lines[1], 53, 54); got != "D" {
		t.Errorf("second window header = %q, want D", got)
	}
	if got := testutil.Slice(lines[5], 27, 29); got != "C3" {
		t.Errorf("row 3 at 27 = %q, want C3", got)
	}
}

func TestView_FixedMirrorCoversFirstLine(t *testing.T) {
	m := newGrid(t, 30)
	m = send(m, testutil.Wheel(10, 5, 1))

	lines := testutil.PlainLines(m.View())
	first := lines[1]
	if got := testutil.Slice(first, 1, 3); got != "A2" {
		t.Errorf("pinned cell under fixed mirror = %q, want A2", got)
	}
	if got := testutil.Slice(first, 27, 28); got != "B" {
		t.Errorf("fixed mirror at 27 = %q, want B", got)
	}
	if got := testutil.Slice(lines[2], 27, 29); got != "B3" {
		t.Errorf("line below mirror = %q, want B3", got)
	}
}

func TestView_MirrorHiddenWhenBottomed(t *testing.T) {
	m := newGrid(t, 2)
	// A short table: 3 content lines, so the first visible line can reach
	// the last one only in a one-line viewport.
	m = send(m, tea.WindowSizeMsg{Width: 80, Height: 2})
	m = send(m, testutil.Wheel(10, 1, 1))

	if m.Offset() != 2 {
		t.Fatalf("Offset() = %d, want 2", m.Offset())
	}
	lines := testutil.PlainLines(m.View())
	if got := testutil.Slice(lines[1], 27, 29); got != "B1" {
		t.Errorf("bottomed table at 27 = %q, want the row, not the mirror", got)
	}
}

func TestView_Disabled(t *testing.T) {
	m := newGrid(t, 30)
	m = send(m, tea.WindowSizeMsg{Width: 200, Height: 10})

	lines := testutil.PlainLines(m.View())
	if len(lines) != 10 {
		t.Fatalf("View() has %d lines, want 10 (no nav bar)", len(lines))
	}
	if got := testutil.Slice(lines[0], 1, 25); got != "A   B   C   D   E   F   " {
		t.Errorf("intrinsic header = %q", got)
	}
	if got := testutil.Slice(lines[1], 1, 4); got != "A0 " {
		t.Errorf("intrinsic first row = %q", got)
	}
}

func TestView_NumericRightAligned(t *testing.T) {
	tbl := &dataset.Table{
		Headers: []string{"name", "a", "b", "c"},
		Rows:    [][]string{{"x", "1,200", "7", "9"}},
		Numeric: []bool{false, true, true, true},
	}
	cfg := windowConfig()
	cfg.TotalColumns = 4
	cfg.TotalScrollable = 3
	cfg.Headers = []string{"a", "b", "c"}
	cfg.MirrorEnabled = false

	m, err := New(tbl, Options{Window: cfg, Margin: 0})
	if err != nil {
		t.Fatal(err)
	}
	m = send(m, tea.WindowSizeMsg{Width: 80, Height: 5})

	// 80 cells resolve to 2 visible columns of 100/3 % = 26 cells.
	row := testutil.PlainLines(m.View())[2]
	if got := testutil.Slice(row, 26, 52); got != strings.Repeat(" ", 20)+"1,200 " {
		t.Errorf("numeric cell = %q, want right aligned", got)
	}
	if got := testutil.Slice(row, 0, 2); got != "x " {
		t.Errorf("text cell = %q, want left aligned", got)
	}
}

func TestView_TruncatesLongCells(t *testing.T) {
	tbl := newTable(1)
	tbl.Rows[0][1] = strings.Repeat("w", 40)
	m, err := New(tbl, Options{Window: windowConfig(), Margin: 1})
	if err != nil {
		t.Fatal(err)
	}
	m = send(m, tea.WindowSizeMsg{Width: 80, Height: 5})

	row := testutil.PlainLines(m.View())[2]
	want := strings.Repeat("w", 24) + "… "
	if got := testutil.Slice(row, 27, 53); got != want {
		t.Errorf("long cell = %q, want %q", got, want)
	}
}

func TestView_EmptyBeforeStart(t *testing.T) {
	m, err := New(newTable(1), Options{Window: windowConfig()})
	if err != nil {
		t.Fatal(err)
	}
	if v := m.View(); v != "" {
		t.Errorf("View() before the first resize = %q, want empty", v)
	}
}

func TestShiftCellsAndWindow(t *testing.T) {
	if got := shiftCells(-150, 10); got != 15 {
		t.Errorf("shiftCells(-150, 10) = %d, want 15", got)
	}
	if got := window("abcdefgh", 2, 4); got != "cdef" {
		t.Errorf("window shift 2 = %q", got)
	}
	if got := window("abcdefgh", -2, 4); got != "  ab" {
		t.Errorf("window shift -2 = %q", got)
	}
	if got := window("abc", 2, 4); got != "c   " {
		t.Errorf("window past the end = %q", got)
	}
	if got := window("abc", 0, 0); got != "" {
		t.Errorf("window of zero width = %q", got)
	}
}
