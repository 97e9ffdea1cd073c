// Package grid renders a table with pinned columns and a sliding window of
// scrollable columns. The window is driven by a colwindow.Engine; this
// package supplies its terminal collaborators and maps keys, mouse drags,
// wheel scrolling and nav button clicks onto it.
package grid

import (
	"sync/atomic"

	zone "github.com/lrstanley/bubblezone"

	"github.com/llehouerou/tablewizard/internal/colwindow"
	"github.com/llehouerou/tablewizard/internal/dataset"
	"github.com/llehouerou/tablewizard/internal/keymap"
	"github.com/llehouerou/tablewizard/internal/ui"
	"github.com/llehouerou/tablewizard/internal/ui/cursor"
	"github.com/llehouerou/tablewizard/internal/ui/layout"
	"github.com/llehouerou/tablewizard/internal/ui/sticky"
)

// WindowChangedMsg is sent after the window moved, was resized or changed
// button state.
type WindowChangedMsg struct {
	Enabled  bool
	Position int
	Visible  int
	Buttons  colwindow.ButtonState
}

// Options configure a grid.
type Options struct {
	Window colwindow.Config
	Margin int // blank cells on each side of the table
	FPS    int // animation frame rate
}

// Model is the table component.
type Model struct {
	ui.Base
	table   *dataset.Table
	engine  *colwindow.Engine
	surf    *surface
	cursor  cursor.Cursor
	keys    *keymap.Resolver
	zoneID  string
	started bool

	intrinsic []int // column widths while the window is disabled
}

var animIDs atomic.Int64

func nextAnimID() int {
	return int(animIDs.Add(1))
}

// New builds the grid for table. The engine starts on the first
// tea.WindowSizeMsg, once the container can be measured.
func New(table *dataset.Table, opts Options) (Model, error) {
	surf := newSurface(max(opts.Margin, 0), opts.FPS, opts.Window)
	engine, err := colwindow.New(opts.Window, surf.collaborators())
	if err != nil {
		return Model{}, err
	}
	m := Model{
		table:  table,
		engine: engine,
		surf:   surf,
		cursor: cursor.New(ui.ScrollMargin, ui.HeaderLines),
		keys:   keymap.Default(),
		zoneID: zone.NewPrefix(),
	}
	m.intrinsic = intrinsicWidths(table, opts.Window.TotalColumns)
	rows := len(table.Rows)
	surf.tracker = sticky.New(func() (header, last int) {
		return 0, ui.HeaderLines + rows - 1
	})
	return m, nil
}

// Engine returns the column window engine.
func (m Model) Engine() *colwindow.Engine {
	return m.engine
}

// Table returns the table being shown.
func (m Model) Table() *dataset.Table {
	return m.table
}

// Cursor returns the selected row.
func (m Model) Cursor() int {
	return m.cursor.Pos()
}

// Offset returns the first visible content line. Line 0 is the header.
func (m Model) Offset() int {
	return m.cursor.Offset()
}

// Started reports whether the engine has performed its initial layout.
func (m Model) Started() bool {
	return m.started
}

// Range returns the absolute column indices [first, last) of the visible
// scrollable columns. It is empty while the window is disabled.
func (m Model) Range() (first, last int) {
	if !m.engine.Enabled() {
		return 0, 0
	}
	split := m.engine.Config().SplitIndex
	first = split + m.engine.Position()
	return first, first + m.engine.VisibleCount()
}

// NavVisible reports whether the nav bar takes a line.
func (m Model) NavVisible() bool {
	return m.surf.applied
}

// tableHeight is the number of content lines on screen.
func (m Model) tableHeight() int {
	if m.NavVisible() {
		return m.BodyHeight(layout.NavBarHeight)
	}
	return m.Height()
}

func (m Model) rows() int {
	return len(m.table.Rows)
}

// Zone ids of the clickable areas.
func (m Model) prevZone() string  { return m.zoneID + "prev" }
func (m Model) nextZone() string  { return m.zoneID + "next" }
func (m Model) tableZone() string { return m.zoneID + "table" }
