package app

import (
	"errors"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/tablewizard/internal/dataset"
	"github.com/llehouerou/tablewizard/internal/errmsg"
	"github.com/llehouerou/tablewizard/internal/keymap"
	"github.com/llehouerou/tablewizard/internal/ui/grid"
	"github.com/llehouerou/tablewizard/internal/ui/layout"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case InitResult:
		return m.handleInitResult(msg)

	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, m.resizeGrid()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case grid.WindowChangedMsg:
		log.Printf("window: enabled=%v position=%d visible=%d prev=%v next=%v",
			msg.Enabled, msg.Position, msg.Visible, msg.Buttons.PrevEnabled, msg.Buttons.NextEnabled)
		return m, nil
	}

	if !m.Ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.Grid, cmd = m.Grid.Update(msg)
	return m, cmd
}

// handleInitResult applies the async load result. A failed reload keeps
// the table already on screen.
func (m Model) handleInitResult(msg InitResult) (tea.Model, tea.Cmd) {
	m.Loading = false
	if msg.Err != nil {
		m.ErrorMsg = m.loadError(msg.Err)
		return m, m.resizeGrid()
	}

	g, err := m.buildGrid(msg.Table)
	if err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpTableBuild, err)
		return m, m.resizeGrid()
	}
	m.Grid = g
	m.Ready = true
	m.ErrorMsg = ""
	return m, m.resizeGrid()
}

// loadError formats a load failure, naming the query when the database
// opened but the query failed.
func (m Model) loadError(err error) string {
	if errors.Is(err, dataset.ErrQuery) {
		return errmsg.FormatWith(errmsg.OpDatasetQuery, m.cfg.Source.Query, err)
	}
	return errmsg.FormatWith(errmsg.OpDatasetLoad, m.cfg.Source.Path, err)
}

func (m Model) buildGrid(t *dataset.Table) (grid.Model, error) {
	total := t.ColumnCount()
	split := m.cfg.Table.SplitIndex
	scrollable := m.cfg.ScrollableFor(total)

	g, err := grid.New(t, grid.Options{
		Window: m.cfg.Window(total, t.HeadersFrom(split, split+scrollable)),
		Margin: m.cfg.UI.Margin,
		FPS:    m.cfg.Animation.FPS,
	})
	if err != nil {
		return grid.Model{}, err
	}
	g.SetFocused(true)
	return g, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.ResolveMsg(msg) {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionToggleHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, m.resizeGrid()
	case keymap.ActionReload:
		m.Loading = true
		return m, LoadCmd(m.cfg)
	}

	if !m.Ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.Grid, cmd = m.Grid.Update(msg)
	return m, cmd
}

// resizeGrid hands the grid the area left by the bars around it.
func (m *Model) resizeGrid() tea.Cmd {
	if !m.Ready || m.Width == 0 {
		return nil
	}
	var cmd tea.Cmd
	m.Grid, cmd = m.Grid.Update(tea.WindowSizeMsg{Width: m.Width, Height: m.gridHeight()})
	return cmd
}

func (m Model) gridHeight() int {
	return layout.ContentHeight(m.Height, layout.ContentOpts{
		HelpLines:    lipgloss.Height(m.helpView()),
		ErrorVisible: m.ErrorMsg != "",
	})
}
