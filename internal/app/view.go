package app

import (
	"strings"

	zone "github.com/lrstanley/bubblezone"

	"github.com/llehouerou/tablewizard/internal/ui/headerbar"
	"github.com/llehouerou/tablewizard/internal/ui/layout"
	"github.com/llehouerou/tablewizard/internal/ui/render"
	"github.com/llehouerou/tablewizard/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}
	s := styles.T().S()

	parts := []string{headerbar.Render(m.statusInfo(), m.Width)}

	var body string
	switch {
	case m.Ready:
		body = m.Grid.View()
	case m.Loading:
		body = render.Blank(m.cfg.UI.Margin) + s.Muted.Render("Loading "+render.Truncate(m.cfg.Source.Path, m.Width)+render.Ellipsis)
	}
	if height := m.gridHeight(); height > 0 {
		parts = append(parts, fitHeight(body, height))
	}

	if m.ErrorMsg != "" {
		parts = append(parts, s.Error.Render(render.Truncate(m.ErrorMsg, m.Width)))
	}
	parts = append(parts, m.helpView())

	return zone.Scan(strings.Join(parts, "\n"))
}

func (m Model) helpView() string {
	return m.help.View(m.helpMap)
}

func (m Model) statusInfo() headerbar.Info {
	info := headerbar.Info{
		Source:         m.cfg.Source.Path,
		Rule:           m.cfg.Table.Rule,
		ContainerWidth: layout.ContainerWidth(m.Width, m.cfg.UI.Margin),
	}
	if !m.Ready {
		return info
	}
	t := m.Grid.Table()
	info.Rows = len(t.Rows)
	info.Cursor = m.Grid.Cursor()
	info.Columns = t.ColumnCount()
	info.Enabled = m.Grid.Engine().Enabled()
	info.First, info.Last = m.Grid.Range()
	return info
}

// fitHeight pads or cuts s to exactly height lines.
func fitHeight(s string, height int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
