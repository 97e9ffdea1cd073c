// Package app is the root Bubble Tea model: it loads the table, hosts the
// grid and draws the status bar, error line and key help around it.
package app

import (
	"log"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tablewizard/internal/config"
	"github.com/llehouerou/tablewizard/internal/keymap"
	"github.com/llehouerou/tablewizard/internal/ui/grid"
)

// Model is the root application model containing all state.
type Model struct {
	cfg     *config.Config
	keys    *keymap.Resolver
	help    help.Model
	helpMap keymap.HelpMap

	Grid     grid.Model
	Ready    bool // a table is loaded and the grid built
	Loading  bool
	ErrorMsg string
	Width    int
	Height   int
}

// New creates the application model. The table is loaded by Init.
func New(cfg *config.Config) Model {
	keys := keymap.Default()
	if c := keys.Conflicts(); len(c) > 0 {
		log.Printf("keymap: keys bound to more than one action: %v", c)
	}
	h := help.New()
	h.ShortSeparator = "  "
	return Model{
		cfg:     cfg,
		keys:    keys,
		help:    h,
		helpMap: keymap.NewHelpMap(),
		Loading: true,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return LoadCmd(m.cfg)
}
