package app

import (
	"context"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tablewizard/internal/config"
	"github.com/llehouerou/tablewizard/internal/dataset"
)

// loadTimeout bounds a single table load.
const loadTimeout = 30 * time.Second

// LoadCmd returns a command that loads the configured table.
func LoadCmd(cfg *config.Config) tea.Cmd {
	src := dataset.Source{
		Kind:     cfg.Source.Kind,
		Path:     cfg.Source.Path,
		Query:    cfg.Source.Query,
		Humanize: cfg.Source.HumanizeNumbers,
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		start := time.Now()
		t, err := dataset.Load(ctx, src)
		if err != nil {
			log.Printf("load %s: %v", src.Path, err)
			return InitResult{Err: err}
		}
		log.Printf("loaded %s: %d rows, %d columns in %s", src.Path, len(t.Rows), t.ColumnCount(), time.Since(start))
		return InitResult{Table: t}
	}
}
