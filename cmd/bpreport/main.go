// Command bpreport prints how a column window configuration behaves over
// a sweep of container widths: the visible column count, the column width
// and which buttons are enabled at the first and last window.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/llehouerou/tablewizard/internal/colwindow"
	"github.com/llehouerou/tablewizard/internal/config"
	"github.com/llehouerou/tablewizard/internal/dataset"
	"github.com/llehouerou/tablewizard/internal/ui/layout"
)

// headless is a column window surface that only tracks the container
// width.
type headless struct {
	width float64
}

func (h *headless) ContainerWidth() float64 { return h.width }

func (h *headless) SetTransform(colwindow.Target, float64)                    {}
func (h *headless) AnimateTransform(colwindow.Target, float64, time.Duration) {}
func (h *headless) Apply(layout.Geometry)                                     {}
func (h *headless) Reset()                                                    {}

func main() {
	configPath := flag.String("config", "", "path to a config file")
	columns := flag.Int("columns", 0, "total columns; read from the data file when 0")
	from := flag.Int("from", 20, "narrowest container width")
	to := flag.Int("to", 200, "widest container width")
	step := flag.Int("step", 10, "width increment")
	flag.Parse()

	log.SetFlags(0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if flag.NArg() > 0 {
		cfg.SetSourcePath(flag.Arg(0))
	}
	if *step <= 0 || *from > *to {
		log.Fatalf("bad sweep: from %d to %d step %d", *from, *to, *step)
	}

	total := *columns
	if total == 0 {
		if cfg.Source.Path == "" {
			log.Fatal("no -columns and no data file")
		}
		t, err := dataset.Load(context.Background(), dataset.Source{
			Kind:  cfg.Source.Kind,
			Path:  cfg.Source.Path,
			Query: cfg.Source.Query,
		})
		if err != nil {
			log.Fatalf("load %s: %v", cfg.Source.Path, err)
		}
		total = t.ColumnCount()
	}

	window := cfg.Window(total, nil)
	window.MirrorEnabled = false
	window.AnimationDuration = 0

	surf := &headless{}
	engine, err := colwindow.New(window, colwindow.Collaborators{
		Measurer:    surf,
		Transformer: surf,
		Layout:      surf,
	})
	if err != nil {
		log.Fatalf("column window: %v", err)
	}

	log.Printf("rule %s, %d columns, %d pinned, %d scrollable", cfg.Table.Rule, total, window.SplitIndex, window.TotalScrollable)
	log.Printf("%6s %9s %8s %8s %10s %14s %14s", "width", "threshold", "visible", "column", "window", "first", "last")

	surf.width = float64(*from)
	engine.Start()
	for w := *from; w <= *to; w += *step {
		surf.width = float64(w)
		engine.HandleResize()
		report(engine, cfg.Table.Rule.Threshold, w)
	}
}

func report(e *colwindow.Engine, threshold func(int) (int, bool), width int) {
	th := "-"
	if t, ok := threshold(width); ok {
		th = fmt.Sprintf("<=%d", t)
	}
	if !e.Enabled() {
		log.Printf("%6d %9s %8s %8s %10s %14s %14s", width, th, "-", "-", "all", "disabled", "")
		return
	}
	col := layout.Cells(e.Geometry().Column, width)
	split := e.Config().SplitIndex
	window := fmt.Sprintf("%d-%d", split+1, split+e.VisibleCount())

	e.MoveTo(0, true)
	first := buttons(e)
	e.Last()
	last := buttons(e)
	e.MoveTo(0, true)

	log.Printf("%6d %9s %8d %8d %10s %14s %14s", width, th, e.VisibleCount(), col, window, first, last)
}

// buttons renders the button state as "prev/next@position", with a dash
// for a disabled button.
func buttons(e *colwindow.Engine) string {
	b := e.Buttons()
	prev, next := "-", "-"
	if b.PrevEnabled {
		prev = "prev"
	}
	if b.NextEnabled {
		next = "next"
	}
	return fmt.Sprintf("%s/%s@%d", prev, next, e.Position())
}
