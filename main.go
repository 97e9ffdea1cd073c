package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/llehouerou/tablewizard/internal/app"
	"github.com/llehouerou/tablewizard/internal/config"
	"github.com/llehouerou/tablewizard/internal/errmsg"
)

// debugEnv enables the debug log regardless of configuration.
const debugEnv = "TABLEWIZARD_DEBUG"

func main() {
	configPath := flag.String("config", "", "path to a config file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-config file] [data.csv|data.db]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpConfigLoad, err))
		os.Exit(1)
	}
	if flag.NArg() > 0 {
		cfg.SetSourcePath(flag.Arg(0))
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpConfigValidate, err))
		flag.Usage()
		os.Exit(2)
	}

	closeLog, err := setupLog(cfg.UI.DebugLog || os.Getenv(debugEnv) != "")
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpLogSetup, err))
		os.Exit(1)
	}
	defer closeLog()

	zone.NewGlobal()
	defer zone.Close()

	p := tea.NewProgram(app.New(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Printf("program exited: %v", err)
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}
}

// setupLog sends the standard logger to the debug log file, or discards it.
// The terminal belongs to the UI either way.
func setupLog(enabled bool) (func(), error) {
	if !enabled {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	path, err := config.DebugLogPath()
	if err != nil {
		return nil, err
	}
	f, err := tea.LogToFile(path, "tablewizard")
	if err != nil {
		return nil, err
	}
	return func() { f.Close() }, nil
}
