package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/tablewizard/internal/breakpoint"
	"github.com/llehouerou/tablewizard/internal/colwindow"
)

// AppName names the xdg directories used for config and state.
const AppName = "tablewizard"

// Source kinds.
const (
	SourceCSV    = "csv"
	SourceSQLite = "sqlite"
)

var (
	ErrUnknownSource = errors.New("unknown source kind")
	ErrMissingPath   = errors.New("source path is required")
	ErrMissingQuery  = errors.New("sqlite source needs a query")
	ErrInvalidSplit  = errors.New("split_index must not be negative")
	ErrInvalidCount  = errors.New("total_scrollable must not be negative")
	ErrInvalidFPS    = errors.New("fps must be between 1 and 240")
	ErrInvalidMargin = errors.New("margin must not be negative")
	ErrNegativeTime  = errors.New("animation duration must not be negative")
)

type Config struct {
	Source     SourceConfig     `koanf:"source"`
	Table      TableConfig      `koanf:"table"`
	Navigation NavigationConfig `koanf:"navigation"`
	Animation  AnimationConfig  `koanf:"animation"`
	Mirror     ToggleConfig     `koanf:"mirror"`
	Gesture    ToggleConfig     `koanf:"gesture"`
	UI         UIConfig         `koanf:"ui"`
}

// SourceConfig says where the table data comes from.
type SourceConfig struct {
	Kind            string `koanf:"kind"`  // "csv" or "sqlite"
	Path            string `koanf:"path"`  // file path, ~ expanded
	Query           string `koanf:"query"` // sqlite only
	HumanizeNumbers bool   `koanf:"humanize_numbers"`
}

// TableConfig controls the column window.
type TableConfig struct {
	SplitIndex      int  `koanf:"split_index"`      // first scrollable column
	TotalScrollable *int `koanf:"total_scrollable"` // default: every column from split_index on

	// Rule is decoded from visible_columns, which is either an integer or
	// a table of container width thresholds.
	Rule breakpoint.Rule `koanf:"-"`
}

// NavigationConfig holds the nav button captions.
type NavigationConfig struct {
	PrevLabel string `koanf:"prev_label"`
	NextLabel string `koanf:"next_label"`
}

// AnimationConfig controls column slide animations.
type AnimationConfig struct {
	Duration float64 `koanf:"duration"` // seconds, 0 disables animation
	FPS      int     `koanf:"fps"`
}

// ToggleConfig is a feature switch section.
type ToggleConfig struct {
	Enabled bool `koanf:"enabled"`
}

// UIConfig holds layout and diagnostics settings.
type UIConfig struct {
	Margin   int  `koanf:"margin"`    // blank cells on each side of the table
	DebugLog bool `koanf:"debug_log"` // write a debug log under the xdg state dir
}

// DefaultRule is used when visible_columns is not configured.
func DefaultRule() breakpoint.Rule {
	return breakpoint.NewTable(map[int]int{60: 1, 90: 2, 120: 3, 160: 4})
}

// Default returns the configuration used for keys missing from every file.
func Default() *Config {
	return &Config{
		Source:     SourceConfig{Kind: SourceCSV},
		Table:      TableConfig{Rule: DefaultRule()},
		Navigation: NavigationConfig{PrevLabel: "‹ Prev", NextLabel: "Next ›"},
		Animation:  AnimationConfig{Duration: 0.25, FPS: 60},
		Mirror:     ToggleConfig{Enabled: true},
		Gesture:    ToggleConfig{Enabled: true},
		UI:         UIConfig{Margin: 1},
	}
}

// Load reads the config files in priority order (last wins): the xdg
// config file, ./config.toml, then explicit if it is not empty. Unlike the
// other two, an explicit path must exist.
func Load(explicit string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
	}
	if explicit != "" {
		path := expandPath(explicit)
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if k.Exists("table.visible_columns") {
		rule, err := breakpoint.Parse(k.Get("table.visible_columns"))
		if err != nil {
			return nil, fmt.Errorf("table.visible_columns: %w", err)
		}
		cfg.Table.Rule = rule
	}

	cfg.Source.Kind = strings.ToLower(strings.TrimSpace(cfg.Source.Kind))
	cfg.Source.Path = expandPath(cfg.Source.Path)

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/tablewizard/config.toml
		filepath.Join(xdg.ConfigHome, AppName, "config.toml"),
		// 2. ./config.toml
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Validate reports the first configuration error.
func (c *Config) Validate() error {
	switch c.Source.Kind {
	case SourceCSV:
	case SourceSQLite:
		if strings.TrimSpace(c.Source.Query) == "" {
			return ErrMissingQuery
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSource, c.Source.Kind)
	}
	if c.Source.Path == "" {
		return ErrMissingPath
	}
	if c.Table.SplitIndex < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSplit, c.Table.SplitIndex)
	}
	if c.Table.TotalScrollable != nil && *c.Table.TotalScrollable < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, *c.Table.TotalScrollable)
	}
	if err := c.Table.Rule.Validate(); err != nil {
		return fmt.Errorf("table.visible_columns: %w", err)
	}
	if c.Animation.Duration < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeTime, c.Animation.Duration)
	}
	if c.Animation.FPS < 1 || c.Animation.FPS > 240 {
		return fmt.Errorf("%w: %d", ErrInvalidFPS, c.Animation.FPS)
	}
	if c.UI.Margin < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMargin, c.UI.Margin)
	}
	return nil
}

// SetSourcePath points the source at path, inferring its kind from the
// file extension. Unknown extensions keep the configured kind.
func (c *Config) SetSourcePath(path string) {
	c.Source.Path = expandPath(path)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv":
		c.Source.Kind = SourceCSV
	case ".db", ".sqlite", ".sqlite3":
		c.Source.Kind = SourceSQLite
	}
}

// AnimationDuration returns the slide duration.
func (c *Config) AnimationDuration() time.Duration {
	return time.Duration(c.Animation.Duration * float64(time.Second))
}

// ScrollableFor returns total_scrollable, defaulting to every column from
// split_index to the end of a table totalColumns wide.
func (c *Config) ScrollableFor(totalColumns int) int {
	if c.Table.TotalScrollable != nil {
		return *c.Table.TotalScrollable
	}
	return max(totalColumns-c.Table.SplitIndex, 0)
}

// Window builds the column window configuration for a table with the given
// width and scrollable header cells.
func (c *Config) Window(totalColumns int, headers []string) colwindow.Config {
	return colwindow.Config{
		SplitIndex:      c.Table.SplitIndex,
		TotalColumns:    totalColumns,
		TotalScrollable: c.ScrollableFor(totalColumns),
		Rule:            c.Table.Rule,
		Labels: colwindow.Labels{
			Prev: c.Navigation.PrevLabel,
			Next: c.Navigation.NextLabel,
		},
		AnimationDuration: c.AnimationDuration(),
		MirrorEnabled:     c.Mirror.Enabled,
		GestureEnabled:    c.Gesture.Enabled,
		Headers:           headers,
	}
}

// DebugLogPath returns the debug log location under the xdg state dir,
// creating its directory.
func DebugLogPath() (string, error) {
	return xdg.StateFile(filepath.Join(AppName, "debug.log"))
}
