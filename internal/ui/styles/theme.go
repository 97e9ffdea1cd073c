package styles

import "github.com/charmbracelet/lipgloss"

// Theme is the color palette and the styles built from it.
type Theme struct {
	Primary   lipgloss.Color // title, active nav buttons
	Secondary lipgloss.Color // gradient end, window range

	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgHeader lipgloss.Color // header line and its mirror
	BgPinned lipgloss.Color // pinned columns
	BgCursor lipgloss.Color // selected row

	Error lipgloss.Color

	styles *Styles
}

// Styles are the pre-built lipgloss styles of a Theme.
type Styles struct {
	Base       lipgloss.Style
	Muted      lipgloss.Style
	Subtle     lipgloss.Style
	Header     lipgloss.Style
	Pinned     lipgloss.Style
	Cursor     lipgloss.Style
	Mirror     lipgloss.Style
	NavActive  lipgloss.Style
	NavBlocked lipgloss.Style
	Error      lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgHeader: lipgloss.Color("#262335"),
	BgPinned: lipgloss.Color("#1f1f1f"),
	BgCursor: lipgloss.Color("#303030"),

	Error: lipgloss.Color("#ff5555"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the styles built for t.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)
	header := lipgloss.NewStyle().
		Foreground(t.Primary).
		Background(t.BgHeader).
		Bold(true)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Header: header,
		Pinned: base.Background(t.BgPinned),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Mirror: header.Underline(true),
		NavActive: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		NavBlocked: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Error:      lipgloss.NewStyle().Foreground(t.Error),
	}
}
