package keymap

import "github.com/charmbracelet/bubbles/key"

// Binding ties keys to an action, with a description for help.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "columns", "rows"
}

// All contains every key binding.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "quit", "global"},
	{ActionToggleHelp, []string{"?"}, "toggle help", "global"},
	{ActionReload, []string{"r"}, "reload data", "global"},

	// Column window
	{ActionPrevColumn, []string{"h", "left"}, "previous column", "columns"},
	{ActionNextColumn, []string{"l", "right"}, "next column", "columns"},
	{ActionFirstWindow, []string{"home", "0"}, "first columns", "columns"},
	{ActionLastWindow, []string{"end", "$"}, "last columns", "columns"},

	// Rows
	{ActionMoveUp, []string{"k", "up"}, "row up", "rows"},
	{ActionMoveDown, []string{"j", "down"}, "row down", "rows"},
	{ActionPageUp, []string{"pgup", "ctrl+u"}, "page up", "rows"},
	{ActionPageDown, []string{"pgdown", "ctrl+d"}, "page down", "rows"},
	{ActionJumpStart, []string{"g"}, "first row", "rows"},
	{ActionJumpEnd, []string{"G"}, "last row", "rows"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Key converts b to a bubbles key binding. The help label shows the first
// key only.
func (b Binding) Key() key.Binding {
	label := ""
	if len(b.Keys) > 0 {
		label = displayKey(b.Keys[0])
	}
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(label, b.Description),
	)
}

func displayKey(k string) string {
	switch k {
	case "left":
		return "←"
	case "right":
		return "→"
	case "up":
		return "↑"
	case "down":
		return "↓"
	}
	return k
}

// HelpMap adapts the bindings to the bubbles help.KeyMap interface.
type HelpMap struct {
	short []key.Binding
	full  [][]key.Binding
}

// NewHelpMap builds help pages: the short view lists the column and quit
// bindings, the full view one column per context.
func NewHelpMap() HelpMap {
	var h HelpMap
	for _, ctx := range []string{"columns", "rows", "global"} {
		var group []key.Binding
		for _, b := range ByContext(ctx) {
			k := b.Key()
			group = append(group, k)
			if ctx == "columns" || b.Action == ActionQuit || b.Action == ActionToggleHelp {
				h.short = append(h.short, k)
			}
		}
		h.full = append(h.full, group)
	}
	return h
}

// ShortHelp implements help.KeyMap.
func (h HelpMap) ShortHelp() []key.Binding {
	return h.short
}

// FullHelp implements help.KeyMap.
func (h HelpMap) FullHelp() [][]key.Binding {
	return h.full
}
