// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit       Action = "quit"
	ActionToggleHelp Action = "toggle_help"
	ActionReload     Action = "reload"

	// Column window actions
	ActionPrevColumn  Action = "prev_column"
	ActionNextColumn  Action = "next_column"
	ActionFirstWindow Action = "first_window"
	ActionLastWindow  Action = "last_window"

	// Row actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionPageUp    Action = "page_up"
	ActionPageDown  Action = "page_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
)
