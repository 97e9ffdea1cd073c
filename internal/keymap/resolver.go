package keymap

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
)

// Resolver maps key strings to actions.
type Resolver struct {
	bindings  map[string]Action   // key -> action, last binding wins
	byAction  map[Action][]string // action -> keys
	conflicts map[string][]Action // keys bound to more than one action
}

// NewResolver creates a resolver from bindings.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings:  make(map[string]Action),
		byAction:  make(map[Action][]string),
		conflicts: make(map[string][]Action),
	}
	for _, b := range bindings {
		for _, k := range b.Keys {
			if prev, ok := r.bindings[k]; ok && prev != b.Action {
				if len(r.conflicts[k]) == 0 {
					r.conflicts[k] = []Action{prev}
				}
				r.conflicts[k] = append(r.conflicts[k], b.Action)
			}
			r.bindings[k] = b.Action
		}
		r.byAction[b.Action] = append(r.byAction[b.Action], b.Keys...)
	}
	for action, keys := range r.byAction {
		r.byAction[action] = dedupe(keys)
	}
	return r
}

// Default returns a resolver over All.
func Default() *Resolver {
	return NewResolver(All)
}

// Resolve returns the action for a key, or empty string if not bound.
func (r *Resolver) Resolve(key string) Action {
	return r.bindings[key]
}

// ResolveMsg returns the action bound to a key press.
func (r *Resolver) ResolveMsg(msg tea.KeyMsg) Action {
	return r.bindings[msg.String()]
}

// KeysFor returns the keys bound to an action.
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}

// Conflicts returns the keys bound to more than one action, sorted.
func (r *Resolver) Conflicts() []string {
	keys := make([]string, 0, len(r.conflicts))
	for k := range r.conflicts {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func dedupe(s []string) []string {
	seen := make(map[string]bool, len(s))
	result := make([]string, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
