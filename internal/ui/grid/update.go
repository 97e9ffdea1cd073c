package grid

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/llehouerou/tablewizard/internal/keymap"
	"github.com/llehouerou/tablewizard/internal/ui/anim"
)

// wheelLines is how far one wheel notch scrolls.
const wheelLines = 3

// Update handles messages for the grid.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if !m.IsFocused() {
			return m, nil
		}
		m.handleAction(m.keys.ResolveMsg(msg))
	case tea.MouseMsg:
		m.handleMouse(msg)
	case anim.FrameMsg:
		if msg.ID != m.surf.anim.ID() {
			return m, nil
		}
		if m.surf.anim.Step(msg.Time) {
			return m, m.surf.anim.Tick()
		}
		m.surf.ticking = false
		return m, nil
	}
	return m, m.flush()
}

func (m *Model) resize(width, height int) {
	m.SetSize(width, height)
	m.surf.width = width
	if !m.started {
		m.started = true
		m.engine.Start()
	} else if m.engine.HandleResize() {
		log.Printf("grid: visible columns now %d at width %d", m.engine.VisibleCount(), m.surf.containerCells())
	}
	m.cursor.EnsureVisible(m.rows(), m.tableHeight())
	m.syncSticky()
}

func (m *Model) handleAction(action keymap.Action) {
	rows, height := m.rows(), m.tableHeight()
	switch action {
	case keymap.ActionPrevColumn:
		m.engine.Prev()
	case keymap.ActionNextColumn:
		m.engine.Next()
	case keymap.ActionFirstWindow:
		m.engine.First()
	case keymap.ActionLastWindow:
		m.engine.Last()
	case keymap.ActionMoveUp:
		m.cursor.Move(-1, rows, height)
	case keymap.ActionMoveDown:
		m.cursor.Move(1, rows, height)
	case keymap.ActionPageUp:
		m.cursor.Move(-m.pageSize(), rows, height)
	case keymap.ActionPageDown:
		m.cursor.Move(m.pageSize(), rows, height)
	case keymap.ActionJumpStart:
		m.cursor.JumpStart()
	case keymap.ActionJumpEnd:
		m.cursor.JumpEnd(rows, height)
	default:
		return
	}
	m.syncSticky()
}

func (m Model) pageSize() int {
	return max(m.tableHeight()-1, 1)
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.cursor.Scroll(-wheelLines, m.rows(), m.tableHeight())
		m.syncSticky()
	case msg.Button == tea.MouseButtonWheelDown:
		m.cursor.Scroll(wheelLines, m.rows(), m.tableHeight())
		m.syncSticky()
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		switch {
		case zone.Get(m.prevZone()).InBounds(msg):
			m.engine.Prev()
		case zone.Get(m.nextZone()).InBounds(msg):
			m.engine.Next()
		case zone.Get(m.tableZone()).InBounds(msg):
			m.engine.DragStart(float64(msg.X))
		}
	case msg.Action == tea.MouseActionMotion:
		if m.engine.Dragging() {
			m.engine.DragMove(float64(msg.X))
		}
	case msg.Action == tea.MouseActionRelease:
		if m.engine.Dragging() {
			m.engine.DragEnd()
		}
	}
}

// syncSticky feeds the vertical offset to the sticky tracker and forwards
// its transitions to the mirror.
func (m *Model) syncSticky() {
	for _, ev := range m.surf.tracker.Update(m.cursor.Offset()) {
		m.engine.StickyChanged(ev)
	}
}

// flush returns the commands owed after an update: the next animation
// frame if one is pending and a WindowChangedMsg if the observer fired.
func (m Model) flush() tea.Cmd {
	var cmds []tea.Cmd
	if m.surf.anim.Active() && !m.surf.ticking {
		m.surf.ticking = true
		cmds = append(cmds, m.surf.anim.Tick())
	}
	if m.surf.changed {
		m.surf.changed = false
		changed := WindowChangedMsg{
			Enabled:  m.engine.Enabled(),
			Position: m.surf.position,
			Visible:  m.surf.visible,
			Buttons:  m.surf.buttons,
		}
		cmds = append(cmds, func() tea.Msg { return changed })
	}
	return tea.Batch(cmds...)
}
