package table

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileylov/rowdrag/drag"
)

// pointerState is how far a mouse gesture has progressed.
type pointerState int

const (
	pointerIdle pointerState = iota
	pointerPressed
	pointerDragging
)

// pointer tracks the mouse gesture the terminal reports as a stream of
// press, motion and release events.
type pointer struct {
	state    pointerState
	pressed  int  // row the button went down on
	hovered  int  // row last sent a dragover, -1 for none
	accepted bool // the hovered row prevented its last dragover
}

func newPointer() pointer {
	return pointer{hovered: -1}
}

func (p *pointer) press(index int) {
	p.state = pointerPressed
	p.pressed = index
	p.hovered = -1
	p.accepted = false
}

func (p *pointer) reset() {
	*p = newPointer()
}

// handleMouse translates terminal mouse events into row events:
// press is a pointerdown, the first motion with the button held starts the
// drag, later motion hovers, and release drops on the hovered row if its last
// dragover was accepted.
func (m *Model[T]) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if m.pointer.state == pointerDragging {
			m.cancel()
		}
		index, ok := m.rowAt(msg)
		if !ok {
			m.pointer.reset()
			return
		}
		m.dispatch(drag.PointerDown, index, msg)
		m.pointer.press(index)

	case tea.MouseActionMotion:
		switch m.pointer.state {
		case pointerPressed:
			if msg.Button != tea.MouseButtonLeft {
				m.pointer.reset()
				return
			}
			if !m.startDrag(msg) {
				return
			}
			m.hover(msg)
		case pointerDragging:
			m.hover(msg)
		}

	case tea.MouseActionRelease:
		if m.pointer.state != pointerDragging {
			m.pointer.reset()
			return
		}
		source := m.pointer.pressed
		m.hover(msg)
		if m.pointer.hovered >= 0 && m.pointer.accepted {
			m.dispatch(drag.Drop, m.pointer.hovered, msg)
		}
		if source < len(m.rows) {
			m.dispatch(drag.DragEnd, source, msg)
		}
		m.pointer.reset()
	}
}

// startDrag begins a native drag from the pressed row when its draggable
// attribute allows it.
func (m *Model[T]) startDrag(msg tea.MouseMsg) bool {
	index := m.pointer.pressed
	if index >= len(m.rows) || !m.ctrl.Registry().Draggable(index) {
		m.pointer.reset()
		return false
	}
	m.dispatch(drag.DragStart, index, msg)
	if !m.ctrl.Session().Active() {
		m.pointer.reset()
		return false
	}
	m.pointer.state = pointerDragging
	return true
}

func (m *Model[T]) hover(msg tea.MouseMsg) {
	index, ok := m.rowAt(msg)
	if m.pointer.hovered >= 0 && (!ok || index != m.pointer.hovered) {
		m.dispatch(drag.DragLeave, m.pointer.hovered, msg)
		m.pointer.hovered = -1
		m.pointer.accepted = false
	}
	if !ok {
		return
	}
	e := m.dispatch(drag.DragOver, index, msg)
	m.pointer.hovered = index
	m.pointer.accepted = e != nil && e.DefaultPrevented()
}

// cancel aborts a gesture the way a native drag aborted outside any row does.
func (m *Model[T]) cancel() {
	if m.pointer.state == pointerDragging {
		msg := tea.MouseMsg{Action: tea.MouseActionRelease}
		if m.pointer.hovered >= 0 {
			m.dispatch(drag.DragLeave, m.pointer.hovered, msg)
		}
		if m.pointer.pressed < len(m.rows) {
			m.dispatch(drag.DragEnd, m.pointer.pressed, msg)
		}
	}
	m.pointer.reset()
}

func (m *Model[T]) rowAt(msg tea.MouseMsg) (int, bool) {
	if b, ok := m.locator.Locate(m.tableID()); ok && !b.Contains(msg.X, msg.Y) {
		return 0, false
	}
	for i := range m.rows {
		b, ok := m.locator.Locate(m.rowID(i))
		if ok && b.Contains(msg.X, msg.Y) {
			return i, true
		}
	}
	return 0, false
}

// dispatch delivers an event to a row and returns it, or nil when the row
// no longer exists.
func (m *Model[T]) dispatch(typ drag.EventType, index int, msg tea.MouseMsg) *drag.Event {
	if index < 0 || index >= len(m.rows) {
		return nil
	}
	bounds, _ := m.locator.Locate(m.rowID(index))
	e := &drag.Event{
		Type:     typ,
		PointerY: msg.Y,
		Bounds:   bounds.Rect(),
		Target:   handleTarget{locator: m.locator, handle: m.handleID(index), key: m.ctrl.Capability().HandleKey(), x: msg.X, y: msg.Y},
		Original: msg,
	}
	m.rowHandlers(m.rows[index], index).Dispatch(e)
	return e
}

// handleTarget is the cell under a pointer-down. Handle cells carry the
// configured handle marker.
type handleTarget struct {
	locator Locator
	handle  string
	key     string
	x, y    int
}

func (t handleTarget) Within(marker string) bool {
	if marker == "" || marker != t.key {
		return false
	}
	b, ok := t.locator.Locate(t.handle)
	return ok && b.Contains(t.x, t.y)
}
