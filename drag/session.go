package drag

import "fmt"

// State is the phase of a drag session.
type State int

const (
	StateIdle State = iota
	StateDragging
)

// String returns the string representation of a State.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Session tracks the single in-progress drag of one table.
// The source index is only meaningful while the session is active. The target
// boundary is only ever set from a row other than the source.
type Session struct {
	active         bool
	sourceIndex    int
	targetBoundary int
	hasTarget      bool
}

// NewSession creates an idle session.
func NewSession() *Session {
	return &Session{}
}

// Start begins a drag from the row at index.
func (s *Session) Start(index int) error {
	if s.active {
		return fmt.Errorf("%w: row %d is being dragged", ErrDragInProgress, s.sourceIndex)
	}
	s.active = true
	s.sourceIndex = index
	s.targetBoundary = 0
	s.hasTarget = false
	return nil
}

// SetTarget records the boundary the pointer currently points at.
func (s *Session) SetTarget(boundary int) {
	if !s.active {
		return
	}
	s.targetBoundary = boundary
	s.hasTarget = true
}

// Reset returns the session to idle.
func (s *Session) Reset() {
	*s = Session{}
}

// Active reports whether a drag is in progress.
func (s *Session) Active() bool {
	return s.active
}

// State returns the current phase.
func (s *Session) State() State {
	if s.active {
		return StateDragging
	}
	return StateIdle
}

// Source returns the dragged row index, ok is false when idle.
func (s *Session) Source() (index int, ok bool) {
	return s.sourceIndex, s.active
}

// Target returns the targeted boundary, ok is false when none is targeted.
func (s *Session) Target() (boundary int, ok bool) {
	return s.targetBoundary, s.active && s.hasTarget
}
