package drag

// Rect is the vertical extent of a rendered row.
type Rect struct {
	Top    int
	Height int
}

// Side is where, relative to the hovered row, the insertion point lies.
type Side int

const (
	Before Side = iota
	After
)

// Boundary is a resolved drop target.
type Boundary struct {
	Side Side
	// Index is the insertion boundary in the collection before the move.
	Index int
	// Marked is the row carrying the indicator, Marker the indicator itself.
	Marked int
	Marker Marker
}

// ResolveDropTarget works out which boundary of the row at index the pointer
// targets, records it in the session and moves the indicator in the registry.
// Repeated calls with the same geometry and pointer leave the same state.
func ResolveDropTarget(s *Session, reg *Registry, bounds Rect, pointerY, index int) Boundary {
	reg.Clear(index, MarkerDropBefore|MarkerDropAfter)
	if index > 0 {
		reg.Clear(index-1, MarkerDropBefore|MarkerDropAfter)
	}

	var b Boundary
	// pointerY < Top + Height/2, kept in integers.
	if 2*(pointerY-bounds.Top) < bounds.Height {
		b = Boundary{Side: Before, Index: index}
		if index > 0 {
			// Drawn as the previous row's bottom edge.
			b.Marked, b.Marker = index-1, MarkerDropAfter
		} else {
			b.Marked, b.Marker = index, MarkerDropBefore
		}
	} else {
		b = Boundary{Side: After, Index: index + 1, Marked: index, Marker: MarkerDropAfter}
	}

	reg.Set(b.Marked, b.Marker)
	s.SetTarget(b.Index)
	return b
}
