package drag

import "sort"

// Marker is a visual state applied to a row. Markers combine as bit flags.
type Marker uint8

const (
	MarkerDraggable Marker = 1 << iota
	MarkerDragging
	MarkerDropBefore
	MarkerDropAfter
)

// transient markers only live for the duration of a drag.
const transient = MarkerDragging | MarkerDropBefore | MarkerDropAfter

// Names styling layers can key off.
const (
	ClassDraggable  = "rowdrag-draggable"
	ClassDragging   = "rowdrag-dragging"
	ClassDropBefore = "rowdrag-drop-before"
	ClassDropAfter  = "rowdrag-drop-after"
	ClassHandle     = "rowdrag-handle"
)

// String returns the class names of the set markers, space separated.
func (m Marker) String() string {
	var s string
	add := func(flag Marker, name string) {
		if m&flag == 0 {
			return
		}
		if s != "" {
			s += " "
		}
		s += name
	}
	add(MarkerDraggable, ClassDraggable)
	add(MarkerDragging, ClassDragging)
	add(MarkerDropBefore, ClassDropBefore)
	add(MarkerDropAfter, ClassDropAfter)
	return s
}

// Registry holds the markers and native draggable attribute of every row of
// one table, keyed by row index. The view layer renders from it.
type Registry struct {
	markers   map[int]Marker
	draggable map[int]bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		markers:   make(map[int]Marker),
		draggable: make(map[int]bool),
	}
}

// Set adds markers to a row.
func (r *Registry) Set(index int, m Marker) {
	r.markers[index] |= m
}

// Clear removes markers from a row.
func (r *Registry) Clear(index int, m Marker) {
	left := r.markers[index] &^ m
	if left == 0 {
		delete(r.markers, index)
		return
	}
	r.markers[index] = left
}

// Markers returns the markers set on a row.
func (r *Registry) Markers(index int) Marker {
	return r.markers[index]
}

// Has reports whether all of m are set on a row.
func (r *Registry) Has(index int, m Marker) bool {
	return r.markers[index]&m == m
}

// ClearIndicators removes every transient marker from every row.
func (r *Registry) ClearIndicators() {
	for index := range r.markers {
		r.Clear(index, transient)
	}
}

// Indicators returns the indices of rows carrying a transient marker, sorted.
func (r *Registry) Indicators() []int {
	var out []int
	for index, m := range r.markers {
		if m&transient != 0 {
			out = append(out, index)
		}
	}
	sort.Ints(out)
	return out
}

// SetDraggable sets the native draggable attribute of a row.
func (r *Registry) SetDraggable(index int, v bool) {
	r.draggable[index] = v
}

// Draggable reports the native draggable attribute of a row.
func (r *Registry) Draggable(index int) bool {
	return r.draggable[index]
}

// initDraggable sets the attribute only for rows not seen before, so that a
// row armed by a pointer-down keeps its state across re-renders.
func (r *Registry) initDraggable(index int, v bool) {
	if _, ok := r.draggable[index]; !ok {
		r.draggable[index] = v
	}
}

func (r *Registry) unsetDraggable(index int) {
	delete(r.draggable, index)
}

// Forget drops everything known about rows at or beyond n, used when the
// collection shrinks.
func (r *Registry) Forget(n int) {
	for index := range r.markers {
		if index >= n {
			delete(r.markers, index)
		}
	}
	for index := range r.draggable {
		if index >= n {
			delete(r.draggable, index)
		}
	}
}
