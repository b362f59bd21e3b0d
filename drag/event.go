package drag

// EventRowDragEnd names the completion event.
const EventRowDragEnd = "rowDragEnd"

// RowDragEnd is emitted once a drop has moved a row.
type RowDragEnd[T any] struct {
	// OriginalEvent is the host event that caused the drop.
	OriginalEvent any
	DragIndex     int
	// DropIndex is where the dragged row sits in Data.
	DropIndex int
	Data      []T
}

// Listener receives completion events.
type Listener[T any] func(RowDragEnd[T])

// Emitter fans completion events out to its listeners in subscription order.
type Emitter[T any] struct {
	listeners []Listener[T]
}

// Subscribe adds a listener.
func (e *Emitter[T]) Subscribe(l Listener[T]) {
	if l == nil {
		return
	}
	e.listeners = append(e.listeners, l)
}

// Emit delivers ev to every listener.
func (e *Emitter[T]) Emit(ev RowDragEnd[T]) {
	for _, l := range e.listeners {
		l(ev)
	}
}
