package drag

// EventType names a pointer or drag event delivered to a row.
type EventType string

const (
	PointerDown EventType = "pointerdown"
	DragStart   EventType = "dragstart"
	DragOver    EventType = "dragover"
	DragLeave   EventType = "dragleave"
	DragEnd     EventType = "dragend"
	Drop        EventType = "drop"
)

// dataTransferMarker is written on drag start. Some hosts refuse to start a
// drag with an empty payload; it is never read back.
const dataTransferMarker = "rowdrag"

// Target is the element a pointer-down landed on.
type Target interface {
	// Within reports whether the element, or one of its ancestors inside the
	// row, carries marker.
	Within(marker string) bool
}

// DataTransfer is the payload carrier of a native drag.
type DataTransfer interface {
	SetData(format, data string)
}

// Event is a pointer or drag event on a row, as delivered by the host.
type Event struct {
	Type EventType
	// PointerY is the vertical pointer coordinate, in the same space as Bounds.
	PointerY int
	// Bounds is the extent of the row receiving the event.
	Bounds       Rect
	Target       Target
	DataTransfer DataTransfer
	// Original is the host's own event value, passed through to listeners.
	Original any

	defaultPrevented bool
}

// PreventDefault asks the host to skip its default handling of the event.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Handler handles one event on one row.
type Handler func(*Event)

// Handlers maps event types to the handler attached to a row.
type Handlers map[EventType]Handler

// Dispatch invokes the handler for e.Type, if any. It reports whether one ran.
func (h Handlers) Dispatch(e *Event) bool {
	fn, ok := h[e.Type]
	if !ok || fn == nil {
		return false
	}
	fn(e)
	return true
}

// RowHandlerProvider returns the handlers for a row.
type RowHandlerProvider[T any] func(record T, index int) Handlers

// Wrap augments host with drag handling. Host handlers always run first.
// Rows that may not be dragged get the host's handlers back untouched.
func (c *Controller[T]) Wrap(host RowHandlerProvider[T]) RowHandlerProvider[T] {
	return func(record T, index int) Handlers {
		var existing Handlers
		if host != nil {
			existing = host(record, index)
		}
		if !c.capability.CanDragRow(record, index) {
			c.registry.Clear(index, MarkerDraggable)
			c.registry.unsetDraggable(index)
			return existing
		}

		c.registry.Set(index, MarkerDraggable)
		c.registry.initDraggable(index, !c.capability.UsesHandle())

		own := Handlers{
			DragStart: func(e *Event) { c.dragStart(e, index) },
			DragOver:  func(e *Event) { c.dragOver(e, index) },
			DragLeave: func(e *Event) { c.dragLeave(index) },
			DragEnd:   func(e *Event) { c.finish(index) },
			Drop:      func(e *Event) { c.drop(e, index) },
		}
		if c.capability.UsesHandle() {
			own[PointerDown] = func(e *Event) { c.pointerDown(e, index) }
		}

		merged := make(Handlers, len(existing)+len(own))
		for t, fn := range existing {
			merged[t] = fn
		}
		for t, fn := range own {
			merged[t] = invokeIfPresent(existing[t], fn)
		}
		return merged
	}
}

// Handlers returns the drag handlers of a row with no host handlers to wrap.
func (c *Controller[T]) Handlers(record T, index int) Handlers {
	return c.Wrap(nil)(record, index)
}

func invokeIfPresent(first, then Handler) Handler {
	if first == nil {
		return then
	}
	return func(e *Event) {
		first(e)
		then(e)
	}
}

func (c *Controller[T]) pointerDown(e *Event, index int) {
	armed := e.Target != nil && e.Target.Within(c.capability.HandleKey())
	c.registry.SetDraggable(index, armed)
}

func (c *Controller[T]) dragStart(e *Event, index int) {
	if err := c.session.Start(index); err != nil {
		c.logger.Printf("drag start on row %d rejected: %v", index, err)
		return
	}
	c.registry.Set(index, MarkerDragging)
	if e.DataTransfer != nil {
		e.DataTransfer.SetData("text/plain", dataTransferMarker)
	}
}

// dragOver leaves the session untouched over the source row, and does not
// prevent the default there, so the host never accepts a drop on it.
func (c *Controller[T]) dragOver(e *Event, index int) {
	source, ok := c.session.Source()
	if !ok || index == source {
		return
	}
	e.PreventDefault()
	ResolveDropTarget(c.session, c.registry, e.Bounds, e.PointerY, index)
}

func (c *Controller[T]) dragLeave(index int) {
	c.registry.Clear(index, MarkerDropBefore|MarkerDropAfter)
	if index > 0 {
		c.registry.Clear(index-1, MarkerDropBefore|MarkerDropAfter)
	}
}

func (c *Controller[T]) drop(e *Event, index int) {
	e.PreventDefault()
	defer c.finish(index)

	source, active := c.session.Source()
	boundary, targeted := c.session.Target()
	if !active || !targeted {
		return
	}
	to := TargetIndex(source, boundary)
	if to == source {
		return
	}

	var rows []T
	if c.source != nil {
		rows = c.source()
	}
	data, err := Reorder(rows, source, to)
	if err != nil {
		c.logger.Printf("drop of row %d discarded: %v", source, err)
		return
	}
	c.logger.Printf("%s: row %d moved to %d", EventRowDragEnd, source, to)
	c.emitter.Emit(RowDragEnd[T]{
		OriginalEvent: e.Original,
		DragIndex:     source,
		DropIndex:     to,
		Data:          data,
	})
}

// finish ends the drag cycle, successful or not.
func (c *Controller[T]) finish(index int) {
	source, active := c.session.Source()
	c.session.Reset()

	def := !c.capability.UsesHandle()
	c.registry.SetDraggable(index, def)
	if active {
		c.registry.SetDraggable(source, def)
	}
	c.registry.ClearIndicators()
}
