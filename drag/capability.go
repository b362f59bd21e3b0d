package drag

// Options is the structured form of a row drag configuration.
type Options[T any] struct {
	// Enabled turns drag wiring on.
	Enabled bool

	// CanDrag reports whether a given row may be dragged. Nil permits every row.
	CanDrag func(record T, index int) bool

	// HandleKey names the marker carried by handle elements. When set, a row
	// can only be dragged from inside one of its handles.
	HandleKey string
}

type configKind int

const (
	kindAbsent configKind = iota
	kindBool
	kindOptions
)

// Config is a row drag configuration: absent, a bare boolean, or Options.
// The zero value is absent and disables dragging.
type Config[T any] struct {
	kind    configKind
	enabled bool
	opts    Options[T]
}

// Bool is the boolean shorthand for Options{Enabled: v}.
func Bool[T any](v bool) Config[T] {
	return Config[T]{kind: kindBool, enabled: v}
}

// With wraps structured options.
func With[T any](opts Options[T]) Config[T] {
	return Config[T]{kind: kindOptions, enabled: opts.Enabled, opts: opts}
}

// Capability is a Config resolved once into the shape the rest of the
// package works with.
type Capability[T any] struct {
	enabled   bool
	canDrag   func(record T, index int) bool
	handleKey string
}

// Resolve normalizes a configuration.
func Resolve[T any](cfg Config[T]) Capability[T] {
	switch cfg.kind {
	case kindBool:
		return Capability[T]{enabled: cfg.enabled}
	case kindOptions:
		return Capability[T]{
			enabled:   cfg.opts.Enabled,
			canDrag:   cfg.opts.CanDrag,
			handleKey: cfg.opts.HandleKey,
		}
	default:
		return Capability[T]{}
	}
}

// IsEnabled reports whether any drag wiring should be attached.
func (c Capability[T]) IsEnabled() bool {
	return c.enabled
}

// CanDragRow reports whether the row at index may start a drag.
func (c Capability[T]) CanDragRow(record T, index int) bool {
	if !c.enabled {
		return false
	}
	if c.canDrag == nil {
		return true
	}
	return c.canDrag(record, index)
}

// UsesHandle reports whether drags must start from a handle element.
func (c Capability[T]) UsesHandle() bool {
	return c.handleKey != ""
}

// HandleKey returns the handle marker, or "" in whole-row mode.
func (c Capability[T]) HandleKey() string {
	return c.handleKey
}
