package drag

import (
	"io"
	"log"
)

// Source returns the table's current collection, in display order.
type Source[T any] func() []T

// Option configures a Controller.
type Option func(*settings)

type settings struct {
	logger *log.Logger
}

// WithLogger logs rejected drags and committed moves to l.
func WithLogger(l *log.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// Controller owns the drag state of one table: its session, its indicator
// registry and the completion emitter. It must only be used from the host's
// event loop.
type Controller[T any] struct {
	capability Capability[T]
	session    *Session
	registry   *Registry
	source     Source[T]
	emitter    Emitter[T]
	logger     *log.Logger
}

// NewController creates the controller of a table whose rows are read from
// source when a drop is committed.
func NewController[T any](cfg Config[T], source Source[T], opts ...Option) *Controller[T] {
	s := settings{logger: log.New(io.Discard, "", 0)}
	for _, opt := range opts {
		opt(&s)
	}
	return &Controller[T]{
		capability: Resolve(cfg),
		session:    NewSession(),
		registry:   NewRegistry(),
		source:     source,
		logger:     s.logger,
	}
}

// OnRowDragEnd subscribes to completion events.
func (c *Controller[T]) OnRowDragEnd(l Listener[T]) {
	c.emitter.Subscribe(l)
}

// Capability returns the resolved configuration.
func (c *Controller[T]) Capability() Capability[T] {
	return c.capability
}

// Session returns the drag session.
func (c *Controller[T]) Session() *Session {
	return c.session
}

// Registry returns the indicator registry.
func (c *Controller[T]) Registry() *Registry {
	return c.registry
}
