// Package table is a bubbletea table whose rows can be reordered by dragging
// them with the mouse.
package table

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	btable "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rileylov/rowdrag/drag"
)

// Row holds one rendered cell per column.
type Row = btable.Row

// Column is a column title and width.
type Column = btable.Column

// RowsReorderedMsg reports a committed drag. By the time it is delivered the
// table already shows Data.
type RowsReorderedMsg[T any] struct {
	drag.RowDragEnd[T]
}

// Model is a table of T rendered through a row function.
type Model[T any] struct {
	id       string
	columns  []btable.Column
	rows     []T
	render   func(T) btable.Row
	ctrl     *drag.Controller[T]
	handlers drag.RowHandlerProvider[T]
	zones    *zone.Manager
	locator  Locator
	pointer  pointer
	dragOpts []drag.Option
	done     []drag.RowDragEnd[T]

	KeyMap KeyMap
	Styles Styles
}

// Option configures a Model.
type Option[T any] func(*Model[T])

// WithColumns sets the columns.
func WithColumns[T any](cols []btable.Column) Option[T] {
	return func(m *Model[T]) {
		m.columns = cols
	}
}

// WithRows sets the initial rows.
func WithRows[T any](rows []T) Option[T] {
	return func(m *Model[T]) {
		m.rows = rows
	}
}

// WithRowHandlers sets the host's own per-row handlers. They run before the
// drag handlers.
func WithRowHandlers[T any](p drag.RowHandlerProvider[T]) Option[T] {
	return func(m *Model[T]) {
		m.handlers = p
	}
}

// WithZoneManager marks and locates zones with zm instead of the global
// bubblezone manager.
func WithZoneManager[T any](zm *zone.Manager) Option[T] {
	return func(m *Model[T]) {
		m.zones = zm
	}
}

// WithLocator overrides how rendered rows are located.
func WithLocator[T any](l Locator) Option[T] {
	return func(m *Model[T]) {
		m.locator = l
	}
}

// WithDragOptions passes options to the drag controller.
func WithDragOptions[T any](opts ...drag.Option) Option[T] {
	return func(m *Model[T]) {
		m.dragOpts = append(m.dragOpts, opts...)
	}
}

// New creates a table. render turns a record into one cell per column.
func New[T any](cfg drag.Config[T], render func(T) btable.Row, opts ...Option[T]) *Model[T] {
	m := &Model[T]{
		render:  render,
		KeyMap:  DefaultKeyMap(),
		Styles:  DefaultStyles(),
		pointer: newPointer(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.zones != nil {
		m.id = m.zones.NewPrefix()
	} else {
		m.id = zone.NewPrefix()
	}
	if m.locator == nil {
		m.locator = ZoneLocator(m.zones)
	}

	m.ctrl = drag.NewController(cfg, m.Rows, m.dragOpts...)
	m.ctrl.OnRowDragEnd(func(ev drag.RowDragEnd[T]) {
		m.rows = ev.Data
		m.done = append(m.done, ev)
	})
	m.sync()
	return m
}

// Rows returns the rows in display order.
func (m *Model[T]) Rows() []T {
	return m.rows
}

// SetRows replaces the rows. Any drag in progress is abandoned.
func (m *Model[T]) SetRows(rows []T) {
	m.cancel()
	m.rows = rows
	m.ctrl.Registry().Forget(len(rows))
	m.sync()
}

// Columns returns the columns.
func (m *Model[T]) Columns() []btable.Column {
	return m.columns
}

// Controller returns the drag controller backing the table.
func (m *Model[T]) Controller() *drag.Controller[T] {
	return m.ctrl
}

// Dragging reports whether a row is being dragged.
func (m *Model[T]) Dragging() bool {
	return m.ctrl.Session().Active()
}

func (m *Model[T]) Init() tea.Cmd {
	return nil
}

func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.KeyMsg:
		if m.pointer.state != pointerIdle && key.Matches(msg, m.KeyMap.Cancel) {
			m.cancel()
		}
	}
	return m, m.flush()
}

// sync attaches handlers to every row so the registry reflects the current
// rows before they are rendered.
func (m *Model[T]) sync() {
	for i, rec := range m.rows {
		m.rowHandlers(rec, i)
	}
}

func (m *Model[T]) rowHandlers(rec T, index int) drag.Handlers {
	return m.ctrl.Wrap(m.handlers)(rec, index)
}

// flush turns completed drags into messages for the parent model.
func (m *Model[T]) flush() tea.Cmd {
	if len(m.done) == 0 {
		return nil
	}
	m.sync()
	cmds := make([]tea.Cmd, 0, len(m.done))
	for _, ev := range m.done {
		msg := RowsReorderedMsg[T]{RowDragEnd: ev}
		cmds = append(cmds, func() tea.Msg { return msg })
	}
	m.done = nil
	return tea.Batch(cmds...)
}

func (m *Model[T]) tableID() string {
	return m.id + "table"
}

func (m *Model[T]) rowID(index int) string {
	return m.id + "row_" + strconv.Itoa(index)
}

func (m *Model[T]) handleID(index int) string {
	return m.id + "handle_" + strconv.Itoa(index)
}

func (m *Model[T]) mark(id, v string) string {
	if m.zones != nil {
		return m.zones.Mark(id, v)
	}
	return zone.Mark(id, v)
}
