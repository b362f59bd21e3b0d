package table

import (
	"strings"
	"testing"
	"time"

	btable "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"

	"github.com/rileylov/rowdrag/drag"
)

// gridLocator lays rows out the way View does: a header line, the top edge
// line, then two lines per row. Handles occupy the first column of a row's
// content line.
type gridLocator struct {
	m *Model[string]
}

func (g gridLocator) Locate(id string) (Bounds, bool) {
	width := g.m.Width()
	if id == g.m.tableID() {
		return Bounds{EndX: width - 1, EndY: 1 + 2*len(g.m.rows)}, true
	}
	for i := range g.m.rows {
		top := 2 + 2*i
		switch id {
		case g.m.rowID(i):
			return Bounds{StartY: top, EndX: width - 1, EndY: top + 1}, true
		case g.m.handleID(i):
			return Bounds{StartY: top, EndY: top}, true
		}
	}
	return Bounds{}, false
}

func newTestTable(t *testing.T, cfg drag.Config[string], rows ...string) *Model[string] {
	t.Helper()
	zm := zone.New()
	t.Cleanup(zm.Close)

	var m *Model[string]
	m = New(cfg, func(s string) btable.Row { return btable.Row{s} },
		WithColumns[string]([]btable.Column{{Title: "Name", Width: 10}}),
		WithRows(rows),
		WithZoneManager[string](zm),
		WithLocator[string](locatorFunc(func(id string) (Bounds, bool) { return gridLocator{m}.Locate(id) })),
	)
	return m
}

type locatorFunc func(id string) (Bounds, bool)

func (f locatorFunc) Locate(id string) (Bounds, bool) { return f(id) }

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

// send delivers msgs in order and collects the messages produced by the
// returned commands.
func send(m *Model[string], msgs ...tea.Msg) []tea.Msg {
	var out []tea.Msg
	for _, msg := range msgs {
		_, cmd := m.Update(msg)
		out = append(out, run(cmd)...)
	}
	return out
}

func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, run(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func rowY(index int, lower bool) int {
	if lower {
		return 3 + 2*index
	}
	return 2 + 2*index
}

func TestDragRowDown(t *testing.T) {
	m := newTestTable(t, drag.Bool[string](true), "A", "B", "C", "D")

	msgs := send(m,
		mouse(tea.MouseActionPress, 4, rowY(0, false)),
		mouse(tea.MouseActionMotion, 4, rowY(0, false)),
		mouse(tea.MouseActionMotion, 4, rowY(1, true)),
		mouse(tea.MouseActionMotion, 4, rowY(2, false)),
	)
	require.Empty(t, msgs)
	require.True(t, m.Dragging())
	require.True(t, m.Controller().Registry().Has(1, drag.MarkerDropAfter))

	msgs = send(m, tea.MouseMsg{X: 4, Y: rowY(2, false), Action: tea.MouseActionRelease})
	require.Len(t, msgs, 1)
	reordered, ok := msgs[0].(RowsReorderedMsg[string])
	require.True(t, ok)
	require.Equal(t, 0, reordered.DragIndex)
	require.Equal(t, 1, reordered.DropIndex)
	require.Equal(t, []string{"B", "A", "C", "D"}, reordered.Data)
	require.Equal(t, []string{"B", "A", "C", "D"}, m.Rows())

	require.False(t, m.Dragging())
	require.Empty(t, m.Controller().Registry().Indicators())
}

func TestDragRowUp(t *testing.T) {
	m := newTestTable(t, drag.Bool[string](true), "A", "B", "C", "D")

	msgs := send(m,
		mouse(tea.MouseActionPress, 4, rowY(3, false)),
		mouse(tea.MouseActionMotion, 4, rowY(2, true)),
		mouse(tea.MouseActionMotion, 4, rowY(0, true)),
		tea.MouseMsg{X: 4, Y: rowY(0, true), Action: tea.MouseActionRelease},
	)
	require.Len(t, msgs, 1)
	require.Equal(t, []string{"A", "D", "B", "C"}, m.Rows())
}

func TestReleaseOutsideTable(t *testing.T) {
	m := newTestTable(t, drag.Bool[string](true), "A", "B", "C")

	msgs := send(m,
		mouse(tea.MouseActionPress, 4, rowY(0, false)),
		mouse(tea.MouseActionMotion, 4, rowY(2, true)),
		mouse(tea.MouseActionMotion, 4, 40),
		tea.MouseMsg{X: 4, Y: 40, Action: tea.MouseActionRelease},
	)
	require.Empty(t, msgs)
	require.Equal(t, []string{"A", "B", "C"}, m.Rows())
	require.False(t, m.Dragging())
	require.Empty(t, m.Controller().Registry().Indicators())
}

func TestReleaseOnSourceRowDoesNotDrop(t *testing.T) {
	m := newTestTable(t, drag.Bool[string](true), "A", "B", "C")

	msgs := send(m,
		mouse(tea.MouseActionPress, 4, rowY(0, false)),
		mouse(tea.MouseActionMotion, 4, rowY(2, true)),
		mouse(tea.MouseActionMotion, 4, rowY(0, true)),
	)
	require.Empty(t, msgs)
	boundary, ok := m.Controller().Session().Target()
	require.True(t, ok, "hovering the source keeps the last target")
	require.Equal(t, 3, boundary)

	msgs = send(m, tea.MouseMsg{X: 4, Y: rowY(0, true), Action: tea.MouseActionRelease})
	require.Empty(t, msgs)
	require.Equal(t, []string{"A", "B", "C"}, m.Rows())
	require.False(t, m.Dragging())
	require.Empty(t, m.Controller().Registry().Indicators())
}

func TestReleaseWithoutFinalMotionDrops(t *testing.T) {
	m := newTestTable(t, drag.Bool[string](true), "A", "B", "C")

	msgs := send(m,
		mouse(tea.MouseActionPress, 4, rowY(0, false)),
		mouse(tea.MouseActionMotion, 4, rowY(1, false)),
		tea.MouseMsg{X: 4, Y: rowY(2, true), Action: tea.MouseActionRelease},
	)
	require.Len(t, msgs, 1)
	require.Equal(t, []string{"B", "C", "A"}, m.Rows())
}

func TestEscapeCancelsDrag(t *testing.T) {
	m := newTestTable(t, drag.Bool[string](true), "A", "B", "C")

	send(m,
		mouse(tea.MouseActionPress, 4, rowY(0, false)),
		mouse(tea.MouseActionMotion, 4, rowY(2, true)),
	)
	require.True(t, m.Dragging())

	msgs := send(m,
		tea.KeyMsg{Type: tea.KeyEsc},
		tea.MouseMsg{X: 4, Y: rowY(2, true), Action: tea.MouseActionRelease},
	)
	require.Empty(t, msgs)
	require.False(t, m.Dragging())
	require.Equal(t, []string{"A", "B", "C"}, m.Rows())
	require.Empty(t, m.Controller().Registry().Indicators())
}

func TestClickWithoutMotionDoesNotDrag(t *testing.T) {
	m := newTestTable(t, drag.Bool[string](true), "A", "B")

	msgs := send(m,
		mouse(tea.MouseActionPress, 4, rowY(0, false)),
		tea.MouseMsg{X: 4, Y: rowY(1, true), Action: tea.MouseActionRelease},
	)
	require.Empty(t, msgs)
	require.False(t, m.Dragging())
}

func TestHandleMode(t *testing.T) {
	m := newTestTable(t, drag.With(drag.Options[string]{Enabled: true, HandleKey: drag.ClassHandle}), "A", "B", "C")

	send(m,
		mouse(tea.MouseActionPress, 5, rowY(0, false)),
		mouse(tea.MouseActionMotion, 5, rowY(2, true)),
	)
	require.False(t, m.Dragging(), "a press outside the handle must not drag")
	send(m, tea.MouseMsg{X: 5, Y: rowY(2, true), Action: tea.MouseActionRelease})

	msgs := send(m,
		mouse(tea.MouseActionPress, 0, rowY(0, false)),
		mouse(tea.MouseActionMotion, 0, rowY(2, true)),
		tea.MouseMsg{X: 0, Y: rowY(2, true), Action: tea.MouseActionRelease},
	)
	require.Len(t, msgs, 1)
	require.Equal(t, []string{"B", "C", "A"}, m.Rows())
	require.False(t, m.Controller().Registry().Draggable(0))
	require.False(t, m.Controller().Registry().Draggable(2))
}

func TestLockedRowCannotDrag(t *testing.T) {
	m := newTestTable(t, drag.With(drag.Options[string]{
		Enabled: true,
		CanDrag: func(rec string, _ int) bool { return rec != "A" },
	}), "A", "B", "C")

	msgs := send(m,
		mouse(tea.MouseActionPress, 4, rowY(0, false)),
		mouse(tea.MouseActionMotion, 4, rowY(2, true)),
		tea.MouseMsg{X: 4, Y: rowY(2, true), Action: tea.MouseActionRelease},
	)
	require.Empty(t, msgs)
	require.Equal(t, []string{"A", "B", "C"}, m.Rows())

	send(m,
		mouse(tea.MouseActionPress, 4, rowY(2, false)),
		mouse(tea.MouseActionMotion, 4, rowY(0, true)),
	)
	_, ok := m.Controller().Session().Target()
	require.False(t, ok, "locked rows are not drop targets")

	msgs = send(m,
		mouse(tea.MouseActionMotion, 4, rowY(1, false)),
		tea.MouseMsg{X: 4, Y: rowY(1, false), Action: tea.MouseActionRelease},
	)
	require.Len(t, msgs, 1)
	require.Equal(t, []string{"A", "C", "B"}, m.Rows())
}

func TestHostHandlersSeePointerDown(t *testing.T) {
	var pressed []int
	zm := zone.New()
	t.Cleanup(zm.Close)

	var m *Model[string]
	m = New(drag.Bool[string](true), func(s string) btable.Row { return btable.Row{s} },
		WithColumns[string]([]btable.Column{{Title: "Name", Width: 10}}),
		WithRows([]string{"A", "B"}),
		WithZoneManager[string](zm),
		WithLocator[string](locatorFunc(func(id string) (Bounds, bool) { return gridLocator{m}.Locate(id) })),
		WithRowHandlers(func(rec string, index int) drag.Handlers {
			return drag.Handlers{drag.PointerDown: func(*drag.Event) { pressed = append(pressed, index) }}
		}),
	)

	send(m, mouse(tea.MouseActionPress, 4, rowY(1, true)))
	require.Equal(t, []int{1}, pressed)
}

func TestSetRowsAbandonsDrag(t *testing.T) {
	m := newTestTable(t, drag.Bool[string](true), "A", "B", "C")

	send(m,
		mouse(tea.MouseActionPress, 4, rowY(0, false)),
		mouse(tea.MouseActionMotion, 4, rowY(2, true)),
	)
	m.SetRows([]string{"X"})
	require.False(t, m.Dragging())
	require.Empty(t, m.Controller().Registry().Indicators())

	msgs := send(m, tea.MouseMsg{X: 4, Y: rowY(0, true), Action: tea.MouseActionRelease})
	require.Empty(t, msgs)
}

func TestViewShowsIndicator(t *testing.T) {
	m := newTestTable(t, drag.Bool[string](true), "A", "B", "C")

	view := m.zones.Scan(m.View())
	require.NotContains(t, view, "─")
	require.Len(t, strings.Split(view, "\n"), 2+2*3)

	send(m,
		mouse(tea.MouseActionPress, 4, rowY(2, false)),
		mouse(tea.MouseActionMotion, 4, rowY(0, false)),
	)
	lines := strings.Split(m.zones.Scan(m.View()), "\n")
	require.Contains(t, lines[1], "─", "top edge of the first row")
	for _, l := range lines[2:] {
		require.NotContains(t, l, "─")
	}
}

func TestZoneLocator(t *testing.T) {
	zm := zone.New()
	t.Cleanup(zm.Close)

	m := New(drag.Bool[string](true), func(s string) btable.Row { return btable.Row{s} },
		WithColumns[string]([]btable.Column{{Title: "Name", Width: 10}}),
		WithRows([]string{"A", "B", "C"}),
		WithZoneManager[string](zm),
	)
	zm.Scan(m.View())

	loc := ZoneLocator(zm)
	require.Eventually(t, func() bool {
		_, ok := loc.Locate(m.rowID(2))
		return ok
	}, time.Second, 10*time.Millisecond)

	b, ok := loc.Locate(m.rowID(1))
	require.True(t, ok)
	require.Equal(t, 4, b.StartY)
	require.Equal(t, 5, b.EndY)
	require.Equal(t, drag.Rect{Top: 4, Height: 2}, b.Rect())
}
