package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/rileylov/rowdrag/drag"
)

const (
	handleGlyph = "⠿"
	gutterWidth = 2
)

// Width is the rendered width of a line of the table.
func (m *Model[T]) Width() int {
	w := gutterWidth
	for _, c := range m.columns {
		w += c.Width + m.Styles.Cell.GetHorizontalFrameSize()
	}
	return w
}

// View renders a header line, an indicator line for the top edge of the
// first row, then two lines per row: its cells and its bottom edge.
func (m *Model[T]) View() string {
	width := m.Width()
	reg := m.ctrl.Registry()

	lines := []string{m.headerView(), m.edge(width, reg.Has(0, drag.MarkerDropBefore))}
	for i, rec := range m.rows {
		row := lipgloss.JoinVertical(lipgloss.Left,
			m.rowView(rec, i, width),
			m.edge(width, reg.Has(i, drag.MarkerDropAfter)),
		)
		lines = append(lines, m.mark(m.rowID(i), row))
	}
	return m.mark(m.tableID(), lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m *Model[T]) headerView() string {
	cells := make([]string, 0, len(m.columns)+1)
	cells = append(cells, strings.Repeat(" ", gutterWidth))
	for _, c := range m.columns {
		cells = append(cells, m.cell(c.Title, c.Width))
	}
	return m.Styles.Header.Render(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
}

func (m *Model[T]) rowView(rec T, index int, width int) string {
	reg := m.ctrl.Registry()
	markers := reg.Markers(index)

	gutter := strings.Repeat(" ", gutterWidth)
	if markers&drag.MarkerDraggable != 0 && m.ctrl.Capability().UsesHandle() {
		gutter = m.mark(m.handleID(index), m.Styles.Handle.Render(handleGlyph)) + " "
	}

	values := m.render(rec)
	cells := make([]string, 0, len(m.columns)+1)
	cells = append(cells, gutter)
	for i, c := range m.columns {
		var v string
		if i < len(values) {
			v = values[i]
		}
		cells = append(cells, m.cell(v, c.Width))
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, cells...)

	style := m.Styles.Row
	switch {
	case markers&drag.MarkerDragging != 0:
		style = m.Styles.Dragging
	case markers&drag.MarkerDraggable == 0 && m.ctrl.Capability().IsEnabled():
		style = m.Styles.Locked
	}
	return style.Width(width).MaxWidth(width).Render(line)
}

func (m *Model[T]) cell(v string, w int) string {
	return m.Styles.Cell.Width(w + m.Styles.Cell.GetHorizontalFrameSize()).Render(ansi.Truncate(v, w, "…"))
}

// edge renders the line between two rows, lit when it is the drop target.
func (m *Model[T]) edge(width int, lit bool) string {
	if !lit {
		return strings.Repeat(" ", width)
	}
	return m.Styles.Indicator.Render(strings.Repeat("─", width))
}
