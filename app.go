package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rileylov/rowdrag/drag"
	"github.com/rileylov/rowdrag/table"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
)

type keyMap struct {
	Quit   key.Binding
	Copy   key.Binding
	Open   key.Binding
	Reload key.Binding
	Handle key.Binding
	SI     key.Binding
	Cancel key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Copy:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "copy order")),
		Open:   key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open dir")),
		Reload: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reload")),
		Handle: key.NewBinding(key.WithKeys("alt+h"), key.WithHelp("alt+h", "handle mode")),
		SI:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "SI units")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Copy, k.Open, k.Reload, k.Handle, k.SI, k.Cancel, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type model struct {
	cfg       Config
	logger    *log.Logger
	width     int
	height    int
	header    *header
	footer    *footer
	table     *table.Model[entry]
	prompt    textinput.Model
	prompting bool
	keys      keyMap
	selected  int
	copy      func(string) error
}

func newModel(cfg Config, logger *log.Logger) (*model, error) {
	rows, err := loadEntries(cfg.Dir, cfg.Limit)
	if err != nil {
		return nil, err
	}

	ti := textinput.New()
	ti.Placeholder = "Directory to open..."
	ti.CharLimit = 256
	ti.Width = 40

	m := &model{
		cfg:      cfg,
		logger:   logger,
		header:   newHeader("rowdrag: " + cfg.Dir),
		prompt:   ti,
		keys:     defaultKeyMap(),
		selected: -1,
		copy:     clipboard.WriteAll,
	}
	m.footer = newFooter(m.keys)
	m.footer.status = "Drag rows to reorder them"
	m.buildTable(rows)
	return m, nil
}

// buildTable creates the table for the current configuration. The drag
// configuration is fixed per table, so toggling handle mode rebuilds it.
func (m *model) buildTable(rows []entry) {
	m.table = table.New(m.cfg.dragConfig(),
		func(e entry) table.Row { return e.row(m.cfg.SIUnit) },
		table.WithColumns[entry](columns),
		table.WithRows(rows),
		table.WithRowHandlers(m.rowHandlers),
		table.WithDragOptions[entry](drag.WithLogger(m.logger)),
	)
	m.header.setActive(actionToggleHandle, m.cfg.Handle)
	m.footer.session = m.table.Controller().Session()
	m.footer.count = len(rows)
	m.selected = -1
}

// rowHandlers are the app's own handlers; the table runs them before its
// drag handlers.
func (m *model) rowHandlers(e entry, index int) drag.Handlers {
	return drag.Handlers{
		drag.PointerDown: func(*drag.Event) {
			m.selected = index
			m.footer.status = "Selected " + e.Name
		},
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) isInitialized() bool {
	return m.height != 0 && m.width != 0
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.width = msg.Width
		inner := tea.WindowSizeMsg{Width: msg.Width - 2, Height: msg.Height - 2}
		m.header.Update(inner)
		m.footer.Update(inner)
		return m, nil

	case tea.KeyMsg:
		if m.prompting {
			return m, m.updatePrompt(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cancel) && m.table.Dragging():
			_, cmd := m.table.Update(msg)
			m.footer.status = "Drag cancelled"
			return m, cmd
		case key.Matches(msg, m.keys.Copy):
			m.copyOrder()
		case key.Matches(msg, m.keys.Open):
			m.prompting = true
			m.prompt.SetValue(m.cfg.Dir)
			return m, m.prompt.Focus()
		case key.Matches(msg, m.keys.Reload):
			m.reload(m.cfg.Dir)
		case key.Matches(msg, m.keys.Handle):
			m.toggleHandle()
		case key.Matches(msg, m.keys.SI):
			m.cfg.SIUnit = !m.cfg.SIUnit
		}
		return m, nil

	case tea.MouseMsg:
		var cmds []tea.Cmd
		_, cmd := m.header.Update(msg)
		cmds = append(cmds, cmd)
		_, cmd = m.table.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case headerClickMsg:
		switch msg.action {
		case actionToggleHandle:
			m.toggleHandle()
		case actionCopy:
			m.copyOrder()
		case actionReload:
			m.reload(m.cfg.Dir)
		}
		return m, nil

	case table.RowsReorderedMsg[entry]:
		moved := msg.Data[msg.DropIndex]
		m.footer.status = fmt.Sprintf("Moved %s from %d to %d", moved.Name, msg.DragIndex, msg.DropIndex)
		m.selected = msg.DropIndex
		return m, nil
	}
	return m, nil
}

func (m *model) updatePrompt(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.prompting = false
		m.prompt.Blur()
		return nil
	case tea.KeyEnter:
		m.prompting = false
		m.prompt.Blur()
		if dir := strings.TrimSpace(m.prompt.Value()); dir != "" {
			m.reload(dir)
		}
		return nil
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return cmd
}

func (m *model) reload(dir string) {
	rows, err := loadEntries(dir, m.cfg.Limit)
	if err != nil {
		m.footer.status = fmt.Sprintf("Couldn't open %s: %v", dir, err)
		return
	}
	m.cfg.Dir = dir
	m.header.title = "rowdrag: " + dir
	m.table.SetRows(rows)
	m.footer.count = len(rows)
	m.selected = -1
	m.footer.status = fmt.Sprintf("Loaded %d entries", len(rows))
}

func (m *model) toggleHandle() {
	m.cfg.Handle = !m.cfg.Handle
	m.buildTable(m.table.Rows())
	if m.cfg.Handle {
		m.footer.status = "Handle mode: drag rows by " + "⠿"
	} else {
		m.footer.status = "Whole-row dragging"
	}
}

func (m *model) copyOrder() {
	rows := m.table.Rows()
	paths := make([]string, len(rows))
	for i, e := range rows {
		paths[i] = e.Path
	}
	if err := m.copy(strings.Join(paths, "\n")); err != nil {
		m.footer.status = fmt.Sprintf("Couldn't write to clipboard: %v", err)
		return
	}
	m.footer.status = fmt.Sprintf("Copied %d paths", len(paths))
}

func (m *model) View() string {
	if !m.isInitialized() {
		return ""
	}
	parts := []string{m.header.View(), m.table.View()}
	if m.prompting {
		parts = append(parts, m.prompt.View())
	}
	parts = append(parts, m.footer.View())
	return zone.Scan(baseStyle.
		MaxHeight(m.height).
		MaxWidth(m.width).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...)))
}
