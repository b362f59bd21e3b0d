// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rileylov/rowdrag/drag"
)

var (
	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#666", Dark: "#AAA"})

	statusStyle = lipgloss.NewStyle().
			Background(subtle).
			Foreground(lipgloss.AdaptiveColor{Light: "#666", Dark: "#AAA"}).
			Height(1)
)

// footer shows the drag session, the last status message and key help.
type footer struct {
	width   int
	status  string
	count   int
	session *drag.Session
	help    help.Model
	keys    help.KeyMap
}

func newFooter(keys help.KeyMap) *footer {
	return &footer{
		help: help.New(),
		keys: keys,
	}
}

func (f *footer) Init() tea.Cmd {
	return nil
}

func (f *footer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		f.width = msg.Width
		f.help.Width = msg.Width
	}
	return f, nil
}

func (f *footer) dragInfo() string {
	if f.session == nil || !f.session.Active() {
		return "Drag: idle"
	}
	source, _ := f.session.Source()
	if boundary, ok := f.session.Target(); ok {
		return fmt.Sprintf("Drag: row %d → before %d", source, boundary)
	}
	return fmt.Sprintf("Drag: row %d", source)
}

func (f *footer) View() string {
	info := fmt.Sprintf("Items: %d | %s | Status: %s", f.count, f.dragInfo(), f.status)
	return lipgloss.JoinVertical(lipgloss.Left,
		statusStyle.Width(f.width).MaxWidth(f.width).Render(info),
		footerStyle.Render(f.help.View(f.keys)),
	)
}
