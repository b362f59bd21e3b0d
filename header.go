// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package main

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

var (
	headerStyle = lipgloss.NewStyle().
			Background(subtle).
			Foreground(lipgloss.AdaptiveColor{Light: "#333", Dark: "#FFF"}).
			Height(1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlight).
			Background(subtle)

	headerButtonStyle = lipgloss.NewStyle().
				Background(highlight).
				Foreground(lipgloss.AdaptiveColor{Light: "#FFF", Dark: "#FFF"}).
				Margin(0, 1).
				Padding(0, 1)

	headerButtonActiveStyle = headerButtonStyle.
				Background(special).
				Bold(true)
)

type action int

const (
	actionToggleHandle action = iota
	actionCopy
	actionReload
)

// headerClickMsg is sent when a header button is released on.
type headerClickMsg struct {
	action action
}

type headerButton struct {
	label  string
	action action
	active bool
}

type header struct {
	id      string
	width   int
	title   string
	buttons []headerButton
}

func newHeader(title string) *header {
	return &header{
		id:    zone.NewPrefix(),
		title: title,
		buttons: []headerButton{
			{label: "Handle", action: actionToggleHandle},
			{label: "Copy", action: actionCopy},
			{label: "Reload", action: actionReload},
		},
	}
}

func (h *header) setActive(a action, active bool) {
	for i := range h.buttons {
		if h.buttons[i].action == a {
			h.buttons[i].active = active
		}
	}
}

func (h *header) Init() tea.Cmd {
	return nil
}

func (h *header) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width = msg.Width

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return h, nil
		}
		for i, b := range h.buttons {
			if zone.Get(h.buttonID(i)).InBounds(msg) {
				return h, func() tea.Msg { return headerClickMsg{action: b.action} }
			}
		}
	}
	return h, nil
}

func (h *header) View() string {
	var buttonViews []string
	for i, button := range h.buttons {
		style := headerButtonStyle
		if button.active {
			style = headerButtonActiveStyle
		}
		buttonViews = append(buttonViews, zone.Mark(h.buttonID(i), style.Render(button.label)))
	}
	buttonsSection := lipgloss.JoinHorizontal(lipgloss.Center, buttonViews...)
	buttonsWidth := lipgloss.Width(buttonsSection)

	maxTitleWidth := max(h.width-buttonsWidth-2, 0)
	titleText := h.title
	if lipgloss.Width(titleText) > maxTitleWidth {
		runes := []rune(titleText)
		for len(runes) > 0 && lipgloss.Width(string(runes))+1 > maxTitleWidth {
			runes = runes[:len(runes)-1]
		}
		if maxTitleWidth > 0 {
			titleText = string(runes) + "…"
		} else {
			titleText = ""
		}
	}
	title := titleStyle.Render(titleText)

	spacingWidth := max(h.width-lipgloss.Width(title)-buttonsWidth-2, 0)
	spacing := lipgloss.NewStyle().Background(subtle).Width(spacingWidth).Render("")
	content := lipgloss.JoinHorizontal(lipgloss.Center, title, spacing, buttonsSection)
	return headerStyle.Width(h.width).Render(content)
}

func (h *header) buttonID(index int) string {
	return h.id + "button_" + strconv.Itoa(index)
}
