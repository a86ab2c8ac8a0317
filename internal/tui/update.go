package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/audora0212/inhashapp/internal/utils"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.PrevMonth):
			m.month = m.month.AddDate(0, -1, 0)
			m.selected = m.month
			return m, nil

		case key.Matches(msg, m.keys.NextMonth):
			m.month = m.month.AddDate(0, 1, 0)
			m.selected = m.month
			return m, nil

		case key.Matches(msg, m.keys.PrevDay):
			return m.moveSelection(-1), nil

		case key.Matches(msg, m.keys.NextDay):
			return m.moveSelection(1), nil

		case key.Matches(msg, m.keys.PrevWeek):
			return m.moveSelection(-7), nil

		case key.Matches(msg, m.keys.NextWeek):
			return m.moveSelection(7), nil

		case key.Matches(msg, m.keys.Today):
			m.month = utils.StartOfMonth(m.now)
			m.selected = utils.StartOfDay(m.now)
			return m, nil
		}
	}

	return m, nil
}

// moveSelection shifts the selected day, following it into the adjacent
// month when the selection crosses a month boundary.
func (m Model) moveSelection(days int) Model {
	m.selected = m.selected.AddDate(0, 0, days)
	if !utils.SameMonth(m.selected, m.month) {
		m.month = utils.StartOfMonth(m.selected)
	}
	return m
}
