package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"habitrack/client/state"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

		return m, nil

	case loadedMsg:
		m.clampCursor()

		return m, nil

	case toggledMsg:
		m.setNotice("")
		if msg.err == nil {
			m.setNotice(toggleNotice(msg.habit.Name, msg.status))
		}

		return m, nil

	case habitCreatedMsg:
		if msg.err != nil {
			m.setProblem(msg.err)

			return m, nil
		}

		m.row = 0
		m.setNotice(fmt.Sprintf("Added %q", msg.habit.Name))

		return m, m.fetchWeek(m.week.Start)

	case habitDeletedMsg:
		m.clampCursor()
		if msg.err == nil {
			m.setNotice(fmt.Sprintf("Deleted %q", msg.habit.Name))
		}

		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeAdd:
			return m.updateAdd(msg)
		case modeConfirmDelete:
			return m.updateConfirmDelete(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true

		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		if m.row > 0 {
			m.row--
		}
	case key.Matches(msg, m.keys.Down):
		if m.row < len(m.State().Habits)-1 {
			m.row++
		}
	case key.Matches(msg, m.keys.Left):
		if m.col > 0 {
			m.col--
		}
	case key.Matches(msg, m.keys.Right):
		if m.col < daysPerWeek-1 {
			m.col++
		}
	case key.Matches(msg, m.keys.PrevWeek):
		m.week.Start, m.week.End = m.week.Start.AddDays(-daysPerWeek), m.week.End.AddDays(-daysPerWeek)

		return m, m.fetchWeek(m.week.Start)
	case key.Matches(msg, m.keys.NextWeek):
		m.week.Start, m.week.End = m.week.Start.AddDays(daysPerWeek), m.week.End.AddDays(daysPerWeek)

		return m, m.fetchWeek(m.week.Start)
	case key.Matches(msg, m.keys.Refresh):
		m.setNotice("")
		m.controller.Store().Dispatch(state.SetError{})

		return m, m.load(m.week.Start)
	case key.Matches(msg, m.keys.Toggle):
		habit, ok := m.selectedHabit()
		if !ok {
			return m, nil
		}

		return m, m.toggle(habit, m.selectedDay())
	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.setNotice("")
		m.input.Reset()
		cmd := m.input.Focus()

		return m, cmd
	case key.Matches(msg, m.keys.Delete):
		if _, ok := m.selectedHabit(); ok {
			m.mode = modeConfirmDelete
		}
	}

	return m, nil
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeBrowse
		m.input.Blur()

		return m, nil
	case tea.KeyEnter:
		name := strings.TrimSpace(m.input.Value())
		if err := state.ValidateHabitName(name); err != nil {
			m.setProblem(err)

			return m, nil
		}

		m.mode = modeBrowse
		m.input.Blur()

		return m, m.createHabit(name)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.mode = modeBrowse

		habit, ok := m.selectedHabit()
		if !ok {
			return m, nil
		}

		return m, m.deleteHabit(habit)
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeBrowse
	}

	return m, nil
}

func (m *Model) clampCursor() {
	count := len(m.State().Habits)
	if m.row >= count {
		m.row = count - 1
	}

	if m.row < 0 {
		m.row = 0
	}
}

func (m *Model) setNotice(text string) {
	m.notice = text
	m.failed = false
}

func (m *Model) setProblem(err error) {
	m.notice = err.Error()
	m.failed = true
}

func toggleNotice(name string, status state.Status) string {
	switch status {
	case state.StatusDone:
		return fmt.Sprintf("Marked %q as done", name)
	case state.StatusMissed:
		return fmt.Sprintf("Marked %q as missed", name)
	default:
		return fmt.Sprintf("Cleared %q", name)
	}
}
