// Package tui renders the weekly habit calendar in the terminal.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"habitrack/client/api"
	"habitrack/client/state"
	"habitrack/shared/date"
)

const (
	requestTimeout = 10 * time.Second
	nameWidth      = 24
	cellWidth      = 7
	daysPerWeek    = 7
)

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeConfirmDelete
)

type (
	loadedMsg struct{ err error }

	toggledMsg struct {
		habit  api.Habit
		status state.Status
		err    error
	}

	habitCreatedMsg struct {
		habit api.Habit
		err   error
	}

	habitDeletedMsg struct {
		habit api.Habit
		err   error
	}
)

type Model struct {
	controller *state.Controller
	keys       KeyMap
	help       help.Model
	input      textinput.Model
	mode       mode
	today      date.Date
	week       date.Range
	row        int
	col        int
	notice     string
	failed     bool
	width      int
	quitting   bool
}

// New builds the calendar around today's week with the cursor on today.
func New(controller *state.Controller, today date.Date) Model {
	input := textinput.New()
	input.Placeholder = "Habit name"
	input.CharLimit = 100
	input.Width = nameWidth + 16

	week := date.WeekOf(today)

	return Model{
		controller: controller,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		input:      input,
		today:      today,
		week:       week,
		col:        int(today.Weekday()),
	}
}

func (m Model) Init() tea.Cmd {
	return m.load(m.week.Start)
}

func (m Model) ShortHelp() []key.Binding {
	return m.keys.ShortHelp()
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}

func (m Model) State() state.State {
	return m.controller.Store().State()
}

func (m Model) selectedHabit() (api.Habit, bool) {
	habits := m.State().Habits
	if m.row < 0 || m.row >= len(habits) {
		return api.Habit{}, false
	}

	return habits[m.row], true
}

func (m Model) selectedDay() date.Date {
	return m.week.Start.AddDays(m.col)
}

func (m Model) load(day date.Date) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		return loadedMsg{err: m.controller.Load(ctx, day)}
	}
}

func (m Model) fetchWeek(day date.Date) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		m.controller.FetchWeek(ctx, day)

		return loadedMsg{}
	}
}

func (m Model) toggle(habit api.Habit, day date.Date) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		status, err := m.controller.Toggle(ctx, habit.ID, day)

		return toggledMsg{habit: habit, status: status, err: err}
	}
}

func (m Model) createHabit(name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		habit, err := m.controller.CreateHabit(ctx, name, "")

		return habitCreatedMsg{habit: habit, err: err}
	}
}

func (m Model) deleteHabit(habit api.Habit) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		return habitDeletedMsg{habit: habit, err: m.controller.DeleteHabit(ctx, habit.ID)}
	}
}

// Run starts the full-screen program and blocks until the user quits.
func Run(controller *state.Controller, today date.Date) error {
	_, err := tea.NewProgram(New(controller, today), tea.WithAltScreen()).Run()

	return err //nolint:wrapcheck
}
