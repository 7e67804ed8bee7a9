package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"habitrack/client/api"
	"habitrack/client/state"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	current := m.State()

	sections := []string{
		titleStyle.Render("Weekly Progress") + "  " + subtleStyle.Render(state.WeekLabel(m.week.Start)),
		"",
		m.viewGrid(current),
		"",
		m.viewSummary(current.Summary),
		"",
		m.viewFooter(current),
		m.help.View(m),
	}

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) viewGrid(current state.State) string {
	if len(current.Habits) == 0 {
		if current.Loading {
			return subtleStyle.Render("Loading habits...")
		}

		return subtleStyle.Render("No habits yet. Press a to add one.")
	}

	days := state.WeekDates(m.week.Start)

	header := []string{nameStyle.Render("HABIT")}
	for _, day := range days {
		header = append(header, headerStyle.Render(state.DayLabel(day, m.today)+"\n"+subtleStyle.Render(day.Format("Jan 2"))))
	}

	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, header...)}

	for i, habit := range current.Habits {
		cells := []string{nameStyle.Render(habit.Name)}

		for j, day := range days {
			symbol := renderStatus(current.StatusOf(habit.ID, day))

			style := cellStyle
			if i == m.row && j == m.col {
				style = cursorStyle
			}

			cells = append(cells, style.Render(symbol))
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) viewSummary(summary *api.Summary) string {
	if summary == nil {
		return ""
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		periodCard("This Week", summary.Weekly),
		periodCard("This Month", summary.Monthly),
	)
}

func (m Model) viewFooter(current state.State) string {
	switch m.mode {
	case modeAdd:
		return "New habit: " + m.input.View() + "\n" + m.viewNotice("")
	case modeConfirmDelete:
		habit, _ := m.selectedHabit()

		return errorStyle.Render(fmt.Sprintf("Delete %q and all its check-ins? (y/n)", habit.Name))
	}

	return m.viewNotice(current.Err)
}

func periodCard(title string, stats api.PeriodStats) string {
	lines := []string{
		titleStyle.Render(title),
		subtleStyle.Render(stats.Period),
		fmt.Sprintf("Completion   %3d%%", stats.CompletionRate),
		fmt.Sprintf("Active       %d/%d", stats.CompletedHabits, stats.TotalHabits),
		fmt.Sprintf("Completions  %s", doneStyle.Render(fmt.Sprint(stats.TotalCompletions))),
		fmt.Sprintf("Misses       %s", missedStyle.Render(fmt.Sprint(stats.TotalMisses))),
	}

	return cardStyle.Render(strings.Join(lines, "\n"))
}

func renderStatus(status state.Status) string {
	switch status {
	case state.StatusDone:
		return doneStyle.Render(status.Symbol())
	case state.StatusMissed:
		return missedStyle.Render(status.Symbol())
	default:
		return unsetStyle.Render(status.Symbol())
	}
}

func (m Model) viewNotice(storeErr string) string {
	switch {
	case m.notice != "" && m.failed:
		return errorStyle.Render(m.notice)
	case storeErr != "":
		return errorStyle.Render(storeErr)
	case m.notice != "":
		return noticeStyle.Render(m.notice)
	default:
		return ""
	}
}
