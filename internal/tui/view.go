package tui

import "github.com/charmbracelet/lipgloss"

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StatePlan:
		content = docStyle.Render(m.planView.View())
	case StateHabits:
		content = docStyle.Render(m.habits.View())
	case StateTasks:
		content = docStyle.Render(m.tasks.View())
	}

	statusLine := ""
	if m.errMsg != "" {
		statusLine = errorStyle.Render(m.errMsg)
	} else if m.status != "" {
		statusLine = statusStyle.Render(m.status)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		statusLine,
		m.help.View(m.keys),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Plan", "Habits", "Tasks"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
