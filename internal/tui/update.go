package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nfordyce/daybreak/internal/tui/components/habitlist"
	"github.com/nfordyce/daybreak/internal/tui/components/tasklist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		contentHeight := msg.Height - 4
		m.planView.SetSize(msg.Width-4, contentHeight)
		m.habits.SetSize(msg.Width-4, contentHeight)
		m.tasks.SetSize(msg.Width-4, contentHeight)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Generate):
			if m.state == StatePlan {
				m.regeneratePlan()
				return m, nil
			}
		}

	case habitlist.ArchiveHabitMsg:
		if err := m.store.ArchiveHabit(msg.ID); err != nil {
			m.errMsg = err.Error()
		} else {
			m.status = "Habit archived"
			m.refreshLists()
		}
		return m, nil

	case tasklist.DoneTaskMsg:
		task, err := m.store.GetTask(msg.ID)
		if err == nil {
			task.Completed = true
			err = m.store.UpdateTask(task)
		}
		if err != nil {
			m.errMsg = err.Error()
		} else {
			m.status = "Task completed"
			m.refreshLists()
		}
		return m, nil

	case tasklist.DeleteTaskMsg:
		if err := m.store.DeleteTask(msg.ID); err != nil {
			m.errMsg = err.Error()
		} else {
			m.status = "Task deleted"
			m.refreshLists()
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.state {
	case StatePlan:
		m.planView, cmd = m.planView.Update(msg)
	case StateHabits:
		m.habits, cmd = m.habits.Update(msg)
	case StateTasks:
		m.tasks, cmd = m.tasks.Update(msg)
	}
	return m, cmd
}
