package plan

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nfordyce/daybreak/internal/models"
)

var (
	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(14)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	lockedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))
)

type Model struct {
	viewport viewport.Model
	Plan     *models.PlanOutput
	width    int
	height   int
}

func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height)}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.Plan == nil {
		return "\n  No plan for today.\n  Press 'g' to generate one."
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

func (m *Model) SetPlan(plan models.PlanOutput) {
	m.Plan = &plan
	m.Render()
}

func (m *Model) Render() {
	if m.Plan == nil {
		m.viewport.SetContent("No plan loaded.")
		return
	}

	var b strings.Builder
	if m.Plan.IsLateNightMode {
		b.WriteString(warnStyle.Render("Late-night mode: wind-down plan only") + "\n\n")
	}

	for _, block := range m.Plan.Blocks {
		title := block.Title
		if block.Locked {
			title = lockedStyle.Render(title)
		} else {
			title = titleStyle.Render(title)
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			timeStyle.Render(block.Start+" - "+block.End),
			title,
			typeStyle.Render(string(block.Type)),
		))
	}

	if len(m.Plan.Unscheduled) > 0 {
		b.WriteString("\n" + warnStyle.Render("Unscheduled:") + "\n")
		for _, u := range m.Plan.Unscheduled {
			b.WriteString(fmt.Sprintf("  %s: %s\n", u.Title, u.Reason))
		}
	}

	if m.Plan.Explanation != "" {
		b.WriteString("\n" + typeStyle.Render(m.Plan.Explanation) + "\n")
	}
	m.viewport.SetContent(b.String())
}
