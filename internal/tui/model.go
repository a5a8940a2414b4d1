package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nfordyce/daybreak/internal/engine"
	"github.com/nfordyce/daybreak/internal/models"
	"github.com/nfordyce/daybreak/internal/storage"
	"github.com/nfordyce/daybreak/internal/tui/components/habitlist"
	"github.com/nfordyce/daybreak/internal/tui/components/plan"
	"github.com/nfordyce/daybreak/internal/tui/components/tasklist"
)

type SessionState int

const (
	StatePlan SessionState = iota
	StateHabits
	StateTasks
)

const tabCount = 3

type Model struct {
	store    storage.Provider
	engine   *engine.Engine
	state    SessionState
	keys     KeyMap
	help     help.Model
	planView plan.Model
	habits   habitlist.Model
	tasks    tasklist.Model
	status   string
	errMsg   string
	quitting bool
	width    int
	height   int
}

func NewModel(store storage.Provider, eng *engine.Engine) Model {
	today := time.Now().Format("2006-01-02")

	pm := plan.New(0, 0)
	if planData, err := store.GetPlan(today); err == nil {
		pm.SetPlan(planData)
	}

	habits, err := store.GetAllHabits(false)
	if err != nil {
		habits = []models.Habit{}
	}
	tasks, err := store.GetAllTasks()
	if err != nil {
		tasks = []models.Task{}
	}

	return Model{
		store:    store,
		engine:   eng,
		state:    StatePlan,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		planView: pm,
		habits:   habitlist.New(habits, 0, 0),
		tasks:    tasklist.New(tasks, 0, 0),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// regeneratePlan rebuilds and saves today's plan from the current store
// contents.
func (m *Model) regeneratePlan() {
	settings, err := m.store.GetSettings()
	if err != nil {
		m.errMsg = "failed to load settings: " + err.Error()
		return
	}
	habits, err := m.store.GetAllHabits(false)
	if err != nil {
		m.errMsg = "failed to load habits: " + err.Error()
		return
	}
	tasks, err := m.store.GetAllTasks()
	if err != nil {
		m.errMsg = "failed to load tasks: " + err.Error()
		return
	}

	now := time.Now()
	date := now.Format("2006-01-02")
	events, err := m.store.GetEvents(date)
	if err != nil {
		m.errMsg = "failed to load events: " + err.Error()
		return
	}

	input := models.DailyInput{
		Date:        date,
		Timezone:    settings.Timezone,
		SleepStart:  settings.SleepStart,
		SleepEnd:    settings.SleepEnd,
		FixedEvents: events,
		Constraints: models.Constraints{
			BufferBetweenBlocksMin: settings.BufferMin,
			ProtectDowntimeMin:     settings.DowntimeMin,
		},
	}
	prefs := models.Preferences{
		Timezone:             settings.Timezone,
		NotificationsEnabled: settings.NotificationsEnabled,
		NotifyLeadMin:        settings.NotifyLeadMin,
	}

	generated, err := m.engine.GeneratePlan(input, habits, tasks, settings.Gym, prefs, now)
	if err != nil {
		m.errMsg = "plan generation failed: " + err.Error()
		return
	}
	if err := m.store.SavePlan(generated); err != nil {
		m.errMsg = "failed to save plan: " + err.Error()
		return
	}

	m.planView.SetPlan(generated)
	m.errMsg = ""
	m.status = "Plan regenerated for " + date
}

func (m *Model) refreshLists() {
	if habits, err := m.store.GetAllHabits(false); err == nil {
		m.habits.SetHabits(habits)
	}
	if tasks, err := m.store.GetAllTasks(); err == nil {
		m.tasks.SetTasks(tasks)
	}
}
