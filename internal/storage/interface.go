package storage

import "github.com/nfordyce/daybreak/internal/models"

// Settings is the durable user configuration the planner reads every run.
type Settings struct {
	SleepStart           string             `json:"sleep_start"`
	SleepEnd             string             `json:"sleep_end"`
	Timezone             string             `json:"timezone"`
	BufferMin            int                `json:"buffer_min"`
	DowntimeMin          int                `json:"downtime_min"`
	NotificationsEnabled bool               `json:"notifications_enabled"`
	NotifyLeadMin        int                `json:"notify_lead_min"`
	Gym                  models.GymSettings `json:"gym"`
}

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (Settings, error)
	SaveSettings(Settings) error

	// Habits
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetAllHabits(includeArchived bool) ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	ArchiveHabit(id string) error

	// Tasks
	AddTask(models.Task) error
	GetTask(id string) (models.Task, error)
	GetAllTasks() ([]models.Task, error)
	UpdateTask(models.Task) error
	DeleteTask(id string) error

	// Fixed events, keyed by date (YYYY-MM-DD)
	SaveEvents(date string, events []models.FixedEvent) error
	GetEvents(date string) ([]models.FixedEvent, error)

	// Plans, keyed by date
	SavePlan(models.PlanOutput) error
	GetPlan(date string) (models.PlanOutput, error)

	// Utils
	GetConfigPath() string
}
