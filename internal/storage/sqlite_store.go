package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite"

	"github.com/nfordyce/daybreak/internal/constants"
	"github.com/nfordyce/daybreak/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS habits (
	id               TEXT PRIMARY KEY,
	name             TEXT NOT NULL,
	duration_min     INTEGER NOT NULL,
	recurrence_type  TEXT NOT NULL,
	recurrence_days  TEXT,
	times_per_week   INTEGER,
	preferred_window TEXT,
	explicit_time    TEXT,
	priority         INTEGER NOT NULL,
	flexibility      TEXT,
	min_viable_min   INTEGER,
	energy           TEXT,
	category         TEXT,
	active           BOOLEAN NOT NULL,
	archived         BOOLEAN NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS tasks (
	id               TEXT PRIMARY KEY,
	title            TEXT NOT NULL,
	estimated_min    INTEGER NOT NULL,
	due_date         TEXT,
	priority         INTEGER NOT NULL,
	category         TEXT,
	energy           TEXT,
	preferred_window TEXT,
	explicit_time    TEXT,
	depends_on       TEXT,
	completed        BOOLEAN NOT NULL,
	active           BOOLEAN NOT NULL,
	splittable       BOOLEAN NOT NULL DEFAULT 0,
	chunk_min        INTEGER
);
CREATE TABLE IF NOT EXISTS events (
	date     TEXT NOT NULL,
	position INTEGER NOT NULL,
	title    TEXT NOT NULL,
	start    TEXT NOT NULL,
	end      TEXT NOT NULL,
	category TEXT,
	PRIMARY KEY (date, position)
);
CREATE TABLE IF NOT EXISTS plans (
	date    TEXT PRIMARY KEY,
	payload TEXT NOT NULL
);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	if _, err := s.GetSettings(); err != nil {
		if err := s.SaveSettings(DefaultSettings()); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'daybreak init' first")
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// DefaultSettings is what a fresh store starts with.
func DefaultSettings() Settings {
	return Settings{
		SleepStart:           constants.DefaultSleepStart,
		SleepEnd:             constants.DefaultSleepEnd,
		Timezone:             constants.DefaultTimezone,
		BufferMin:            constants.DefaultBufferMin,
		DowntimeMin:          constants.DefaultDowntimeMin,
		NotificationsEnabled: constants.DefaultNotificationsEnabled,
		NotifyLeadMin:        constants.DefaultNotifyLeadMin,
		Gym: models.GymSettings{
			Enabled:          constants.DefaultGymEnabled,
			DaysPerWeek:      constants.DefaultGymDaysPerWeek,
			DefaultMin:       constants.DefaultGymDefaultMin,
			MinimumMin:       constants.DefaultGymMinimumMin,
			PreferredWindow:  models.GymWindow(constants.DefaultGymWindow),
			BedtimeBufferMin: constants.DefaultGymBedtimeBuffer,
		},
	}
}

func (s *SQLiteStore) GetSettings() (Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return Settings{}, err
	}
	defer rows.Close()

	settings := Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return Settings{}, err
		}
		switch key {
		case constants.SettingSleepStart:
			settings.SleepStart = value
		case constants.SettingSleepEnd:
			settings.SleepEnd = value
		case constants.SettingTimezone:
			settings.Timezone = value
		case constants.SettingBufferMin:
			settings.BufferMin, _ = strconv.Atoi(value)
		case constants.SettingDowntimeMin:
			settings.DowntimeMin, _ = strconv.Atoi(value)
		case constants.SettingNotificationsEnabled:
			settings.NotificationsEnabled = value == "true"
		case constants.SettingNotifyLeadMin:
			settings.NotifyLeadMin, _ = strconv.Atoi(value)
		case constants.SettingGymEnabled:
			settings.Gym.Enabled = value == "true"
		case constants.SettingGymDaysPerWeek:
			settings.Gym.DaysPerWeek, _ = strconv.Atoi(value)
		case constants.SettingGymDefaultMin:
			settings.Gym.DefaultMin, _ = strconv.Atoi(value)
		case constants.SettingGymMinimumMin:
			settings.Gym.MinimumMin, _ = strconv.Atoi(value)
		case constants.SettingGymWindow:
			settings.Gym.PreferredWindow = models.GymWindow(value)
		case constants.SettingGymBedtimeBuffer:
			settings.Gym.BedtimeBufferMin, _ = strconv.Atoi(value)
		}
		count++
	}
	if count == 0 {
		return Settings{}, fmt.Errorf("settings not found")
	}
	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	pairs := map[string]string{
		constants.SettingSleepStart:           settings.SleepStart,
		constants.SettingSleepEnd:             settings.SleepEnd,
		constants.SettingTimezone:             settings.Timezone,
		constants.SettingBufferMin:            strconv.Itoa(settings.BufferMin),
		constants.SettingDowntimeMin:          strconv.Itoa(settings.DowntimeMin),
		constants.SettingNotificationsEnabled: strconv.FormatBool(settings.NotificationsEnabled),
		constants.SettingNotifyLeadMin:        strconv.Itoa(settings.NotifyLeadMin),
		constants.SettingGymEnabled:           strconv.FormatBool(settings.Gym.Enabled),
		constants.SettingGymDaysPerWeek:       strconv.Itoa(settings.Gym.DaysPerWeek),
		constants.SettingGymDefaultMin:        strconv.Itoa(settings.Gym.DefaultMin),
		constants.SettingGymMinimumMin:        strconv.Itoa(settings.Gym.MinimumMin),
		constants.SettingGymWindow:            string(settings.Gym.PreferredWindow),
		constants.SettingGymBedtimeBuffer:     strconv.Itoa(settings.Gym.BedtimeBufferMin),
	}
	for key, value := range pairs {
		if _, err := stmt.Exec(key, value); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) AddHabit(h models.Habit) error {
	return s.UpdateHabit(h)
}

func (s *SQLiteStore) UpdateHabit(h models.Habit) error {
	daysJSON, err := json.Marshal(h.Recurrence.Days)
	if err != nil {
		return fmt.Errorf("failed to marshal recurrence days: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO habits (
			id, name, duration_min, recurrence_type, recurrence_days, times_per_week,
			preferred_window, explicit_time, priority, flexibility, min_viable_min,
			energy, category, active, archived
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		h.ID, h.Name, h.DurationMin, h.Recurrence.Type, string(daysJSON), h.Recurrence.TimesPerWeek,
		h.PreferredWindow, h.ExplicitTime, h.Priority, h.Flexibility, h.MinViableMin,
		h.Energy, h.Category, h.Active, h.Archived,
	)
	return err
}

func scanHabit(scan func(dest ...any) error) (models.Habit, error) {
	var h models.Habit
	var recType, recDays, window, flexibility, energy string
	err := scan(
		&h.ID, &h.Name, &h.DurationMin, &recType, &recDays, &h.Recurrence.TimesPerWeek,
		&window, &h.ExplicitTime, &h.Priority, &flexibility, &h.MinViableMin,
		&energy, &h.Category, &h.Active, &h.Archived,
	)
	if err != nil {
		return models.Habit{}, err
	}
	h.Recurrence.Type = models.RecurrenceType(recType)
	h.PreferredWindow = models.Window(window)
	h.Flexibility = models.Flexibility(flexibility)
	h.Energy = models.EnergyLevel(energy)
	if recDays != "" {
		_ = json.Unmarshal([]byte(recDays), &h.Recurrence.Days)
	}
	return h, nil
}

const habitColumns = `id, name, duration_min, recurrence_type, recurrence_days, times_per_week,
	preferred_window, explicit_time, priority, flexibility, min_viable_min,
	energy, category, active, archived`

func (s *SQLiteStore) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow("SELECT "+habitColumns+" FROM habits WHERE id = ?", id)
	h, err := scanHabit(row.Scan)
	if err == sql.ErrNoRows {
		return models.Habit{}, fmt.Errorf("habit with id %s not found", id)
	}
	return h, err
}

func (s *SQLiteStore) GetAllHabits(includeArchived bool) ([]models.Habit, error) {
	query := "SELECT " + habitColumns + " FROM habits"
	if !includeArchived {
		query += " WHERE archived = 0"
	}
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows.Scan)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func (s *SQLiteStore) ArchiveHabit(id string) error {
	res, err := s.db.Exec("UPDATE habits SET archived = 1, active = 0 WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("habit with id %s not found", id)
	}
	return nil
}

func (s *SQLiteStore) AddTask(t models.Task) error {
	return s.UpdateTask(t)
}

func (s *SQLiteStore) UpdateTask(t models.Task) error {
	depsJSON, err := json.Marshal(t.DependsOn)
	if err != nil {
		return fmt.Errorf("failed to marshal dependencies: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO tasks (
			id, title, estimated_min, due_date, priority, category, energy,
			preferred_window, explicit_time, depends_on, completed, active,
			splittable, chunk_min
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Title, t.EstimatedMin, t.DueDate, t.Priority, t.Category, t.Energy,
		t.PreferredWindow, t.ExplicitTime, string(depsJSON), t.Completed, t.Active,
		t.Splittable, t.ChunkMin,
	)
	return err
}

const taskColumns = `id, title, estimated_min, due_date, priority, category, energy,
	preferred_window, explicit_time, depends_on, completed, active, splittable, chunk_min`

func scanTask(scan func(dest ...any) error) (models.Task, error) {
	var t models.Task
	var category, energy, window, deps string
	err := scan(
		&t.ID, &t.Title, &t.EstimatedMin, &t.DueDate, &t.Priority, &category, &energy,
		&window, &t.ExplicitTime, &deps, &t.Completed, &t.Active, &t.Splittable, &t.ChunkMin,
	)
	if err != nil {
		return models.Task{}, err
	}
	t.Category = category
	t.Energy = models.EnergyLevel(energy)
	t.PreferredWindow = models.Window(window)
	if deps != "" {
		_ = json.Unmarshal([]byte(deps), &t.DependsOn)
	}
	return t, nil
}

func (s *SQLiteStore) GetTask(id string) (models.Task, error) {
	row := s.db.QueryRow("SELECT "+taskColumns+" FROM tasks WHERE id = ?", id)
	t, err := scanTask(row.Scan)
	if err == sql.ErrNoRows {
		return models.Task{}, fmt.Errorf("task with id %s not found", id)
	}
	return t, err
}

func (s *SQLiteStore) GetAllTasks() ([]models.Task, error) {
	rows, err := s.db.Query("SELECT " + taskColumns + " FROM tasks")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *SQLiteStore) DeleteTask(id string) error {
	res, err := s.db.Exec("DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("task with id %s not found", id)
	}
	return nil
}

func (s *SQLiteStore) SaveEvents(date string, events []models.FixedEvent) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM events WHERE date = ?", date); err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO events (date, position, title, start, end, category) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, ev := range events {
		if _, err := stmt.Exec(date, i, ev.Title, ev.Start, ev.End, ev.Category); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) GetEvents(date string) ([]models.FixedEvent, error) {
	rows, err := s.db.Query(
		"SELECT title, start, end, category FROM events WHERE date = ? ORDER BY position", date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.FixedEvent
	for rows.Next() {
		var ev models.FixedEvent
		var category string
		if err := rows.Scan(&ev.Title, &ev.Start, &ev.End, &category); err != nil {
			return nil, err
		}
		ev.Category = models.EventCategory(category)
		events = append(events, ev)
	}
	return events, rows.Err()
}

func (s *SQLiteStore) SavePlan(plan models.PlanOutput) error {
	payload, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to serialize plan: %w", err)
	}
	_, err = s.db.Exec("INSERT OR REPLACE INTO plans (date, payload) VALUES (?, ?)", plan.Date, string(payload))
	return err
}

func (s *SQLiteStore) GetPlan(date string) (models.PlanOutput, error) {
	var payload string
	err := s.db.QueryRow("SELECT payload FROM plans WHERE date = ?", date).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.PlanOutput{}, fmt.Errorf("no plan found for date: %s", date)
		}
		return models.PlanOutput{}, err
	}
	var plan models.PlanOutput
	if err := json.Unmarshal([]byte(payload), &plan); err != nil {
		return models.PlanOutput{}, fmt.Errorf("failed to parse stored plan: %w", err)
	}
	return plan, nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

// GetDB exposes the handle for diagnostics.
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}
