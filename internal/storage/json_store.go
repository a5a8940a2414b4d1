package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/nfordyce/daybreak/internal/models"
)

type document struct {
	Version  int                          `json:"version"`
	Settings Settings                     `json:"settings"`
	Habits   map[string]models.Habit      `json:"habits"`
	Tasks    map[string]models.Task       `json:"tasks"`
	Events   map[string][]models.FixedEvent `json:"events"`
	Plans    map[string]models.PlanOutput `json:"plans"`
}

type JSONStore struct {
	path string
	doc  *document
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{path: configPath}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = &document{
		Version:  1,
		Settings: DefaultSettings(),
		Habits:   make(map[string]models.Habit),
		Tasks:    make(map[string]models.Task),
		Events:   make(map[string][]models.FixedEvent),
		Plans:    make(map[string]models.PlanOutput),
	}
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'daybreak init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.doc = &document{}
	if err := json.Unmarshal(data, s.doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.doc.Habits == nil {
		s.doc.Habits = make(map[string]models.Habit)
	}
	if s.doc.Tasks == nil {
		s.doc.Tasks = make(map[string]models.Task)
	}
	if s.doc.Events == nil {
		s.doc.Events = make(map[string][]models.FixedEvent)
	}
	if s.doc.Plans == nil {
		s.doc.Plans = make(map[string]models.PlanOutput)
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *JSONStore) GetSettings() (Settings, error) {
	if s.doc == nil {
		return Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.doc.Settings, nil
}

func (s *JSONStore) SaveSettings(settings Settings) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.Settings = settings
	return s.save()
}

func (s *JSONStore) AddHabit(h models.Habit) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.Habits[h.ID] = h
	return s.save()
}

func (s *JSONStore) GetHabit(id string) (models.Habit, error) {
	if s.doc == nil {
		return models.Habit{}, fmt.Errorf("storage not loaded")
	}
	h, ok := s.doc.Habits[id]
	if !ok {
		return models.Habit{}, fmt.Errorf("habit with id %s not found", id)
	}
	return h, nil
}

func (s *JSONStore) GetAllHabits(includeArchived bool) ([]models.Habit, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	habits := make([]models.Habit, 0, len(s.doc.Habits))
	for _, h := range s.doc.Habits {
		if h.Archived && !includeArchived {
			continue
		}
		habits = append(habits, h)
	}
	// Map iteration order is random; callers expect stable listings.
	sort.Slice(habits, func(i, j int) bool { return habits[i].ID < habits[j].ID })
	return habits, nil
}

func (s *JSONStore) UpdateHabit(h models.Habit) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	if _, ok := s.doc.Habits[h.ID]; !ok {
		return fmt.Errorf("habit with id %s not found", h.ID)
	}
	s.doc.Habits[h.ID] = h
	return s.save()
}

func (s *JSONStore) ArchiveHabit(id string) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	h, ok := s.doc.Habits[id]
	if !ok {
		return fmt.Errorf("habit with id %s not found", id)
	}
	h.Archived = true
	h.Active = false
	s.doc.Habits[id] = h
	return s.save()
}

func (s *JSONStore) AddTask(t models.Task) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.Tasks[t.ID] = t
	return s.save()
}

func (s *JSONStore) GetTask(id string) (models.Task, error) {
	if s.doc == nil {
		return models.Task{}, fmt.Errorf("storage not loaded")
	}
	t, ok := s.doc.Tasks[id]
	if !ok {
		return models.Task{}, fmt.Errorf("task with id %s not found", id)
	}
	return t, nil
}

func (s *JSONStore) GetAllTasks() ([]models.Task, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	tasks := make([]models.Task, 0, len(s.doc.Tasks))
	for _, t := range s.doc.Tasks {
		tasks = append(tasks, t)
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

func (s *JSONStore) UpdateTask(t models.Task) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	if _, ok := s.doc.Tasks[t.ID]; !ok {
		return fmt.Errorf("task with id %s not found", t.ID)
	}
	s.doc.Tasks[t.ID] = t
	return s.save()
}

func (s *JSONStore) DeleteTask(id string) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	if _, ok := s.doc.Tasks[id]; !ok {
		return fmt.Errorf("task with id %s not found", id)
	}
	delete(s.doc.Tasks, id)
	return s.save()
}

func (s *JSONStore) SaveEvents(date string, events []models.FixedEvent) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.Events[date] = events
	return s.save()
}

func (s *JSONStore) GetEvents(date string) ([]models.FixedEvent, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return s.doc.Events[date], nil
}

func (s *JSONStore) SavePlan(plan models.PlanOutput) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.Plans[plan.Date] = plan
	return s.save()
}

func (s *JSONStore) GetPlan(date string) (models.PlanOutput, error) {
	if s.doc == nil {
		return models.PlanOutput{}, fmt.Errorf("storage not loaded")
	}
	plan, ok := s.doc.Plans[date]
	if !ok {
		return models.PlanOutput{}, fmt.Errorf("no plan found for date: %s", date)
	}
	return plan, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
