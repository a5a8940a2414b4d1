package storage

import (
	"path/filepath"
	"testing"

	"github.com/nfordyce/daybreak/internal/models"
)

func setupTestJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "daybreak.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	return store
}

func TestJSONStoreInitAndReload(t *testing.T) {
	store := setupTestJSONStore(t)

	if err := store.Init(); err == nil {
		t.Error("expected error on double init, got nil")
	}

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}
	if settings.SleepStart != "23:00" || settings.BufferMin != 10 {
		t.Errorf("unexpected default settings: %+v", settings)
	}

	settings.BufferMin = 15
	settings.Gym.Enabled = true
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("failed to save settings: %v", err)
	}

	reopened := NewJSONStore(store.GetConfigPath())
	if err := reopened.Load(); err != nil {
		t.Fatalf("failed to reload store: %v", err)
	}
	got, err := reopened.GetSettings()
	if err != nil {
		t.Fatalf("failed to get settings after reload: %v", err)
	}
	if got.BufferMin != 15 || !got.Gym.Enabled {
		t.Errorf("settings did not survive reload: %+v", got)
	}
}

func TestJSONStoreHabitLifecycle(t *testing.T) {
	store := setupTestJSONStore(t)

	habit := models.Habit{
		ID:          "habit-1",
		Name:        "Morning meditation",
		DurationMin: 15,
		Recurrence:  models.Recurrence{Type: models.RecurrenceDaily},
		Priority:    3,
		Energy:      models.EnergyLow,
		Active:      true,
	}
	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}

	got, err := store.GetHabit("habit-1")
	if err != nil {
		t.Fatalf("failed to get habit: %v", err)
	}
	if got.Name != habit.Name || got.DurationMin != 15 {
		t.Errorf("habit round-tripped as %+v", got)
	}

	if err := store.ArchiveHabit("habit-1"); err != nil {
		t.Fatalf("failed to archive habit: %v", err)
	}

	active, err := store.GetAllHabits(false)
	if err != nil {
		t.Fatalf("failed to list habits: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("archived habit still listed: %+v", active)
	}

	all, err := store.GetAllHabits(true)
	if err != nil {
		t.Fatalf("failed to list all habits: %v", err)
	}
	if len(all) != 1 || !all[0].Archived {
		t.Errorf("expected one archived habit, got %+v", all)
	}

	if err := store.ArchiveHabit("missing"); err == nil {
		t.Error("expected error archiving unknown habit, got nil")
	}
}

func TestJSONStoreTaskLifecycle(t *testing.T) {
	store := setupTestJSONStore(t)

	task := models.Task{
		ID:           "task-1",
		Title:        "Write report",
		EstimatedMin: 90,
		Priority:     4,
		DependsOn:    []string{"task-0"},
		Active:       true,
	}
	if err := store.AddTask(task); err != nil {
		t.Fatalf("failed to add task: %v", err)
	}

	got, err := store.GetTask("task-1")
	if err != nil {
		t.Fatalf("failed to get task: %v", err)
	}
	if len(got.DependsOn) != 1 || got.DependsOn[0] != "task-0" {
		t.Errorf("dependencies round-tripped as %v", got.DependsOn)
	}

	got.Completed = true
	if err := store.UpdateTask(got); err != nil {
		t.Fatalf("failed to update task: %v", err)
	}

	if err := store.DeleteTask("task-1"); err != nil {
		t.Fatalf("failed to delete task: %v", err)
	}
	if _, err := store.GetTask("task-1"); err == nil {
		t.Error("expected error when getting deleted task, got nil")
	}
	if err := store.DeleteTask("task-1"); err == nil {
		t.Error("expected error deleting task twice, got nil")
	}
}

func TestJSONStoreEventsAndPlans(t *testing.T) {
	store := setupTestJSONStore(t)

	events := []models.FixedEvent{
		{Title: "Work", Start: "09:00", End: "17:00", Category: models.EventWork},
		{Title: "Lunch", Start: "12:00", End: "13:00", Category: models.EventMeal},
	}
	if err := store.SaveEvents("2024-01-15", events); err != nil {
		t.Fatalf("failed to save events: %v", err)
	}

	got, err := store.GetEvents("2024-01-15")
	if err != nil {
		t.Fatalf("failed to get events: %v", err)
	}
	if len(got) != 2 || got[0].Title != "Work" || got[1].Category != models.EventMeal {
		t.Errorf("events round-tripped as %+v", got)
	}

	empty, err := store.GetEvents("2024-01-16")
	if err != nil {
		t.Fatalf("failed to get events for empty date: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected no events for unknown date, got %+v", empty)
	}

	plan := models.PlanOutput{
		Date: "2024-01-15",
		Blocks: []models.ScheduledBlock{
			{ID: "b1", Title: "Work", Start: "09:00", End: "17:00", Type: models.BlockWork, Locked: true},
		},
		Explanation: "test plan",
	}
	if err := store.SavePlan(plan); err != nil {
		t.Fatalf("failed to save plan: %v", err)
	}

	stored, err := store.GetPlan("2024-01-15")
	if err != nil {
		t.Fatalf("failed to get plan: %v", err)
	}
	if len(stored.Blocks) != 1 || stored.Explanation != "test plan" {
		t.Errorf("plan round-tripped as %+v", stored)
	}

	if _, err := store.GetPlan("2024-01-16"); err == nil {
		t.Error("expected error for missing plan, got nil")
	}
}
