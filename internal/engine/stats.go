package engine

import (
	"fmt"
	"strings"

	"github.com/nfordyce/daybreak/internal/models"
)

func buildStats(blocks []block, awakeMinutes int) models.PlanStats {
	var stats models.PlanStats
	used := 0
	for _, b := range blocks {
		if b.typ == models.BlockSleep {
			continue
		}
		used += b.end - b.start
		switch b.typ {
		case models.BlockWork:
			stats.WorkHours += float64(b.end-b.start) / 60
		case models.BlockGym:
			stats.GymMinutes += b.end - b.start
		case models.BlockHabit:
			stats.HabitsPlaced++
		case models.BlockTask:
			stats.TasksPlaced++
			if b.energy == models.EnergyHigh {
				stats.FocusBlocks++
			}
		}
	}
	stats.FreeMinutes = maxInt(0, awakeMinutes-used)
	return stats
}

func buildExplanation(blocks []block, unscheduled []models.UnscheduledItem, constraints models.Constraints) string {
	var parts []string

	var habits, tasks []string
	for _, b := range blocks {
		switch b.typ {
		case models.BlockGym:
			parts = append(parts, fmt.Sprintf("Workout at %s (%d min).", formatClock(b.start), b.end-b.start))
		case models.BlockHabit:
			habits = append(habits, b.title)
		case models.BlockTask:
			tasks = append(tasks, b.title)
		}
	}
	if len(habits) > 0 {
		parts = append(parts, "Habits scheduled: "+strings.Join(habits, ", ")+".")
	}
	if len(tasks) > 0 {
		parts = append(parts, "Tasks scheduled: "+strings.Join(tasks, ", ")+".")
	}
	parts = append(parts, fmt.Sprintf("Kept %d-minute buffers between blocks and %d minutes of wind-down before sleep.",
		constraints.BufferBetweenBlocksMin, constraints.ProtectDowntimeMin))
	if n := len(unscheduled); n > 0 {
		parts = append(parts, fmt.Sprintf("%d item(s) could not be placed today.", n))
	}
	return strings.Join(parts, " ")
}

func buildSuggestions(unscheduled []models.UnscheduledItem, gym models.GymSettings) []string {
	var suggestions []string

	if len(unscheduled) >= 3 {
		suggestions = append(suggestions, fmt.Sprintf(
			"%d items did not fit today; consider deferring the lowest-priority ones or shortening fixed commitments.", len(unscheduled)))
	}
	for _, u := range unscheduled {
		if u.Priority >= 4 {
			suggestions = append(suggestions, fmt.Sprintf(
				"High-priority item %q did not fit; book it into tomorrow's first free slot.", u.Title))
			break
		}
	}
	if gym.Enabled {
		suggestions = append(suggestions, fmt.Sprintf(
			"Stay consistent with training: target %d sessions this week.", gym.DaysPerWeek))
	}
	return suggestions
}
