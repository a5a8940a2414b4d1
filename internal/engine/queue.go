package engine

import (
	"sort"
	"time"

	"github.com/nfordyce/daybreak/internal/models"
)

// queueItem is the engine's unified view of a habit or task awaiting
// placement.
type queueItem struct {
	id           string
	title        string
	durationMin  int
	minViableMin int
	priority     int
	category     string
	energy       models.EnergyLevel
	window       models.Window
	explicitTime string
	flexibility  models.Flexibility
	dueDate      string // YYYY-MM-DD, tasks only
	dependsOn    []string
	isHabit      bool
	score        int
}

// habitDueToday decides whether a habit belongs on this day's plan. Weekly
// and x-per-week habits are pinned to deterministic weekdays derived from a
// stable hash of the habit id, so the same habit lands on the same day(s)
// every run.
func habitDueToday(h models.Habit, weekday int) bool {
	switch h.Recurrence.Type {
	case models.RecurrenceDaily:
		return true
	case models.RecurrenceSpecificDays:
		for _, d := range h.Recurrence.Days {
			if d == weekday {
				return true
			}
		}
		return false
	case models.RecurrenceWeekly:
		return stableHash(h.ID)%7 == weekday
	case models.RecurrenceXPerWeek:
		n := h.Recurrence.TimesPerWeek
		if n <= 0 {
			return false
		}
		if n > 7 {
			n = 7
		}
		base := stableHash(h.ID)
		step := 7 / n
		for i := 0; i < n; i++ {
			if (base+i*step)%7 == weekday {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// compositeScore ranks queue items before placement. Higher scores are
// placed first.
func compositeScore(it queueItem, planDate time.Time) int {
	score := it.priority * 50

	if it.dueDate != "" {
		if due, err := time.Parse("2006-01-02", it.dueDate); err == nil {
			days := int(due.Sub(planDate).Hours() / 24)
			switch {
			case days < 0:
				score += 150
			case days == 0:
				score += 100
			case days <= 2:
				score += 50
			}
		}
	}

	switch it.window {
	case models.WindowMorning:
		score += 30
	case models.WindowExplicit:
		score += 50
	}

	switch it.flexibility {
	case models.FlexFixed:
		score += 40
	case models.FlexSemi:
		score += 20
	}

	return score
}

// buildQueue assembles the placement queue for the day: habits due today
// plus every active incomplete task, dependency-free items first in
// descending composite score, dependent tasks after in topological order.
func buildQueue(habits []models.Habit, tasks []models.Task, planDate time.Time) []queueItem {
	weekday := int(planDate.Weekday())

	var free []queueItem
	for _, h := range habits {
		if !h.Active || h.Archived || !habitDueToday(h, weekday) {
			continue
		}
		free = append(free, queueItem{
			id:           h.ID,
			title:        h.Name,
			durationMin:  h.DurationMin,
			minViableMin: h.MinViableMin,
			priority:     h.Priority,
			category:     h.Category,
			energy:       h.Energy,
			window:       h.PreferredWindow,
			explicitTime: h.ExplicitTime,
			flexibility:  h.Flexibility,
			isHabit:      true,
		})
	}

	var dependent []queueItem
	for _, t := range orderByDependencies(tasks) {
		it := queueItem{
			id:           t.ID,
			title:        t.Title,
			durationMin:  t.EstimatedMin,
			priority:     t.Priority,
			category:     t.Category,
			energy:       t.Energy,
			window:       t.PreferredWindow,
			explicitTime: t.ExplicitTime,
			dueDate:      t.DueDate,
			dependsOn:    t.DependsOn,
			flexibility:  models.FlexFlexible,
		}
		if len(t.DependsOn) > 0 {
			dependent = append(dependent, it)
		} else {
			free = append(free, it)
		}
	}

	for i := range free {
		free[i].score = compositeScore(free[i], planDate)
	}
	for i := range dependent {
		dependent[i].score = compositeScore(dependent[i], planDate)
	}

	sort.SliceStable(free, func(i, j int) bool { return free[i].score > free[j].score })
	return append(free, dependent...)
}

// orderByDependencies returns active incomplete tasks in an order where no
// task precedes one of its dependencies (Kahn's algorithm). Tasks caught in
// a cycle, or depending on unknown ids, keep their input order at the end;
// placement will refuse them with a dependency reason.
func orderByDependencies(tasks []models.Task) []models.Task {
	var active []models.Task
	for _, t := range tasks {
		if t.Active && !t.Completed {
			active = append(active, t)
		}
	}

	present := make(map[string]int, len(active))
	for i, t := range active {
		present[t.ID] = i
	}

	indegree := make([]int, len(active))
	dependents := make(map[string][]int)
	for i, t := range active {
		for _, dep := range t.DependsOn {
			if _, ok := present[dep]; ok {
				indegree[i]++
				dependents[dep] = append(dependents[dep], i)
			}
		}
	}

	var queue []int
	for i := range active {
		if indegree[i] == 0 {
			queue = append(queue, i)
		}
	}

	var order []models.Task
	visited := make([]bool, len(active))
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		visited[i] = true
		order = append(order, active[i])
		for _, j := range dependents[active[i].ID] {
			indegree[j]--
			if indegree[j] == 0 {
				queue = append(queue, j)
			}
		}
	}

	for i, t := range active {
		if !visited[i] {
			order = append(order, t)
		}
	}
	return order
}
