package engine

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/nfordyce/daybreak/internal/models"
)

func baseInput(date string) models.DailyInput {
	return models.DailyInput{
		Date:       date,
		Timezone:   "UTC",
		SleepStart: "23:30",
		SleepEnd:   "07:30",
		Constraints: models.Constraints{
			BufferBetweenBlocksMin: 10,
			ProtectDowntimeMin:     30,
		},
	}
}

func mustPlan(t *testing.T, input models.DailyInput, habits []models.Habit, tasks []models.Task, gym models.GymSettings, now time.Time) models.PlanOutput {
	t.Helper()
	plan, err := New().GeneratePlan(input, habits, tasks, gym, models.Preferences{}, now)
	if err != nil {
		t.Fatalf("GeneratePlan failed: %v", err)
	}
	return plan
}

func toMin(t *testing.T, clock string) int {
	t.Helper()
	m, err := parseClock(clock)
	if err != nil {
		t.Fatalf("bad clock %q: %v", clock, err)
	}
	return m
}

// morningOf returns a fixed instant well before the plan date, so today's
// clamping and late-night mode never trigger.
func dayBefore(t *testing.T, date string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("bad date %q: %v", date, err)
	}
	return d.AddDate(0, 0, -1).Add(9 * time.Hour)
}

func TestGeneratePlan_Deterministic(t *testing.T) {
	input := baseInput("2024-01-15")
	input.FixedEvents = []models.FixedEvent{
		{Title: "Work", Start: "09:30", End: "18:00", Category: models.EventWork},
	}
	habits := []models.Habit{
		{ID: "h-meditate", Name: "Meditation", DurationMin: 15, Priority: 3, Active: true,
			Recurrence: models.Recurrence{Type: models.RecurrenceDaily}, PreferredWindow: models.WindowMorning,
			Flexibility: models.FlexFlexible, Energy: models.EnergyLow},
		{ID: "h-journal", Name: "Journaling", DurationMin: 20, Priority: 2, Active: true,
			Recurrence: models.Recurrence{Type: models.RecurrenceXPerWeek, TimesPerWeek: 3},
			Flexibility: models.FlexFlexible, Energy: models.EnergyLow},
	}
	tasks := []models.Task{
		{ID: "t-report", Title: "Draft report", EstimatedMin: 60, Priority: 4, Active: true, Energy: models.EnergyHigh},
	}
	now := dayBefore(t, "2024-01-15")

	first := mustPlan(t, input, habits, tasks, models.GymSettings{Enabled: true, DefaultMin: 60, MinimumMin: 30, DaysPerWeek: 3, PreferredWindow: models.GymAfterWork, BedtimeBufferMin: 60}, now)
	second := mustPlan(t, input, habits, tasks, models.GymSettings{Enabled: true, DefaultMin: 60, MinimumMin: 30, DaysPerWeek: 3, PreferredWindow: models.GymAfterWork, BedtimeBufferMin: 60}, now)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("two runs with identical inputs differ:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestGeneratePlan_NoOverlapAndBuffer(t *testing.T) {
	input := baseInput("2024-01-15")
	input.FixedEvents = []models.FixedEvent{
		{Title: "Work", Start: "09:30", End: "18:00", Category: models.EventWork},
		{Title: "Dinner", Start: "19:00", End: "20:00", Category: models.EventMeal},
	}
	var habits []models.Habit
	for i, name := range []string{"Meditation", "Reading", "Stretching", "Journaling"} {
		habits = append(habits, models.Habit{
			ID: name, Name: name, DurationMin: 20 + 5*i, Priority: 3, Active: true,
			Recurrence:  models.Recurrence{Type: models.RecurrenceDaily},
			Flexibility: models.FlexFlexible, Energy: models.EnergyMedium,
		})
	}
	plan := mustPlan(t, input, habits, nil, models.GymSettings{}, dayBefore(t, "2024-01-15"))

	// Movable scheduled blocks (habit/task/gym) must not overlap anything
	// and must keep the buffer between one another. Gap fillers absorb
	// idle time by design and sit flush, so they are checked for overlap
	// only.
	movable := func(b models.ScheduledBlock) bool {
		return b.Type == models.BlockHabit || b.Type == models.BlockTask || b.Type == models.BlockGym
	}

	for i := 0; i+1 < len(plan.Blocks); i++ {
		cur, next := plan.Blocks[i], plan.Blocks[i+1]
		curEnd := toMin(t, cur.End)
		nextStart := toMin(t, next.Start)
		if !cur.Locked || !next.Locked {
			if nextStart < curEnd {
				t.Errorf("blocks overlap: %s %s-%s then %s %s-%s", cur.Title, cur.Start, cur.End, next.Title, next.Start, next.End)
			}
		}
		if movable(cur) && movable(next) {
			if nextStart-curEnd < input.Constraints.BufferBetweenBlocksMin {
				t.Errorf("buffer violated between %s (ends %s) and %s (starts %s)", cur.Title, cur.End, next.Title, next.Start)
			}
		}
	}
}

func TestGeneratePlan_NestedEventsKeepFillersOutside(t *testing.T) {
	input := baseInput("2024-01-15")
	input.FixedEvents = []models.FixedEvent{
		{Title: "Work", Start: "09:30", End: "18:00", Category: models.EventWork},
		{Title: "Standup", Start: "10:00", End: "10:30", Category: models.EventCall},
		{Title: "Dinner", Start: "19:00", End: "20:00", Category: models.EventMeal},
	}
	plan := mustPlan(t, input, nil, nil, models.GymSettings{}, dayBefore(t, "2024-01-15"))

	// No unlocked block may overlap any locked block, even though the
	// standup sits inside the work day.
	for _, b := range plan.Blocks {
		if b.Locked {
			continue
		}
		bs, be := toMin(t, b.Start), toMin(t, b.End)
		for _, locked := range plan.Blocks {
			if !locked.Locked {
				continue
			}
			ls, le := toMin(t, locked.Start), toMin(t, locked.End)
			if bs < le && ls < be {
				t.Errorf("block %q %s-%s overlaps locked %q %s-%s",
					b.Title, b.Start, b.End, locked.Title, locked.Start, locked.End)
			}
		}
	}
}

func TestGeneratePlan_DependencyOrdering(t *testing.T) {
	input := baseInput("2024-01-15")
	tasks := []models.Task{
		{ID: "t-b", Title: "Publish post", EstimatedMin: 30, Priority: 3, Active: true, DependsOn: []string{"t-a"}},
		{ID: "t-a", Title: "Write post", EstimatedMin: 45, Priority: 3, Active: true},
	}
	plan := mustPlan(t, input, nil, tasks, models.GymSettings{}, dayBefore(t, "2024-01-15"))

	var aEnd, bStart = -1, -1
	for _, b := range plan.Blocks {
		switch b.SourceID {
		case "t-a":
			aEnd = toMin(t, b.End)
		case "t-b":
			bStart = toMin(t, b.Start)
		}
	}
	if aEnd == -1 || bStart == -1 {
		t.Fatalf("expected both tasks scheduled, got blocks %+v unscheduled %+v", plan.Blocks, plan.Unscheduled)
	}
	if bStart < aEnd {
		t.Errorf("dependent task starts at %d before dependency ends at %d", bStart, aEnd)
	}
}

func TestGeneratePlan_UnmetDependency(t *testing.T) {
	input := baseInput("2024-01-15")
	tasks := []models.Task{
		{ID: "t-x", Title: "Ship release", EstimatedMin: 30, Priority: 5, Active: true, DependsOn: []string{"missing-id"}},
	}
	plan := mustPlan(t, input, nil, tasks, models.GymSettings{}, dayBefore(t, "2024-01-15"))

	for _, b := range plan.Blocks {
		if b.SourceID == "t-x" {
			t.Fatalf("task with missing dependency was scheduled at %s", b.Start)
		}
	}
	if len(plan.Unscheduled) != 1 {
		t.Fatalf("expected 1 unscheduled item, got %d", len(plan.Unscheduled))
	}
	if !strings.Contains(plan.Unscheduled[0].Reason, "Dependencies not met") {
		t.Errorf("unexpected reason: %q", plan.Unscheduled[0].Reason)
	}
}

func TestGeneratePlan_DowntimeProtected(t *testing.T) {
	input := baseInput("2024-01-15")
	input.Constraints.ProtectDowntimeMin = 60
	var habits []models.Habit
	for _, name := range []string{"A", "B", "C", "D", "E", "F"} {
		habits = append(habits, models.Habit{
			ID: name, Name: "Habit " + name, DurationMin: 90, Priority: 3, Active: true,
			Recurrence: models.Recurrence{Type: models.RecurrenceDaily}, Flexibility: models.FlexFlexible,
		})
	}
	plan := mustPlan(t, input, habits, nil, models.GymSettings{}, dayBefore(t, "2024-01-15"))

	cutoff := toMin(t, "22:30")
	for _, b := range plan.Blocks {
		if b.Locked {
			continue
		}
		if toMin(t, b.Start) >= cutoff {
			t.Errorf("block %q starts at %s inside protected downtime", b.Title, b.Start)
		}
	}
}

func TestGeneratePlan_GymDisabledMeansNoGymBlock(t *testing.T) {
	input := baseInput("2024-01-15")
	plan := mustPlan(t, input, nil, nil, models.GymSettings{Enabled: false, DefaultMin: 60}, dayBefore(t, "2024-01-15"))
	for _, b := range plan.Blocks {
		if b.Type == models.BlockGym {
			t.Errorf("gym block present despite gym disabled: %+v", b)
		}
	}
}

func TestGeneratePlan_LateNightFallback(t *testing.T) {
	input := baseInput("2024-01-15")
	input.FixedEvents = []models.FixedEvent{
		{Title: "Late call", Start: "22:30", End: "23:00", Category: models.EventCall},
		{Title: "Morning standup", Start: "09:00", End: "09:15", Category: models.EventCall},
	}
	habits := []models.Habit{
		{ID: "h", Name: "Reading", DurationMin: 30, Priority: 3, Active: true,
			Recurrence: models.Recurrence{Type: models.RecurrenceDaily}, Flexibility: models.FlexFlexible},
	}
	now := time.Date(2024, 1, 15, 21, 30, 0, 0, time.UTC)
	plan := mustPlan(t, input, habits, nil, models.GymSettings{Enabled: true, DefaultMin: 60}, now)

	if !plan.IsLateNightMode {
		t.Fatal("expected late-night mode")
	}
	if len(plan.Unscheduled) != 0 {
		t.Errorf("late-night plan should have no unscheduled items, got %d", len(plan.Unscheduled))
	}
	var titles []string
	for _, b := range plan.Blocks {
		titles = append(titles, b.Title)
		if b.Type == models.BlockHabit || b.Type == models.BlockTask || b.Type == models.BlockGym {
			t.Errorf("ordinary block %q present in late-night plan", b.Title)
		}
	}
	joined := strings.Join(titles, ",")
	if !strings.Contains(joined, "Evening Review") || !strings.Contains(joined, "Wind Down") {
		t.Errorf("missing wind-down blocks: %v", titles)
	}
	if !strings.Contains(joined, "Late call") {
		t.Errorf("future fixed event dropped from late-night plan: %v", titles)
	}
	if strings.Contains(joined, "Morning standup") {
		t.Errorf("past fixed event kept in late-night plan: %v", titles)
	}
}

func TestGeneratePlan_FutureDateAnchorsToWakeTime(t *testing.T) {
	input := baseInput("2024-01-16")
	habits := []models.Habit{
		{ID: "h", Name: "Stretching", DurationMin: 15, Priority: 3, Active: true,
			Recurrence: models.Recurrence{Type: models.RecurrenceDaily}, Flexibility: models.FlexFlexible},
	}
	// Current time is mid-day the day before; must not shift the plan.
	now := time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC)
	plan := mustPlan(t, input, habits, nil, models.GymSettings{}, now)

	for _, b := range plan.Blocks {
		if b.SourceID == "h" {
			if b.Start != "07:30" {
				t.Errorf("expected first habit at wake time 07:30, got %s", b.Start)
			}
			return
		}
	}
	t.Fatal("habit not scheduled")
}

func TestGeneratePlan_TodayAnchorsToNow(t *testing.T) {
	input := baseInput("2024-01-15")
	habits := []models.Habit{
		{ID: "h", Name: "Stretching", DurationMin: 15, Priority: 3, Active: true,
			Recurrence: models.Recurrence{Type: models.RecurrenceDaily}, Flexibility: models.FlexFlexible},
	}
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	plan := mustPlan(t, input, habits, nil, models.GymSettings{}, now)

	floor := toMin(t, "12:15")
	for _, b := range plan.Blocks {
		if b.Locked {
			continue
		}
		if toMin(t, b.Start) < floor {
			t.Errorf("block %q starts at %s, before now+15m", b.Title, b.Start)
		}
	}
}

// The reference Monday: work day with dinner, two habits, and an
// after-work gym preference.
func TestGeneratePlan_MondayScenario(t *testing.T) {
	input := baseInput("2024-01-15") // a Monday
	input.FixedEvents = []models.FixedEvent{
		{Title: "Work", Start: "09:30", End: "18:00", Category: models.EventWork},
		{Title: "Dinner", Start: "19:00", End: "20:00", Category: models.EventMeal},
	}
	habits := []models.Habit{
		{ID: "h-meditate", Name: "Meditation", DurationMin: 15, Priority: 3, Active: true,
			Recurrence: models.Recurrence{Type: models.RecurrenceDaily}, PreferredWindow: models.WindowMorning,
			Flexibility: models.FlexFlexible, Energy: models.EnergyLow},
		{ID: "h-read", Name: "Reading", DurationMin: 30, Priority: 2, Active: true,
			Recurrence: models.Recurrence{Type: models.RecurrenceDaily}, PreferredWindow: models.WindowEvening,
			Flexibility: models.FlexFlexible, Energy: models.EnergyLow},
	}
	gym := models.GymSettings{
		Enabled: true, DaysPerWeek: 3, DefaultMin: 60, MinimumMin: 30,
		PreferredWindow: models.GymAfterWork, BedtimeBufferMin: 60,
	}
	plan := mustPlan(t, input, habits, nil, gym, dayBefore(t, "2024-01-15"))

	var meditation, reading, workout *models.ScheduledBlock
	for i := range plan.Blocks {
		b := &plan.Blocks[i]
		switch {
		case b.SourceID == "h-meditate":
			meditation = b
		case b.SourceID == "h-read":
			reading = b
		case b.Type == models.BlockGym:
			workout = b
		}
	}

	if meditation == nil {
		t.Fatalf("meditation not scheduled: %+v", plan.Unscheduled)
	}
	if toMin(t, meditation.End) > toMin(t, "09:20") {
		t.Errorf("meditation should finish before work buffer (09:20), got %s-%s", meditation.Start, meditation.End)
	}

	if workout == nil {
		t.Fatalf("workout not scheduled: %+v", plan.Unscheduled)
	}
	if toMin(t, workout.Start) < toMin(t, "18:10") || toMin(t, workout.End) > toMin(t, "18:50") {
		t.Errorf("workout expected within 18:10-18:50, got %s-%s", workout.Start, workout.End)
	}

	if reading == nil {
		t.Fatalf("reading not scheduled: %+v", plan.Unscheduled)
	}
	if toMin(t, reading.Start) < toMin(t, "20:10") {
		t.Errorf("reading expected at or after 20:10, got %s", reading.Start)
	}
}

func TestGeneratePlan_InvalidInput(t *testing.T) {
	e := New()
	now := time.Date(2024, 1, 14, 9, 0, 0, 0, time.UTC)

	input := baseInput("2024-01-15")
	input.Date = "not-a-date"
	if _, err := e.GeneratePlan(input, nil, nil, models.GymSettings{}, models.Preferences{}, now); err == nil {
		t.Error("expected error for invalid date")
	}

	input = baseInput("2024-01-15")
	input.SleepStart = "25:00"
	if _, err := e.GeneratePlan(input, nil, nil, models.GymSettings{}, models.Preferences{}, now); err == nil {
		t.Error("expected error for invalid sleep start")
	}

	input = baseInput("2024-01-15")
	input.FixedEvents = []models.FixedEvent{{Title: "Bad", Start: "9", End: "10:00"}}
	if _, err := e.GeneratePlan(input, nil, nil, models.GymSettings{}, models.Preferences{}, now); err == nil {
		t.Error("expected error for malformed fixed event time")
	}
}

func TestGeneratePlan_EmptyDayStillValid(t *testing.T) {
	input := baseInput("2024-01-15")
	// Wall-to-wall work leaves no usable slots.
	input.FixedEvents = []models.FixedEvent{
		{Title: "Crunch", Start: "07:30", End: "23:00", Category: models.EventWork},
	}
	habits := []models.Habit{
		{ID: "h", Name: "Reading", DurationMin: 30, Priority: 3, Active: true,
			Recurrence: models.Recurrence{Type: models.RecurrenceDaily}, Flexibility: models.FlexFlexible},
	}
	plan := mustPlan(t, input, habits, nil, models.GymSettings{}, dayBefore(t, "2024-01-15"))

	if len(plan.Unscheduled) != 1 {
		t.Fatalf("expected the habit unscheduled, got %+v", plan.Unscheduled)
	}
	if plan.Unscheduled[0].Reason != "No available time slot with sufficient duration" {
		t.Errorf("unexpected reason: %q", plan.Unscheduled[0].Reason)
	}
}
