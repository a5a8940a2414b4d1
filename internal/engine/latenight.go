package engine

import (
	"time"

	"github.com/nfordyce/daybreak/internal/models"
)

// lateNightPlan replaces normal planning once the evening is too far gone
// to optimize: a short review, a wind-down, and whatever fixed commitments
// are still ahead. Nothing is reported as unscheduled; the day is over.
func lateNightPlan(input models.DailyInput, now time.Time) models.PlanOutput {
	nowMin := now.Hour()*60 + now.Minute()

	reviewStart := nowMin + 5
	blocks := []block{
		{
			title: "Evening Review", start: reviewStart, end: reviewStart + 15,
			typ: models.BlockPersonal, energy: models.EnergyLow,
		},
		{
			title: "Wind Down", start: reviewStart + 15, end: reviewStart + 45,
			typ: models.BlockPersonal, energy: models.EnergyLow,
		},
	}

	for _, ev := range input.FixedEvents {
		s, err1 := parseClock(ev.Start)
		e, err2 := parseClock(ev.End)
		if err1 != nil || err2 != nil {
			continue
		}
		// Events that cross midnight are conservatively kept.
		if s > nowMin || e < s {
			if e < s {
				e += 1440
			}
			blocks = append(blocks, block{
				title: ev.Title, start: s, end: e,
				typ: blockTypeForEvent(ev.Category), locked: true,
			})
		}
	}

	out := models.PlanOutput{
		Date:            input.Date,
		Unscheduled:     []models.UnscheduledItem{},
		Explanation:     "It is late in the evening, so today's plan is a wind-down routine instead of a full schedule.",
		Suggestions:     []string{"Review tomorrow's task list before bed.", "Prepare your workspace for the morning."},
		GeneratedAt:     now,
		Timezone:        input.Timezone,
		IsLateNightMode: true,
		Stats:           models.PlanStats{EnergyProfile: "100% low energy"},
	}
	for _, b := range blocks {
		out.Blocks = append(out.Blocks, b.toModel())
	}
	return out
}
