package engine

import (
	"github.com/nfordyce/daybreak/internal/models"
)

// gym window scoring bounds, in hours.
var gymWindows = map[models.GymWindow]struct{ lo, hi, nearLo, nearHi int }{
	models.GymAfterWork: {17, 20, 15, 21},
	models.GymMorning:   {6, 10, 5, 12},
}

// placeGym places at most one workout block. Disabled settings mean no gym
// block, ever.
func placeGym(rc *runContext, gym models.GymSettings) {
	if !gym.Enabled {
		return
	}

	win, ok := gymWindows[gym.PreferredWindow]
	if !ok {
		win = gymWindows[models.GymAfterWork]
	}

	bestIdx := -1
	var bestScore float64
	for i, s := range rc.slots {
		if s.duration() < gym.MinimumMin+rc.buffer {
			continue
		}
		score := float64(s.duration()) / 10
		hour := hourOf(s.start)
		switch {
		case hour >= win.lo && hour <= win.hi:
			score += 100
		case hour >= win.nearLo && hour <= win.nearHi:
			score += 50
		}
		if s.end > rc.dayEnd-gym.BedtimeBufferMin {
			score -= 50
		}
		if bestIdx == -1 || score > bestScore {
			bestIdx = i
			bestScore = score
		}
	}
	if bestIdx == -1 {
		return
	}

	chosen := rc.slots[bestIdx]
	duration := minInt(gym.DefaultMin, chosen.duration()-rc.buffer)
	start := chosen.start
	end := start + duration

	rc.place(block{
		title:       "Workout",
		start:       start,
		end:         end,
		typ:         models.BlockGym,
		energy:      models.EnergyHigh,
		category:    "fitness",
		originalMin: gym.DefaultMin,
	})
}
