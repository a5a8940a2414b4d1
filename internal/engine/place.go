package engine

import (
	"sort"
	"strings"
	"time"

	"github.com/nfordyce/daybreak/internal/models"
)

// businessWindows are hour constraints implied by what the item is, read
// from its title. These are hard filters, not preferences: an errand
// cannot run at midnight no matter how well the slot scores.
var businessWindows = []struct {
	keywords []string
	lo, hi   int
}{
	{[]string{"errand", "shopping", "groceries", "store"}, 8, 20},
	{[]string{"bank", "clinic", "doctor", "dentist", "pharmacy"}, 9, 16},
	{[]string{"call", "meeting"}, 8, 18},
}

// placeItem schedules one queue item into the best surviving slot, or
// records why it could not be placed.
func placeItem(rc *runContext, it queueItem, planDate time.Time) {
	earliest, missing := dependencyFloor(rc, it)
	if len(missing) > 0 {
		rc.unscheduled = append(rc.unscheduled, models.UnscheduledItem{
			Title:    it.title,
			Reason:   "Dependencies not met: " + strings.Join(missing, ", "),
			SourceID: it.id,
			Priority: it.priority,
		})
		return
	}

	minViable := it.minViableMin
	if minViable <= 0 || minViable > it.durationMin {
		minViable = it.durationMin
	}

	explicitMin := -1
	if it.explicitTime != "" {
		if m, err := parseClock(it.explicitTime); err == nil {
			explicitMin = m
		}
	}

	bestIdx := -1
	bestStart := 0
	var bestScore float64
	for i, s := range rc.slots {
		start := maxInt(s.start, earliest)
		avail := s.end - start
		if avail < minViable+rc.buffer {
			continue
		}
		if !passesHardFilters(it, start, explicitMin) {
			continue
		}
		score := scoreSlot(rc, it, slot{start, s.end}, explicitMin, planDate)
		if bestIdx == -1 || score > bestScore {
			bestIdx = i
			bestStart = start
			bestScore = score
		}
	}

	if bestIdx == -1 {
		rc.unscheduled = append(rc.unscheduled, models.UnscheduledItem{
			Title:    it.title,
			Reason:   "No available time slot with sufficient duration",
			SourceID: it.id,
			Priority: it.priority,
		})
		return
	}

	chosen := rc.slots[bestIdx]
	duration := minInt(it.durationMin, chosen.end-bestStart-rc.buffer)
	typ := models.BlockTask
	if it.isHabit {
		typ = models.BlockHabit
	}
	rc.place(block{
		sourceID:    it.id,
		title:       it.title,
		start:       bestStart,
		end:         bestStart + duration,
		typ:         typ,
		energy:      it.energy,
		category:    it.category,
		originalMin: it.durationMin,
	})
}

// dependencyFloor returns the earliest allowed start given the item's
// scheduled dependencies, and the list of dependencies that are not on the
// plan (which makes the item unschedulable).
func dependencyFloor(rc *runContext, it queueItem) (int, []string) {
	earliest := 0
	var missing []string
	for _, dep := range it.dependsOn {
		end, ok := rc.scheduledEnd[dep]
		if !ok {
			missing = append(missing, dep)
			continue
		}
		earliest = maxInt(earliest, end)
	}
	sort.Strings(missing)
	return earliest, missing
}

func passesHardFilters(it queueItem, startMin, explicitMin int) bool {
	hour := hourOf(startMin)

	// A window named in the title is a commitment, not a preference.
	if w, ok := titleWindow(it.title); ok {
		if !hourInWindow(hour, w) {
			return false
		}
	} else if isNightTagged(it.title) && hour < 21 {
		return false
	}

	if explicitMin >= 0 {
		diff := startMin - explicitMin
		if diff < 0 {
			diff = -diff
		}
		if diff > 60 {
			return false
		}
	} else if it.flexibility == models.FlexFixed && it.window != models.WindowNone {
		if !hourInWindow(hour, it.window) {
			return false
		}
	}

	title := strings.ToLower(it.title)
	for _, bw := range businessWindows {
		for _, kw := range bw.keywords {
			if strings.Contains(title, kw) {
				if hour < bw.lo || hour >= bw.hi {
					return false
				}
				break
			}
		}
	}
	return true
}

// scoreSlot ranks a surviving (slot, start) candidate. The slot passed in
// is already clamped to the effective start.
func scoreSlot(rc *runContext, it queueItem, s slot, explicitMin int, planDate time.Time) float64 {
	hour := hourOf(s.start)
	var score float64

	// Preferred-window alignment.
	if explicitMin >= 0 {
		diff := s.start - explicitMin
		if diff < 0 {
			diff = -diff
		}
		switch {
		case diff <= 15:
			score += 30
		case diff <= 30:
			score += 20
		case diff <= 60:
			score += 10
		default:
			score -= 30
		}
	} else if it.window != models.WindowNone {
		if hourInWindow(hour, it.window) {
			score += 30
		} else {
			score -= 30
		}
	}

	// Energy alignment against the circadian table.
	slotEnergy := hourEnergy(hour)
	gap := energyRank(it.energy) - energyRank(slotEnergy)
	switch {
	case gap == 0:
		score += 25
	case gap == 1 || gap == -1:
		score += 12.5
	case it.energy == models.EnergyHigh && slotEnergy == models.EnergyLow:
		score -= 25
	}

	// Duration fit: a snug slot beats a cavernous one.
	if it.durationMin > 0 {
		ratio := float64(s.duration()) / float64(it.durationMin)
		switch {
		case ratio <= 1.3:
			score += 20
		case ratio <= 2.0:
			score += 10
		case ratio > 3.0:
			score -= 5
		}
	}

	// Context continuity with the previously placed block.
	if it.category != "" && it.category == rc.lastCategory {
		score += 15
	}

	// Comfortable slack on top of the required buffer.
	if s.duration()-it.durationMin >= 2*rc.buffer {
		score += 10
	}

	// Deadline urgency mirrors the queue ordering tiers.
	if it.dueDate != "" {
		if due, err := time.Parse("2006-01-02", it.dueDate); err == nil {
			days := int(due.Sub(planDate).Hours() / 24)
			switch {
			case days < 0:
				score += 50
			case days == 0:
				score += 30
			case days <= 2:
				score += 15
			}
		}
	}

	// Late evening is for winding down unless the item says otherwise.
	if hour >= 22 {
		if isNightTagged(it.title) {
			score += 5
		} else {
			score -= 30
		}
	}

	// Early-hour tiebreak keeps equal candidates deterministic and biased
	// toward the front of the day.
	if hour < 15 {
		score += float64(15 - hour)
	}

	return score
}
