package engine

import (
	"sort"
	"time"

	"github.com/nfordyce/daybreak/internal/models"
)

// slot is an ephemeral free interval, half-open [start, end) in minutes
// from midnight. Slots exist only for the duration of one GeneratePlan
// call and are consumed as blocks are placed.
type slot struct {
	start int
	end   int
}

func (s slot) duration() int { return s.end - s.start }

// startDelayMin is how far ahead of "now" the first movable block may
// start when planning the current day.
const startDelayMin = 15

// dayEndFor resolves where the plannable day ends in engine minutes. A
// sleep start at or before wake time means sleep begins after midnight, so
// the day runs past 24:00.
func dayEndFor(wake, sleepStart int) int {
	if sleepStart <= wake {
		return sleepStart + 1440
	}
	return sleepStart
}

// calculateSlots derives the day's initial free intervals: wake to sleep,
// minus every fixed event padded by the buffer on both sides. When the plan
// is for today and the morning is already gone, availability starts at
// now + startDelayMin instead of wake time.
func calculateSlots(wake, dayEnd int, events []models.FixedEvent, buffer int, planDate time.Time, now time.Time) []slot {
	availStart := wake
	if sameDay(planDate, now) {
		nowMin := now.Hour()*60 + now.Minute()
		if nowMin > wake {
			availStart = nowMin + startDelayMin
		}
	}

	type interval struct{ start, end int }
	var busy []interval
	for _, ev := range events {
		s, err1 := parseClock(ev.Start)
		e, err2 := parseClock(ev.End)
		if err1 != nil || err2 != nil {
			continue
		}
		if e < s {
			e += 1440
		}
		busy = append(busy, interval{s - buffer, e + buffer})
	}
	sort.Slice(busy, func(i, j int) bool { return busy[i].start < busy[j].start })

	var slots []slot
	cur := availStart
	for _, b := range busy {
		if b.start > cur {
			slots = append(slots, slot{cur, minInt(b.start, dayEnd)})
		}
		if b.end > cur {
			cur = b.end
		}
	}
	if cur < dayEnd {
		slots = append(slots, slot{cur, dayEnd})
	}

	// Discard slivers that cannot hold anything once buffers apply.
	kept := slots[:0]
	for _, s := range slots {
		if s.end > dayEnd {
			s.end = dayEnd
		}
		if s.duration() >= 2*buffer {
			kept = append(kept, s)
		}
	}
	return kept
}

// reserveDowntime removes the protected wind-down interval immediately
// before sleep so no movable block can land there. dayEnd is the sleep
// start in engine minutes.
func reserveDowntime(slots []slot, dayEnd, downtimeMin, buffer int) []slot {
	if downtimeMin <= 0 {
		return slots
	}
	return removeInterval(slots, dayEnd-downtimeMin, dayEnd, buffer)
}

// removeInterval carves [start, end) out of the free-slot set. Overlapping
// slots are trimmed, split, or dropped; fragments shorter than twice the
// buffer are discarded. The result is re-sorted by start. This is the only
// mutation ever applied to the slot set.
func removeInterval(slots []slot, start, end, buffer int) []slot {
	if end <= start {
		return slots
	}
	out := make([]slot, 0, len(slots)+1)
	for _, s := range slots {
		if s.end <= start || s.start >= end {
			out = append(out, s)
			continue
		}
		if before := (slot{s.start, start}); before.duration() >= 2*buffer {
			out = append(out, before)
		}
		if after := (slot{end, s.end}); after.duration() >= 2*buffer {
			out = append(out, after)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].start < out[j].start })
	return out
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
