package engine

import (
	"sort"

	"github.com/nfordyce/daybreak/internal/models"
)

// fillGaps converts idle time between scheduled blocks into break, personal
// and focus blocks. It runs once, after every locked and movable block is
// in place, and never touches the free-slot set. Gaps are measured from the
// running end of all earlier blocks, not the nearest neighbor, so an event
// nested inside a longer locked block never opens a false gap. Inserted
// blocks are unlocked and sit flush against each other; the buffer is
// honored only against the preceding block, since fillers absorb idle time
// rather than compete for it.
func fillGaps(blocks []block, buffer int) []block {
	if len(blocks) == 0 {
		return blocks
	}
	var fillers []block
	busyEnd := blocks[0].end
	afterSleep := blocks[0].typ == models.BlockSleep
	for _, next := range blocks[1:] {
		free := next.start - busyEnd - buffer
		if !afterSleep && next.typ != models.BlockSleep && free >= 15 {
			fillers = append(fillers, bandFillers(busyEnd+buffer, free)...)
		}
		if next.end >= busyEnd {
			busyEnd = next.end
			afterSleep = next.typ == models.BlockSleep
		}
	}

	blocks = append(blocks, fillers...)
	sort.SliceStable(blocks, func(i, j int) bool { return blocks[i].start < blocks[j].start })
	return blocks
}

// bandFillers carves free minutes into filler blocks by duration band.
func bandFillers(start, free int) []block {
	switch {
	case free < 45:
		return []block{{
			title: "Break", start: start, end: start + free,
			typ: models.BlockBreak, energy: models.EnergyLow,
		}}
	case free < 90:
		return []block{{
			title: "Personal Time", start: start, end: start + free,
			typ: models.BlockPersonal, energy: models.EnergyLow,
		}}
	default:
		focus := int(0.6 * float64(free))
		if focus > 60 {
			focus = 60
		}
		breakEnd := start + focus + 15
		out := []block{
			{title: "Focus Time", start: start, end: start + focus,
				typ: models.BlockFocus, energy: models.EnergyHigh},
			{title: "Break", start: start + focus, end: breakEnd,
				typ: models.BlockBreak, energy: models.EnergyLow},
		}
		if rest := free - focus - 15; rest >= 20 {
			out = append(out, block{
				title: "Personal Time", start: breakEnd, end: breakEnd + rest,
				typ: models.BlockPersonal, energy: models.EnergyLow,
			})
		}
		return out
	}
}
