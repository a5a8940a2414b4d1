package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/nfordyce/daybreak/internal/models"
)

// Engine generates one day's plan from fixed commitments, habits, tasks,
// and gym preferences. It holds no state: every call builds its working
// set in a fresh runContext, so concurrent calls never interfere and
// identical inputs always produce identical output.
type Engine struct{}

func New() *Engine {
	return &Engine{}
}

// lateNightHour is the local hour at (or after) which planning the current
// day collapses into the wind-down fallback.
const lateNightHour = 21

// block is the engine-internal placed unit; start/end are minutes from
// midnight and may exceed 1439 for days that run past midnight.
type block struct {
	id          string
	title       string
	sourceID    string
	start       int
	end         int
	typ         models.BlockType
	locked      bool
	energy      models.EnergyLevel
	category    string
	originalMin int
}

func (b block) duration() int {
	return b.end - b.start
}

func (b block) toModel() models.ScheduledBlock {
	id := b.id
	if id == "" {
		id = uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("%s|%d|%d", b.title, b.start, b.end))).String()
	}
	return models.ScheduledBlock{
		ID:          id,
		Title:       b.title,
		Start:       formatClock(b.start),
		End:         formatClock(b.end),
		Type:        b.typ,
		Locked:      b.locked,
		SourceID:    b.sourceID,
		Energy:      b.energy,
		OriginalMin: b.originalMin,
	}
}

// runContext is the per-call working state: the mutable free-slot set, the
// placed blocks, and the bookkeeping the placer needs (which source ids
// ended when, and what category ran last).
type runContext struct {
	buffer       int
	dayEnd       int
	slots        []slot
	placed       []block
	scheduledEnd map[string]int // source id -> end minutes
	lastCategory string
	unscheduled  []models.UnscheduledItem
}

// place records a movable block and consumes its interval plus the
// trailing buffer from the free-slot set.
func (rc *runContext) place(b block) {
	rc.placed = append(rc.placed, b)
	if b.sourceID != "" {
		rc.scheduledEnd[b.sourceID] = b.end
	}
	if b.category != "" {
		rc.lastCategory = b.category
	}
	rc.slots = removeInterval(rc.slots, b.start, b.end+rc.buffer, rc.buffer)
}

// GeneratePlan is the engine entry point. now should normally be
// time.Now(); tests pass a fixed instant. The input is read-only and the
// returned plan is fully determined by the arguments.
func (e *Engine) GeneratePlan(input models.DailyInput, habits []models.Habit, tasks []models.Task, gym models.GymSettings, prefs models.Preferences, now time.Time) (models.PlanOutput, error) {
	loc := resolveLocation(input.Timezone, prefs.Timezone)
	now = now.In(loc)

	planDate, err := time.ParseInLocation("2006-01-02", input.Date, loc)
	if err != nil {
		return models.PlanOutput{}, fmt.Errorf("invalid plan date %q: %w", input.Date, err)
	}
	sleepStart, err := parseClock(input.SleepStart)
	if err != nil {
		return models.PlanOutput{}, fmt.Errorf("invalid sleep start: %w", err)
	}
	wake, err := parseClock(input.SleepEnd)
	if err != nil {
		return models.PlanOutput{}, fmt.Errorf("invalid sleep end: %w", err)
	}
	for _, ev := range input.FixedEvents {
		if _, err := parseClock(ev.Start); err != nil {
			return models.PlanOutput{}, fmt.Errorf("fixed event %q: %w", ev.Title, err)
		}
		if _, err := parseClock(ev.End); err != nil {
			return models.PlanOutput{}, fmt.Errorf("fixed event %q: %w", ev.Title, err)
		}
	}

	if sameDay(planDate, now) && now.Hour() >= lateNightHour {
		return lateNightPlan(input, now), nil
	}

	buffer := input.Constraints.BufferBetweenBlocksMin
	dayEnd := dayEndFor(wake, sleepStart)

	rc := &runContext{
		buffer:       buffer,
		dayEnd:       dayEnd,
		scheduledEnd: make(map[string]int),
	}
	rc.slots = calculateSlots(wake, dayEnd, input.FixedEvents, buffer, planDate, now)
	rc.slots = reserveDowntime(rc.slots, dayEnd, input.Constraints.ProtectDowntimeMin, buffer)

	queue := buildQueue(habits, tasks, planDate)

	placeGym(rc, gym)
	for _, item := range queue {
		placeItem(rc, item, planDate)
	}

	blocks := lockedBlocks(input.FixedEvents)
	blocks = append(blocks, rc.placed...)
	sort.SliceStable(blocks, func(i, j int) bool { return blocks[i].start < blocks[j].start })

	blocks = fillGaps(blocks, buffer)

	out := models.PlanOutput{
		Date:        input.Date,
		Blocks:      make([]models.ScheduledBlock, 0, len(blocks)),
		Unscheduled: rc.unscheduled,
		GeneratedAt: now,
		Timezone:    input.Timezone,
	}
	for _, b := range blocks {
		out.Blocks = append(out.Blocks, b.toModel())
	}
	if out.Unscheduled == nil {
		out.Unscheduled = []models.UnscheduledItem{}
	}

	awake := dayEnd - wake
	out.Stats = buildStats(blocks, awake)
	out.Explanation = buildExplanation(blocks, out.Unscheduled, input.Constraints)
	out.Suggestions = buildSuggestions(out.Unscheduled, gym)
	return out, nil
}

// lockedBlocks converts fixed events into locked plan blocks verbatim.
// Overlapping events are kept as given; the slot calculator already carved
// around their union, so they can never collide with movable blocks.
func lockedBlocks(events []models.FixedEvent) []block {
	var blocks []block
	for _, ev := range events {
		s, err1 := parseClock(ev.Start)
		e, err2 := parseClock(ev.End)
		if err1 != nil || err2 != nil {
			continue
		}
		if e < s {
			e += 1440
		}
		blocks = append(blocks, block{
			title:  ev.Title,
			start:  s,
			end:    e,
			typ:    blockTypeForEvent(ev.Category),
			locked: true,
		})
	}
	return blocks
}

func blockTypeForEvent(c models.EventCategory) models.BlockType {
	switch c {
	case models.EventWork:
		return models.BlockWork
	case models.EventMeal:
		return models.BlockMeal
	case models.EventCall, models.EventAppointment:
		return models.BlockOther
	default:
		return models.BlockOther
	}
}

func resolveLocation(names ...string) *time.Location {
	for _, name := range names {
		if name == "" {
			continue
		}
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	return time.Local
}
