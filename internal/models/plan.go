package models

import "time"

type BlockType string

const (
	BlockWork     BlockType = "work"
	BlockGym      BlockType = "gym"
	BlockHabit    BlockType = "habit"
	BlockTask     BlockType = "task"
	BlockMeal     BlockType = "meal"
	BlockBreak    BlockType = "break"
	BlockPersonal BlockType = "personal"
	BlockFocus    BlockType = "focus"
	BlockSleep    BlockType = "sleep"
	BlockOther    BlockType = "other"
)

// ScheduledBlock is one placed unit of the day. Locked blocks come from
// fixed events and are never moved or removed by the engine.
type ScheduledBlock struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Start     string      `json:"start"` // HH:MM
	End       string      `json:"end"`   // HH:MM
	Type      BlockType   `json:"type"`
	Locked    bool        `json:"locked"`
	Completed bool        `json:"completed"`
	SourceID  string      `json:"source_id,omitempty"` // habit or task ID
	Energy    EnergyLevel `json:"energy,omitempty"`
	// OriginalMin is the requested duration before any truncation to fit
	// the chosen slot.
	OriginalMin int `json:"original_min,omitempty"`
}

// UnscheduledItem records a queued habit or task that never found a slot.
type UnscheduledItem struct {
	Title    string `json:"title"`
	Reason   string `json:"reason"`
	SourceID string `json:"source_id,omitempty"`
	Priority int    `json:"priority"`
}

type PlanStats struct {
	WorkHours     float64 `json:"work_hours"`
	GymMinutes    int     `json:"gym_minutes"`
	HabitsPlaced  int     `json:"habits_placed"`
	TasksPlaced   int     `json:"tasks_placed"`
	FocusBlocks   int     `json:"focus_blocks"` // high-energy task blocks
	FreeMinutes   int     `json:"free_minutes"`
	EnergyProfile string  `json:"energy_profile,omitempty"`
}

// PlanOutput is the engine's sole product: one day's timeline plus
// everything that could not be placed and why.
type PlanOutput struct {
	Date            string            `json:"date"`
	Blocks          []ScheduledBlock  `json:"blocks"`
	Unscheduled     []UnscheduledItem `json:"unscheduled"`
	Explanation     string            `json:"explanation"`
	Stats           PlanStats         `json:"stats"`
	Suggestions     []string          `json:"suggestions"`
	GeneratedAt     time.Time         `json:"generated_at"`
	Timezone        string            `json:"timezone"`
	IsLateNightMode bool              `json:"is_late_night_mode"`
}
