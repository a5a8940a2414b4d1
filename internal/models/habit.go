package models

type RecurrenceType string

const (
	RecurrenceDaily        RecurrenceType = "daily"
	RecurrenceWeekly       RecurrenceType = "weekly"
	RecurrenceSpecificDays RecurrenceType = "specific_days"
	RecurrenceXPerWeek     RecurrenceType = "x_per_week"
)

// Recurrence describes how often a habit should appear on the plan.
// Days uses Go weekday numbering (0=Sunday..6=Saturday) and applies to
// specific_days. TimesPerWeek applies to x_per_week.
type Recurrence struct {
	Type         RecurrenceType `json:"type"`
	Days         []int          `json:"days,omitempty"`
	TimesPerWeek int            `json:"times_per_week,omitempty"`
}

type Window string

const (
	WindowNone      Window = ""
	WindowMorning   Window = "morning"
	WindowAfternoon Window = "afternoon"
	WindowEvening   Window = "evening"
	WindowExplicit  Window = "explicit"
)

type Flexibility string

const (
	FlexFixed    Flexibility = "fixed"
	FlexSemi     Flexibility = "semi_flex"
	FlexFlexible Flexibility = "flexible"
)

type EnergyLevel string

const (
	EnergyLow    EnergyLevel = "low"
	EnergyMedium EnergyLevel = "medium"
	EnergyHigh   EnergyLevel = "high"
)

// Habit is a recurring practice competing for free time on the daily plan.
type Habit struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	DurationMin     int         `json:"duration_min"`
	Recurrence      Recurrence  `json:"recurrence"`
	PreferredWindow Window      `json:"preferred_window,omitempty"`
	ExplicitTime    string      `json:"explicit_time,omitempty"` // HH:MM, used with WindowExplicit
	Priority        int         `json:"priority"`                // 1-5, higher is more important
	Flexibility     Flexibility `json:"flexibility"`
	MinViableMin    int         `json:"min_viable_min,omitempty"` // 0 means DurationMin is the floor
	Energy          EnergyLevel `json:"energy"`
	Category        string      `json:"category,omitempty"`
	Active          bool        `json:"active"`
	Archived        bool        `json:"archived,omitempty"`
}
