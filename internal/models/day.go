package models

type EventCategory string

const (
	EventWork        EventCategory = "work"
	EventMeal        EventCategory = "meal"
	EventAppointment EventCategory = "appointment"
	EventCall        EventCategory = "call"
	EventOther       EventCategory = "other"
)

// FixedEvent is an immovable commitment. It becomes a locked block on the
// plan verbatim; the engine only carves free time around it.
type FixedEvent struct {
	Title    string        `json:"title"`
	Start    string        `json:"start"` // HH:MM
	End      string        `json:"end"`   // HH:MM
	Category EventCategory `json:"category"`
}

// Constraints are the day-level spacing rules.
type Constraints struct {
	BufferBetweenBlocksMin int `json:"buffer_between_blocks_min"`
	ProtectDowntimeMin     int `json:"protect_downtime_min"`
}

// DailyInput is everything fixed about one calendar day. Owned by the
// caller; the engine treats it as read-only.
type DailyInput struct {
	Date        string       `json:"date"`     // YYYY-MM-DD
	Timezone    string       `json:"timezone"` // IANA name
	SleepStart  string       `json:"sleep_start"`
	SleepEnd    string       `json:"sleep_end"`
	FixedEvents []FixedEvent `json:"fixed_events"`
	Constraints Constraints  `json:"constraints"`
}

type GymWindow string

const (
	GymAfterWork GymWindow = "after_work"
	GymMorning   GymWindow = "morning"
)

// GymSettings configures the single optional workout block per day.
// WarmupMin and CooldownMin are informational; they are not scheduled
// separately.
type GymSettings struct {
	Enabled          bool      `json:"enabled"`
	DaysPerWeek      int       `json:"days_per_week"`
	DefaultMin       int       `json:"default_min"`
	MinimumMin       int       `json:"minimum_min"`
	PreferredWindow  GymWindow `json:"preferred_window"`
	BedtimeBufferMin int       `json:"bedtime_buffer_min"`
	WarmupMin        int       `json:"warmup_min,omitempty"`
	CooldownMin      int       `json:"cooldown_min,omitempty"`
}

// Preferences carries user-level settings that ride along with plan
// generation. Only the timezone and notification fields are read; nothing
// here influences the placement algorithm.
type Preferences struct {
	Timezone             string `json:"timezone,omitempty"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
	NotifyLeadMin        int    `json:"notify_lead_min,omitempty"`
}
