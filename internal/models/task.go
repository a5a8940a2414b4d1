package models

// Task is a one-off piece of work. Unlike habits, tasks can carry a due
// date and dependencies on other tasks.
type Task struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	EstimatedMin    int         `json:"estimated_min"`
	DueDate         string      `json:"due_date,omitempty"` // YYYY-MM-DD
	Priority        int         `json:"priority"`           // 1-5, higher is more important
	Category        string      `json:"category,omitempty"`
	Energy          EnergyLevel `json:"energy"`
	PreferredWindow Window      `json:"preferred_window,omitempty"`
	ExplicitTime    string      `json:"explicit_time,omitempty"` // HH:MM
	DependsOn       []string    `json:"depends_on,omitempty"`    // task IDs that must be scheduled first
	Completed       bool        `json:"completed"`
	Active          bool        `json:"active"`

	// Splittable tasks may be broken into chunks by a future planner
	// revision; the engine currently schedules them as a single block.
	Splittable bool `json:"splittable,omitempty"`
	ChunkMin   int  `json:"chunk_min,omitempty"`
}
