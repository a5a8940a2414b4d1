package cli

import "fmt"

type HabitListCmd struct {
	All bool `help:"Include archived habits."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(c.All)
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No habits found")
		return nil
	}

	fmt.Println("Habits:")
	for _, h := range habits {
		status := "active"
		if h.Archived {
			status = "archived"
		} else if !h.Active {
			status = "paused"
		}

		fmt.Printf("  [%s] %s - %dm (%s, priority %d, %s energy)\n",
			status, h.Name, h.DurationMin, formatRecurrence(h.Recurrence), h.Priority, h.Energy)
		if h.ExplicitTime != "" {
			fmt.Printf("      At: %s\n", h.ExplicitTime)
		} else if h.PreferredWindow != "" {
			fmt.Printf("      Window: %s\n", h.PreferredWindow)
		}
		fmt.Printf("      ID: %s\n", h.ID)
	}
	return nil
}
