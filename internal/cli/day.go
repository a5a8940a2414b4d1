package cli

import "fmt"

type DayCmd struct {
	Date string `arg:"" help:"Date to show (YYYY-MM-DD, 'today' or 'tomorrow')." default:"today"`
}

func (c *DayCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	plan, err := ctx.Store.GetPlan(date)
	if err != nil {
		return fmt.Errorf("no plan found for %s, run 'daybreak plan %s' first", date, date)
	}

	fmt.Printf("Plan for %s:\n\n", date)
	if len(plan.Blocks) == 0 {
		fmt.Println("  No blocks scheduled")
		return nil
	}
	renderPlan(plan)

	s := plan.Stats
	fmt.Printf("\nWork: %.1fh  Gym: %dm  Habits: %d  Tasks: %d  Free: %dm\n",
		s.WorkHours, s.GymMinutes, s.HabitsPlaced, s.TasksPlaced, s.FreeMinutes)
	return nil
}
