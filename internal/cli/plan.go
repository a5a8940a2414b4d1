package cli

import (
	"fmt"
	"time"
)

type PlanCmd struct {
	Date string `arg:"" help:"Date to plan (YYYY-MM-DD, 'today' or 'tomorrow')." default:"today"`
	Yes  bool   `short:"y" help:"Accept the plan without prompting."`
}

func (c *PlanCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	if existing, err := ctx.Store.GetPlan(date); err == nil && len(existing.Blocks) > 0 && !c.Yes {
		ok, err := confirm(fmt.Sprintf("A plan already exists for %s. Replace it? [y/N]: ", date))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Plan generation cancelled.")
			return nil
		}
		fmt.Println()
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	habits, err := ctx.Store.GetAllHabits(false)
	if err != nil {
		return fmt.Errorf("failed to get habits: %w", err)
	}
	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}

	input, err := buildDailyInput(ctx, date, settings)
	if err != nil {
		return err
	}

	plan, err := ctx.Engine.GeneratePlan(input, habits, tasks, settings.Gym, preferences(settings), time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("Proposed plan for %s:\n\n", date)
	renderPlan(plan)

	if !c.Yes {
		ok, err := confirm("\nAccept this plan? [y/N]: ")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Plan discarded. You can adjust habits, tasks or events and regenerate.")
			return nil
		}
	}

	if err := ctx.Store.SavePlan(plan); err != nil {
		return err
	}
	fmt.Println("Plan accepted and saved!")
	return nil
}
