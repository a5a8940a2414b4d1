package cli

import "fmt"

type HabitArchiveCmd struct {
	ID string `arg:"" help:"ID of the habit to archive."`
}

func (c *HabitArchiveCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabit(c.ID)
	if err != nil {
		return err
	}
	if err := ctx.Store.ArchiveHabit(c.ID); err != nil {
		return err
	}
	fmt.Printf("Archived habit: %s\n", habit.Name)
	return nil
}
