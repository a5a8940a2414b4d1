package cli

import "fmt"

type TaskDoneCmd struct {
	ID string `arg:"" help:"ID of the task to mark completed."`
}

func (c *TaskDoneCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	task, err := ctx.Store.GetTask(c.ID)
	if err != nil {
		return err
	}
	if task.Completed {
		fmt.Printf("Task already completed: %s\n", task.Title)
		return nil
	}

	task.Completed = true
	if err := ctx.Store.UpdateTask(task); err != nil {
		return err
	}
	fmt.Printf("Completed task: %s\n", task.Title)
	return nil
}
