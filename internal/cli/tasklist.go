package cli

import "fmt"

type TaskListCmd struct {
	All bool `help:"Include completed tasks."`
}

func (c *TaskListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	fmt.Println("Tasks:")
	for _, t := range tasks {
		if t.Completed && !c.All {
			continue
		}

		status := "open"
		if t.Completed {
			status = "done"
		}

		fmt.Printf("  [%s] %s - %dm (priority %d, %s energy)\n",
			status, t.Title, t.EstimatedMin, t.Priority, t.Energy)
		if t.DueDate != "" {
			fmt.Printf("      Due: %s\n", t.DueDate)
		}
		if len(t.DependsOn) > 0 {
			fmt.Printf("      Depends on: %v\n", t.DependsOn)
		}
		fmt.Printf("      ID: %s\n", t.ID)
	}
	return nil
}
