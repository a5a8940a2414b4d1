package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nfordyce/daybreak/internal/models"
)

type TaskAddCmd struct {
	Title     string `arg:"" help:"Task title."`
	Duration  int    `short:"d" help:"Estimated duration in minutes." required:""`
	Due       string `help:"Due date (YYYY-MM-DD, 'today' or 'tomorrow')."`
	Priority  int    `short:"p" help:"Priority (1-5, higher is more important)." default:"3"`
	Category  string `help:"Free-form category label."`
	Energy    string `short:"e" help:"Energy demand (low|medium|high)." default:"medium"`
	Window    string `short:"w" help:"Preferred window (morning|afternoon|evening)."`
	At        string `help:"Explicit time (HH:MM), implies explicit window."`
	DependsOn string `help:"Comma-separated IDs of tasks that must be scheduled first."`
	Chunk     int    `help:"Chunk size in minutes for splittable tasks."`
}

func (c *TaskAddCmd) Validate() error {
	if c.Priority < 1 || c.Priority > 5 {
		return fmt.Errorf("priority must be between 1 and 5")
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be a positive number of minutes")
	}
	return nil
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	due := ""
	if c.Due != "" {
		var err error
		due, err = resolveDate(c.Due)
		if err != nil {
			return err
		}
	}

	if c.At != "" {
		if _, err := time.Parse("15:04", c.At); err != nil {
			return fmt.Errorf("invalid explicit time %q, use HH:MM", c.At)
		}
	}

	var deps []string
	if c.DependsOn != "" {
		for _, id := range strings.Split(c.DependsOn, ",") {
			id = strings.TrimSpace(id)
			if id == "" {
				continue
			}
			if _, err := ctx.Store.GetTask(id); err != nil {
				return fmt.Errorf("dependency not found: %s", id)
			}
			deps = append(deps, id)
		}
	}

	window := models.Window(c.Window)
	if c.At != "" {
		window = models.WindowExplicit
	}

	task := models.Task{
		ID:              uuid.New().String(),
		Title:           c.Title,
		EstimatedMin:    c.Duration,
		DueDate:         due,
		Priority:        c.Priority,
		Category:        c.Category,
		Energy:          models.EnergyLevel(c.Energy),
		PreferredWindow: window,
		ExplicitTime:    c.At,
		DependsOn:       deps,
		Active:          true,
		Splittable:      c.Chunk > 0,
		ChunkMin:        c.Chunk,
	}

	if err := ctx.Store.AddTask(task); err != nil {
		return err
	}
	fmt.Printf("Added task: %s (ID: %s)\n", task.Title, task.ID)
	return nil
}
