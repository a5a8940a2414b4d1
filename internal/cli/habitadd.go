package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/nfordyce/daybreak/internal/models"
)

type HabitAddCmd struct {
	Name       string `arg:"" optional:"" help:"Habit name. Omit to fill in a form."`
	Duration   int    `short:"d" help:"Duration in minutes." default:"30"`
	Recurrence string `short:"r" help:"Recurrence (daily|weekly|specific_days|x_per_week)." default:"daily"`
	Days       string `help:"Comma-separated weekdays for specific_days."`
	Times      int    `help:"Occurrences per week for x_per_week." default:"3"`
	Window     string `short:"w" help:"Preferred window (morning|afternoon|evening|explicit)."`
	At         string `help:"Explicit time (HH:MM), implies explicit window."`
	Priority   int    `short:"p" help:"Priority (1-5, higher is more important)." default:"3"`
	Flex       string `help:"Flexibility (fixed|semi_flex|flexible)." default:"flexible"`
	MinViable  int    `help:"Smallest acceptable duration in minutes."`
	Energy     string `short:"e" help:"Energy demand (low|medium|high)." default:"medium"`
	Category   string `help:"Free-form category label."`
}

func (c *HabitAddCmd) Validate() error {
	if c.Priority < 1 || c.Priority > 5 {
		return fmt.Errorf("priority must be between 1 and 5")
	}
	return nil
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if c.Name == "" {
		if err := c.runForm(); err != nil {
			return err
		}
	}

	recType := models.RecurrenceType(c.Recurrence)
	switch recType {
	case models.RecurrenceDaily, models.RecurrenceWeekly, models.RecurrenceSpecificDays, models.RecurrenceXPerWeek:
	default:
		return fmt.Errorf("invalid recurrence type: %s", c.Recurrence)
	}

	rec := models.Recurrence{Type: recType}
	if recType == models.RecurrenceSpecificDays {
		if c.Days == "" {
			return fmt.Errorf("specific_days recurrence requires --days")
		}
		days, err := parseDaysList(c.Days)
		if err != nil {
			return err
		}
		rec.Days = days
	}
	if recType == models.RecurrenceXPerWeek {
		rec.TimesPerWeek = c.Times
	}

	window := models.Window(c.Window)
	if c.At != "" {
		window = models.WindowExplicit
	}

	habit := models.Habit{
		ID:              uuid.New().String(),
		Name:            c.Name,
		DurationMin:     c.Duration,
		Recurrence:      rec,
		PreferredWindow: window,
		ExplicitTime:    c.At,
		Priority:        c.Priority,
		Flexibility:     models.Flexibility(c.Flex),
		MinViableMin:    c.MinViable,
		Energy:          models.EnergyLevel(c.Energy),
		Category:        c.Category,
		Active:          true,
	}

	if err := ctx.Store.AddHabit(habit); err != nil {
		return err
	}
	fmt.Printf("Added habit: %s (ID: %s)\n", habit.Name, habit.ID)
	return nil
}

// runForm collects the fields interactively when no name argument was given.
func (c *HabitAddCmd) runForm() error {
	duration := strconv.Itoa(c.Duration)
	priority := strconv.Itoa(c.Priority)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit name").
				Value(&c.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("habit name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Duration (min)").
				Value(&duration).
				Validate(func(s string) error {
					i, err := strconv.Atoi(s)
					if err != nil {
						return err
					}
					if i <= 0 {
						return fmt.Errorf("duration must be a positive number of minutes")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Recurrence").
				Options(
					huh.NewOption("Daily", "daily"),
					huh.NewOption("Weekly", "weekly"),
					huh.NewOption("Specific days", "specific_days"),
					huh.NewOption("N times per week", "x_per_week"),
				).
				Value(&c.Recurrence),
			huh.NewSelect[string]().
				Title("Preferred window").
				Options(
					huh.NewOption("Any", ""),
					huh.NewOption("Morning", "morning"),
					huh.NewOption("Afternoon", "afternoon"),
					huh.NewOption("Evening", "evening"),
				).
				Value(&c.Window),
			huh.NewInput().
				Title("Priority (1-5)").
				Value(&priority).
				Validate(func(s string) error {
					i, err := strconv.Atoi(s)
					if err != nil {
						return err
					}
					if i < 1 || i > 5 {
						return fmt.Errorf("priority must be 1-5")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Energy demand").
				Options(
					huh.NewOption("Low", "low"),
					huh.NewOption("Medium", "medium"),
					huh.NewOption("High", "high"),
				).
				Value(&c.Energy),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	c.Duration, _ = strconv.Atoi(duration)
	c.Priority, _ = strconv.Atoi(priority)
	return nil
}
