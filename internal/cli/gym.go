package cli

import (
	"fmt"

	"github.com/nfordyce/daybreak/internal/models"
)

type GymCmd struct {
	Enable        bool   `help:"Enable workout scheduling." xor:"toggle"`
	Disable       bool   `help:"Disable workout scheduling." xor:"toggle"`
	Days          int    `help:"Target workout days per week."`
	Duration      int    `short:"d" help:"Default workout duration in minutes."`
	Minimum       int    `help:"Smallest workout worth doing, in minutes."`
	Window        string `short:"w" help:"Preferred window (after_work|morning)."`
	BedtimeBuffer int    `help:"Minutes a workout must end before sleep."`
}

func (c *GymCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	changed := false
	if c.Enable {
		settings.Gym.Enabled = true
		changed = true
	}
	if c.Disable {
		settings.Gym.Enabled = false
		changed = true
	}
	if c.Days > 0 {
		settings.Gym.DaysPerWeek = c.Days
		changed = true
	}
	if c.Duration > 0 {
		settings.Gym.DefaultMin = c.Duration
		changed = true
	}
	if c.Minimum > 0 {
		settings.Gym.MinimumMin = c.Minimum
		changed = true
	}
	if c.Window != "" {
		switch models.GymWindow(c.Window) {
		case models.GymAfterWork, models.GymMorning:
			settings.Gym.PreferredWindow = models.GymWindow(c.Window)
			changed = true
		default:
			return fmt.Errorf("invalid gym window: %s", c.Window)
		}
	}
	if c.BedtimeBuffer > 0 {
		settings.Gym.BedtimeBufferMin = c.BedtimeBuffer
		changed = true
	}

	if changed {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return err
		}
		fmt.Println("Gym settings updated.")
	}

	g := settings.Gym
	state := "disabled"
	if g.Enabled {
		state = "enabled"
	}
	fmt.Printf("Workouts: %s\n", state)
	fmt.Printf("  Target: %d days/week, %dm default (%dm minimum)\n", g.DaysPerWeek, g.DefaultMin, g.MinimumMin)
	fmt.Printf("  Window: %s, ending at least %dm before sleep\n", g.PreferredWindow, g.BedtimeBufferMin)
	return nil
}
