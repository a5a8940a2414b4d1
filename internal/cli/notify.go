package cli

import (
	"fmt"
	"time"

	"github.com/nfordyce/daybreak/internal/notifier"
)

// NotifyCmd is meant to run from a cron or timer every minute. It checks
// the saved plan for blocks starting within the configured lead time.
type NotifyCmd struct {
	DryRun bool `help:"Print notifications to stdout instead of sending them."`
}

func (c *NotifyCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if !settings.NotificationsEnabled {
		if c.DryRun {
			fmt.Println("Notifications are disabled in settings.")
		}
		return nil
	}

	now := time.Now()
	plan, err := ctx.Store.GetPlan(now.Format("2006-01-02"))
	if err != nil {
		if c.DryRun {
			fmt.Println("No plan found for today.")
		}
		return nil
	}

	currentMinutes := now.Hour()*60 + now.Minute()
	n := notifier.New()

	for _, block := range plan.Blocks {
		if block.Completed {
			continue
		}
		start := clockToMinutes(block.Start)
		if currentMinutes != start-settings.NotifyLeadMin {
			continue
		}

		var msg string
		if settings.NotifyLeadMin == 0 {
			msg = fmt.Sprintf("Starting now: %s (%s)", block.Title, block.Start)
		} else {
			msg = fmt.Sprintf("Upcoming: %s starts in %d min (%s)", block.Title, settings.NotifyLeadMin, block.Start)
		}

		if c.DryRun {
			fmt.Println("[DryRun] " + msg)
			continue
		}
		if err := n.Notify(msg); err != nil {
			fmt.Printf("Failed to send notification: %v\n", err)
		}
	}
	return nil
}
