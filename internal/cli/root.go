package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/nfordyce/daybreak/internal/engine"
	"github.com/nfordyce/daybreak/internal/models"
	"github.com/nfordyce/daybreak/internal/storage"
)

type Context struct {
	Store  storage.Provider
	Engine *engine.Engine
}

// resolveDate accepts "today", "tomorrow" or YYYY-MM-DD and returns the
// normalized date string.
func resolveDate(arg string) (string, error) {
	switch arg {
	case "today":
		return time.Now().Format("2006-01-02"), nil
	case "tomorrow":
		return time.Now().AddDate(0, 0, 1).Format("2006-01-02"), nil
	default:
		d, err := time.Parse("2006-01-02", arg)
		if err != nil {
			return "", fmt.Errorf("invalid date format, use YYYY-MM-DD, 'today' or 'tomorrow': %w", err)
		}
		return d.Format("2006-01-02"), nil
	}
}

func confirm(prompt string) (bool, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes", nil
}

func parseDaysList(s string) ([]int, error) {
	dayMap := map[string]int{
		"sun": 0, "sunday": 0,
		"mon": 1, "monday": 1,
		"tue": 2, "tuesday": 2,
		"wed": 3, "wednesday": 3,
		"thu": 4, "thursday": 4,
		"fri": 5, "friday": 5,
		"sat": 6, "saturday": 6,
	}

	var days []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if d, ok := dayMap[part]; ok {
			days = append(days, d)
			continue
		}
		num, err := strconv.Atoi(part)
		if err != nil || num < 0 || num > 6 {
			return nil, fmt.Errorf("invalid weekday: %s", part)
		}
		days = append(days, num)
	}
	return days, nil
}

func formatRecurrence(rec models.Recurrence) string {
	switch rec.Type {
	case models.RecurrenceDaily:
		return "daily"
	case models.RecurrenceWeekly:
		return "weekly"
	case models.RecurrenceSpecificDays:
		names := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
		var days []string
		for _, d := range rec.Days {
			if d >= 0 && d <= 6 {
				days = append(days, names[d])
			}
		}
		return "on " + strings.Join(days, ",")
	case models.RecurrenceXPerWeek:
		return fmt.Sprintf("%dx per week", rec.TimesPerWeek)
	default:
		return "unknown"
	}
}

// buildDailyInput assembles the engine's read-only day description from
// stored settings and the fixed events saved for that date.
func buildDailyInput(ctx *Context, date string, settings storage.Settings) (models.DailyInput, error) {
	events, err := ctx.Store.GetEvents(date)
	if err != nil {
		return models.DailyInput{}, fmt.Errorf("failed to get events: %w", err)
	}
	return models.DailyInput{
		Date:        date,
		Timezone:    settings.Timezone,
		SleepStart:  settings.SleepStart,
		SleepEnd:    settings.SleepEnd,
		FixedEvents: events,
		Constraints: models.Constraints{
			BufferBetweenBlocksMin: settings.BufferMin,
			ProtectDowntimeMin:     settings.DowntimeMin,
		},
	}, nil
}

func preferences(settings storage.Settings) models.Preferences {
	return models.Preferences{
		Timezone:             settings.Timezone,
		NotificationsEnabled: settings.NotificationsEnabled,
		NotifyLeadMin:        settings.NotifyLeadMin,
	}
}

func renderPlan(plan models.PlanOutput) {
	if plan.IsLateNightMode {
		fmt.Println("It's late. Here's a wind-down plan instead of a full day:")
		fmt.Println()
	}

	for _, b := range plan.Blocks {
		marker := " "
		if b.Locked {
			marker = "*"
		}
		fmt.Printf("%s %s–%s  %-28s [%s]\n", marker, b.Start, b.End, b.Title, b.Type)
	}

	if len(plan.Unscheduled) > 0 {
		fmt.Println("\nCould not schedule:")
		for _, u := range plan.Unscheduled {
			fmt.Printf("  - %s: %s\n", u.Title, u.Reason)
		}
	}

	if plan.Explanation != "" {
		fmt.Printf("\n%s\n", plan.Explanation)
	}
	for _, s := range plan.Suggestions {
		fmt.Printf("Tip: %s\n", s)
	}
}
