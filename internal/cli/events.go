package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nfordyce/daybreak/internal/models"
	"github.com/nfordyce/daybreak/internal/parser"
)

type EventsAddCmd struct {
	Text    string `arg:"" help:"Free-text commitments, e.g. 'Work 9:30am-6pm; Lunch 12-1'."`
	Date    string `help:"Date the events belong to." default:"today"`
	Replace bool   `help:"Replace existing events for the date instead of appending."`
}

func (c *EventsAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	result := parser.ParseCommitments(c.Text)
	if len(result.Events) == 0 {
		fmt.Println("No events recognized.")
		for _, text := range result.UnparsedText {
			fmt.Printf("  Could not parse: %q\n", text)
		}
		return nil
	}

	events := result.Events
	if !c.Replace {
		existing, err := ctx.Store.GetEvents(date)
		if err != nil {
			return fmt.Errorf("failed to get events: %w", err)
		}
		events = append(existing, events...)
	}

	warnOverlaps(events)

	if err := ctx.Store.SaveEvents(date, events); err != nil {
		return err
	}

	fmt.Printf("Saved %d event(s) for %s:\n", len(result.Events), date)
	for _, ev := range result.Events {
		fmt.Printf("  %s–%s  %s [%s]\n", ev.Start, ev.End, ev.Title, ev.Category)
	}
	for _, text := range result.UnparsedText {
		fmt.Printf("Could not parse: %q\n", text)
	}
	return nil
}

// warnOverlaps flags overlapping fixed events. The planner carves around
// their union rather than rejecting them, so this is advisory only.
func warnOverlaps(events []models.FixedEvent) {
	for i := 0; i < len(events); i++ {
		for j := i + 1; j < len(events); j++ {
			s1, e1 := eventMinutes(events[i])
			s2, e2 := eventMinutes(events[j])
			if s1 < e2 && s2 < e1 {
				fmt.Printf("Warning: %q and %q overlap\n", events[i].Title, events[j].Title)
			}
		}
	}
}

func eventMinutes(ev models.FixedEvent) (int, int) {
	s := clockToMinutes(ev.Start)
	e := clockToMinutes(ev.End)
	if e < s {
		e += 24 * 60
	}
	return s, e
}

func clockToMinutes(clock string) int {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return h*60 + m
}

type EventsListCmd struct {
	Date string `arg:"" help:"Date to list (YYYY-MM-DD, 'today' or 'tomorrow')." default:"today"`
}

func (c *EventsListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	events, err := ctx.Store.GetEvents(date)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		fmt.Printf("No events for %s\n", date)
		return nil
	}

	fmt.Printf("Events for %s:\n", date)
	for _, ev := range events {
		fmt.Printf("  %s–%s  %s [%s]\n", ev.Start, ev.End, ev.Title, ev.Category)
	}
	return nil
}
