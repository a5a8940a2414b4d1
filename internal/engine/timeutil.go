package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nfordyce/daybreak/internal/models"
)

// The engine works in minutes from midnight. A day that runs past midnight
// (late sleep start) is represented with minutes > 1439; formatting wraps.

func parseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time format: %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", s, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("time out of range: %q", s)
	}
	return hour*60 + minute, nil
}

func formatClock(minutes int) string {
	minutes = ((minutes % 1440) + 1440) % 1440
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func hourOf(minutes int) int {
	return (((minutes % 1440) + 1440) % 1440) / 60
}

// windowHours returns the inclusive start hour and exclusive end hour of a
// named time-of-day window.
func windowHours(w models.Window) (int, int, bool) {
	switch w {
	case models.WindowMorning:
		return 5, 12, true
	case models.WindowAfternoon:
		return 12, 17, true
	case models.WindowEvening:
		return 17, 22, true
	default:
		return 0, 0, false
	}
}

func hourInWindow(hour int, w models.Window) bool {
	lo, hi, ok := windowHours(w)
	if !ok {
		return true
	}
	return hour >= lo && hour < hi
}

// titleWindow picks up a time-of-day keyword embedded in an item title,
// e.g. "Morning pages". Night is handled separately because it is not a
// preferred-window value, only a title tag.
func titleWindow(title string) (models.Window, bool) {
	t := strings.ToLower(title)
	switch {
	case strings.Contains(t, "morning"):
		return models.WindowMorning, true
	case strings.Contains(t, "afternoon"):
		return models.WindowAfternoon, true
	case strings.Contains(t, "evening"):
		return models.WindowEvening, true
	}
	return models.WindowNone, false
}

func isNightTagged(title string) bool {
	return strings.Contains(strings.ToLower(title), "night")
}

// hourEnergy is the circadian lookup used to align items with slots.
func hourEnergy(hour int) models.EnergyLevel {
	switch {
	case hour >= 9 && hour < 12:
		return models.EnergyHigh
	case hour >= 15 && hour < 18:
		return models.EnergyHigh
	case hour >= 6 && hour < 9:
		return models.EnergyMedium
	case hour >= 12 && hour < 13:
		return models.EnergyMedium
	case hour >= 18 && hour < 21:
		return models.EnergyMedium
	default:
		return models.EnergyLow
	}
}

func energyRank(e models.EnergyLevel) int {
	switch e {
	case models.EnergyHigh:
		return 2
	case models.EnergyMedium:
		return 1
	default:
		return 0
	}
}

// stableHash is a polynomial rolling hash over the id string. Recurrence
// day selection must map the same habit to the same weekday on every run,
// so this can never be replaced by a random draw.
func stableHash(s string) int {
	h := 0
	for _, r := range s {
		h = (h*31 + int(r)) & 0x7fffffff
	}
	return h
}
