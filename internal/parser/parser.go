// Package parser turns free-text commitment lists like
// "Work 9:30am-6pm; Lunch 12-1" into fixed events. It never fails:
// segments that do not match the TITLE START-END shape are handed back
// verbatim for the caller to deal with.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/nfordyce/daybreak/internal/models"
)

// ParseResult carries whatever could be understood plus the leftovers.
type ParseResult struct {
	Events       []models.FixedEvent `json:"events"`
	UnparsedText []string            `json:"unparsed_text,omitempty"`
}

var segmentRe = regexp.MustCompile(
	`(?i)^(.+?)\s+(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\s*[-–]\s*(\d{1,2})(?::(\d{2}))?\s*(am|pm)?$`)

// ParseCommitments splits text on semicolons and newlines and matches each
// segment against "TITLE START-END" where times are H[:MM][am|pm] or
// 24-hour HH:MM.
func ParseCommitments(text string) ParseResult {
	var result ParseResult

	for _, segment := range splitSegments(text) {
		m := segmentRe.FindStringSubmatch(segment)
		if m == nil {
			result.UnparsedText = append(result.UnparsedText, segment)
			continue
		}

		title := strings.TrimSpace(m[1])
		start, okStart := resolveTime(m[2], m[3], m[4])
		end, okEnd := resolveTime(m[5], m[6], m[7])
		if !okStart || !okEnd {
			result.UnparsedText = append(result.UnparsedText, segment)
			continue
		}

		// Bare hours lean on context: "Lunch 12-1" ends after it starts,
		// and "Dinner 7-8" is evening, not dawn.
		if m[7] == "" && end <= start {
			end += 12 * 60
		}
		if m[4] == "" && m[7] == "" && start < 8*60 {
			start += 12 * 60
			end += 12 * 60
		}

		result.Events = append(result.Events, models.FixedEvent{
			Title:    title,
			Start:    formatClock(start),
			End:      formatClock(end),
			Category: classify(title),
		})
	}
	return result
}

func splitSegments(text string) []string {
	var segments []string
	for _, part := range strings.FieldsFunc(text, func(r rune) bool {
		return r == ';' || r == '\n'
	}) {
		part = strings.TrimSpace(part)
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

// resolveTime converts captured hour/minute/meridiem strings into minutes
// from midnight.
func resolveTime(hourStr, minStr, meridiem string) (int, bool) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return 0, false
	}
	minute := 0
	if minStr != "" {
		minute, err = strconv.Atoi(minStr)
		if err != nil || minute > 59 {
			return 0, false
		}
	}

	switch strings.ToLower(meridiem) {
	case "am":
		if hour > 12 {
			return 0, false
		}
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour > 12 {
			return 0, false
		}
		if hour != 12 {
			hour += 12
		}
	default:
		if hour > 23 {
			return 0, false
		}
	}
	return hour*60 + minute, true
}

func formatClock(minutes int) string {
	minutes = minutes % 1440
	return padTwo(minutes/60) + ":" + padTwo(minutes%60)
}

func padTwo(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

var categoryKeywords = []struct {
	category models.EventCategory
	words    []string
}{
	{models.EventWork, []string{"work", "office"}},
	{models.EventMeal, []string{"lunch", "dinner", "breakfast", "meal"}},
	{models.EventCall, []string{"call", "meeting"}},
	{models.EventAppointment, []string{"appointment", "doctor", "dentist"}},
}

func classify(title string) models.EventCategory {
	lower := strings.ToLower(title)
	for _, ck := range categoryKeywords {
		for _, w := range ck.words {
			if strings.Contains(lower, w) {
				return ck.category
			}
		}
	}
	return models.EventOther
}
