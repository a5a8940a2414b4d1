package parser

import (
	"testing"

	"github.com/nfordyce/daybreak/internal/models"
)

func TestParseCommitments_RoundTrip(t *testing.T) {
	result := ParseCommitments("Work 9:30am-6pm; Lunch 12-1; Dinner 7-8")

	if len(result.Events) != 3 {
		t.Fatalf("expected 3 events, got %d: %+v", len(result.Events), result.Events)
	}
	if len(result.UnparsedText) != 0 {
		t.Fatalf("expected no unparsed text, got %v", result.UnparsedText)
	}

	work := result.Events[0]
	if work.Title != "Work" || work.Start != "09:30" || work.End != "18:00" {
		t.Errorf("work parsed as %+v", work)
	}
	if work.Category != models.EventWork {
		t.Errorf("work classified as %s", work.Category)
	}

	lunch := result.Events[1]
	if lunch.Start != "12:00" || lunch.End != "13:00" {
		t.Errorf("lunch parsed as %s-%s", lunch.Start, lunch.End)
	}
	if lunch.Category != models.EventMeal {
		t.Errorf("lunch classified as %s", lunch.Category)
	}

	dinner := result.Events[2]
	if dinner.Start != "19:00" || dinner.End != "20:00" {
		t.Errorf("dinner parsed as %s-%s", dinner.Start, dinner.End)
	}
}

func TestParseCommitments_NewlinesAndUnparsed(t *testing.T) {
	result := ParseCommitments("Standup 9:15-9:30\nremember to buy milk\nDentist appointment 2pm-3pm")

	if len(result.Events) != 2 {
		t.Fatalf("expected 2 events, got %+v", result.Events)
	}
	if len(result.UnparsedText) != 1 || result.UnparsedText[0] != "remember to buy milk" {
		t.Errorf("unparsed text: %v", result.UnparsedText)
	}

	dentist := result.Events[1]
	if dentist.Start != "14:00" || dentist.End != "15:00" {
		t.Errorf("dentist parsed as %s-%s", dentist.Start, dentist.End)
	}
	if dentist.Category != models.EventAppointment {
		t.Errorf("dentist classified as %s", dentist.Category)
	}
}

func TestParseCommitments_Classification(t *testing.T) {
	cases := []struct {
		text string
		want models.EventCategory
	}{
		{"Office hours 10:00-11:00", models.EventWork},
		{"Team meeting 15:00-15:30", models.EventCall},
		{"Breakfast 8-9", models.EventMeal},
		{"Doctor visit 10am-11am", models.EventAppointment},
		{"Errands 16:00-17:00", models.EventOther},
	}
	for _, tc := range cases {
		result := ParseCommitments(tc.text)
		if len(result.Events) != 1 {
			t.Errorf("%q: expected one event, got %+v (unparsed %v)", tc.text, result.Events, result.UnparsedText)
			continue
		}
		if result.Events[0].Category != tc.want {
			t.Errorf("%q classified as %s, want %s", tc.text, result.Events[0].Category, tc.want)
		}
	}
}

func TestParseCommitments_NeverErrors(t *testing.T) {
	for _, text := range []string{"", ";;;", "garbage", "25:00-26:00", "X 99-100"} {
		result := ParseCommitments(text)
		for _, ev := range result.Events {
			if ev.Start == "" || ev.End == "" {
				t.Errorf("%q produced malformed event %+v", text, ev)
			}
		}
	}
}

func TestParseCommitments_TwelveHourEdges(t *testing.T) {
	result := ParseCommitments("Night shift 12am-1am; Midday 12pm-1pm")
	if len(result.Events) != 2 {
		t.Fatalf("expected 2 events, got %+v", result.Events)
	}
	if result.Events[0].Start != "00:00" || result.Events[0].End != "01:00" {
		t.Errorf("12am handled as %s-%s", result.Events[0].Start, result.Events[0].End)
	}
	if result.Events[1].Start != "12:00" || result.Events[1].End != "13:00" {
		t.Errorf("12pm handled as %s-%s", result.Events[1].Start, result.Events[1].End)
	}
}
