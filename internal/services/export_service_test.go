package services

import (
	"strings"
	"testing"
	"time"

	"voyago/internal/planner"
)

func exportFixture() planner.Itinerary {
	return planner.Itinerary{
		Destination: "Tokyo",
		Days:        4,
		Items: []planner.Item{
			{Day: 1, Time: "09:00", Name: "Senso-ji Temple", Area: "Asakusa", Tags: []string{"culture"}, URL: "https://maps.example/senso-ji"},
			{Day: 1, Time: "12:00", Name: "Nakamise Street", Area: "Asakusa", Tags: nil, URL: ""},
		},
		DayRanges: []planner.DayRange{
			{StartDay: 2, EndDay: 4, Description: "Free exploration / Rest days", ActivityType: planner.ActivityFreeExploration},
		},
	}
}

func TestToMarkdown(t *testing.T) {
	svc := NewExportService()
	md := svc.ToMarkdown(exportFixture())

	for _, want := range []string{
		"# 4-Day Trip to Tokyo",
		"## Day 1 - Asakusa",
		"- **09:00** - [Senso-ji Temple](https://maps.example/senso-ji) _culture_",
		"- **12:00** - Nakamise Street _attraction_",
		"## Days 2-4",
		"Free exploration / Rest days",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q\n%s", want, md)
		}
	}
}

func TestToMarkdownSingleDayRange(t *testing.T) {
	it := planner.Itinerary{
		Destination: "Paris",
		Days:        2,
		Items:       []planner.Item{{Day: 1, Time: "09:00", Name: "Louvre Museum", Area: "1st Arr."}},
		DayRanges: []planner.DayRange{
			{StartDay: 2, EndDay: 2, Description: "Free time / Rest", ActivityType: planner.ActivityBuffer},
		},
	}

	md := NewExportService().ToMarkdown(it)
	if !strings.Contains(md, "## Day 2\n") {
		t.Errorf("single-day range should render as one day header\n%s", md)
	}
}

func TestToICS(t *testing.T) {
	svc := NewExportService()
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	ics := svc.ToICS(exportFixture(), start)

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"END:VCALENDAR",
		"UID:tokyo-day1-0900@voyago",
		"DTSTART:20260901T090000",
		"DTEND:20260901T110000",
		"SUMMARY:Senso-ji Temple",
		"LOCATION:Asakusa",
		"URL:https://maps.example/senso-ji",
	} {
		if !strings.Contains(ics, want) {
			t.Errorf("ics missing %q\n%s", want, ics)
		}
	}

	if got := strings.Count(ics, "BEGIN:VEVENT"); got != 3 {
		t.Errorf("event count = %d, want 3", got)
	}
}

func TestToICSRangeUsesExclusiveEnd(t *testing.T) {
	svc := NewExportService()
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	ics := svc.ToICS(exportFixture(), start)

	// Days 2-4 run Sep 2 through Sep 4; the DTEND date is the day after.
	if !strings.Contains(ics, "DTSTART;VALUE=DATE:20260902") {
		t.Errorf("range DTSTART missing\n%s", ics)
	}
	if !strings.Contains(ics, "DTEND;VALUE=DATE:20260905") {
		t.Errorf("range DTEND should be exclusive\n%s", ics)
	}
}

func TestItineraryFromPlanRoundTrip(t *testing.T) {
	it := exportFixture()
	resp := toPlanResponse(it, false, sourceCatalog)
	back := ItineraryFromPlan(resp)

	if back.Destination != it.Destination || back.Days != it.Days {
		t.Fatalf("header mismatch: got %s/%d", back.Destination, back.Days)
	}
	if len(back.Items) != len(it.Items) || len(back.DayRanges) != len(it.DayRanges) {
		t.Fatalf("shape mismatch: %d items, %d ranges", len(back.Items), len(back.DayRanges))
	}
	if back.DayRanges[0].ActivityType != planner.ActivityFreeExploration {
		t.Errorf("activity type = %q", back.DayRanges[0].ActivityType)
	}
}
