package services

import (
	"fmt"
	"strings"
	"time"

	"voyago/internal/models/response_models"
	"voyago/internal/planner"
)

type ExportServiceInterface interface {
	ToMarkdown(it planner.Itinerary) string
	ToICS(it planner.Itinerary, startDate time.Time) string
}

type ExportService struct{}

func NewExportService() ExportServiceInterface {
	return &ExportService{}
}

// ToMarkdown renders the itinerary as a shareable markdown document,
// walking the flattened schedule so items and ranges appear in trip
// order.
func (s *ExportService) ToMarkdown(it planner.Itinerary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %d-Day Trip to %s\n", it.Days, it.Destination)

	currentDay := 0
	for _, entry := range it.Schedule() {
		switch entry.Kind {
		case planner.EntryItem:
			item := entry.Item
			if item.Day != currentDay {
				currentDay = item.Day
				header := fmt.Sprintf("## Day %d", item.Day)
				if item.Area != "" {
					header = fmt.Sprintf("## Day %d - %s", item.Day, item.Area)
				}
				fmt.Fprintf(&b, "\n%s\n\n", header)
			}
			tags := strings.Join(item.Tags, ", ")
			if tags == "" {
				tags = "attraction"
			}
			if item.URL != "" {
				fmt.Fprintf(&b, "- **%s** - [%s](%s) _%s_\n", item.Time, item.Name, item.URL, tags)
			} else {
				fmt.Fprintf(&b, "- **%s** - %s _%s_\n", item.Time, item.Name, tags)
			}
		case planner.EntryRange:
			r := entry.Range
			currentDay = 0
			if r.StartDay == r.EndDay {
				fmt.Fprintf(&b, "\n## Day %d\n\n%s\n", r.StartDay, r.Description)
			} else {
				fmt.Fprintf(&b, "\n## Days %d-%d\n\n%s\n", r.StartDay, r.EndDay, r.Description)
			}
		}
	}

	return b.String()
}

const icsTimestampLayout = "20060102T150405"

// Scheduled visits are exported as two-hour calendar blocks.
const icsEventDuration = 2 * time.Hour

// ToICS renders the itinerary as an iCalendar feed anchored at
// startDate (day 1). Items become timed two-hour events; day ranges
// become all-day events with the exclusive DTEND iCalendar requires.
func (s *ExportService) ToICS(it planner.Itinerary, startDate time.Time) string {
	var b strings.Builder

	writeLine := func(line string) {
		b.WriteString(line)
		b.WriteString("\r\n")
	}

	writeLine("BEGIN:VCALENDAR")
	writeLine("VERSION:2.0")
	writeLine("PRODID:-//voyago//trip planner//EN")

	slug := icsSlug(it.Destination)

	for _, item := range it.Items {
		day := startDate.AddDate(0, 0, item.Day-1)
		start := day
		if t, err := time.Parse("15:04", item.Time); err == nil {
			start = time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location())
		}
		end := start.Add(icsEventDuration)

		writeLine("BEGIN:VEVENT")
		writeLine(fmt.Sprintf("UID:%s-day%d-%s@voyago", slug, item.Day, strings.ReplaceAll(item.Time, ":", "")))
		writeLine(fmt.Sprintf("DTSTART:%s", start.Format(icsTimestampLayout)))
		writeLine(fmt.Sprintf("DTEND:%s", end.Format(icsTimestampLayout)))
		writeLine(fmt.Sprintf("SUMMARY:%s", icsEscape(item.Name)))
		if item.Area != "" {
			writeLine(fmt.Sprintf("LOCATION:%s", icsEscape(item.Area)))
		}
		if item.URL != "" {
			writeLine(fmt.Sprintf("URL:%s", item.URL))
		}
		writeLine("END:VEVENT")
	}

	for _, r := range it.DayRanges {
		start := startDate.AddDate(0, 0, r.StartDay-1)
		end := startDate.AddDate(0, 0, r.EndDay)

		writeLine("BEGIN:VEVENT")
		writeLine(fmt.Sprintf("UID:%s-days%d-%d@voyago", slug, r.StartDay, r.EndDay))
		writeLine(fmt.Sprintf("DTSTART;VALUE=DATE:%s", start.Format("20060102")))
		writeLine(fmt.Sprintf("DTEND;VALUE=DATE:%s", end.Format("20060102")))
		writeLine(fmt.Sprintf("SUMMARY:%s", icsEscape(r.Description)))
		writeLine("END:VEVENT")
	}

	writeLine("END:VCALENDAR")
	return b.String()
}

// ItineraryFromPlan rebuilds a planner itinerary from a stored plan
// response so saved trips can be exported.
func ItineraryFromPlan(resp response_models.PlanResponse) planner.Itinerary {
	it := planner.Itinerary{
		Destination: resp.Destination,
		Days:        resp.Days,
		Items:       make([]planner.Item, 0, len(resp.Items)),
		DayRanges:   make([]planner.DayRange, 0, len(resp.DayRanges)),
	}
	for _, item := range resp.Items {
		it.Items = append(it.Items, planner.Item{
			Day:  item.Day,
			Time: item.Time,
			Name: item.Name,
			Area: item.Area,
			Tags: item.Tags,
			URL:  item.URL,
		})
	}
	for _, r := range resp.DayRanges {
		it.DayRanges = append(it.DayRanges, planner.DayRange{
			StartDay:     r.StartDay,
			EndDay:       r.EndDay,
			Description:  r.Description,
			ActivityType: planner.ActivityType(r.ActivityType),
		})
	}
	return it
}

func icsSlug(destination string) string {
	slug := strings.ToLower(strings.TrimSpace(destination))
	slug = strings.ReplaceAll(slug, " ", "-")
	if slug == "" {
		slug = "trip"
	}
	return slug
}

// icsEscape handles the text escaping RFC 5545 requires.
func icsEscape(text string) string {
	replacer := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\n", "\\n",
	)
	return replacer.Replace(text)
}
