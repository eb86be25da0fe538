package planner

import "sort"

// ActivityType classifies what a DayRange stands for.
type ActivityType string

const (
	ActivityRest            ActivityType = "rest"
	ActivityFreeExploration ActivityType = "free_exploration"
	ActivityBuffer          ActivityType = "buffer"
)

// Item is a single scheduled activity. Day is 1-indexed and never
// exceeds the itinerary's total day count.
type Item struct {
	Day  int      `json:"day"`
	Time string   `json:"time"`
	Name string   `json:"name"`
	Area string   `json:"area"`
	Tags []string `json:"tags"`
	URL  string   `json:"url"`
}

// DayRange is an inclusive span of days deliberately left without
// individual activities, such as rest or free-exploration periods.
type DayRange struct {
	StartDay     int          `json:"start_day"`
	EndDay       int          `json:"end_day"`
	Description  string       `json:"description"`
	ActivityType ActivityType `json:"activity_type"`
}

// NumDays returns the number of days covered by the range.
func (r DayRange) NumDays() int {
	return r.EndDay - r.StartDay + 1
}

// Itinerary is a complete trip plan. Every day from 1 to Days appears
// in Items, DayRanges, or both.
type Itinerary struct {
	Destination string     `json:"destination"`
	Days        int        `json:"days"`
	Items       []Item     `json:"items"`
	DayRanges   []DayRange `json:"day_ranges"`
}

// CoveredDays returns the set of days that carry an activity or belong
// to a range.
func (it Itinerary) CoveredDays() map[int]struct{} {
	covered := make(map[int]struct{})
	for _, item := range it.Items {
		covered[item.Day] = struct{}{}
	}
	for _, r := range it.DayRanges {
		for day := r.StartDay; day <= r.EndDay; day++ {
			covered[day] = struct{}{}
		}
	}
	return covered
}

// UncoveredDays returns the sorted days in [1, Days] with neither an
// activity nor a range. It must be empty for any itinerary returned by
// BuildItinerary.
func (it Itinerary) UncoveredDays() []int {
	covered := it.CoveredDays()
	var uncovered []int
	for day := 1; day <= it.Days; day++ {
		if _, ok := covered[day]; !ok {
			uncovered = append(uncovered, day)
		}
	}
	return uncovered
}

// EntryKind discriminates schedule entries for renderers.
type EntryKind string

const (
	EntryItem  EntryKind = "item"
	EntryRange EntryKind = "range"
)

// ScheduleEntry is a tagged union of Item and DayRange. Renderers
// switch on Kind instead of inspecting the structure.
type ScheduleEntry struct {
	Kind  EntryKind `json:"kind"`
	Item  *Item     `json:"item,omitempty"`
	Range *DayRange `json:"range,omitempty"`
}

// Schedule flattens the itinerary into one ordered stream: items sorted
// by day then slot time, with each range inserted before the items of
// any later day. Ranges with the same start day as an item's day come
// after that day's items, mirroring how a reader walks the trip.
func (it Itinerary) Schedule() []ScheduleEntry {
	items := make([]Item, len(it.Items))
	copy(items, it.Items)
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Day != items[j].Day {
			return items[i].Day < items[j].Day
		}
		return items[i].Time < items[j].Time
	})

	ranges := make([]DayRange, len(it.DayRanges))
	copy(ranges, it.DayRanges)
	sort.SliceStable(ranges, func(i, j int) bool {
		return ranges[i].StartDay < ranges[j].StartDay
	})

	entries := make([]ScheduleEntry, 0, len(items)+len(ranges))
	ri := 0
	for i := range items {
		for ri < len(ranges) && ranges[ri].StartDay < items[i].Day {
			r := ranges[ri]
			entries = append(entries, ScheduleEntry{Kind: EntryRange, Range: &r})
			ri++
		}
		item := items[i]
		entries = append(entries, ScheduleEntry{Kind: EntryItem, Item: &item})
	}
	for ri < len(ranges) {
		r := ranges[ri]
		entries = append(entries, ScheduleEntry{Kind: EntryRange, Range: &r})
		ri++
	}
	return entries
}
