package planner

import (
	"reflect"
	"testing"
)

func assertFullCoverage(t *testing.T, result PlanResult, wantDays int) {
	t.Helper()

	it := result.Itinerary
	if it.Days != wantDays {
		t.Fatalf("itinerary days = %d, want %d", it.Days, wantDays)
	}
	if uncovered := it.UncoveredDays(); len(uncovered) != 0 {
		t.Fatalf("uncovered days: %v", uncovered)
	}
	if result.Repaired {
		t.Fatalf("gap-repair pass activated; normal allocation must cover every day")
	}

	for _, item := range it.Items {
		if item.Day < 1 || item.Day > it.Days {
			t.Fatalf("item %q scheduled on out-of-range day %d", item.Name, item.Day)
		}
	}
	for _, r := range it.DayRanges {
		if r.StartDay < 1 || r.EndDay > it.Days || r.StartDay > r.EndDay {
			t.Fatalf("invalid range [%d, %d] for a %d-day trip", r.StartDay, r.EndDay, it.Days)
		}
	}
}

func assertNoDuplicatePOIs(t *testing.T, it Itinerary) {
	t.Helper()

	seen := make(map[string]struct{})
	for _, item := range it.Items {
		if _, dup := seen[item.Name]; dup {
			t.Fatalf("POI %q scheduled more than once", item.Name)
		}
		seen[item.Name] = struct{}{}
	}
}

func assertCapacityBound(t *testing.T, it Itinerary, maxPerDay int) {
	t.Helper()

	perDay := make(map[int]int)
	for _, item := range it.Items {
		perDay[item.Day]++
	}
	for day, count := range perDay {
		if count > maxPerDay {
			t.Fatalf("day %d has %d activities, cap is %d", day, count, maxPerDay)
		}
	}
}

func TestShortTripWithPreferences(t *testing.T) {
	result := BuildItinerary(Request{
		Destination: "Tokyo",
		Days:        3,
		Preferences: []string{"food", "culture"},
	}, DefaultConfig())

	assertFullCoverage(t, result, 3)
	assertNoDuplicatePOIs(t, result.Itinerary)
	assertCapacityBound(t, result.Itinerary, DefaultConfig().MaxActivitiesPerDay)

	if result.CatalogMiss {
		t.Fatalf("Tokyo is in the catalog; no miss expected")
	}
	if len(result.Itinerary.DayRanges) != 0 {
		t.Errorf("three-day Tokyo trip needs no day ranges, got %d", len(result.Itinerary.DayRanges))
	}

	// The catalog holds ten Tokyo POIs, well above one per day, so
	// every day gets the distributed two activities.
	perDay := make(map[int]int)
	for _, item := range result.Itinerary.Items {
		perDay[item.Day]++
	}
	for day := 1; day <= 3; day++ {
		if perDay[day] != 2 {
			t.Errorf("day %d has %d activities, want 2", day, perDay[day])
		}
	}
}

func TestMediumTripCollapsesTailIntoRanges(t *testing.T) {
	result := BuildItinerary(Request{Destination: "London", Days: 20}, DefaultConfig())

	assertFullCoverage(t, result, 20)
	assertNoDuplicatePOIs(t, result.Itinerary)
	assertCapacityBound(t, result.Itinerary, DefaultConfig().MaxActivitiesPerDay)

	if len(result.Itinerary.DayRanges) == 0 {
		t.Fatalf("twenty-day trip over a seven-POI catalog must produce day ranges")
	}
	if result.DetailedDays > 7 {
		t.Errorf("detailing window %d exceeds the seven-POI catalog", result.DetailedDays)
	}
	if len(result.Itinerary.Items) != 7 {
		t.Errorf("expected all 7 London POIs scheduled, got %d items", len(result.Itinerary.Items))
	}
	for _, r := range result.Itinerary.DayRanges {
		if r.ActivityType != ActivityBuffer {
			t.Errorf("20-day trip ranges should be buffer type, got %q", r.ActivityType)
		}
		if r.NumDays() > 7 {
			t.Errorf("range [%d, %d] spans more than a week", r.StartDay, r.EndDay)
		}
	}
}

func TestVeryLongTripStaysBounded(t *testing.T) {
	result := BuildItinerary(Request{Destination: "Singapore", Days: 1000}, DefaultConfig())

	assertFullCoverage(t, result, 1000)
	assertNoDuplicatePOIs(t, result.Itinerary)

	if len(result.Itinerary.Items) >= 500 {
		t.Fatalf("1000-day trip produced %d individual items; tail must collapse into ranges", len(result.Itinerary.Items))
	}
	if result.DetailedDays > DefaultConfig().MaxIndividualActivityDays {
		t.Fatalf("detailing window %d exceeds configured cap", result.DetailedDays)
	}
	if len(result.Itinerary.DayRanges) < 2 {
		t.Fatalf("expected multiple chunked ranges, got %d", len(result.Itinerary.DayRanges))
	}

	for _, r := range result.Itinerary.DayRanges {
		if r.ActivityType != ActivityRest {
			t.Errorf("1000-day trip ranges should be rest type, got %q", r.ActivityType)
		}
	}
}

func TestUnknownDestinationDegradesGracefully(t *testing.T) {
	result := BuildItinerary(Request{Destination: "Atlantis", Days: 3}, DefaultConfig())

	if !result.CatalogMiss {
		t.Fatalf("expected catalog miss for Atlantis")
	}

	it := result.Itinerary
	if it.Days != 1 {
		t.Fatalf("degraded itinerary should be a single day, got %d", it.Days)
	}
	if len(it.Items) != 2 {
		t.Fatalf("degraded itinerary should carry two synthetic items, got %d", len(it.Items))
	}
	if len(it.DayRanges) != 0 {
		t.Fatalf("degraded itinerary should have no ranges, got %d", len(it.DayRanges))
	}
	if uncovered := it.UncoveredDays(); len(uncovered) != 0 {
		t.Fatalf("degraded itinerary left days uncovered: %v", uncovered)
	}
}

func TestSingleDayTrip(t *testing.T) {
	result := BuildItinerary(Request{Destination: "Tokyo", Days: 1}, DefaultConfig())

	assertFullCoverage(t, result, 1)
	assertNoDuplicatePOIs(t, result.Itinerary)

	if len(result.Itinerary.DayRanges) != 0 {
		t.Errorf("one-day trip needs no ranges, got %d", len(result.Itinerary.DayRanges))
	}
	for _, item := range result.Itinerary.Items {
		if item.Day != 1 {
			t.Errorf("item %q on day %d of a one-day trip", item.Name, item.Day)
		}
	}
}

func TestNonPositiveDayCountClampsToOne(t *testing.T) {
	for _, days := range []int{0, -5} {
		result := BuildItinerary(Request{Destination: "Tokyo", Days: days}, DefaultConfig())
		assertFullCoverage(t, result, 1)
	}
}

func TestDenseTripGivesEveryDayAnActivity(t *testing.T) {
	// Ten days over seven London POIs: the detailing window shrinks to
	// the POI count and every detailed day still gets its one activity.
	result := BuildItinerary(Request{Destination: "London", Days: 10}, DefaultConfig())

	assertFullCoverage(t, result, 10)
	assertNoDuplicatePOIs(t, result.Itinerary)

	perDay := make(map[int]int)
	for _, item := range result.Itinerary.Items {
		perDay[item.Day]++
	}
	for day := 1; day <= 7; day++ {
		if perDay[day] == 0 {
			t.Errorf("detailed day %d received no activity", day)
		}
	}
	if len(result.Itinerary.DayRanges) == 0 {
		t.Fatalf("days 8-10 should be covered by a range")
	}
	if r := result.Itinerary.DayRanges[0]; r.ActivityType != ActivityFreeExploration {
		t.Errorf("dense-trip tail should be free exploration, got %q", r.ActivityType)
	}
}

func TestTopUpPassSpreadsLeftoverPOIs(t *testing.T) {
	// Seven Tokyo days over ten POIs: an average below two starts each
	// day at one activity, and the top-up pass hands out the remainder.
	result := BuildItinerary(Request{Destination: "Tokyo", Days: 7}, DefaultConfig())

	assertFullCoverage(t, result, 7)
	assertNoDuplicatePOIs(t, result.Itinerary)

	if len(result.Itinerary.Items) != 10 {
		t.Fatalf("all ten Tokyo POIs should be scheduled, got %d items", len(result.Itinerary.Items))
	}
	assertCapacityBound(t, result.Itinerary, 2)

	perDay := make(map[int]int)
	for _, item := range result.Itinerary.Items {
		perDay[item.Day]++
	}
	for day := 1; day <= 7; day++ {
		if perDay[day] == 0 {
			t.Errorf("day %d received no activity", day)
		}
	}
}

func TestBuildItineraryIsDeterministic(t *testing.T) {
	requests := []Request{
		{Destination: "Tokyo", Days: 3, Preferences: []string{"food", "culture"}},
		{Destination: "London", Days: 20},
		{Destination: "Singapore", Days: 365},
	}

	for _, req := range requests {
		first := BuildItinerary(req, DefaultConfig())
		second := BuildItinerary(req, DefaultConfig())
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("BuildItinerary not deterministic for %+v", req)
		}
	}
}

func TestItemsRespectOpeningWindows(t *testing.T) {
	hourForSlot := make(map[string]int, len(timeSlots))
	for _, slot := range timeSlots {
		hourForSlot[slot.Label] = slot.Hour
	}

	result := BuildItinerary(Request{Destination: "Barcelona", Days: 5}, DefaultConfig())
	assertFullCoverage(t, result, 5)

	// Cross-check each placed item against the catalog window.
	for _, item := range result.Itinerary.Items {
		hour, ok := hourForSlot[item.Time]
		if !ok {
			t.Fatalf("item %q uses unknown slot %q", item.Name, item.Time)
		}
		window, found := barcelonaWindow(item.Name)
		if !found {
			t.Fatalf("item %q not found in Barcelona catalog", item.Name)
		}
		if hour < window[0] || hour > window[1] {
			t.Errorf("item %q placed at %s outside window [%d, %d]", item.Name, item.Time, window[0], window[1])
		}
	}
}

func barcelonaWindow(name string) ([2]int, bool) {
	windows := map[string][2]int{
		"Sagrada Família":    {9, 19},
		"Park Güell":         {8, 20},
		"La Boqueria Market": {8, 20},
		"Barceloneta Beach":  {6, 22},
		"Gothic Quarter":     {0, 24},
		"Casa Batlló":        {9, 21},
		"Camp Nou":           {10, 18},
		"Montjuïc Castle":    {10, 20},
	}
	w, ok := windows[name]
	return w, ok
}
