package planner

import (
	"testing"

	"voyago/internal/catalog"
)

func prefSet(tags ...string) map[string]struct{} {
	prefs := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		prefs[tag] = struct{}{}
	}
	return prefs
}

func TestPoiScoreCountsMatchesAndHours(t *testing.T) {
	poi := catalog.POI{
		Name: "British Museum",
		Tags: []string{"art", "history", "culture"},
		Open: catalog.HourWindow{Start: 10, End: 17},
	}

	matches, hours := poiScore(poi, prefSet("history", "culture", "food"))
	if matches != 2 {
		t.Errorf("matches = %d, want 2", matches)
	}
	if hours != 7 {
		t.Errorf("hours = %d, want 7", hours)
	}

	// Empty preference set scores zero matches for everything.
	matches, _ = poiScore(poi, nil)
	if matches != 0 {
		t.Errorf("matches with no preferences = %d, want 0", matches)
	}
}

func TestRankPOIsOrdersByMatchThenHours(t *testing.T) {
	pois := []catalog.POI{
		{Name: "short-no-match", Tags: []string{"nature"}, Open: catalog.HourWindow{Start: 10, End: 12}},
		{Name: "long-no-match", Tags: []string{"nature"}, Open: catalog.HourWindow{Start: 0, End: 24}},
		{Name: "short-match", Tags: []string{"food"}, Open: catalog.HourWindow{Start: 11, End: 13}},
		{Name: "long-match", Tags: []string{"food"}, Open: catalog.HourWindow{Start: 8, End: 22}},
	}

	ranked := rankPOIs(pois, prefSet("food"))

	want := []string{"long-match", "short-match", "long-no-match", "short-no-match"}
	for i, name := range want {
		if ranked[i].Name != name {
			t.Errorf("rank %d = %q, want %q", i, ranked[i].Name, name)
		}
	}

	// The input slice stays untouched.
	if pois[0].Name != "short-no-match" {
		t.Error("rankPOIs must not mutate its input")
	}
}

func TestRankPOIsIsStableOnTies(t *testing.T) {
	pois := []catalog.POI{
		{Name: "first", Tags: []string{"food"}, Open: catalog.HourWindow{Start: 9, End: 17}},
		{Name: "second", Tags: []string{"food"}, Open: catalog.HourWindow{Start: 10, End: 18}},
		{Name: "third", Tags: []string{"food"}, Open: catalog.HourWindow{Start: 8, End: 16}},
	}

	ranked := rankPOIs(pois, prefSet("food"))

	// Identical (match, hours) keys keep catalog order.
	want := []string{"first", "second", "third"}
	for i, name := range want {
		if ranked[i].Name != name {
			t.Errorf("rank %d = %q, want %q", i, ranked[i].Name, name)
		}
	}
}

func TestGroupByAreaKeepsFirstSeenOrder(t *testing.T) {
	ranked := []catalog.POI{
		{Name: "a1", Area: "Alpha"},
		{Name: "b1", Area: "Beta"},
		{Name: "a2", Area: "Alpha"},
		{Name: "c1", Area: ""},
	}

	order, groups := groupByArea(ranked)

	wantOrder := []string{"Alpha", "Beta", "Unknown"}
	if len(order) != len(wantOrder) {
		t.Fatalf("area order = %v, want %v", order, wantOrder)
	}
	for i := range wantOrder {
		if order[i] != wantOrder[i] {
			t.Errorf("area %d = %q, want %q", i, order[i], wantOrder[i])
		}
	}

	if len(groups["Alpha"]) != 2 || groups["Alpha"][0].Name != "a1" || groups["Alpha"][1].Name != "a2" {
		t.Errorf("Alpha group should keep rank order, got %v", groups["Alpha"])
	}
	if len(groups["Unknown"]) != 1 {
		t.Errorf("empty area should group under Unknown")
	}
}
