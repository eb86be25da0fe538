package planner

import (
	"sort"

	"voyago/internal/catalog"
)

// poiScore computes the ranking key for a POI: how many of its tags the
// traveller asked for, and how long it stays open as a tiebreaker. An
// empty preference set scores every POI at zero matches.
func poiScore(poi catalog.POI, prefs map[string]struct{}) (matchCount, availabilityHours int) {
	if len(prefs) > 0 {
		for _, tag := range poi.Tags {
			if _, ok := prefs[tag]; ok {
				matchCount++
			}
		}
	}
	return matchCount, poi.Open.Hours()
}

// rankPOIs sorts POIs by descending preference match, then descending
// opening-window length. The sort is stable so equal-score POIs keep
// their catalog order, which keeps allocation deterministic.
func rankPOIs(pois []catalog.POI, prefs map[string]struct{}) []catalog.POI {
	ranked := make([]catalog.POI, len(pois))
	copy(ranked, pois)

	sort.SliceStable(ranked, func(i, j int) bool {
		mi, hi := poiScore(ranked[i], prefs)
		mj, hj := poiScore(ranked[j], prefs)
		if mi != mj {
			return mi > mj
		}
		return hi > hj
	})

	return ranked
}

// groupByArea clusters the ranked POIs by geographic area. Group order
// is the order areas are first encountered in the ranked list, and each
// group preserves the global rank order, so the allocator's round-robin
// walk favors the strongest areas first.
func groupByArea(ranked []catalog.POI) (areaOrder []string, byArea map[string][]catalog.POI) {
	byArea = make(map[string][]catalog.POI)
	for _, poi := range ranked {
		area := poi.Area
		if area == "" {
			area = "Unknown"
		}
		if _, seen := byArea[area]; !seen {
			areaOrder = append(areaOrder, area)
		}
		byArea[area] = append(byArea[area], poi)
	}
	return areaOrder, byArea
}
