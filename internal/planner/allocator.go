package planner

import (
	"fmt"
	"strings"

	"voyago/internal/catalog"
)

// Request is the structured planning input. Days at or below zero are
// clamped to minTripDays; an unknown destination yields a degraded
// single-day itinerary rather than an error.
type Request struct {
	Destination string
	Days        int
	Preferences []string
}

// PlanResult pairs the itinerary with allocation metadata. CatalogMiss
// is the explicit signal that the destination was not in the catalog,
// so callers never have to sniff item text. Repaired flags activation
// of the defensive gap-repair pass; it staying false is asserted by the
// test suite.
type PlanResult struct {
	Itinerary    Itinerary
	DetailedDays int
	CatalogMiss  bool
	Repaired     bool
}

// timeSlot binds a display label to the hour used for open-window
// checks.
type timeSlot struct {
	Label string
	Hour  int
}

// The four daily slots, in scheduling order.
var timeSlots = []timeSlot{
	{"09:00", 9},
	{"12:00", 12},
	{"15:00", 15},
	{"18:00", 18},
}

// minTripDays is the floor applied to non-positive day counts.
const minTripDays = 1

// BuildItinerary produces a complete itinerary for the request. It is a
// pure function of its inputs: identical request, catalog contents and
// config always yield a structurally identical result.
//
// Guarantees:
//   - the itinerary has exactly the requested day count (post-clamping)
//   - every day from 1 to Days is covered by an item, a range, or both
//   - no POI appears more than once
//   - no day carries more than cfg.MaxActivitiesPerDay items
func BuildItinerary(req Request, cfg Config) PlanResult {
	days := req.Days
	if days < minTripDays {
		days = minTripDays
	}

	prefs := make(map[string]struct{}, len(req.Preferences))
	for _, p := range req.Preferences {
		prefs[p] = struct{}{}
	}

	pois := catalog.Lookup(req.Destination)
	if len(pois) == 0 {
		return PlanResult{
			Itinerary:   unsupportedItinerary(req.Destination),
			CatalogMiss: true,
		}
	}

	ranked := rankPOIs(pois, prefs)
	areaOrder, byArea := groupByArea(ranked)

	// Individual detailing never runs past the POI count: a day cannot
	// be detailed without at least one POI to put on it, and the cap
	// bounds work for arbitrarily long trips.
	detailedDays := min3(days, cfg.MaxIndividualActivityDays, len(ranked))

	state := allocState{
		ranked:       ranked,
		areaOrder:    areaOrder,
		byArea:       byArea,
		used:         make(map[string]struct{}, len(ranked)),
		days:         days,
		detailedDays: detailedDays,
		cfg:          cfg,
	}

	items := state.fillDays()
	items = state.topUp(items)

	// Hand everything after the last day that actually received an
	// activity to the compactor. When the POIs run out before the
	// detailing window closes, the ranges start early instead of
	// leaving a hole for the repair pass.
	lastDetailed := detailedDays
	if last := lastItemDay(items); last < lastDetailed {
		lastDetailed = last
	}

	itinerary := Itinerary{
		Destination: req.Destination,
		Days:        days,
		Items:       items,
		DayRanges:   TailRanges(days, lastDetailed, cfg),
	}

	repaired := repairGaps(&itinerary)

	return PlanResult{
		Itinerary:    itinerary,
		DetailedDays: detailedDays,
		CatalogMiss:  false,
		Repaired:     repaired,
	}
}

// allocState is the per-call allocator state. It is owned by a single
// BuildItinerary invocation and never shared.
type allocState struct {
	ranked       []catalog.POI
	areaOrder    []string
	byArea       map[string][]catalog.POI
	used         map[string]struct{}
	days         int
	detailedDays int
	cfg          Config
}

func (s *allocState) allUsed() bool {
	return len(s.used) >= len(s.ranked)
}

func (s *allocState) isDense() bool {
	return s.days <= s.cfg.DenseActivityDaysThreshold
}

// targetPerDay distributes the POI count evenly over the detailing
// window for dense trips. An average between one and two means one per
// day with the top-up pass handing out the remainder; two or more means
// two per day.
func (s *allocState) targetPerDay() int {
	if s.detailedDays == 0 || len(s.ranked) == 0 {
		return s.cfg.MaxActivitiesPerDay
	}

	base := len(s.ranked) / s.detailedDays
	if base > 1 {
		base = 1
	}
	extra := (len(s.ranked) - base*s.detailedDays) / s.detailedDays

	target := base + extra
	if target < 1 {
		target = 1
	}
	if target > s.cfg.MaxActivitiesPerDay {
		target = s.cfg.MaxActivitiesPerDay
	}

	if s.isDense() {
		avg := float64(len(s.ranked)) / float64(s.detailedDays)
		switch {
		case avg >= 1.0 && avg < 2.0:
			target = 1
		case avg >= 2.0:
			target = int(avg)
			if target > 2 {
				target = 2
			}
		}
	}

	return target
}

// capForDay returns the activity cap for one day. Dense trips use the
// even distribution target; longer trips start at the configured max
// and shed one activity per ten days past the taper start, never
// dropping below one.
func (s *allocState) capForDay(day, target int) int {
	if s.isDense() {
		return target
	}
	if day <= s.cfg.ActivityTaperStartDay {
		return s.cfg.MaxActivitiesPerDay
	}
	limit := s.cfg.MaxActivitiesPerDay - (day-s.cfg.ActivityTaperStartDay)/10
	if limit < 1 {
		limit = 1
	}
	return limit
}

// fillDays runs the main allocation loop: one area per day in
// round-robin order, four slots per day, area-local candidates first
// and the global ranked list as fallback.
func (s *allocState) fillDays() []Item {
	var items []Item
	target := s.targetPerDay()
	areaIndex := 0

	for day := 1; day <= s.detailedDays; day++ {
		if areaIndex >= len(s.areaOrder) {
			areaIndex = 0
		}
		areaName := s.areaOrder[areaIndex]
		areaPOIs := s.byArea[areaName]
		areaIndex++

		maxToday := s.capForDay(day, target)

		// Dense trips promise each day at least one activity while
		// unused POIs remain, even past the nominal cap.
		minToday := 0
		if s.isDense() && !s.allUsed() {
			minToday = 1
		}

		slotsFilled := 0
		for _, slot := range timeSlots {
			if s.allUsed() {
				break
			}
			if slotsFilled >= maxToday && slotsFilled >= minToday {
				break
			}

			if poi, ok := s.takeOpenPOI(areaPOIs, slot.Hour); ok {
				items = append(items, newItem(day, slot.Label, poi))
				slotsFilled++
				continue
			}
			if poi, ok := s.takeOpenPOI(s.ranked, slot.Hour); ok {
				items = append(items, newItem(day, slot.Label, poi))
				slotsFilled++
			}
			// No candidate fits this slot; leave it empty.
		}
	}

	return items
}

// takeOpenPOI finds the first unused POI in candidates whose opening
// window covers the hour, marking it used.
func (s *allocState) takeOpenPOI(candidates []catalog.POI, hour int) (catalog.POI, bool) {
	for _, poi := range candidates {
		if _, taken := s.used[poi.Name]; taken {
			continue
		}
		if poi.Open.Contains(hour) {
			s.used[poi.Name] = struct{}{}
			return poi, true
		}
	}
	return catalog.POI{}, false
}

// topUp revisits dense-trip days holding fewer than two activities and
// gives each one extra POI in its first free compatible slot. One POI
// per day per pass; the next ranked POI that fits nowhere on a day is
// simply skipped for that day.
func (s *allocState) topUp(items []Item) []Item {
	if s.allUsed() || !s.isDense() {
		return items
	}

	for day := 1; day <= s.detailedDays; day++ {
		if s.allUsed() {
			break
		}

		var dayItems []Item
		for _, item := range items {
			if item.Day == day {
				dayItems = append(dayItems, item)
			}
		}
		if len(dayItems) >= 2 {
			continue
		}

		poi, ok := s.nextUnused()
		if !ok {
			break
		}

		usedTimes := make(map[string]struct{}, len(dayItems))
		for _, item := range dayItems {
			usedTimes[item.Time] = struct{}{}
		}

		for _, slot := range timeSlots {
			if _, busy := usedTimes[slot.Label]; busy {
				continue
			}
			if poi.Open.Contains(slot.Hour) {
				s.used[poi.Name] = struct{}{}
				items = append(items, newItem(day, slot.Label, poi))
				break
			}
		}
	}

	return items
}

// nextUnused returns the highest-ranked POI not yet placed.
func (s *allocState) nextUnused() (catalog.POI, bool) {
	for _, poi := range s.ranked {
		if _, taken := s.used[poi.Name]; !taken {
			return poi, true
		}
	}
	return catalog.POI{}, false
}

func newItem(day int, timeLabel string, poi catalog.POI) Item {
	return Item{
		Day:  day,
		Time: timeLabel,
		Name: poi.Name,
		Area: poi.Area,
		Tags: poi.Tags,
		URL:  poi.URL,
	}
}

// unsupportedItinerary is the user-facing fallback for destinations
// missing from the catalog: a single day with an apology and the list
// of cities that do work. It is always one day long regardless of the
// requested count, so the coverage invariant holds without ranges.
func unsupportedItinerary(city string) Itinerary {
	destination := city
	if destination == "" {
		destination = "Unknown"
	}

	mapURL := ""
	if city != "" {
		mapURL = "https://maps.google.com/?q=" + city
	}

	supported := catalog.SupportedCities()

	return Itinerary{
		Destination: destination,
		Days:        1,
		Items: []Item{
			{
				Day:  1,
				Time: "09:00",
				Name: fmt.Sprintf("Sorry, I don't have data for %s yet.", city),
				Area: "",
				Tags: []string{},
				URL:  mapURL,
			},
			{
				Day:  1,
				Time: "10:00",
				Name: "I currently support: " + strings.Join(supported, ", "),
				Area: "",
				Tags: []string{},
				URL:  "",
			},
		},
		DayRanges: []DayRange{},
	}
}

func lastItemDay(items []Item) int {
	last := 0
	for _, item := range items {
		if item.Day > last {
			last = item.Day
		}
	}
	return last
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
