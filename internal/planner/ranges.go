package planner

import (
	"fmt"
	"log"
)

const (
	// Ranges are chunked so no single block spans more than a week.
	rangeChunkDays = 7

	// Trips past this length get week numbers in their range labels.
	weekLabelThresholdDays = 100
)

// TailRanges summarizes the span after the last detailed day into
// week-sized DayRange chunks. The description tier follows total trip
// length: short trips read as free exploration, medium trips as buffer
// time, long trips as rest, with week numbers once the trip passes a
// hundred days.
func TailRanges(totalDays, lastDetailedDay int, cfg Config) []DayRange {
	if lastDetailedDay >= totalDays {
		return []DayRange{}
	}

	var description string
	var activityType ActivityType
	switch {
	case totalDays <= cfg.DenseActivityDaysThreshold:
		description = "Free exploration / Rest days"
		activityType = ActivityFreeExploration
	case totalDays <= cfg.AutoRangeThresholdDays:
		description = "Leisure time / Optional activities"
		activityType = ActivityBuffer
	default:
		description = "Extended rest period / Free time to explore at your own pace"
		activityType = ActivityRest
	}

	var ranges []DayRange
	for start := lastDetailedDay + 1; start <= totalDays; start = ranges[len(ranges)-1].EndDay + 1 {
		end := start + rangeChunkDays - 1
		if end > totalDays {
			end = totalDays
		}

		chunkDesc := description
		if totalDays > weekLabelThresholdDays {
			chunkDesc = fmt.Sprintf("%s — Week %d", description, (start-1)/rangeChunkDays+1)
		}

		ranges = append(ranges, DayRange{
			StartDay:     start,
			EndDay:       end,
			Description:  chunkDesc,
			ActivityType: activityType,
		})
	}

	return ranges
}

// CoverRemainder fills every uncovered day of the itinerary with
// buffer ranges. Meant for adopting externally generated itineraries
// that may skip days; the allocator's own output never needs it.
func CoverRemainder(it *Itinerary) {
	for _, run := range groupConsecutiveDays(it.UncoveredDays()) {
		it.DayRanges = append(it.DayRanges, DayRange{
			StartDay:     run[0],
			EndDay:       run[1],
			Description:  "Free time / Rest",
			ActivityType: ActivityBuffer,
		})
	}
}

// repairGaps is the last line of defense for the coverage invariant:
// any day with neither an item nor a range is folded into a buffer
// range. The normal allocation path never leaves such days, so an
// activation is a defect signal and gets logged as one.
func repairGaps(it *Itinerary) bool {
	uncovered := it.UncoveredDays()
	if len(uncovered) == 0 {
		return false
	}

	log.Printf("planner: coverage invariant violated for %s (%d days), repairing gap days %v",
		it.Destination, it.Days, uncovered)

	for _, run := range groupConsecutiveDays(uncovered) {
		it.DayRanges = append(it.DayRanges, DayRange{
			StartDay:     run[0],
			EndDay:       run[1],
			Description:  "Free time / Rest",
			ActivityType: ActivityBuffer,
		})
	}

	return true
}

// groupConsecutiveDays merges a sorted day list into maximal
// consecutive [start, end] runs.
func groupConsecutiveDays(days []int) [][2]int {
	if len(days) == 0 {
		return nil
	}

	var runs [][2]int
	start, prev := days[0], days[0]

	for _, day := range days[1:] {
		if day == prev+1 {
			prev = day
			continue
		}
		runs = append(runs, [2]int{start, prev})
		start, prev = day, day
	}

	runs = append(runs, [2]int{start, prev})
	return runs
}
