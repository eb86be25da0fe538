package planner

import "fmt"

// Config holds the thresholds that drive itinerary allocation. A
// process-wide default exists via DefaultConfig; every planning call
// takes its own Config value, so overlapping calls never share mutable
// configuration state.
type Config struct {
	// Maximum activities scheduled on a single day.
	MaxActivitiesPerDay int

	// Days with fewer activities than this count as sparse when sizing
	// the detailing window of long trips.
	MinActivitiesPerDay int

	// Trips at or under this many days are treated as dense: every day
	// gets at least one activity while POIs remain.
	DenseActivityDaysThreshold int

	// Minimum run of sparse days before they are merged into a range.
	MinDaysToMerge int

	// Hard cap on individually detailed days. Keeps a 1000-day request
	// from iterating 1000 times over the POI list.
	MaxIndividualActivityDays int

	// Day after which the per-day activity cap tapers off on long trips.
	ActivityTaperStartDay int

	// Trips over this length get their tail summarized as rest ranges.
	AutoRangeThresholdDays int
}

// DefaultConfig returns the stock configuration. The values mirror a
// typical city trip: four slots a day, two-week dense window, taper
// after the first week.
func DefaultConfig() Config {
	return Config{
		MaxActivitiesPerDay:        4,
		MinActivitiesPerDay:        2,
		DenseActivityDaysThreshold: 14,
		MinDaysToMerge:             3,
		MaxIndividualActivityDays:  50,
		ActivityTaperStartDay:      7,
		AutoRangeThresholdDays:     30,
	}
}

// Validate rejects configurations that would corrupt allocation. It is
// meant to run once when the configuration is constructed, not inside
// the planning loop.
func (c Config) Validate() error {
	if c.MaxActivitiesPerDay < 1 {
		return fmt.Errorf("planner config: MaxActivitiesPerDay must be at least 1, got %d", c.MaxActivitiesPerDay)
	}
	if c.MinActivitiesPerDay < 1 {
		return fmt.Errorf("planner config: MinActivitiesPerDay must be at least 1, got %d", c.MinActivitiesPerDay)
	}
	if c.DenseActivityDaysThreshold < 1 {
		return fmt.Errorf("planner config: DenseActivityDaysThreshold must be at least 1, got %d", c.DenseActivityDaysThreshold)
	}
	if c.MinDaysToMerge < 1 {
		return fmt.Errorf("planner config: MinDaysToMerge must be at least 1, got %d", c.MinDaysToMerge)
	}
	if c.MaxIndividualActivityDays < 1 {
		return fmt.Errorf("planner config: MaxIndividualActivityDays must be at least 1, got %d", c.MaxIndividualActivityDays)
	}
	if c.ActivityTaperStartDay < 1 {
		return fmt.Errorf("planner config: ActivityTaperStartDay must be at least 1, got %d", c.ActivityTaperStartDay)
	}
	if c.AutoRangeThresholdDays < c.DenseActivityDaysThreshold {
		return fmt.Errorf("planner config: AutoRangeThresholdDays (%d) must not be below DenseActivityDaysThreshold (%d)",
			c.AutoRangeThresholdDays, c.DenseActivityDaysThreshold)
	}
	return nil
}
