package response_models

// ItineraryItem is one scheduled activity.
type ItineraryItem struct {
	Day  int      `json:"day"`
	Time string   `json:"time"`
	Name string   `json:"name"`
	Area string   `json:"area"`
	Tags []string `json:"tags"`
	URL  string   `json:"url"`
}

// DayRangeBlock is a labeled span of days without individual
// activities.
type DayRangeBlock struct {
	StartDay     int    `json:"start_day"`
	EndDay       int    `json:"end_day"`
	Description  string `json:"description"`
	ActivityType string `json:"activity_type"`
}

// PlanResponse is the full planning result. CatalogMiss tells callers
// the destination was outside the built-in catalog; Source says which
// planner produced the itinerary ("catalog" or "generative").
type PlanResponse struct {
	Destination string          `json:"destination"`
	Days        int             `json:"days"`
	CatalogMiss bool            `json:"catalog_miss"`
	Source      string          `json:"source"`
	TripID      string          `json:"trip_id,omitempty"`
	Items       []ItineraryItem `json:"items"`
	DayRanges   []DayRangeBlock `json:"day_ranges"`
}

// TripSummary is one row of the saved-trip history.
type TripSummary struct {
	ID          string   `json:"id"`
	Destination string   `json:"destination"`
	Days        int      `json:"days"`
	Preferences []string `json:"preferences"`
	Source      string   `json:"source"`
	CreatedAt   int64    `json:"created_at"`
}

// TripDetail is a saved trip together with its stored itinerary.
type TripDetail struct {
	TripSummary
	Itinerary PlanResponse `json:"itinerary"`
}
