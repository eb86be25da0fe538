package services

import (
	"context"
	"encoding/json"
	"log"
	"regexp"

	"voyago/internal/planner"
	"voyago/pkg/utils"
)

type AIPlannerServiceInterface interface {
	GenerateItinerary(ctx context.Context, destination string, days int, preferences []string) (planner.Itinerary, error)
}

type AIPlannerService struct {
	model utils.ItineraryModelInterface
	cfg   planner.Config
}

// NewAIPlannerService wraps the generative model. A nil model is
// allowed; GenerateItinerary then reports the model as unavailable and
// callers keep the catalog fallback.
func NewAIPlannerService(model utils.ItineraryModelInterface, cfg planner.Config) AIPlannerServiceInterface {
	return &AIPlannerService{
		model: model,
		cfg:   cfg,
	}
}

// aiItinerary mirrors the JSON schema the model is instructed to
// return.
type aiItinerary struct {
	Destination string  `json:"destination"`
	Days        []aiDay `json:"days"`
}

type aiDay struct {
	Day        int          `json:"day"`
	Activities []aiActivity `json:"activities"`
}

type aiActivity struct {
	Time string   `json:"time"`
	Name string   `json:"name"`
	Area string   `json:"area"`
	Tags []string `json:"tags"`
	URL  string   `json:"url"`
}

var timeLabelPattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

func (s *AIPlannerService) GenerateItinerary(ctx context.Context, destination string, days int, preferences []string) (planner.Itinerary, error) {
	if s.model == nil {
		return planner.Itinerary{}, utils.ErrAIUnavailable
	}

	if days < 1 {
		days = 1
	}

	// Only the head of the trip gets individual detailing; the rest is
	// compacted into ranges just like catalog plans.
	detailed := days
	if detailed > s.cfg.DenseActivityDaysThreshold {
		detailed = s.cfg.DenseActivityDaysThreshold
	}
	if detailed > s.cfg.MaxIndividualActivityDays {
		detailed = s.cfg.MaxIndividualActivityDays
	}

	raw, err := s.model.GenerateItineraryJSON(ctx, destination, detailed, preferences)
	if err != nil {
		return planner.Itinerary{}, utils.ErrUnexpectedBehaviorOfAI
	}

	var parsed aiItinerary
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		log.Printf("Error parsing generative itinerary: %v", err)
		return planner.Itinerary{}, utils.ErrUnexpectedBehaviorOfAI
	}

	itinerary := planner.Itinerary{
		Destination: destination,
		Days:        days,
		Items:       []planner.Item{},
		DayRanges:   []planner.DayRange{},
	}

	lastDay := 0
	for _, day := range parsed.Days {
		if day.Day < 1 || day.Day > detailed {
			continue
		}
		for _, activity := range day.Activities {
			if activity.Name == "" {
				continue
			}
			timeLabel := activity.Time
			if !timeLabelPattern.MatchString(timeLabel) {
				timeLabel = "09:00"
			}
			itinerary.Items = append(itinerary.Items, planner.Item{
				Day:  day.Day,
				Time: timeLabel,
				Name: activity.Name,
				Area: activity.Area,
				Tags: activity.Tags,
				URL:  activity.URL,
			})
			if day.Day > lastDay {
				lastDay = day.Day
			}
		}
	}

	if lastDay == 0 {
		return planner.Itinerary{}, utils.ErrUnexpectedBehaviorOfAI
	}

	itinerary.DayRanges = planner.TailRanges(days, lastDay, s.cfg)
	// Models sometimes skip days; fold any holes into buffer ranges so
	// the coverage invariant holds for generated plans too.
	planner.CoverRemainder(&itinerary)

	return itinerary, nil
}
