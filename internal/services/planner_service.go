package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/lib/pq"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/planner"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

const (
	sourceCatalog    = "catalog"
	sourceGenerative = "generative"
)

type PlannerServiceInterface interface {
	PlanTrip(ctx context.Context, req request_models.PlanRequest) (response_models.PlanResponse, error)
}

type PlannerService struct {
	cfg       planner.Config
	aiPlanner AIPlannerServiceInterface
	tripRepo  repositories.TripRepository
}

// NewPlannerService wires the allocator with its collaborators. The
// repository may be nil when persistence is disabled; aiPlanner may be
// nil when no generative model is configured.
func NewPlannerService(
	cfg planner.Config,
	aiPlanner AIPlannerServiceInterface,
	tripRepo repositories.TripRepository,
) (PlannerServiceInterface, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidConfig, err)
	}
	return &PlannerService{
		cfg:       cfg,
		aiPlanner: aiPlanner,
		tripRepo:  tripRepo,
	}, nil
}

func (s *PlannerService) PlanTrip(ctx context.Context, req request_models.PlanRequest) (response_models.PlanResponse, error) {
	if req.Destination == "" {
		return response_models.PlanResponse{}, utils.ErrDestinationRequired
	}

	result := planner.BuildItinerary(planner.Request{
		Destination: req.Destination,
		Days:        req.Days,
		Preferences: req.Preferences,
	}, s.cfg)

	itinerary := result.Itinerary
	source := sourceCatalog

	// For destinations outside the catalog, try the generative planner
	// before settling for the apology itinerary.
	if result.CatalogMiss && s.aiPlanner != nil {
		generated, err := s.aiPlanner.GenerateItinerary(ctx, req.Destination, req.Days, req.Preferences)
		if err != nil {
			log.Printf("Generative planner unavailable for %q: %v", req.Destination, err)
		} else {
			itinerary = generated
			source = sourceGenerative
		}
	}

	resp := toPlanResponse(itinerary, result.CatalogMiss, source)
	s.saveTrip(ctx, req, &resp)

	return resp, nil
}

// saveTrip records the planning result for the history endpoints. A
// storage failure only costs the history row, never the plan.
func (s *PlannerService) saveTrip(ctx context.Context, req request_models.PlanRequest, resp *response_models.PlanResponse) {
	if s.tripRepo == nil {
		return
	}

	payload, err := json.Marshal(resp)
	if err != nil {
		log.Printf("Error serializing trip payload: %v", err)
		return
	}

	trip := &db_models.Trip{
		Destination: resp.Destination,
		Days:        resp.Days,
		Preferences: pq.StringArray(req.Preferences),
		CatalogMiss: resp.CatalogMiss,
		Source:      resp.Source,
		Payload:     string(payload),
	}

	id, err := s.tripRepo.CreateTrip(ctx, trip)
	if err != nil {
		log.Printf("Error saving trip: %v", err)
		return
	}
	resp.TripID = id.String()
}

func toPlanResponse(it planner.Itinerary, catalogMiss bool, source string) response_models.PlanResponse {
	items := make([]response_models.ItineraryItem, 0, len(it.Items))
	for _, item := range it.Items {
		items = append(items, response_models.ItineraryItem{
			Day:  item.Day,
			Time: item.Time,
			Name: item.Name,
			Area: item.Area,
			Tags: item.Tags,
			URL:  item.URL,
		})
	}

	ranges := make([]response_models.DayRangeBlock, 0, len(it.DayRanges))
	for _, r := range it.DayRanges {
		ranges = append(ranges, response_models.DayRangeBlock{
			StartDay:     r.StartDay,
			EndDay:       r.EndDay,
			Description:  r.Description,
			ActivityType: string(r.ActivityType),
		})
	}

	return response_models.PlanResponse{
		Destination: it.Destination,
		Days:        it.Days,
		CatalogMiss: catalogMiss,
		Source:      source,
		Items:       items,
		DayRanges:   ranges,
	}
}
