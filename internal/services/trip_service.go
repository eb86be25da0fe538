package services

import (
	"context"
	"encoding/json"
	"log"

	"voyago/internal/models/db_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

type TripServiceInterface interface {
	ListTrips(ctx context.Context, page, pageSize int) ([]response_models.TripSummary, error)
	GetTripByID(ctx context.Context, id string) (response_models.TripDetail, error)
}

type TripService struct {
	tripRepo repositories.TripRepository
}

func NewTripService(tripRepo repositories.TripRepository) TripServiceInterface {
	return &TripService{tripRepo: tripRepo}
}

func (s *TripService) ListTrips(ctx context.Context, page, pageSize int) ([]response_models.TripSummary, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	trips, err := s.tripRepo.ListTrips(ctx, page, pageSize)
	if err != nil {
		log.Printf("Error listing trips: %v", err)
		return nil, utils.ErrDatabaseError
	}

	summaries := make([]response_models.TripSummary, 0, len(trips))
	for _, trip := range trips {
		summaries = append(summaries, toTripSummary(trip))
	}
	return summaries, nil
}

func (s *TripService) GetTripByID(ctx context.Context, id string) (response_models.TripDetail, error) {
	trip, err := s.tripRepo.GetTripByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching trip %s: %v", id, err)
		return response_models.TripDetail{}, utils.ErrDatabaseError
	}
	if trip == nil {
		return response_models.TripDetail{}, utils.ErrTripNotFound
	}

	detail := response_models.TripDetail{TripSummary: toTripSummary(*trip)}
	if err := json.Unmarshal([]byte(trip.Payload), &detail.Itinerary); err != nil {
		log.Printf("Error decoding stored itinerary for trip %s: %v", id, err)
		return response_models.TripDetail{}, utils.ErrDatabaseError
	}

	return detail, nil
}

func toTripSummary(trip db_models.Trip) response_models.TripSummary {
	return response_models.TripSummary{
		ID:          trip.ID.String(),
		Destination: trip.Destination,
		Days:        trip.Days,
		Preferences: trip.Preferences,
		Source:      trip.Source,
		CreatedAt:   trip.CreatedAt,
	}
}
