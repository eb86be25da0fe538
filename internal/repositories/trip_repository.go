package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"voyago/internal/models/db_models"
)

type TripRepository interface {
	CreateTrip(ctx context.Context, trip *db_models.Trip) (uuid.UUID, error)
	ListTrips(ctx context.Context, page, pageSize int) ([]db_models.Trip, error)
	GetTripByID(ctx context.Context, id string) (*db_models.Trip, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) CreateTrip(ctx context.Context, trip *db_models.Trip) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(trip).Error; err != nil {
		return uuid.Nil, err
	}
	return trip.ID, nil
}

func (r *tripRepository) ListTrips(ctx context.Context, page, pageSize int) ([]db_models.Trip, error) {
	var trips []db_models.Trip

	offset := (page - 1) * pageSize
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&trips).Error
	if err != nil {
		return nil, err
	}

	return trips, nil
}

func (r *tripRepository) GetTripByID(ctx context.Context, id string) (*db_models.Trip, error) {
	tripID, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}

	var trip db_models.Trip
	err = r.db.WithContext(ctx).First(&trip, "id = ?", tripID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &trip, nil
}
