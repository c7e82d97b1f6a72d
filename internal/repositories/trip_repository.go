package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "journi/internal/models/db_models"
	"journi/pkg/utils"
)

// TripRepository is the ItineraryStore. Every lookup is scoped to the owner;
// a trip belonging to someone else is reported as not found.
type TripRepository interface {
	Create(ctx context.Context, trip *dbm.Trip) error
	GetByID(ctx context.Context, tripID, ownerID string) (*dbm.Trip, error)
	ListByOwner(ctx context.Context, ownerID string, page, pageSize int) ([]dbm.Trip, int64, error)
	Save(ctx context.Context, trip *dbm.Trip) error
	Delete(ctx context.Context, tripID, ownerID string) error
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func dbError(err error) error {
	return fmt.Errorf("%w: %w", utils.ErrDatabaseError, err)
}

func (r *tripRepository) Create(ctx context.Context, trip *dbm.Trip) error {
	if err := r.db.WithContext(ctx).Create(trip).Error; err != nil {
		return dbError(err)
	}
	return nil
}

func (r *tripRepository) GetByID(ctx context.Context, tripID, ownerID string) (*dbm.Trip, error) {
	id, err := uuid.Parse(tripID)
	if err != nil {
		return nil, utils.ErrTripNotFound
	}

	var trip dbm.Trip
	err = r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&trip).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrTripNotFound
	}
	if err != nil {
		return nil, dbError(err)
	}
	return &trip, nil
}

func (r *tripRepository) ListByOwner(ctx context.Context, ownerID string, page, pageSize int) ([]dbm.Trip, int64, error) {
	var (
		trips []dbm.Trip
		total int64
	)
	byOwner := func(db *gorm.DB) *gorm.DB { return db.Where("owner_id = ?", ownerID) }

	if err := r.db.WithContext(ctx).Model(&dbm.Trip{}).Scopes(byOwner).Count(&total).Error; err != nil {
		return nil, 0, dbError(err)
	}

	offset := (page - 1) * pageSize
	err := r.db.WithContext(ctx).
		Scopes(byOwner).
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&trips).Error
	if err != nil {
		return nil, 0, dbError(err)
	}
	return trips, total, nil
}

// Save overwrites every mutable column of an existing trip. Last write wins.
func (r *tripRepository) Save(ctx context.Context, trip *dbm.Trip) error {
	res := r.db.WithContext(ctx).
		Model(trip).
		Where("owner_id = ?", trip.OwnerID).
		Select("*").
		Omit("id", "created_at", "deleted_at", "owner_id").
		Updates(trip)
	if res.Error != nil {
		return dbError(res.Error)
	}
	if res.RowsAffected == 0 {
		return utils.ErrTripNotFound
	}
	return nil
}

func (r *tripRepository) Delete(ctx context.Context, tripID, ownerID string) error {
	id, err := uuid.Parse(tripID)
	if err != nil {
		return utils.ErrTripNotFound
	}

	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&dbm.Trip{})
	if res.Error != nil {
		return dbError(res.Error)
	}
	if res.RowsAffected == 0 {
		return utils.ErrTripNotFound
	}
	return nil
}
