package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "journi/internal/models/db_models"
	"journi/pkg/utils"
)

type ChatRepository interface {
	SaveSnapshot(ctx context.Context, snapshot *dbm.ChatSnapshot) error
	ListSnapshots(ctx context.Context, tripID, ownerID string) ([]dbm.ChatSnapshot, error)
}

type chatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) SaveSnapshot(ctx context.Context, snapshot *dbm.ChatSnapshot) error {
	if err := r.db.WithContext(ctx).Create(snapshot).Error; err != nil {
		return dbError(err)
	}
	return nil
}

// ListSnapshots returns saved transcripts for a trip, newest first.
func (r *chatRepository) ListSnapshots(ctx context.Context, tripID, ownerID string) ([]dbm.ChatSnapshot, error) {
	id, err := uuid.Parse(tripID)
	if err != nil {
		return nil, utils.ErrTripNotFound
	}

	var snapshots []dbm.ChatSnapshot
	err = r.db.WithContext(ctx).
		Where("trip_id = ? AND owner_id = ?", id, ownerID).
		Order("created_at DESC").
		Find(&snapshots).Error
	if err != nil {
		return nil, dbError(err)
	}
	return snapshots, nil
}
