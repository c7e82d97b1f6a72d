package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"journi/internal/models/domain_models"
)

// ChatSnapshot is a saved assistant transcript, kept verbatim.
type ChatSnapshot struct {
	BaseModel
	TripID   uuid.UUID `gorm:"type:uuid;index;not null"`
	OwnerID  string    `gorm:"index;not null"`
	Mode     string    `gorm:"type:varchar(16)"`
	SavedAt  string
	Messages datatypes.JSONType[[]domain_models.ChatMessage]
}

func (s *ChatSnapshot) ToDomain() domain_models.ChatSnapshot {
	return domain_models.ChatSnapshot{
		ID:       s.ID.String(),
		TripID:   s.TripID.String(),
		SavedAt:  s.SavedAt,
		Mode:     domain_models.ChatMode(s.Mode),
		Messages: s.Messages.Data(),
	}
}
