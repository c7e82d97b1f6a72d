package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"journi/internal/models/domain_models"
)

// Trip stores the whole itinerary aggregate in one row. Plans, days and the
// form snapshot are JSON columns since they are only ever read and written
// together with the trip.
type Trip struct {
	BaseModel
	OwnerID      string `gorm:"index;not null"`
	Name         string
	Destination  string
	Status       string `gorm:"type:varchar(16);not null;default:draft"`
	Meta         datatypes.JSONType[*domain_models.FormSnapshot]
	Days         datatypes.JSONType[[]domain_models.Day]
	TotalCost    float64
	DaysCount    int
	ShortSummary string
	ActivePlanID string
	Plans        datatypes.JSONType[[]domain_models.Plan]
}

func (t *Trip) ToDomain() domain_models.Trip {
	days := t.Days.Data()
	if days == nil {
		days = []domain_models.Day{}
	}
	plans := t.Plans.Data()
	if plans == nil {
		plans = []domain_models.Plan{}
	}
	return domain_models.Trip{
		ID:           t.ID.String(),
		OwnerID:      t.OwnerID,
		Name:         t.Name,
		Destination:  t.Destination,
		Status:       domain_models.TripStatus(t.Status),
		Meta:         t.Meta.Data(),
		Days:         days,
		TotalCost:    t.TotalCost,
		DaysCount:    t.DaysCount,
		ShortSummary: t.ShortSummary,
		ActivePlanID: t.ActivePlanID,
		Plans:        plans,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

// TripFromDomain builds a row from the aggregate. An empty or malformed id
// leaves the primary key unset so BeforeCreate assigns one.
func TripFromDomain(t domain_models.Trip) *Trip {
	row := &Trip{
		OwnerID:      t.OwnerID,
		Name:         t.Name,
		Destination:  t.Destination,
		Status:       string(t.Status),
		Meta:         datatypes.NewJSONType(t.Meta),
		Days:         datatypes.NewJSONType(t.Days),
		TotalCost:    t.TotalCost,
		DaysCount:    t.DaysCount,
		ShortSummary: t.ShortSummary,
		ActivePlanID: t.ActivePlanID,
		Plans:        datatypes.NewJSONType(t.Plans),
	}
	if id, err := uuid.Parse(t.ID); err == nil {
		row.ID = id
	}
	row.CreatedAt = t.CreatedAt
	row.UpdatedAt = t.UpdatedAt
	return row
}
