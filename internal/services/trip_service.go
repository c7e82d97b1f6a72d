package services

import (
	"context"
	"strings"

	"github.com/samber/lo"

	dbm "journi/internal/models/db_models"
	"journi/internal/models/domain_models"
	"journi/internal/repositories"
	mem "journi/pkg/memcache"
	"journi/pkg/utils"
)

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, ownerID, name, destination string) (domain_models.Trip, error)
	ListTrips(ctx context.Context, ownerID string, page, pageSize int) ([]domain_models.Trip, int64, error)
	GetTrip(ctx context.Context, tripID, ownerID string) (domain_models.Trip, error)
	DeleteTrip(ctx context.Context, tripID, ownerID string) error
	SaveMeta(ctx context.Context, tripID, ownerID string, form domain_models.FormSnapshot) (domain_models.Trip, error)

	GeneratePlan(ctx context.Context, tripID, ownerID string, form domain_models.FormSnapshot) (domain_models.Trip, error)
	CollapseAll(ctx context.Context, tripID, ownerID string) (domain_models.Trip, error)
	DeletePlan(ctx context.Context, tripID, ownerID, planID string) (domain_models.Trip, error)
	ToggleCollapse(ctx context.Context, tripID, ownerID, planID string) (domain_models.Trip, error)
	PlanForm(ctx context.Context, tripID, ownerID, planID string) (domain_models.FormSnapshot, error)

	InsertSuggestion(ctx context.Context, tripID, ownerID string, target InsertTarget, s domain_models.Suggestion) (domain_models.Trip, error)
	RemoveSuggestion(ctx context.Context, tripID, ownerID, planID string, dayNumber int, placeKey string) (domain_models.Trip, error)
}

type TripService struct {
	repo     repositories.TripRepository
	ai       AIServiceInterface
	merger   *PlanMerger
	sessions mem.SessionStore
}

func NewTripService(
	repo repositories.TripRepository,
	ai AIServiceInterface,
	merger *PlanMerger,
	sessions mem.SessionStore,
) TripServiceInterface {
	return &TripService{
		repo:     repo,
		ai:       ai,
		merger:   merger,
		sessions: sessions,
	}
}

func (s *TripService) CreateTrip(ctx context.Context, ownerID, name, destination string) (domain_models.Trip, error) {
	name, destination = strings.TrimSpace(name), strings.TrimSpace(destination)
	if name == "" && destination == "" {
		return domain_models.Trip{}, utils.ErrInvalidInput
	}

	row := dbm.TripFromDomain(domain_models.Trip{
		OwnerID:     ownerID,
		Name:        lo.Ternary(name != "", name, destination),
		Destination: destination,
		Status:      domain_models.TripStatusDraft,
		Days:        []domain_models.Day{},
		Plans:       []domain_models.Plan{},
	})
	if err := s.repo.Create(ctx, row); err != nil {
		return domain_models.Trip{}, err
	}
	return row.ToDomain(), nil
}

func (s *TripService) ListTrips(ctx context.Context, ownerID string, page, pageSize int) ([]domain_models.Trip, int64, error) {
	if page < 1 || pageSize < 1 || pageSize > 100 {
		return nil, 0, utils.ErrInvalidPage
	}
	rows, total, err := s.repo.ListByOwner(ctx, ownerID, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	trips := lo.Map(rows, func(r dbm.Trip, _ int) domain_models.Trip {
		return s.merger.MigrateLegacyPlans(r.ToDomain())
	})
	return trips, total, nil
}

// GetTrip loads a trip, presenting legacy single-itinerary trips with one plan.
func (s *TripService) GetTrip(ctx context.Context, tripID, ownerID string) (domain_models.Trip, error) {
	row, err := s.repo.GetByID(ctx, tripID, ownerID)
	if err != nil {
		return domain_models.Trip{}, err
	}
	return s.merger.MigrateLegacyPlans(row.ToDomain()), nil
}

func (s *TripService) DeleteTrip(ctx context.Context, tripID, ownerID string) error {
	if err := s.repo.Delete(ctx, tripID, ownerID); err != nil {
		return err
	}
	s.sessions.Delete(mem.SessionKey(tripID, ownerID))
	return nil
}

// mutate loads, transforms and saves a trip. Nothing is written when fn fails.
func (s *TripService) mutate(
	ctx context.Context,
	tripID, ownerID string,
	fn func(domain_models.Trip) (domain_models.Trip, error),
) (domain_models.Trip, error) {
	trip, err := s.GetTrip(ctx, tripID, ownerID)
	if err != nil {
		return domain_models.Trip{}, err
	}
	next, err := fn(trip)
	if err != nil {
		return domain_models.Trip{}, err
	}

	row := dbm.TripFromDomain(next)
	if err := s.repo.Save(ctx, row); err != nil {
		return domain_models.Trip{}, err
	}
	next.UpdatedAt = row.UpdatedAt
	return next, nil
}

func (s *TripService) SaveMeta(ctx context.Context, tripID, ownerID string, form domain_models.FormSnapshot) (domain_models.Trip, error) {
	return s.mutate(ctx, tripID, ownerID, func(t domain_models.Trip) (domain_models.Trip, error) {
		t.Meta = form.Clone()
		t.DaysCount = lo.Ternary(form.NumDays > 0, form.NumDays, domain_models.DefaultNumDays)
		return t, nil
	})
}

// GeneratePlan asks the model for an itinerary and adds it as the new active
// plan. A model or parse failure leaves the stored trip untouched.
func (s *TripService) GeneratePlan(ctx context.Context, tripID, ownerID string, form domain_models.FormSnapshot) (domain_models.Trip, error) {
	return s.mutate(ctx, tripID, ownerID, func(t domain_models.Trip) (domain_models.Trip, error) {
		doc, err := s.ai.GenerateItinerary(ctx, ItineraryInput{
			Destination: TripDestination(t),
			NumDays:     form.NumDays,
			Budget:      form.Budget,
			Preferences: form.Preference,
			Reason:      form.Reason,
			Description: form.Overview,
		})
		if err != nil {
			return domain_models.Trip{}, err
		}
		return s.merger.CreatePlanFromGeneration(t, form, DecodeItinerary(doc)), nil
	})
}

func (s *TripService) CollapseAll(ctx context.Context, tripID, ownerID string) (domain_models.Trip, error) {
	return s.mutate(ctx, tripID, ownerID, func(t domain_models.Trip) (domain_models.Trip, error) {
		return s.merger.CollapseAll(t), nil
	})
}

func (s *TripService) DeletePlan(ctx context.Context, tripID, ownerID, planID string) (domain_models.Trip, error) {
	return s.mutate(ctx, tripID, ownerID, func(t domain_models.Trip) (domain_models.Trip, error) {
		return s.merger.DeletePlan(t, planID)
	})
}

func (s *TripService) ToggleCollapse(ctx context.Context, tripID, ownerID, planID string) (domain_models.Trip, error) {
	return s.mutate(ctx, tripID, ownerID, func(t domain_models.Trip) (domain_models.Trip, error) {
		return s.merger.ToggleCollapse(t, planID)
	})
}

func (s *TripService) PlanForm(ctx context.Context, tripID, ownerID, planID string) (domain_models.FormSnapshot, error) {
	trip, err := s.GetTrip(ctx, tripID, ownerID)
	if err != nil {
		return domain_models.FormSnapshot{}, err
	}
	return s.merger.PlanForm(trip, planID)
}

// InsertSuggestion adds an accepted suggestion. Without an explicit day the
// day selected in the trip's assistant session is used.
func (s *TripService) InsertSuggestion(
	ctx context.Context,
	tripID, ownerID string,
	target InsertTarget,
	suggestion domain_models.Suggestion,
) (domain_models.Trip, error) {
	if target.DayNumber <= 0 {
		// Read without ChatService's session lock: a concurrent context change
		// may or may not be seen. One user drives a trip at a time.
		if session, ok := s.sessions.Get(mem.SessionKey(tripID, ownerID)); ok && session.Selected != nil {
			target.DayNumber = session.Selected.DayNumber
		}
	}
	if target.DayNumber <= 0 {
		return domain_models.Trip{}, utils.ErrNoTargetDay
	}

	return s.mutate(ctx, tripID, ownerID, func(t domain_models.Trip) (domain_models.Trip, error) {
		return s.merger.InsertSuggestedPlace(t, target, suggestion)
	})
}

func (s *TripService) RemoveSuggestion(
	ctx context.Context,
	tripID, ownerID, planID string,
	dayNumber int,
	placeKey string,
) (domain_models.Trip, error) {
	return s.mutate(ctx, tripID, ownerID, func(t domain_models.Trip) (domain_models.Trip, error) {
		return s.merger.RemoveSuggestedPlace(t, planID, dayNumber, placeKey), nil
	})
}
