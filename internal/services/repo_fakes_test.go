package services

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	dbm "journi/internal/models/db_models"
	"journi/pkg/utils"
)

type fakeTripRepo struct {
	mu      sync.Mutex
	rows    map[string]dbm.Trip
	saveErr error
	saves   int
}

func newFakeTripRepo() *fakeTripRepo {
	return &fakeTripRepo{rows: map[string]dbm.Trip{}}
}

func (r *fakeTripRepo) Create(_ context.Context, trip *dbm.Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	trip.CreatedAt, trip.UpdatedAt = 1, 1
	r.rows[trip.ID.String()] = *trip
	return nil
}

func (r *fakeTripRepo) GetByID(_ context.Context, tripID, ownerID string) (*dbm.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[tripID]
	if !ok || row.OwnerID != ownerID {
		return nil, utils.ErrTripNotFound
	}
	return &row, nil
}

func (r *fakeTripRepo) ListByOwner(_ context.Context, ownerID string, _, _ int) ([]dbm.Trip, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []dbm.Trip
	for _, row := range r.rows {
		if row.OwnerID == ownerID {
			out = append(out, row)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeTripRepo) Save(_ context.Context, trip *dbm.Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	existing, ok := r.rows[trip.ID.String()]
	if !ok || existing.OwnerID != trip.OwnerID {
		return utils.ErrTripNotFound
	}
	r.saves++
	trip.UpdatedAt = existing.UpdatedAt + 1
	r.rows[trip.ID.String()] = *trip
	return nil
}

func (r *fakeTripRepo) Delete(_ context.Context, tripID, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[tripID]
	if !ok || row.OwnerID != ownerID {
		return utils.ErrTripNotFound
	}
	delete(r.rows, tripID)
	return nil
}

type fakeChatRepo struct {
	saved []dbm.ChatSnapshot
}

func (r *fakeChatRepo) SaveSnapshot(_ context.Context, snapshot *dbm.ChatSnapshot) error {
	if snapshot.ID == uuid.Nil {
		snapshot.ID = uuid.New()
	}
	r.saved = append(r.saved, *snapshot)
	return nil
}

func (r *fakeChatRepo) ListSnapshots(_ context.Context, tripID, ownerID string) ([]dbm.ChatSnapshot, error) {
	var out []dbm.ChatSnapshot
	for _, s := range r.saved {
		if s.TripID.String() == tripID && s.OwnerID == ownerID {
			out = append(out, s)
		}
	}
	return out, nil
}

var errDiskFull = errors.New("disk full")
