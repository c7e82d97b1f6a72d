package services

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/datatypes"

	dbm "journi/internal/models/db_models"
	"journi/internal/models/domain_models"
	"journi/internal/repositories"
	mem "journi/pkg/memcache"
	"journi/pkg/utils"
)

type ChatServiceInterface interface {
	GetSession(ctx context.Context, tripID, ownerID string) (domain_models.ChatSession, error)
	SendMessage(ctx context.Context, tripID, ownerID, message string) (domain_models.ChatSession, error)
	SwitchMode(ctx context.Context, tripID, ownerID string, mode domain_models.ChatMode) (domain_models.ChatSession, error)
	SetContext(ctx context.Context, tripID, ownerID string, sel *domain_models.SelectedContext) (domain_models.ChatSession, error)
	Reset(ctx context.Context, tripID, ownerID string) (domain_models.ChatSession, error)
	SaveSnapshot(ctx context.Context, tripID, ownerID string) (domain_models.ChatSnapshot, error)
	ListSnapshots(ctx context.Context, tripID, ownerID string) ([]domain_models.ChatSnapshot, error)
	BookHotel(ctx context.Context, tripID, ownerID string, booking domain_models.HotelBooking) (domain_models.BookingConfirmation, error)
}

// ChatService holds one assistant session per (trip, user). Operations on the
// same session run one at a time.
type ChatService struct {
	trips        repositories.TripRepository
	snapshots    repositories.ChatRepository
	sessions     mem.SessionStore
	orchestrator *ChatOrchestrator

	locks sessionLocks
}

// sessionLocks hands out one mutex per session key. An entry lives only while
// some caller holds or waits for it.
type sessionLocks struct {
	mu   sync.Mutex
	held map[string]*sessionLock
}

type sessionLock struct {
	sync.Mutex
	refs int
}

func (l *sessionLocks) acquire(key string) func() {
	l.mu.Lock()
	e, ok := l.held[key]
	if !ok {
		e = &sessionLock{}
		l.held[key] = e
	}
	e.refs++
	l.mu.Unlock()

	e.Lock()
	return func() {
		e.Unlock()
		l.mu.Lock()
		if e.refs--; e.refs == 0 {
			delete(l.held, key)
		}
		l.mu.Unlock()
	}
}

func (l *sessionLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.held)
}

func NewChatService(
	trips repositories.TripRepository,
	snapshots repositories.ChatRepository,
	sessions mem.SessionStore,
	orchestrator *ChatOrchestrator,
) ChatServiceInterface {
	return &ChatService{
		trips:        trips,
		snapshots:    snapshots,
		sessions:     sessions,
		orchestrator: orchestrator,
		locks:        sessionLocks{held: map[string]*sessionLock{}},
	}
}

// load checks the trip belongs to the owner and returns its session, starting
// a fresh one when none is cached. Callers hold the session lock.
func (s *ChatService) load(ctx context.Context, tripID, ownerID string) (domain_models.ChatSession, error) {
	if _, err := s.trips.GetByID(ctx, tripID, ownerID); err != nil {
		return domain_models.ChatSession{}, err
	}
	if session, ok := s.sessions.Get(mem.SessionKey(tripID, ownerID)); ok {
		return session, nil
	}
	return NewChatSession(tripID), nil
}

func (s *ChatService) update(
	ctx context.Context,
	tripID, ownerID string,
	fn func(domain_models.ChatSession) (domain_models.ChatSession, error),
) (domain_models.ChatSession, error) {
	key := mem.SessionKey(tripID, ownerID)
	defer s.locks.acquire(key)()

	session, err := s.load(ctx, tripID, ownerID)
	if err != nil {
		return domain_models.ChatSession{}, err
	}
	next, err := fn(session)
	if err != nil {
		return domain_models.ChatSession{}, err
	}
	s.sessions.Set(key, next)
	return next, nil
}

func (s *ChatService) GetSession(ctx context.Context, tripID, ownerID string) (domain_models.ChatSession, error) {
	return s.update(ctx, tripID, ownerID, func(cs domain_models.ChatSession) (domain_models.ChatSession, error) {
		return cs, nil
	})
}

func (s *ChatService) SendMessage(ctx context.Context, tripID, ownerID, message string) (domain_models.ChatSession, error) {
	return s.update(ctx, tripID, ownerID, func(cs domain_models.ChatSession) (domain_models.ChatSession, error) {
		return s.orchestrator.SendMessage(ctx, cs, message)
	})
}

func (s *ChatService) SwitchMode(ctx context.Context, tripID, ownerID string, mode domain_models.ChatMode) (domain_models.ChatSession, error) {
	return s.update(ctx, tripID, ownerID, func(cs domain_models.ChatSession) (domain_models.ChatSession, error) {
		return s.orchestrator.SwitchMode(cs, mode)
	})
}

func (s *ChatService) SetContext(ctx context.Context, tripID, ownerID string, sel *domain_models.SelectedContext) (domain_models.ChatSession, error) {
	return s.update(ctx, tripID, ownerID, func(cs domain_models.ChatSession) (domain_models.ChatSession, error) {
		return s.orchestrator.SetContext(cs, sel), nil
	})
}

func (s *ChatService) Reset(ctx context.Context, tripID, ownerID string) (domain_models.ChatSession, error) {
	return s.update(ctx, tripID, ownerID, func(cs domain_models.ChatSession) (domain_models.ChatSession, error) {
		return s.orchestrator.Reset(cs), nil
	})
}

func (s *ChatService) SaveSnapshot(ctx context.Context, tripID, ownerID string) (domain_models.ChatSnapshot, error) {
	session, err := s.GetSession(ctx, tripID, ownerID)
	if err != nil {
		return domain_models.ChatSnapshot{}, err
	}

	snap := s.orchestrator.Snapshot(session)
	tripUUID, err := uuid.Parse(tripID)
	if err != nil {
		return domain_models.ChatSnapshot{}, utils.ErrTripNotFound
	}
	row := &dbm.ChatSnapshot{
		TripID:   tripUUID,
		OwnerID:  ownerID,
		Mode:     string(snap.Mode),
		SavedAt:  snap.SavedAt,
		Messages: datatypes.NewJSONType(snap.Messages),
	}
	if err := s.snapshots.SaveSnapshot(ctx, row); err != nil {
		return domain_models.ChatSnapshot{}, err
	}
	return row.ToDomain(), nil
}

func (s *ChatService) ListSnapshots(ctx context.Context, tripID, ownerID string) ([]domain_models.ChatSnapshot, error) {
	if _, err := s.trips.GetByID(ctx, tripID, ownerID); err != nil {
		return nil, err
	}
	rows, err := s.snapshots.ListSnapshots(ctx, tripID, ownerID)
	if err != nil {
		return nil, err
	}
	return lo.Map(rows, func(r dbm.ChatSnapshot, _ int) domain_models.ChatSnapshot {
		return r.ToDomain()
	}), nil
}

func (s *ChatService) BookHotel(ctx context.Context, tripID, ownerID string, booking domain_models.HotelBooking) (domain_models.BookingConfirmation, error) {
	session, err := s.GetSession(ctx, tripID, ownerID)
	if err != nil {
		return domain_models.BookingConfirmation{}, err
	}
	return s.orchestrator.BookHotel(session, booking)
}
