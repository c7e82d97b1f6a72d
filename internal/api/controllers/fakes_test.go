package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"journi/internal/models/domain_models"
	"journi/internal/services"
)

const testUserID = "user-1"

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter() *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", testUserID)
		c.Set("trace_id", "trace-test")
		c.Next()
	})
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

type fakeAIService struct {
	rewrite    string
	rewriteErr error
	doc        services.ModelJSON
	docErr     error

	lastInput services.ItineraryInput
	lastMode  domain_models.ChatMode
	lastLabel string
	lastMsg   string
}

func (f *fakeAIService) RewriteDescription(_ context.Context, _ string) (string, error) {
	return f.rewrite, f.rewriteErr
}

func (f *fakeAIService) GenerateItinerary(_ context.Context, in services.ItineraryInput) (services.ModelJSON, error) {
	f.lastInput = in
	return f.doc, f.docErr
}

func (f *fakeAIService) Chat(_ context.Context, msg string, mode domain_models.ChatMode, label string) (services.ModelJSON, error) {
	f.lastMsg, f.lastMode, f.lastLabel = msg, mode, label
	return f.doc, f.docErr
}

type fakeTripService struct {
	trip  domain_models.Trip
	trips []domain_models.Trip
	form  domain_models.FormSnapshot
	err   error

	lastOwner    string
	lastTripID   string
	lastPlanID   string
	lastDay      int
	lastKey      string
	lastPage     int
	lastPageSize int
	lastForm     domain_models.FormSnapshot
	lastTarget   services.InsertTarget
	lastSugg     domain_models.Suggestion
}

func (f *fakeTripService) CreateTrip(_ context.Context, ownerID, name, destination string) (domain_models.Trip, error) {
	f.lastOwner = ownerID
	return domain_models.Trip{OwnerID: ownerID, Name: name, Destination: destination}, f.err
}

func (f *fakeTripService) ListTrips(_ context.Context, ownerID string, page, pageSize int) ([]domain_models.Trip, int64, error) {
	f.lastOwner, f.lastPage, f.lastPageSize = ownerID, page, pageSize
	return f.trips, int64(len(f.trips)), f.err
}

func (f *fakeTripService) GetTrip(_ context.Context, tripID, ownerID string) (domain_models.Trip, error) {
	f.lastTripID, f.lastOwner = tripID, ownerID
	return f.trip, f.err
}

func (f *fakeTripService) DeleteTrip(_ context.Context, tripID, ownerID string) error {
	f.lastTripID, f.lastOwner = tripID, ownerID
	return f.err
}

func (f *fakeTripService) SaveMeta(_ context.Context, tripID, _ string, form domain_models.FormSnapshot) (domain_models.Trip, error) {
	f.lastTripID, f.lastForm = tripID, form
	return f.trip, f.err
}

func (f *fakeTripService) GeneratePlan(_ context.Context, tripID, _ string, form domain_models.FormSnapshot) (domain_models.Trip, error) {
	f.lastTripID, f.lastForm = tripID, form
	return f.trip, f.err
}

func (f *fakeTripService) CollapseAll(_ context.Context, tripID, _ string) (domain_models.Trip, error) {
	f.lastTripID = tripID
	return f.trip, f.err
}

func (f *fakeTripService) DeletePlan(_ context.Context, tripID, _, planID string) (domain_models.Trip, error) {
	f.lastTripID, f.lastPlanID = tripID, planID
	return f.trip, f.err
}

func (f *fakeTripService) ToggleCollapse(_ context.Context, tripID, _, planID string) (domain_models.Trip, error) {
	f.lastTripID, f.lastPlanID = tripID, planID
	return f.trip, f.err
}

func (f *fakeTripService) PlanForm(_ context.Context, tripID, _, planID string) (domain_models.FormSnapshot, error) {
	f.lastTripID, f.lastPlanID = tripID, planID
	return f.form, f.err
}

func (f *fakeTripService) InsertSuggestion(_ context.Context, tripID, _ string, target services.InsertTarget, s domain_models.Suggestion) (domain_models.Trip, error) {
	f.lastTripID, f.lastTarget, f.lastSugg = tripID, target, s
	return f.trip, f.err
}

func (f *fakeTripService) RemoveSuggestion(_ context.Context, tripID, _, planID string, dayNumber int, placeKey string) (domain_models.Trip, error) {
	f.lastTripID, f.lastPlanID, f.lastDay, f.lastKey = tripID, planID, dayNumber, placeKey
	return f.trip, f.err
}

type fakeChatService struct {
	session      domain_models.ChatSession
	snapshot     domain_models.ChatSnapshot
	snapshots    []domain_models.ChatSnapshot
	confirmation domain_models.BookingConfirmation
	err          error

	lastMsg     string
	lastMode    domain_models.ChatMode
	lastSel     *domain_models.SelectedContext
	lastBooking domain_models.HotelBooking
	resets      int
}

func (f *fakeChatService) GetSession(_ context.Context, _, _ string) (domain_models.ChatSession, error) {
	return f.session, f.err
}

func (f *fakeChatService) SendMessage(_ context.Context, _, _, message string) (domain_models.ChatSession, error) {
	f.lastMsg = message
	return f.session, f.err
}

func (f *fakeChatService) SwitchMode(_ context.Context, _, _ string, mode domain_models.ChatMode) (domain_models.ChatSession, error) {
	f.lastMode = mode
	return f.session, f.err
}

func (f *fakeChatService) SetContext(_ context.Context, _, _ string, sel *domain_models.SelectedContext) (domain_models.ChatSession, error) {
	f.lastSel = sel
	return f.session, f.err
}

func (f *fakeChatService) Reset(_ context.Context, _, _ string) (domain_models.ChatSession, error) {
	f.resets++
	return f.session, f.err
}

func (f *fakeChatService) SaveSnapshot(_ context.Context, _, _ string) (domain_models.ChatSnapshot, error) {
	return f.snapshot, f.err
}

func (f *fakeChatService) ListSnapshots(_ context.Context, _, _ string) ([]domain_models.ChatSnapshot, error) {
	return f.snapshots, f.err
}

func (f *fakeChatService) BookHotel(_ context.Context, _, _ string, booking domain_models.HotelBooking) (domain_models.BookingConfirmation, error) {
	f.lastBooking = booking
	return f.confirmation, f.err
}
