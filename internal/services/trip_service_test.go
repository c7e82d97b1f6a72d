package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "journi/internal/models/db_models"
	"journi/internal/models/domain_models"
	mem "journi/pkg/memcache"
	"journi/pkg/utils"
)

const itineraryJSON = `{
	"totalCost": 500000,
	"shortSummary": "Hai ngày ở Đà Lạt",
	"days": [
		{"dayNumber": 1, "places": [{"name": "Chợ Đà Lạt", "time": "08:00", "cost": 50000}]},
		{"dayNumber": 2, "places": [{"name": "Langbiang", "description": "Leo núi"}]}
	]
}`

type tripFixture struct {
	svc      TripServiceInterface
	repo     *fakeTripRepo
	ai       *fakeAI
	sessions *mem.ChatSessions
}

func newTripFixture() tripFixture {
	repo := newFakeTripRepo()
	ai := &fakeAI{genRaw: itineraryJSON}
	sessions := mem.NewChatSessions(time.Minute)
	return tripFixture{
		svc:      NewTripService(repo, ai, testMerger(), sessions),
		repo:     repo,
		ai:       ai,
		sessions: sessions,
	}
}

func TestCreateTrip(t *testing.T) {
	f := newTripFixture()
	ctx := context.Background()

	trip, err := f.svc.CreateTrip(ctx, "u1", "", " Đà Lạt ")
	require.NoError(t, err)
	assert.Equal(t, "Đà Lạt", trip.Name)
	assert.Equal(t, domain_models.TripStatusDraft, trip.Status)
	assert.Empty(t, trip.Plans)
	assert.NotEmpty(t, trip.ID)

	_, err = f.svc.CreateTrip(ctx, "u1", " ", "")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestListTripsValidatesPage(t *testing.T) {
	f := newTripFixture()
	for _, p := range [][2]int{{0, 10}, {1, 0}, {1, 101}} {
		_, _, err := f.svc.ListTrips(context.Background(), "u1", p[0], p[1])
		assert.ErrorIs(t, err, utils.ErrInvalidPage)
	}
}

func TestGeneratePlanScenario(t *testing.T) {
	f := newTripFixture()
	ctx := context.Background()
	trip, err := f.svc.CreateTrip(ctx, "u1", "Chuyến đi", "Đà Lạt")
	require.NoError(t, err)

	got, err := f.svc.GeneratePlan(ctx, trip.ID, "u1", domain_models.FormSnapshot{NumDays: 2, Budget: "3 triệu"})
	require.NoError(t, err)

	assert.Equal(t, "Đà Lạt", f.ai.lastInput.Destination)
	assert.Equal(t, 2, f.ai.lastInput.NumDays)
	assert.Equal(t, domain_models.TripStatusPlanned, got.Status)
	require.Len(t, got.Plans, 1)
	assert.Equal(t, "Hành trình Đà Lạt", got.Plans[0].Title)
	assert.Len(t, got.Days, 2)
	assert.Equal(t, 500000.0, got.TotalCost)
	assert.Equal(t, 2, got.DaysCount)

	again, err := f.svc.GeneratePlan(ctx, trip.ID, "u1", domain_models.FormSnapshot{NumDays: 2, Reason: "Lần hai"})
	require.NoError(t, err)
	require.Len(t, again.Plans, 2)
	assert.True(t, again.Plans[0].Collapsed)
	assert.False(t, again.Plans[1].Collapsed)
	assert.Equal(t, again.Plans[1].ID, again.ActivePlanID)

	stored, err := f.svc.GetTrip(ctx, trip.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, again.Plans, stored.Plans)
}

func TestGeneratePlanFailureLeavesTripUntouched(t *testing.T) {
	f := newTripFixture()
	ctx := context.Background()
	trip, _ := f.svc.CreateTrip(ctx, "u1", "x", "Huế")

	f.ai.genRaw = "không phải JSON"
	_, err := f.svc.GeneratePlan(ctx, trip.ID, "u1", domain_models.FormSnapshot{})
	assert.ErrorIs(t, err, utils.ErrParse)

	f.ai.genErr = utils.ErrModelCall
	_, err = f.svc.GeneratePlan(ctx, trip.ID, "u1", domain_models.FormSnapshot{})
	assert.ErrorIs(t, err, utils.ErrModelCall)

	assert.Zero(t, f.repo.saves)
}

func TestInsertSuggestionUsesSessionContext(t *testing.T) {
	f := newTripFixture()
	ctx := context.Background()
	trip, _ := f.svc.CreateTrip(ctx, "u1", "x", "Đà Lạt")
	_, err := f.svc.GeneratePlan(ctx, trip.ID, "u1", domain_models.FormSnapshot{NumDays: 2})
	require.NoError(t, err)

	_, err = f.svc.InsertSuggestion(ctx, trip.ID, "u1", InsertTarget{}, domain_models.Suggestion{Name: "Cà phê"})
	assert.ErrorIs(t, err, utils.ErrNoTargetDay)

	session := NewChatSession(trip.ID)
	session.Selected = &domain_models.SelectedContext{Label: "Ngày 2 – Langbiang", DayNumber: 2}
	f.sessions.Set(mem.SessionKey(trip.ID, "u1"), session)

	got, err := f.svc.InsertSuggestion(ctx, trip.ID, "u1", InsertTarget{}, domain_models.Suggestion{Name: "Cà phê"})
	require.NoError(t, err)
	places := got.Days[1].Places
	require.Len(t, places, 2)
	assert.True(t, places[1].IsAiSuggestion)

	_, err = f.svc.InsertSuggestion(ctx, trip.ID, "u1", InsertTarget{DayNumber: 2}, domain_models.Suggestion{Name: "Cà phê"})
	assert.ErrorIs(t, err, utils.ErrDuplicateSuggestion)

	removed, err := f.svc.RemoveSuggestion(ctx, trip.ID, "u1", got.ActivePlanID, 2, places[1].ID)
	require.NoError(t, err)
	assert.Len(t, removed.Days[1].Places, 1)
}

func TestLegacyTripIsMigratedOnLoad(t *testing.T) {
	f := newTripFixture()
	ctx := context.Background()
	row := dbm.TripFromDomain(domain_models.Trip{
		OwnerID: "u1",
		Name:    "Sapa",
		Status:  domain_models.TripStatusPlanned,
		Days:    []domain_models.Day{{DayNumber: 1, Places: []domain_models.Place{{Name: "Fansipan"}}}},
	})
	require.NoError(t, f.repo.Create(ctx, row))

	trip, err := f.svc.GetTrip(ctx, row.ID.String(), "u1")
	require.NoError(t, err)
	require.Len(t, trip.Plans, 1)
	assert.Equal(t, LegacyPlanID, trip.Plans[0].ID)

	form, err := f.svc.PlanForm(ctx, row.ID.String(), "u1", LegacyPlanID)
	require.NoError(t, err)
	assert.Equal(t, 3, form.NumDays)
}

func TestPlanLifecycle(t *testing.T) {
	f := newTripFixture()
	ctx := context.Background()
	trip, _ := f.svc.CreateTrip(ctx, "u1", "x", "Đà Lạt")
	generated, err := f.svc.GeneratePlan(ctx, trip.ID, "u1", domain_models.FormSnapshot{NumDays: 2})
	require.NoError(t, err)
	planID := generated.Plans[0].ID

	collapsed, err := f.svc.CollapseAll(ctx, trip.ID, "u1")
	require.NoError(t, err)
	assert.True(t, collapsed.Plans[0].Collapsed)

	toggled, err := f.svc.ToggleCollapse(ctx, trip.ID, "u1", planID)
	require.NoError(t, err)
	assert.False(t, toggled.Plans[0].Collapsed)

	deleted, err := f.svc.DeletePlan(ctx, trip.ID, "u1", planID)
	require.NoError(t, err)
	assert.Equal(t, domain_models.TripStatusDraft, deleted.Status)
	assert.Empty(t, deleted.Days)

	_, err = f.svc.DeletePlan(ctx, trip.ID, "u1", planID)
	assert.ErrorIs(t, err, utils.ErrPlanNotFound)
}

func TestSaveMetaAndDelete(t *testing.T) {
	f := newTripFixture()
	ctx := context.Background()
	trip, _ := f.svc.CreateTrip(ctx, "u1", "x", "Huế")
	f.sessions.Set(mem.SessionKey(trip.ID, "u1"), NewChatSession(trip.ID))

	got, err := f.svc.SaveMeta(ctx, trip.ID, "u1", domain_models.FormSnapshot{Budget: "5tr"})
	require.NoError(t, err)
	assert.Equal(t, "5tr", got.Meta.Budget)
	assert.Equal(t, 3, got.DaysCount)

	f.repo.saveErr = errDiskFull
	_, err = f.svc.SaveMeta(ctx, trip.ID, "u1", domain_models.FormSnapshot{})
	assert.ErrorIs(t, err, errDiskFull)

	require.NoError(t, f.svc.DeleteTrip(ctx, trip.ID, "u1"))
	_, ok := f.sessions.Get(mem.SessionKey(trip.ID, "u1"))
	assert.False(t, ok)
	assert.ErrorIs(t, f.svc.DeleteTrip(ctx, trip.ID, "u1"), utils.ErrTripNotFound)
}
