package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"journi/internal/models/domain_models"
	"journi/pkg/utils"
)

const (
	LegacyPlanID = "initial"

	defaultSuggestionName = "Gợi ý từ Trợ lý AI"
	defaultPlanTitle      = "Hành trình mới"
)

// InsertTarget selects where an accepted suggestion goes. An empty PlanID
// means the active plan.
type InsertTarget struct {
	PlanID    string
	DayNumber int
}

// PlanMerger applies plan-level edits to a Trip. Every method works on a deep
// copy and returns the new aggregate; the input is never modified.
type PlanMerger struct {
	newID func() string
}

func NewPlanMerger() *PlanMerger {
	return &PlanMerger{newID: uuid.NewString}
}

// ActivePlanIndex returns the first non-collapsed plan, else the last one,
// else -1 when there are no plans.
func ActivePlanIndex(plans []domain_models.Plan) int {
	if len(plans) == 0 {
		return -1
	}
	_, idx, ok := lo.FindIndexOf(plans, func(p domain_models.Plan) bool { return !p.Collapsed })
	if !ok {
		return len(plans) - 1
	}
	return idx
}

func findPlan(plans []domain_models.Plan, planID string) int {
	_, idx, _ := lo.FindIndexOf(plans, func(p domain_models.Plan) bool { return p.ID == planID })
	return idx
}

// syncActivePlan points ActivePlanID at the active plan and copies its days,
// cost and summary into the trip. With no plans left the trip is a draft again.
func syncActivePlan(trip *domain_models.Trip) {
	idx := ActivePlanIndex(trip.Plans)
	if idx < 0 {
		trip.ActivePlanID = ""
		trip.Days = []domain_models.Day{}
		trip.TotalCost = 0
		trip.ShortSummary = ""
		trip.Status = domain_models.TripStatusDraft
		return
	}
	active := trip.Plans[idx]
	trip.ActivePlanID = active.ID
	trip.Days = domain_models.CloneDays(active.Days)
	trip.TotalCost = lo.FromPtr(active.TotalCost)
	trip.ShortSummary = active.ShortSummary
}

// PlanTitle prefers the user's reason, then the destination.
func PlanTitle(reason, destination string) string {
	if r := strings.TrimSpace(reason); r != "" {
		return r
	}
	if d := strings.TrimSpace(destination); d != "" {
		return "Hành trình " + d
	}
	return defaultPlanTitle
}

// TripDestination is the destination used for prompts and titles.
func TripDestination(trip domain_models.Trip) string {
	if d := strings.TrimSpace(trip.Destination); d != "" {
		return d
	}
	return strings.TrimSpace(trip.Name)
}

// CreatePlanFromGeneration collapses every existing plan and appends a new
// expanded plan holding the generated days as returned by the model.
func (m *PlanMerger) CreatePlanFromGeneration(
	trip domain_models.Trip,
	form domain_models.FormSnapshot,
	result domain_models.ItineraryResult,
) domain_models.Trip {
	out := trip.Clone()
	out.Plans = lo.Map(out.Plans, func(p domain_models.Plan, _ int) domain_models.Plan {
		p.Collapsed = true
		return p
	})

	days := domain_models.CloneDays(result.Days)
	if days == nil {
		days = []domain_models.Day{}
	}
	plan := domain_models.Plan{
		ID:           m.newID(),
		Title:        PlanTitle(form.Reason, TripDestination(trip)),
		ShortSummary: result.ShortSummary,
		Days:         days,
		FormSnapshot: form.Clone(),
	}
	if result.TotalCost != nil {
		cost := *result.TotalCost
		plan.TotalCost = &cost
	}
	out.Plans = append(out.Plans, plan)

	out.Meta = form.Clone()
	out.DaysCount = lo.Ternary(form.NumDays > 0, form.NumDays, domain_models.DefaultNumDays)
	out.Status = domain_models.TripStatusPlanned
	syncActivePlan(&out)
	return out
}

// InsertSuggestedPlace appends the suggestion as an AI place under the target
// day, creating the day at the end of the list when missing. A suggestion
// whose name already exists among that day's AI places is rejected.
func (m *PlanMerger) InsertSuggestedPlace(
	trip domain_models.Trip,
	target InsertTarget,
	s domain_models.Suggestion,
) (domain_models.Trip, error) {
	if target.DayNumber <= 0 {
		return trip, utils.ErrNoTargetDay
	}
	if len(trip.Plans) == 0 {
		return trip, utils.ErrNoActivePlan
	}

	planIdx := ActivePlanIndex(trip.Plans)
	if target.PlanID != "" {
		if planIdx = findPlan(trip.Plans, target.PlanID); planIdx < 0 {
			return trip, utils.ErrPlanNotFound
		}
	}

	name := orDefault(strings.TrimSpace(s.Name), defaultSuggestionName)
	description := orDefault(strings.TrimSpace(s.Description),
		fmt.Sprintf("Gợi ý này được tạo từ yêu cầu bạn gửi cho Journi-bot ở ngày %d.", target.DayNumber))

	days := trip.Plans[planIdx].Days
	if dayIdx := domain_models.FindDay(days, target.DayNumber); dayIdx >= 0 {
		if lo.ContainsBy(days[dayIdx].Places, func(p domain_models.Place) bool {
			return p.IsAiSuggestion && p.Name == name
		}) {
			return trip, fmt.Errorf("%w: %q in day %d", utils.ErrDuplicateSuggestion, name, target.DayNumber)
		}
	}

	out := trip.Clone()
	plan := &out.Plans[planIdx]
	dayIdx := domain_models.FindDay(plan.Days, target.DayNumber)
	if dayIdx < 0 {
		plan.Days = append(plan.Days, domain_models.Day{DayNumber: target.DayNumber, Places: []domain_models.Place{}})
		dayIdx = len(plan.Days) - 1
	}
	plan.Days[dayIdx].Places = append(plan.Days[dayIdx].Places, domain_models.Place{
		ID:             m.newID(),
		Name:           name,
		Time:           s.Time,
		Description:    description,
		Cost:           max(s.Cost, 0),
		IsAiSuggestion: true,
	})

	syncActivePlan(&out)
	return out, nil
}

// RemoveSuggestedPlace drops AI places matching placeKey by id, or by name for
// places stored without an id. Other places are never touched and an unknown
// plan, day or key leaves the trip as it was.
func (m *PlanMerger) RemoveSuggestedPlace(
	trip domain_models.Trip,
	planID string,
	dayNumber int,
	placeKey string,
) domain_models.Trip {
	out := trip.Clone()
	planIdx := findPlan(out.Plans, planID)
	if planIdx < 0 {
		return out
	}
	plan := &out.Plans[planIdx]
	dayIdx := domain_models.FindDay(plan.Days, dayNumber)
	if dayIdx < 0 {
		return out
	}

	plan.Days[dayIdx].Places = lo.Reject(plan.Days[dayIdx].Places, func(p domain_models.Place, _ int) bool {
		if !p.IsAiSuggestion {
			return false
		}
		if p.ID != "" {
			return p.ID == placeKey
		}
		return p.Name == placeKey
	})

	syncActivePlan(&out)
	return out
}

// DeletePlan removes a plan. The next active plan follows the usual rule
// (first expanded, else the last remaining), not "else the first". Removing
// the last plan turns the trip back into an empty draft.
func (m *PlanMerger) DeletePlan(trip domain_models.Trip, planID string) (domain_models.Trip, error) {
	if findPlan(trip.Plans, planID) < 0 {
		return trip, utils.ErrPlanNotFound
	}
	out := trip.Clone()
	out.Plans = lo.Reject(out.Plans, func(p domain_models.Plan, _ int) bool { return p.ID == planID })
	syncActivePlan(&out)
	return out, nil
}

// ToggleCollapse flips the display flag of one plan. ActivePlanID follows the
// new flags but the denormalized days, cost and summary are left as they were.
func (m *PlanMerger) ToggleCollapse(trip domain_models.Trip, planID string) (domain_models.Trip, error) {
	idx := findPlan(trip.Plans, planID)
	if idx < 0 {
		return trip, utils.ErrPlanNotFound
	}
	out := trip.Clone()
	out.Plans[idx].Collapsed = !out.Plans[idx].Collapsed
	if active := ActivePlanIndex(out.Plans); active >= 0 {
		out.ActivePlanID = out.Plans[active].ID
	}
	return out, nil
}

// CollapseAll hides every plan before a new one is generated.
func (m *PlanMerger) CollapseAll(trip domain_models.Trip) domain_models.Trip {
	out := trip.Clone()
	for i := range out.Plans {
		out.Plans[i].Collapsed = true
	}
	if active := ActivePlanIndex(out.Plans); active >= 0 {
		out.ActivePlanID = out.Plans[active].ID
	}
	return out
}

// MigrateLegacyPlans wraps the single itinerary of trips saved before plans
// existed into one synthetic plan. Trips that already have plans, or have no
// days, only get their ActivePlanID filled in.
func (m *PlanMerger) MigrateLegacyPlans(trip domain_models.Trip) domain_models.Trip {
	out := trip.Clone()
	if len(out.Plans) == 0 && len(out.Days) > 0 {
		reason, destination := "", TripDestination(out)
		if out.Meta != nil {
			reason = out.Meta.Reason
		}
		cost := out.TotalCost
		out.Plans = []domain_models.Plan{{
			ID:           LegacyPlanID,
			Title:        PlanTitle(reason, destination),
			TotalCost:    &cost,
			ShortSummary: out.ShortSummary,
			Days:         domain_models.CloneDays(out.Days),
			FormSnapshot: out.Meta.Clone(),
		}}
	}
	if active := ActivePlanIndex(out.Plans); active >= 0 {
		out.ActivePlanID = out.Plans[active].ID
	}
	return out
}

// PlanForm returns the form that produced a plan, falling back to the trip
// meta and then to an empty form for the default number of days.
func (m *PlanMerger) PlanForm(trip domain_models.Trip, planID string) (domain_models.FormSnapshot, error) {
	idx := findPlan(trip.Plans, planID)
	if idx < 0 {
		return domain_models.FormSnapshot{}, utils.ErrPlanNotFound
	}
	form := domain_models.FormSnapshot{}
	switch {
	case trip.Plans[idx].FormSnapshot != nil:
		form = *trip.Plans[idx].FormSnapshot
	case trip.Meta != nil:
		form = *trip.Meta
	}
	if form.NumDays <= 0 {
		form.NumDays = domain_models.DefaultNumDays
	}
	return form, nil
}
