package domain_models

import "slices"

type TripStatus string

const (
	TripStatusDraft   TripStatus = "draft"
	TripStatusPlanned TripStatus = "planned"
)

const DefaultNumDays = 3

// FormSnapshot is the generation form as the user filled it in.
type FormSnapshot struct {
	NumDays    int    `json:"numDays"`
	Budget     string `json:"budget"`
	Preference string `json:"preference"`
	Reason     string `json:"reason"`
	Overview   string `json:"overview"`
}

type Place struct {
	ID             string  `json:"id,omitempty"`
	Name           string  `json:"name"`
	Time           string  `json:"time"`
	Description    string  `json:"description"`
	Cost           float64 `json:"cost"`
	IsAiSuggestion bool    `json:"isAiSuggestion,omitempty"`
}

type Day struct {
	DayNumber int     `json:"dayNumber"`
	Places    []Place `json:"places"`
}

// Plan is one itinerary variant of a trip. TotalCost is nil until known.
type Plan struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	TotalCost    *float64      `json:"totalCost"`
	ShortSummary string        `json:"shortSummary"`
	Days         []Day         `json:"days"`
	FormSnapshot *FormSnapshot `json:"formSnapshot"`
	Collapsed    bool          `json:"collapsed"`
}

// Trip is the aggregate root. Days, TotalCost, ShortSummary and ActivePlanID
// mirror the active plan.
type Trip struct {
	ID           string        `json:"id"`
	OwnerID      string        `json:"uid"`
	Name         string        `json:"name"`
	Destination  string        `json:"destination"`
	Status       TripStatus    `json:"status"`
	Meta         *FormSnapshot `json:"meta"`
	Days         []Day         `json:"days"`
	TotalCost    float64       `json:"totalCost"`
	DaysCount    int           `json:"daysCount"`
	ShortSummary string        `json:"shortSummary"`
	ActivePlanID string        `json:"activePlanId,omitempty"`
	Plans        []Plan        `json:"plans"`
	CreatedAt    int64         `json:"createdAt"`
	UpdatedAt    int64         `json:"updatedAt"`
}

// ItineraryResult is the canonical shape of a decoded itinerary response.
type ItineraryResult struct {
	TotalCost    *float64 `json:"totalCost"`
	ShortSummary string   `json:"shortSummary"`
	Days         []Day    `json:"days"`
}

func (f *FormSnapshot) Clone() *FormSnapshot {
	if f == nil {
		return nil
	}
	c := *f
	return &c
}

func (d Day) Clone() Day {
	d.Places = slices.Clone(d.Places)
	return d
}

func CloneDays(days []Day) []Day {
	if days == nil {
		return nil
	}
	out := make([]Day, len(days))
	for i, d := range days {
		out[i] = d.Clone()
	}
	return out
}

func (p Plan) Clone() Plan {
	if p.TotalCost != nil {
		cost := *p.TotalCost
		p.TotalCost = &cost
	}
	p.Days = CloneDays(p.Days)
	p.FormSnapshot = p.FormSnapshot.Clone()
	return p
}

// Clone returns a deep copy so merge operations never share slices with their input.
func (t Trip) Clone() Trip {
	t.Meta = t.Meta.Clone()
	t.Days = CloneDays(t.Days)
	if t.Plans != nil {
		plans := make([]Plan, len(t.Plans))
		for i, p := range t.Plans {
			plans[i] = p.Clone()
		}
		t.Plans = plans
	}
	return t
}

// FindDay returns the index of dayNumber in days, or -1.
func FindDay(days []Day, dayNumber int) int {
	return slices.IndexFunc(days, func(d Day) bool { return d.DayNumber == dayNumber })
}
