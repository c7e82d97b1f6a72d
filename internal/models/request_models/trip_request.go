package request_models

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cast"
	"github.com/tidwall/gjson"

	"journi/internal/models/domain_models"
)

type CreateTripRequest struct {
	Name        string `json:"name"`
	Destination string `json:"destination"`
}

// TripFormRequest is the generation form. numDays may arrive as a string.
type TripFormRequest struct {
	NumDays    any    `json:"numDays"`
	Budget     string `json:"budget"`
	Preference string `json:"preference"`
	Reason     string `json:"reason"`
	Overview   string `json:"overview"`
}

func (r TripFormRequest) ToSnapshot() domain_models.FormSnapshot {
	return domain_models.FormSnapshot{
		NumDays:    max(cast.ToInt(r.NumDays), 0),
		Budget:     r.Budget,
		Preference: r.Preference,
		Reason:     r.Reason,
		Overview:   r.Overview,
	}
}

type InsertTargetRequest struct {
	PlanID    string `json:"planId"`
	DayNumber any    `json:"dayNumber"`
}

// InsertSuggestionRequest adds a suggestion to a plan. Suggestion is either a
// suggestion object or a bare name.
type InsertSuggestionRequest struct {
	Target     *InsertTargetRequest `json:"target,omitempty"`
	Suggestion json.RawMessage      `json:"suggestion"`
}

func (r InsertSuggestionRequest) TargetValues() (planID string, dayNumber int) {
	if r.Target == nil {
		return "", 0
	}
	return strings.TrimSpace(r.Target.PlanID), max(cast.ToInt(r.Target.DayNumber), 0)
}

// SuggestionValue reads the suggestion leniently. A non-numeric cost is 0.
func (r InsertSuggestionRequest) SuggestionValue() domain_models.Suggestion {
	v := gjson.ParseBytes(r.Suggestion)
	if v.Type == gjson.String {
		return domain_models.Suggestion{Name: v.Str}
	}
	s := domain_models.Suggestion{
		ID:          v.Get("id").String(),
		Name:        v.Get("name").String(),
		Description: v.Get("description").String(),
		Time:        v.Get("time").String(),
	}
	if c := v.Get("cost"); c.Type == gjson.Number {
		s.Cost = c.Num
	}
	return s
}
