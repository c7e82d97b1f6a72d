package request_models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"journi/internal/models/domain_models"
)

func TestDecodeSelectedContext(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *domain_models.SelectedContext
	}{
		{name: "absent", raw: ``, want: nil},
		{name: "null", raw: `null`, want: nil},
		{name: "blank string", raw: `"  "`, want: nil},
		{name: "string", raw: `"Ngày 1 – Chợ Đà Lạt"`, want: &domain_models.SelectedContext{Label: "Ngày 1 – Chợ Đà Lạt"}},
		{
			name: "object from plan click",
			raw:  `{"text": "Ngày 2 – Hồ Xuân Hương", "targetPlaceName": "Hồ Xuân Hương", "targetDayNumber": 2}`,
			want: &domain_models.SelectedContext{Label: "Ngày 2 – Hồ Xuân Hương", DayNumber: 2, PlaceName: "Hồ Xuân Hương"},
		},
		{
			name: "place name only",
			raw:  `{"targetPlaceName": "Dinh Bảo Đại"}`,
			want: &domain_models.SelectedContext{Label: "Dinh Bảo Đại", PlaceName: "Dinh Bảo Đại"},
		},
		{
			name: "canonical shape with string day",
			raw:  `{"label": "Hội An", "dayNumber": "3"}`,
			want: &domain_models.SelectedContext{Label: "Hội An", DayNumber: 3},
		},
		{name: "empty object", raw: `{}`, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeSelectedContext(json.RawMessage(tt.raw)))
		})
	}
}

func TestChatItineraryRequestMode(t *testing.T) {
	assert.Equal(t, domain_models.ChatModeHotel, ChatItineraryRequest{Mode: "hotel"}.ChatMode())
	assert.Equal(t, domain_models.ChatModePlace, ChatItineraryRequest{}.ChatMode())
	assert.Equal(t, domain_models.ChatModePlace, ChatItineraryRequest{Mode: "bus"}.ChatMode())
}

func TestInsertSuggestionRequest(t *testing.T) {
	req := InsertSuggestionRequest{
		Target:     &InsertTargetRequest{PlanID: " p1 ", DayNumber: "2"},
		Suggestion: json.RawMessage(`{"name": "Quán A", "cost": "rẻ", "time": "19:00"}`),
	}
	planID, day := req.TargetValues()
	assert.Equal(t, "p1", planID)
	assert.Equal(t, 2, day)
	assert.Equal(t, domain_models.Suggestion{Name: "Quán A", Time: "19:00"}, req.SuggestionValue())

	bare := InsertSuggestionRequest{Suggestion: json.RawMessage(`"Chợ đêm"`)}
	planID, day = bare.TargetValues()
	assert.Empty(t, planID)
	assert.Zero(t, day)
	assert.Equal(t, "Chợ đêm", bare.SuggestionValue().Name)
}

func TestTripFormRequestToSnapshot(t *testing.T) {
	assert.Equal(t, 4, TripFormRequest{NumDays: "4"}.ToSnapshot().NumDays)
	assert.Equal(t, 2, TripFormRequest{NumDays: 2.0}.ToSnapshot().NumDays)
	assert.Equal(t, 0, TripFormRequest{NumDays: "nhiều"}.ToSnapshot().NumDays)
	assert.Equal(t, 0, TripFormRequest{NumDays: -1.0}.ToSnapshot().NumDays)
}
