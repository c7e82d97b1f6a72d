package request_models

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cast"
	"github.com/tidwall/gjson"

	"journi/internal/models/domain_models"
)

type RewriteDescriptionRequest struct {
	Description string `json:"description"`
}

// GenerateItineraryRequest accepts every field as either a string or a number.
type GenerateItineraryRequest struct {
	Destination any `json:"destination"`
	NumDays     any `json:"numDays"`
	Budget      any `json:"budget"`
	Preferences any `json:"preferences"`
	Reason      any `json:"reason"`
	Description any `json:"description"`
}

type ChatItineraryRequest struct {
	Message         string          `json:"message"`
	Mode            string          `json:"mode"`
	SelectedContext json.RawMessage `json:"selectedContext,omitempty"`
}

// ChatMode reads the mode leniently: anything other than "hotel" is place mode.
func (r ChatItineraryRequest) ChatMode() domain_models.ChatMode {
	if strings.EqualFold(strings.TrimSpace(r.Mode), string(domain_models.ChatModeHotel)) {
		return domain_models.ChatModeHotel
	}
	return domain_models.ChatModePlace
}

func (r ChatItineraryRequest) Context() *domain_models.SelectedContext {
	return DecodeSelectedContext(r.SelectedContext)
}

// DecodeSelectedContext turns the UI selection into one shape. A bare string
// is the label; an object contributes text (or the place name) as label plus
// the day and place it points at. Blank input gives nil.
func DecodeSelectedContext(raw json.RawMessage) *domain_models.SelectedContext {
	if len(raw) == 0 {
		return nil
	}
	v := gjson.ParseBytes(raw)

	var sel domain_models.SelectedContext
	switch {
	case v.Type == gjson.String:
		sel.Label = strings.TrimSpace(v.Str)
	case v.IsObject():
		sel.PlaceName = strings.TrimSpace(firstString(v, "targetPlaceName", "placeName"))
		sel.Label = strings.TrimSpace(firstString(v, "text", "label"))
		if sel.Label == "" {
			sel.Label = sel.PlaceName
		}
		for _, k := range []string{"targetDayNumber", "dayNumber"} {
			if d := v.Get(k); d.Exists() {
				sel.DayNumber = max(cast.ToInt(d.Value()), 0)
				break
			}
		}
	}

	if sel.Label == "" {
		return nil
	}
	return &sel
}

func firstString(v gjson.Result, keys ...string) string {
	for _, k := range keys {
		if r := v.Get(k); r.Type == gjson.String && strings.TrimSpace(r.Str) != "" {
			return r.Str
		}
	}
	return ""
}
