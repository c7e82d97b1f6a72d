package services

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"journi/internal/models/domain_models"
	"journi/pkg/logger"
	"journi/pkg/utils"
)

// DefaultHotelArea stands in for the context label when no place is selected.
const DefaultHotelArea = "khu vực bạn chọn"

// ModelJSON is a validated model response. Raw is the trimmed JSON text and
// Value its generic decoding, suitable for passthrough responses.
type ModelJSON struct {
	Raw   string
	Value any
}

func (m ModelJSON) result() gjson.Result {
	return gjson.Parse(m.Raw)
}

// ParseModelJSON trims raw and parses it. Empty input, invalid JSON and falsy
// documents (null, false, 0, "") are reported as utils.ErrParse.
func ParseModelJSON(raw string) (ModelJSON, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ModelJSON{}, fmt.Errorf("%w: empty content", utils.ErrParse)
	}
	if !gjson.Valid(trimmed) {
		return ModelJSON{}, fmt.Errorf("%w: content is not valid JSON", utils.ErrParse)
	}
	doc := gjson.Parse(trimmed)
	if isFalsy(doc) {
		return ModelJSON{}, fmt.Errorf("%w: content decodes to an empty value", utils.ErrParse)
	}
	return ModelJSON{Raw: trimmed, Value: doc.Value()}, nil
}

func isFalsy(r gjson.Result) bool {
	switch r.Type {
	case gjson.Null, gjson.False:
		return true
	case gjson.Number:
		return r.Num == 0
	case gjson.String:
		return r.Str == ""
	}
	return false
}

// ResponseValidator wraps ParseModelJSON with operator diagnostics.
type ResponseValidator struct {
	log *logger.Logger
}

func NewResponseValidator(log *logger.Logger) *ResponseValidator {
	return &ResponseValidator{log: log}
}

func (v *ResponseValidator) Parse(intent, raw string) (ModelJSON, error) {
	doc, err := ParseModelJSON(raw)
	if err != nil {
		v.log.WithFields(logger.Fields{
			"intent":  intent,
			"raw_len": len(raw),
			"reason":  err.Error(),
		}).Warn("Model response rejected")
		return ModelJSON{}, err
	}
	return doc, nil
}

// Field priority tables for lenient decoding. The first key holding a usable
// value wins.
var (
	nameKeys        = []string{"name", "title"}
	descriptionKeys = []string{"description", "summary"}
	replyKeys       = []string{"reply", "text"}
	priceRangeKeys  = []string{"priceRange", "price"}
	hotelCostKeys   = []string{"cost", "price"}
	placeCostKeys   = []string{"cost"}
)

func firstString(r gjson.Result, keys ...string) string {
	for _, k := range keys {
		if v := r.Get(k); v.Type == gjson.String && v.Str != "" {
			return v.Str
		}
	}
	return ""
}

func firstNumber(r gjson.Result, keys ...string) (float64, bool) {
	for _, k := range keys {
		if v := r.Get(k); v.Type == gjson.Number {
			return v.Num, true
		}
	}
	return 0, false
}

// costOf reads the first numeric cost field. Negative amounts become 0.
func costOf(r gjson.Result, keys ...string) float64 {
	n, _ := firstNumber(r, keys...)
	return max(n, 0)
}

// dayNumberOf accepts a whole dayNumber in [1, MaxInt32] and otherwise
// keeps def, the day's position.
func dayNumberOf(d gjson.Result, def int) int {
	n, ok := firstNumber(d, "dayNumber")
	if !ok || n < 1 || n > math.MaxInt32 || n != math.Trunc(n) {
		return def
	}
	return int(n)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// DecodeItinerary maps an itinerary response onto the canonical shape. Every
// missing field becomes its zero value; totalCost stays nil unless numeric.
func DecodeItinerary(doc ModelJSON) domain_models.ItineraryResult {
	root := doc.result()
	out := domain_models.ItineraryResult{
		ShortSummary: firstString(root, "shortSummary"),
		Days:         []domain_models.Day{},
	}
	if cost, ok := firstNumber(root, "totalCost"); ok {
		cost = max(cost, 0)
		out.TotalCost = &cost
	}

	days := root.Get("days")
	if !days.IsArray() {
		return out
	}
	for i, d := range days.Array() {
		day := domain_models.Day{DayNumber: dayNumberOf(d, i+1), Places: []domain_models.Place{}}
		places := d.Get("places")
		if !places.IsArray() {
			out.Days = append(out.Days, day)
			continue
		}
		for _, p := range places.Array() {
			day.Places = append(day.Places, domain_models.Place{
				ID:          firstString(p, "id"),
				Name:        firstString(p, nameKeys...),
				Time:        firstString(p, "time"),
				Description: firstString(p, descriptionKeys...),
				Cost:        costOf(p, placeCostKeys...),
			})
		}
		out.Days = append(out.Days, day)
	}
	return out
}

// DecodeChat normalizes a chat response for the given mode. Only the list
// matching mode is read, whatever the model populated. Missing ids are
// generated from now; hotel addresses default to area.
func DecodeChat(doc ModelJSON, mode domain_models.ChatMode, area string, now time.Time) domain_models.ChatResult {
	root := doc.result()
	out := domain_models.ChatResult{Reply: firstString(root, replyKeys...)}
	stamp := now.UnixMilli()

	if mode == domain_models.ChatModeHotel {
		out.Hotels = decodeHotels(root.Get("hotels"), area, stamp)
		return out
	}

	list := root.Get("suggestions")
	if !list.IsArray() {
		return out
	}
	out.HasSuggestions = true
	out.Suggestions = []domain_models.Suggestion{}
	for i, s := range list.Array() {
		out.Suggestions = append(out.Suggestions, domain_models.Suggestion{
			ID:          orDefault(firstString(s, "id"), fmt.Sprintf("sg-%d-%d", stamp, i)),
			Name:        orDefault(firstString(s, nameKeys...), fmt.Sprintf("Gợi ý #%d", i+1)),
			Description: firstString(s, descriptionKeys...),
			Time:        firstString(s, "time"),
			Cost:        costOf(s, placeCostKeys...),
		})
	}
	return out
}

func decodeHotels(list gjson.Result, area string, stamp int64) []domain_models.HotelOption {
	hotels := []domain_models.HotelOption{}
	if !list.IsArray() {
		return hotels
	}
	for i, h := range list.Array() {
		hotels = append(hotels, domain_models.HotelOption{
			ID:          orDefault(firstString(h, "id"), fmt.Sprintf("hotel-%d-%d", stamp, i)),
			Name:        orDefault(firstString(h, nameKeys...), fmt.Sprintf("Khách sạn #%d", i+1)),
			Address:     orDefault(firstString(h, "address"), area),
			Description: firstString(h, descriptionKeys...),
			PriceRange:  firstString(h, priceRangeKeys...),
			Cost:        costOf(h, hotelCostKeys...),
		})
	}
	return hotels
}

// FallbackHotels is the fixed offline hotel list, parameterized only by area.
func FallbackHotels(area string) []domain_models.HotelOption {
	area = orDefault(strings.TrimSpace(area), DefaultHotelArea)
	return []domain_models.HotelOption{
		{
			ID:          "h1",
			Name:        "Khách sạn trung tâm gần " + area,
			Address:     area,
			Description: "Khách sạn 3* sạch sẽ, thuận tiện di chuyển tới các điểm tham quan.",
			PriceRange:  "~800.000đ/đêm",
			Cost:        800000,
		},
		{
			ID:          "h2",
			Name:        "Homestay view đẹp ở " + area,
			Address:     area,
			Description: "Phong cách trẻ trung, phù hợp nhóm bạn, có không gian sinh hoạt chung.",
			PriceRange:  "~600.000đ/đêm",
			Cost:        600000,
		},
		{
			ID:          "h3",
			Name:        "Khách sạn gia đình tại " + area,
			Address:     area,
			Description: "Phù hợp gia đình, có bữa sáng miễn phí và phòng rộng rãi.",
			PriceRange:  "~1.000.000đ/đêm",
			Cost:        1000000,
		},
	}
}
