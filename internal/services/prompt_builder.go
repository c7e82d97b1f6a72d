package services

import (
	"fmt"
	"strings"

	"journi/internal/models/domain_models"
)

const (
	unknownToken = "không rõ"
	noneToken    = "(không có)"
)

// PromptPair is the system/user message pair sent to the model for one call.
type PromptPair struct {
	System string
	User   string
}

// ItineraryInput carries the generation form after request decoding.
type ItineraryInput struct {
	Destination string
	NumDays     int
	Budget      string
	Preferences string
	Reason      string
	Description string
}

const rewriteSystemPrompt = "Bạn là trợ lý JourniAI. Hãy viết lại đoạn mô tả chuyến đi sao cho rõ ràng, ngắn gọn, " +
	"dễ hiểu cho mô hình AI khác. Giữ nguyên ý chính của người dùng, dùng tiếng Việt lịch sự, không thêm thông tin mới."

const itinerarySystemPrompt = `Bạn là JourniAI, trợ lý lập kế hoạch du lịch.
Nhiệm vụ: tạo lịch trình chi tiết dạng JSON, không giải thích thêm.

Quy tắc:
- Trả về CHỈ JSON, không có chữ ngoài JSON.
- Ngôn ngữ: tiếng Việt.
- Mỗi ngày có 2-5 địa điểm (places), bao gồm ăn uống, tham quan, trải nghiệm.
- Nếu ngân sách nhỏ thì ưu tiên địa điểm giá rẻ, miễn phí.
- Không đặt chỗ thật, chỉ gợi ý tên, mô tả, khung giờ và ước lượng chi phí.

Schema JSON cần trả về:

{
  "totalCost": number,
  "shortSummary": string,
  "days": [
    {
      "dayNumber": number,
      "places": [
        {
          "name": string,
          "time": string,
          "description": string,
          "cost": number
        }
      ]
    }
  ]
}`

const placeSchema = `{
  "reply": string,
  "suggestions": [
    {
      "id": string,
      "name": string,
      "description": string,
      "time": string,
      "cost": number
    }
  ]
}`

const hotelSchema = `{
  "reply": string,
  "hotels": [
    {
      "id": string,
      "name": string,
      "address": string,
      "description": string,
      "priceRange": string,
      "cost": number
    }
  ]
}`

// BuildRewritePrompt asks for a short paraphrase of the trip description.
// Callers reject blank descriptions before calling it.
func BuildRewritePrompt(description string) PromptPair {
	return PromptPair{
		System: rewriteSystemPrompt,
		User:   fmt.Sprintf("Đoạn mô tả gốc:\n\"\"\"%s\"\"\"\n\nHãy viết lại tối đa khoảng 3-4 câu.", description),
	}
}

// BuildItineraryPrompt embeds the itinerary schema in the system prompt and
// fills every form field, substituting a placeholder for missing values.
func BuildItineraryPrompt(in ItineraryInput) PromptPair {
	numDays := in.NumDays
	if numDays <= 0 {
		numDays = domain_models.DefaultNumDays
	}

	var b strings.Builder
	b.WriteString("Thông tin chuyến đi:\n")
	fmt.Fprintf(&b, "- Điểm đến: %s\n", orPlaceholder(in.Destination, unknownToken))
	fmt.Fprintf(&b, "- Số ngày: %d\n", numDays)
	fmt.Fprintf(&b, "- Ngân sách dự kiến: %s\n", orPlaceholder(in.Budget, unknownToken))
	fmt.Fprintf(&b, "- Sở thích chính: %s\n", orPlaceholder(in.Preferences, unknownToken))
	fmt.Fprintf(&b, "- Lý do / mục tiêu: %s\n", orPlaceholder(in.Reason, unknownToken))
	fmt.Fprintf(&b, "- Mô tả tổng quan thêm: %s\n", orPlaceholder(in.Description, noneToken))
	b.WriteString("\nHãy tạo lịch trình đúng theo schema JSON ở trên.\nChỉ in JSON, không giải thích thêm.")

	return PromptPair{System: itinerarySystemPrompt, User: b.String()}
}

// BuildChatPrompt builds the assistant prompt. Only the list matching mode is
// described in the schema; contextLabel, when set, anchors the suggestions.
func BuildChatPrompt(message string, mode domain_models.ChatMode, contextLabel string) PromptPair {
	schema, focus, modeLabel := placeSchema, "tập trung gợi ý địa điểm tham quan / ăn uống.", "place (gợi ý địa điểm)"
	if mode == domain_models.ChatModeHotel {
		schema = hotelSchema
		focus = "tập trung gợi ý khách sạn / homestay PHÙ HỢP VỚI MÔ TẢ người dùng."
		modeLabel = "hotel (đặt khách sạn)"
	}

	var sys strings.Builder
	sys.WriteString("Bạn là JourniAI, trợ lý du lịch.\n")
	sys.WriteString("Bạn nhận tin nhắn của người dùng và trả về JSON theo schema:\n\n")
	sys.WriteString(schema)
	sys.WriteString("\n\nQuy tắc:\n- Ngôn ngữ: tiếng Việt tự nhiên.\n")
	sys.WriteString("- " + focus + "\n")
	sys.WriteString("- \"reply\" là câu trả lời thân thiện, ngắn gọn.")
	if strings.TrimSpace(contextLabel) != "" {
		sys.WriteString("\n- Ưu tiên khu vực của context (tên địa điểm / ngày trong lịch trình).")
	}

	user := fmt.Sprintf(
		"Mode hiện tại: %s.\n\nContext (nếu có): %s.\n\nTin nhắn của người dùng:\n%q\n\nHãy trả về đúng JSON theo schema ở trên.\nKhông viết gì ngoài JSON.",
		modeLabel, orPlaceholder(contextLabel, noneToken), message,
	)
	return PromptPair{System: sys.String(), User: user}
}

func orPlaceholder(v, placeholder string) string {
	if v = strings.TrimSpace(v); v == "" {
		return placeholder
	}
	return v
}
