package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"journi/internal/models/domain_models"
	"journi/pkg/logger"
	"journi/pkg/utils"
)

const (
	GreetingMessageID = "bot-0"
	GreetingText      = "Xin chào, mình là Journi-bot 🌈. Hãy kể cho mình nghe bạn muốn tìm gì: địa điểm tham quan, quán ăn, quán cà phê, chỗ chill, hay đặt khách sạn nhé!"

	placeFallbackReply = "Mình đã nhận được yêu cầu của bạn rồi, hãy thử áp dụng những gợi ý bên dưới nhé!"
	hotelFallbackReply = "Mình đã ghi lại nhu cầu đặt khách sạn của bạn. Bạn xem form đặt phòng mình gửi kèm bên dưới nhé."
	hotelFormText      = "Để tiện cho bạn, mình gửi kèm một form nhỏ để đặt khách sạn. Bấm vào nút bên dưới để mở form nhé."
	ApologyText        = "Xin lỗi, Journi-bot đang bị nghẽn mạng một chút. Bạn thử gửi lại sau vài giây nhé."
)

// NewChatSession starts a place-mode conversation holding only the greeting.
func NewChatSession(tripID string) domain_models.ChatSession {
	return domain_models.ChatSession{
		TripID:      tripID,
		Mode:        domain_models.ChatModePlace,
		Messages:    []domain_models.ChatMessage{{ID: GreetingMessageID, Role: domain_models.ChatRoleBot, Text: GreetingText}},
		Suggestions: []domain_models.Suggestion{},
		Hotels:      []domain_models.HotelOption{},
	}
}

// ChatOrchestrator drives one assistant turn at a time. Like PlanMerger it
// takes a session by value and returns the next one.
type ChatOrchestrator struct {
	ai  AIServiceInterface
	log *logger.Logger
	now func() time.Time
}

func NewChatOrchestrator(ai AIServiceInterface, log *logger.Logger) *ChatOrchestrator {
	return &ChatOrchestrator{ai: ai, log: log, now: time.Now}
}

// SwitchMode changes mode and clears the displayed lists. The transcript stays.
func (o *ChatOrchestrator) SwitchMode(s domain_models.ChatSession, mode domain_models.ChatMode) (domain_models.ChatSession, error) {
	if !mode.Valid() {
		return s, utils.ErrInvalidMode
	}
	out := s.Clone()
	out.Mode = mode
	out.Suggestions = []domain_models.Suggestion{}
	out.Hotels = []domain_models.HotelOption{}
	return out, nil
}

// SetContext replaces the selected place/day. A nil context clears it.
func (o *ChatOrchestrator) SetContext(s domain_models.ChatSession, sel *domain_models.SelectedContext) domain_models.ChatSession {
	out := s.Clone()
	out.Selected = nil
	if sel != nil && strings.TrimSpace(sel.Label) != "" {
		c := *sel
		out.Selected = &c
	}
	return out
}

// Reset returns the session to the greeting, keeping mode and selection.
func (o *ChatOrchestrator) Reset(s domain_models.ChatSession) domain_models.ChatSession {
	out := NewChatSession(s.TripID)
	out.Mode = s.Mode
	if s.Selected != nil {
		sel := *s.Selected
		out.Selected = &sel
	}
	return out
}

// appendMessage adds a message whose id carries its position in the
// transcript, so turns landing in the same millisecond still get distinct ids.
func appendMessage(s *domain_models.ChatSession, role domain_models.ChatRole, prefix, text string, stamp int64) *domain_models.ChatMessage {
	s.Messages = append(s.Messages, domain_models.ChatMessage{
		ID:   fmt.Sprintf("%s-%d-%d", prefix, stamp, len(s.Messages)),
		Role: role,
		Text: text,
	})
	return &s.Messages[len(s.Messages)-1]
}

// SendMessage runs one turn. Only a blank message is an error; model and
// parse failures end the turn with an apology and keep the lists as they were.
func (o *ChatOrchestrator) SendMessage(ctx context.Context, s domain_models.ChatSession, message string) (domain_models.ChatSession, error) {
	content := strings.TrimSpace(message)
	if content == "" {
		return s, utils.ErrEmptyMessage
	}

	mode := lo.Ternary(s.Mode == domain_models.ChatModeHotel, domain_models.ChatModeHotel, domain_models.ChatModePlace)
	label := s.ContextLabel()

	out := s.Clone()
	out.Mode = mode
	appendMessage(&out, domain_models.ChatRoleUser, "user", content, o.now().UnixMilli())

	doc, err := o.ai.Chat(ctx, content, mode, label)
	if err != nil {
		o.log.WithFields(logger.Fields{
			"trip_id": s.TripID,
			"mode":    mode,
		}).WithError(err).Warn("Chat turn failed")
		appendMessage(&out, domain_models.ChatRoleBot, "bot", ApologyText, o.now().UnixMilli())
		return out, nil
	}

	now := o.now()
	area := lo.Ternary(label != "", label, DefaultHotelArea)
	result := DecodeChat(doc, mode, area, now)

	reply := result.Reply
	if reply == "" {
		reply = lo.Ternary(mode == domain_models.ChatModeHotel, hotelFallbackReply, placeFallbackReply)
	}
	appendMessage(&out, domain_models.ChatRoleBot, "bot", reply, now.UnixMilli())

	if mode == domain_models.ChatModeHotel {
		form := appendMessage(&out, domain_models.ChatRoleBot, "bot-form", hotelFormText, now.UnixMilli())
		form.Type = domain_models.MessageTypeHotelForm

		out.Hotels = result.Hotels
		if len(out.Hotels) == 0 {
			out.Hotels = FallbackHotels(area)
		}
		out.Suggestions = []domain_models.Suggestion{}
		return out, nil
	}

	if result.HasSuggestions {
		out.Suggestions = result.Suggestions
	}
	return out, nil
}

// BookHotel validates the booking form against the hotels on display. The
// confirmation is local; nothing is reserved anywhere.
func (o *ChatOrchestrator) BookHotel(s domain_models.ChatSession, b domain_models.HotelBooking) (domain_models.BookingConfirmation, error) {
	b.HotelID = strings.TrimSpace(b.HotelID)
	b.FullName = strings.TrimSpace(b.FullName)
	b.Phone = strings.TrimSpace(b.Phone)
	if b.HotelID == "" || b.FullName == "" || b.Phone == "" {
		return domain_models.BookingConfirmation{}, utils.ErrInvalidBooking
	}

	options := s.Hotels
	if len(options) == 0 {
		options = FallbackHotels(s.ContextLabel())
	}
	hotel, ok := lo.Find(options, func(h domain_models.HotelOption) bool { return h.ID == b.HotelID })
	if !ok {
		return domain_models.BookingConfirmation{}, fmt.Errorf("%w: unknown hotel %q", utils.ErrInvalidBooking, b.HotelID)
	}

	return domain_models.BookingConfirmation{
		Hotel:    hotel,
		FullName: b.FullName,
		Phone:    b.Phone,
		Email:    strings.TrimSpace(b.Email),
		Message:  fmt.Sprintf("Đặt khách sạn thành công!\n\nKhách sạn: %s\nKhách: %s\nSĐT: %s", hotel.Name, b.FullName, b.Phone),
	}, nil
}

// Snapshot captures the transcript for saving.
func (o *ChatOrchestrator) Snapshot(s domain_models.ChatSession) domain_models.ChatSnapshot {
	return domain_models.ChatSnapshot{
		TripID:   s.TripID,
		SavedAt:  utils.FormatRFC3339VN(o.now()),
		Mode:     s.Mode,
		Messages: s.Clone().Messages,
	}
}
