package domain_models

import "slices"

type ChatMode string

const (
	ChatModePlace ChatMode = "place"
	ChatModeHotel ChatMode = "hotel"
)

func (m ChatMode) Valid() bool {
	return m == ChatModePlace || m == ChatModeHotel
}

type ChatRole string

const (
	ChatRoleUser ChatRole = "user"
	ChatRoleBot  ChatRole = "bot"
)

// MessageTypeHotelForm marks a bot message that renders the booking form button.
const MessageTypeHotelForm = "hotelForm"

type ChatMessage struct {
	ID   string   `json:"id"`
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
	Type string   `json:"type,omitempty"`
}

type Suggestion struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Time        string  `json:"time"`
	Cost        float64 `json:"cost"`
}

type HotelOption struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Description string  `json:"description"`
	PriceRange  string  `json:"priceRange"`
	Cost        float64 `json:"cost"`
}

// SelectedContext is the place/day the user picked in the plan for the assistant.
type SelectedContext struct {
	Label     string `json:"label"`
	DayNumber int    `json:"dayNumber,omitempty"`
	PlaceName string `json:"placeName,omitempty"`
}

// ChatResult is the canonical shape of a decoded chat response.
type ChatResult struct {
	Reply       string
	Suggestions []Suggestion
	Hotels      []HotelOption
	// HasSuggestions is false when the response carried no suggestions array at all.
	HasSuggestions bool
}

type ChatSession struct {
	TripID      string           `json:"tripId"`
	Mode        ChatMode         `json:"mode"`
	Messages    []ChatMessage    `json:"messages"`
	Suggestions []Suggestion     `json:"suggestions"`
	Hotels      []HotelOption    `json:"hotels"`
	Selected    *SelectedContext `json:"selectedContext,omitempty"`
}

func (s ChatSession) Clone() ChatSession {
	s.Messages = slices.Clone(s.Messages)
	s.Suggestions = slices.Clone(s.Suggestions)
	s.Hotels = slices.Clone(s.Hotels)
	if s.Selected != nil {
		sel := *s.Selected
		s.Selected = &sel
	}
	return s
}

// ContextLabel returns the selected label or "" when nothing is selected.
func (s ChatSession) ContextLabel() string {
	if s.Selected == nil {
		return ""
	}
	return s.Selected.Label
}

type HotelBooking struct {
	HotelID  string `json:"hotelId"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Email    string `json:"email,omitempty"`
}

type BookingConfirmation struct {
	Hotel    HotelOption `json:"hotel"`
	FullName string      `json:"fullName"`
	Phone    string      `json:"phone"`
	Email    string      `json:"email,omitempty"`
	Message  string      `json:"message"`
}

// ChatSnapshot is the transcript as saved by the user, stored verbatim.
type ChatSnapshot struct {
	ID       string        `json:"id"`
	TripID   string        `json:"tripId"`
	SavedAt  string        `json:"savedAt"`
	Mode     ChatMode      `json:"mode"`
	Messages []ChatMessage `json:"messages"`
}
