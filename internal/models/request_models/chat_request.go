package request_models

import "encoding/json"

type ChatMessageRequest struct {
	Message string `json:"message"`
}

type ChatModeRequest struct {
	Mode string `json:"mode" binding:"required"`
}

type ChatContextRequest struct {
	SelectedContext json.RawMessage `json:"selectedContext"`
}

type HotelBookingRequest struct {
	HotelID  string `json:"hotelId"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}
