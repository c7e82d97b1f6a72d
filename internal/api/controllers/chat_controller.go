package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"journi/internal/models/domain_models"
	"journi/internal/models/request_models"
	"journi/internal/models/response_models"
	"journi/internal/services"
	"journi/pkg/logger"
	"journi/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
	log         *logger.Logger
}

func NewChatController(chatService services.ChatServiceInterface, log *logger.Logger) *ChatController {
	return &ChatController{chatService: chatService, log: log}
}

// GetSession godoc
// @Summary Get the assistant session of a trip
// @Description Starts a new session with the greeting when none exists
// @Tags Chat
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/trips/{tripId}/chat [get]
func (h *ChatController) GetSession(c *gin.Context) {
	session, err := h.chatService.GetSession(c.Request.Context(), c.Param("tripId"), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, h.log, err)
		return
	}
	utils.RespondSuccess(c, session, "Chat session fetched successfully")
}

// SendMessage godoc
// @Summary Send a message to the assistant
// @Description A failed model call still returns 200 with an apology message appended
// @Tags Chat
// @Accept json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.ChatMessageRequest true "Message"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/trips/{tripId}/chat/messages [post]
func (h *ChatController) SendMessage(c *gin.Context) {
	var req request_models.ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.chatService.SendMessage(c.Request.Context(), c.Param("tripId"), c.GetString("user_id"), req.Message)
	if err != nil {
		utils.HandleServiceError(c, h.log, err)
		return
	}
	utils.RespondSuccess(c, session, "Message sent")
}

// SwitchMode godoc
// @Summary Switch between place and hotel suggestions
// @Tags Chat
// @Accept json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.ChatModeRequest true "Mode"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/trips/{tripId}/chat/mode [put]
func (h *ChatController) SwitchMode(c *gin.Context) {
	var req request_models.ChatModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.chatService.SwitchMode(c.Request.Context(), c.Param("tripId"), c.GetString("user_id"), domain_models.ChatMode(req.Mode))
	if err != nil {
		utils.HandleServiceError(c, h.log, err)
		return
	}
	utils.RespondSuccess(c, session, "Mode switched")
}

// SetContext godoc
// @Summary Select the place or day the assistant should focus on
// @Description A null or empty selection clears it
// @Tags Chat
// @Accept json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.ChatContextRequest true "Selected context"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/trips/{tripId}/chat/context [put]
func (h *ChatController) SetContext(c *gin.Context) {
	var req request_models.ChatContextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.chatService.SetContext(
		c.Request.Context(),
		c.Param("tripId"),
		c.GetString("user_id"),
		request_models.DecodeSelectedContext(req.SelectedContext),
	)
	if err != nil {
		utils.HandleServiceError(c, h.log, err)
		return
	}
	utils.RespondSuccess(c, session, "Context updated")
}

// Reset godoc
// @Summary Start the conversation over
// @Tags Chat
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/trips/{tripId}/chat [delete]
func (h *ChatController) Reset(c *gin.Context) {
	session, err := h.chatService.Reset(c.Request.Context(), c.Param("tripId"), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, h.log, err)
		return
	}
	utils.RespondSuccess(c, session, "Chat reset")
}

// SaveSnapshot godoc
// @Summary Save the current conversation
// @Tags Chat
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/trips/{tripId}/chat/snapshot [post]
func (h *ChatController) SaveSnapshot(c *gin.Context) {
	snapshot, err := h.chatService.SaveSnapshot(c.Request.Context(), c.Param("tripId"), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, h.log, err)
		return
	}
	utils.RespondSuccess(c, snapshot, "Conversation saved")
}

// ListSnapshots godoc
// @Summary List saved conversations of a trip
// @Tags Chat
// @Param tripId path string true "Trip ID"
// @Success 200 {object} response_models.SnapshotListResponse
// @Security BearerAuth
// @Router /api/trips/{tripId}/chat/snapshots [get]
func (h *ChatController) ListSnapshots(c *gin.Context) {
	snapshots, err := h.chatService.ListSnapshots(c.Request.Context(), c.Param("tripId"), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, h.log, err)
		return
	}
	utils.RespondSuccess(c, response_models.SnapshotListResponse{Items: snapshots}, "Conversations fetched successfully")
}

// BookHotel godoc
// @Summary Book one of the suggested hotels
// @Description Local confirmation only, no reservation is made
// @Tags Chat
// @Accept json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.HotelBookingRequest true "Booking"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/trips/{tripId}/chat/booking [post]
func (h *ChatController) BookHotel(c *gin.Context) {
	var req request_models.HotelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	confirmation, err := h.chatService.BookHotel(c.Request.Context(), c.Param("tripId"), c.GetString("user_id"), domain_models.HotelBooking{
		HotelID:  req.HotelID,
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
	})
	if err != nil {
		utils.HandleServiceError(c, h.log, err)
		return
	}
	utils.RespondSuccess(c, confirmation, "Hotel booked")
}
