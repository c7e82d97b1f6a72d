package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"journi/internal/models/request_models"
	"journi/internal/models/response_models"
	"journi/internal/services"
	"journi/pkg/utils"
)

// AIController serves the stateless model endpoints. Errors use the bare
// {error, message} body instead of the APIResponse envelope.
type AIController struct {
	aiService services.AIServiceInterface
}

func NewAIController(aiService services.AIServiceInterface) *AIController {
	return &AIController{aiService: aiService}
}

// RewriteDescription godoc
// @Summary Rewrite a trip description
// @Description Paraphrase the user's free-text trip description so it is clear for the itinerary model
// @Tags AI
// @Accept json
// @Produce json
// @Param request body request_models.RewriteDescriptionRequest true "Description"
// @Success 200 {object} response_models.RewriteDescriptionResponse
// @Failure 400 {object} utils.AIErrorResponse
// @Failure 500 {object} utils.AIErrorResponse
// @Router /api/rewrite-description [post]
func (a *AIController) RewriteDescription(c *gin.Context) {
	var req request_models.RewriteDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondAIError(c, utils.ErrEmptyDescription)
		return
	}

	text, err := a.aiService.RewriteDescription(c.Request.Context(), req.Description)
	if err != nil {
		utils.RespondAIError(c, err)
		return
	}
	c.JSON(http.StatusOK, response_models.RewriteDescriptionResponse{Text: text})
}

// GenerateItinerary godoc
// @Summary Generate an itinerary
// @Description Ask the model for a day-by-day itinerary and return its validated JSON unchanged
// @Tags AI
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItineraryRequest true "Trip parameters, all optional"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} utils.AIErrorResponse
// @Router /api/generate-itinerary [post]
func (a *AIController) GenerateItinerary(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	// A missing or malformed body means every field is unknown.
	_ = c.ShouldBindJSON(&req)

	doc, err := a.aiService.GenerateItinerary(c.Request.Context(), services.ItineraryInput{
		Destination: cast.ToString(req.Destination),
		NumDays:     cast.ToInt(req.NumDays),
		Budget:      cast.ToString(req.Budget),
		Preferences: cast.ToString(req.Preferences),
		Reason:      cast.ToString(req.Reason),
		Description: cast.ToString(req.Description),
	})
	if err != nil {
		utils.RespondAIError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc.Value)
}

// ChatItinerary godoc
// @Summary Ask the travel assistant
// @Description One assistant turn in place or hotel mode; returns the validated model JSON unchanged
// @Tags AI
// @Accept json
// @Produce json
// @Param request body request_models.ChatItineraryRequest true "Message, mode and optional selected context"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.AIErrorResponse
// @Failure 500 {object} utils.AIErrorResponse
// @Router /api/chat-itinerary [post]
func (a *AIController) ChatItinerary(c *gin.Context) {
	var req request_models.ChatItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondAIError(c, utils.ErrEmptyMessage)
		return
	}

	label := ""
	if sel := req.Context(); sel != nil {
		label = sel.Label
	}

	doc, err := a.aiService.Chat(c.Request.Context(), req.Message, req.ChatMode(), label)
	if err != nil {
		utils.RespondAIError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc.Value)
}
