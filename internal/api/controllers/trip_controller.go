package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"journi/internal/models/request_models"
	"journi/internal/models/response_models"
	"journi/internal/services"
	"journi/pkg/logger"
	"journi/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
	log         *logger.Logger
}

func NewTripController(tripService services.TripServiceInterface, log *logger.Logger) *TripController {
	return &TripController{tripService: tripService, log: log}
}

// CreateTrip godoc
// @Summary Create a draft trip
// @Tags Trip
// @Accept json
// @Produce json
// @Param request body request_models.CreateTripRequest true "Name and destination"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/trips [post]
func (t *TripController) CreateTrip(c *gin.Context) {
	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	trip, err := t.tripService.CreateTrip(c.Request.Context(), c.GetString("user_id"), req.Name, req.Destination)
	if err != nil {
		utils.HandleServiceError(c, t.log, err)
		return
	}
	utils.RespondSuccess(c, trip, "Trip created successfully")
}

// ListTrips godoc
// @Summary List the caller's trips
// @Description Newest first
// @Tags Trip
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {object} response_models.TripListResponse
// @Security BearerAuth
// @Router /api/trips [get]
func (t *TripController) ListTrips(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		utils.HandleServiceError(c, t.log, utils.ErrInvalidPage)
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil {
		utils.HandleServiceError(c, t.log, utils.ErrInvalidPage)
		return
	}

	trips, total, err := t.tripService.ListTrips(c.Request.Context(), c.GetString("user_id"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, t.log, err)
		return
	}
	utils.RespondSuccess(c, response_models.TripListResponse{
		Items:    trips,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, "Trips fetched successfully")
}

// GetTrip godoc
// @Summary Get a trip with its plans
// @Tags Trip
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/trips/{tripId} [get]
func (t *TripController) GetTrip(c *gin.Context) {
	trip, err := t.tripService.GetTrip(c.Request.Context(), c.Param("tripId"), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, t.log, err)
		return
	}
	utils.RespondSuccess(c, trip, "Trip fetched successfully")
}

// DeleteTrip godoc
// @Summary Delete a trip
// @Tags Trip
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/trips/{tripId} [delete]
func (t *TripController) DeleteTrip(c *gin.Context) {
	if err := t.tripService.DeleteTrip(c.Request.Context(), c.Param("tripId"), c.GetString("user_id")); err != nil {
		utils.HandleServiceError(c, t.log, err)
		return
	}
	utils.RespondSuccess(c, nil, "Trip deleted successfully")
}

// SaveMeta godoc
// @Summary Save the generation form without generating
// @Tags Trip
// @Accept json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.TripFormRequest true "Form"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/trips/{tripId}/meta [put]
func (t *TripController) SaveMeta(c *gin.Context) {
	var req request_models.TripFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	trip, err := t.tripService.SaveMeta(c.Request.Context(), c.Param("tripId"), c.GetString("user_id"), req.ToSnapshot())
	if err != nil {
		utils.HandleServiceError(c, t.log, err)
		return
	}
	utils.RespondSuccess(c, trip, "Trip saved successfully")
}

// GeneratePlan godoc
// @Summary Generate a new plan for the trip
// @Description Collapses the existing plans and appends the generated one as the active plan
// @Tags Plan
// @Accept json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.TripFormRequest true "Form"
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/trips/{tripId}/plans [post]
func (t *TripController) GeneratePlan(c *gin.Context) {
	var req request_models.TripFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	trip, err := t.tripService.GeneratePlan(c.Request.Context(), c.Param("tripId"), c.GetString("user_id"), req.ToSnapshot())
	if err != nil {
		utils.HandleServiceError(c, t.log, err)
		return
	}
	utils.RespondSuccess(c, trip, "Plan generated successfully")
}

// CollapseAll godoc
// @Summary Collapse every plan before creating another one
// @Tags Plan
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/trips/{tripId}/plans/collapse [post]
func (t *TripController) CollapseAll(c *gin.Context) {
	trip, err := t.tripService.CollapseAll(c.Request.Context(), c.Param("tripId"), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, t.log, err)
		return
	}
	utils.RespondSuccess(c, trip, "Plans collapsed")
}

// DeletePlan godoc
// @Summary Delete a plan
// @Tags Plan
// @Param tripId path string true "Trip ID"
// @Param planId path string true "Plan ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/trips/{tripId}/plans/{planId} [delete]
func (t *TripController) DeletePlan(c *gin.Context) {
	trip, err := t.tripService.DeletePlan(c.Request.Context(), c.Param("tripId"), c.GetString("user_id"), c.Param("planId"))
	if err != nil {
		utils.HandleServiceError(c, t.log, err)
		return
	}
	utils.RespondSuccess(c, trip, "Plan deleted successfully")
}

// ToggleCollapse godoc
// @Summary Show or hide a plan
// @Tags Plan
// @Param tripId path string true "Trip ID"
// @Param planId path string true "Plan ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/trips/{tripId}/plans/{planId}/collapse [patch]
func (t *TripController) ToggleCollapse(c *gin.Context) {
	trip, err := t.tripService.ToggleCollapse(c.Request.Context(), c.Param("tripId"), c.GetString("user_id"), c.Param("planId"))
	if err != nil {
		utils.HandleServiceError(c, t.log, err)
		return
	}
	utils.RespondSuccess(c, trip, "Plan updated")
}

// PlanForm godoc
// @Summary Get the form that produced a plan
// @Tags Plan
// @Param tripId path string true "Trip ID"
// @Param planId path string true "Plan ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/trips/{tripId}/plans/{planId}/form [get]
func (t *TripController) PlanForm(c *gin.Context) {
	form, err := t.tripService.PlanForm(c.Request.Context(), c.Param("tripId"), c.GetString("user_id"), c.Param("planId"))
	if err != nil {
		utils.HandleServiceError(c, t.log, err)
		return
	}
	utils.RespondSuccess(c, form, "Form fetched successfully")
}

// InsertSuggestion godoc
// @Summary Add an assistant suggestion to a day
// @Description Without a target day the day selected in the assistant is used
// @Tags Plan
// @Accept json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.InsertSuggestionRequest true "Target and suggestion"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/trips/{tripId}/suggestions [post]
func (t *TripController) InsertSuggestion(c *gin.Context) {
	var req request_models.InsertSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	planID, day := req.TargetValues()
	trip, err := t.tripService.InsertSuggestion(
		c.Request.Context(),
		c.Param("tripId"),
		c.GetString("user_id"),
		services.InsertTarget{PlanID: planID, DayNumber: day},
		req.SuggestionValue(),
	)
	if err != nil {
		utils.HandleServiceError(c, t.log, err)
		return
	}
	utils.RespondSuccess(c, trip, "Suggestion added")
}

// RemoveSuggestion godoc
// @Summary Remove an assistant suggestion from a day
// @Description placeKey is the place id, or its name for places saved without one. Unknown keys are ignored.
// @Tags Plan
// @Param tripId path string true "Trip ID"
// @Param planId path string true "Plan ID"
// @Param dayNumber path int true "Day number"
// @Param placeKey path string true "Place id or name"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/trips/{tripId}/plans/{planId}/days/{dayNumber}/places/{placeKey} [delete]
func (t *TripController) RemoveSuggestion(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("dayNumber"))
	if err != nil || day < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid day number")
		return
	}

	trip, err := t.tripService.RemoveSuggestion(
		c.Request.Context(),
		c.Param("tripId"),
		c.GetString("user_id"),
		c.Param("planId"),
		day,
		c.Param("placeKey"),
	)
	if err != nil {
		utils.HandleServiceError(c, t.log, err)
		return
	}
	utils.RespondSuccess(c, trip, "Suggestion removed")
}
