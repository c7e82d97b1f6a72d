package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"journi/pkg/logger"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// AIErrorResponse is the bare error body of the rewrite/generate/chat endpoints.
type AIErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Error codes of the AI endpoints.
const (
	CodeEmptyDescription = "EMPTY_DESCRIPTION"
	CodeEmptyMessage     = "EMPTY_MESSAGE"
	CodeEmptyResponse    = "EMPTY_RESPONSE"
	CodeParseError       = "PARSE_ERROR"
	CodeServerError      = "SERVER_ERROR"
)

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps a service error onto the response envelope. Errors
// that end as a 500 are logged with the request's trace id.
func HandleServiceError(c *gin.Context, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, ErrTripNotFound), errors.Is(err, ErrPlanNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be greater than 0 and page size between 1 and 100")
	case errors.Is(err, ErrValidation):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrDuplicateSuggestion):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrPrecondition):
		RespondError(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, ErrParse):
		RespondError(c, http.StatusBadGateway, "AI response could not be read, please try again")
	case errors.Is(err, ErrModelCall):
		RespondError(c, http.StatusBadGateway, "AI service is busy, please try again")
	case errors.Is(err, ErrDatabaseError):
		log.WithTrace(c).WithError(err).Error("Database error")
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.WithTrace(c).WithError(err).Error("Unknown error")
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// RespondAIError writes the bare {error, message} body used by the AI endpoints.
func RespondAIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEmptyDescription):
		c.JSON(http.StatusBadRequest, AIErrorResponse{Error: CodeEmptyDescription})
	case errors.Is(err, ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, AIErrorResponse{Error: CodeEmptyMessage})
	case errors.Is(err, ErrEmptyResponse):
		c.JSON(http.StatusInternalServerError, AIErrorResponse{Error: CodeEmptyResponse, Message: "Không nhận được trả lời."})
	case errors.Is(err, ErrParse):
		c.JSON(http.StatusInternalServerError, AIErrorResponse{Error: CodeParseError, Message: "Không đọc được JSON từ mô hình AI."})
	default:
		c.JSON(http.StatusInternalServerError, AIErrorResponse{Error: CodeServerError})
	}
}
