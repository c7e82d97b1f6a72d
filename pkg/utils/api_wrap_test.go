package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journi/pkg/logger"
)

func respond(t *testing.T, fn func(c *gin.Context)) (int, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("trace_id", "trace-1")
	fn(c)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestHandleServiceError_Statuses(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{ErrTripNotFound, http.StatusNotFound},
		{ErrPlanNotFound, http.StatusNotFound},
		{ErrInvalidPage, http.StatusBadRequest},
		{ErrEmptyMessage, http.StatusBadRequest},
		{ErrInvalidBooking, http.StatusBadRequest},
		{ErrDuplicateSuggestion, http.StatusConflict},
		{ErrNoTargetDay, http.StatusUnprocessableEntity},
		{ErrParse, http.StatusBadGateway},
		{fmt.Errorf("%w: provider: %w", ErrModelCall, errors.New("dial tcp")), http.StatusBadGateway},
		{fmt.Errorf("%w: disk full", ErrDatabaseError), http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			code, body := respond(t, func(c *gin.Context) { HandleServiceError(c, logger.NewNop(), tc.err) })
			assert.Equal(t, tc.status, code)
			assert.Equal(t, "error", body["status"])
			assert.Equal(t, "trace-1", body["trace_id"])
		})
	}
}

func TestHandleServiceError_LogsThroughInjectedLogger(t *testing.T) {
	log := logger.NewNop()
	hook := logtest.NewLocal(log.Logger)

	respond(t, func(c *gin.Context) { HandleServiceError(c, log, ErrTripNotFound) })
	assert.Empty(t, hook.AllEntries())

	respond(t, func(c *gin.Context) { HandleServiceError(c, log, fmt.Errorf("%w: disk full", ErrDatabaseError)) })
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "trace-1", entry.Data["trace_id"])
	assert.ErrorIs(t, entry.Data[logrus.ErrorKey].(error), ErrDatabaseError)
}

func TestRespondSuccess_Envelope(t *testing.T) {
	code, body := respond(t, func(c *gin.Context) { RespondSuccess(c, map[string]int{"n": 1}, "ok") })

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "ok", body["message"])
	assert.Equal(t, map[string]any{"n": 1.0}, body["data"])
}

func TestRespondAIError_Codes(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{ErrEmptyDescription, http.StatusBadRequest, CodeEmptyDescription},
		{ErrEmptyMessage, http.StatusBadRequest, CodeEmptyMessage},
		{ErrEmptyResponse, http.StatusInternalServerError, CodeEmptyResponse},
		{fmt.Errorf("%w: not json", ErrParse), http.StatusInternalServerError, CodeParseError},
		{ErrModelCall, http.StatusInternalServerError, CodeServerError},
	}
	for _, tc := range cases {
		code, body := respond(t, func(c *gin.Context) { RespondAIError(c, tc.err) })
		assert.Equal(t, tc.status, code, tc.code)
		assert.Equal(t, tc.code, body["error"])
		assert.NotContains(t, body, "status")
	}
}
