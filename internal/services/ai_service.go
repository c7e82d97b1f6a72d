package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"journi/internal/models/domain_models"
	"journi/pkg/config"
	"journi/pkg/logger"
	"journi/pkg/utils"
)

const (
	IntentRewrite   = "rewrite"
	IntentItinerary = "itinerary"
	IntentChat      = "chat"
)

const (
	rewriteTemperature   float32 = 0.7
	itineraryTemperature float32 = 0.7
	chatTemperature      float32 = 0.8
)

// AIServiceInterface runs the three model-backed intents. Each call is one
// buffered request with no retry.
type AIServiceInterface interface {
	RewriteDescription(ctx context.Context, description string) (string, error)
	GenerateItinerary(ctx context.Context, in ItineraryInput) (ModelJSON, error)
	Chat(ctx context.Context, message string, mode domain_models.ChatMode, contextLabel string) (ModelJSON, error)
}

type AIService struct {
	llm       utils.LLMClient
	validator *ResponseValidator
	log       *logger.Logger
	timeout   time.Duration
}

func NewAIService(llm utils.LLMClient, validator *ResponseValidator, log *logger.Logger, cfg *config.Config) AIServiceInterface {
	return &AIService{
		llm:       llm,
		validator: validator,
		log:       log,
		timeout:   cfg.LLM.Timeout,
	}
}

func (s *AIService) complete(ctx context.Context, intent string, prompt PromptPair, jsonMode bool, temperature float32) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	raw, err := s.llm.Complete(ctx, utils.CompletionRequest{
		Intent:      intent,
		System:      prompt.System,
		User:        prompt.User,
		JSONMode:    jsonMode,
		Temperature: temperature,
	})
	if err != nil && !errors.Is(err, utils.ErrModelCall) {
		err = fmt.Errorf("%w: %s: %w", utils.ErrModelCall, s.llm.Provider(), err)
	}
	s.log.LogModelCall(s.llm.Provider(), intent, time.Since(start).Milliseconds(), err)
	return raw, err
}

func (s *AIService) RewriteDescription(ctx context.Context, description string) (string, error) {
	if strings.TrimSpace(description) == "" {
		return "", utils.ErrEmptyDescription
	}

	raw, err := s.complete(ctx, IntentRewrite, BuildRewritePrompt(description), false, rewriteTemperature)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", utils.ErrEmptyResponse
	}
	return text, nil
}

func (s *AIService) GenerateItinerary(ctx context.Context, in ItineraryInput) (ModelJSON, error) {
	raw, err := s.complete(ctx, IntentItinerary, BuildItineraryPrompt(in), true, itineraryTemperature)
	if err != nil {
		return ModelJSON{}, err
	}
	return s.validator.Parse(IntentItinerary, raw)
}

func (s *AIService) Chat(ctx context.Context, message string, mode domain_models.ChatMode, contextLabel string) (ModelJSON, error) {
	if strings.TrimSpace(message) == "" {
		return ModelJSON{}, utils.ErrEmptyMessage
	}
	if !mode.Valid() {
		return ModelJSON{}, utils.ErrInvalidMode
	}

	raw, err := s.complete(ctx, IntentChat, BuildChatPrompt(message, mode, contextLabel), true, chatTemperature)
	if err != nil {
		return ModelJSON{}, err
	}
	return s.validator.Parse(IntentChat, raw)
}
