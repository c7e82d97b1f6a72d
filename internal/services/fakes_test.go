package services

import (
	"context"
	"errors"
	"sync"

	"journi/internal/models/domain_models"
	"journi/pkg/utils"
)

type fakeLLM struct {
	reply string
	err   error
	calls []utils.CompletionRequest
}

func (f *fakeLLM) Complete(_ context.Context, req utils.CompletionRequest) (string, error) {
	f.calls = append(f.calls, req)
	return f.reply, f.err
}

func (f *fakeLLM) Provider() string { return "fake" }

type fakeAI struct {
	mu        sync.Mutex
	chatRaw   string
	chatErr   error
	genRaw    string
	genErr    error
	lastMode  domain_models.ChatMode
	lastLabel string
	lastInput ItineraryInput
}

func (f *fakeAI) RewriteDescription(_ context.Context, description string) (string, error) {
	return "rewritten: " + description, nil
}

func (f *fakeAI) GenerateItinerary(_ context.Context, in ItineraryInput) (ModelJSON, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastInput = in
	if f.genErr != nil {
		return ModelJSON{}, f.genErr
	}
	return ParseModelJSON(f.genRaw)
}

func (f *fakeAI) Chat(_ context.Context, _ string, mode domain_models.ChatMode, label string) (ModelJSON, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastMode, f.lastLabel = mode, label
	if f.chatErr != nil {
		return ModelJSON{}, f.chatErr
	}
	return ParseModelJSON(f.chatRaw)
}

var errNetwork = errors.New("connection reset")
