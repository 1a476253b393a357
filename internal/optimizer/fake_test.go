package optimizer

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/cv-optimizer/internal/llm"
	"github.com/jonathan/cv-optimizer/internal/prompts"
)

// fakeClient answers each step with a canned reply, keyed by step name.
type fakeClient struct {
	mu       sync.Mutex
	replies  map[string]string
	failures map[string]error
	requests map[string]llm.Request
}

func newFakeClient(replies map[string]string) *fakeClient {
	return &fakeClient{
		replies:  replies,
		failures: map[string]error{},
		requests: map[string]llm.Request{},
	}
}

func (f *fakeClient) stepOf(system string) string {
	for _, step := range []Step{StepAnalysis, StepImprovements, StepChecklist, StepAts, StepRewrite, StepSuggestions} {
		if p, err := prompts.System(step.Name); err == nil && p == system {
			return step.Name
		}
	}
	return ""
}

func (f *fakeClient) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	step := f.stepOf(req.System)

	f.mu.Lock()
	f.requests[step] = req
	err := f.failures[step]
	reply, ok := f.replies[step]
	f.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New("no reply configured for " + step)
	}
	return &llm.Response{Text: reply, Model: "fake", InputTokens: 100, OutputTokens: 10}, nil
}

func (f *fakeClient) GetModel(tier llm.ModelTier) string { return "fake" }

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) request(step string) (llm.Request, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	req, ok := f.requests[step]
	return req, ok
}

type savedArtifact struct {
	step, category string
	content        any
}

// memoryStore records persistence calls.
type memoryStore struct {
	mu        sync.Mutex
	runs      map[uuid.UUID]string
	status    map[uuid.UUID]string
	tokens    map[uuid.UUID]int
	artifacts []savedArtifact
	texts     map[string]string
	saveErr   error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		runs:   map[uuid.UUID]string{},
		status: map[uuid.UUID]string{},
		tokens: map[uuid.UUID]int{},
		texts:  map[string]string{},
	}
}

func (m *memoryStore) CreateRun(ctx context.Context, runID uuid.UUID, niche, offerURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs[runID] = niche
	return nil
}

func (m *memoryStore) SaveArtifact(ctx context.Context, runID uuid.UUID, step, category string, content any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.artifacts = append(m.artifacts, savedArtifact{step: step, category: category, content: content})
	return nil
}

func (m *memoryStore) CompleteRun(ctx context.Context, runID uuid.UUID, status string, totalTokens int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status[runID] = status
	m.tokens[runID] = totalTokens
	return nil
}

func (m *memoryStore) SaveTextArtifact(ctx context.Context, runID uuid.UUID, step, category, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.texts[step] = text
	return nil
}
