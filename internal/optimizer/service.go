package optimizer

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jonathan/cv-optimizer/internal/llm"
	"github.com/jonathan/cv-optimizer/internal/parsing"
	"github.com/jonathan/cv-optimizer/internal/prompts"
	"github.com/jonathan/cv-optimizer/internal/types"
)

// Store persists optimisation runs. *db.DB implements it.
type Store interface {
	CreateRun(ctx context.Context, runID uuid.UUID, niche, offerURL string) error
	SaveArtifact(ctx context.Context, runID uuid.UUID, step, category string, content any) error
	SaveTextArtifact(ctx context.Context, runID uuid.UUID, step, category, text string) error
	CompleteRun(ctx context.Context, runID uuid.UUID, status string, totalTokens int) error
}

// Service runs optimisation steps against a model
type Service struct {
	client llm.Client
	logger *logrus.Logger
	store  Store
}

// Option configures a Service
type Option func(*Service)

// WithLogger sets the logger. A nil logger keeps the standard logger.
func WithLogger(logger *logrus.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithStore persists every full optimisation to store.
func WithStore(store Store) Option {
	return func(s *Service) {
		s.store = store
	}
}

// New creates a Service on top of client.
func New(client llm.Client, opts ...Option) *Service {
	s := &Service{
		client: client,
		logger: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StepResult is the parsed reply of a structured step
type StepResult[T any] struct {
	Result T
	Report types.ParseReport
	Tokens int
}

// TextResult is the free markdown reply of a rewrite or suggestions step
type TextResult struct {
	Markdown string `json:"markdown"`
	Tokens   int    `json:"tokens"`
}

// call sends the step's prompts and returns the raw reply.
func (s *Service) call(ctx context.Context, step Step, req types.OptimizationRequest) (*llm.Response, error) {
	system, err := prompts.System(step.Name)
	if err != nil {
		return nil, err
	}
	message, err := BuildUserMessage(step, req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := s.client.Generate(ctx, llm.Request{
		System:      system,
		Prompt:      message,
		Tier:        step.Tier,
		MaxTokens:   step.MaxTokens,
		Temperature: step.Temperature,
	})
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"step":  step.Name,
			"niche": req.Niche,
		}).WithError(err).Error("Model call failed")
		return nil, &APICallError{Step: step.Name, Cause: err}
	}

	s.logger.WithFields(logrus.Fields{
		"step":     step.Name,
		"niche":    req.Niche,
		"model":    resp.Model,
		"tokens":   resp.TotalTokens(),
		"duration": time.Since(start),
	}).Info("Model call completed")
	return resp, nil
}

// runStructured calls the model for step and feeds the reply to parse.
func runStructured[T any](ctx context.Context, s *Service, step Step, req types.OptimizationRequest,
	parse func(string) (T, types.ParseReport, error)) (*StepResult[T], error) {
	resp, err := s.call(ctx, step, req)
	if err != nil {
		return nil, err
	}

	text := resp.Text
	if strings.HasPrefix(strings.TrimSpace(text), "```") {
		text = parsing.Normalize(text)
	}

	result, report, err := parse(text)
	if err != nil {
		return nil, &ParseError{Step: step.Name, Cause: err}
	}
	for _, r := range report.Rejections {
		s.logger.WithFields(logrus.Fields{
			"step":   step.Name,
			"block":  r.Index,
			"field":  r.Field,
			"reason": r.Reason,
		}).Warn("Dropped malformed block")
	}
	return &StepResult[T]{Result: result, Report: report, Tokens: resp.TotalTokens()}, nil
}

// Analyze scores the CV on five criteria.
func (s *Service) Analyze(ctx context.Context, req types.OptimizationRequest) (*StepResult[types.AnalysisResult], error) {
	return runStructured(ctx, s, StepAnalysis, req, parsing.ParseAnalysis)
}

// Improve proposes section-by-section before/after rewrites.
func (s *Service) Improve(ctx context.Context, req types.OptimizationRequest) (*StepResult[types.ImprovementsResult], error) {
	return runStructured(ctx, s, StepImprovements, req, parsing.ParseImprovements)
}

// Checklist produces prioritized actions.
func (s *Service) Checklist(ctx context.Context, req types.OptimizationRequest) (*StepResult[types.ChecklistResult], error) {
	return runStructured(ctx, s, StepChecklist, req, parsing.ParseChecklist)
}

// Ats checks keyword coverage against the offer.
func (s *Service) Ats(ctx context.Context, req types.OptimizationRequest) (*StepResult[types.AtsResult], error) {
	return runStructured(ctx, s, StepAts, req, parsing.ParseAts)
}

// Rewrite returns the whole CV rewritten as markdown.
func (s *Service) Rewrite(ctx context.Context, req types.OptimizationRequest) (*TextResult, error) {
	resp, err := s.call(ctx, StepRewrite, req)
	if err != nil {
		return nil, err
	}
	return &TextResult{Markdown: parsing.StripFence(resp.Text), Tokens: resp.TotalTokens()}, nil
}

// Suggest returns free-form coaching suggestions as markdown.
func (s *Service) Suggest(ctx context.Context, req types.OptimizationRequest) (*TextResult, error) {
	resp, err := s.call(ctx, StepSuggestions, req)
	if err != nil {
		return nil, err
	}
	return &TextResult{Markdown: strings.TrimSpace(resp.Text), Tokens: resp.TotalTokens()}, nil
}
