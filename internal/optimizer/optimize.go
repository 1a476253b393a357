package optimizer

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-optimizer/internal/types"
)

// Run statuses
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Artifact categories
const (
	CategoryInput  = "input"
	CategoryResult = "result"
)

// Optimize runs the analysis, improvements, checklist and ATS steps
// concurrently. The first failing step cancels the others.
func (s *Service) Optimize(ctx context.Context, req types.OptimizationRequest) (*types.OptimizationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid optimization request: %w", err)
	}

	result := &types.OptimizationResult{
		RunID:   uuid.New(),
		Niche:   req.Niche,
		Reports: make(map[string]types.ParseReport, 4),
	}
	log := s.logger.WithFields(logrus.Fields{"run_id": result.RunID, "niche": req.Niche})

	if s.store != nil {
		if err := s.store.CreateRun(ctx, result.RunID, req.Niche, req.OfferURL); err != nil {
			return nil, &StoreError{Message: "failed to create run", Cause: err}
		}
		if err := s.saveInputs(ctx, result.RunID, req); err != nil {
			return nil, err
		}
	}

	log.Info("Starting optimization")
	var mu sync.Mutex
	record := func(step string, report types.ParseReport, tokens int) {
		mu.Lock()
		defer mu.Unlock()
		result.Reports[step] = report
		result.TotalTokens += tokens
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out, err := s.Analyze(gCtx, req)
		if err != nil {
			return err
		}
		result.Analysis = out.Result
		record(StepAnalysis.Name, out.Report, out.Tokens)
		return nil
	})
	g.Go(func() error {
		out, err := s.Improve(gCtx, req)
		if err != nil {
			return err
		}
		result.Improvements = out.Result
		record(StepImprovements.Name, out.Report, out.Tokens)
		return nil
	})
	g.Go(func() error {
		out, err := s.Checklist(gCtx, req)
		if err != nil {
			return err
		}
		result.Checklist = out.Result
		record(StepChecklist.Name, out.Report, out.Tokens)
		return nil
	})
	g.Go(func() error {
		out, err := s.Ats(gCtx, req)
		if err != nil {
			return err
		}
		result.Ats = out.Result
		record(StepAts.Name, out.Report, out.Tokens)
		return nil
	})

	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Optimization failed")
		if s.store != nil {
			if storeErr := s.store.CompleteRun(ctx, result.RunID, StatusFailed, result.TotalTokens); storeErr != nil {
				log.WithError(storeErr).Warn("Failed to mark run as failed")
			}
		}
		return nil, err
	}

	if s.store != nil {
		if err := s.persist(ctx, result); err != nil {
			return nil, err
		}
	}

	log.WithField("total_tokens", result.TotalTokens).Info("Optimization completed")
	return result, nil
}

func (s *Service) saveInputs(ctx context.Context, runID uuid.UUID, req types.OptimizationRequest) error {
	if err := s.store.SaveTextArtifact(ctx, runID, "cv", CategoryInput, req.CV); err != nil {
		return &StoreError{Message: "failed to save cv", Cause: err}
	}
	if strings.TrimSpace(req.Offer) == "" {
		return nil
	}
	if err := s.store.SaveTextArtifact(ctx, runID, "offer", CategoryInput, req.Offer); err != nil {
		return &StoreError{Message: "failed to save offer", Cause: err}
	}
	return nil
}

func (s *Service) persist(ctx context.Context, result *types.OptimizationResult) error {
	artifacts := []struct {
		step    string
		content any
	}{
		{StepAnalysis.Name, result.Analysis},
		{StepImprovements.Name, result.Improvements},
		{StepChecklist.Name, result.Checklist},
		{StepAts.Name, result.Ats},
		{"reports", result.Reports},
	}
	for _, a := range artifacts {
		if err := s.store.SaveArtifact(ctx, result.RunID, a.step, CategoryResult, a.content); err != nil {
			return &StoreError{Message: fmt.Sprintf("failed to save %s", a.step), Cause: err}
		}
	}
	if err := s.store.CompleteRun(ctx, result.RunID, StatusCompleted, result.TotalTokens); err != nil {
		return &StoreError{Message: "failed to complete run", Cause: err}
	}
	return nil
}
