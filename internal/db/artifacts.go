package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/cv-optimizer/internal/types"
)

// decodeArtifact unmarshals content into a new T; nil content yields nil.
func decodeArtifact[T any](content []byte, step string) (*T, error) {
	if content == nil {
		return nil, nil
	}
	var v T
	if err := json.Unmarshal(content, &v); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", step, err)
	}
	return &v, nil
}

func getArtifact[T any](ctx context.Context, db *DB, runID uuid.UUID, step string) (*T, error) {
	content, err := db.GetArtifact(ctx, runID, step)
	if err != nil {
		return nil, err
	}
	return decodeArtifact[T](content, step)
}

// GetAnalysisByRunID loads the analysis result of a run
func (db *DB) GetAnalysisByRunID(ctx context.Context, runID uuid.UUID) (*types.AnalysisResult, error) {
	return getArtifact[types.AnalysisResult](ctx, db, runID, StepAnalysis)
}

// GetImprovementsByRunID loads the improvements result of a run
func (db *DB) GetImprovementsByRunID(ctx context.Context, runID uuid.UUID) (*types.ImprovementsResult, error) {
	return getArtifact[types.ImprovementsResult](ctx, db, runID, StepImprovements)
}

// GetChecklistByRunID loads the checklist result of a run
func (db *DB) GetChecklistByRunID(ctx context.Context, runID uuid.UUID) (*types.ChecklistResult, error) {
	return getArtifact[types.ChecklistResult](ctx, db, runID, StepChecklist)
}

// GetAtsByRunID loads the ATS result of a run
func (db *DB) GetAtsByRunID(ctx context.Context, runID uuid.UUID) (*types.AtsResult, error) {
	return getArtifact[types.AtsResult](ctx, db, runID, StepAts)
}

// GetReportsByRunID loads the per-step parse reports of a run
func (db *DB) GetReportsByRunID(ctx context.Context, runID uuid.UUID) (map[string]types.ParseReport, error) {
	reports, err := getArtifact[map[string]types.ParseReport](ctx, db, runID, StepReports)
	if err != nil || reports == nil {
		return nil, err
	}
	return *reports, nil
}

// GetOptimizationByRunID reassembles a stored run. It returns nil when the
// run does not exist.
func (db *DB) GetOptimizationByRunID(ctx context.Context, runID uuid.UUID) (*types.OptimizationResult, error) {
	run, err := db.GetRun(ctx, runID)
	if err != nil || run == nil {
		return nil, err
	}

	result := &types.OptimizationResult{
		RunID:        run.ID,
		Niche:        run.Niche,
		Analysis:     types.NewAnalysisResult(),
		Improvements: types.NewImprovementsResult(),
		Checklist:    types.NewChecklistResult(),
		Ats:          types.NewAtsResult(),
		TotalTokens:  run.TotalTokens,
	}
	if a, err := db.GetAnalysisByRunID(ctx, runID); err != nil {
		return nil, err
	} else if a != nil {
		result.Analysis = *a
	}
	if i, err := db.GetImprovementsByRunID(ctx, runID); err != nil {
		return nil, err
	} else if i != nil {
		result.Improvements = *i
	}
	if c, err := db.GetChecklistByRunID(ctx, runID); err != nil {
		return nil, err
	} else if c != nil {
		result.Checklist = *c
	}
	if a, err := db.GetAtsByRunID(ctx, runID); err != nil {
		return nil, err
	} else if a != nil {
		result.Ats = *a
	}
	if result.Reports, err = db.GetReportsByRunID(ctx, runID); err != nil {
		return nil, err
	}
	return result, nil
}
