// Package types provides type definitions for structured data used throughout the cv-optimizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// OptimizationRequest represents the inputs of one CV optimisation
type OptimizationRequest struct {
	CV       string `json:"cv" validate:"required,min=20"`
	Niche    string `json:"niche" validate:"required"`
	Offer    string `json:"offer,omitempty"`
	OfferURL string `json:"offer_url,omitempty" validate:"omitempty,url"` // Where Offer was fetched from
}

// Validate validates the OptimizationRequest using the validator.
func (r *OptimizationRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// BlockRejection describes a block dropped by a parser
type BlockRejection struct {
	Index  int    `json:"index"`
	Field  string `json:"field,omitempty"`
	Reason string `json:"reason"`
}

// ParseReport summarises the block outcomes of one parse
type ParseReport struct {
	Blocks     int              `json:"blocks"`
	Accepted   int              `json:"accepted"`
	Dropped    int              `json:"dropped"`
	Rejections []BlockRejection `json:"rejections,omitempty"`
}

// OptimizationResult represents the structured output of a full optimisation
type OptimizationResult struct {
	RunID        uuid.UUID              `json:"run_id"`
	Niche        string                 `json:"niche"`
	Analysis     AnalysisResult         `json:"analysis"`
	Improvements ImprovementsResult     `json:"improvements"`
	Checklist    ChecklistResult        `json:"checklist"`
	Ats          AtsResult              `json:"ats"`
	Reports      map[string]ParseReport `json:"reports"`
	TotalTokens  int                    `json:"total_tokens"`
}
