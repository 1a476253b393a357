// Package types provides type definitions for structured data used throughout the cv-optimizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Criterion represents one scored evaluation axis of a CV analysis.
// Strengths and Improvements are nil when the sub-section was absent and
// empty when it was present without bullets.
type Criterion struct {
	Name         string   `json:"name"`
	Score        *int     `json:"score,omitempty"` // 0-20 when present
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}

// AnalysisResult represents the global analysis of a CV
type AnalysisResult struct {
	GlobalScore            int         `json:"global_score"`
	Criteria               []Criterion `json:"criteria"`
	OfferFitNote           string      `json:"offer_fit_note"`
	GeneralRecommendations []string    `json:"general_recommendations"`
}

// NewAnalysisResult returns an AnalysisResult holding the documented defaults.
func NewAnalysisResult() AnalysisResult {
	return AnalysisResult{
		Criteria:               []Criterion{},
		GeneralRecommendations: []string{},
	}
}

// ScoredCriteria returns the criteria that carry a score, in document order.
func (r AnalysisResult) ScoredCriteria() []Criterion {
	scored := make([]Criterion, 0, len(r.Criteria))
	for _, c := range r.Criteria {
		if c.Score != nil {
			scored = append(scored, c)
		}
	}
	return scored
}
