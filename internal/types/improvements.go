// Package types provides type definitions for structured data used throughout the cv-optimizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ImprovementItem represents a before/after rewrite of one CV section
type ImprovementItem struct {
	SectionLabel string   `json:"section_label"`
	Title        string   `json:"title"`
	ImpactScore  int      `json:"impact_score"`
	Before       string   `json:"before"`
	After        string   `json:"after"`
	Rationale    []string `json:"rationale"`
}

// ImprovementsResult represents the section-by-section improvements
type ImprovementsResult struct {
	Items []ImprovementItem `json:"items"`
}

// NewImprovementsResult returns an empty ImprovementsResult.
func NewImprovementsResult() ImprovementsResult {
	return ImprovementsResult{Items: []ImprovementItem{}}
}
