// Package types provides type definitions for structured data used throughout the cv-optimizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Priority ranks an action of the checklist
type Priority string

const (
	// PriorityUrgent is for actions that must be done first
	PriorityUrgent Priority = "urgent"
	// PriorityImportant is for actions with a significant impact
	PriorityImportant Priority = "important"
	// PriorityNiceToHave is for optional polish
	PriorityNiceToHave Priority = "nice_to_have"
	// PriorityUnknown is used when the label could not be classified
	PriorityUnknown Priority = "unknown"
)

// Rank orders priorities from most to least pressing (lower is more urgent).
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 0
	case PriorityImportant:
		return 1
	case PriorityNiceToHave:
		return 2
	default:
		return 3
	}
}

// ActionItem represents one concrete action of the checklist
type ActionItem struct {
	Priority      Priority `json:"priority"`
	PriorityLabel string   `json:"priority_label,omitempty"` // Literal as written in the document
	Title         string   `json:"title"`
	ImpactPoints  int      `json:"impact_points"`
	TimeEstimate  string   `json:"time_estimate"`
	Description   string   `json:"description"`
	ConcreteStep  string   `json:"concrete_step"`
}

// ChecklistResult represents a prioritized action checklist
type ChecklistResult struct {
	CurrentScore      int          `json:"current_score"`
	PotentialScore    int          `json:"potential_score"`
	TotalTimeEstimate string       `json:"total_time_estimate"`
	Actions           []ActionItem `json:"actions"`
}

// NewChecklistResult returns a ChecklistResult holding the documented defaults.
func NewChecklistResult() ChecklistResult {
	return ChecklistResult{
		TotalTimeEstimate: "N/A",
		Actions:           []ActionItem{},
	}
}

// TotalImpact sums the impact points of all actions.
func (r ChecklistResult) TotalImpact() int {
	total := 0
	for _, a := range r.Actions {
		total += a.ImpactPoints
	}
	return total
}
