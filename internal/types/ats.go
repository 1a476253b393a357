// Package types provides type definitions for structured data used throughout the cv-optimizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// KeywordEntry represents an offer keyword and its coverage in the CV
type KeywordEntry struct {
	Term        string `json:"term"`
	Priority    string `json:"priority"` // HAUTE, MOYENNE, BASSE as written
	Present     bool   `json:"present"`
	Occurrences int    `json:"occurrences"`
}

// AtsResult represents the applicant-tracking-system coverage analysis
type AtsResult struct {
	AtsScore         int            `json:"ats_score"`
	CoverageRate     string         `json:"coverage_rate"`
	Keywords         []KeywordEntry `json:"keywords"`
	Recommendations  []string       `json:"recommendations"`
	PositiveKeywords []string       `json:"positive_keywords"`
}

// NewAtsResult returns an AtsResult holding the documented defaults.
func NewAtsResult() AtsResult {
	return AtsResult{
		CoverageRate:     "0%",
		Keywords:         []KeywordEntry{},
		Recommendations:  []string{},
		PositiveKeywords: []string{},
	}
}

// Missing returns the keywords absent from the CV, in document order.
func (r AtsResult) Missing() []KeywordEntry {
	return r.filter(false)
}

// Present returns the keywords found in the CV, in document order.
func (r AtsResult) Present() []KeywordEntry {
	return r.filter(true)
}

func (r AtsResult) filter(present bool) []KeywordEntry {
	out := make([]KeywordEntry, 0, len(r.Keywords))
	for _, k := range r.Keywords {
		if k.Present == present {
			out = append(out, k)
		}
	}
	return out
}
