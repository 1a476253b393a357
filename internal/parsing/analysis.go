// Package parsing turns the semi-structured markdown replies of the model into
// typed records. Parsers tolerate malformed blocks: a block missing a required
// field is dropped and counted in the returned report while its siblings are
// kept. Only a malformed document header fails a parse.
package parsing

import (
	"strings"

	"github.com/jonathan/cv-optimizer/internal/types"
)

// ParseAnalysis parses the global scored analysis of a CV.
func ParseAnalysis(text string) (types.AnalysisResult, types.ParseReport, error) {
	result := types.NewAnalysisResult()
	doc := NewScanner(text)

	header := doc.Fields(AnalysisHeaderWindow, LabelGlobalScore)
	var err error
	if result.GlobalScore, err = headerInteger(header, LabelGlobalScore); err != nil {
		return result, types.ParseReport{}, err
	}

	blocks, _ := SplitBlocks(doc.Text(), MarkerCriterion)
	criteria, report := collect(buildBlocks(blocks, buildCriterion))
	result.Criteria = criteria

	if fit, ok := doc.Section(HeadingOfferFit, TermHeading); ok {
		result.OfferFitNote = fit
	}
	if advice := doc.Bullets(HeadingGeneralAdvice); advice != nil {
		result.GeneralRecommendations = advice
	}
	return result, report, nil
}

func buildCriterion(index int, block string) (types.Criterion, error) {
	s := NewScanner(block)

	name := s.FirstLine()
	if idx := strings.Index(name, LabelScore); idx >= 0 {
		name = name[:idx]
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return types.Criterion{}, &BlockError{Index: index, Field: "name", Reason: "missing criterion name"}
	}

	criterion := types.Criterion{Name: name}
	if n, _, ok := s.Fields(CriterionScoreWindow, LabelScore).Integer(LabelScore); ok {
		criterion.Score = &n
	}
	criterion.Strengths = s.Bullets(HeadingStrengths, TermSubHeading)
	criterion.Improvements = s.Bullets(HeadingImprovements, TermRule, TermNextHeading)
	return criterion, nil
}
