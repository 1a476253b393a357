package parsing

import "github.com/jonathan/cv-optimizer/internal/types"

// ParseImprovements parses the section-by-section before/after rewrites.
// The impact score is mandatory: a block without a numeric impact is dropped
// because downstream ranking depends on it.
func ParseImprovements(text string) (types.ImprovementsResult, types.ParseReport, error) {
	result := types.NewImprovementsResult()
	blocks, _ := SplitBlocks(text, MarkerImprovement)
	items, report := collect(buildBlocks(blocks, buildImprovement))
	result.Items = items
	return result, report, nil
}

func buildImprovement(index int, block string) (types.ImprovementItem, error) {
	s := NewScanner(block)
	fields := s.Fields(BlockFieldWindow, LabelSection, LabelTitle, LabelImpact)

	section, _ := fields.Value(LabelSection)
	if section == "" {
		return types.ImprovementItem{}, &BlockError{Index: index, Field: "section_label", Reason: "missing section"}
	}
	impact, found, ok := fields.Integer(LabelImpact)
	switch {
	case !found:
		return types.ImprovementItem{}, &BlockError{Index: index, Field: "impact_score", Reason: "missing impact"}
	case !ok:
		return types.ImprovementItem{}, &BlockError{Index: index, Field: "impact_score", Reason: "impact has no numeric value"}
	}

	title, _ := fields.Value(LabelTitle)
	before, _ := s.Section(HeadingBefore, HeadingAfter)
	after, _ := s.Section(HeadingAfter, HeadingWhy)
	return types.ImprovementItem{
		SectionLabel: section,
		Title:        title,
		ImpactScore:  impact,
		Before:       before,
		After:        after,
		Rationale:    s.Bullets(HeadingWhy, TermRule),
	}, nil
}
