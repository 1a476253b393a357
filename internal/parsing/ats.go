package parsing

import (
	"strings"

	"github.com/jonathan/cv-optimizer/internal/types"
)

// minKeywordParts is the number of '|' separated parts a keyword bullet needs.
const minKeywordParts = 3

// ParseAts parses the keyword coverage analysis. Every keyword bullet is one
// block of the report: a bullet with fewer than three parts or an empty term
// is dropped. Keywords keep document order, tagged by the section they came from.
func ParseAts(text string) (types.AtsResult, types.ParseReport, error) {
	result := types.NewAtsResult()
	doc := NewScanner(text)

	header := doc.Fields(HeaderWindow, LabelAtsScore, LabelCoverageRate)
	var err error
	if result.AtsScore, err = headerInteger(header, LabelAtsScore); err != nil {
		return result, types.ParseReport{}, err
	}
	if v, ok := header.Value(LabelCoverageRate); ok && v != "" {
		result.CoverageRate = v
	}

	missing := keywordLines(doc, HeadingMissingKeywords, false)
	present := keywordLines(doc, HeadingPresentKeywords, true)
	first, second := missing, present
	if presentFirst(doc.Text()) {
		first, second = present, missing
	}
	lines := make([]keywordLine, 0, len(first)+len(second))
	lines = append(append(lines, first...), second...)
	keywords, report := collect(buildBlocks(lines, buildKeyword))
	result.Keywords = keywords

	if recs := doc.Bullets(HeadingRecommendations, TermHeading); recs != nil {
		result.Recommendations = recs
	}
	if positives := doc.Bullets(HeadingPositiveKeywords, TermHeading); positives != nil {
		result.PositiveKeywords = positives
	}
	return result, report, nil
}

func presentFirst(text string) bool {
	m := strings.Index(text, HeadingMissingKeywords)
	p := strings.Index(text, HeadingPresentKeywords)
	return p >= 0 && (m < 0 || p < m)
}

type keywordLine struct {
	text    string
	present bool
}

func keywordLines(doc *Scanner, heading string, present bool) []keywordLine {
	body, ok := ExtractSection(doc.Text(), heading, TermHeading)
	if !ok {
		return nil
	}
	var lines []keywordLine
	for _, line := range strings.Split(body, "\n") {
		if ClassifyLine(line) == LineBullet {
			lines = append(lines, keywordLine{text: StripBullet(line), present: present})
		}
	}
	return lines
}

func buildKeyword(index int, line keywordLine) (types.KeywordEntry, error) {
	parts := strings.Split(line.text, KeywordSeparator)
	if len(parts) < minKeywordParts {
		return types.KeywordEntry{}, &BlockError{Index: index, Reason: "keyword needs term, priority and occurrences"}
	}
	term := strings.TrimSpace(parts[0])
	if term == "" {
		return types.KeywordEntry{}, &BlockError{Index: index, Field: "term", Reason: "missing term"}
	}
	occurrences, _ := ExtractLeadingInteger(parts[2])
	return types.KeywordEntry{
		Term:        term,
		Priority:    strings.TrimSpace(parts[1]),
		Present:     line.present,
		Occurrences: occurrences,
	}, nil
}
