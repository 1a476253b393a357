package parsing

// The reply dialect is a small markdown subset. Blocks start at a literal
// marker, scalar fields are bold labels followed by a value, nested content
// lives under "###" sub-headings and blocks end with a "---" rule.
//
// Markers are matched as exact substrings. A marker that appears inside free
// text starts a spurious block; the producer writes markers on their own
// line so this is tolerated rather than escaped.

// Block markers
const (
	MarkerAction      = "## ACTION "
	MarkerImprovement = "## AMELIORATION "
	MarkerCriterion   = "## CRITERE:"
)

// Header labels
const (
	LabelCurrentScore   = "**SCORE_ACTUEL:**"
	LabelPotentialScore = "**SCORE_POTENTIEL:**"
	LabelTotalTime      = "**TEMPS_TOTAL:**"
	LabelAtsScore       = "**SCORE_ATS:**"
	LabelCoverageRate   = "**TAUX_COUVERTURE:**"
	LabelGlobalScore    = "**SCORE_GLOBAL:**"
)

// Block field labels
const (
	LabelPriority = "**Priorite:**"
	LabelTitle    = "**Titre:**"
	LabelImpact   = "**Impact:**"
	LabelTime     = "**Temps:**"
	LabelSection  = "**Section:**"
	LabelScore    = "**Score:**"
)

// Sub-headings
const (
	HeadingDescription    = "### DESCRIPTION"
	HeadingConcreteAction = "### ACTION_CONCRETE"
	HeadingStrengths      = "### POINTS_FORTS"
	HeadingImprovements   = "### AMELIORATIONS"
	HeadingBefore         = "### AVANT"
	HeadingAfter          = "### APRES"
	HeadingWhy            = "### POURQUOI"

	HeadingMissingKeywords  = "## MOTS_CLES_MANQUANTS"
	HeadingPresentKeywords  = "## MOTS_CLES_PRESENTS"
	HeadingRecommendations  = "## RECOMMANDATIONS"
	HeadingPositiveKeywords = "## POINTS_FORTS"
	HeadingOfferFit         = "## ADEQUATION_OFFRE"
	HeadingGeneralAdvice    = "## RECOMMANDATIONS_GENERALES"
)

// Terminators
const (
	TermSubHeading = "###"
	TermHeading    = "##"
	TermRule       = "---"
	// TermNextHeading ends a section at the next level-2 heading without
	// matching deeper ones.
	TermNextHeading = "\n## "
)

// KeywordSeparator splits a keyword bullet into term, priority and occurrences.
const KeywordSeparator = "|"

// Window sizes bound how far into a document or block labels are searched.
const (
	HeaderWindow         = 10
	AnalysisHeaderWindow = 5
	BlockFieldWindow     = 10
	CriterionScoreWindow = 5
)

// Kind identifies one of the four document dialects
type Kind string

const (
	// KindAnalysis is the global scored analysis
	KindAnalysis Kind = "analysis"
	// KindChecklist is the prioritized action checklist
	KindChecklist Kind = "checklist"
	// KindAts is the keyword coverage analysis
	KindAts Kind = "ats"
	// KindImprovements is the section-by-section before/after rewrite
	KindImprovements Kind = "improvements"
)

// Kinds lists every supported document kind
func Kinds() []Kind {
	return []Kind{KindAnalysis, KindChecklist, KindAts, KindImprovements}
}

// ParseKind validates a kind name.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", &UnknownKindError{Kind: s}
}
