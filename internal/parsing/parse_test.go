package parsing

import (
	"testing"

	"github.com/jonathan/cv-optimizer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := ParseKind("cover_letter")
	var unknown *UnknownKindError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "cover_letter", unknown.Kind)
}

func TestParse_EmptyDocumentDefaults(t *testing.T) {
	tests := []struct {
		kind Kind
		want any
	}{
		{KindAnalysis, types.NewAnalysisResult()},
		{KindChecklist, types.NewChecklistResult()},
		{KindAts, types.NewAtsResult()},
		{KindImprovements, types.NewImprovementsResult()},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			for _, doc := range []string{"", "   \n\n", "Je ne peux pas analyser ce CV."} {
				got, report, err := Parse(tt.kind, doc, Options{})
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				assert.Equal(t, types.ParseReport{}, report)
			}
		})
	}
}

func TestParse_Dispatch(t *testing.T) {
	got, report, err := Parse(KindAts, atsDoc, Options{})
	require.NoError(t, err)
	result, ok := got.(types.AtsResult)
	require.True(t, ok)
	assert.Equal(t, 72, result.AtsScore)
	assert.Equal(t, 3, report.Accepted)

	_, _, err = Parse(Kind("unknown"), atsDoc, Options{})
	assert.Error(t, err)
}

func TestParse_Normalize(t *testing.T) {
	fenced := "```markdown\n" + analysisDoc + "```"

	got, _, err := Parse(KindAnalysis, fenced, Options{Normalize: true})
	require.NoError(t, err)
	result := got.(types.AnalysisResult)
	assert.Equal(t, 68, result.GlobalScore)
	assert.Len(t, result.Criteria, 2)
}

func TestParse_HeaderErrorCarriesNoReport(t *testing.T) {
	_, report, err := Parse(KindChecklist, "**SCORE_ACTUEL:** ?\n## ACTION 1\n**Titre:** X\n---", Options{})
	require.Error(t, err)
	assert.Equal(t, types.ParseReport{}, report)
}
