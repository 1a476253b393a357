package parsing

import (
	"strings"
	"testing"

	"github.com/jonathan/cv-optimizer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChecklist(t *testing.T) {
	doc := "**SCORE_ACTUEL:** 52\n**SCORE_POTENTIEL:** 87\n**TEMPS_TOTAL:** 45 min\n\n" +
		"## ACTION 1\n**Priorite:** URGENTE\n**Titre:** X\n**Impact:** 15\n**Temps:** 5 min\n\n" +
		"### DESCRIPTION\nY\n\n### ACTION_CONCRETE\nZ\n---"

	result, report, err := ParseChecklist(doc)
	require.NoError(t, err)

	assert.Equal(t, 52, result.CurrentScore)
	assert.Equal(t, 87, result.PotentialScore)
	assert.Equal(t, "45 min", result.TotalTimeEstimate)
	require.Len(t, result.Actions, 1)
	assert.Equal(t, types.ActionItem{
		Priority:      types.PriorityUrgent,
		PriorityLabel: "URGENTE",
		Title:         "X",
		ImpactPoints:  15,
		TimeEstimate:  "5 min",
		Description:   "Y",
		ConcreteStep:  "Z",
	}, result.Actions[0])
	assert.Equal(t, types.ParseReport{Blocks: 1, Accepted: 1}, report)
}

func TestParseChecklist_Header(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		wantErr   bool
		current   int
		potential int
		total     string
	}{
		{
			name:  "empty document keeps defaults",
			doc:   "",
			total: "N/A",
		},
		{
			name:    "current score without digits",
			doc:     "**SCORE_ACTUEL:** N/A\n**SCORE_POTENTIEL:** 80",
			wantErr: true,
		},
		{
			name:    "potential score without digits",
			doc:     "**SCORE_ACTUEL:** 40\n**SCORE_POTENTIEL:** élevé",
			wantErr: true,
		},
		{
			name:      "missing potential defaults to zero",
			doc:       "**SCORE_ACTUEL:** 40/100",
			current:   40,
			potential: 0,
			total:     "N/A",
		},
		{
			name:      "empty total time keeps default",
			doc:       "**SCORE_ACTUEL:** 40\n**SCORE_POTENTIEL:** 70\n**TEMPS_TOTAL:**",
			current:   40,
			potential: 70,
			total:     "N/A",
		},
		{
			name:  "header beyond the window is ignored",
			doc:   strings.Repeat("intro\n", HeaderWindow) + "**SCORE_ACTUEL:** N/A",
			total: "N/A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _, err := ParseChecklist(tt.doc)
			if tt.wantErr {
				var headerErr *HeaderError
				require.ErrorAs(t, err, &headerErr)
				assert.NotEmpty(t, headerErr.Label)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.current, result.CurrentScore)
			assert.Equal(t, tt.potential, result.PotentialScore)
			assert.Equal(t, tt.total, result.TotalTimeEstimate)
			assert.NotNil(t, result.Actions)
		})
	}
}

func TestParseChecklist_DropsMalformedActions(t *testing.T) {
	doc := "**SCORE_ACTUEL:** 50\n\n" +
		"## ACTION 1\n**Priorite:** URGENTE\n**Titre:** Bon\n**Impact:** 10\n---\n" +
		"## ACTION 2\n**Priorite:** IMPORTANTE\n**Impact:** 8\n---\n" +
		"## ACTION 3\n**Titre:** Impact flou\n**Impact:** beaucoup\n---\n" +
		"## ACTION 4\n**Titre:** Sans impact\n---\n"

	result, report, err := ParseChecklist(doc)
	require.NoError(t, err)

	require.Len(t, result.Actions, 2)
	assert.Equal(t, "Bon", result.Actions[0].Title)
	assert.Equal(t, "Sans impact", result.Actions[1].Title)
	assert.Zero(t, result.Actions[1].ImpactPoints)
	assert.Equal(t, types.PriorityUnknown, result.Actions[1].Priority)
	assert.Empty(t, result.Actions[1].Description)

	assert.Equal(t, 4, report.Blocks)
	assert.Equal(t, 2, report.Accepted)
	assert.Equal(t, 2, report.Dropped)
	require.Len(t, report.Rejections, 2)
	assert.Equal(t, 2, report.Rejections[0].Index)
	assert.Equal(t, "title", report.Rejections[0].Field)
	assert.Equal(t, 3, report.Rejections[1].Index)
	assert.Equal(t, "impact_points", report.Rejections[1].Field)
}

func TestParseChecklist_PreambleIsIgnored(t *testing.T) {
	doc := "Voici votre checklist.\n**Titre:** pas une action\n\n## ACTION 1\n**Titre:** Vraie action\n---"

	result, report, err := ParseChecklist(doc)
	require.NoError(t, err)
	require.Len(t, result.Actions, 1)
	assert.Equal(t, "Vraie action", result.Actions[0].Title)
	assert.Equal(t, 1, report.Blocks)
}

func TestClassifyPriority(t *testing.T) {
	tests := []struct {
		label string
		want  types.Priority
	}{
		{"URGENTE", types.PriorityUrgent},
		{"Urgent", types.PriorityUrgent},
		{"🔴 URGENTE", types.PriorityUrgent},
		{"IMPORTANTE", types.PriorityImportant},
		{"important", types.PriorityImportant},
		{"AMÉLIORATION", types.PriorityNiceToHave},
		{"amelioration", types.PriorityNiceToHave},
		{"BONUS", types.PriorityNiceToHave},
		{"Souhaitable", types.PriorityNiceToHave},
		{"", types.PriorityUnknown},
		{"CRITIQUE", types.PriorityUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyPriority(tt.label))
		})
	}
}

func TestParseChecklist_RoundTrip(t *testing.T) {
	want := sampleChecklist()

	got, report, err := ParseChecklist(renderChecklist(want))
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, len(want.Actions), report.Accepted)
	assert.Zero(t, report.Dropped)
}

func TestParseChecklist_OneCorruptBlock(t *testing.T) {
	want := sampleChecklist()
	for corrupt := range want.Actions {
		t.Run(want.Actions[corrupt].Title, func(t *testing.T) {
			var b strings.Builder
			b.WriteString(renderChecklist(types.ChecklistResult{
				CurrentScore:      want.CurrentScore,
				PotentialScore:    want.PotentialScore,
				TotalTimeEstimate: want.TotalTimeEstimate,
			}))
			var kept []types.ActionItem
			for i, a := range want.Actions {
				block := renderAction(i+1, a)
				if i == corrupt {
					block = strings.Replace(block, LabelTitle+" "+a.Title+"\n", "", 1)
				} else {
					kept = append(kept, a)
				}
				b.WriteString(block)
			}

			got, report, err := ParseChecklist(b.String())
			require.NoError(t, err)
			assert.Equal(t, kept, got.Actions)
			assert.Equal(t, len(want.Actions), report.Blocks)
			assert.Equal(t, 1, report.Dropped)
			assert.Equal(t, corrupt+1, report.Rejections[0].Index)
		})
	}
}
