package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripFence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no fence", "  **SCORE_ATS:** 70  ", "**SCORE_ATS:** 70"},
		{"bare fence", "```\n## ACTION 1\n```", "## ACTION 1"},
		{"tagged fence", "```markdown\n**SCORE_GLOBAL:** 60\n```", "**SCORE_GLOBAL:** 60"},
		{"missing closing fence", "```md\ncontent", "content"},
		{"first line is content", "```**SCORE_ATS:** 70\n- a\n```", "**SCORE_ATS:** 70\n- a"},
		{"only a tag", "```json", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripFence(tt.input))
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "drops blank lines",
			input: "a\n\n   \nb\n",
			want:  "a\nb",
		},
		{
			name:  "literal escapes become spaces",
			input: `Ligne\nsuite\tfin`,
			want:  "Ligne suite fin",
		},
		{
			name:  "control characters become spaces",
			input: "a\x00b\x1fc\td",
			want:  "a b c\td",
		},
		{
			name:  "fence is stripped",
			input: "```markdown\n## ACTION 1\n\n**Titre:** X\n```",
			want:  "## ACTION 1\n**Titre:** X",
		},
		{
			name:  "markdown is preserved",
			input: "## CRITERE: A **Score:** 12\n- point\n---",
			want:  "## CRITERE: A **Score:** 12\n- point\n---",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalize_KeepsParseResult(t *testing.T) {
	doc := renderChecklist(sampleChecklist())

	want, _, err := ParseChecklist(doc)
	assert.NoError(t, err)
	got, _, err := ParseChecklist(Normalize("```markdown\n" + doc + "\n```"))
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}
