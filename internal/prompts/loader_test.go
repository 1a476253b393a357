package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get(OptimizerFile, "checklist-system")
	require.NoError(t, err)
	assert.Contains(t, prompt, "**SCORE_ACTUEL:**")
	assert.Contains(t, prompt, "## ACTION 1")
}

func TestGet_InvalidFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "some-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	ClearCache()

	_, err := Get(OptimizerFile, "nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_Panics(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() {
		MustGet("nonexistent.json", "some-key")
	})
}

func TestSystemPrompts_DescribeTheirDialect(t *testing.T) {
	tests := []struct {
		step    string
		markers []string
	}{
		{"analysis", []string{"**SCORE_GLOBAL:**", "## CRITERE:", "### POINTS_FORTS", "## RECOMMANDATIONS_GENERALES"}},
		{"improvements", []string{"## AMELIORATION 1", "**Section:**", "### AVANT", "### POURQUOI"}},
		{"checklist", []string{"**SCORE_POTENTIEL:**", "**Priorite:**", "### ACTION_CONCRETE"}},
		{"ats", []string{"**SCORE_ATS:**", "## MOTS_CLES_MANQUANTS", "## POINTS_FORTS"}},
		{"rewrite", []string{"CONSERVE 100% DU CONTENU ORIGINAL"}},
		{"suggestions", []string{"Différenciation"}},
	}

	for _, tt := range tests {
		t.Run(tt.step, func(t *testing.T) {
			prompt, err := System(tt.step)
			require.NoError(t, err)
			for _, m := range tt.markers {
				assert.Contains(t, prompt, m)
			}

			instruction, err := Instruction(tt.step)
			require.NoError(t, err)
			assert.NotEmpty(t, instruction)
		})
	}
}

func TestFormat(t *testing.T) {
	template := "Niche cible : {{.Name}}. Focus sur : {{.Focus}}"
	data := map[string]string{
		"Name":  "Data / AI",
		"Focus": "projets data",
	}

	assert.Equal(t, "Niche cible : Data / AI. Focus sur : projets data", Format(template, data))
}

func TestFormat_EmptyData(t *testing.T) {
	template := "Hello {{.Name}}"
	assert.Equal(t, template, Format(template, map[string]string{}))
}

func TestList(t *testing.T) {
	ClearCache()

	keys, err := List(OptimizerFile)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"analysis-system",
		"ats-system",
		"checklist-system",
		"improvements-system",
		"rewrite-system",
		"suggestions-system",
	}, keys)
}

func TestCaching(t *testing.T) {
	ClearCache()

	prompt1, err := Get(MessagesFile, "offer-heading")
	require.NoError(t, err)
	prompt2, err := Get(MessagesFile, "offer-heading")
	require.NoError(t, err)

	assert.Equal(t, prompt1, prompt2)
}
