package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"only whitespace", "   \n  \n\t ", ""},
		{"line endings", "Ligne 1\r\nLigne 2\rLigne 3", "Ligne 1\nLigne 2\nLigne 3"},
		{"collapses spaces", "Développeur    Go\t\tsenior", "Développeur Go senior"},
		{"blank line runs", "Expérience\n\n\n\n\nFormation", "Expérience\n\nFormation"},
		{"headings lose indentation", "   ## Compétences", "## Compétences"},
		{"bullets keep indentation", "- Go\n  - Concurrence", "- Go\n  - Concurrence"},
		{"typographic bullets", "• Kubernetes\n  ▪ Helm\n– Terraform", "- Kubernetes\n  - Helm\n- Terraform"},
		{"plain lines lose indentation", "    Paris, France", "Paris, France"},
		{"invisible characters", "Jean\u00a0Dupont\u200b\n\ufeffCV", "Jean Dupont\nCV"},
		{"accents and emoji", "Spécialiste 🚀 données", "Spécialiste 🚀 données"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.input))
		})
	}
}

func TestCleanText_Idempotent(t *testing.T) {
	input := "# Jean Dupont\n\n\n•  Go   5 ans\r\n    Paris"
	once := CleanText(input)
	assert.Equal(t, once, CleanText(once))
}
