package parsing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSection(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		start  string
		terms  []string
		want   string
		wantOK bool
	}{
		{
			name:   "absent start heading",
			text:   "### OTHER\nbody",
			start:  HeadingDescription,
			terms:  []string{TermSubHeading},
			wantOK: false,
		},
		{
			name:   "runs to end of text without terminator",
			text:   "### DESCRIPTION\nY\nmore",
			start:  HeadingDescription,
			terms:  []string{TermSubHeading},
			want:   "\nY\nmore",
			wantOK: true,
		},
		{
			name:   "stops at terminator",
			text:   "### DESCRIPTION\nY\n### ACTION_CONCRETE\nZ",
			start:  HeadingDescription,
			terms:  []string{TermSubHeading},
			want:   "\nY\n",
			wantOK: true,
		},
		{
			name:   "earliest terminator wins regardless of order",
			text:   "### AMELIORATIONS\n- a\n---\n- b\n### NEXT",
			start:  HeadingImprovements,
			terms:  []string{TermSubHeading, TermRule},
			want:   "\n- a\n",
			wantOK: true,
		},
		{
			name:   "earliest terminator wins with reversed candidates",
			text:   "### AMELIORATIONS\n- a\n---\n- b\n### NEXT",
			start:  HeadingImprovements,
			terms:  []string{TermRule, TermSubHeading},
			want:   "\n- a\n",
			wantOK: true,
		},
		{
			name:   "empty section",
			text:   "### POURQUOI\n---",
			start:  HeadingWhy,
			terms:  []string{TermRule},
			want:   "\n",
			wantOK: true,
		},
		{
			name:   "terminator before start is ignored",
			text:   "---\n### POURQUOI\n- x",
			start:  HeadingWhy,
			terms:  []string{TermRule},
			want:   "\n- x",
			wantOK: true,
		},
		{
			name:   "next heading terminator skips deeper headings",
			text:   "### AMELIORATIONS\n- a\n### X\n- b\n## ADEQUATION_OFFRE\nfit",
			start:  HeadingImprovements,
			terms:  []string{TermNextHeading},
			want:   "\n- a\n### X\n- b",
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractSection(tt.text, tt.start, tt.terms...)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScanner(t *testing.T) {
	s := NewScanner("\n\n  1\n**Titre:** X\n\n### DESCRIPTION\n  Y  \n### ACTION_CONCRETE\n- a\n- b\n---\n\n")

	assert.Equal(t, "1", s.FirstLine())
	assert.Equal(t, "**Titre:** X", s.Lines()[1])

	desc, ok := s.Section(HeadingDescription, TermSubHeading)
	require.True(t, ok)
	assert.Equal(t, "Y", desc)

	assert.Equal(t, []string{"a", "b"}, s.Bullets(HeadingConcreteAction, TermRule))
	assert.Nil(t, s.Bullets(HeadingWhy, TermRule))
}

func TestParseFieldTable(t *testing.T) {
	lines := []string{
		"1",
		"**Priorite:** URGENTE",
		"**Titre:** First",
		"**Titre:** Second",
		"**Impact:** 15",
	}

	t.Run("first occurrence wins", func(t *testing.T) {
		table := ParseFieldTable(lines, []string{LabelTitle}, 10)
		v, ok := table.Value(LabelTitle)
		require.True(t, ok)
		assert.Equal(t, "First", v)
	})

	t.Run("window bounds the scan", func(t *testing.T) {
		table := ParseFieldTable(lines, []string{LabelPriority, LabelImpact}, 3)
		_, ok := table.Value(LabelPriority)
		assert.True(t, ok)
		_, ok = table.Value(LabelImpact)
		assert.False(t, ok, "label beyond the window must not be seen")
	})

	t.Run("absent labels are not recorded", func(t *testing.T) {
		table := ParseFieldTable(lines, []string{LabelTime}, 10)
		assert.Empty(t, table)
	})

	t.Run("window larger than input", func(t *testing.T) {
		table := ParseFieldTable(lines, []string{LabelImpact}, 100)
		n, found, ok := table.Integer(LabelImpact)
		assert.True(t, found)
		assert.True(t, ok)
		assert.Equal(t, 15, n)
	})

	t.Run("zero window", func(t *testing.T) {
		assert.Empty(t, ParseFieldTable(lines, []string{LabelTitle}, 0))
	})

	t.Run("label deep in a body is ignored", func(t *testing.T) {
		body := append([]string{}, lines...)
		body = append(body, strings.Repeat("filler\n", 10), "**Temps:** 5 min")
		table := ParseFieldTable(strings.Split(strings.Join(body, "\n"), "\n"), []string{LabelTime}, BlockFieldWindow)
		_, ok := table.Value(LabelTime)
		assert.False(t, ok)
	})
}

func TestFieldTable_Integer(t *testing.T) {
	table := FieldTable{LabelImpact: "N/A", LabelScore: "12/20"}

	_, found, ok := table.Integer(LabelImpact)
	assert.True(t, found)
	assert.False(t, ok)

	n, found, ok := table.Integer(LabelScore)
	assert.True(t, found)
	assert.True(t, ok)
	assert.Equal(t, 12, n)

	_, found, _ = table.Integer(LabelTime)
	assert.False(t, found)
}
