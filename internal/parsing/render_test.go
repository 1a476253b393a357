package parsing

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-optimizer/internal/types"
)

// Renderers write records back in the reply dialect. They only emit content
// the parsers can read back unchanged: no "###" inside descriptions and no
// "---" inside concrete steps.

func renderBullets(b *strings.Builder, items []string) {
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
}

func renderChecklist(r types.ChecklistResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n", LabelCurrentScore, r.CurrentScore)
	fmt.Fprintf(&b, "%s %d\n", LabelPotentialScore, r.PotentialScore)
	fmt.Fprintf(&b, "%s %s\n\n", LabelTotalTime, r.TotalTimeEstimate)
	for i, a := range r.Actions {
		b.WriteString(renderAction(i+1, a))
	}
	return b.String()
}

func renderAction(n int, a types.ActionItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s%d\n", MarkerAction, n)
	fmt.Fprintf(&b, "%s %s\n", LabelPriority, a.PriorityLabel)
	fmt.Fprintf(&b, "%s %s\n", LabelTitle, a.Title)
	fmt.Fprintf(&b, "%s %d\n", LabelImpact, a.ImpactPoints)
	fmt.Fprintf(&b, "%s %s\n\n", LabelTime, a.TimeEstimate)
	fmt.Fprintf(&b, "%s\n%s\n\n", HeadingDescription, a.Description)
	fmt.Fprintf(&b, "%s\n%s\n---\n\n", HeadingConcreteAction, a.ConcreteStep)
	return b.String()
}

func renderAnalysis(r types.AnalysisResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n\n", LabelGlobalScore, r.GlobalScore)
	for _, c := range r.Criteria {
		fmt.Fprintf(&b, "%s %s\n", MarkerCriterion, c.Name)
		if c.Score != nil {
			fmt.Fprintf(&b, "%s %d/20\n", LabelScore, *c.Score)
		}
		fmt.Fprintf(&b, "\n%s\n", HeadingStrengths)
		renderBullets(&b, c.Strengths)
		fmt.Fprintf(&b, "\n%s\n", HeadingImprovements)
		renderBullets(&b, c.Improvements)
		b.WriteString("---\n\n")
	}
	fmt.Fprintf(&b, "%s\n%s\n\n", HeadingOfferFit, r.OfferFitNote)
	fmt.Fprintf(&b, "%s\n", HeadingGeneralAdvice)
	renderBullets(&b, r.GeneralRecommendations)
	return b.String()
}

func renderImprovements(r types.ImprovementsResult) string {
	var b strings.Builder
	b.WriteString("Voici les améliorations proposées.\n\n")
	for i, item := range r.Items {
		fmt.Fprintf(&b, "%s%d\n", MarkerImprovement, i+1)
		fmt.Fprintf(&b, "%s %s\n", LabelSection, item.SectionLabel)
		fmt.Fprintf(&b, "%s %s\n", LabelTitle, item.Title)
		fmt.Fprintf(&b, "%s %d/10\n\n", LabelImpact, item.ImpactScore)
		fmt.Fprintf(&b, "%s\n%s\n\n", HeadingBefore, item.Before)
		fmt.Fprintf(&b, "%s\n%s\n\n", HeadingAfter, item.After)
		fmt.Fprintf(&b, "%s\n", HeadingWhy)
		renderBullets(&b, item.Rationale)
		b.WriteString("---\n\n")
	}
	return b.String()
}

func renderAts(r types.AtsResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n", LabelAtsScore, r.AtsScore)
	fmt.Fprintf(&b, "%s %s\n\n", LabelCoverageRate, r.CoverageRate)
	fmt.Fprintf(&b, "%s\n", HeadingMissingKeywords)
	renderKeywords(&b, r.Missing())
	fmt.Fprintf(&b, "\n%s\n", HeadingPresentKeywords)
	renderKeywords(&b, r.Present())
	fmt.Fprintf(&b, "\n%s\n", HeadingRecommendations)
	renderBullets(&b, r.Recommendations)
	fmt.Fprintf(&b, "\n%s\n", HeadingPositiveKeywords)
	renderBullets(&b, r.PositiveKeywords)
	return b.String()
}

func renderKeywords(b *strings.Builder, keywords []types.KeywordEntry) {
	for _, k := range keywords {
		fmt.Fprintf(b, "- %s | %s | %d occurrences\n", k.Term, k.Priority, k.Occurrences)
	}
}

func intPtr(n int) *int {
	return &n
}

func sampleChecklist() types.ChecklistResult {
	return types.ChecklistResult{
		CurrentScore:      52,
		PotentialScore:    87,
		TotalTimeEstimate: "1h30",
		Actions: []types.ActionItem{
			{
				Priority:      types.PriorityUrgent,
				PriorityLabel: "URGENTE",
				Title:         "Ajouter un résumé",
				ImpactPoints:  15,
				TimeEstimate:  "10 min",
				Description:   "Le CV n'a pas d'accroche.",
				ConcreteStep:  "Écrire trois lignes en tête du CV.",
			},
			{
				Priority:      types.PriorityImportant,
				PriorityLabel: "IMPORTANTE",
				Title:         "Quantifier les résultats",
				ImpactPoints:  10,
				TimeEstimate:  "30 min",
				Description:   "Les expériences manquent de chiffres.",
				ConcreteStep:  "Ajouter un pourcentage par expérience.",
			},
			{
				Priority:      types.PriorityNiceToHave,
				PriorityLabel: "AMÉLIORATION",
				Title:         "Uniformiser les dates",
				ImpactPoints:  3,
				TimeEstimate:  "5 min",
				Description:   "Formats de dates mélangés.",
				ConcreteStep:  "Utiliser MM/AAAA partout.",
			},
		},
	}
}

func sampleAnalysis() types.AnalysisResult {
	return types.AnalysisResult{
		GlobalScore: 68,
		Criteria: []types.Criterion{
			{
				Name:         "Structure",
				Score:        intPtr(15),
				Strengths:    []string{"Sections claires", "Une page"},
				Improvements: []string{"Ajouter un résumé"},
			},
			{
				Name:         "Impact",
				Score:        intPtr(11),
				Strengths:    []string{"Verbes d'action"},
				Improvements: []string{"Quantifier", "Mettre en avant les résultats"},
			},
		},
		OfferFitNote:           "Bonne adéquation avec le poste visé.",
		GeneralRecommendations: []string{"Relire l'orthographe", "Adapter le titre"},
	}
}

func sampleImprovements() types.ImprovementsResult {
	return types.ImprovementsResult{
		Items: []types.ImprovementItem{
			{
				SectionLabel: "Expérience",
				Title:        "Quantifier la gestion d'équipe",
				ImpactScore:  8,
				Before:       "Géré une équipe.",
				After:        "Dirigé une équipe de 5 développeurs.",
				Rationale:    []string{"Chiffre concret", "Verbe fort"},
			},
			{
				SectionLabel: "Compétences",
				Title:        "Regrouper par domaine",
				ImpactScore:  5,
				Before:       "Go, SQL, Docker, Excel",
				After:        "Backend: Go, SQL\nOutils: Docker",
				Rationale:    []string{"Lecture plus rapide"},
			},
		},
	}
}

func sampleAts() types.AtsResult {
	return types.AtsResult{
		AtsScore:     72,
		CoverageRate: "65%",
		Keywords: []types.KeywordEntry{
			{Term: "React", Priority: "HAUTE", Present: false, Occurrences: 0},
			{Term: "Docker", Priority: "MOYENNE", Present: false, Occurrences: 0},
			{Term: "Go", Priority: "HAUTE", Present: true, Occurrences: 3},
		},
		Recommendations:  []string{"Ajouter React dans les compétences"},
		PositiveKeywords: []string{"Go bien mis en avant"},
	}
}
