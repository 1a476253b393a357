// Package observability prints boxed summaries of parse results for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/cv-optimizer/internal/types"
)

const (
	boxWidth       = 64
	maxItemsToShow = 5
)

// Printer writes summaries to out
type Printer struct {
	out io.Writer
}

// NewPrinter creates a Printer writing to out
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

//nolint:errcheck // verbose output; write errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)
	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}
	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func writeMore(sb *strings.Builder, total, shown int, noun string) {
	if total > shown {
		fmt.Fprintf(sb, "  ... and %d more %s\n", total-shown, noun)
	}
}

// PrintAnalysis summarizes the global score and each criterion.
func (p *Printer) PrintAnalysis(r *types.AnalysisResult) {
	if r == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Global score: %d\n\n", r.GlobalScore)
	for _, c := range r.Criteria {
		score := "n/a"
		if c.Score != nil {
			score = fmt.Sprintf("%d/20", *c.Score)
		}
		fmt.Fprintf(&sb, "%-40s %s\n", truncate(c.Name, 40), score)
		fmt.Fprintf(&sb, "  +%d strengths  -%d improvements\n", len(c.Strengths), len(c.Improvements))
	}
	if r.OfferFitNote != "" {
		fmt.Fprintf(&sb, "\nOffer fit: %s\n", r.OfferFitNote)
	}
	if len(r.GeneralRecommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		count := min(len(r.GeneralRecommendations), maxItemsToShow)
		for _, rec := range r.GeneralRecommendations[:count] {
			fmt.Fprintf(&sb, "  • %s\n", rec)
		}
		writeMore(&sb, len(r.GeneralRecommendations), count, "recommendations")
	}

	p.printBox("CV ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintChecklist lists actions grouped by priority, most urgent first.
func (p *Printer) PrintChecklist(r *types.ChecklistResult) {
	if r == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Score: %d → %d   Time: %s\n", r.CurrentScore, r.PotentialScore, r.TotalTimeEstimate)
	fmt.Fprintf(&sb, "Actions: %d   Total impact: +%d\n", len(r.Actions), r.TotalImpact())

	actions := make([]types.ActionItem, len(r.Actions))
	copy(actions, r.Actions)
	sort.SliceStable(actions, func(i, j int) bool {
		return actions[i].Priority.Rank() < actions[j].Priority.Rank()
	})

	var current types.Priority
	for i, a := range actions {
		if i == 0 || a.Priority != current {
			current = a.Priority
			fmt.Fprintf(&sb, "\n[%s]\n", strings.ToUpper(string(current)))
		}
		fmt.Fprintf(&sb, "  • %s (+%d", a.Title, a.ImpactPoints)
		if a.TimeEstimate != "" {
			fmt.Fprintf(&sb, ", %s", a.TimeEstimate)
		}
		sb.WriteString(")\n")
	}

	p.printBox("ACTION CHECKLIST", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAts shows keyword coverage with missing keywords first.
func (p *Printer) PrintAts(r *types.AtsResult) {
	if r == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "ATS score: %d   Coverage: %s\n", r.AtsScore, r.CoverageRate)

	for _, group := range []struct {
		title    string
		keywords []types.KeywordEntry
	}{
		{"Missing", r.Missing()},
		{"Present", r.Present()},
	} {
		if len(group.keywords) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "\n%s (%d):\n", group.title, len(group.keywords))
		count := min(len(group.keywords), maxItemsToShow)
		for _, k := range group.keywords[:count] {
			fmt.Fprintf(&sb, "  • %s [%s] x%d\n", k.Term, k.Priority, k.Occurrences)
		}
		writeMore(&sb, len(group.keywords), count, "keywords")
	}

	p.printBox("ATS KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintImprovements lists each proposed rewrite with its impact.
func (p *Printer) PrintImprovements(r *types.ImprovementsResult) {
	if r == nil || len(r.Items) == 0 {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d improvements\n\n", len(r.Items))
	count := min(len(r.Items), maxItemsToShow)
	for i, item := range r.Items[:count] {
		fmt.Fprintf(&sb, "#%d  [%s] %s (impact %d)\n", i+1, item.SectionLabel, item.Title, item.ImpactScore)
		if item.After != "" {
			fmt.Fprintf(&sb, "    → %s\n", strings.SplitN(item.After, "\n", 2)[0])
		}
	}
	writeMore(&sb, len(r.Items), count, "improvements")

	p.printBox("IMPROVEMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReport shows how many blocks of a document were kept and why the
// others were dropped.
func (p *Printer) PrintReport(step string, report types.ParseReport) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Blocks: %d   Accepted: %d   Dropped: %d", report.Blocks, report.Accepted, report.Dropped)
	for _, r := range report.Rejections {
		field := r.Field
		if field == "" {
			field = "-"
		}
		fmt.Fprintf(&sb, "\n  block %d (%s): %s", r.Index, field, r.Reason)
	}
	p.printBox("PARSE REPORT: "+step, sb.String())
}

// PrintOptimization prints every section of a full optimisation run.
func (p *Printer) PrintOptimization(r *types.OptimizationResult) {
	if r == nil {
		return
	}
	p.PrintAnalysis(&r.Analysis)
	p.PrintImprovements(&r.Improvements)
	p.PrintChecklist(&r.Checklist)
	p.PrintAts(&r.Ats)

	steps := make([]string, 0, len(r.Reports))
	for step := range r.Reports {
		steps = append(steps, step)
	}
	sort.Strings(steps)
	for _, step := range steps {
		if report := r.Reports[step]; report.Dropped > 0 {
			p.PrintReport(step, report)
		}
	}
	p.printBox("RUN "+r.RunID.String(), fmt.Sprintf("Niche: %s\nTokens: %d", r.Niche, r.TotalTokens))
}
