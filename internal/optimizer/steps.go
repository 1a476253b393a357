package optimizer

import (
	"strings"

	"github.com/jonathan/cv-optimizer/internal/llm"
	"github.com/jonathan/cv-optimizer/internal/prompts"
	"github.com/jonathan/cv-optimizer/internal/types"
)

// Step describes one model call: its prompts and sampling parameters.
type Step struct {
	Name        string
	Tier        llm.ModelTier
	MaxTokens   int
	Temperature float64
	// CVHeading is the messages.json key introducing the CV
	CVHeading string
}

// Steps of an optimisation
var (
	StepAnalysis     = Step{Name: "analysis", Tier: llm.TierStandard, MaxTokens: 4096, Temperature: 0.3, CVHeading: "cv-heading-analyze"}
	StepImprovements = Step{Name: "improvements", Tier: llm.TierLite, MaxTokens: 4096, Temperature: 0.1, CVHeading: "cv-heading-analyze"}
	StepChecklist    = Step{Name: "checklist", Tier: llm.TierLite, MaxTokens: 3072, Temperature: 0.1, CVHeading: "cv-heading-analyze"}
	StepAts          = Step{Name: "ats", Tier: llm.TierLite, MaxTokens: 2048, Temperature: 0.1, CVHeading: "cv-heading-analyze"}
	StepRewrite      = Step{Name: "rewrite", Tier: llm.TierAdvanced, MaxTokens: 4096, Temperature: 0.7, CVHeading: "cv-heading-rewrite"}
	StepSuggestions  = Step{Name: "suggestions", Tier: llm.TierStandard, MaxTokens: 3072, Temperature: 0.5, CVHeading: "cv-heading-improve"}
)

// BuildUserMessage assembles the user turn of a step: niche context, the CV,
// the target offer when there is one and the step's closing instruction.
func BuildUserMessage(step Step, req types.OptimizationRequest) (string, error) {
	heading, err := prompts.Get(prompts.MessagesFile, step.CVHeading)
	if err != nil {
		return "", err
	}
	instruction, err := prompts.Instruction(step.Name)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(prompts.NicheContext(req.Niche))
	sb.WriteString("\n\n")
	sb.WriteString(heading)
	sb.WriteString("\n\n")
	sb.WriteString(req.CV)
	sb.WriteString("\n\n")
	if offer := strings.TrimSpace(req.Offer); offer != "" {
		sb.WriteString(prompts.MustGet(prompts.MessagesFile, "offer-heading"))
		sb.WriteString("\n\n")
		sb.WriteString(offer)
		sb.WriteString("\n\n")
	}
	sb.WriteString(instruction)
	return sb.String(), nil
}
