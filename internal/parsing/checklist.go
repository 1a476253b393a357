package parsing

import (
	"strings"
	"unicode"

	"github.com/jonathan/cv-optimizer/internal/types"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ParseChecklist parses a prioritized action checklist. Actions without a
// title, or whose impact label holds no digits, are dropped and counted.
func ParseChecklist(text string) (types.ChecklistResult, types.ParseReport, error) {
	result := types.NewChecklistResult()
	doc := NewScanner(text)

	header := doc.Fields(HeaderWindow, LabelCurrentScore, LabelPotentialScore, LabelTotalTime)
	var err error
	if result.CurrentScore, err = headerInteger(header, LabelCurrentScore); err != nil {
		return result, types.ParseReport{}, err
	}
	if result.PotentialScore, err = headerInteger(header, LabelPotentialScore); err != nil {
		return result, types.ParseReport{}, err
	}
	if v, ok := header.Value(LabelTotalTime); ok && v != "" {
		result.TotalTimeEstimate = v
	}

	blocks, _ := SplitBlocks(doc.Text(), MarkerAction)
	actions, report := collect(buildBlocks(blocks, buildAction))
	result.Actions = actions
	return result, report, nil
}

func buildAction(index int, block string) (types.ActionItem, error) {
	s := NewScanner(block)
	fields := s.Fields(BlockFieldWindow, LabelPriority, LabelTitle, LabelImpact, LabelTime)

	title, _ := fields.Value(LabelTitle)
	if title == "" {
		return types.ActionItem{}, &BlockError{Index: index, Field: "title", Reason: "missing title"}
	}
	impact, found, ok := fields.Integer(LabelImpact)
	if found && !ok {
		return types.ActionItem{}, &BlockError{Index: index, Field: "impact_points", Reason: "impact has no numeric value"}
	}

	label, _ := fields.Value(LabelPriority)
	timeEstimate, _ := fields.Value(LabelTime)
	description, _ := s.Section(HeadingDescription, TermSubHeading)
	concrete, _ := s.Section(HeadingConcreteAction, TermRule)

	return types.ActionItem{
		Priority:      ClassifyPriority(label),
		PriorityLabel: label,
		Title:         title,
		ImpactPoints:  impact,
		TimeEstimate:  timeEstimate,
		Description:   description,
		ConcreteStep:  concrete,
	}, nil
}

// priorityPrefixes maps folded priority literals to priorities.
var priorityPrefixes = []struct {
	prefix   string
	priority types.Priority
}{
	{"URGENT", types.PriorityUrgent},
	{"IMPORTANT", types.PriorityImportant},
	{"AMELIORATION", types.PriorityNiceToHave},
	{"BONUS", types.PriorityNiceToHave},
	{"SOUHAITABLE", types.PriorityNiceToHave},
	{"OPTIONNEL", types.PriorityNiceToHave},
	{"NICE", types.PriorityNiceToHave},
}

// ClassifyPriority maps a priority literal such as "URGENTE" or "Amélioration"
// to a Priority. Matching ignores case, accents and leading decoration.
func ClassifyPriority(label string) types.Priority {
	key := foldLabel(label)
	if key == "" {
		return types.PriorityUnknown
	}
	for _, p := range priorityPrefixes {
		if strings.HasPrefix(key, p.prefix) {
			return p.priority
		}
	}
	return types.PriorityUnknown
}

func foldLabel(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	folded = strings.TrimLeftFunc(folded, func(r rune) bool { return !unicode.IsLetter(r) })
	return strings.ToUpper(folded)
}

// headerInteger reads a numeric header label. An absent label keeps the zero
// default; a present label without digits fails the document.
func headerInteger(header FieldTable, label string) (int, error) {
	n, found, ok := header.Integer(label)
	if !found {
		return 0, nil
	}
	if !ok {
		v, _ := header.Value(label)
		return 0, &HeaderError{Label: label, Value: v}
	}
	return n, nil
}
